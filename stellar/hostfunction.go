// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

type HostFunctionType int32

const (
	HostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeCreateContract     HostFunctionType = 1
	HostFunctionTypeUploadContractWasm HostFunctionType = 2
	HostFunctionTypeCreateContractV2   HostFunctionType = 3
)

var hostFunctionTypeMap = map[int32]string{
	0: "HostFunctionTypeInvokeContract",
	1: "HostFunctionTypeCreateContract",
	2: "HostFunctionTypeUploadContractWasm",
	3: "HostFunctionTypeCreateContractV2",
}

func (e HostFunctionType) ValidEnum(v int32) bool {
	_, ok := hostFunctionTypeMap[v]
	return ok
}

func (e HostFunctionType) String() string {
	return enumString(hostFunctionTypeMap, "HostFunctionType", int32(e))
}

func (e HostFunctionType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *HostFunctionType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[HostFunctionType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type ContractIDPreimageType int32

const (
	ContractIDPreimageTypeFromAddress ContractIDPreimageType = 0
	ContractIDPreimageTypeFromAsset   ContractIDPreimageType = 1
)

var contractIDPreimageTypeMap = map[int32]string{
	0: "ContractIDPreimageTypeFromAddress",
	1: "ContractIDPreimageTypeFromAsset",
}

func (e ContractIDPreimageType) ValidEnum(v int32) bool {
	_, ok := contractIDPreimageTypeMap[v]
	return ok
}

func (e ContractIDPreimageType) String() string {
	return enumString(contractIDPreimageTypeMap, "ContractIDPreimageType", int32(e))
}

func (e ContractIDPreimageType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ContractIDPreimageType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ContractIDPreimageType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type ContractIDPreimageFromAddress struct {
	Address SCAddress
	Salt    Uint256
}

func (c ContractIDPreimageFromAddress) MarshalXDR(e xdr.Encoder) error {
	if err := c.Address.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractIDPreimageFromAddress", "Address")
	}
	return xdr.WithField(c.Salt.MarshalXDR(e), "ContractIDPreimageFromAddress", "Salt")
}

func (c *ContractIDPreimageFromAddress) UnmarshalXDR(d xdr.Decoder) error {
	var v ContractIDPreimageFromAddress
	if err := v.Address.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractIDPreimageFromAddress", "Address")
	}
	if err := v.Salt.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractIDPreimageFromAddress", "Salt")
	}
	*c = v
	return nil
}

// ContractIDPreimageFromAsset derives the ID of an asset's Stellar Asset
// Contract
type ContractIDPreimageFromAsset Asset

func (a ContractIDPreimageFromAsset) MarshalXDR(e xdr.Encoder) error {
	return Asset(a).MarshalXDR(e)
}

// ContractIDPreimage is hashed with the network ID to derive a contract ID
type ContractIDPreimage struct {
	Arm ContractIDPreimageArm
}

// ContractIDPreimageArm is implemented by the arm types of ContractIDPreimage
type ContractIDPreimageArm interface {
	xdr.Marshaler
	contractIDPreimageType() ContractIDPreimageType
}

func (ContractIDPreimageFromAddress) contractIDPreimageType() ContractIDPreimageType { return ContractIDPreimageTypeFromAddress }
func (ContractIDPreimageFromAsset) contractIDPreimageType() ContractIDPreimageType   { return ContractIDPreimageTypeFromAsset }

func (c ContractIDPreimage) Type() ContractIDPreimageType {
	return c.Arm.contractIDPreimageType()
}

func (c ContractIDPreimage) MarshalXDR(e xdr.Encoder) error {
	if c.Arm == nil {
		return errNilArm("ContractIDPreimage")
	}
	if err := c.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractIDPreimage", "Type")
	}
	return xdr.WithField(c.Arm.MarshalXDR(e), "ContractIDPreimage", c.Type().String())
}

func (c *ContractIDPreimage) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[ContractIDPreimageType](d)
	if err != nil {
		return xdr.WithField(err, "ContractIDPreimage", "Type")
	}

	var arm ContractIDPreimageArm
	switch t {
	case ContractIDPreimageTypeFromAddress:
		var x ContractIDPreimageFromAddress
		err = x.UnmarshalXDR(d)
		arm = x
	case ContractIDPreimageTypeFromAsset:
		var x Asset
		err = x.UnmarshalXDR(d)
		arm = ContractIDPreimageFromAsset(x)
	default:
		return xdr.UnknownArm("ContractIDPreimage", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "ContractIDPreimage", t.String())
	}
	c.Arm = arm
	return nil
}

// CreateContractArgs creates a contract without calling a constructor
type CreateContractArgs struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
}

func (c CreateContractArgs) MarshalXDR(e xdr.Encoder) error {
	if err := c.ContractIDPreimage.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "CreateContractArgs", "ContractIDPreimage")
	}
	return xdr.WithField(c.Executable.MarshalXDR(e), "CreateContractArgs", "Executable")
}

func (c *CreateContractArgs) UnmarshalXDR(d xdr.Decoder) error {
	var v CreateContractArgs
	if err := v.ContractIDPreimage.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "CreateContractArgs", "ContractIDPreimage")
	}
	if err := v.Executable.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "CreateContractArgs", "Executable")
	}
	*c = v
	return nil
}

// CreateContractArgsV2 creates a contract and calls its constructor with
// ConstructorArgs
type CreateContractArgsV2 struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
	ConstructorArgs    []SCVal
}

func (c CreateContractArgsV2) MarshalXDR(e xdr.Encoder) error {
	if err := c.ContractIDPreimage.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "CreateContractArgsV2", "ContractIDPreimage")
	}
	if err := c.Executable.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "CreateContractArgsV2", "Executable")
	}
	return xdr.WithField(xdr.EncodeArray(e, c.ConstructorArgs, xdr.Unbounded), "CreateContractArgsV2", "ConstructorArgs")
}

func (c *CreateContractArgsV2) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   CreateContractArgsV2
		err error
	)
	if err = v.ContractIDPreimage.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "CreateContractArgsV2", "ContractIDPreimage")
	}
	if err = v.Executable.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "CreateContractArgsV2", "Executable")
	}
	if v.ConstructorArgs, err = xdr.DecodeArray[SCVal](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "CreateContractArgsV2", "ConstructorArgs")
	}
	*c = v
	return nil
}

type InvokeContractArgs struct {
	ContractAddress SCAddress
	FunctionName    SCSymbol
	Args            []SCVal
}

func (i InvokeContractArgs) MarshalXDR(e xdr.Encoder) error {
	if err := i.ContractAddress.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "InvokeContractArgs", "ContractAddress")
	}
	if err := i.FunctionName.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "InvokeContractArgs", "FunctionName")
	}
	return xdr.WithField(xdr.EncodeArray(e, i.Args, xdr.Unbounded), "InvokeContractArgs", "Args")
}

func (i *InvokeContractArgs) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   InvokeContractArgs
		err error
	)
	if err = v.ContractAddress.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "InvokeContractArgs", "ContractAddress")
	}
	if err = v.FunctionName.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "InvokeContractArgs", "FunctionName")
	}
	if v.Args, err = xdr.DecodeArray[SCVal](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "InvokeContractArgs", "Args")
	}
	*i = v
	return nil
}

// HostFunctionUploadContractWasm is a Wasm module to install
type HostFunctionUploadContractWasm []byte

func (w HostFunctionUploadContractWasm) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeOpaque(w, xdr.Unbounded)
}

func (w *HostFunctionUploadContractWasm) UnmarshalXDR(d xdr.Decoder) error {
	b, err := d.DecodeOpaque(xdr.Unbounded)
	if err != nil {
		return err
	}
	*w = b
	return nil
}

// HostFunction is the function invoked by an InvokeHostFunctionOp
type HostFunction struct {
	Arm HostFunctionArm
}

// HostFunctionArm is implemented by InvokeContractArgs, CreateContractArgs,
// HostFunctionUploadContractWasm and CreateContractArgsV2
type HostFunctionArm interface {
	xdr.Marshaler
	hostFunctionType() HostFunctionType
}

func (InvokeContractArgs) hostFunctionType() HostFunctionType             { return HostFunctionTypeInvokeContract }
func (CreateContractArgs) hostFunctionType() HostFunctionType             { return HostFunctionTypeCreateContract }
func (HostFunctionUploadContractWasm) hostFunctionType() HostFunctionType { return HostFunctionTypeUploadContractWasm }
func (CreateContractArgsV2) hostFunctionType() HostFunctionType           { return HostFunctionTypeCreateContractV2 }

func (h HostFunction) Type() HostFunctionType {
	return h.Arm.hostFunctionType()
}

func (h HostFunction) MarshalXDR(e xdr.Encoder) error {
	if h.Arm == nil {
		return errNilArm("HostFunction")
	}
	if err := h.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "HostFunction", "Type")
	}
	return xdr.WithField(h.Arm.MarshalXDR(e), "HostFunction", h.Type().String())
}

func (h *HostFunction) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[HostFunctionType](d)
	if err != nil {
		return xdr.WithField(err, "HostFunction", "Type")
	}

	var arm HostFunctionArm
	switch t {
	case HostFunctionTypeInvokeContract:
		var x InvokeContractArgs
		err = x.UnmarshalXDR(d)
		arm = x
	case HostFunctionTypeCreateContract:
		var x CreateContractArgs
		err = x.UnmarshalXDR(d)
		arm = x
	case HostFunctionTypeUploadContractWasm:
		var x HostFunctionUploadContractWasm
		err = x.UnmarshalXDR(d)
		arm = x
	case HostFunctionTypeCreateContractV2:
		var x CreateContractArgsV2
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("HostFunction", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "HostFunction", t.String())
	}
	h.Arm = arm
	return nil
}

type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeContractFn             SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeCreateContractHostFn   SorobanAuthorizedFunctionType = 1
	SorobanAuthorizedFunctionTypeCreateContractV2HostFn SorobanAuthorizedFunctionType = 2
)

var sorobanAuthorizedFunctionTypeMap = map[int32]string{
	0: "SorobanAuthorizedFunctionTypeContractFn",
	1: "SorobanAuthorizedFunctionTypeCreateContractHostFn",
	2: "SorobanAuthorizedFunctionTypeCreateContractV2HostFn",
}

func (e SorobanAuthorizedFunctionType) ValidEnum(v int32) bool {
	_, ok := sorobanAuthorizedFunctionTypeMap[v]
	return ok
}

func (e SorobanAuthorizedFunctionType) String() string {
	return enumString(sorobanAuthorizedFunctionTypeMap, "SorobanAuthorizedFunctionType", int32(e))
}

func (e SorobanAuthorizedFunctionType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SorobanAuthorizedFunctionType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SorobanAuthorizedFunctionType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type SorobanAuthorizedFunction struct {
	Arm SorobanAuthorizedFunctionArm
}

// SorobanAuthorizedFunctionArm is implemented by InvokeContractArgs,
// CreateContractArgs and CreateContractArgsV2
type SorobanAuthorizedFunctionArm interface {
	xdr.Marshaler
	sorobanAuthorizedFunctionType() SorobanAuthorizedFunctionType
}

func (InvokeContractArgs) sorobanAuthorizedFunctionType() SorobanAuthorizedFunctionType   { return SorobanAuthorizedFunctionTypeContractFn }
func (CreateContractArgs) sorobanAuthorizedFunctionType() SorobanAuthorizedFunctionType   { return SorobanAuthorizedFunctionTypeCreateContractHostFn }
func (CreateContractArgsV2) sorobanAuthorizedFunctionType() SorobanAuthorizedFunctionType { return SorobanAuthorizedFunctionTypeCreateContractV2HostFn }

func (s SorobanAuthorizedFunction) Type() SorobanAuthorizedFunctionType {
	return s.Arm.sorobanAuthorizedFunctionType()
}

func (s SorobanAuthorizedFunction) MarshalXDR(e xdr.Encoder) error {
	if s.Arm == nil {
		return errNilArm("SorobanAuthorizedFunction")
	}
	if err := s.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanAuthorizedFunction", "Type")
	}
	return xdr.WithField(s.Arm.MarshalXDR(e), "SorobanAuthorizedFunction", s.Type().String())
}

func (s *SorobanAuthorizedFunction) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[SorobanAuthorizedFunctionType](d)
	if err != nil {
		return xdr.WithField(err, "SorobanAuthorizedFunction", "Type")
	}

	var arm SorobanAuthorizedFunctionArm
	switch t {
	case SorobanAuthorizedFunctionTypeContractFn:
		var x InvokeContractArgs
		err = x.UnmarshalXDR(d)
		arm = x
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		var x CreateContractArgs
		err = x.UnmarshalXDR(d)
		arm = x
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		var x CreateContractArgsV2
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("SorobanAuthorizedFunction", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "SorobanAuthorizedFunction", t.String())
	}
	s.Arm = arm
	return nil
}

// SorobanAuthorizedInvocation is a tree of authorized calls
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

func (s SorobanAuthorizedInvocation) MarshalXDR(e xdr.Encoder) error {
	if err := s.Function.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanAuthorizedInvocation", "Function")
	}
	return xdr.WithField(xdr.EncodeArray(e, s.SubInvocations, xdr.Unbounded), "SorobanAuthorizedInvocation", "SubInvocations")
}

func (s *SorobanAuthorizedInvocation) UnmarshalXDR(d xdr.Decoder) error {
	if err := d.Enter(); err != nil {
		return err
	}
	defer d.Leave()

	var (
		v   SorobanAuthorizedInvocation
		err error
	)
	if err = v.Function.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAuthorizedInvocation", "Function")
	}
	if v.SubInvocations, err = xdr.DecodeArray[SorobanAuthorizedInvocation](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SorobanAuthorizedInvocation", "SubInvocations")
	}
	*s = v
	return nil
}

type SorobanAddressCredentials struct {
	Address                   SCAddress
	Nonce                     Int64
	SignatureExpirationLedger Uint32
	Signature                 SCVal
}

func (s SorobanAddressCredentials) MarshalXDR(e xdr.Encoder) error {
	if err := s.Address.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "Address")
	}
	if err := s.Nonce.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "Nonce")
	}
	if err := s.SignatureExpirationLedger.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "SignatureExpirationLedger")
	}
	return xdr.WithField(s.Signature.MarshalXDR(e), "SorobanAddressCredentials", "Signature")
}

func (s *SorobanAddressCredentials) UnmarshalXDR(d xdr.Decoder) error {
	var v SorobanAddressCredentials
	if err := v.Address.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "Address")
	}
	if err := v.Nonce.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "Nonce")
	}
	if err := v.SignatureExpirationLedger.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "SignatureExpirationLedger")
	}
	if err := v.Signature.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAddressCredentials", "Signature")
	}
	*s = v
	return nil
}

type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeAddress       SorobanCredentialsType = 1
)

var sorobanCredentialsTypeMap = map[int32]string{
	0: "SorobanCredentialsTypeSourceAccount",
	1: "SorobanCredentialsTypeAddress",
}

func (e SorobanCredentialsType) ValidEnum(v int32) bool {
	_, ok := sorobanCredentialsTypeMap[v]
	return ok
}

func (e SorobanCredentialsType) String() string {
	return enumString(sorobanCredentialsTypeMap, "SorobanCredentialsType", int32(e))
}

func (e SorobanCredentialsType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SorobanCredentialsType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SorobanCredentialsType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// SorobanCredentialsSourceAccount authorizes with the transaction's source
// account signature
type SorobanCredentialsSourceAccount struct{}

func (SorobanCredentialsSourceAccount) MarshalXDR(xdr.Encoder) error { return nil }

type SorobanCredentials struct {
	Arm SorobanCredentialsArm
}

// SorobanCredentialsArm is implemented by the arm types of SorobanCredentials
type SorobanCredentialsArm interface {
	xdr.Marshaler
	sorobanCredentialsType() SorobanCredentialsType
}

func (SorobanCredentialsSourceAccount) sorobanCredentialsType() SorobanCredentialsType { return SorobanCredentialsTypeSourceAccount }
func (SorobanAddressCredentials) sorobanCredentialsType() SorobanCredentialsType       { return SorobanCredentialsTypeAddress }

func (s SorobanCredentials) Type() SorobanCredentialsType {
	return s.Arm.sorobanCredentialsType()
}

func (s SorobanCredentials) MarshalXDR(e xdr.Encoder) error {
	if s.Arm == nil {
		return errNilArm("SorobanCredentials")
	}
	if err := s.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanCredentials", "Type")
	}
	return xdr.WithField(s.Arm.MarshalXDR(e), "SorobanCredentials", s.Type().String())
}

func (s *SorobanCredentials) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[SorobanCredentialsType](d)
	if err != nil {
		return xdr.WithField(err, "SorobanCredentials", "Type")
	}

	var arm SorobanCredentialsArm
	switch t {
	case SorobanCredentialsTypeSourceAccount:
		arm = SorobanCredentialsSourceAccount{}
	case SorobanCredentialsTypeAddress:
		var x SorobanAddressCredentials
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("SorobanCredentials", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "SorobanCredentials", t.String())
	}
	s.Arm = arm
	return nil
}

type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (s SorobanAuthorizationEntry) MarshalXDR(e xdr.Encoder) error {
	if err := s.Credentials.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SorobanAuthorizationEntry", "Credentials")
	}
	return xdr.WithField(s.RootInvocation.MarshalXDR(e), "SorobanAuthorizationEntry", "RootInvocation")
}

func (s *SorobanAuthorizationEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v SorobanAuthorizationEntry
	if err := v.Credentials.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAuthorizationEntry", "Credentials")
	}
	if err := v.RootInvocation.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SorobanAuthorizationEntry", "RootInvocation")
	}
	*s = v
	return nil
}

type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (i InvokeHostFunctionOp) MarshalXDR(e xdr.Encoder) error {
	if err := i.HostFunction.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "InvokeHostFunctionOp", "HostFunction")
	}
	return xdr.WithField(xdr.EncodeArray(e, i.Auth, xdr.Unbounded), "InvokeHostFunctionOp", "Auth")
}

func (i *InvokeHostFunctionOp) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   InvokeHostFunctionOp
		err error
	)
	if err = v.HostFunction.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "InvokeHostFunctionOp", "HostFunction")
	}
	if v.Auth, err = xdr.DecodeArray[SorobanAuthorizationEntry](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "InvokeHostFunctionOp", "Auth")
	}
	*i = v
	return nil
}
