// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

type SCValType int32

const (
	SCValTypeBool                      SCValType = 0
	SCValTypeVoid                      SCValType = 1
	SCValTypeError                     SCValType = 2
	SCValTypeU32                       SCValType = 3
	SCValTypeI32                       SCValType = 4
	SCValTypeU64                       SCValType = 5
	SCValTypeI64                       SCValType = 6
	SCValTypeTimepoint                 SCValType = 7
	SCValTypeDuration                  SCValType = 8
	SCValTypeU128                      SCValType = 9
	SCValTypeI128                      SCValType = 10
	SCValTypeU256                      SCValType = 11
	SCValTypeI256                      SCValType = 12
	SCValTypeBytes                     SCValType = 13
	SCValTypeString                    SCValType = 14
	SCValTypeSymbol                    SCValType = 15
	SCValTypeVec                       SCValType = 16
	SCValTypeMap                       SCValType = 17
	SCValTypeAddress                   SCValType = 18
	SCValTypeContractInstance          SCValType = 19
	SCValTypeLedgerKeyContractInstance SCValType = 20
	SCValTypeLedgerKeyNonce            SCValType = 21
)

var scValTypeMap = map[int32]string{
	0:  "SCValTypeBool",
	1:  "SCValTypeVoid",
	2:  "SCValTypeError",
	3:  "SCValTypeU32",
	4:  "SCValTypeI32",
	5:  "SCValTypeU64",
	6:  "SCValTypeI64",
	7:  "SCValTypeTimepoint",
	8:  "SCValTypeDuration",
	9:  "SCValTypeU128",
	10: "SCValTypeI128",
	11: "SCValTypeU256",
	12: "SCValTypeI256",
	13: "SCValTypeBytes",
	14: "SCValTypeString",
	15: "SCValTypeSymbol",
	16: "SCValTypeVec",
	17: "SCValTypeMap",
	18: "SCValTypeAddress",
	19: "SCValTypeContractInstance",
	20: "SCValTypeLedgerKeyContractInstance",
	21: "SCValTypeLedgerKeyNonce",
}

func (e SCValType) ValidEnum(v int32) bool {
	_, ok := scValTypeMap[v]
	return ok
}

func (e SCValType) String() string {
	return enumString(scValTypeMap, "SCValType", int32(e))
}

func (e SCValType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SCValType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SCValType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type SCErrorType int32

const (
	SCErrorTypeContract SCErrorType = 0
	SCErrorTypeWasmVM   SCErrorType = 1
	SCErrorTypeContext  SCErrorType = 2
	SCErrorTypeStorage  SCErrorType = 3
	SCErrorTypeObject   SCErrorType = 4
	SCErrorTypeCrypto   SCErrorType = 5
	SCErrorTypeEvents   SCErrorType = 6
	SCErrorTypeBudget   SCErrorType = 7
	SCErrorTypeValue    SCErrorType = 8
	SCErrorTypeAuth     SCErrorType = 9
)

var scErrorTypeMap = map[int32]string{
	0: "SCErrorTypeContract",
	1: "SCErrorTypeWasmVM",
	2: "SCErrorTypeContext",
	3: "SCErrorTypeStorage",
	4: "SCErrorTypeObject",
	5: "SCErrorTypeCrypto",
	6: "SCErrorTypeEvents",
	7: "SCErrorTypeBudget",
	8: "SCErrorTypeValue",
	9: "SCErrorTypeAuth",
}

func (e SCErrorType) ValidEnum(v int32) bool {
	_, ok := scErrorTypeMap[v]
	return ok
}

func (e SCErrorType) String() string {
	return enumString(scErrorTypeMap, "SCErrorType", int32(e))
}

func (e SCErrorType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SCErrorType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SCErrorType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type SCErrorCode int32

const (
	SCErrorCodeArithDomain    SCErrorCode = 0
	SCErrorCodeIndexBounds    SCErrorCode = 1
	SCErrorCodeInvalidInput   SCErrorCode = 2
	SCErrorCodeMissingValue   SCErrorCode = 3
	SCErrorCodeExistingValue  SCErrorCode = 4
	SCErrorCodeExceededLimit  SCErrorCode = 5
	SCErrorCodeInvalidAction  SCErrorCode = 6
	SCErrorCodeInternalError  SCErrorCode = 7
	SCErrorCodeUnexpectedType SCErrorCode = 8
	SCErrorCodeUnexpectedSize SCErrorCode = 9
)

var scErrorCodeMap = map[int32]string{
	0: "SCErrorCodeArithDomain",
	1: "SCErrorCodeIndexBounds",
	2: "SCErrorCodeInvalidInput",
	3: "SCErrorCodeMissingValue",
	4: "SCErrorCodeExistingValue",
	5: "SCErrorCodeExceededLimit",
	6: "SCErrorCodeInvalidAction",
	7: "SCErrorCodeInternalError",
	8: "SCErrorCodeUnexpectedType",
	9: "SCErrorCodeUnexpectedSize",
}

func (e SCErrorCode) ValidEnum(v int32) bool {
	_, ok := scErrorCodeMap[v]
	return ok
}

func (e SCErrorCode) String() string {
	return enumString(scErrorCodeMap, "SCErrorCode", int32(e))
}

func (e SCErrorCode) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SCErrorCode) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SCErrorCode](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// SCError is a contract or host error
type SCError struct {
	Arm SCErrorArm
}

// SCErrorArm is implemented by SCErrorContract and SCErrorHost
type SCErrorArm interface {
	xdr.Marshaler
	scErrorType() SCErrorType
}

// SCErrorContract is an error code raised by a contract
type SCErrorContract Uint32

// SCErrorHost is an error raised by the host. Type selects the subsystem
// and must not be SCErrorTypeContract.
type SCErrorHost struct {
	Type SCErrorType
	Code SCErrorCode
}

func (SCErrorContract) scErrorType() SCErrorType { return SCErrorTypeContract }
func (h SCErrorHost) scErrorType() SCErrorType   { return h.Type }

func (c SCErrorContract) MarshalXDR(e xdr.Encoder) error {
	return Uint32(c).MarshalXDR(e)
}

func (h SCErrorHost) MarshalXDR(e xdr.Encoder) error {
	return h.Code.MarshalXDR(e)
}

func (s SCError) Type() SCErrorType {
	return s.Arm.scErrorType()
}

func (s SCError) MarshalXDR(e xdr.Encoder) error {
	if s.Arm == nil {
		return errNilArm("SCError")
	}
	if h, ok := s.Arm.(SCErrorHost); ok && h.Type == SCErrorTypeContract {
		return xdr.WithField(&xdr.EncodingError{Underlying: xdr.ErrInvalidValue}, "SCError", "Type")
	}
	if err := s.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCError", "Type")
	}
	return xdr.WithField(s.Arm.MarshalXDR(e), "SCError", s.Type().String())
}

func (s *SCError) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[SCErrorType](d)
	if err != nil {
		return xdr.WithField(err, "SCError", "Type")
	}

	var arm SCErrorArm
	switch t {
	case SCErrorTypeContract:
		var c Uint32
		err = c.UnmarshalXDR(d)
		arm = SCErrorContract(c)
	case SCErrorTypeWasmVM, SCErrorTypeContext, SCErrorTypeStorage,
		SCErrorTypeObject, SCErrorTypeCrypto, SCErrorTypeEvents,
		SCErrorTypeBudget, SCErrorTypeValue, SCErrorTypeAuth:
		var c SCErrorCode
		err = c.UnmarshalXDR(d)
		arm = SCErrorHost{Type: t, Code: c}
	default:
		return xdr.UnknownArm("SCError", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "SCError", t.String())
	}
	s.Arm = arm
	return nil
}

// UInt128Parts is an unsigned 128-bit integer as two 64-bit limbs, most
// significant first
type UInt128Parts struct {
	Hi Uint64
	Lo Uint64
}

func (p UInt128Parts) MarshalXDR(e xdr.Encoder) error {
	if err := p.Hi.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "UInt128Parts", "Hi")
	}
	return xdr.WithField(p.Lo.MarshalXDR(e), "UInt128Parts", "Lo")
}

func (p *UInt128Parts) UnmarshalXDR(d xdr.Decoder) error {
	var v UInt128Parts
	if err := v.Hi.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "UInt128Parts", "Hi")
	}
	if err := v.Lo.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "UInt128Parts", "Lo")
	}
	*p = v
	return nil
}

// Int128Parts is a two's complement 128-bit integer; the sign is carried by
// Hi
type Int128Parts struct {
	Hi Int64
	Lo Uint64
}

func (p Int128Parts) MarshalXDR(e xdr.Encoder) error {
	if err := p.Hi.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Int128Parts", "Hi")
	}
	return xdr.WithField(p.Lo.MarshalXDR(e), "Int128Parts", "Lo")
}

func (p *Int128Parts) UnmarshalXDR(d xdr.Decoder) error {
	var v Int128Parts
	if err := v.Hi.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Int128Parts", "Hi")
	}
	if err := v.Lo.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Int128Parts", "Lo")
	}
	*p = v
	return nil
}

type UInt256Parts struct {
	HiHi Uint64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

func (p UInt256Parts) MarshalXDR(e xdr.Encoder) error {
	for i, limb := range [...]Uint64{p.HiHi, p.HiLo, p.LoHi, p.LoLo} {
		if err := limb.MarshalXDR(e); err != nil {
			return xdr.WithField(err, "UInt256Parts", limbNames[i])
		}
	}
	return nil
}

func (p *UInt256Parts) UnmarshalXDR(d xdr.Decoder) error {
	var v UInt256Parts
	for i, limb := range [...]*Uint64{&v.HiHi, &v.HiLo, &v.LoHi, &v.LoLo} {
		if err := limb.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "UInt256Parts", limbNames[i])
		}
	}
	*p = v
	return nil
}

type Int256Parts struct {
	HiHi Int64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

var limbNames = [...]string{"HiHi", "HiLo", "LoHi", "LoLo"}

func (p Int256Parts) MarshalXDR(e xdr.Encoder) error {
	if err := p.HiHi.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Int256Parts", "HiHi")
	}
	for i, limb := range [...]Uint64{p.HiLo, p.LoHi, p.LoLo} {
		if err := limb.MarshalXDR(e); err != nil {
			return xdr.WithField(err, "Int256Parts", limbNames[i+1])
		}
	}
	return nil
}

func (p *Int256Parts) UnmarshalXDR(d xdr.Decoder) error {
	var v Int256Parts
	if err := v.HiHi.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Int256Parts", "HiHi")
	}
	for i, limb := range [...]*Uint64{&v.HiLo, &v.LoHi, &v.LoLo} {
		if err := limb.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "Int256Parts", limbNames[i+1])
		}
	}
	*p = v
	return nil
}

type ContractExecutableType int32

const (
	ContractExecutableTypeWasm         ContractExecutableType = 0
	ContractExecutableTypeStellarAsset ContractExecutableType = 1
)

var contractExecutableTypeMap = map[int32]string{
	0: "ContractExecutableTypeWasm",
	1: "ContractExecutableTypeStellarAsset",
}

func (e ContractExecutableType) ValidEnum(v int32) bool {
	_, ok := contractExecutableTypeMap[v]
	return ok
}

func (e ContractExecutableType) String() string {
	return enumString(contractExecutableTypeMap, "ContractExecutableType", int32(e))
}

func (e ContractExecutableType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ContractExecutableType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ContractExecutableType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ContractExecutable is the code backing a contract instance: uploaded
// Wasm, or the built-in Stellar Asset Contract
type ContractExecutable struct {
	Arm ContractExecutableArm
}

// ContractExecutableArm is implemented by ContractExecutableWasm and
// ContractExecutableStellarAsset
type ContractExecutableArm interface {
	xdr.Marshaler
	contractExecutableType() ContractExecutableType
}

// ContractExecutableWasm is the hash of the contract's Wasm code
type ContractExecutableWasm Hash

type ContractExecutableStellarAsset struct{}

func (ContractExecutableWasm) contractExecutableType() ContractExecutableType {
	return ContractExecutableTypeWasm
}

func (ContractExecutableStellarAsset) contractExecutableType() ContractExecutableType {
	return ContractExecutableTypeStellarAsset
}

func (w ContractExecutableWasm) MarshalXDR(e xdr.Encoder) error {
	return Hash(w).MarshalXDR(e)
}

func (ContractExecutableStellarAsset) MarshalXDR(xdr.Encoder) error { return nil }

func (c ContractExecutable) Type() ContractExecutableType {
	return c.Arm.contractExecutableType()
}

func (c ContractExecutable) MarshalXDR(e xdr.Encoder) error {
	if c.Arm == nil {
		return errNilArm("ContractExecutable")
	}
	if err := c.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractExecutable", "Type")
	}
	return xdr.WithField(c.Arm.MarshalXDR(e), "ContractExecutable", c.Type().String())
}

func (c *ContractExecutable) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[ContractExecutableType](d)
	if err != nil {
		return xdr.WithField(err, "ContractExecutable", "Type")
	}

	switch t {
	case ContractExecutableTypeWasm:
		var h Hash
		if err := h.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "ContractExecutable", t.String())
		}
		c.Arm = ContractExecutableWasm(h)
	case ContractExecutableTypeStellarAsset:
		c.Arm = ContractExecutableStellarAsset{}
	default:
		return xdr.UnknownArm("ContractExecutable", int64(t))
	}
	return nil
}

type SCAddressType int32

const (
	SCAddressTypeAccount          SCAddressType = 0
	SCAddressTypeContract         SCAddressType = 1
	SCAddressTypeMuxedAccount     SCAddressType = 2
	SCAddressTypeClaimableBalance SCAddressType = 3
	SCAddressTypeLiquidityPool    SCAddressType = 4
)

var scAddressTypeMap = map[int32]string{
	0: "SCAddressTypeAccount",
	1: "SCAddressTypeContract",
	2: "SCAddressTypeMuxedAccount",
	3: "SCAddressTypeClaimableBalance",
	4: "SCAddressTypeLiquidityPool",
}

func (e SCAddressType) ValidEnum(v int32) bool {
	_, ok := scAddressTypeMap[v]
	return ok
}

func (e SCAddressType) String() string {
	return enumString(scAddressTypeMap, "SCAddressType", int32(e))
}

func (e SCAddressType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SCAddressType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SCAddressType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type MuxedEd25519Account struct {
	ID      Uint64
	Ed25519 Uint256
}

func (a MuxedEd25519Account) MarshalXDR(e xdr.Encoder) error {
	if err := a.ID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "MuxedEd25519Account", "ID")
	}
	return xdr.WithField(a.Ed25519.MarshalXDR(e), "MuxedEd25519Account", "Ed25519")
}

func (a *MuxedEd25519Account) UnmarshalXDR(d xdr.Decoder) error {
	var v MuxedEd25519Account
	if err := v.ID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "MuxedEd25519Account", "ID")
	}
	if err := v.Ed25519.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "MuxedEd25519Account", "Ed25519")
	}
	*a = v
	return nil
}

// SCAddress is an address as seen by a contract
type SCAddress struct {
	Arm SCAddressArm
}

// SCAddressArm is implemented by SCAddressAccount, SCAddressContract,
// SCAddressMuxedAccount, SCAddressClaimableBalance and
// SCAddressLiquidityPool
type SCAddressArm interface {
	xdr.Marshaler
	scAddressType() SCAddressType
}

type SCAddressAccount AccountID
type SCAddressContract ContractID
type SCAddressMuxedAccount MuxedEd25519Account
type SCAddressClaimableBalance ClaimableBalanceID
type SCAddressLiquidityPool PoolID

func (SCAddressAccount) scAddressType() SCAddressType      { return SCAddressTypeAccount }
func (SCAddressContract) scAddressType() SCAddressType     { return SCAddressTypeContract }
func (SCAddressMuxedAccount) scAddressType() SCAddressType { return SCAddressTypeMuxedAccount }
func (SCAddressClaimableBalance) scAddressType() SCAddressType {
	return SCAddressTypeClaimableBalance
}
func (SCAddressLiquidityPool) scAddressType() SCAddressType { return SCAddressTypeLiquidityPool }

func (a SCAddressAccount) MarshalXDR(e xdr.Encoder) error  { return AccountID(a).MarshalXDR(e) }
func (a SCAddressContract) MarshalXDR(e xdr.Encoder) error { return ContractID(a).MarshalXDR(e) }
func (a SCAddressMuxedAccount) MarshalXDR(e xdr.Encoder) error {
	return MuxedEd25519Account(a).MarshalXDR(e)
}
func (a SCAddressClaimableBalance) MarshalXDR(e xdr.Encoder) error {
	return ClaimableBalanceID(a).MarshalXDR(e)
}
func (a SCAddressLiquidityPool) MarshalXDR(e xdr.Encoder) error { return PoolID(a).MarshalXDR(e) }

// NewSCAddressForAccountID returns the address of an account
func NewSCAddressForAccountID(id AccountID) SCAddress {
	return SCAddress{Arm: SCAddressAccount(id)}
}

// NewSCAddressForContract returns the address of a contract
func NewSCAddressForContract(id ContractID) SCAddress {
	return SCAddress{Arm: SCAddressContract(id)}
}

func (a SCAddress) Type() SCAddressType {
	return a.Arm.scAddressType()
}

func (a SCAddress) MarshalXDR(e xdr.Encoder) error {
	if a.Arm == nil {
		return errNilArm("SCAddress")
	}
	if err := a.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCAddress", "Type")
	}
	return xdr.WithField(a.Arm.MarshalXDR(e), "SCAddress", a.Type().String())
}

func (a *SCAddress) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[SCAddressType](d)
	if err != nil {
		return xdr.WithField(err, "SCAddress", "Type")
	}

	var arm SCAddressArm
	switch t {
	case SCAddressTypeAccount:
		var id AccountID
		err = id.UnmarshalXDR(d)
		arm = SCAddressAccount(id)
	case SCAddressTypeContract:
		var id ContractID
		err = id.UnmarshalXDR(d)
		arm = SCAddressContract(id)
	case SCAddressTypeMuxedAccount:
		var m MuxedEd25519Account
		err = m.UnmarshalXDR(d)
		arm = SCAddressMuxedAccount(m)
	case SCAddressTypeClaimableBalance:
		var id ClaimableBalanceID
		err = id.UnmarshalXDR(d)
		arm = SCAddressClaimableBalance(id)
	case SCAddressTypeLiquidityPool:
		var id PoolID
		err = id.UnmarshalXDR(d)
		arm = SCAddressLiquidityPool(id)
	default:
		return xdr.UnknownArm("SCAddress", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "SCAddress", t.String())
	}
	a.Arm = arm
	return nil
}

// SCBytes is `opaque SCBytes<>`
type SCBytes []byte

func (b SCBytes) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeOpaque(b, xdr.Unbounded)
}

func (b *SCBytes) UnmarshalXDR(d xdr.Decoder) error {
	v, err := d.DecodeOpaque(xdr.Unbounded)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// SCString is `string SCString<>`. It is not required to be UTF-8.
type SCString string

func (s SCString) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeString(string(s), xdr.Unbounded)
}

func (s *SCString) UnmarshalXDR(d xdr.Decoder) error {
	v, err := d.DecodeString(xdr.Unbounded)
	if err != nil {
		return err
	}
	*s = SCString(v)
	return nil
}

// SCSymbol is `string SCSymbol<SCSYMBOL_LIMIT>`
type SCSymbol string

func (s SCSymbol) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeString(string(s), SCSymbolLimit)
}

func (s *SCSymbol) UnmarshalXDR(d xdr.Decoder) error {
	v, err := d.DecodeString(SCSymbolLimit)
	if err != nil {
		return err
	}
	*s = SCSymbol(v)
	return nil
}

// SCVec is `SCVal SCVec<>`
type SCVec []SCVal

func (v SCVec) MarshalXDR(e xdr.Encoder) error {
	return xdr.EncodeArray(e, []SCVal(v), xdr.Unbounded)
}

func (v *SCVec) UnmarshalXDR(d xdr.Decoder) error {
	vals, err := xdr.DecodeArray[SCVal](d, xdr.Unbounded)
	if err != nil {
		return err
	}
	*v = vals
	return nil
}

type SCMapEntry struct {
	Key SCVal
	Val SCVal
}

func (m SCMapEntry) MarshalXDR(e xdr.Encoder) error {
	if err := m.Key.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCMapEntry", "Key")
	}
	return xdr.WithField(m.Val.MarshalXDR(e), "SCMapEntry", "Val")
}

func (m *SCMapEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v SCMapEntry
	if err := v.Key.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCMapEntry", "Key")
	}
	if err := v.Val.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCMapEntry", "Val")
	}
	*m = v
	return nil
}

// SCMap is `SCMapEntry SCMap<>`. Entries are encoded in slice order; the
// host requires keys to be sorted, which is not checked here.
type SCMap []SCMapEntry

func (m SCMap) MarshalXDR(e xdr.Encoder) error {
	return xdr.EncodeArray(e, []SCMapEntry(m), xdr.Unbounded)
}

func (m *SCMap) UnmarshalXDR(d xdr.Decoder) error {
	entries, err := xdr.DecodeArray[SCMapEntry](d, xdr.Unbounded)
	if err != nil {
		return err
	}
	*m = entries
	return nil
}

type SCNonceKey struct {
	Nonce Int64
}

func (k SCNonceKey) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(k.Nonce.MarshalXDR(e), "SCNonceKey", "Nonce")
}

func (k *SCNonceKey) UnmarshalXDR(d xdr.Decoder) error {
	var v SCNonceKey
	if err := v.Nonce.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCNonceKey", "Nonce")
	}
	*k = v
	return nil
}

type SCContractInstance struct {
	Executable ContractExecutable
	Storage    *SCMap
}

func (c SCContractInstance) MarshalXDR(e xdr.Encoder) error {
	if err := c.Executable.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCContractInstance", "Executable")
	}
	return xdr.WithField(xdr.EncodeOptional(e, c.Storage), "SCContractInstance", "Storage")
}

func (c *SCContractInstance) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   SCContractInstance
		err error
	)
	if err = v.Executable.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCContractInstance", "Executable")
	}
	if v.Storage, err = xdr.DecodeOptional[SCMap](d); err != nil {
		return xdr.WithField(err, "SCContractInstance", "Storage")
	}
	*c = v
	return nil
}

// SCVal is a Soroban contract value
type SCVal struct {
	Arm SCValArm
}

// SCValArm is implemented by the arm types of SCVal: SCValBool, SCValVoid,
// SCError, SCValU32, SCValI32, SCValU64, SCValI64, SCValTimepoint,
// SCValDuration, UInt128Parts, Int128Parts, UInt256Parts, Int256Parts,
// SCBytes, SCString, SCSymbol, SCValVec, SCValMap, SCAddress,
// SCContractInstance, SCValLedgerKeyContractInstance and SCNonceKey
type SCValArm interface {
	xdr.Marshaler
	scValType() SCValType
}

type SCValBool bool
type SCValVoid struct{}
type SCValU32 Uint32
type SCValI32 Int32
type SCValU64 Uint64
type SCValI64 Int64
type SCValTimepoint TimePoint
type SCValDuration Duration

// SCValVec is `SCVec *vec`; a nil Vec is encoded as absent
type SCValVec struct {
	Vec *SCVec
}

// SCValMap is `SCMap *map`; a nil Map is encoded as absent
type SCValMap struct {
	Map *SCMap
}

// SCValLedgerKeyContractInstance is the key under which a contract's
// instance is stored
type SCValLedgerKeyContractInstance struct{}

func (SCValBool) scValType() SCValType                      { return SCValTypeBool }
func (SCValVoid) scValType() SCValType                      { return SCValTypeVoid }
func (SCError) scValType() SCValType                        { return SCValTypeError }
func (SCValU32) scValType() SCValType                       { return SCValTypeU32 }
func (SCValI32) scValType() SCValType                       { return SCValTypeI32 }
func (SCValU64) scValType() SCValType                       { return SCValTypeU64 }
func (SCValI64) scValType() SCValType                       { return SCValTypeI64 }
func (SCValTimepoint) scValType() SCValType                 { return SCValTypeTimepoint }
func (SCValDuration) scValType() SCValType                  { return SCValTypeDuration }
func (UInt128Parts) scValType() SCValType                   { return SCValTypeU128 }
func (Int128Parts) scValType() SCValType                    { return SCValTypeI128 }
func (UInt256Parts) scValType() SCValType                   { return SCValTypeU256 }
func (Int256Parts) scValType() SCValType                    { return SCValTypeI256 }
func (SCBytes) scValType() SCValType                        { return SCValTypeBytes }
func (SCString) scValType() SCValType                       { return SCValTypeString }
func (SCSymbol) scValType() SCValType                       { return SCValTypeSymbol }
func (SCValVec) scValType() SCValType                       { return SCValTypeVec }
func (SCValMap) scValType() SCValType                       { return SCValTypeMap }
func (SCAddress) scValType() SCValType                      { return SCValTypeAddress }
func (SCContractInstance) scValType() SCValType             { return SCValTypeContractInstance }
func (SCValLedgerKeyContractInstance) scValType() SCValType { return SCValTypeLedgerKeyContractInstance }
func (SCNonceKey) scValType() SCValType                     { return SCValTypeLedgerKeyNonce }

func (v SCValBool) MarshalXDR(e xdr.Encoder) error      { return e.EncodeBool(bool(v)) }
func (SCValVoid) MarshalXDR(xdr.Encoder) error          { return nil }
func (v SCValU32) MarshalXDR(e xdr.Encoder) error       { return Uint32(v).MarshalXDR(e) }
func (v SCValI32) MarshalXDR(e xdr.Encoder) error       { return Int32(v).MarshalXDR(e) }
func (v SCValU64) MarshalXDR(e xdr.Encoder) error       { return Uint64(v).MarshalXDR(e) }
func (v SCValI64) MarshalXDR(e xdr.Encoder) error       { return Int64(v).MarshalXDR(e) }
func (v SCValTimepoint) MarshalXDR(e xdr.Encoder) error { return TimePoint(v).MarshalXDR(e) }
func (v SCValDuration) MarshalXDR(e xdr.Encoder) error  { return Duration(v).MarshalXDR(e) }
func (v SCValVec) MarshalXDR(e xdr.Encoder) error       { return xdr.EncodeOptional(e, v.Vec) }
func (v SCValMap) MarshalXDR(e xdr.Encoder) error       { return xdr.EncodeOptional(e, v.Map) }

func (SCValLedgerKeyContractInstance) MarshalXDR(xdr.Encoder) error { return nil }

func (v SCVal) Type() SCValType {
	return v.Arm.scValType()
}

func (v SCVal) MarshalXDR(e xdr.Encoder) error {
	if v.Arm == nil {
		return errNilArm("SCVal")
	}
	if err := v.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCVal", "Type")
	}
	return xdr.WithField(v.Arm.MarshalXDR(e), "SCVal", v.Type().String())
}

func (v *SCVal) UnmarshalXDR(d xdr.Decoder) error {
	if err := d.Enter(); err != nil {
		return err
	}
	defer d.Leave()

	t, err := xdr.DecodeEnum[SCValType](d)
	if err != nil {
		return xdr.WithField(err, "SCVal", "Type")
	}

	arm, err := decodeSCValArm(d, t)
	if err != nil {
		return xdr.WithField(err, "SCVal", t.String())
	}
	v.Arm = arm
	return nil
}

func decodeSCValArm(d xdr.Decoder, t SCValType) (SCValArm, error) {
	switch t {
	case SCValTypeBool:
		b, err := d.DecodeBool()
		return SCValBool(b), err
	case SCValTypeVoid:
		return SCValVoid{}, nil
	case SCValTypeError:
		var e SCError
		err := e.UnmarshalXDR(d)
		return e, err
	case SCValTypeU32:
		var u Uint32
		err := u.UnmarshalXDR(d)
		return SCValU32(u), err
	case SCValTypeI32:
		var i Int32
		err := i.UnmarshalXDR(d)
		return SCValI32(i), err
	case SCValTypeU64:
		var u Uint64
		err := u.UnmarshalXDR(d)
		return SCValU64(u), err
	case SCValTypeI64:
		var i Int64
		err := i.UnmarshalXDR(d)
		return SCValI64(i), err
	case SCValTypeTimepoint:
		var tp TimePoint
		err := tp.UnmarshalXDR(d)
		return SCValTimepoint(tp), err
	case SCValTypeDuration:
		var dur Duration
		err := dur.UnmarshalXDR(d)
		return SCValDuration(dur), err
	case SCValTypeU128:
		var p UInt128Parts
		err := p.UnmarshalXDR(d)
		return p, err
	case SCValTypeI128:
		var p Int128Parts
		err := p.UnmarshalXDR(d)
		return p, err
	case SCValTypeU256:
		var p UInt256Parts
		err := p.UnmarshalXDR(d)
		return p, err
	case SCValTypeI256:
		var p Int256Parts
		err := p.UnmarshalXDR(d)
		return p, err
	case SCValTypeBytes:
		var b SCBytes
		err := b.UnmarshalXDR(d)
		return b, err
	case SCValTypeString:
		var s SCString
		err := s.UnmarshalXDR(d)
		return s, err
	case SCValTypeSymbol:
		var s SCSymbol
		err := s.UnmarshalXDR(d)
		return s, err
	case SCValTypeVec:
		vec, err := xdr.DecodeOptional[SCVec](d)
		return SCValVec{Vec: vec}, err
	case SCValTypeMap:
		m, err := xdr.DecodeOptional[SCMap](d)
		return SCValMap{Map: m}, err
	case SCValTypeAddress:
		var a SCAddress
		err := a.UnmarshalXDR(d)
		return a, err
	case SCValTypeContractInstance:
		var c SCContractInstance
		err := c.UnmarshalXDR(d)
		return c, err
	case SCValTypeLedgerKeyContractInstance:
		return SCValLedgerKeyContractInstance{}, nil
	case SCValTypeLedgerKeyNonce:
		var k SCNonceKey
		err := k.UnmarshalXDR(d)
		return k, err
	default:
		return nil, xdr.UnknownArm("SCVal", int64(t))
	}
}

func NewSCValBool(b bool) SCVal          { return SCVal{Arm: SCValBool(b)} }
func NewSCValVoid() SCVal                { return SCVal{Arm: SCValVoid{}} }
func NewSCValU32(v uint32) SCVal         { return SCVal{Arm: SCValU32(v)} }
func NewSCValI32(v int32) SCVal          { return SCVal{Arm: SCValI32(v)} }
func NewSCValU64(v uint64) SCVal         { return SCVal{Arm: SCValU64(v)} }
func NewSCValI64(v int64) SCVal          { return SCVal{Arm: SCValI64(v)} }
func NewSCValBytes(b []byte) SCVal       { return SCVal{Arm: SCBytes(b)} }
func NewSCValString(s string) SCVal      { return SCVal{Arm: SCString(s)} }
func NewSCValSymbol(s string) SCVal      { return SCVal{Arm: SCSymbol(s)} }
func NewSCValAddress(a SCAddress) SCVal  { return SCVal{Arm: a} }
func NewSCValError(e SCError) SCVal      { return SCVal{Arm: e} }
func NewSCValNonceKey(nonce int64) SCVal { return SCVal{Arm: SCNonceKey{Nonce: Int64(nonce)}} }

// NewSCValVec returns a vector of vals. The vector is present even when
// vals is empty.
func NewSCValVec(vals ...SCVal) SCVal {
	vec := SCVec(vals)
	if vec == nil {
		vec = SCVec{}
	}
	return SCVal{Arm: SCValVec{Vec: &vec}}
}

// NewSCValMap returns a map of entries, which must already be sorted by key
func NewSCValMap(entries ...SCMapEntry) SCVal {
	m := SCMap(entries)
	if m == nil {
		m = SCMap{}
	}
	return SCVal{Arm: SCValMap{Map: &m}}
}
