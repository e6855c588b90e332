// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"fmt"

	xdr "go.e43.eu/stellarxdr"
)

type CryptoKeyType int32

const (
	CryptoKeyTypeKeyTypeEd25519              CryptoKeyType = 0
	CryptoKeyTypeKeyTypePreAuthTx            CryptoKeyType = 1
	CryptoKeyTypeKeyTypeHashX                CryptoKeyType = 2
	CryptoKeyTypeKeyTypeEd25519SignedPayload CryptoKeyType = 3
	CryptoKeyTypeKeyTypeMuxedEd25519         CryptoKeyType = 0x100
)

var cryptoKeyTypeMap = map[int32]string{
	0:     "CryptoKeyTypeKeyTypeEd25519",
	1:     "CryptoKeyTypeKeyTypePreAuthTx",
	2:     "CryptoKeyTypeKeyTypeHashX",
	3:     "CryptoKeyTypeKeyTypeEd25519SignedPayload",
	0x100: "CryptoKeyTypeKeyTypeMuxedEd25519",
}

func (e CryptoKeyType) ValidEnum(v int32) bool {
	_, ok := cryptoKeyTypeMap[v]
	return ok
}

func (e CryptoKeyType) String() string {
	return enumString(cryptoKeyTypeMap, "CryptoKeyType", int32(e))
}

func (e CryptoKeyType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *CryptoKeyType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[CryptoKeyType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func enumString(names map[int32]string, typeName string, v int32) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", typeName, v)
}

type PublicKeyType int32

const (
	PublicKeyTypePublicKeyTypeEd25519 PublicKeyType = 0
)

var publicKeyTypeMap = map[int32]string{
	0: "PublicKeyTypePublicKeyTypeEd25519",
}

func (e PublicKeyType) ValidEnum(v int32) bool {
	_, ok := publicKeyTypeMap[v]
	return ok
}

func (e PublicKeyType) String() string {
	return enumString(publicKeyTypeMap, "PublicKeyType", int32(e))
}

func (e PublicKeyType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *PublicKeyType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[PublicKeyType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// PublicKey is `union PublicKey switch (PublicKeyType type)`. Ed25519 is
// the only arm, so the union is represented by the key itself.
type PublicKey struct {
	Ed25519 Uint256
}

func (k PublicKey) Type() PublicKeyType {
	return PublicKeyTypePublicKeyTypeEd25519
}

func (k PublicKey) MarshalXDR(e xdr.Encoder) error {
	if err := k.Type().MarshalXDR(e); err != nil {
		return err
	}
	return k.Ed25519.MarshalXDR(e)
}

func (k *PublicKey) UnmarshalXDR(d xdr.Decoder) error {
	var v PublicKey
	t, err := xdr.DecodeEnum[PublicKeyType](d)
	if err != nil {
		return xdr.WithField(err, "PublicKey", "Type")
	}

	switch t {
	case PublicKeyTypePublicKeyTypeEd25519:
		if err := v.Ed25519.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "PublicKey", "Ed25519")
		}
	default:
		return xdr.UnknownArm("PublicKey", int64(t))
	}

	*k = v
	return nil
}

// AccountID identifies an account by its master public key
type AccountID = PublicKey

// NodeID identifies a validator by its public key
type NodeID = PublicKey

// NewAccountID returns the account with ed25519 public key key
func NewAccountID(key [32]byte) AccountID {
	return AccountID{Ed25519: Uint256(key)}
}

type SignerKeyType int32

const (
	SignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

var signerKeyTypeMap = map[int32]string{
	0: "SignerKeyTypeEd25519",
	1: "SignerKeyTypePreAuthTx",
	2: "SignerKeyTypeHashX",
	3: "SignerKeyTypeEd25519SignedPayload",
}

func (e SignerKeyType) ValidEnum(v int32) bool {
	_, ok := signerKeyTypeMap[v]
	return ok
}

func (e SignerKeyType) String() string {
	return enumString(signerKeyTypeMap, "SignerKeyType", int32(e))
}

func (e SignerKeyType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SignerKeyType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SignerKeyType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// SignerKey is a key which may be added as an account signer
type SignerKey struct {
	Arm SignerKeyArm
}

// SignerKeyArm is implemented by SignerKeyEd25519, SignerKeyPreAuthTx,
// SignerKeyHashX and SignerKeyEd25519SignedPayload
type SignerKeyArm interface {
	xdr.Marshaler
	signerKeyType() SignerKeyType
}

type SignerKeyEd25519 Uint256
type SignerKeyPreAuthTx Uint256
type SignerKeyHashX Uint256

// SignerKeyEd25519SignedPayload authorises signatures over Payload by
// Ed25519
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

func (SignerKeyEd25519) signerKeyType() SignerKeyType   { return SignerKeyTypeEd25519 }
func (SignerKeyPreAuthTx) signerKeyType() SignerKeyType { return SignerKeyTypePreAuthTx }
func (SignerKeyHashX) signerKeyType() SignerKeyType     { return SignerKeyTypeHashX }
func (SignerKeyEd25519SignedPayload) signerKeyType() SignerKeyType {
	return SignerKeyTypeEd25519SignedPayload
}

func (k SignerKeyEd25519) MarshalXDR(e xdr.Encoder) error   { return Uint256(k).MarshalXDR(e) }
func (k SignerKeyPreAuthTx) MarshalXDR(e xdr.Encoder) error { return Uint256(k).MarshalXDR(e) }
func (k SignerKeyHashX) MarshalXDR(e xdr.Encoder) error     { return Uint256(k).MarshalXDR(e) }

func (k SignerKeyEd25519SignedPayload) MarshalXDR(e xdr.Encoder) error {
	if err := k.Ed25519.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SignerKeyEd25519SignedPayload", "Ed25519")
	}
	return xdr.WithField(e.EncodeOpaque(k.Payload, SignedPayloadMax), "SignerKeyEd25519SignedPayload", "Payload")
}

func (k *SignerKeyEd25519SignedPayload) UnmarshalXDR(d xdr.Decoder) error {
	var v SignerKeyEd25519SignedPayload
	if err := v.Ed25519.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SignerKeyEd25519SignedPayload", "Ed25519")
	}

	payload, err := d.DecodeOpaque(SignedPayloadMax)
	if err != nil {
		return xdr.WithField(err, "SignerKeyEd25519SignedPayload", "Payload")
	}
	v.Payload = payload

	*k = v
	return nil
}

func (k SignerKey) Type() SignerKeyType {
	return k.Arm.signerKeyType()
}

func (k SignerKey) MarshalXDR(e xdr.Encoder) error {
	if k.Arm == nil {
		return errNilArm("SignerKey")
	}
	if err := k.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SignerKey", "Type")
	}
	return xdr.WithField(k.Arm.MarshalXDR(e), "SignerKey", k.Type().String())
}

func (k *SignerKey) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[SignerKeyType](d)
	if err != nil {
		return xdr.WithField(err, "SignerKey", "Type")
	}

	var arm SignerKeyArm
	switch t {
	case SignerKeyTypeEd25519:
		var u Uint256
		err = u.UnmarshalXDR(d)
		arm = SignerKeyEd25519(u)
	case SignerKeyTypePreAuthTx:
		var u Uint256
		err = u.UnmarshalXDR(d)
		arm = SignerKeyPreAuthTx(u)
	case SignerKeyTypeHashX:
		var u Uint256
		err = u.UnmarshalXDR(d)
		arm = SignerKeyHashX(u)
	case SignerKeyTypeEd25519SignedPayload:
		var p SignerKeyEd25519SignedPayload
		err = p.UnmarshalXDR(d)
		arm = p
	default:
		return xdr.UnknownArm("SignerKey", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "SignerKey", t.String())
	}
	k.Arm = arm
	return nil
}

// MuxedAccount is an account, optionally multiplexed with a 64-bit ID
type MuxedAccount struct {
	Arm MuxedAccountArm
}

// MuxedAccountArm is implemented by MuxedAccountEd25519 and
// MuxedAccountMed25519
type MuxedAccountArm interface {
	xdr.Marshaler
	muxedAccountType() CryptoKeyType
}

type MuxedAccountEd25519 Uint256

type MuxedAccountMed25519 struct {
	ID      Uint64
	Ed25519 Uint256
}

func (MuxedAccountEd25519) muxedAccountType() CryptoKeyType {
	return CryptoKeyTypeKeyTypeEd25519
}

func (MuxedAccountMed25519) muxedAccountType() CryptoKeyType {
	return CryptoKeyTypeKeyTypeMuxedEd25519
}

func (a MuxedAccountEd25519) MarshalXDR(e xdr.Encoder) error {
	return Uint256(a).MarshalXDR(e)
}

func (a MuxedAccountMed25519) MarshalXDR(e xdr.Encoder) error {
	if err := a.ID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "MuxedAccountMed25519", "ID")
	}
	return xdr.WithField(a.Ed25519.MarshalXDR(e), "MuxedAccountMed25519", "Ed25519")
}

func (a *MuxedAccountMed25519) UnmarshalXDR(d xdr.Decoder) error {
	var v MuxedAccountMed25519
	if err := v.ID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "MuxedAccountMed25519", "ID")
	}
	if err := v.Ed25519.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "MuxedAccountMed25519", "Ed25519")
	}
	*a = v
	return nil
}

func (a MuxedAccount) Type() CryptoKeyType {
	return a.Arm.muxedAccountType()
}

func (a MuxedAccount) MarshalXDR(e xdr.Encoder) error {
	if a.Arm == nil {
		return errNilArm("MuxedAccount")
	}
	if err := a.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "MuxedAccount", "Type")
	}
	return xdr.WithField(a.Arm.MarshalXDR(e), "MuxedAccount", a.Type().String())
}

// UnmarshalXDR decodes a MuxedAccount. Only the ed25519 and muxed ed25519
// key types have arms; the other CryptoKeyTypes are rejected.
func (a *MuxedAccount) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[CryptoKeyType](d)
	if err != nil {
		return xdr.WithField(err, "MuxedAccount", "Type")
	}

	var arm MuxedAccountArm
	switch t {
	case CryptoKeyTypeKeyTypeEd25519:
		var u Uint256
		err = u.UnmarshalXDR(d)
		arm = MuxedAccountEd25519(u)
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		var m MuxedAccountMed25519
		err = m.UnmarshalXDR(d)
		arm = m
	default:
		return xdr.UnknownArm("MuxedAccount", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "MuxedAccount", t.String())
	}
	a.Arm = arm
	return nil
}

// PoolID identifies a liquidity pool
type PoolID = Hash

// ContractID identifies a deployed contract
type ContractID = Hash

type ClaimableBalanceIDType int32

const (
	ClaimableBalanceIDTypeV0 ClaimableBalanceIDType = 0
)

var claimableBalanceIDTypeMap = map[int32]string{
	0: "ClaimableBalanceIDTypeV0",
}

func (e ClaimableBalanceIDType) ValidEnum(v int32) bool {
	_, ok := claimableBalanceIDTypeMap[v]
	return ok
}

func (e ClaimableBalanceIDType) String() string {
	return enumString(claimableBalanceIDTypeMap, "ClaimableBalanceIDType", int32(e))
}

func (e ClaimableBalanceIDType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ClaimableBalanceIDType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ClaimableBalanceIDType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ClaimableBalanceID is `union switch (ClaimableBalanceIDType type) { case
// CLAIMABLE_BALANCE_ID_TYPE_V0: Hash v0; }`
type ClaimableBalanceID struct {
	V0 Hash
}

func (id ClaimableBalanceID) Type() ClaimableBalanceIDType {
	return ClaimableBalanceIDTypeV0
}

func (id ClaimableBalanceID) MarshalXDR(e xdr.Encoder) error {
	if err := id.Type().MarshalXDR(e); err != nil {
		return err
	}
	return id.V0.MarshalXDR(e)
}

func (id *ClaimableBalanceID) UnmarshalXDR(d xdr.Decoder) error {
	var v ClaimableBalanceID
	t, err := xdr.DecodeEnum[ClaimableBalanceIDType](d)
	if err != nil {
		return xdr.WithField(err, "ClaimableBalanceID", "Type")
	}

	switch t {
	case ClaimableBalanceIDTypeV0:
		if err := v.V0.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "ClaimableBalanceID", "V0")
		}
	default:
		return xdr.UnknownArm("ClaimableBalanceID", int64(t))
	}

	*id = v
	return nil
}
