// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package stellar contains the Stellar protocol's ledger, transaction, SCP
// and Soroban types, each with a hand-maintained XDR encoding that mirrors
// the protocol's .x definitions field for field.
//
// Records are plain structs. Unions are structs holding a sealed Arm
// interface; the concrete arm type determines the discriminant. Versioned
// extension points (`union switch (int v) { case 0: void; case N: ... }`)
// are structs with a pointer per non-void version.
package stellar

import (
	"fmt"

	xdr "go.e43.eu/stellarxdr"
)

// Protocol limits
const (
	MaxSigners       = 20
	SCSymbolLimit    = 32
	MemoTextLimit    = 28
	SignatureLimit   = 64
	MaxClaimants     = 10
	MaxPredicates    = 2
	SignedPayloadMax = 64
	DataValueLimit   = 64
	String32Limit    = 32
	String64Limit    = 64
)

type Uint32 uint32

func (v Uint32) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeUnsignedInt(uint32(v))
}

func (v *Uint32) UnmarshalXDR(d xdr.Decoder) error {
	u, err := d.DecodeUnsignedInt()
	if err != nil {
		return err
	}
	*v = Uint32(u)
	return nil
}

type Int32 int32

func (v Int32) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeInt(int32(v))
}

func (v *Int32) UnmarshalXDR(d xdr.Decoder) error {
	i, err := d.DecodeInt()
	if err != nil {
		return err
	}
	*v = Int32(i)
	return nil
}

type Uint64 uint64

func (v Uint64) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeUnsignedHyper(uint64(v))
}

func (v *Uint64) UnmarshalXDR(d xdr.Decoder) error {
	u, err := d.DecodeUnsignedHyper()
	if err != nil {
		return err
	}
	*v = Uint64(u)
	return nil
}

type Int64 int64

func (v Int64) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeHyper(int64(v))
}

func (v *Int64) UnmarshalXDR(d xdr.Decoder) error {
	i, err := d.DecodeHyper()
	if err != nil {
		return err
	}
	*v = Int64(i)
	return nil
}

// TimePoint is seconds since the Unix epoch
type TimePoint = Uint64

// Duration is a span of seconds
type Duration = Uint64

// SequenceNumber is an account's transaction sequence number
type SequenceNumber = Int64

// Hash is a SHA-256 digest (`opaque Hash[32]`)
type Hash [32]byte

func (h Hash) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeFixedOpaque(h[:], len(h))
}

func (h *Hash) UnmarshalXDR(d xdr.Decoder) error {
	var v Hash
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*h = v
	return nil
}

// Uint256 is a 256-bit opaque value, typically an ed25519 key
type Uint256 [32]byte

func (u Uint256) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeFixedOpaque(u[:], len(u))
}

func (u *Uint256) UnmarshalXDR(d xdr.Decoder) error {
	var v Uint256
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*u = v
	return nil
}

// Signature is `opaque Signature<64>`
type Signature []byte

func (s Signature) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeOpaque(s, SignatureLimit)
}

func (s *Signature) UnmarshalXDR(d xdr.Decoder) error {
	b, err := d.DecodeOpaque(SignatureLimit)
	if err != nil {
		return err
	}
	*s = b
	return nil
}

// SignatureHint is the last four bytes of the signing key
type SignatureHint [4]byte

func (h SignatureHint) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeFixedOpaque(h[:], len(h))
}

func (h *SignatureHint) UnmarshalXDR(d xdr.Decoder) error {
	var v SignatureHint
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*h = v
	return nil
}

// Thresholds holds the master weight and low/medium/high thresholds
type Thresholds [4]byte

func (t Thresholds) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeFixedOpaque(t[:], len(t))
}

func (t *Thresholds) UnmarshalXDR(d xdr.Decoder) error {
	var v Thresholds
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

type String32 string

func (s String32) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeString(string(s), String32Limit)
}

func (s *String32) UnmarshalXDR(d xdr.Decoder) error {
	v, err := d.DecodeString(String32Limit)
	if err != nil {
		return err
	}
	*s = String32(v)
	return nil
}

type String64 string

func (s String64) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeString(string(s), String64Limit)
}

func (s *String64) UnmarshalXDR(d xdr.Decoder) error {
	v, err := d.DecodeString(String64Limit)
	if err != nil {
		return err
	}
	*s = String64(v)
	return nil
}

// DataValue is `opaque DataValue<64>`
type DataValue []byte

func (v DataValue) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeOpaque(v, DataValueLimit)
}

func (v *DataValue) UnmarshalXDR(d xdr.Decoder) error {
	b, err := d.DecodeOpaque(DataValueLimit)
	if err != nil {
		return err
	}
	*v = b
	return nil
}

// ExtensionPoint is `union switch (int v) { case 0: void; }`, reserved for
// future protocol versions
type ExtensionPoint struct{}

func (ExtensionPoint) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeInt(0)
}

func (x *ExtensionPoint) UnmarshalXDR(d xdr.Decoder) error {
	return decodeVoidExt(d, "ExtensionPoint")
}

// decodeVoidExt reads the discriminant of an extension with only a void arm
func decodeVoidExt(d xdr.Decoder, typeName string) error {
	v, err := d.DecodeInt()
	switch {
	case err != nil:
		return err
	case v != 0:
		return xdr.UnknownArm(typeName, int64(v))
	}
	return nil
}

// decodeExtVersion reads the discriminant of an extension whose arms are
// void (0) and a single later version
func decodeExtVersion(d xdr.Decoder, typeName string, version int32) (bool, error) {
	v, err := d.DecodeInt()
	switch {
	case err != nil:
		return false, err
	case v == 0:
		return false, nil
	case v == version:
		return true, nil
	default:
		return false, xdr.UnknownArm(typeName, int64(v))
	}
}

// decodeExt decodes an extension with a void arm and a single later version,
// returning nil for the void arm
func decodeExt[T any, PT xdr.PtrUnmarshaler[T]](d xdr.Decoder, typeName string, version int32) (*T, error) {
	present, err := decodeExtVersion(d, typeName, version)
	if err != nil || !present {
		return nil, err
	}

	v := new(T)
	if err := PT(v).UnmarshalXDR(d); err != nil {
		return nil, xdr.WithField(err, typeName, fmt.Sprintf("V%d", version))
	}
	return v, nil
}

// encodeExtVersion writes the discriminant and, if present, the body of an
// extension with a void arm and a single later version
func encodeExtVersion[T xdr.Marshaler](e xdr.Encoder, version int32, body *T) error {
	if body == nil {
		return e.EncodeInt(0)
	}
	if err := e.EncodeInt(version); err != nil {
		return err
	}
	return (*body).MarshalXDR(e)
}

// errNilArm is returned when encoding a union whose arm was never set
func errNilArm(typeName string) error {
	return xdr.WithField(&xdr.EncodingError{Underlying: xdr.ErrInvalidValue}, typeName, "Arm")
}
