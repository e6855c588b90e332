// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package xdr implements encoding and decoding of the XDR
// (External Data Representation) format, as specified in RFC 4506 and as
// used by the Stellar network for ledger, transaction, SCP and Soroban data.
//
// Types describe their own wire shape by implementing Marshaler (on the
// value) and Unmarshaler (on the pointer). There is no reflection and no
// schema compiler: every type's MarshalXDR/UnmarshalXDR visit its fields in
// declaration order, and must be exact mirror images of each other, since
// the encoded bytes are hashed and signed.
//
// The mapping from XDR to the Go building blocks in this package is:
//
//                  XDR | Go
//     -----------------+------------------------------------------------
//     int              | Encoder.EncodeInt / Decoder.DecodeInt
//     unsigned int     | EncodeUnsignedInt / DecodeUnsignedInt
//     hyper            | EncodeHyper / DecodeHyper
//     unsigned hyper   | EncodeUnsignedHyper / DecodeUnsignedHyper
//     bool             | EncodeBool / DecodeBool
//     opaque ident[N]  | EncodeFixedOpaque(b, N) / DecodeFixedOpaque
//     opaque ident<N>  | EncodeOpaque(b, N) / DecodeOpaque(N)
//     string ident<N>  | EncodeString(s, N) / DecodeString(N)
//     T *ident         | EncodeOptional / DecodeOptional
//     T ident<N>       | EncodeArray / DecodeArray
//     enum             | EncodeEnum / DecodeEnum
//     union            | discriminant followed by a switch over arms
//
// (in the above `T`, `N` and `ident` are metavariables corresponding to
// an arbitrary type, an arbitrary (maximum) length, and an arbitrary identifier
// respectively; `<>` with no limit is written as Unbounded)
//
// Enumerations are Go types with an int32 underlying type which report
// their defined values through ValidEnum. Decoding a value outside that set
// fails with ErrUnknownDiscriminant; it is never mapped to a default.
//
// Unions are a struct holding a sealed interface, with one Go type per arm.
// The arm reports its own discriminant, so the discriminant written on encode
// always agrees with the payload.
//
// Decoding works on a complete in-memory buffer. Every length read from the
// wire is validated against the schema limit and the remaining input before
// anything is allocated. Additional limits (nesting depth, total input
// size, array element counts) are configured through Options.
package xdr

import (
	xdrinterfaces "go.e43.eu/stellarxdr/interfaces"
	"go.e43.eu/stellarxdr/internal/coder"
	"go.e43.eu/stellarxdr/internal/errors"
)

// interface Coder is the top-level interface to the XDR library
//
// A coder (which may be safely used from multiple threads) provides the ability
// to marshal objects to and from XDR under a fixed set of Options.
type Coder = xdrinterfaces.Coder

// interface Encoder is the interface to the XDR encoder
type Encoder = xdrinterfaces.Encoder

// interface Decoder is the interface to the XDR decoder
type Decoder = xdrinterfaces.Decoder

// interface Marshaler is implemented by types which can encode themselves
type Marshaler = xdrinterfaces.Marshaler

// interface Unmarshaler is implemented by pointers to types which can decode
// themselves
type Unmarshaler = xdrinterfaces.Unmarshaler

// Options configures the limits applied while decoding
type Options = coder.Options

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero
const DefaultMaxDepth = coder.DefaultMaxDepth

// Unbounded is the maximum length of a variable length field declared
// without a limit (`<>`)
const Unbounded = ^uint32(0)

const (
	ErrTruncatedInput        = errors.ErrTruncatedInput
	ErrLengthExceedsMax      = errors.ErrLengthExceedsMax
	ErrLengthIncorrect       = errors.ErrLengthIncorrect
	ErrUnknownDiscriminant   = errors.ErrUnknownDiscriminant
	ErrMalformedOptionalFlag = errors.ErrMalformedOptionalFlag
	ErrInvalidValue          = errors.ErrInvalidValue
	ErrNonZeroPadding        = errors.ErrNonZeroPadding
	ErrMaxDepthExceeded      = errors.ErrMaxDepthExceeded
	ErrTrailingBytes         = errors.ErrTrailingBytes
	ErrInputTooLarge         = errors.ErrInputTooLarge
	ErrEncoding              = errors.ErrEncoding
)

// UnknownDiscriminantError reports an enum value or union discriminant with
// no mapping in the protocol
type UnknownDiscriminantError = errors.UnknownDiscriminantError

// EncodingError reports a value which cannot be represented on the wire
type EncodingError = errors.EncodingError

// LengthError reports a length exceeding a schema limit or the remaining
// input
type LengthError = errors.LengthError

// FieldError locates an error within a nested value
type FieldError = errors.FieldError
