// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package xdrinterfaces defines the primary interfaces of the XDR encoder
//
// (This package is primarily separated out in order to permit the implementation to
// be broken down into multiple packages)
package xdrinterfaces

import (
	"io"
)

// interface Marshaler is the interface implemented by a type which knows how to
// encode itself to XDR
type Marshaler interface {
	MarshalXDR(e Encoder) error
}

// interface Unmarshaler is the interface implemented by a type which knows how to
// decode itself from XDR. It is implemented on the pointer type.
//
// Implementations must leave the receiver untouched if they return an error.
type Unmarshaler interface {
	UnmarshalXDR(d Decoder) error
}

// interface Coder is the top-level interface to the XDR library
//
// A coder (which may be safely used from multiple threads) provides the ability
// to marshal objects to and from XDR under a fixed set of decoding limits.
type Coder interface {
	// Marshals o into the returned buffer
	Marshal(o Marshaler) ([]byte, error)

	// Unmarshals buf into the object pointed to by op. Every byte of buf
	// must be consumed.
	Unmarshal(buf []byte, op Unmarshaler) error

	// UnmarshalPrefix unmarshals a value from the start of buf and returns
	// the number of bytes consumed
	UnmarshalPrefix(buf []byte, op Unmarshaler) (int, error)

	// Write marshals o into the passed writer
	Write(w io.Writer, o Marshaler) error

	// Read unmarshals *op out of the passed reader, which must contain exactly
	// one value
	Read(r io.Reader, op Unmarshaler) error

	// Constructs a new encoder which appends to an internal buffer
	NewEncoder() Encoder

	// Constructs a new decoder which reads from buf
	NewDecoder(buf []byte) Decoder
}

// interface Encoder is the interface to the XDR encoder
//
// Every method appends a multiple of four bytes. Errors are always
// EncodingErrors; nothing is written by a call which fails validation.
type Encoder interface {
	// EncodeBool writes a bool to the XDR encoder
	EncodeBool(b bool) error

	// EncodeInt writes an int to the XDR encoder
	EncodeInt(i int32) error

	// EncodeUnsignedInt writes an unsigned int to the XDR encoder
	EncodeUnsignedInt(i uint32) error

	// EncodeHyper writes a hyper (int64) to the XDR encoder
	EncodeHyper(h int64) error

	// EncodeUnsignedHyper writes an unsigned hyper (uint64) to the XDR encoder
	EncodeUnsignedHyper(h uint64) error

	// EncodeOpaque writes an `opaque<maxLen>` (dense byte slice) to the XDR encoder
	EncodeOpaque(b []byte, maxLen uint32) error

	// EncodeFixedOpaque writes an `opaque[n]` to the XDR encoder.
	// No length prefix is written; len(b) must equal n
	EncodeFixedOpaque(b []byte, n int) error

	// EncodeString writes a `string<maxLen>` to the XDR encoder
	EncodeString(s string, maxLen uint32) error

	// EncodeOptionalFlag writes the presence flag of an optional value
	EncodeOptionalFlag(present bool) error

	// EncodeArrayLen writes the element count of a variable length array
	EncodeArrayLen(n int, maxLen uint32) error

	// Encode writes an object to the XDR encoder
	Encode(o Marshaler) error

	// Len returns the number of bytes written so far
	Len() int

	// Bytes returns a copy of everything written so far
	Bytes() []byte
}

// interface Decoder is the interface to the XDR decoder
//
// A decoder is a cursor over a complete input buffer. Every method either
// advances the cursor by exactly the encoded size of the value, or fails
// and leaves it untouched.
type Decoder interface {
	DecodeBool() (bool, error)
	DecodeInt() (int32, error)
	DecodeUnsignedInt() (uint32, error)
	DecodeHyper() (int64, error)
	DecodeUnsignedHyper() (uint64, error)

	// DecodeOpaque reads an opaque of maximum length maxLen from the XDR decoder
	// A newly allocated buffer is returned (never nil).
	DecodeOpaque(maxLen uint32) ([]byte, error)

	// DecodeFixedOpaque reads a fixed-size opaque into the passed buffer
	DecodeFixedOpaque(buf []byte) error

	// DecodeString reads a string (with maximum length maxLen) from the decoder
	DecodeString(maxLen uint32) (string, error)

	// DecodeOptionalFlag reads the presence flag of an optional value
	DecodeOptionalFlag() (bool, error)

	// DecodeArrayLen reads the element count of a variable length array and
	// validates it against maxLen and the remaining input
	DecodeArrayLen(maxLen uint32) (int, error)

	// Decode reads an object from the stream into *op.
	Decode(op Unmarshaler) error

	// Enter records descent into a nested value of a recursive type; Leave
	// must be called once the value is decoded
	Enter() error
	Leave()

	// Offset returns the number of bytes consumed so far
	Offset() int

	// Remaining returns the number of bytes left in the input
	Remaining() int
}
