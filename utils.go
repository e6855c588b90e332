// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

import (
	"encoding/base64"
	"io"

	"go.e43.eu/stellarxdr/internal/coder"
)

// The default coder (used by the package global functions)
//
// This behaves identically to a coder created using NewCoder with the zero
// Options.
var DefaultCoder Coder = coder.NewCoder(Options{})

// Marshals o into the returned buffer
func Marshal(o Marshaler) ([]byte, error) {
	return DefaultCoder.Marshal(o)
}

// Unmarshals buf into the object pointed to by op. Every byte of buf must
// be consumed; trailing data is ErrTrailingBytes.
func Unmarshal(buf []byte, op Unmarshaler) error {
	return DefaultCoder.Unmarshal(buf, op)
}

// UnmarshalPrefix unmarshals a value from the start of buf and returns
// the number of bytes it occupied
func UnmarshalPrefix(buf []byte, op Unmarshaler) (int, error) {
	return DefaultCoder.UnmarshalPrefix(buf, op)
}

// Write marshals o into the passed writer
func Write(w io.Writer, o Marshaler) error {
	return DefaultCoder.Write(w, o)
}

// Read unmarshals *op out of the passed reader
func Read(r io.Reader, op Unmarshaler) error {
	return DefaultCoder.Read(r, op)
}

// MarshalBase64 marshals o and returns the standard base64 encoding of the
// result, as used to embed XDR in JSON (e.g. Soroban RPC)
func MarshalBase64(o Marshaler) (string, error) {
	b, err := Marshal(o)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// UnmarshalBase64 decodes standard base64 and unmarshals the result into op
func UnmarshalBase64(s string, op Unmarshaler) error {
	return UnmarshalBase64With(DefaultCoder, s, op)
}

// UnmarshalBase64With is UnmarshalBase64 using the limits of cr
func UnmarshalBase64With(cr Coder, s string, op Unmarshaler) error {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	return cr.Unmarshal(b, op)
}

// Constructs a new encoder
func NewEncoder() Encoder {
	return DefaultCoder.NewEncoder()
}

// Constructs a new decoder which reads from buf
func NewDecoder(buf []byte) Decoder {
	return DefaultCoder.NewDecoder(buf)
}

// Construct a new Coder applying opts
func NewCoder(opts Options) Coder {
	return coder.NewCoder(opts)
}
