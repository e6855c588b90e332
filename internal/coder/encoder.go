// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"bytes"
	"math"
	"sync"

	xdrinterfaces "go.e43.eu/stellarxdr/interfaces"
	"go.e43.eu/stellarxdr/internal/errors"
)

// 4 byte array which will always contain zeroes that we use whenever
// we need to emit padding
var pad [4]byte

var encoderPool = sync.Pool{
	New: func() interface{} {
		return new(encoder)
	},
}

type encoder struct {
	// Output buffer; its contents are the complete wire message
	b bytes.Buffer

	// Small scratch buffer (avoids needing to ever allocate when writing primitives)
	scratch [8]byte
}

var _ xdrinterfaces.Encoder = &encoder{}

func padLen(n int) int {
	return (4 - (n & 3)) & 3
}

func (w *encoder) EncodeInt(i int32) error {
	w.scratch[0] = byte(i >> 24)
	w.scratch[1] = byte(i >> 16)
	w.scratch[2] = byte(i >> 8)
	w.scratch[3] = byte(i)
	w.b.Write(w.scratch[0:4])
	return nil
}

func (w *encoder) EncodeUnsignedInt(i uint32) error {
	return w.EncodeInt(int32(i))
}

func (w *encoder) EncodeBool(b bool) error {
	i := 0
	if b {
		i = 1
	}
	return w.EncodeInt(int32(i))
}

func (w *encoder) EncodeHyper(i int64) error {
	w.scratch[0] = byte(i >> 56)
	w.scratch[1] = byte(i >> 48)
	w.scratch[2] = byte(i >> 40)
	w.scratch[3] = byte(i >> 32)
	w.scratch[4] = byte(i >> 24)
	w.scratch[5] = byte(i >> 16)
	w.scratch[6] = byte(i >> 8)
	w.scratch[7] = byte(i)
	w.b.Write(w.scratch[0:8])
	return nil
}

func (w *encoder) EncodeUnsignedHyper(u uint64) error {
	return w.EncodeHyper(int64(u))
}

func checkLen(l int, maxLen uint32) error {
	if uint64(l) > uint64(maxLen) || uint64(l) > uint64(math.MaxUint32) {
		return &errors.EncodingError{Underlying: errors.LengthError{Actual: uint64(l), Max: uint64(maxLen)}}
	}
	return nil
}

func (w *encoder) EncodeOpaque(buf []byte, maxLen uint32) error {
	if err := checkLen(len(buf), maxLen); err != nil {
		return err
	}

	w.EncodeUnsignedInt(uint32(len(buf)))
	w.writePadded(buf)
	return nil
}

func (w *encoder) EncodeFixedOpaque(buf []byte, n int) error {
	if len(buf) != n {
		return &errors.EncodingError{Underlying: errors.ErrLengthIncorrect}
	}

	w.writePadded(buf)
	return nil
}

func (w *encoder) writePadded(buf []byte) {
	w.b.Write(buf)
	w.b.Write(pad[0:padLen(len(buf))])
}

func (w *encoder) EncodeString(s string, maxLen uint32) error {
	if err := checkLen(len(s), maxLen); err != nil {
		return err
	}

	w.EncodeUnsignedInt(uint32(len(s)))
	w.b.WriteString(s)
	w.b.Write(pad[0:padLen(len(s))])
	return nil
}

func (w *encoder) EncodeOptionalFlag(present bool) error {
	return w.EncodeBool(present)
}

func (w *encoder) EncodeArrayLen(n int, maxLen uint32) error {
	if err := checkLen(n, maxLen); err != nil {
		return err
	}
	return w.EncodeUnsignedInt(uint32(n))
}

func (w *encoder) Encode(o xdrinterfaces.Marshaler) error {
	return errors.Encoding(o.MarshalXDR(w))
}

func (w *encoder) Len() int {
	return w.b.Len()
}

// Bytes returns a copy of everything written so far
func (w *encoder) Bytes() []byte {
	return append([]byte(nil), w.b.Bytes()...)
}

func (w *encoder) release() {
	w.b.Reset()
	encoderPool.Put(w)
}
