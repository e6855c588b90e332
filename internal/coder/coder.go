// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"bufio"
	"bytes"
	"io"
	"sync"

	xdrinterfaces "go.e43.eu/stellarxdr/interfaces"
	"go.e43.eu/stellarxdr/internal/errors"
)

// DefaultMaxDepth is the nesting limit applied to recursive types when
// Options.MaxDepth is zero
const DefaultMaxDepth = 200

// Options holds the limits a Coder applies while decoding.
//
// The zero value is usable: default depth, no input limit beyond the buffer
// itself, and strict optional flags.
type Options struct {
	// MaxDepth bounds nesting of recursive types (SCVal, ClaimPredicate,
	// SCPQuorumSet...). Zero means DefaultMaxDepth.
	MaxDepth uint

	// MaxInputLen rejects inputs longer than this many bytes before decoding
	// begins. Zero means unlimited.
	MaxInputLen int

	// MaxArrayLen bounds the element count of every variable length array,
	// in addition to the schema limit. Zero means only the schema limit and
	// the remaining input apply.
	MaxArrayLen uint32

	// LenientOptionalFlags accepts any non-zero optional presence flag as
	// "present" instead of rejecting values other than 1.
	LenientOptionalFlags bool
}

func (o *Options) maxDepth() uint {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

type Coder struct {
	opts Options
}

var _ xdrinterfaces.Coder = &Coder{}

func NewCoder(opts Options) *Coder {
	return &Coder{opts: opts}
}

// Options returns the options this coder was constructed with
func (cr *Coder) Options() Options {
	return cr.opts
}

func (cr *Coder) NewEncoder() xdrinterfaces.Encoder {
	return new(encoder)
}

func (cr *Coder) NewDecoder(buf []byte) xdrinterfaces.Decoder {
	d := new(decoder)
	d.reset(buf, &cr.opts)
	return d
}

func (cr *Coder) newDecoder(buf []byte) *decoder {
	d := decoderPool.Get().(*decoder)
	d.reset(buf, &cr.opts)
	return d
}

func (cr *Coder) Marshal(o xdrinterfaces.Marshaler) ([]byte, error) {
	e := encoderPool.Get().(*encoder)
	defer e.release()

	if err := e.Encode(o); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func (cr *Coder) Unmarshal(buf []byte, op xdrinterfaces.Unmarshaler) error {
	n, err := cr.UnmarshalPrefix(buf, op)
	if err == nil && n != len(buf) {
		// op has already been overwritten; the caller must discard it
		return errors.ErrTrailingBytes
	}
	return err
}

func (cr *Coder) UnmarshalPrefix(buf []byte, op xdrinterfaces.Unmarshaler) (int, error) {
	if cr.opts.MaxInputLen != 0 && len(buf) > cr.opts.MaxInputLen {
		return 0, errors.ErrInputTooLarge
	}

	d := cr.newDecoder(buf)
	defer d.release()

	if err := d.Decode(op); err != nil {
		return d.Offset(), err
	}
	return d.Offset(), nil
}

var writerPool = sync.Pool{
	New: func() interface{} {
		return bufio.NewWriter(nil)
	},
}

func (cr *Coder) Write(w io.Writer, o xdrinterfaces.Marshaler) error {
	e := encoderPool.Get().(*encoder)
	defer e.release()

	if err := e.Encode(o); err != nil {
		return err
	}

	switch w.(type) {
	case *bytes.Buffer, *bufio.Writer:
		// Already buffered
		_, err := e.b.WriteTo(w)
		return err
	}

	bw := writerPool.Get().(*bufio.Writer)
	bw.Reset(w)
	_, err := e.b.WriteTo(bw)
	if err == nil {
		err = bw.Flush()
	}
	bw.Reset(nil)
	writerPool.Put(bw)
	return err
}

func (cr *Coder) Read(r io.Reader, op xdrinterfaces.Unmarshaler) error {
	if cr.opts.MaxInputLen != 0 {
		r = io.LimitReader(r, int64(cr.opts.MaxInputLen)+1)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return cr.Unmarshal(buf, op)
}
