// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package coder

import (
	"sync"

	xdrinterfaces "go.e43.eu/stellarxdr/interfaces"
	"go.e43.eu/stellarxdr/internal/errors"
)

var decoderPool = sync.Pool{
	New: func() interface{} {
		return new(decoder)
	},
}

// minElemSize is the smallest encoding of any array element. Used to reject
// counts which could not possibly fit in the remaining input before
// allocating for them.
const minElemSize = 4

type decoder struct {
	buf   []byte
	off   int
	depth uint
	opts  *Options
}

var _ xdrinterfaces.Decoder = &decoder{}

func (d *decoder) reset(buf []byte, opts *Options) {
	d.buf = buf
	d.off = 0
	d.depth = 0
	d.opts = opts
}

func (d *decoder) Offset() int {
	return d.off
}

func (d *decoder) Remaining() int {
	return len(d.buf) - d.off
}

// take returns the next n bytes and advances the cursor, or fails without
// moving it
func (d *decoder) take(n int) ([]byte, error) {
	if n > d.Remaining() {
		return nil, errors.ErrTruncatedInput
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) DecodeBool() (bool, error) {
	i, err := d.peekUnsignedInt()
	if err != nil {
		return false, err
	}

	switch i {
	case 0, 1:
		d.off += 4
		return i == 1, nil
	default:
		return false, errors.ErrInvalidValue
	}
}

func (d *decoder) DecodeOptionalFlag() (bool, error) {
	i, err := d.peekUnsignedInt()
	switch {
	case err != nil:
		return false, err
	case i > 1 && !d.opts.LenientOptionalFlags:
		return false, errors.ErrMalformedOptionalFlag
	}

	d.off += 4
	return i != 0, nil
}

func (d *decoder) DecodeInt() (int32, error) {
	u, err := d.DecodeUnsignedInt()
	return int32(u), err
}

func (d *decoder) peekUnsignedInt() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, errors.ErrTruncatedInput
	}
	b := d.buf[d.off : d.off+4]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (d *decoder) DecodeUnsignedInt() (uint32, error) {
	u, err := d.peekUnsignedInt()
	if err == nil {
		d.off += 4
	}
	return u, err
}

func (d *decoder) DecodeHyper() (int64, error) {
	u, err := d.DecodeUnsignedHyper()
	return int64(u), err
}

func (d *decoder) DecodeUnsignedHyper() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return (uint64(b[0])<<56 |
		uint64(b[1])<<48 |
		uint64(b[2])<<40 |
		uint64(b[3])<<32 |
		uint64(b[4])<<24 |
		uint64(b[5])<<16 |
		uint64(b[6])<<8 |
		uint64(b[7])), nil
}

// padded validates that n bytes of data plus padding are available at
// offset off and that the padding is zero. It returns the padded length.
func (d *decoder) padded(off int, n uint32) (int, error) {
	total := uint64(n) + uint64(padLen(int(n&3)))
	if total > uint64(len(d.buf)-off) {
		return 0, errors.LengthError{Actual: total, Max: uint64(len(d.buf) - off), Truncated: true}
	}

	for _, p := range d.buf[off+int(n) : off+int(total)] {
		if p != 0 {
			return 0, errors.ErrNonZeroPadding
		}
	}
	return int(total), nil
}

func (d *decoder) DecodeOpaque(maxLen uint32) ([]byte, error) {
	l, err := d.peekUnsignedInt()
	switch {
	case err != nil:
		return nil, err
	case l > maxLen:
		return nil, errors.LengthError{Actual: uint64(l), Max: uint64(maxLen)}
	}

	start := d.off + 4
	total, err := d.padded(start, l)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, l)
	copy(buf, d.buf[start:])
	d.off = start + total
	return buf, nil
}

func (d *decoder) DecodeFixedOpaque(buf []byte) error {
	total, err := d.padded(d.off, uint32(len(buf)))
	if err != nil {
		return err
	}

	copy(buf, d.buf[d.off:])
	d.off += total
	return nil
}

func (d *decoder) DecodeString(maxLen uint32) (string, error) {
	b, err := d.DecodeOpaque(maxLen)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) DecodeArrayLen(maxLen uint32) (int, error) {
	l, err := d.peekUnsignedInt()
	switch {
	case err != nil:
		return 0, err
	case l > maxLen:
		return 0, errors.LengthError{Actual: uint64(l), Max: uint64(maxLen)}
	case d.opts.MaxArrayLen != 0 && l > d.opts.MaxArrayLen:
		return 0, errors.LengthError{Actual: uint64(l), Max: uint64(d.opts.MaxArrayLen)}
	case uint64(l)*minElemSize > uint64(d.Remaining()-4):
		return 0, errors.LengthError{
			Actual:    uint64(l) * minElemSize,
			Max:       uint64(d.Remaining() - 4),
			Truncated: true,
		}
	}

	d.off += 4
	return int(l), nil
}

func (d *decoder) Decode(op xdrinterfaces.Unmarshaler) error {
	return op.UnmarshalXDR(d)
}

func (d *decoder) Enter() error {
	if d.depth >= d.opts.maxDepth() {
		return errors.ErrMaxDepthExceeded
	}
	d.depth++
	return nil
}

func (d *decoder) Leave() {
	d.depth--
}

func (d *decoder) release() {
	d.buf = nil
	d.opts = nil
	decoderPool.Put(d)
}
