// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"encoding/binary"
	"fmt"
	"math/big"

	xdr "go.e43.eu/stellarxdr"
)

// limbsToBig interprets big-endian 64-bit limbs as an integer, two's
// complement if signed
func limbsToBig(signed bool, limbs ...uint64) *big.Int {
	buf := make([]byte, 8*len(limbs))
	for i, l := range limbs {
		binary.BigEndian.PutUint64(buf[8*i:], l)
	}

	v := new(big.Int).SetBytes(buf)
	if signed && buf[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*len(buf))))
	}
	return v
}

// bigToLimbs splits v into n big-endian 64-bit limbs, failing if v does not
// fit
func bigToLimbs(v *big.Int, signed bool, n int) ([]uint64, error) {
	bits := 64 * n
	x := new(big.Int).Set(v)

	if signed {
		bound := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if x.Cmp(bound) >= 0 || x.Cmp(new(big.Int).Neg(bound)) < 0 {
			return nil, fmt.Errorf("%w: %s does not fit in a signed %d-bit integer", xdr.ErrInvalidValue, v, bits)
		}
		if x.Sign() < 0 {
			x.Add(x, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
		}
	} else if x.Sign() < 0 || x.BitLen() > bits {
		return nil, fmt.Errorf("%w: %s does not fit in an unsigned %d-bit integer", xdr.ErrInvalidValue, v, bits)
	}

	buf := x.FillBytes(make([]byte, 8*n))
	limbs := make([]uint64, n)
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint64(buf[8*i:])
	}
	return limbs, nil
}

func (p UInt128Parts) Big() *big.Int {
	return limbsToBig(false, uint64(p.Hi), uint64(p.Lo))
}

func (p Int128Parts) Big() *big.Int {
	return limbsToBig(true, uint64(p.Hi), uint64(p.Lo))
}

func (p UInt256Parts) Big() *big.Int {
	return limbsToBig(false, uint64(p.HiHi), uint64(p.HiLo), uint64(p.LoHi), uint64(p.LoLo))
}

func (p Int256Parts) Big() *big.Int {
	return limbsToBig(true, uint64(p.HiHi), uint64(p.HiLo), uint64(p.LoHi), uint64(p.LoLo))
}

func NewUInt128PartsFromBig(v *big.Int) (UInt128Parts, error) {
	l, err := bigToLimbs(v, false, 2)
	if err != nil {
		return UInt128Parts{}, err
	}
	return UInt128Parts{Hi: Uint64(l[0]), Lo: Uint64(l[1])}, nil
}

func NewInt128PartsFromBig(v *big.Int) (Int128Parts, error) {
	l, err := bigToLimbs(v, true, 2)
	if err != nil {
		return Int128Parts{}, err
	}
	return Int128Parts{Hi: Int64(l[0]), Lo: Uint64(l[1])}, nil
}

func NewUInt256PartsFromBig(v *big.Int) (UInt256Parts, error) {
	l, err := bigToLimbs(v, false, 4)
	if err != nil {
		return UInt256Parts{}, err
	}
	return UInt256Parts{HiHi: Uint64(l[0]), HiLo: Uint64(l[1]), LoHi: Uint64(l[2]), LoLo: Uint64(l[3])}, nil
}

func NewInt256PartsFromBig(v *big.Int) (Int256Parts, error) {
	l, err := bigToLimbs(v, true, 4)
	if err != nil {
		return Int256Parts{}, err
	}
	return Int256Parts{HiHi: Int64(l[0]), HiLo: Uint64(l[1]), LoHi: Uint64(l[2]), LoLo: Uint64(l[3])}, nil
}

// NewSCValI128 returns v as an i128 contract value
func NewSCValI128(v *big.Int) (SCVal, error) {
	p, err := NewInt128PartsFromBig(v)
	return SCVal{Arm: p}, err
}

// NewSCValU128 returns v as a u128 contract value
func NewSCValU128(v *big.Int) (SCVal, error) {
	p, err := NewUInt128PartsFromBig(v)
	return SCVal{Arm: p}, err
}

func NewSCValI256(v *big.Int) (SCVal, error) {
	p, err := NewInt256PartsFromBig(v)
	return SCVal{Arm: p}, err
}

func NewSCValU256(v *big.Int) (SCVal, error) {
	p, err := NewUInt256PartsFromBig(v)
	return SCVal{Arm: p}, err
}
