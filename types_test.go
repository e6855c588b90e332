// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

// Small XDR types exercising each building block, used by the codec tests

type tBool bool

func (b tBool) MarshalXDR(e Encoder) error { return e.EncodeBool(bool(b)) }

func (b *tBool) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeBool()
	if err != nil {
		return err
	}
	*b = tBool(v)
	return nil
}

type tInt int32

func (i tInt) MarshalXDR(e Encoder) error { return e.EncodeInt(int32(i)) }

func (i *tInt) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeInt()
	if err != nil {
		return err
	}
	*i = tInt(v)
	return nil
}

type tUint uint32

func (i tUint) MarshalXDR(e Encoder) error { return e.EncodeUnsignedInt(uint32(i)) }

func (i *tUint) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeUnsignedInt()
	if err != nil {
		return err
	}
	*i = tUint(v)
	return nil
}

type tHyper int64

func (h tHyper) MarshalXDR(e Encoder) error { return e.EncodeHyper(int64(h)) }

func (h *tHyper) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeHyper()
	if err != nil {
		return err
	}
	*h = tHyper(v)
	return nil
}

type tUhyper uint64

func (h tUhyper) MarshalXDR(e Encoder) error { return e.EncodeUnsignedHyper(uint64(h)) }

func (h *tUhyper) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeUnsignedHyper()
	if err != nil {
		return err
	}
	*h = tUhyper(v)
	return nil
}

// tOpaque is `opaque tOpaque<8>`
type tOpaque []byte

func (o tOpaque) MarshalXDR(e Encoder) error { return e.EncodeOpaque(o, 8) }

func (o *tOpaque) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeOpaque(8)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// tUnboundedOpaque is `opaque tUnboundedOpaque<>`
type tUnboundedOpaque []byte

func (o tUnboundedOpaque) MarshalXDR(e Encoder) error { return e.EncodeOpaque(o, Unbounded) }

func (o *tUnboundedOpaque) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeOpaque(Unbounded)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// tFixed is `opaque tFixed[3]`
type tFixed [3]byte

func (f tFixed) MarshalXDR(e Encoder) error { return e.EncodeFixedOpaque(f[:], len(f)) }

func (f *tFixed) UnmarshalXDR(d Decoder) error {
	var v tFixed
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*f = v
	return nil
}

// tShortFixed claims to be `opaque[3]` but holds whatever it is given
type tShortFixed []byte

func (f tShortFixed) MarshalXDR(e Encoder) error { return e.EncodeFixedOpaque(f, 3) }

func (f *tShortFixed) UnmarshalXDR(d Decoder) error {
	v := make([]byte, 3)
	if err := d.DecodeFixedOpaque(v); err != nil {
		return err
	}
	*f = v
	return nil
}

// tString is `string tString<5>`
type tString string

func (s tString) MarshalXDR(e Encoder) error { return e.EncodeString(string(s), 5) }

func (s *tString) UnmarshalXDR(d Decoder) error {
	v, err := d.DecodeString(5)
	if err != nil {
		return err
	}
	*s = tString(v)
	return nil
}

// tOpt is `struct { int *V; }`
type tOpt struct {
	V *tInt
}

func (o tOpt) MarshalXDR(e Encoder) error {
	return WithField(EncodeOptional(e, o.V), "tOpt", "V")
}

func (o *tOpt) UnmarshalXDR(d Decoder) error {
	v, err := DecodeOptional[tInt](d)
	if err != nil {
		return WithField(err, "tOpt", "V")
	}
	*o = tOpt{V: v}
	return nil
}

// tArr is `int tArr<3>`
type tArr []tInt

func (a tArr) MarshalXDR(e Encoder) error { return EncodeArray(e, a, 3) }

func (a *tArr) UnmarshalXDR(d Decoder) error {
	v, err := DecodeArray[tInt](d, 3)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// tPair is `int tPair[2]`
type tPair []tInt

func (p tPair) MarshalXDR(e Encoder) error { return EncodeFixedArray(e, p, 2) }

func (p *tPair) UnmarshalXDR(d Decoder) error {
	v, err := DecodeFixedArray[tInt](d, 2)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// tColor is `enum { RED = 0, GREEN = 1, BLUE = 5 }`
type tColor int32

const (
	tRed   tColor = 0
	tGreen tColor = 1
	tBlue  tColor = 5
)

func (tColor) ValidEnum(v int32) bool {
	switch tColor(v) {
	case tRed, tGreen, tBlue:
		return true
	}
	return false
}

func (c tColor) MarshalXDR(e Encoder) error { return EncodeEnum(e, c) }

func (c *tColor) UnmarshalXDR(d Decoder) error {
	v, err := DecodeEnum[tColor](d)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// tShape is
//
//	union switch (tColor c) {
//	case RED: int radius;
//	case GREEN: void;
//	}
//
// BLUE is a valid tColor with no arm.
type tShape struct {
	Arm tShapeArm
}

type tShapeArm interface {
	shapeColor() tColor
}

type tCircle tInt

type tPoint struct{}

func (tCircle) shapeColor() tColor { return tRed }
func (tPoint) shapeColor() tColor  { return tGreen }

func (s tShape) MarshalXDR(e Encoder) error {
	if s.Arm == nil {
		return &EncodingError{Underlying: ErrInvalidValue}
	}
	if err := EncodeEnum(e, s.Arm.shapeColor()); err != nil {
		return err
	}

	switch arm := s.Arm.(type) {
	case tCircle:
		return WithField(tInt(arm).MarshalXDR(e), "tShape", "Circle")
	default:
		return nil
	}
}

func (s *tShape) UnmarshalXDR(d Decoder) error {
	c, err := DecodeEnum[tColor](d)
	if err != nil {
		return WithField(err, "tShape", "Color")
	}

	switch c {
	case tRed:
		var r tInt
		if err := r.UnmarshalXDR(d); err != nil {
			return WithField(err, "tShape", "Circle")
		}
		*s = tShape{Arm: tCircle(r)}
	case tGreen:
		*s = tShape{Arm: tPoint{}}
	default:
		return UnknownArm("tShape", int64(c))
	}
	return nil
}

// tTree is `struct tTree { tTree children<>; }`
type tTree struct {
	Children []tTree
}

func (t tTree) MarshalXDR(e Encoder) error {
	return WithField(EncodeArray(e, t.Children, Unbounded), "tTree", "Children")
}

func (t *tTree) UnmarshalXDR(d Decoder) error {
	if err := d.Enter(); err != nil {
		return err
	}
	defer d.Leave()

	c, err := DecodeArray[tTree](d, Unbounded)
	if err != nil {
		return WithField(err, "tTree", "Children")
	}
	*t = tTree{Children: c}
	return nil
}

// nest returns a tree of the given depth
func nest(depth int) tTree {
	var t tTree
	t.Children = []tTree{}
	for i := 1; i < depth; i++ {
		t = tTree{Children: []tTree{t}}
	}
	return t
}
