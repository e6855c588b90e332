// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

import (
	"fmt"

	"go.e43.eu/stellarxdr/internal/errors"
)

// Enum is implemented by XDR enumerations. ValidEnum reports whether v is
// one of the values declared by the protocol; it must not depend on the
// receiver's value.
type Enum interface {
	~int32
	ValidEnum(v int32) bool
}

// EncodeEnum writes an enum value. Undeclared values cannot be encoded.
func EncodeEnum[E Enum](e Encoder, v E) error {
	if !v.ValidEnum(int32(v)) {
		return &errors.EncodingError{Underlying: UnknownArm(fmt.Sprintf("%T", v), int64(v))}
	}
	return e.EncodeInt(int32(v))
}

// DecodeEnum reads an enum value. Undeclared values are
// ErrUnknownDiscriminant.
func DecodeEnum[E Enum](d Decoder) (E, error) {
	var zero E
	v, err := d.DecodeInt()
	if err != nil {
		return zero, err
	}

	if !zero.ValidEnum(v) {
		return zero, UnknownArm(fmt.Sprintf("%T", zero), int64(v))
	}
	return E(v), nil
}

// UnknownArm returns the error for a union of type typeName whose
// discriminant v selects no arm
func UnknownArm(typeName string, v int64) error {
	return &errors.UnknownDiscriminantError{Type: typeName, Value: v}
}

// WithField locates err as having occurred in field of typeName. Returns
// nil if err is nil.
func WithField(err error, typeName, field string) error {
	return errors.WithFieldError(err, typeName, field)
}
