// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

import (
	"fmt"
	"math"

	"go.e43.eu/stellarxdr/internal/errors"
)

func indexPath(i int) string {
	return fmt.Sprintf("[%d]", i)
}

// EncodeArray writes an XDR variable length array (`T ident<maxLen>`):
// the element count followed by each element in order
func EncodeArray[T Marshaler](e Encoder, items []T, maxLen uint32) error {
	if err := e.EncodeArrayLen(len(items), maxLen); err != nil {
		return err
	}

	for i := range items {
		if err := items[i].MarshalXDR(e); err != nil {
			return errors.WithFieldError(err, indexPath(i))
		}
	}
	return nil
}

// DecodeArray reads an XDR variable length array. Exactly the declared
// number of elements is read. An empty array decodes to a non-nil, empty
// slice.
//
// The count is validated against maxLen, Options.MaxArrayLen and the
// remaining input before the slice is allocated.
func DecodeArray[T any, PT PtrUnmarshaler[T]](d Decoder, maxLen uint32) ([]T, error) {
	l, err := d.DecodeArrayLen(maxLen)
	if err != nil {
		return nil, err
	}

	items := make([]T, l)
	for i := range items {
		if err := PT(&items[i]).UnmarshalXDR(d); err != nil {
			return nil, errors.WithFieldError(err, indexPath(i))
		}
	}
	return items, nil
}

// EncodeFixedArray writes an XDR fixed length array (`T ident[n]`): exactly
// n elements with no count prefix
func EncodeFixedArray[T Marshaler](e Encoder, items []T, n int) error {
	if len(items) != n {
		return &errors.EncodingError{Underlying: errors.ErrLengthIncorrect}
	}

	for i := range items {
		if err := items[i].MarshalXDR(e); err != nil {
			return errors.WithFieldError(err, indexPath(i))
		}
	}
	return nil
}

// DecodeFixedArray reads an XDR fixed length array of n elements
func DecodeFixedArray[T any, PT PtrUnmarshaler[T]](d Decoder, n int) ([]T, error) {
	if n < 0 {
		return nil, errors.ErrInvalidValue
	}
	if n > d.Remaining()/minElemSize {
		return nil, errors.LengthError{
			Actual:    min(uint64(n), math.MaxUint64/minElemSize) * minElemSize,
			Max:       uint64(d.Remaining()),
			Truncated: true,
		}
	}

	items := make([]T, n)
	for i := range items {
		if err := PT(&items[i]).UnmarshalXDR(d); err != nil {
			return nil, errors.WithFieldError(err, indexPath(i))
		}
	}
	return items, nil
}

// minElemSize is the smallest possible encoding of any XDR value
const minElemSize = 4
