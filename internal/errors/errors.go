// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

type xerror string

func (e xerror) Error() string {
	return string(e)
}

const (
	// Fewer bytes remain in the input than the value being decoded requires
	ErrTruncatedInput = xerror("xdr: Truncated input")

	// Variable length object longer than permitted by the schema (or by XDR;
	// where the schema specifies no limit it is implicitly 0xFFFFFFFF, though in
	// that case the error can only be reached on encode)
	ErrLengthExceedsMax = xerror("xdr: Variable length object too long")

	// Length of fixed length object incorrect
	//
	// This is returned when attempting to marshal an object of the wrong length
	ErrLengthIncorrect = xerror("xdr: Length incorrect")

	// Enum value or union discriminant not defined by the protocol
	ErrUnknownDiscriminant = xerror("xdr: Unknown discriminant")

	// Presence flag of an optional value was neither 0 nor 1
	ErrMalformedOptionalFlag = xerror("xdr: Malformed optional flag")

	// Invalid value for type (e.g. a bool which is neither 0 nor 1)
	ErrInvalidValue = xerror("xdr: Invalid value for type")

	// Padding after opaque data or a string contained non-zero bytes
	ErrNonZeroPadding = xerror("xdr: Non-zero padding")

	// Recursive type nested deeper than the decoder permits
	ErrMaxDepthExceeded = xerror("xdr: Maximum decoding depth exceeded")

	// Input continued after the end of the decoded value
	ErrTrailingBytes = xerror("xdr: Trailing bytes after value")

	// Input larger than the decoder permits
	ErrInputTooLarge = xerror("xdr: Input too large")

	// Umbrella for every failure raised while encoding
	ErrEncoding = xerror("xdr: Encoding error")
)

// LengthError reports a length read from (or destined for) the wire which
// exceeds a limit.
//
// When Truncated is set, the limit was the number of bytes left in the input
// rather than a schema limit.
type LengthError struct {
	Actual, Max uint64
	Truncated   bool
}

func (err LengthError) Is(target error) bool {
	switch target {
	case ErrLengthExceedsMax:
		return !err.Truncated
	case ErrTruncatedInput:
		return err.Truncated
	default:
		return false
	}
}

func (err LengthError) Error() string {
	if err.Truncated {
		return fmt.Sprintf("%s (need %d bytes, %d remain)", ErrTruncatedInput, err.Actual, err.Max)
	}
	return fmt.Sprintf("%s (%d > %d)", ErrLengthExceedsMax, err.Actual, err.Max)
}

// UnknownDiscriminantError is returned when an enum value or union
// discriminant read from the wire has no mapping in the protocol.
type UnknownDiscriminantError struct {
	Type  string
	Value int64
}

func (err *UnknownDiscriminantError) Is(target error) bool {
	return target == ErrUnknownDiscriminant
}

func (err *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("%s %d for %s", ErrUnknownDiscriminant, err.Value, err.Type)
}

// EncodingError wraps every failure to represent an in-memory value on the
// wire.
type EncodingError struct {
	Underlying error
}

func (err *EncodingError) Unwrap() error {
	return err.Underlying
}

func (err *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

func (err *EncodingError) Error() string {
	return err.Underlying.Error()
}

// Encoding wraps err as an EncodingError, unless it already is one
// (possibly behind field paths)
func Encoding(err error) error {
	if err == nil || stderrors.Is(err, ErrEncoding) {
		return err
	}
	return &EncodingError{err}
}

type FieldError struct {
	Underlying error
	Path       string
}

func (err FieldError) Unwrap() error {
	return err.Underlying
}

func (err FieldError) Error() string {
	uerr := strings.TrimPrefix(err.Underlying.Error(), "xdr: ")
	return fmt.Sprintf("xdr: %s (at %s)", uerr, err.Path)
}

// WithFieldError prefixes the location of err with the field it occurred in.
// parts is typically (type, field) or (type, field, arm).
func WithFieldError(err error, parts ...string) error {
	if err == nil {
		return nil
	}

	var combined string
	if parts[0] == "" {
		parts[0] = "<anonymous>"
	}

	switch len(parts) {
	case 1:
		combined = parts[0]
	case 3:
		combined = fmt.Sprintf("%s.%s(%s)", parts[0], parts[1], parts[2])
	default:
		combined = strings.Join(parts, ".")
	}

	switch err := err.(type) {
	case FieldError:
		err.Path = fmt.Sprintf("%s %s", combined, err.Path)
		return err
	default:
		return FieldError{err, combined}
	}
}
