// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDirection int

const (
	bothTest testDirection = iota
	encodeTest
	decodeTest
)

// singleByteReader is a really annoying io.Reader which returns a single byte at a time
type singleByteReader struct {
	R io.Reader
}

func (r *singleByteReader) Read(buf []byte) (int, error) {
	switch {
	case len(buf) == 0:
		return 0, nil
	default:
		return r.R.Read(buf[0:1])
	}
}

type testcase struct {
	// Name of this test case
	Name string

	// Which directions to run this test in (defaults to both)
	Direction testDirection

	// The object to marshal, or to use for comparison on unmarshalling.
	// Decoding targets are allocated as new(T) for an Object of type T.
	Object Marshaler

	// The encoded representation of the object
	Bytes []byte

	// Coder to use instead of DefaultCoder
	Coder Coder

	// Error expected on en/decode
	EncErrorIs error
	DecErrorIs error

	// Skip the generated truncation and trailing bytes variants
	NoVariants bool

	// Comparator to use (instead of default) after successful decoding
	DecodeComparator func(t *testing.T, expt, actual interface{})
}

// newTarget returns a pointer to a new zero value of o's type
func newTarget(o Marshaler) Unmarshaler {
	return reflect.New(reflect.TypeOf(o)).Interface().(Unmarshaler)
}

func RunTestcases(t *testing.T, tcs []testcase) {
	// Preprocess testcases:
	// * Insert the default Coder and DecodeComparator
	for i := range tcs {
		tc := &tcs[i]

		if tc.Coder == nil {
			tc.Coder = DefaultCoder
		}

		if tc.DecodeComparator == nil {
			tc.DecodeComparator = func(t *testing.T, l, r interface{}) {
				t.Helper()
				assert.Equal(t, l, r, "unmarshal output should match")
			}
		}
	}

	generatedTestcases := append([]testcase(nil), tcs...)
	t.Parallel()

	// For every case which decodes successfully, every strict prefix of the
	// input must be reported as truncated, and any extra input as trailing
	// bytes
	for _, tc := range tcs {
		if tc.Direction == encodeTest || tc.DecErrorIs != nil || tc.NoVariants {
			continue
		}

		for n := 0; n < len(tc.Bytes); n++ {
			tc := tc
			tc.Name += "+truncated"
			tc.Direction = decodeTest
			tc.Bytes = tc.Bytes[:n]
			tc.DecErrorIs = ErrTruncatedInput
			generatedTestcases = append(generatedTestcases, tc)
		}

		tc := tc
		tc.Name += "+trailing"
		tc.Direction = decodeTest
		tc.Bytes = append(append([]byte(nil), tc.Bytes...), 0, 0, 0, 0)
		tc.DecErrorIs = ErrTrailingBytes
		generatedTestcases = append(generatedTestcases, tc)
	}

	for _, tc := range generatedTestcases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			if tc.Direction != decodeTest {
				t.Run("Marshal", func(t *testing.T) {
					t.Parallel()

					b, err := tc.Coder.Marshal(tc.Object)
					if tc.EncErrorIs != nil {
						require.Error(t, err, "Encoding should have returned an error")
						require.Truef(t, errors.Is(err, tc.EncErrorIs), "Error expected to be %s, but was %s", tc.EncErrorIs, err)
						require.Truef(t, errors.Is(err, ErrEncoding), "Encoding errors must be ErrEncoding, but was %s", err)
						assert.Nil(t, b)
					} else {
						require.NoError(t, err, "Marshal should succeed")
						assert.Equal(t, tc.Bytes, b, "Expected marshalled data to match")
					}
				})

				t.Run("Write", func(t *testing.T) {
					t.Parallel()

					var buf bytes.Buffer
					err := tc.Coder.Write(&buf, tc.Object)
					if tc.EncErrorIs != nil {
						require.Error(t, err, "Encoding should have returned an error")
						require.Truef(t, errors.Is(err, tc.EncErrorIs), "Error expected to be %s, but was %s", tc.EncErrorIs, err)
						assert.Zero(t, buf.Len(), "Nothing should be written on error")
					} else {
						require.NoError(t, err, "Write should succeed")
						assert.Equal(t, tc.Bytes, buf.Bytes(), "Expected written data to match")
					}
				})
			}

			if tc.Direction != encodeTest {
				t.Run("Unmarshal", func(t *testing.T) {
					t.Parallel()

					tgtp := newTarget(tc.Object)
					err := tc.Coder.Unmarshal(tc.Bytes, tgtp)
					if tc.DecErrorIs != nil {
						if assert.Error(t, err, "Decoding should have returned an error") {
							assert.Truef(t, errors.Is(err, tc.DecErrorIs), "Error expected to be %s, but was %s", tc.DecErrorIs, err)
						} else {
							t.Logf("Returned %+v", tgtp)
						}
					} else {
						require.NoError(t, err, "Unmarshal should succeed")

						// Dereference the pointer to get a T for comparison purposes
						o := reflect.ValueOf(tgtp).Elem().Interface()
						tc.DecodeComparator(t, o, tc.Object)
					}
				})

				t.Run("Read", func(t *testing.T) {
					t.Parallel()

					tgtp := newTarget(tc.Object)
					err := tc.Coder.Read(&singleByteReader{bytes.NewReader(tc.Bytes)}, tgtp)
					if tc.DecErrorIs != nil {
						if assert.Error(t, err, "Decoding should have returned an error") {
							assert.Truef(t, errors.Is(err, tc.DecErrorIs), "Error expected to be %s, but was %s", tc.DecErrorIs, err)
						}
					} else {
						require.NoError(t, err, "Read should succeed")
						o := reflect.ValueOf(tgtp).Elem().Interface()
						tc.DecodeComparator(t, o, tc.Object)
					}
				})
			}
		})
	}
}
