// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
)

// unhex decodes hex, ignoring whitespace
func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	require.NoError(t, err)
	return b
}

// rep returns n copies of the hex byte b, for writing keys and hashes
func rep(b string, n int) string {
	return strings.Repeat(b, n)
}

func key(b byte) Uint256 {
	var k Uint256
	for i := range k {
		k[i] = b
	}
	return k
}

func hash(b byte) Hash {
	return Hash(key(b))
}

func account(b byte) AccountID {
	return NewAccountID(key(b))
}

// roundTrip encodes v, decodes the result and checks that the decoded value
// equals v and re-encodes to identical bytes. Every strict prefix of the
// encoding must be reported as truncated.
func roundTrip[T any, PT interface {
	*T
	Codec
}](t *testing.T, v T) []byte {
	t.Helper()

	b, err := xdr.Marshal(PT(&v))
	require.NoError(t, err, "Marshal should succeed")
	require.Zero(t, len(b)%4, "encodings are a multiple of four bytes")

	var got T
	require.NoError(t, xdr.Unmarshal(b, PT(&got)), "Unmarshal should succeed")
	if diff := cmp.Diff(v, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := xdr.Marshal(PT(&got))
	require.NoError(t, err)
	assert.Equal(t, b, again, "re-encoding should be byte identical")

	for n := 0; n < len(b); n++ {
		var p T
		assert.ErrorIsf(t, xdr.Unmarshal(b[:n], PT(&p)), xdr.ErrTruncatedInput, "prefix of %d/%d bytes", n, len(b))
	}
	return b
}

// assertEncoding checks the exact encoding of v and that it decodes back
func assertEncoding[T any, PT interface {
	*T
	Codec
}](t *testing.T, v T, want string) {
	t.Helper()
	assert.Equal(t, unhex(t, want), roundTrip[T, PT](t, v))
}

// decodeErr decodes b as a T and returns the error
func decodeErr[T any, PT interface {
	*T
	Codec
}](b []byte) error {
	var v T
	return xdr.Unmarshal(b, PT(&v))
}
