// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
)

func TestLookup(t *testing.T) {
	v, ok := Lookup("SCVal")
	require.True(t, ok)
	require.IsType(t, &SCVal{}, v)

	require.NoError(t, xdr.Unmarshal(unhex(t, "00000003 00000007"), v))
	assert.Equal(t, NewSCValU32(7), *v.(*SCVal))

	other, _ := Lookup("SCVal")
	assert.NotSame(t, v, other, "each lookup returns a fresh value")

	_, ok = Lookup("NoSuchType")
	assert.False(t, ok)
}

func TestTypeNames(t *testing.T) {
	names := TypeNames()
	assert.True(t, slices.IsSorted(names))
	assert.Contains(t, names, "LedgerEntry")
	assert.Contains(t, names, "SCPEnvelope")

	for _, name := range names {
		v, ok := Lookup(name)
		require.True(t, ok, name)
		assert.NotNil(t, v, name)
	}
}
