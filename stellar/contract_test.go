// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
)

func TestSCValEncoding(t *testing.T) {
	i128, err := NewSCValI128(big.NewInt(-1))
	require.NoError(t, err)
	u128, err := NewSCValU128(new(big.Int).Lsh(big.NewInt(1), 64))
	require.NoError(t, err)

	cases := []struct {
		name string
		v    SCVal
		hex  string
	}{
		{"bool", NewSCValBool(true), "00000000 00000001"},
		{"void", NewSCValVoid(), "00000001"},
		{"u32", NewSCValU32(7), "00000003 00000007"},
		{"i32", NewSCValI32(-1), "00000004 ffffffff"},
		{"i64", NewSCValI64(-2), "00000006 ffffffff fffffffe"},
		{"timepoint", SCVal{Arm: SCValTimepoint(1)}, "00000007 00000000 00000001"},
		{"duration", SCVal{Arm: SCValDuration(2)}, "00000008 00000000 00000002"},
		{"u128", u128, "00000009 00000000 00000001 00000000 00000000"},
		{"i128", i128, "0000000a" + rep("ff", 16)},
		{"bytes", NewSCValBytes([]byte{1, 2, 3}), "0000000d 00000003 01020300"},
		{"string", NewSCValString("abcd"), "0000000e 00000004 61626364"},
		{"symbol", NewSCValSymbol("hello"), "0000000f 00000005 68656c6c 6f000000"},
		{"empty vec", NewSCValVec(), "00000010 00000001 00000000"},
		{"absent vec", SCVal{Arm: SCValVec{}}, "00000010 00000000"},
		{"vec", NewSCValVec(NewSCValU32(1), NewSCValVoid()), "00000010 00000001 00000002 00000003 00000001 00000001"},
		{"absent map", SCVal{Arm: SCValMap{}}, "00000011 00000000"},
		{
			"map",
			NewSCValMap(SCMapEntry{Key: NewSCValSymbol("a"), Val: NewSCValU32(1)}),
			"00000011 00000001 00000001 0000000f 00000001 61000000 00000003 00000001",
		},
		{"contract error", NewSCValError(SCError{Arm: SCErrorContract(5)}), "00000002 00000000 00000005"},
		{
			"host error",
			NewSCValError(SCError{Arm: SCErrorHost{Type: SCErrorTypeBudget, Code: SCErrorCodeExceededLimit}}),
			"00000002 00000007 00000005",
		},
		{
			"account address",
			NewSCValAddress(NewSCAddressForAccountID(account(0x11))),
			"00000012 00000000 00000000" + rep("11", 32),
		},
		{
			"contract address",
			NewSCValAddress(NewSCAddressForContract(ContractID(hash(0x22)))),
			"00000012 00000001" + rep("22", 32),
		},
		{
			"muxed address",
			NewSCValAddress(SCAddress{Arm: SCAddressMuxedAccount{ID: 9, Ed25519: key(0x33)}}),
			"00000012 00000002 00000000 00000009" + rep("33", 32),
		},
		{"instance key", SCVal{Arm: SCValLedgerKeyContractInstance{}}, "00000014"},
		{"nonce key", NewSCValNonceKey(1), "00000015 00000000 00000001"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertEncoding(t, c.v, c.hex)
		})
	}
}

func TestSCValType(t *testing.T) {
	assert.Equal(t, SCValTypeSymbol, NewSCValSymbol("x").Type())
	assert.Equal(t, SCValTypeVec, NewSCValVec().Type())
	assert.Equal(t, SCValTypeAddress, NewSCValAddress(NewSCAddressForContract(ContractID{})).Type())
	assert.Equal(t, "SCValTypeLedgerKeyNonce", SCValTypeLedgerKeyNonce.String())
}

func TestSCValContractInstance(t *testing.T) {
	storage := SCMap{
		{Key: NewSCValSymbol("admin"), Val: NewSCValAddress(NewSCAddressForAccountID(account(1)))},
		{Key: NewSCValSymbol("count"), Val: NewSCValU64(3)},
	}
	roundTrip(t, SCVal{Arm: SCContractInstance{
		Executable: ContractExecutable{Arm: ContractExecutableWasm(hash(0xab))},
		Storage:    &storage,
	}})
	roundTrip(t, SCVal{Arm: SCContractInstance{
		Executable: ContractExecutable{Arm: ContractExecutableStellarAsset{}},
	}})
}

func TestSCValWideIntegers(t *testing.T) {
	huge, ok := new(big.Int).SetString("-57896044618658097711785492504343953926634992332820282019728792003956564819968", 10)
	require.True(t, ok)
	i256, err := NewSCValI256(huge)
	require.NoError(t, err)
	assertEncoding(t, i256, "0000000c 80000000"+rep("00", 28))

	u256, err := NewSCValU256(big.NewInt(1))
	require.NoError(t, err)
	assertEncoding(t, u256, "0000000b"+rep("00", 31)+"01")
}

func TestSCValDecodeErrors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		err := decodeErr[SCVal](unhex(t, "00000016"))
		assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

		var ude *xdr.UnknownDiscriminantError
		require.ErrorAs(t, err, &ude)
		assert.Equal(t, int64(22), ude.Value)
	})

	t.Run("bad bool", func(t *testing.T) {
		assert.ErrorIs(t, decodeErr[SCVal](unhex(t, "00000000 00000002")), xdr.ErrInvalidValue)
	})

	t.Run("long symbol", func(t *testing.T) {
		b := unhex(t, "0000000f 00000021"+rep("61", 33)+"000000")
		assert.ErrorIs(t, decodeErr[SCVal](b), xdr.ErrLengthExceedsMax)
	})

	t.Run("symbol padding", func(t *testing.T) {
		b := unhex(t, "0000000f 00000001 61000100")
		assert.ErrorIs(t, decodeErr[SCVal](b), xdr.ErrNonZeroPadding)
	})

	t.Run("malformed optional", func(t *testing.T) {
		b := unhex(t, "00000010 00000002 00000000")
		assert.ErrorIs(t, decodeErr[SCVal](b), xdr.ErrMalformedOptionalFlag)

		var v SCVal
		lenient := xdr.NewCoder(xdr.Options{LenientOptionalFlags: true})
		require.NoError(t, lenient.Unmarshal(b, &v))
		assert.Equal(t, NewSCValVec(), v)
	})

	t.Run("error arm", func(t *testing.T) {
		b := unhex(t, "00000002 0000000a 00000000")
		err := decodeErr[SCVal](b)
		assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
		assert.Contains(t, err.Error(), "SCVal.SCValTypeError")
	})

	t.Run("array count larger than input", func(t *testing.T) {
		b := unhex(t, "00000010 00000001 7fffffff")
		assert.ErrorIs(t, decodeErr[SCVal](b), xdr.ErrTruncatedInput)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		assert.ErrorIs(t, decodeErr[SCVal](unhex(t, "00000001 00000000")), xdr.ErrTrailingBytes)
	})
}

func TestSCValEncodeErrors(t *testing.T) {
	cases := map[string]SCVal{
		"nil arm":          {},
		"nil nested arm":   NewSCValVec(SCVal{}),
		"long symbol":      NewSCValSymbol("abcdefghijklmnopqrstuvwxyz0123456"),
		"host as contract": NewSCValError(SCError{Arm: SCErrorHost{Type: SCErrorTypeContract}}),
		"invalid code":     NewSCValError(SCError{Arm: SCErrorHost{Type: SCErrorTypeAuth, Code: 99}}),
		"nil address arm":  NewSCValAddress(SCAddress{}),
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := xdr.Marshal(v)
			assert.ErrorIs(t, err, xdr.ErrEncoding)
			assert.Nil(t, b)
		})
	}
}

func TestSCValDepth(t *testing.T) {
	nested := func(depth int) SCVal {
		v := NewSCValU32(0)
		for i := 1; i < depth; i++ {
			v = NewSCValVec(v)
		}
		return v
	}

	t.Run("default limit", func(t *testing.T) {
		b, err := xdr.Marshal(nested(xdr.DefaultMaxDepth))
		require.NoError(t, err)
		var v SCVal
		require.NoError(t, xdr.Unmarshal(b, &v))

		b, err = xdr.Marshal(nested(xdr.DefaultMaxDepth + 1))
		require.NoError(t, err)
		assert.ErrorIs(t, xdr.Unmarshal(b, &v), xdr.ErrMaxDepthExceeded)
	})

	t.Run("configured limit", func(t *testing.T) {
		cr := xdr.NewCoder(xdr.Options{MaxDepth: 2})
		var v SCVal

		b, err := xdr.Marshal(nested(2))
		require.NoError(t, err)
		require.NoError(t, cr.Unmarshal(b, &v))

		b, err = xdr.Marshal(nested(3))
		require.NoError(t, err)
		assert.ErrorIs(t, cr.Unmarshal(b, &v), xdr.ErrMaxDepthExceeded)
	})

	t.Run("map nesting", func(t *testing.T) {
		cr := xdr.NewCoder(xdr.Options{MaxDepth: 2})
		v := NewSCValMap(SCMapEntry{Key: NewSCValVec(NewSCValVoid()), Val: NewSCValVoid()})
		b, err := xdr.Marshal(v)
		require.NoError(t, err)
		assert.ErrorIs(t, cr.Unmarshal(b, &v), xdr.ErrMaxDepthExceeded)
	})
}

func TestSCAddressArms(t *testing.T) {
	roundTrip(t, SCAddress{Arm: SCAddressClaimableBalance(ClaimableBalanceID{V0: hash(4)})})
	roundTrip(t, SCAddress{Arm: SCAddressLiquidityPool(hash(5))})

	err := decodeErr[SCAddress](unhex(t, "00000005"))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
}
