// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
)

func usd(issuer byte) Asset {
	return Asset{Arm: AlphaNum4{AssetCode: AssetCode4{'U', 'S', 'D'}, Issuer: account(issuer)}}
}

// accountHex is the encoding of a minimal AccountEntry for account(0x11)
// with the given signers section
func accountHex(signers string) string {
	return "00000000" + rep("11", 32) +
		"00000000 00000064" + // balance
		"00000000 00000001" + // sequence
		"00000000" + // subentries
		"00000000" + // no inflation destination
		"00000000" + // flags
		"00000000" + // home domain
		"01000000" + // thresholds
		signers +
		"00000000" // ext
}

func TestAssetEncoding(t *testing.T) {
	assertEncoding(t, NativeAsset(), "00000000")
	assertEncoding(t, usd(0x22), "00000001 55534400 00000000"+rep("22", 32))

	long := Asset{Arm: AlphaNum12{AssetCode: AssetCode12{'L', 'O', 'N', 'G', 'C', 'O', 'D', 'E'}, Issuer: account(0x22)}}
	assertEncoding(t, long, "00000002 4c4f4e47 434f4445 00000000 00000000"+rep("22", 32))

	assertEncoding(t, TrustLineAsset{Arm: TrustLineAssetPoolShare(hash(0xaa))}, "00000003"+rep("aa", 32))
	assertEncoding(t, TrustLineAsset{Arm: AssetNative{}}, "00000000")

	assert.Equal(t, "USD", AssetCode4{'U', 'S', 'D'}.String())
	assert.Equal(t, "LONGCODE", AssetCode12{'L', 'O', 'N', 'G', 'C', 'O', 'D', 'E'}.String())
	assert.Equal(t, AssetTypeCreditAlphanum4, usd(1).Type())
}

func TestAssetDecodeErrors(t *testing.T) {
	// Pool shares are only valid in trust lines
	err := decodeErr[Asset](unhex(t, "00000003"+rep("aa", 32)))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

	err = decodeErr[TrustLineAsset](unhex(t, "00000004"))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

	_, err = xdr.Marshal(Asset{})
	assert.ErrorIs(t, err, xdr.ErrEncoding)
}

func TestMuxedAccount(t *testing.T) {
	assertEncoding(t, MuxedAccount{Arm: MuxedAccountEd25519(key(0x33))}, "00000000"+rep("33", 32))
	assertEncoding(t,
		MuxedAccount{Arm: MuxedAccountMed25519{ID: 5, Ed25519: key(0x33)}},
		"00000100 00000000 00000005"+rep("33", 32))

	err := decodeErr[MuxedAccount](unhex(t, "00000001"+rep("33", 32)))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

	var ude *xdr.UnknownDiscriminantError
	require.ErrorAs(t, err, &ude)
	assert.Equal(t, "MuxedAccount", ude.Type)
	assert.Equal(t, int64(1), ude.Value)
}

func TestPublicKey(t *testing.T) {
	assertEncoding(t, account(0x11), "00000000"+rep("11", 32))
	assert.ErrorIs(t, decodeErr[PublicKey](unhex(t, "00000001"+rep("11", 32))), xdr.ErrUnknownDiscriminant)
}

func TestSignerKey(t *testing.T) {
	assertEncoding(t, SignerKey{Arm: SignerKeyHashX(key(7))}, "00000002"+rep("07", 32))
	roundTrip(t, SignerKey{Arm: SignerKeyPreAuthTx(key(8))})
	assertEncoding(t,
		SignerKey{Arm: SignerKeyEd25519SignedPayload{Ed25519: key(9), Payload: []byte{0xde, 0xad}}},
		"00000003"+rep("09", 32)+"00000002 dead0000")

	_, err := xdr.Marshal(SignerKey{Arm: SignerKeyEd25519SignedPayload{Payload: make([]byte, SignedPayloadMax+1)}})
	assert.ErrorIs(t, err, xdr.ErrEncoding)
	assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
}

func TestAccountEntry(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		assertEncoding(t, AccountEntry{
			AccountID:  account(0x11),
			Balance:    100,
			SeqNum:     1,
			Thresholds: Thresholds{1, 0, 0, 0},
		}, accountHex("00000000"))
	})

	t.Run("extensions", func(t *testing.T) {
		sponsor := account(0x44)
		dest := account(0x55)
		roundTrip(t, AccountEntry{
			AccountID:     account(0x11),
			Balance:       1_000_000_000,
			SeqNum:        1 << 40,
			NumSubEntries: 2,
			InflationDest: &dest,
			Flags:         AuthRequiredFlag | AuthRevocableFlag,
			HomeDomain:    "example.com",
			Thresholds:    Thresholds{1, 2, 3, 4},
			Signers: []Signer{
				{Key: SignerKey{Arm: SignerKeyEd25519(key(0x66))}, Weight: 1},
				{Key: SignerKey{Arm: SignerKeyHashX(key(0x77))}, Weight: 2},
			},
			Ext: AccountEntryExt{V1: &AccountEntryExtensionV1{
				Liabilities: Liabilities{Buying: 10, Selling: 20},
				Ext: AccountEntryExtensionV1Ext{V2: &AccountEntryExtensionV2{
					NumSponsored:        1,
					NumSponsoring:       3,
					SignerSponsoringIDs: []SponsorshipDescriptor{{Sponsor: &sponsor}, {}},
					Ext: AccountEntryExtensionV2Ext{V3: &AccountEntryExtensionV3{
						SeqLedger: 1234,
						SeqTime:   1700000000,
					}},
				}},
			}},
		})
	})

	t.Run("too many signers", func(t *testing.T) {
		a := AccountEntry{Signers: make([]Signer, MaxSigners+1)}
		for i := range a.Signers {
			a.Signers[i].Key = SignerKey{Arm: SignerKeyEd25519(key(byte(i)))}
		}
		_, err := xdr.Marshal(a)
		assert.ErrorIs(t, err, xdr.ErrEncoding)
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)

		err = decodeErr[AccountEntry](unhex(t, accountHex("00000015")))
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
		assert.Contains(t, err.Error(), "AccountEntry.Signers")
	})

	t.Run("malformed optional", func(t *testing.T) {
		b := unhex(t, accountHex("00000000"))
		b[4+32+8+8+4+3] = 2
		err := decodeErr[AccountEntry](b)
		assert.ErrorIs(t, err, xdr.ErrMalformedOptionalFlag)
		assert.Contains(t, err.Error(), "AccountEntry.InflationDest")
	})

	t.Run("unknown extension", func(t *testing.T) {
		b := unhex(t, accountHex("00000000"))
		b[len(b)-1] = 2
		err := decodeErr[AccountEntry](b)
		assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
		assert.Contains(t, err.Error(), "AccountEntry.Ext")
	})

	t.Run("long home domain", func(t *testing.T) {
		_, err := xdr.Marshal(AccountEntry{HomeDomain: String32(strings.Repeat("x", String32Limit+1))})
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
	})
}

func TestTrustLineEntry(t *testing.T) {
	roundTrip(t, TrustLineEntry{
		AccountID: account(1),
		Asset:     TrustLineAsset{Arm: TrustLineAssetPoolShare(hash(2))},
		Balance:   50,
		Limit:     1 << 62,
		Flags:     TrustLineAuthorizedToMaintainLiabilitiesFlag,
		Ext: TrustLineEntryExt{V1: &TrustLineEntryV1{
			Liabilities: Liabilities{Buying: 1, Selling: 2},
			Ext:         TrustLineEntryV1Ext{V2: &TrustLineEntryExtensionV2{LiquidityPoolUseCount: 3}},
		}},
	})
	roundTrip(t, TrustLineEntry{
		AccountID: account(1),
		Asset:     TrustLineAsset{Arm: AlphaNum4{AssetCode: AssetCode4{'E', 'U', 'R'}, Issuer: account(3)}},
	})
}

func TestClaimPredicate(t *testing.T) {
	unconditional := ClaimPredicate{Arm: ClaimPredicateUnconditional{}}

	assertEncoding(t, unconditional, "00000000")
	assertEncoding(t, ClaimPredicate{Arm: ClaimPredicateBeforeRelativeTime(60)}, "00000005 00000000 0000003c")
	assertEncoding(t, ClaimPredicate{Arm: ClaimPredicateNot{}}, "00000003 00000000")
	assertEncoding(t,
		ClaimPredicate{Arm: ClaimPredicateAnd{
			{Arm: ClaimPredicateBeforeAbsoluteTime(1)},
			{Arm: ClaimPredicateNot{Predicate: &unconditional}},
		}},
		"00000001 00000002 00000004 00000000 00000001 00000003 00000001 00000000")
	roundTrip(t, ClaimPredicate{Arm: ClaimPredicateOr{unconditional}})

	t.Run("too many predicates", func(t *testing.T) {
		_, err := xdr.Marshal(ClaimPredicate{Arm: ClaimPredicateAnd{unconditional, unconditional, unconditional}})
		assert.ErrorIs(t, err, xdr.ErrEncoding)
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)

		err = decodeErr[ClaimPredicate](unhex(t, "00000002 00000003 00000000 00000000 00000000"))
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
	})

	t.Run("depth", func(t *testing.T) {
		cr := xdr.NewCoder(xdr.Options{MaxDepth: 2})
		var p ClaimPredicate

		require.NoError(t, cr.Unmarshal(unhex(t, "00000003 00000001 00000000"), &p))
		assert.Equal(t, ClaimPredicate{Arm: ClaimPredicateNot{Predicate: &unconditional}}, p)

		err := cr.Unmarshal(unhex(t, "00000003 00000001 00000003 00000001 00000000"), &p)
		assert.ErrorIs(t, err, xdr.ErrMaxDepthExceeded)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.ErrorIs(t, decodeErr[ClaimPredicate](unhex(t, "00000006")), xdr.ErrUnknownDiscriminant)
	})
}

func TestClaimableBalanceEntry(t *testing.T) {
	entry := ClaimableBalanceEntry{
		BalanceID: ClaimableBalanceID{V0: hash(0xcb)},
		Claimants: []Claimant{
			{V0: ClaimantV0{Destination: account(1), Predicate: ClaimPredicate{Arm: ClaimPredicateUnconditional{}}}},
			{V0: ClaimantV0{Destination: account(2), Predicate: ClaimPredicate{Arm: ClaimPredicateOr{
				{Arm: ClaimPredicateBeforeAbsoluteTime(1700000000)},
				{Arm: ClaimPredicateBeforeRelativeTime(3600)},
			}}}},
		},
		Asset:  usd(3),
		Amount: 12345,
		Ext: ClaimableBalanceEntryExt{V1: &ClaimableBalanceEntryExtensionV1{
			Flags: ClaimableBalanceClawbackEnabledFlag,
		}},
	}
	roundTrip(t, entry)

	entry.Claimants = make([]Claimant, MaxClaimants+1)
	for i := range entry.Claimants {
		entry.Claimants[i].V0.Predicate = ClaimPredicate{Arm: ClaimPredicateUnconditional{}}
	}
	_, err := xdr.Marshal(entry)
	assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
}

func TestLedgerEntry(t *testing.T) {
	sponsor := account(0x99)
	i128, err := NewSCValI128(big.NewInt(-5_000_000))
	require.NoError(t, err)

	contract := NewSCAddressForContract(ContractID(hash(0xcc)))
	cases := map[string]LedgerEntryData{
		"account": {Arm: AccountEntry{AccountID: account(1), Thresholds: Thresholds{1}}},
		"offer": {Arm: OfferEntry{
			SellerID: account(2),
			OfferID:  77,
			Selling:  NativeAsset(),
			Buying:   usd(3),
			Amount:   1000,
			Price:    Price{N: 3, D: 2},
		}},
		"data": {Arm: DataEntry{AccountID: account(4), DataName: "config", DataValue: DataValue("value")}},
		"liquidity pool": {Arm: LiquidityPoolEntry{
			LiquidityPoolID: hash(5),
			Body: LiquidityPoolEntryBody{Arm: LiquidityPoolEntryConstantProduct{
				Params:                   LiquidityPoolConstantProductParameters{AssetA: NativeAsset(), AssetB: usd(6), Fee: 30},
				ReserveA:                 10,
				ReserveB:                 20,
				TotalPoolShares:          30,
				PoolSharesTrustLineCount: 1,
			}},
		}},
		"contract data": {Arm: ContractDataEntry{
			Contract:   contract,
			Key:        NewSCValSymbol("balances"),
			Durability: ContractDataDurabilityPersistent,
			Val:        NewSCValMap(
				SCMapEntry{Key: NewSCValAddress(NewSCAddressForAccountID(account(7))), Val: i128},
				SCMapEntry{Key: NewSCValAddress(contract), Val: NewSCValVec(NewSCValBool(false))},
			),
		}},
		"contract code": {Arm: ContractCodeEntry{
			Ext: ContractCodeEntryExt{V1: &ContractCodeEntryV1{
				CostInputs: ContractCodeCostInputs{NInstructions: 100, NFunctions: 3, NDataSegmentBytes: 12},
			}},
			Hash: hash(8),
			Code: []byte("\x00asm\x01\x00\x00\x00"),
		}},
		"ttl": {Arm: TTLEntry{KeyHash: hash(9), LiveUntilLedgerSeq: 500}},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, LedgerEntry{LastModifiedLedgerSeq: 42, Data: data})
			roundTrip(t, LedgerEntry{
				LastModifiedLedgerSeq: 43,
				Data:                  data,
				Ext:                   LedgerEntryExt{V1: &LedgerEntryExtensionV1{SponsoringID: SponsorshipDescriptor{Sponsor: &sponsor}}},
			})

			key, err := data.Key()
			require.NoError(t, err)
			assert.Equal(t, data.Type(), key.Type())
			roundTrip(t, key)
		})
	}
}

func TestLedgerEntryDataDecodeErrors(t *testing.T) {
	// CONFIG_SETTING is a valid entry type with no entry body here
	err := decodeErr[LedgerEntryData](unhex(t, "00000008"))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

	err = decodeErr[LedgerEntryData](unhex(t, "0000000a"))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

	err = decodeErr[LedgerEntry](unhex(t, "00000001 00000009"+rep("00", 32)+"00000001 00000002"))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
	assert.Contains(t, err.Error(), "LedgerEntryExt")
}

func TestLedgerKey(t *testing.T) {
	assertEncoding(t, LedgerKey{Arm: LedgerKeyConfigSetting{ConfigSettingID: ConfigSettingStateArchival}}, "00000008 0000000a")
	assertEncoding(t, LedgerKey{Arm: LedgerKeyAccount{AccountID: account(1)}}, "00000000 00000000"+rep("01", 32))

	trustLine := LedgerEntryData{Arm: TrustLineEntry{AccountID: account(2), Asset: TrustLineAsset{Arm: AssetNative{}}, Balance: 9}}
	key, err := trustLine.Key()
	require.NoError(t, err)
	assert.Equal(t, LedgerKey{Arm: LedgerKeyTrustLine{AccountID: account(2), Asset: TrustLineAsset{Arm: AssetNative{}}}}, key)

	_, err = LedgerEntryData{}.Key()
	assert.ErrorIs(t, err, xdr.ErrEncoding)

	err = decodeErr[LedgerKey](unhex(t, "00000008 0000000e"))
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
}
