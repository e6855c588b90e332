// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
)

func TestMemo(t *testing.T) {
	assertEncoding(t, Memo{Arm: MemoNone{}}, "00000000")
	assertEncoding(t, Memo{Arm: MemoText("hi")}, "00000001 00000002 68690000")
	assertEncoding(t, Memo{Arm: MemoID(1)}, "00000002 00000000 00000001")
	assertEncoding(t, Memo{Arm: MemoHash(hash(0xee))}, "00000003"+rep("ee", 32))
	assertEncoding(t, Memo{Arm: MemoReturn(hash(0xef))}, "00000004"+rep("ef", 32))

	roundTrip(t, Memo{Arm: MemoText(strings.Repeat("m", MemoTextLimit))})

	_, err := xdr.Marshal(Memo{Arm: MemoText(strings.Repeat("m", MemoTextLimit+1))})
	assert.ErrorIs(t, err, xdr.ErrEncoding)
	assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)

	err = decodeErr[Memo](unhex(t, "00000001 0000001d"+rep("6d", 29)+"000000"))
	assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)

	assert.ErrorIs(t, decodeErr[Memo](unhex(t, "00000005")), xdr.ErrUnknownDiscriminant)
}

func TestPaymentOp(t *testing.T) {
	assertEncoding(t, PaymentOp{
		Destination: MuxedAccount{Arm: MuxedAccountEd25519(key(1))},
		Asset:       NativeAsset(),
		Amount:      10,
	}, "00000000"+rep("01", 32)+"00000000 00000000 0000000a")

	roundTrip(t, PaymentOp{
		Destination: MuxedAccount{Arm: MuxedAccountMed25519{ID: 1 << 63, Ed25519: key(2)}},
		Asset:       usd(3),
		Amount:      -1,
	})
}

func TestOperationResults(t *testing.T) {
	assertEncoding(t, PaymentResult{Code: PaymentResultCodePaymentNoTrust}, "fffffffa")
	assertEncoding(t, PaymentResult{Code: PaymentResultCodePaymentSuccess}, "00000000")
	assertEncoding(t, OperationResultCodeOpBadAuth, "ffffffff")

	assert.ErrorIs(t, decodeErr[PaymentResult](unhex(t, "fffffff0")), xdr.ErrUnknownDiscriminant)

	_, err := xdr.Marshal(PaymentResult{Code: -10})
	assert.ErrorIs(t, err, xdr.ErrEncoding)
	assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)

	assert.Equal(t, "PaymentResultCodePaymentLineFull", PaymentResultCodePaymentLineFull.String())
	assert.Equal(t, "PaymentResultCode(-42)", PaymentResultCode(-42).String())
}

func TestInvokeHostFunctionResult(t *testing.T) {
	success := InvokeHostFunctionResult{Arm: InvokeHostFunctionSuccess(hash(0xaa))}
	assertEncoding(t, success, "00000000"+rep("aa", 32))
	assert.Equal(t, InvokeHostFunctionResultCodeSuccess, success.Code())

	trapped := InvokeHostFunctionResult{Arm: InvokeHostFunctionFailure{Code: InvokeHostFunctionResultCodeTrapped}}
	assertEncoding(t, trapped, "fffffffe")
	assert.Equal(t, InvokeHostFunctionResultCodeTrapped, trapped.Code())

	_, err := xdr.Marshal(InvokeHostFunctionResult{Arm: InvokeHostFunctionFailure{Code: InvokeHostFunctionResultCodeSuccess}})
	assert.ErrorIs(t, err, xdr.ErrEncoding)

	_, err = xdr.Marshal(InvokeHostFunctionResult{})
	assert.ErrorIs(t, err, xdr.ErrEncoding)

	assert.ErrorIs(t, decodeErr[InvokeHostFunctionResult](unhex(t, "fffffffa")), xdr.ErrUnknownDiscriminant)
}

func TestInvokeHostFunctionOp(t *testing.T) {
	token := NewSCAddressForContract(ContractID(hash(0x70)))
	from := NewSCAddressForAccountID(account(0x71))
	to := SCAddress{Arm: SCAddressMuxedAccount{ID: 12, Ed25519: key(0x72)}}
	amount, err := NewSCValI128(bigInt(t, "170141183460469231731687303715884105727"))
	require.NoError(t, err)

	transfer := InvokeContractArgs{
		ContractAddress: token,
		FunctionName:    "transfer",
		Args:            []SCVal{NewSCValAddress(from), NewSCValAddress(to), amount},
	}

	op := InvokeHostFunctionOp{
		HostFunction: HostFunction{Arm: transfer},
		Auth: []SorobanAuthorizationEntry{
			{
				Credentials: SorobanCredentials{Arm: SorobanCredentialsSourceAccount{}},
				RootInvocation: SorobanAuthorizedInvocation{
					Function: SorobanAuthorizedFunction{Arm: transfer},
				},
			},
			{
				Credentials: SorobanCredentials{Arm: SorobanAddressCredentials{
					Address:                   from,
					Nonce:                     -7,
					SignatureExpirationLedger: 100_000,
					Signature: NewSCValVec(NewSCValMap(
						SCMapEntry{Key: NewSCValSymbol("public_key"), Val: NewSCValBytes(make([]byte, 32))},
						SCMapEntry{Key: NewSCValSymbol("signature"), Val: NewSCValBytes(make([]byte, 64))},
					)),
				}},
				RootInvocation: SorobanAuthorizedInvocation{
					Function: SorobanAuthorizedFunction{Arm: transfer},
					SubInvocations: []SorobanAuthorizedInvocation{{
						Function: SorobanAuthorizedFunction{Arm: CreateContractArgsV2{
							ContractIDPreimage: ContractIDPreimage{Arm: ContractIDPreimageFromAddress{Address: from, Salt: key(0x73)}},
							Executable:         ContractExecutable{Arm: ContractExecutableWasm(hash(0x74))},
							ConstructorArgs:    []SCVal{NewSCValU32(1)},
						}},
					}},
				},
			},
		},
	}
	roundTrip(t, op)

	for name, fn := range map[string]HostFunction{
		"upload": {Arm: HostFunctionUploadContractWasm("\x00asm")},
		"create": {Arm: CreateContractArgs{
			ContractIDPreimage: ContractIDPreimage{Arm: ContractIDPreimageFromAsset(usd(5))},
			Executable:         ContractExecutable{Arm: ContractExecutableStellarAsset{}},
		}},
		"create v2": {Arm: CreateContractArgsV2{
			ContractIDPreimage: ContractIDPreimage{Arm: ContractIDPreimageFromAsset(NativeAsset())},
			Executable:         ContractExecutable{Arm: ContractExecutableStellarAsset{}},
		}},
	} {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, InvokeHostFunctionOp{HostFunction: fn})
		})
	}

	t.Run("long function name", func(t *testing.T) {
		bad := transfer
		bad.FunctionName = SCSymbol(strings.Repeat("f", SCSymbolLimit+1))
		_, err := xdr.Marshal(InvokeHostFunctionOp{HostFunction: HostFunction{Arm: bad}})
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
	})

	t.Run("unknown host function", func(t *testing.T) {
		err := decodeErr[HostFunction](unhex(t, "00000004"))
		assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
	})
}

func TestSCPEnvelope(t *testing.T) {
	ballot := SCPBallot{Counter: 3, Value: Value("tx set")}
	pledges := map[string]SCPStatementPledges{
		"prepare": {Arm: SCPStatementPrepare{
			QuorumSetHash: hash(1),
			Ballot:        ballot,
			Prepared:      &SCPBallot{Counter: 2, Value: Value("older")},
			NC:            1,
			NH:            3,
		}},
		"confirm":     {Arm: SCPStatementConfirm{Ballot: ballot, NPrepared: 3, NCommit: 1, NH: 3, QuorumSetHash: hash(2)}},
		"externalize": {Arm: SCPStatementExternalize{Commit: ballot, NH: 3, CommitQuorumSetHash: hash(3)}},
		"nominate": {Arm: SCPNomination{
			QuorumSetHash: hash(4),
			Votes:         []Value{Value("a"), Value("bb")},
			Accepted:      []Value{Value("ccc")},
		}},
	}

	for name, p := range pledges {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, SCPEnvelope{
				Statement: SCPStatement{NodeID: account(0x5c), SlotIndex: 1 << 33, Pledges: p},
				Signature: make(Signature, SignatureLimit),
			})
		})
	}

	t.Run("long signature", func(t *testing.T) {
		_, err := xdr.Marshal(SCPEnvelope{
			Statement: SCPStatement{Pledges: pledges["confirm"]},
			Signature: make(Signature, SignatureLimit+1),
		})
		assert.ErrorIs(t, err, xdr.ErrLengthExceedsMax)
	})

	t.Run("unknown statement", func(t *testing.T) {
		b := unhex(t, "00000000"+rep("5c", 32)+"00000000 00000001 00000004")
		err := decodeErr[SCPStatement](b)
		assert.ErrorIs(t, err, xdr.ErrUnknownDiscriminant)
		assert.Contains(t, err.Error(), "SCPStatement.Pledges")
	})
}

func TestSCPQuorumSet(t *testing.T) {
	assertEncoding(t,
		SCPQuorumSet{Threshold: 1, Validators: []NodeID{account(1)}},
		"00000001 00000001 00000000"+rep("01", 32)+"00000000")

	nested := SCPQuorumSet{
		Threshold:  2,
		Validators: []NodeID{account(1), account(2)},
		InnerSets: []SCPQuorumSet{
			{Threshold: 1, Validators: []NodeID{account(3)}},
			{Threshold: 1, InnerSets: []SCPQuorumSet{{Threshold: 1, Validators: []NodeID{account(4)}}}},
		},
	}
	b := roundTrip(t, nested)

	var q SCPQuorumSet
	assert.ErrorIs(t, xdr.NewCoder(xdr.Options{MaxDepth: 2}).Unmarshal(b, &q), xdr.ErrMaxDepthExceeded)
	require.NoError(t, xdr.NewCoder(xdr.Options{MaxDepth: 3}).Unmarshal(b, &q))
}
