// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"slices"

	xdr "go.e43.eu/stellarxdr"
)

// Codec is a pointer to a Stellar type, able to both encode and decode
// itself
type Codec interface {
	xdr.Marshaler
	xdr.Unmarshaler
}

var registry = map[string]func() Codec{}

func register[T any, PT interface {
	*T
	Codec
}](name string) {
	registry[name] = func() Codec { return PT(new(T)) }
}

func init() {
	register[AccountEntry]("AccountEntry")
	register[Asset]("Asset")
	register[ClaimableBalanceEntry]("ClaimableBalanceEntry")
	register[ClaimableBalanceID]("ClaimableBalanceID")
	register[Claimant]("Claimant")
	register[ClaimPredicate]("ClaimPredicate")
	register[ContractCodeEntry]("ContractCodeEntry")
	register[ContractDataEntry]("ContractDataEntry")
	register[ContractIDPreimage]("ContractIDPreimage")
	register[DataEntry]("DataEntry")
	register[HostFunction]("HostFunction")
	register[InvokeContractArgs]("InvokeContractArgs")
	register[InvokeHostFunctionOp]("InvokeHostFunctionOp")
	register[InvokeHostFunctionResult]("InvokeHostFunctionResult")
	register[LedgerEntry]("LedgerEntry")
	register[LedgerKey]("LedgerKey")
	register[LiquidityPoolEntry]("LiquidityPoolEntry")
	register[Memo]("Memo")
	register[MuxedAccount]("MuxedAccount")
	register[OfferEntry]("OfferEntry")
	register[OperationResultCode]("OperationResultCode")
	register[PaymentOp]("PaymentOp")
	register[PaymentResult]("PaymentResult")
	register[PublicKey]("PublicKey")
	register[SCAddress]("SCAddress")
	register[SCContractInstance]("SCContractInstance")
	register[SCError]("SCError")
	register[SCPEnvelope]("SCPEnvelope")
	register[SCPQuorumSet]("SCPQuorumSet")
	register[SCPStatement]("SCPStatement")
	register[SCVal]("SCVal")
	register[SignerKey]("SignerKey")
	register[SorobanAuthorizationEntry]("SorobanAuthorizationEntry")
	register[SorobanAuthorizedInvocation]("SorobanAuthorizedInvocation")
	register[TrustLineAsset]("TrustLineAsset")
	register[TrustLineEntry]("TrustLineEntry")
	register[TTLEntry]("TTLEntry")
}

// Lookup returns a new zero value of the named type, ready to be decoded
// into
func Lookup(name string) (Codec, bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// TypeNames returns the names accepted by Lookup, sorted
func TypeNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
