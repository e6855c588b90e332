// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTTL              LedgerEntryType = 9
)

var ledgerEntryTypeMap = map[int32]string{
	0: "LedgerEntryTypeAccount",
	1: "LedgerEntryTypeTrustline",
	2: "LedgerEntryTypeOffer",
	3: "LedgerEntryTypeData",
	4: "LedgerEntryTypeClaimableBalance",
	5: "LedgerEntryTypeLiquidityPool",
	6: "LedgerEntryTypeContractData",
	7: "LedgerEntryTypeContractCode",
	8: "LedgerEntryTypeConfigSetting",
	9: "LedgerEntryTypeTTL",
}

func (e LedgerEntryType) ValidEnum(v int32) bool {
	_, ok := ledgerEntryTypeMap[v]
	return ok
}

func (e LedgerEntryType) String() string {
	return enumString(ledgerEntryTypeMap, "LedgerEntryType", int32(e))
}

func (e LedgerEntryType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *LedgerEntryType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[LedgerEntryType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type OfferEntry struct {
	SellerID AccountID
	OfferID  Int64
	Selling  Asset
	Buying   Asset
	Amount   Int64
	Price    Price
	Flags    Uint32
	Ext      ExtensionPoint
}

func (o OfferEntry) MarshalXDR(e xdr.Encoder) error {
	if err := o.SellerID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "SellerID")
	}
	if err := o.OfferID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "OfferID")
	}
	if err := o.Selling.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "Selling")
	}
	if err := o.Buying.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "Buying")
	}
	if err := o.Amount.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "Amount")
	}
	if err := o.Price.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "Price")
	}
	if err := o.Flags.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "OfferEntry", "Flags")
	}
	return xdr.WithField(o.Ext.MarshalXDR(e), "OfferEntry", "Ext")
}

func (o *OfferEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v OfferEntry
	if err := v.SellerID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "SellerID")
	}
	if err := v.OfferID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "OfferID")
	}
	if err := v.Selling.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "Selling")
	}
	if err := v.Buying.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "Buying")
	}
	if err := v.Amount.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "Amount")
	}
	if err := v.Price.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "Price")
	}
	if err := v.Flags.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "Flags")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "OfferEntry", "Ext")
	}
	*o = v
	return nil
}

type DataEntry struct {
	AccountID AccountID
	DataName  String64
	DataValue DataValue
	Ext       ExtensionPoint
}

func (x DataEntry) MarshalXDR(e xdr.Encoder) error {
	if err := x.AccountID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "DataEntry", "AccountID")
	}
	if err := x.DataName.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "DataEntry", "DataName")
	}
	if err := x.DataValue.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "DataEntry", "DataValue")
	}
	return xdr.WithField(x.Ext.MarshalXDR(e), "DataEntry", "Ext")
}

func (x *DataEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v DataEntry
	if err := v.AccountID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "DataEntry", "AccountID")
	}
	if err := v.DataName.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "DataEntry", "DataName")
	}
	if err := v.DataValue.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "DataEntry", "DataValue")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "DataEntry", "Ext")
	}
	*x = v
	return nil
}

type LiquidityPoolType int32

const (
	LiquidityPoolTypeConstantProduct LiquidityPoolType = 0
)

var liquidityPoolTypeMap = map[int32]string{
	0: "LiquidityPoolTypeConstantProduct",
}

func (e LiquidityPoolType) ValidEnum(v int32) bool {
	_, ok := liquidityPoolTypeMap[v]
	return ok
}

func (e LiquidityPoolType) String() string {
	return enumString(liquidityPoolTypeMap, "LiquidityPoolType", int32(e))
}

func (e LiquidityPoolType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *LiquidityPoolType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[LiquidityPoolType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// LiquidityPoolConstantProductParameters describes a pool; Fee is in basis
// points
type LiquidityPoolConstantProductParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    Int32
}

func (l LiquidityPoolConstantProductParameters) MarshalXDR(e xdr.Encoder) error {
	if err := l.AssetA.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolConstantProductParameters", "AssetA")
	}
	if err := l.AssetB.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolConstantProductParameters", "AssetB")
	}
	return xdr.WithField(l.Fee.MarshalXDR(e), "LiquidityPoolConstantProductParameters", "Fee")
}

func (l *LiquidityPoolConstantProductParameters) UnmarshalXDR(d xdr.Decoder) error {
	var v LiquidityPoolConstantProductParameters
	if err := v.AssetA.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolConstantProductParameters", "AssetA")
	}
	if err := v.AssetB.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolConstantProductParameters", "AssetB")
	}
	if err := v.Fee.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolConstantProductParameters", "Fee")
	}
	*l = v
	return nil
}

type LiquidityPoolEntryConstantProduct struct {
	Params                   LiquidityPoolConstantProductParameters
	ReserveA                 Int64
	ReserveB                 Int64
	TotalPoolShares          Int64
	PoolSharesTrustLineCount Int64
}

func (l LiquidityPoolEntryConstantProduct) MarshalXDR(e xdr.Encoder) error {
	if err := l.Params.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "Params")
	}
	if err := l.ReserveA.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "ReserveA")
	}
	if err := l.ReserveB.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "ReserveB")
	}
	if err := l.TotalPoolShares.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "TotalPoolShares")
	}
	return xdr.WithField(l.PoolSharesTrustLineCount.MarshalXDR(e), "LiquidityPoolEntryConstantProduct", "PoolSharesTrustLineCount")
}

func (l *LiquidityPoolEntryConstantProduct) UnmarshalXDR(d xdr.Decoder) error {
	var v LiquidityPoolEntryConstantProduct
	if err := v.Params.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "Params")
	}
	if err := v.ReserveA.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "ReserveA")
	}
	if err := v.ReserveB.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "ReserveB")
	}
	if err := v.TotalPoolShares.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "TotalPoolShares")
	}
	if err := v.PoolSharesTrustLineCount.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryConstantProduct", "PoolSharesTrustLineCount")
	}
	*l = v
	return nil
}

type LiquidityPoolEntryBody struct {
	Arm LiquidityPoolEntryBodyArm
}

// LiquidityPoolEntryBodyArm is implemented by the arm types of LiquidityPoolEntryBody
type LiquidityPoolEntryBodyArm interface {
	xdr.Marshaler
	liquidityPoolEntryBodyType() LiquidityPoolType
}

func (LiquidityPoolEntryConstantProduct) liquidityPoolEntryBodyType() LiquidityPoolType { return LiquidityPoolTypeConstantProduct }

func (l LiquidityPoolEntryBody) Type() LiquidityPoolType {
	return l.Arm.liquidityPoolEntryBodyType()
}

func (l LiquidityPoolEntryBody) MarshalXDR(e xdr.Encoder) error {
	if l.Arm == nil {
		return errNilArm("LiquidityPoolEntryBody")
	}
	if err := l.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryBody", "Type")
	}
	return xdr.WithField(l.Arm.MarshalXDR(e), "LiquidityPoolEntryBody", l.Type().String())
}

func (l *LiquidityPoolEntryBody) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[LiquidityPoolType](d)
	if err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryBody", "Type")
	}

	var arm LiquidityPoolEntryBodyArm
	switch t {
	case LiquidityPoolTypeConstantProduct:
		var x LiquidityPoolEntryConstantProduct
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("LiquidityPoolEntryBody", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "LiquidityPoolEntryBody", t.String())
	}
	l.Arm = arm
	return nil
}

type LiquidityPoolEntry struct {
	LiquidityPoolID PoolID
	Body            LiquidityPoolEntryBody
}

func (l LiquidityPoolEntry) MarshalXDR(e xdr.Encoder) error {
	if err := l.LiquidityPoolID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntry", "LiquidityPoolID")
	}
	return xdr.WithField(l.Body.MarshalXDR(e), "LiquidityPoolEntry", "Body")
}

func (l *LiquidityPoolEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v LiquidityPoolEntry
	if err := v.LiquidityPoolID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntry", "LiquidityPoolID")
	}
	if err := v.Body.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LiquidityPoolEntry", "Body")
	}
	*l = v
	return nil
}

type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

var contractDataDurabilityMap = map[int32]string{
	0: "ContractDataDurabilityTemporary",
	1: "ContractDataDurabilityPersistent",
}

func (e ContractDataDurability) ValidEnum(v int32) bool {
	_, ok := contractDataDurabilityMap[v]
	return ok
}

func (e ContractDataDurability) String() string {
	return enumString(contractDataDurabilityMap, "ContractDataDurability", int32(e))
}

func (e ContractDataDurability) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ContractDataDurability) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ContractDataDurability](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type ContractDataEntry struct {
	Ext        ExtensionPoint
	Contract   SCAddress
	Key        SCVal
	Durability ContractDataDurability
	Val        SCVal
}

func (c ContractDataEntry) MarshalXDR(e xdr.Encoder) error {
	if err := c.Ext.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Ext")
	}
	if err := c.Contract.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Contract")
	}
	if err := c.Key.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Key")
	}
	if err := c.Durability.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Durability")
	}
	return xdr.WithField(c.Val.MarshalXDR(e), "ContractDataEntry", "Val")
}

func (c *ContractDataEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v ContractDataEntry
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Ext")
	}
	if err := v.Contract.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Contract")
	}
	if err := v.Key.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Key")
	}
	if err := v.Durability.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Durability")
	}
	if err := v.Val.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractDataEntry", "Val")
	}
	*c = v
	return nil
}

// ContractCodeCostInputs are the properties of a Wasm module which
// determine the cost of instantiating it
type ContractCodeCostInputs struct {
	Ext               ExtensionPoint
	NInstructions     Uint32
	NFunctions        Uint32
	NGlobals          Uint32
	NTableEntries     Uint32
	NTypes            Uint32
	NDataSegments     Uint32
	NElemSegments     Uint32
	NImports          Uint32
	NExports          Uint32
	NDataSegmentBytes Uint32
}

func (c ContractCodeCostInputs) MarshalXDR(e xdr.Encoder) error {
	if err := c.Ext.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "Ext")
	}
	if err := c.NInstructions.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NInstructions")
	}
	if err := c.NFunctions.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NFunctions")
	}
	if err := c.NGlobals.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NGlobals")
	}
	if err := c.NTableEntries.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NTableEntries")
	}
	if err := c.NTypes.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NTypes")
	}
	if err := c.NDataSegments.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NDataSegments")
	}
	if err := c.NElemSegments.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NElemSegments")
	}
	if err := c.NImports.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NImports")
	}
	if err := c.NExports.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NExports")
	}
	return xdr.WithField(c.NDataSegmentBytes.MarshalXDR(e), "ContractCodeCostInputs", "NDataSegmentBytes")
}

func (c *ContractCodeCostInputs) UnmarshalXDR(d xdr.Decoder) error {
	var v ContractCodeCostInputs
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "Ext")
	}
	if err := v.NInstructions.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NInstructions")
	}
	if err := v.NFunctions.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NFunctions")
	}
	if err := v.NGlobals.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NGlobals")
	}
	if err := v.NTableEntries.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NTableEntries")
	}
	if err := v.NTypes.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NTypes")
	}
	if err := v.NDataSegments.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NDataSegments")
	}
	if err := v.NElemSegments.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NElemSegments")
	}
	if err := v.NImports.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NImports")
	}
	if err := v.NExports.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NExports")
	}
	if err := v.NDataSegmentBytes.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeCostInputs", "NDataSegmentBytes")
	}
	*c = v
	return nil
}

type ContractCodeEntryV1 struct {
	Ext        ExtensionPoint
	CostInputs ContractCodeCostInputs
}

func (c ContractCodeEntryV1) MarshalXDR(e xdr.Encoder) error {
	if err := c.Ext.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeEntryV1", "Ext")
	}
	return xdr.WithField(c.CostInputs.MarshalXDR(e), "ContractCodeEntryV1", "CostInputs")
}

func (c *ContractCodeEntryV1) UnmarshalXDR(d xdr.Decoder) error {
	var v ContractCodeEntryV1
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeEntryV1", "Ext")
	}
	if err := v.CostInputs.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeEntryV1", "CostInputs")
	}
	*c = v
	return nil
}

type ContractCodeEntryExt struct {
	V1 *ContractCodeEntryV1
}

func (x ContractCodeEntryExt) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 1, x.V1)
}

func (x *ContractCodeEntryExt) UnmarshalXDR(d xdr.Decoder) error {
	v1, err := decodeExt[ContractCodeEntryV1](d, "ContractCodeEntryExt", 1)
	if err != nil {
		return err
	}
	x.V1 = v1
	return nil
}

type ContractCodeEntry struct {
	Ext  ContractCodeEntryExt
	Hash Hash
	Code []byte
}

func (c ContractCodeEntry) MarshalXDR(e xdr.Encoder) error {
	if err := c.Ext.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeEntry", "Ext")
	}
	if err := c.Hash.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ContractCodeEntry", "Hash")
	}
	return xdr.WithField(e.EncodeOpaque(c.Code, xdr.Unbounded), "ContractCodeEntry", "Code")
}

func (c *ContractCodeEntry) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   ContractCodeEntry
		err error
	)
	if err = v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeEntry", "Ext")
	}
	if err = v.Hash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ContractCodeEntry", "Hash")
	}
	if v.Code, err = d.DecodeOpaque(xdr.Unbounded); err != nil {
		return xdr.WithField(err, "ContractCodeEntry", "Code")
	}
	*c = v
	return nil
}

// TTLEntry records the ledger until which the Soroban entry whose key
// hashes to KeyHash is live
type TTLEntry struct {
	KeyHash            Hash
	LiveUntilLedgerSeq Uint32
}

func (t TTLEntry) MarshalXDR(e xdr.Encoder) error {
	if err := t.KeyHash.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TTLEntry", "KeyHash")
	}
	return xdr.WithField(t.LiveUntilLedgerSeq.MarshalXDR(e), "TTLEntry", "LiveUntilLedgerSeq")
}

func (t *TTLEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v TTLEntry
	if err := v.KeyHash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TTLEntry", "KeyHash")
	}
	if err := v.LiveUntilLedgerSeq.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TTLEntry", "LiveUntilLedgerSeq")
	}
	*t = v
	return nil
}

// LedgerEntryData is the body of a ledger entry. Config setting entries
// are not supported and decode as an unknown discriminant.
type LedgerEntryData struct {
	Arm LedgerEntryDataArm
}

// LedgerEntryDataArm is implemented by AccountEntry, TrustLineEntry,
// OfferEntry, DataEntry, ClaimableBalanceEntry, LiquidityPoolEntry,
// ContractDataEntry, ContractCodeEntry and TTLEntry
type LedgerEntryDataArm interface {
	xdr.Marshaler
	ledgerEntryDataType() LedgerEntryType
}

func (AccountEntry) ledgerEntryDataType() LedgerEntryType          { return LedgerEntryTypeAccount }
func (TrustLineEntry) ledgerEntryDataType() LedgerEntryType        { return LedgerEntryTypeTrustline }
func (OfferEntry) ledgerEntryDataType() LedgerEntryType            { return LedgerEntryTypeOffer }
func (DataEntry) ledgerEntryDataType() LedgerEntryType             { return LedgerEntryTypeData }
func (ClaimableBalanceEntry) ledgerEntryDataType() LedgerEntryType { return LedgerEntryTypeClaimableBalance }
func (LiquidityPoolEntry) ledgerEntryDataType() LedgerEntryType    { return LedgerEntryTypeLiquidityPool }
func (ContractDataEntry) ledgerEntryDataType() LedgerEntryType     { return LedgerEntryTypeContractData }
func (ContractCodeEntry) ledgerEntryDataType() LedgerEntryType     { return LedgerEntryTypeContractCode }
func (TTLEntry) ledgerEntryDataType() LedgerEntryType              { return LedgerEntryTypeTTL }

func (l LedgerEntryData) Type() LedgerEntryType {
	return l.Arm.ledgerEntryDataType()
}

func (l LedgerEntryData) MarshalXDR(e xdr.Encoder) error {
	if l.Arm == nil {
		return errNilArm("LedgerEntryData")
	}
	if err := l.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerEntryData", "Type")
	}
	return xdr.WithField(l.Arm.MarshalXDR(e), "LedgerEntryData", l.Type().String())
}

func (l *LedgerEntryData) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[LedgerEntryType](d)
	if err != nil {
		return xdr.WithField(err, "LedgerEntryData", "Type")
	}

	var arm LedgerEntryDataArm
	switch t {
	case LedgerEntryTypeAccount:
		var x AccountEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeTrustline:
		var x TrustLineEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeOffer:
		var x OfferEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeData:
		var x DataEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeClaimableBalance:
		var x ClaimableBalanceEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeLiquidityPool:
		var x LiquidityPoolEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeContractData:
		var x ContractDataEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeContractCode:
		var x ContractCodeEntry
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeTTL:
		var x TTLEntry
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("LedgerEntryData", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "LedgerEntryData", t.String())
	}
	l.Arm = arm
	return nil
}

type LedgerEntryExtensionV1 struct {
	SponsoringID SponsorshipDescriptor
	Ext          ExtensionPoint
}

func (l LedgerEntryExtensionV1) MarshalXDR(e xdr.Encoder) error {
	if err := l.SponsoringID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerEntryExtensionV1", "SponsoringID")
	}
	return xdr.WithField(l.Ext.MarshalXDR(e), "LedgerEntryExtensionV1", "Ext")
}

func (l *LedgerEntryExtensionV1) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerEntryExtensionV1
	if err := v.SponsoringID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerEntryExtensionV1", "SponsoringID")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerEntryExtensionV1", "Ext")
	}
	*l = v
	return nil
}

type LedgerEntryExt struct {
	V1 *LedgerEntryExtensionV1
}

func (x LedgerEntryExt) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 1, x.V1)
}

func (x *LedgerEntryExt) UnmarshalXDR(d xdr.Decoder) error {
	v1, err := decodeExt[LedgerEntryExtensionV1](d, "LedgerEntryExt", 1)
	if err != nil {
		return err
	}
	x.V1 = v1
	return nil
}

type LedgerEntry struct {
	LastModifiedLedgerSeq Uint32
	Data                  LedgerEntryData
	Ext                   LedgerEntryExt
}

func (l LedgerEntry) MarshalXDR(e xdr.Encoder) error {
	if err := l.LastModifiedLedgerSeq.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerEntry", "LastModifiedLedgerSeq")
	}
	if err := l.Data.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerEntry", "Data")
	}
	return xdr.WithField(l.Ext.MarshalXDR(e), "LedgerEntry", "Ext")
}

func (l *LedgerEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerEntry
	if err := v.LastModifiedLedgerSeq.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerEntry", "LastModifiedLedgerSeq")
	}
	if err := v.Data.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerEntry", "Data")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerEntry", "Ext")
	}
	*l = v
	return nil
}

type ConfigSettingID int32

const (
	ConfigSettingContractMaxSizeBytes              ConfigSettingID = 0
	ConfigSettingContractComputeV0                 ConfigSettingID = 1
	ConfigSettingContractLedgerCostV0              ConfigSettingID = 2
	ConfigSettingContractHistoricalDataV0          ConfigSettingID = 3
	ConfigSettingContractEventsV0                  ConfigSettingID = 4
	ConfigSettingContractBandwidthV0               ConfigSettingID = 5
	ConfigSettingContractCostParamsCPUInstructions ConfigSettingID = 6
	ConfigSettingContractCostParamsMemoryBytes     ConfigSettingID = 7
	ConfigSettingContractDataKeySizeBytes          ConfigSettingID = 8
	ConfigSettingContractDataEntrySizeBytes        ConfigSettingID = 9
	ConfigSettingStateArchival                     ConfigSettingID = 10
	ConfigSettingContractExecutionLanes            ConfigSettingID = 11
	ConfigSettingLiveSorobanStateSizeWindow        ConfigSettingID = 12
	ConfigSettingEvictionIterator                  ConfigSettingID = 13
)

var configSettingIDMap = map[int32]string{
	0:  "ConfigSettingContractMaxSizeBytes",
	1:  "ConfigSettingContractComputeV0",
	2:  "ConfigSettingContractLedgerCostV0",
	3:  "ConfigSettingContractHistoricalDataV0",
	4:  "ConfigSettingContractEventsV0",
	5:  "ConfigSettingContractBandwidthV0",
	6:  "ConfigSettingContractCostParamsCPUInstructions",
	7:  "ConfigSettingContractCostParamsMemoryBytes",
	8:  "ConfigSettingContractDataKeySizeBytes",
	9:  "ConfigSettingContractDataEntrySizeBytes",
	10: "ConfigSettingStateArchival",
	11: "ConfigSettingContractExecutionLanes",
	12: "ConfigSettingLiveSorobanStateSizeWindow",
	13: "ConfigSettingEvictionIterator",
}

func (e ConfigSettingID) ValidEnum(v int32) bool {
	_, ok := configSettingIDMap[v]
	return ok
}

func (e ConfigSettingID) String() string {
	return enumString(configSettingIDMap, "ConfigSettingID", int32(e))
}

func (e ConfigSettingID) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ConfigSettingID) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ConfigSettingID](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type LedgerKeyAccount struct {
	AccountID AccountID
}

func (l LedgerKeyAccount) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(l.AccountID.MarshalXDR(e), "LedgerKeyAccount", "AccountID")
}

func (l *LedgerKeyAccount) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyAccount
	if err := v.AccountID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyAccount", "AccountID")
	}
	*l = v
	return nil
}

type LedgerKeyTrustLine struct {
	AccountID AccountID
	Asset     TrustLineAsset
}

func (l LedgerKeyTrustLine) MarshalXDR(e xdr.Encoder) error {
	if err := l.AccountID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerKeyTrustLine", "AccountID")
	}
	return xdr.WithField(l.Asset.MarshalXDR(e), "LedgerKeyTrustLine", "Asset")
}

func (l *LedgerKeyTrustLine) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyTrustLine
	if err := v.AccountID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyTrustLine", "AccountID")
	}
	if err := v.Asset.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyTrustLine", "Asset")
	}
	*l = v
	return nil
}

type LedgerKeyOffer struct {
	SellerID AccountID
	OfferID  Int64
}

func (l LedgerKeyOffer) MarshalXDR(e xdr.Encoder) error {
	if err := l.SellerID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerKeyOffer", "SellerID")
	}
	return xdr.WithField(l.OfferID.MarshalXDR(e), "LedgerKeyOffer", "OfferID")
}

func (l *LedgerKeyOffer) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyOffer
	if err := v.SellerID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyOffer", "SellerID")
	}
	if err := v.OfferID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyOffer", "OfferID")
	}
	*l = v
	return nil
}

type LedgerKeyData struct {
	AccountID AccountID
	DataName  String64
}

func (l LedgerKeyData) MarshalXDR(e xdr.Encoder) error {
	if err := l.AccountID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerKeyData", "AccountID")
	}
	return xdr.WithField(l.DataName.MarshalXDR(e), "LedgerKeyData", "DataName")
}

func (l *LedgerKeyData) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyData
	if err := v.AccountID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyData", "AccountID")
	}
	if err := v.DataName.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyData", "DataName")
	}
	*l = v
	return nil
}

type LedgerKeyClaimableBalance struct {
	BalanceID ClaimableBalanceID
}

func (l LedgerKeyClaimableBalance) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(l.BalanceID.MarshalXDR(e), "LedgerKeyClaimableBalance", "BalanceID")
}

func (l *LedgerKeyClaimableBalance) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyClaimableBalance
	if err := v.BalanceID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyClaimableBalance", "BalanceID")
	}
	*l = v
	return nil
}

type LedgerKeyLiquidityPool struct {
	LiquidityPoolID PoolID
}

func (l LedgerKeyLiquidityPool) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(l.LiquidityPoolID.MarshalXDR(e), "LedgerKeyLiquidityPool", "LiquidityPoolID")
}

func (l *LedgerKeyLiquidityPool) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyLiquidityPool
	if err := v.LiquidityPoolID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyLiquidityPool", "LiquidityPoolID")
	}
	*l = v
	return nil
}

type LedgerKeyContractData struct {
	Contract   SCAddress
	Key        SCVal
	Durability ContractDataDurability
}

func (l LedgerKeyContractData) MarshalXDR(e xdr.Encoder) error {
	if err := l.Contract.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerKeyContractData", "Contract")
	}
	if err := l.Key.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerKeyContractData", "Key")
	}
	return xdr.WithField(l.Durability.MarshalXDR(e), "LedgerKeyContractData", "Durability")
}

func (l *LedgerKeyContractData) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyContractData
	if err := v.Contract.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyContractData", "Contract")
	}
	if err := v.Key.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyContractData", "Key")
	}
	if err := v.Durability.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyContractData", "Durability")
	}
	*l = v
	return nil
}

type LedgerKeyContractCode struct {
	Hash Hash
}

func (l LedgerKeyContractCode) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(l.Hash.MarshalXDR(e), "LedgerKeyContractCode", "Hash")
}

func (l *LedgerKeyContractCode) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyContractCode
	if err := v.Hash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyContractCode", "Hash")
	}
	*l = v
	return nil
}

type LedgerKeyConfigSetting struct {
	ConfigSettingID ConfigSettingID
}

func (l LedgerKeyConfigSetting) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(l.ConfigSettingID.MarshalXDR(e), "LedgerKeyConfigSetting", "ConfigSettingID")
}

func (l *LedgerKeyConfigSetting) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyConfigSetting
	if err := v.ConfigSettingID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyConfigSetting", "ConfigSettingID")
	}
	*l = v
	return nil
}

type LedgerKeyTTL struct {
	KeyHash Hash
}

func (l LedgerKeyTTL) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(l.KeyHash.MarshalXDR(e), "LedgerKeyTTL", "KeyHash")
}

func (l *LedgerKeyTTL) UnmarshalXDR(d xdr.Decoder) error {
	var v LedgerKeyTTL
	if err := v.KeyHash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "LedgerKeyTTL", "KeyHash")
	}
	*l = v
	return nil
}

// LedgerKey identifies a ledger entry
type LedgerKey struct {
	Arm LedgerKeyArm
}

// LedgerKeyArm is implemented by the arm types of LedgerKey
type LedgerKeyArm interface {
	xdr.Marshaler
	ledgerKeyType() LedgerEntryType
}

func (LedgerKeyAccount) ledgerKeyType() LedgerEntryType          { return LedgerEntryTypeAccount }
func (LedgerKeyTrustLine) ledgerKeyType() LedgerEntryType        { return LedgerEntryTypeTrustline }
func (LedgerKeyOffer) ledgerKeyType() LedgerEntryType            { return LedgerEntryTypeOffer }
func (LedgerKeyData) ledgerKeyType() LedgerEntryType             { return LedgerEntryTypeData }
func (LedgerKeyClaimableBalance) ledgerKeyType() LedgerEntryType { return LedgerEntryTypeClaimableBalance }
func (LedgerKeyLiquidityPool) ledgerKeyType() LedgerEntryType    { return LedgerEntryTypeLiquidityPool }
func (LedgerKeyContractData) ledgerKeyType() LedgerEntryType     { return LedgerEntryTypeContractData }
func (LedgerKeyContractCode) ledgerKeyType() LedgerEntryType     { return LedgerEntryTypeContractCode }
func (LedgerKeyConfigSetting) ledgerKeyType() LedgerEntryType    { return LedgerEntryTypeConfigSetting }
func (LedgerKeyTTL) ledgerKeyType() LedgerEntryType              { return LedgerEntryTypeTTL }

func (l LedgerKey) Type() LedgerEntryType {
	return l.Arm.ledgerKeyType()
}

func (l LedgerKey) MarshalXDR(e xdr.Encoder) error {
	if l.Arm == nil {
		return errNilArm("LedgerKey")
	}
	if err := l.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "LedgerKey", "Type")
	}
	return xdr.WithField(l.Arm.MarshalXDR(e), "LedgerKey", l.Type().String())
}

func (l *LedgerKey) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[LedgerEntryType](d)
	if err != nil {
		return xdr.WithField(err, "LedgerKey", "Type")
	}

	var arm LedgerKeyArm
	switch t {
	case LedgerEntryTypeAccount:
		var x LedgerKeyAccount
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeTrustline:
		var x LedgerKeyTrustLine
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeOffer:
		var x LedgerKeyOffer
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeData:
		var x LedgerKeyData
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeClaimableBalance:
		var x LedgerKeyClaimableBalance
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeLiquidityPool:
		var x LedgerKeyLiquidityPool
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeContractData:
		var x LedgerKeyContractData
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeContractCode:
		var x LedgerKeyContractCode
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeConfigSetting:
		var x LedgerKeyConfigSetting
		err = x.UnmarshalXDR(d)
		arm = x
	case LedgerEntryTypeTTL:
		var x LedgerKeyTTL
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("LedgerKey", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "LedgerKey", t.String())
	}
	l.Arm = arm
	return nil
}

// Key returns the key identifying entry
func (l LedgerEntryData) Key() (LedgerKey, error) {
	switch a := l.Arm.(type) {
	case AccountEntry:
		return LedgerKey{Arm: LedgerKeyAccount{AccountID: a.AccountID}}, nil
	case TrustLineEntry:
		return LedgerKey{Arm: LedgerKeyTrustLine{AccountID: a.AccountID, Asset: a.Asset}}, nil
	case OfferEntry:
		return LedgerKey{Arm: LedgerKeyOffer{SellerID: a.SellerID, OfferID: a.OfferID}}, nil
	case DataEntry:
		return LedgerKey{Arm: LedgerKeyData{AccountID: a.AccountID, DataName: a.DataName}}, nil
	case ClaimableBalanceEntry:
		return LedgerKey{Arm: LedgerKeyClaimableBalance{BalanceID: a.BalanceID}}, nil
	case LiquidityPoolEntry:
		return LedgerKey{Arm: LedgerKeyLiquidityPool{LiquidityPoolID: a.LiquidityPoolID}}, nil
	case ContractDataEntry:
		return LedgerKey{Arm: LedgerKeyContractData{Contract: a.Contract, Key: a.Key, Durability: a.Durability}}, nil
	case ContractCodeEntry:
		return LedgerKey{Arm: LedgerKeyContractCode{Hash: a.Hash}}, nil
	case TTLEntry:
		return LedgerKey{Arm: LedgerKeyTTL{KeyHash: a.KeyHash}}, nil
	default:
		return LedgerKey{}, errNilArm("LedgerEntryData")
	}
}
