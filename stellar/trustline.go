// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

// Trust line flags
const (
	TrustLineAuthorizedFlag                      = 0x1
	TrustLineAuthorizedToMaintainLiabilitiesFlag = 0x2
	TrustLineClawbackEnabledFlag                 = 0x4
)

type TrustLineEntryExtensionV2 struct {
	LiquidityPoolUseCount Int32
	Ext                   ExtensionPoint
}

func (x TrustLineEntryExtensionV2) MarshalXDR(e xdr.Encoder) error {
	if err := x.LiquidityPoolUseCount.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntryExtensionV2", "LiquidityPoolUseCount")
	}
	return xdr.WithField(x.Ext.MarshalXDR(e), "TrustLineEntryExtensionV2", "Ext")
}

func (x *TrustLineEntryExtensionV2) UnmarshalXDR(d xdr.Decoder) error {
	var v TrustLineEntryExtensionV2
	if err := v.LiquidityPoolUseCount.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntryExtensionV2", "LiquidityPoolUseCount")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntryExtensionV2", "Ext")
	}
	*x = v
	return nil
}

type TrustLineEntryV1Ext struct {
	V2 *TrustLineEntryExtensionV2
}

func (x TrustLineEntryV1Ext) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 2, x.V2)
}

func (x *TrustLineEntryV1Ext) UnmarshalXDR(d xdr.Decoder) error {
	v2, err := decodeExt[TrustLineEntryExtensionV2](d, "TrustLineEntryV1Ext", 2)
	if err != nil {
		return err
	}
	x.V2 = v2
	return nil
}

// TrustLineEntryV1 is the anonymous v1 arm of TrustLineEntry's extension
type TrustLineEntryV1 struct {
	Liabilities Liabilities
	Ext         TrustLineEntryV1Ext
}

func (x TrustLineEntryV1) MarshalXDR(e xdr.Encoder) error {
	if err := x.Liabilities.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntryV1", "Liabilities")
	}
	return xdr.WithField(x.Ext.MarshalXDR(e), "TrustLineEntryV1", "Ext")
}

func (x *TrustLineEntryV1) UnmarshalXDR(d xdr.Decoder) error {
	var v TrustLineEntryV1
	if err := v.Liabilities.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntryV1", "Liabilities")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntryV1", "Ext")
	}
	*x = v
	return nil
}

type TrustLineEntryExt struct {
	V1 *TrustLineEntryV1
}

func (x TrustLineEntryExt) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 1, x.V1)
}

func (x *TrustLineEntryExt) UnmarshalXDR(d xdr.Decoder) error {
	v1, err := decodeExt[TrustLineEntryV1](d, "TrustLineEntryExt", 1)
	if err != nil {
		return err
	}
	x.V1 = v1
	return nil
}

type TrustLineEntry struct {
	AccountID AccountID
	Asset     TrustLineAsset
	Balance   Int64
	Limit     Int64
	Flags     Uint32
	Ext       TrustLineEntryExt
}

func (t TrustLineEntry) MarshalXDR(e xdr.Encoder) error {
	if err := t.AccountID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "AccountID")
	}
	if err := t.Asset.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Asset")
	}
	if err := t.Balance.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Balance")
	}
	if err := t.Limit.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Limit")
	}
	if err := t.Flags.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Flags")
	}
	return xdr.WithField(t.Ext.MarshalXDR(e), "TrustLineEntry", "Ext")
}

func (t *TrustLineEntry) UnmarshalXDR(d xdr.Decoder) error {
	var v TrustLineEntry
	if err := v.AccountID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "AccountID")
	}
	if err := v.Asset.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Asset")
	}
	if err := v.Balance.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Balance")
	}
	if err := v.Limit.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Limit")
	}
	if err := v.Flags.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Flags")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "TrustLineEntry", "Ext")
	}
	*t = v
	return nil
}
