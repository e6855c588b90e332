// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	"bytes"

	xdr "go.e43.eu/stellarxdr"
)

type AssetType int32

const (
	AssetTypeNative           AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare        AssetType = 3
)

var assetTypeMap = map[int32]string{
	0: "AssetTypeNative",
	1: "AssetTypeCreditAlphanum4",
	2: "AssetTypeCreditAlphanum12",
	3: "AssetTypePoolShare",
}

func (e AssetType) ValidEnum(v int32) bool {
	_, ok := assetTypeMap[v]
	return ok
}

func (e AssetType) String() string {
	return enumString(assetTypeMap, "AssetType", int32(e))
}

func (e AssetType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *AssetType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[AssetType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// AssetCode4 is a 1-4 character asset code, NUL padded
type AssetCode4 [4]byte

func (c AssetCode4) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeFixedOpaque(c[:], len(c))
}

func (c *AssetCode4) UnmarshalXDR(d xdr.Decoder) error {
	var v AssetCode4
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*c = v
	return nil
}

func (c AssetCode4) String() string {
	return string(bytes.TrimRight(c[:], "\x00"))
}

// AssetCode12 is a 5-12 character asset code, NUL padded
type AssetCode12 [12]byte

func (c AssetCode12) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeFixedOpaque(c[:], len(c))
}

func (c *AssetCode12) UnmarshalXDR(d xdr.Decoder) error {
	var v AssetCode12
	if err := d.DecodeFixedOpaque(v[:]); err != nil {
		return err
	}
	*c = v
	return nil
}

func (c AssetCode12) String() string {
	return string(bytes.TrimRight(c[:], "\x00"))
}

type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountID
}

func (a AlphaNum4) MarshalXDR(e xdr.Encoder) error {
	if err := a.AssetCode.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AlphaNum4", "AssetCode")
	}
	return xdr.WithField(a.Issuer.MarshalXDR(e), "AlphaNum4", "Issuer")
}

func (a *AlphaNum4) UnmarshalXDR(d xdr.Decoder) error {
	var v AlphaNum4
	if err := v.AssetCode.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AlphaNum4", "AssetCode")
	}
	if err := v.Issuer.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AlphaNum4", "Issuer")
	}
	*a = v
	return nil
}

type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountID
}

func (a AlphaNum12) MarshalXDR(e xdr.Encoder) error {
	if err := a.AssetCode.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AlphaNum12", "AssetCode")
	}
	return xdr.WithField(a.Issuer.MarshalXDR(e), "AlphaNum12", "Issuer")
}

func (a *AlphaNum12) UnmarshalXDR(d xdr.Decoder) error {
	var v AlphaNum12
	if err := v.AssetCode.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AlphaNum12", "AssetCode")
	}
	if err := v.Issuer.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AlphaNum12", "Issuer")
	}
	*a = v
	return nil
}

// AssetNative is the void arm selecting the network's native asset (lumens)
type AssetNative struct{}

func (AssetNative) MarshalXDR(xdr.Encoder) error { return nil }

// Asset is `union Asset switch (AssetType type)`
type Asset struct {
	Arm AssetArm
}

// AssetArm is implemented by AssetNative, AlphaNum4 and AlphaNum12
type AssetArm interface {
	xdr.Marshaler
	assetType() AssetType
}

func (AssetNative) assetType() AssetType { return AssetTypeNative }
func (AlphaNum4) assetType() AssetType   { return AssetTypeCreditAlphanum4 }
func (AlphaNum12) assetType() AssetType  { return AssetTypeCreditAlphanum12 }

// NativeAsset returns the native asset
func NativeAsset() Asset {
	return Asset{Arm: AssetNative{}}
}

func (a Asset) Type() AssetType {
	return a.Arm.assetType()
}

func (a Asset) MarshalXDR(e xdr.Encoder) error {
	if a.Arm == nil {
		return errNilArm("Asset")
	}
	if err := a.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Asset", "Type")
	}
	return xdr.WithField(a.Arm.MarshalXDR(e), "Asset", a.Type().String())
}

func (a *Asset) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[AssetType](d)
	if err != nil {
		return xdr.WithField(err, "Asset", "Type")
	}

	arm, err := decodeCreditAsset(d, "Asset", t)
	if err != nil {
		return err
	}
	a.Arm = arm
	return nil
}

// decodeCreditAsset decodes the arms shared by Asset and TrustLineAsset
func decodeCreditAsset(d xdr.Decoder, typeName string, t AssetType) (AssetArm, error) {
	var (
		arm AssetArm
		err error
	)

	switch t {
	case AssetTypeNative:
		arm = AssetNative{}
	case AssetTypeCreditAlphanum4:
		var a AlphaNum4
		err = a.UnmarshalXDR(d)
		arm = a
	case AssetTypeCreditAlphanum12:
		var a AlphaNum12
		err = a.UnmarshalXDR(d)
		arm = a
	default:
		return nil, xdr.UnknownArm(typeName, int64(t))
	}

	if err != nil {
		return nil, xdr.WithField(err, typeName, t.String())
	}
	return arm, nil
}

// TrustLineAsset is the asset held by a trust line: any Asset, or a share
// of a liquidity pool
type TrustLineAsset struct {
	Arm TrustLineAssetArm
}

// TrustLineAssetArm is implemented by AssetNative, AlphaNum4, AlphaNum12
// and TrustLineAssetPoolShare
type TrustLineAssetArm interface {
	xdr.Marshaler
	trustLineAssetType() AssetType
}

func (AssetNative) trustLineAssetType() AssetType { return AssetTypeNative }
func (AlphaNum4) trustLineAssetType() AssetType   { return AssetTypeCreditAlphanum4 }
func (AlphaNum12) trustLineAssetType() AssetType  { return AssetTypeCreditAlphanum12 }

// TrustLineAssetPoolShare selects the liquidity pool with the given ID
type TrustLineAssetPoolShare PoolID

func (TrustLineAssetPoolShare) trustLineAssetType() AssetType { return AssetTypePoolShare }

func (p TrustLineAssetPoolShare) MarshalXDR(e xdr.Encoder) error {
	return PoolID(p).MarshalXDR(e)
}

func (a TrustLineAsset) Type() AssetType {
	return a.Arm.trustLineAssetType()
}

func (a TrustLineAsset) MarshalXDR(e xdr.Encoder) error {
	if a.Arm == nil {
		return errNilArm("TrustLineAsset")
	}
	if err := a.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "TrustLineAsset", "Type")
	}
	return xdr.WithField(a.Arm.MarshalXDR(e), "TrustLineAsset", a.Type().String())
}

func (a *TrustLineAsset) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[AssetType](d)
	if err != nil {
		return xdr.WithField(err, "TrustLineAsset", "Type")
	}

	if t == AssetTypePoolShare {
		var id PoolID
		if err := id.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "TrustLineAsset", t.String())
		}
		a.Arm = TrustLineAssetPoolShare(id)
		return nil
	}

	arm, err := decodeCreditAsset(d, "TrustLineAsset", t)
	if err != nil {
		return err
	}
	a.Arm = arm.(TrustLineAssetArm)
	return nil
}

// Price is the rational N/D
type Price struct {
	N Int32
	D Int32
}

func (p Price) MarshalXDR(e xdr.Encoder) error {
	if err := p.N.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Price", "N")
	}
	return xdr.WithField(p.D.MarshalXDR(e), "Price", "D")
}

func (p *Price) UnmarshalXDR(d xdr.Decoder) error {
	var v Price
	if err := v.N.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Price", "N")
	}
	if err := v.D.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Price", "D")
	}
	*p = v
	return nil
}

type Liabilities struct {
	Buying  Int64
	Selling Int64
}

func (l Liabilities) MarshalXDR(e xdr.Encoder) error {
	if err := l.Buying.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Liabilities", "Buying")
	}
	return xdr.WithField(l.Selling.MarshalXDR(e), "Liabilities", "Selling")
}

func (l *Liabilities) UnmarshalXDR(d xdr.Decoder) error {
	var v Liabilities
	if err := v.Buying.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Liabilities", "Buying")
	}
	if err := v.Selling.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Liabilities", "Selling")
	}
	*l = v
	return nil
}
