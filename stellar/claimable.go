// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

type ClaimPredicateType int32

const (
	ClaimPredicateTypeUnconditional      ClaimPredicateType = 0
	ClaimPredicateTypeAnd                ClaimPredicateType = 1
	ClaimPredicateTypeOr                 ClaimPredicateType = 2
	ClaimPredicateTypeNot                ClaimPredicateType = 3
	ClaimPredicateTypeBeforeAbsoluteTime ClaimPredicateType = 4
	ClaimPredicateTypeBeforeRelativeTime ClaimPredicateType = 5
)

var claimPredicateTypeMap = map[int32]string{
	0: "ClaimPredicateTypeUnconditional",
	1: "ClaimPredicateTypeAnd",
	2: "ClaimPredicateTypeOr",
	3: "ClaimPredicateTypeNot",
	4: "ClaimPredicateTypeBeforeAbsoluteTime",
	5: "ClaimPredicateTypeBeforeRelativeTime",
}

func (e ClaimPredicateType) ValidEnum(v int32) bool {
	_, ok := claimPredicateTypeMap[v]
	return ok
}

func (e ClaimPredicateType) String() string {
	return enumString(claimPredicateTypeMap, "ClaimPredicateType", int32(e))
}

func (e ClaimPredicateType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ClaimPredicateType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ClaimPredicateType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ClaimPredicate is the (recursive) condition under which a claimant may
// claim a balance
type ClaimPredicate struct {
	Arm ClaimPredicateArm
}

// ClaimPredicateArm is implemented by ClaimPredicateUnconditional,
// ClaimPredicateAnd, ClaimPredicateOr, ClaimPredicateNot,
// ClaimPredicateBeforeAbsoluteTime and ClaimPredicateBeforeRelativeTime
type ClaimPredicateArm interface {
	xdr.Marshaler
	claimPredicateType() ClaimPredicateType
}

type ClaimPredicateUnconditional struct{}

// ClaimPredicateAnd holds when both of (at most two) predicates hold
type ClaimPredicateAnd []ClaimPredicate

// ClaimPredicateOr holds when either of (at most two) predicates holds
type ClaimPredicateOr []ClaimPredicate

// ClaimPredicateNot negates Predicate. A nil Predicate is encoded as absent.
type ClaimPredicateNot struct {
	Predicate *ClaimPredicate
}

// ClaimPredicateBeforeAbsoluteTime holds before the given Unix time
type ClaimPredicateBeforeAbsoluteTime Int64

// ClaimPredicateBeforeRelativeTime holds for the given number of seconds
// after the balance was created
type ClaimPredicateBeforeRelativeTime Int64

func (ClaimPredicateUnconditional) claimPredicateType() ClaimPredicateType {
	return ClaimPredicateTypeUnconditional
}
func (ClaimPredicateAnd) claimPredicateType() ClaimPredicateType { return ClaimPredicateTypeAnd }
func (ClaimPredicateOr) claimPredicateType() ClaimPredicateType  { return ClaimPredicateTypeOr }
func (ClaimPredicateNot) claimPredicateType() ClaimPredicateType { return ClaimPredicateTypeNot }
func (ClaimPredicateBeforeAbsoluteTime) claimPredicateType() ClaimPredicateType {
	return ClaimPredicateTypeBeforeAbsoluteTime
}
func (ClaimPredicateBeforeRelativeTime) claimPredicateType() ClaimPredicateType {
	return ClaimPredicateTypeBeforeRelativeTime
}

func (ClaimPredicateUnconditional) MarshalXDR(xdr.Encoder) error { return nil }

func (p ClaimPredicateAnd) MarshalXDR(e xdr.Encoder) error {
	return xdr.EncodeArray(e, []ClaimPredicate(p), MaxPredicates)
}

func (p ClaimPredicateOr) MarshalXDR(e xdr.Encoder) error {
	return xdr.EncodeArray(e, []ClaimPredicate(p), MaxPredicates)
}

func (p ClaimPredicateNot) MarshalXDR(e xdr.Encoder) error {
	return xdr.EncodeOptional(e, p.Predicate)
}

func (p ClaimPredicateBeforeAbsoluteTime) MarshalXDR(e xdr.Encoder) error {
	return Int64(p).MarshalXDR(e)
}

func (p ClaimPredicateBeforeRelativeTime) MarshalXDR(e xdr.Encoder) error {
	return Int64(p).MarshalXDR(e)
}

func (p ClaimPredicate) Type() ClaimPredicateType {
	return p.Arm.claimPredicateType()
}

func (p ClaimPredicate) MarshalXDR(e xdr.Encoder) error {
	if p.Arm == nil {
		return errNilArm("ClaimPredicate")
	}
	if err := p.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ClaimPredicate", "Type")
	}
	return xdr.WithField(p.Arm.MarshalXDR(e), "ClaimPredicate", p.Type().String())
}

func (p *ClaimPredicate) UnmarshalXDR(d xdr.Decoder) error {
	if err := d.Enter(); err != nil {
		return err
	}
	defer d.Leave()

	t, err := xdr.DecodeEnum[ClaimPredicateType](d)
	if err != nil {
		return xdr.WithField(err, "ClaimPredicate", "Type")
	}

	var arm ClaimPredicateArm
	switch t {
	case ClaimPredicateTypeUnconditional:
		arm = ClaimPredicateUnconditional{}
	case ClaimPredicateTypeAnd:
		var preds []ClaimPredicate
		preds, err = xdr.DecodeArray[ClaimPredicate](d, MaxPredicates)
		arm = ClaimPredicateAnd(preds)
	case ClaimPredicateTypeOr:
		var preds []ClaimPredicate
		preds, err = xdr.DecodeArray[ClaimPredicate](d, MaxPredicates)
		arm = ClaimPredicateOr(preds)
	case ClaimPredicateTypeNot:
		var pred *ClaimPredicate
		pred, err = xdr.DecodeOptional[ClaimPredicate](d)
		arm = ClaimPredicateNot{Predicate: pred}
	case ClaimPredicateTypeBeforeAbsoluteTime:
		var i Int64
		err = i.UnmarshalXDR(d)
		arm = ClaimPredicateBeforeAbsoluteTime(i)
	case ClaimPredicateTypeBeforeRelativeTime:
		var i Int64
		err = i.UnmarshalXDR(d)
		arm = ClaimPredicateBeforeRelativeTime(i)
	default:
		return xdr.UnknownArm("ClaimPredicate", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "ClaimPredicate", t.String())
	}
	p.Arm = arm
	return nil
}

type ClaimantType int32

const (
	ClaimantTypeV0 ClaimantType = 0
)

var claimantTypeMap = map[int32]string{
	0: "ClaimantTypeV0",
}

func (e ClaimantType) ValidEnum(v int32) bool {
	_, ok := claimantTypeMap[v]
	return ok
}

func (e ClaimantType) String() string {
	return enumString(claimantTypeMap, "ClaimantType", int32(e))
}

func (e ClaimantType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *ClaimantType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[ClaimantType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type ClaimantV0 struct {
	Destination AccountID
	Predicate   ClaimPredicate
}

func (c ClaimantV0) MarshalXDR(e xdr.Encoder) error {
	if err := c.Destination.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ClaimantV0", "Destination")
	}
	return xdr.WithField(c.Predicate.MarshalXDR(e), "ClaimantV0", "Predicate")
}

func (c *ClaimantV0) UnmarshalXDR(d xdr.Decoder) error {
	var v ClaimantV0
	if err := v.Destination.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimantV0", "Destination")
	}
	if err := v.Predicate.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimantV0", "Predicate")
	}
	*c = v
	return nil
}

// Claimant is `union Claimant switch (ClaimantType type)` with V0 as its
// only arm
type Claimant struct {
	V0 ClaimantV0
}

func (c Claimant) Type() ClaimantType {
	return ClaimantTypeV0
}

func (c Claimant) MarshalXDR(e xdr.Encoder) error {
	if err := c.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Claimant", "Type")
	}
	return xdr.WithField(c.V0.MarshalXDR(e), "Claimant", "V0")
}

func (c *Claimant) UnmarshalXDR(d xdr.Decoder) error {
	var v Claimant
	t, err := xdr.DecodeEnum[ClaimantType](d)
	if err != nil {
		return xdr.WithField(err, "Claimant", "Type")
	}

	switch t {
	case ClaimantTypeV0:
		if err := v.V0.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "Claimant", "V0")
		}
	default:
		return xdr.UnknownArm("Claimant", int64(t))
	}

	*c = v
	return nil
}

// Claimable balance flags
const (
	ClaimableBalanceClawbackEnabledFlag = 0x1
)

type ClaimableBalanceEntryExtensionV1 struct {
	Ext   ExtensionPoint
	Flags Uint32
}

func (x ClaimableBalanceEntryExtensionV1) MarshalXDR(e xdr.Encoder) error {
	if err := x.Ext.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntryExtensionV1", "Ext")
	}
	return xdr.WithField(x.Flags.MarshalXDR(e), "ClaimableBalanceEntryExtensionV1", "Flags")
}

func (x *ClaimableBalanceEntryExtensionV1) UnmarshalXDR(d xdr.Decoder) error {
	var v ClaimableBalanceEntryExtensionV1
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntryExtensionV1", "Ext")
	}
	if err := v.Flags.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntryExtensionV1", "Flags")
	}
	*x = v
	return nil
}

type ClaimableBalanceEntryExt struct {
	V1 *ClaimableBalanceEntryExtensionV1
}

func (x ClaimableBalanceEntryExt) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 1, x.V1)
}

func (x *ClaimableBalanceEntryExt) UnmarshalXDR(d xdr.Decoder) error {
	v1, err := decodeExt[ClaimableBalanceEntryExtensionV1](d, "ClaimableBalanceEntryExt", 1)
	if err != nil {
		return err
	}
	x.V1 = v1
	return nil
}

type ClaimableBalanceEntry struct {
	BalanceID ClaimableBalanceID
	Claimants []Claimant
	Asset     Asset
	Amount    Int64
	Ext       ClaimableBalanceEntryExt
}

func (c ClaimableBalanceEntry) MarshalXDR(e xdr.Encoder) error {
	if err := c.BalanceID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "BalanceID")
	}
	if err := xdr.EncodeArray(e, c.Claimants, MaxClaimants); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Claimants")
	}
	if err := c.Asset.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Asset")
	}
	if err := c.Amount.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Amount")
	}
	return xdr.WithField(c.Ext.MarshalXDR(e), "ClaimableBalanceEntry", "Ext")
}

func (c *ClaimableBalanceEntry) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   ClaimableBalanceEntry
		err error
	)
	if err = v.BalanceID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "BalanceID")
	}
	if v.Claimants, err = xdr.DecodeArray[Claimant](d, MaxClaimants); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Claimants")
	}
	if err = v.Asset.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Asset")
	}
	if err = v.Amount.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Amount")
	}
	if err = v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "ClaimableBalanceEntry", "Ext")
	}
	*c = v
	return nil
}
