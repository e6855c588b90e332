// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

// Account flags
const (
	AuthRequiredFlag        = 0x1
	AuthRevocableFlag       = 0x2
	AuthImmutableFlag       = 0x4
	AuthClawbackEnabledFlag = 0x8
)

type Signer struct {
	Key    SignerKey
	Weight Uint32
}

func (s Signer) MarshalXDR(e xdr.Encoder) error {
	if err := s.Key.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Signer", "Key")
	}
	return xdr.WithField(s.Weight.MarshalXDR(e), "Signer", "Weight")
}

func (s *Signer) UnmarshalXDR(d xdr.Decoder) error {
	var v Signer
	if err := v.Key.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Signer", "Key")
	}
	if err := v.Weight.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "Signer", "Weight")
	}
	*s = v
	return nil
}

// SponsorshipDescriptor is `AccountID *SponsorshipDescriptor`: the account
// sponsoring a reserve, if any
type SponsorshipDescriptor struct {
	Sponsor *AccountID
}

func (s SponsorshipDescriptor) MarshalXDR(e xdr.Encoder) error {
	return xdr.EncodeOptional(e, s.Sponsor)
}

func (s *SponsorshipDescriptor) UnmarshalXDR(d xdr.Decoder) error {
	id, err := xdr.DecodeOptional[AccountID](d)
	if err != nil {
		return err
	}
	s.Sponsor = id
	return nil
}

type AccountEntryExtensionV3 struct {
	Ext       ExtensionPoint
	SeqLedger Uint32
	SeqTime   TimePoint
}

func (x AccountEntryExtensionV3) MarshalXDR(e xdr.Encoder) error {
	if err := x.Ext.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV3", "Ext")
	}
	if err := x.SeqLedger.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV3", "SeqLedger")
	}
	return xdr.WithField(x.SeqTime.MarshalXDR(e), "AccountEntryExtensionV3", "SeqTime")
}

func (x *AccountEntryExtensionV3) UnmarshalXDR(d xdr.Decoder) error {
	var v AccountEntryExtensionV3
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV3", "Ext")
	}
	if err := v.SeqLedger.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV3", "SeqLedger")
	}
	if err := v.SeqTime.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV3", "SeqTime")
	}
	*x = v
	return nil
}

// AccountEntryExtensionV2Ext is `union switch (int v) { case 0: void; case
// 3: AccountEntryExtensionV3 v3; }`
type AccountEntryExtensionV2Ext struct {
	V3 *AccountEntryExtensionV3
}

func (x AccountEntryExtensionV2Ext) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 3, x.V3)
}

func (x *AccountEntryExtensionV2Ext) UnmarshalXDR(d xdr.Decoder) error {
	v3, err := decodeExt[AccountEntryExtensionV3](d, "AccountEntryExtensionV2Ext", 3)
	if err != nil {
		return err
	}
	x.V3 = v3
	return nil
}

type AccountEntryExtensionV2 struct {
	NumSponsored        Uint32
	NumSponsoring       Uint32
	SignerSponsoringIDs []SponsorshipDescriptor
	Ext                 AccountEntryExtensionV2Ext
}

func (x AccountEntryExtensionV2) MarshalXDR(e xdr.Encoder) error {
	if err := x.NumSponsored.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "NumSponsored")
	}
	if err := x.NumSponsoring.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "NumSponsoring")
	}
	if err := xdr.EncodeArray(e, x.SignerSponsoringIDs, MaxSigners); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "SignerSponsoringIDs")
	}
	return xdr.WithField(x.Ext.MarshalXDR(e), "AccountEntryExtensionV2", "Ext")
}

func (x *AccountEntryExtensionV2) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   AccountEntryExtensionV2
		err error
	)
	if err = v.NumSponsored.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "NumSponsored")
	}
	if err = v.NumSponsoring.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "NumSponsoring")
	}
	if v.SignerSponsoringIDs, err = xdr.DecodeArray[SponsorshipDescriptor](d, MaxSigners); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "SignerSponsoringIDs")
	}
	if err = v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV2", "Ext")
	}
	*x = v
	return nil
}

// AccountEntryExtensionV1Ext is `union switch (int v) { case 0: void; case
// 2: AccountEntryExtensionV2 v2; }`
type AccountEntryExtensionV1Ext struct {
	V2 *AccountEntryExtensionV2
}

func (x AccountEntryExtensionV1Ext) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 2, x.V2)
}

func (x *AccountEntryExtensionV1Ext) UnmarshalXDR(d xdr.Decoder) error {
	v2, err := decodeExt[AccountEntryExtensionV2](d, "AccountEntryExtensionV1Ext", 2)
	if err != nil {
		return err
	}
	x.V2 = v2
	return nil
}

type AccountEntryExtensionV1 struct {
	Liabilities Liabilities
	Ext         AccountEntryExtensionV1Ext
}

func (x AccountEntryExtensionV1) MarshalXDR(e xdr.Encoder) error {
	if err := x.Liabilities.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV1", "Liabilities")
	}
	return xdr.WithField(x.Ext.MarshalXDR(e), "AccountEntryExtensionV1", "Ext")
}

func (x *AccountEntryExtensionV1) UnmarshalXDR(d xdr.Decoder) error {
	var v AccountEntryExtensionV1
	if err := v.Liabilities.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV1", "Liabilities")
	}
	if err := v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntryExtensionV1", "Ext")
	}
	*x = v
	return nil
}

// AccountEntryExt is `union switch (int v) { case 0: void; case 1:
// AccountEntryExtensionV1 v1; }`
type AccountEntryExt struct {
	V1 *AccountEntryExtensionV1
}

func (x AccountEntryExt) MarshalXDR(e xdr.Encoder) error {
	return encodeExtVersion(e, 1, x.V1)
}

func (x *AccountEntryExt) UnmarshalXDR(d xdr.Decoder) error {
	v1, err := decodeExt[AccountEntryExtensionV1](d, "AccountEntryExt", 1)
	if err != nil {
		return err
	}
	x.V1 = v1
	return nil
}

type AccountEntry struct {
	AccountID     AccountID
	Balance       Int64
	SeqNum        SequenceNumber
	NumSubEntries Uint32
	InflationDest *AccountID
	Flags         Uint32
	HomeDomain    String32
	Thresholds    Thresholds
	Signers       []Signer
	Ext           AccountEntryExt
}

func (a AccountEntry) MarshalXDR(e xdr.Encoder) error {
	if err := a.AccountID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "AccountID")
	}
	if err := a.Balance.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "Balance")
	}
	if err := a.SeqNum.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "SeqNum")
	}
	if err := a.NumSubEntries.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "NumSubEntries")
	}
	if err := xdr.EncodeOptional(e, a.InflationDest); err != nil {
		return xdr.WithField(err, "AccountEntry", "InflationDest")
	}
	if err := a.Flags.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "Flags")
	}
	if err := a.HomeDomain.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "HomeDomain")
	}
	if err := a.Thresholds.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "AccountEntry", "Thresholds")
	}
	if err := xdr.EncodeArray(e, a.Signers, MaxSigners); err != nil {
		return xdr.WithField(err, "AccountEntry", "Signers")
	}
	return xdr.WithField(a.Ext.MarshalXDR(e), "AccountEntry", "Ext")
}

func (a *AccountEntry) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   AccountEntry
		err error
	)
	if err = v.AccountID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "AccountID")
	}
	if err = v.Balance.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "Balance")
	}
	if err = v.SeqNum.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "SeqNum")
	}
	if err = v.NumSubEntries.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "NumSubEntries")
	}
	if v.InflationDest, err = xdr.DecodeOptional[AccountID](d); err != nil {
		return xdr.WithField(err, "AccountEntry", "InflationDest")
	}
	if err = v.Flags.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "Flags")
	}
	if err = v.HomeDomain.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "HomeDomain")
	}
	if err = v.Thresholds.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "Thresholds")
	}
	if v.Signers, err = xdr.DecodeArray[Signer](d, MaxSigners); err != nil {
		return xdr.WithField(err, "AccountEntry", "Signers")
	}
	if err = v.Ext.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "AccountEntry", "Ext")
	}
	*a = v
	return nil
}
