// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

// Value is an opaque consensus value (`opaque Value<>`), in practice an
// encoded StellarValue
type Value []byte

func (v Value) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeOpaque(v, xdr.Unbounded)
}

func (v *Value) UnmarshalXDR(d xdr.Decoder) error {
	b, err := d.DecodeOpaque(xdr.Unbounded)
	if err != nil {
		return err
	}
	*v = b
	return nil
}

type SCPBallot struct {
	Counter Uint32
	Value   Value
}

func (s SCPBallot) MarshalXDR(e xdr.Encoder) error {
	if err := s.Counter.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPBallot", "Counter")
	}
	return xdr.WithField(s.Value.MarshalXDR(e), "SCPBallot", "Value")
}

func (s *SCPBallot) UnmarshalXDR(d xdr.Decoder) error {
	var v SCPBallot
	if err := v.Counter.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPBallot", "Counter")
	}
	if err := v.Value.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPBallot", "Value")
	}
	*s = v
	return nil
}

type SCPStatementType int32

const (
	SCPStatementTypePrepare     SCPStatementType = 0
	SCPStatementTypeConfirm     SCPStatementType = 1
	SCPStatementTypeExternalize SCPStatementType = 2
	SCPStatementTypeNominate    SCPStatementType = 3
)

var scpStatementTypeMap = map[int32]string{
	0: "SCPStatementTypePrepare",
	1: "SCPStatementTypeConfirm",
	2: "SCPStatementTypeExternalize",
	3: "SCPStatementTypeNominate",
}

func (e SCPStatementType) ValidEnum(v int32) bool {
	_, ok := scpStatementTypeMap[v]
	return ok
}

func (e SCPStatementType) String() string {
	return enumString(scpStatementTypeMap, "SCPStatementType", int32(e))
}

func (e SCPStatementType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *SCPStatementType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[SCPStatementType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type SCPNomination struct {
	QuorumSetHash Hash
	Votes         []Value
	Accepted      []Value
}

func (s SCPNomination) MarshalXDR(e xdr.Encoder) error {
	if err := s.QuorumSetHash.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPNomination", "QuorumSetHash")
	}
	if err := xdr.EncodeArray(e, s.Votes, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SCPNomination", "Votes")
	}
	return xdr.WithField(xdr.EncodeArray(e, s.Accepted, xdr.Unbounded), "SCPNomination", "Accepted")
}

func (s *SCPNomination) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   SCPNomination
		err error
	)
	if err = v.QuorumSetHash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPNomination", "QuorumSetHash")
	}
	if v.Votes, err = xdr.DecodeArray[Value](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SCPNomination", "Votes")
	}
	if v.Accepted, err = xdr.DecodeArray[Value](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SCPNomination", "Accepted")
	}
	*s = v
	return nil
}

type SCPStatementPrepare struct {
	QuorumSetHash Hash
	Ballot        SCPBallot
	Prepared      *SCPBallot
	PreparedPrime *SCPBallot
	NC            Uint32
	NH            Uint32
}

func (s SCPStatementPrepare) MarshalXDR(e xdr.Encoder) error {
	if err := s.QuorumSetHash.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "QuorumSetHash")
	}
	if err := s.Ballot.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "Ballot")
	}
	if err := xdr.EncodeOptional(e, s.Prepared); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "Prepared")
	}
	if err := xdr.EncodeOptional(e, s.PreparedPrime); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "PreparedPrime")
	}
	if err := s.NC.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "NC")
	}
	return xdr.WithField(s.NH.MarshalXDR(e), "SCPStatementPrepare", "NH")
}

func (s *SCPStatementPrepare) UnmarshalXDR(d xdr.Decoder) error {
	var (
		v   SCPStatementPrepare
		err error
	)
	if err = v.QuorumSetHash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "QuorumSetHash")
	}
	if err = v.Ballot.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "Ballot")
	}
	if v.Prepared, err = xdr.DecodeOptional[SCPBallot](d); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "Prepared")
	}
	if v.PreparedPrime, err = xdr.DecodeOptional[SCPBallot](d); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "PreparedPrime")
	}
	if err = v.NC.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "NC")
	}
	if err = v.NH.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementPrepare", "NH")
	}
	*s = v
	return nil
}

type SCPStatementConfirm struct {
	Ballot        SCPBallot
	NPrepared     Uint32
	NCommit       Uint32
	NH            Uint32
	QuorumSetHash Hash
}

func (s SCPStatementConfirm) MarshalXDR(e xdr.Encoder) error {
	if err := s.Ballot.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "Ballot")
	}
	if err := s.NPrepared.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "NPrepared")
	}
	if err := s.NCommit.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "NCommit")
	}
	if err := s.NH.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "NH")
	}
	return xdr.WithField(s.QuorumSetHash.MarshalXDR(e), "SCPStatementConfirm", "QuorumSetHash")
}

func (s *SCPStatementConfirm) UnmarshalXDR(d xdr.Decoder) error {
	var v SCPStatementConfirm
	if err := v.Ballot.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "Ballot")
	}
	if err := v.NPrepared.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "NPrepared")
	}
	if err := v.NCommit.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "NCommit")
	}
	if err := v.NH.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "NH")
	}
	if err := v.QuorumSetHash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementConfirm", "QuorumSetHash")
	}
	*s = v
	return nil
}

type SCPStatementExternalize struct {
	Commit              SCPBallot
	NH                  Uint32
	CommitQuorumSetHash Hash
}

func (s SCPStatementExternalize) MarshalXDR(e xdr.Encoder) error {
	if err := s.Commit.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementExternalize", "Commit")
	}
	if err := s.NH.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementExternalize", "NH")
	}
	return xdr.WithField(s.CommitQuorumSetHash.MarshalXDR(e), "SCPStatementExternalize", "CommitQuorumSetHash")
}

func (s *SCPStatementExternalize) UnmarshalXDR(d xdr.Decoder) error {
	var v SCPStatementExternalize
	if err := v.Commit.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementExternalize", "Commit")
	}
	if err := v.NH.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementExternalize", "NH")
	}
	if err := v.CommitQuorumSetHash.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatementExternalize", "CommitQuorumSetHash")
	}
	*s = v
	return nil
}

type SCPStatementPledges struct {
	Arm SCPStatementPledgesArm
}

// SCPStatementPledgesArm is implemented by SCPStatementPrepare,
// SCPStatementConfirm, SCPStatementExternalize and SCPNomination
type SCPStatementPledgesArm interface {
	xdr.Marshaler
	scpStatementType() SCPStatementType
}

func (SCPStatementPrepare) scpStatementType() SCPStatementType     { return SCPStatementTypePrepare }
func (SCPStatementConfirm) scpStatementType() SCPStatementType     { return SCPStatementTypeConfirm }
func (SCPStatementExternalize) scpStatementType() SCPStatementType { return SCPStatementTypeExternalize }
func (SCPNomination) scpStatementType() SCPStatementType           { return SCPStatementTypeNominate }

func (s SCPStatementPledges) Type() SCPStatementType {
	return s.Arm.scpStatementType()
}

func (s SCPStatementPledges) MarshalXDR(e xdr.Encoder) error {
	if s.Arm == nil {
		return errNilArm("SCPStatementPledges")
	}
	if err := s.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatementPledges", "Type")
	}
	return xdr.WithField(s.Arm.MarshalXDR(e), "SCPStatementPledges", s.Type().String())
}

func (s *SCPStatementPledges) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[SCPStatementType](d)
	if err != nil {
		return xdr.WithField(err, "SCPStatementPledges", "Type")
	}

	var arm SCPStatementPledgesArm
	switch t {
	case SCPStatementTypePrepare:
		var x SCPStatementPrepare
		err = x.UnmarshalXDR(d)
		arm = x
	case SCPStatementTypeConfirm:
		var x SCPStatementConfirm
		err = x.UnmarshalXDR(d)
		arm = x
	case SCPStatementTypeExternalize:
		var x SCPStatementExternalize
		err = x.UnmarshalXDR(d)
		arm = x
	case SCPStatementTypeNominate:
		var x SCPNomination
		err = x.UnmarshalXDR(d)
		arm = x
	default:
		return xdr.UnknownArm("SCPStatementPledges", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "SCPStatementPledges", t.String())
	}
	s.Arm = arm
	return nil
}

type SCPStatement struct {
	NodeID    NodeID
	SlotIndex Uint64
	Pledges   SCPStatementPledges
}

func (s SCPStatement) MarshalXDR(e xdr.Encoder) error {
	if err := s.NodeID.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatement", "NodeID")
	}
	if err := s.SlotIndex.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPStatement", "SlotIndex")
	}
	return xdr.WithField(s.Pledges.MarshalXDR(e), "SCPStatement", "Pledges")
}

func (s *SCPStatement) UnmarshalXDR(d xdr.Decoder) error {
	var v SCPStatement
	if err := v.NodeID.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatement", "NodeID")
	}
	if err := v.SlotIndex.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatement", "SlotIndex")
	}
	if err := v.Pledges.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPStatement", "Pledges")
	}
	*s = v
	return nil
}

type SCPEnvelope struct {
	Statement SCPStatement
	Signature Signature
}

func (s SCPEnvelope) MarshalXDR(e xdr.Encoder) error {
	if err := s.Statement.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPEnvelope", "Statement")
	}
	return xdr.WithField(s.Signature.MarshalXDR(e), "SCPEnvelope", "Signature")
}

func (s *SCPEnvelope) UnmarshalXDR(d xdr.Decoder) error {
	var v SCPEnvelope
	if err := v.Statement.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPEnvelope", "Statement")
	}
	if err := v.Signature.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPEnvelope", "Signature")
	}
	*s = v
	return nil
}

// SCPQuorumSet is a (recursive) quorum slice definition: Threshold of the
// Validators and InnerSets must agree
type SCPQuorumSet struct {
	Threshold  Uint32
	Validators []NodeID
	InnerSets  []SCPQuorumSet
}

func (q SCPQuorumSet) MarshalXDR(e xdr.Encoder) error {
	if err := q.Threshold.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "SCPQuorumSet", "Threshold")
	}
	if err := xdr.EncodeArray(e, q.Validators, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SCPQuorumSet", "Validators")
	}
	return xdr.WithField(xdr.EncodeArray(e, q.InnerSets, xdr.Unbounded), "SCPQuorumSet", "InnerSets")
}

func (q *SCPQuorumSet) UnmarshalXDR(d xdr.Decoder) error {
	if err := d.Enter(); err != nil {
		return err
	}
	defer d.Leave()

	var (
		v   SCPQuorumSet
		err error
	)
	if err = v.Threshold.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "SCPQuorumSet", "Threshold")
	}
	if v.Validators, err = xdr.DecodeArray[NodeID](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SCPQuorumSet", "Validators")
	}
	if v.InnerSets, err = xdr.DecodeArray[SCPQuorumSet](d, xdr.Unbounded); err != nil {
		return xdr.WithField(err, "SCPQuorumSet", "InnerSets")
	}
	*q = v
	return nil
}
