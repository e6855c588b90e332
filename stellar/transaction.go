// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stellar

import (
	xdr "go.e43.eu/stellarxdr"
)

type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

var memoTypeMap = map[int32]string{
	0: "MemoTypeNone",
	1: "MemoTypeText",
	2: "MemoTypeID",
	3: "MemoTypeHash",
	4: "MemoTypeReturn",
}

func (e MemoType) ValidEnum(v int32) bool {
	_, ok := memoTypeMap[v]
	return ok
}

func (e MemoType) String() string {
	return enumString(memoTypeMap, "MemoType", int32(e))
}

func (e MemoType) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *MemoType) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[MemoType](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type MemoNone struct{}

func (MemoNone) MarshalXDR(xdr.Encoder) error { return nil }

// MemoText is `string text<28>`
type MemoText string

func (m MemoText) MarshalXDR(e xdr.Encoder) error {
	return e.EncodeString(string(m), MemoTextLimit)
}

func (m *MemoText) UnmarshalXDR(d xdr.Decoder) error {
	s, err := d.DecodeString(MemoTextLimit)
	if err != nil {
		return err
	}
	*m = MemoText(s)
	return nil
}

type MemoID Uint64
type MemoHash Hash

// MemoReturn is the hash of the transaction being refunded
type MemoReturn Hash

func (m MemoID) MarshalXDR(e xdr.Encoder) error     { return Uint64(m).MarshalXDR(e) }
func (m MemoHash) MarshalXDR(e xdr.Encoder) error   { return Hash(m).MarshalXDR(e) }
func (m MemoReturn) MarshalXDR(e xdr.Encoder) error { return Hash(m).MarshalXDR(e) }

// Memo is a transaction's memo
type Memo struct {
	Arm MemoArm
}

// MemoArm is implemented by the arm types of Memo
type MemoArm interface {
	xdr.Marshaler
	memoType() MemoType
}

func (MemoNone) memoType() MemoType   { return MemoTypeNone }
func (MemoText) memoType() MemoType   { return MemoTypeText }
func (MemoID) memoType() MemoType     { return MemoTypeID }
func (MemoHash) memoType() MemoType   { return MemoTypeHash }
func (MemoReturn) memoType() MemoType { return MemoTypeReturn }

func (m Memo) Type() MemoType {
	return m.Arm.memoType()
}

func (m Memo) MarshalXDR(e xdr.Encoder) error {
	if m.Arm == nil {
		return errNilArm("Memo")
	}
	if err := m.Type().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "Memo", "Type")
	}
	return xdr.WithField(m.Arm.MarshalXDR(e), "Memo", m.Type().String())
}

func (m *Memo) UnmarshalXDR(d xdr.Decoder) error {
	t, err := xdr.DecodeEnum[MemoType](d)
	if err != nil {
		return xdr.WithField(err, "Memo", "Type")
	}

	var arm MemoArm
	switch t {
	case MemoTypeNone:
		arm = MemoNone{}
	case MemoTypeText:
		var x MemoText
		err = x.UnmarshalXDR(d)
		arm = x
	case MemoTypeID:
		var x Uint64
		err = x.UnmarshalXDR(d)
		arm = MemoID(x)
	case MemoTypeHash:
		var x Hash
		err = x.UnmarshalXDR(d)
		arm = MemoHash(x)
	case MemoTypeReturn:
		var x Hash
		err = x.UnmarshalXDR(d)
		arm = MemoReturn(x)
	default:
		return xdr.UnknownArm("Memo", int64(t))
	}

	if err != nil {
		return xdr.WithField(err, "Memo", t.String())
	}
	m.Arm = arm
	return nil
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      Int64
}

func (p PaymentOp) MarshalXDR(e xdr.Encoder) error {
	if err := p.Destination.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "PaymentOp", "Destination")
	}
	if err := p.Asset.MarshalXDR(e); err != nil {
		return xdr.WithField(err, "PaymentOp", "Asset")
	}
	return xdr.WithField(p.Amount.MarshalXDR(e), "PaymentOp", "Amount")
}

func (p *PaymentOp) UnmarshalXDR(d xdr.Decoder) error {
	var v PaymentOp
	if err := v.Destination.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "PaymentOp", "Destination")
	}
	if err := v.Asset.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "PaymentOp", "Asset")
	}
	if err := v.Amount.UnmarshalXDR(d); err != nil {
		return xdr.WithField(err, "PaymentOp", "Amount")
	}
	*p = v
	return nil
}

// OperationResultCode reports whether an operation was attempted. Failure
// codes are negative.
type OperationResultCode int32

const (
	OperationResultCodeOpInner             OperationResultCode = 0
	OperationResultCodeOpBadAuth           OperationResultCode = -1
	OperationResultCodeOpNoAccount         OperationResultCode = -2
	OperationResultCodeOpNotSupported      OperationResultCode = -3
	OperationResultCodeOpTooManySubentries OperationResultCode = -4
	OperationResultCodeOpExceededWorkLimit OperationResultCode = -5
	OperationResultCodeOpTooManySponsoring OperationResultCode = -6
)

var operationResultCodeMap = map[int32]string{
	0:  "OperationResultCodeOpInner",
	-1: "OperationResultCodeOpBadAuth",
	-2: "OperationResultCodeOpNoAccount",
	-3: "OperationResultCodeOpNotSupported",
	-4: "OperationResultCodeOpTooManySubentries",
	-5: "OperationResultCodeOpExceededWorkLimit",
	-6: "OperationResultCodeOpTooManySponsoring",
}

func (e OperationResultCode) ValidEnum(v int32) bool {
	_, ok := operationResultCodeMap[v]
	return ok
}

func (e OperationResultCode) String() string {
	return enumString(operationResultCodeMap, "OperationResultCode", int32(e))
}

func (e OperationResultCode) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *OperationResultCode) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[OperationResultCode](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

type PaymentResultCode int32

const (
	PaymentResultCodePaymentSuccess          PaymentResultCode = 0
	PaymentResultCodePaymentMalformed        PaymentResultCode = -1
	PaymentResultCodePaymentUnderfunded      PaymentResultCode = -2
	PaymentResultCodePaymentSrcNoTrust       PaymentResultCode = -3
	PaymentResultCodePaymentSrcNotAuthorized PaymentResultCode = -4
	PaymentResultCodePaymentNoDestination    PaymentResultCode = -5
	PaymentResultCodePaymentNoTrust          PaymentResultCode = -6
	PaymentResultCodePaymentNotAuthorized    PaymentResultCode = -7
	PaymentResultCodePaymentLineFull         PaymentResultCode = -8
	PaymentResultCodePaymentNoIssuer         PaymentResultCode = -9
)

var paymentResultCodeMap = map[int32]string{
	0:  "PaymentResultCodePaymentSuccess",
	-1: "PaymentResultCodePaymentMalformed",
	-2: "PaymentResultCodePaymentUnderfunded",
	-3: "PaymentResultCodePaymentSrcNoTrust",
	-4: "PaymentResultCodePaymentSrcNotAuthorized",
	-5: "PaymentResultCodePaymentNoDestination",
	-6: "PaymentResultCodePaymentNoTrust",
	-7: "PaymentResultCodePaymentNotAuthorized",
	-8: "PaymentResultCodePaymentLineFull",
	-9: "PaymentResultCodePaymentNoIssuer",
}

func (e PaymentResultCode) ValidEnum(v int32) bool {
	_, ok := paymentResultCodeMap[v]
	return ok
}

func (e PaymentResultCode) String() string {
	return enumString(paymentResultCodeMap, "PaymentResultCode", int32(e))
}

func (e PaymentResultCode) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *PaymentResultCode) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[PaymentResultCode](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// PaymentResult is `union PaymentResult switch (PaymentResultCode code)`.
// Every arm is void, so the result is fully described by its code.
type PaymentResult struct {
	Code PaymentResultCode
}

func (r PaymentResult) MarshalXDR(e xdr.Encoder) error {
	return xdr.WithField(r.Code.MarshalXDR(e), "PaymentResult", "Code")
}

func (r *PaymentResult) UnmarshalXDR(d xdr.Decoder) error {
	code, err := xdr.DecodeEnum[PaymentResultCode](d)
	if err != nil {
		return xdr.WithField(err, "PaymentResult", "Code")
	}
	r.Code = code
	return nil
}

type InvokeHostFunctionResultCode int32

const (
	InvokeHostFunctionResultCodeSuccess                   InvokeHostFunctionResultCode = 0
	InvokeHostFunctionResultCodeMalformed                 InvokeHostFunctionResultCode = -1
	InvokeHostFunctionResultCodeTrapped                   InvokeHostFunctionResultCode = -2
	InvokeHostFunctionResultCodeResourceLimitExceeded     InvokeHostFunctionResultCode = -3
	InvokeHostFunctionResultCodeEntryArchived             InvokeHostFunctionResultCode = -4
	InvokeHostFunctionResultCodeInsufficientRefundableFee InvokeHostFunctionResultCode = -5
)

var invokeHostFunctionResultCodeMap = map[int32]string{
	0:  "InvokeHostFunctionResultCodeSuccess",
	-1: "InvokeHostFunctionResultCodeMalformed",
	-2: "InvokeHostFunctionResultCodeTrapped",
	-3: "InvokeHostFunctionResultCodeResourceLimitExceeded",
	-4: "InvokeHostFunctionResultCodeEntryArchived",
	-5: "InvokeHostFunctionResultCodeInsufficientRefundableFee",
}

func (e InvokeHostFunctionResultCode) ValidEnum(v int32) bool {
	_, ok := invokeHostFunctionResultCodeMap[v]
	return ok
}

func (e InvokeHostFunctionResultCode) String() string {
	return enumString(invokeHostFunctionResultCodeMap, "InvokeHostFunctionResultCode", int32(e))
}

func (e InvokeHostFunctionResultCode) MarshalXDR(enc xdr.Encoder) error {
	return xdr.EncodeEnum(enc, e)
}

func (e *InvokeHostFunctionResultCode) UnmarshalXDR(d xdr.Decoder) error {
	v, err := xdr.DecodeEnum[InvokeHostFunctionResultCode](d)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// InvokeHostFunctionResult is the outcome of an InvokeHostFunctionOp
type InvokeHostFunctionResult struct {
	Arm InvokeHostFunctionResultArm
}

// InvokeHostFunctionResultArm is implemented by InvokeHostFunctionSuccess
// and InvokeHostFunctionFailure
type InvokeHostFunctionResultArm interface {
	xdr.Marshaler
	invokeHostFunctionResultCode() InvokeHostFunctionResultCode
}

// InvokeHostFunctionSuccess is the hash of the invocation's return value
// and events
type InvokeHostFunctionSuccess Hash

// InvokeHostFunctionFailure is any of the void failure arms. Code must be
// negative.
type InvokeHostFunctionFailure struct {
	Code InvokeHostFunctionResultCode
}

func (InvokeHostFunctionSuccess) invokeHostFunctionResultCode() InvokeHostFunctionResultCode {
	return InvokeHostFunctionResultCodeSuccess
}

func (f InvokeHostFunctionFailure) invokeHostFunctionResultCode() InvokeHostFunctionResultCode {
	return f.Code
}

func (s InvokeHostFunctionSuccess) MarshalXDR(e xdr.Encoder) error { return Hash(s).MarshalXDR(e) }
func (InvokeHostFunctionFailure) MarshalXDR(xdr.Encoder) error     { return nil }

func (r InvokeHostFunctionResult) Code() InvokeHostFunctionResultCode {
	return r.Arm.invokeHostFunctionResultCode()
}

func (r InvokeHostFunctionResult) MarshalXDR(e xdr.Encoder) error {
	if r.Arm == nil {
		return errNilArm("InvokeHostFunctionResult")
	}
	if f, ok := r.Arm.(InvokeHostFunctionFailure); ok && f.Code == InvokeHostFunctionResultCodeSuccess {
		return xdr.WithField(&xdr.EncodingError{Underlying: xdr.ErrInvalidValue}, "InvokeHostFunctionResult", "Code")
	}
	if err := r.Code().MarshalXDR(e); err != nil {
		return xdr.WithField(err, "InvokeHostFunctionResult", "Code")
	}
	return xdr.WithField(r.Arm.MarshalXDR(e), "InvokeHostFunctionResult", r.Code().String())
}

func (r *InvokeHostFunctionResult) UnmarshalXDR(d xdr.Decoder) error {
	code, err := xdr.DecodeEnum[InvokeHostFunctionResultCode](d)
	if err != nil {
		return xdr.WithField(err, "InvokeHostFunctionResult", "Code")
	}

	switch code {
	case InvokeHostFunctionResultCodeSuccess:
		var h Hash
		if err := h.UnmarshalXDR(d); err != nil {
			return xdr.WithField(err, "InvokeHostFunctionResult", code.String())
		}
		r.Arm = InvokeHostFunctionSuccess(h)
	case InvokeHostFunctionResultCodeMalformed,
		InvokeHostFunctionResultCodeTrapped,
		InvokeHostFunctionResultCodeResourceLimitExceeded,
		InvokeHostFunctionResultCodeEntryArchived,
		InvokeHostFunctionResultCodeInsufficientRefundableFee:
		r.Arm = InvokeHostFunctionFailure{Code: code}
	default:
		return xdr.UnknownArm("InvokeHostFunctionResult", int64(code))
	}
	return nil
}
