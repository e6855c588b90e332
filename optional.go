// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

// PtrUnmarshaler is satisfied by *T when *T implements Unmarshaler. It lets
// the decoding combinators allocate values of T themselves.
type PtrUnmarshaler[T any] interface {
	*T
	Unmarshaler
}

// EncodeOptional writes an XDR optional (`T *ident`): a presence flag
// followed by the value when v is non-nil
func EncodeOptional[T Marshaler](e Encoder, v *T) error {
	if err := e.EncodeOptionalFlag(v != nil); err != nil {
		return err
	}

	if v == nil {
		return nil
	}
	return (*v).MarshalXDR(e)
}

// DecodeOptional reads an XDR optional. An absent value is returned as nil.
//
// Presence flags other than 0 and 1 are ErrMalformedOptionalFlag unless the
// decoder was configured with Options.LenientOptionalFlags.
func DecodeOptional[T any, PT PtrUnmarshaler[T]](d Decoder) (*T, error) {
	present, err := d.DecodeOptionalFlag()
	if err != nil || !present {
		return nil, err
	}

	v := new(T)
	if err := PT(v).UnmarshalXDR(d); err != nil {
		return nil, err
	}
	return v, nil
}
