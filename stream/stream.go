// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package stream reads and writes sequences of XDR values framed with
// record marks, the layout used by Stellar history archive files.
//
// Each record is one or more fragments, each preceded by a four byte big
// endian header. The low 31 bits of the header give the fragment length;
// the high bit marks the last fragment of the record (RFC 5531 section 11).
// Files are usually gzip compressed; the Reader detects this itself.
package stream

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultMaxRecordSize bounds records when no limit is configured
	DefaultMaxRecordSize = 64 << 20

	// MaxRecordSizeLimit is the longest fragment a record mark can describe
	MaxRecordSizeLimit = 0x7FFFFFFF

	lastFragment = 0x80000000
	headerLen    = 4
)

func putHeader(b []byte, n int, last bool) {
	h := uint32(n)
	if last {
		h |= lastFragment
	}
	binary.BigEndian.PutUint32(b, h)
}

func parseHeader(b []byte) (n uint32, last bool) {
	h := binary.BigEndian.Uint32(b)
	return h &^ lastFragment, h&lastFragment != 0
}

// digest accumulates the xxhash of every record payload, in order. Readers
// and Writers compute it identically, so a written stream can be checked
// against what was read back.
type digest struct {
	h       *xxhash.Digest
	records int
}

func newDigest() digest {
	return digest{h: xxhash.New()}
}

func (d *digest) add(rec []byte) {
	// Length first, so that record boundaries affect the sum
	var n [headerLen]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(rec)))
	_, _ = d.h.Write(n[:])
	_, _ = d.h.Write(rec)
	d.records++
}
