// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/gzip"

	xdr "go.e43.eu/stellarxdr"
)

var gzipMagic = []byte{0x1f, 0x8b}

// ErrRecordTooLarge is returned when a record mark declares more data than
// the reader permits
var ErrRecordTooLarge = errors.New("stream: record too large")

// Reader reads framed records. It is not safe for concurrent use.
type Reader struct {
	br     *bufio.Reader
	gz     *gzip.Reader
	coder  xdr.Coder
	log    *slog.Logger
	max    uint32
	offset int64
	digest digest
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithMaxRecordSize bounds the total length of a record
func WithMaxRecordSize(n uint32) ReaderOption {
	return func(r *Reader) {
		r.max = n
	}
}

// WithCoder sets the coder (and so the decode limits) used by Decode
func WithCoder(cr xdr.Coder) ReaderOption {
	return func(r *Reader) {
		r.coder = cr
	}
}

// WithLogger enables debug logging of every record read
func WithLogger(l *slog.Logger) ReaderOption {
	return func(r *Reader) {
		r.log = l
	}
}

// NewReader returns a Reader for src, which may be gzip compressed
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		br:     bufio.NewReader(src),
		coder:  xdr.DefaultCoder,
		max:    DefaultMaxRecordSize,
		digest: newDigest(),
	}
	for _, opt := range opts {
		opt(r)
	}

	magic, err := r.br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}

	if len(magic) == len(gzipMagic) && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(r.br)
		if err != nil {
			return nil, fmt.Errorf("stream: opening gzip: %w", err)
		}
		r.gz = gz
		r.br = bufio.NewReader(gz)
	}
	return r, nil
}

// Compressed reports whether the input was gzip compressed
func (r *Reader) Compressed() bool {
	return r.gz != nil
}

// Records returns the number of records read so far
func (r *Reader) Records() int {
	return r.digest.records
}

// Offset returns the number of (uncompressed) bytes consumed so far
func (r *Reader) Offset() int64 {
	return r.offset
}

// Digest returns the running xxhash of the records read so far
func (r *Reader) Digest() uint64 {
	return r.digest.h.Sum64()
}

// ReadRecord returns the payload of the next record. At the end of the
// stream it returns io.EOF; a stream ending inside a record is
// xdr.ErrTruncatedInput.
func (r *Reader) ReadRecord() ([]byte, error) {
	var (
		rec     []byte
		hdr     [headerLen]byte
		last    bool
		started bool
	)

	for !last {
		if _, err := io.ReadFull(r.br, hdr[:]); err != nil {
			if err == io.EOF && !started {
				return nil, io.EOF
			}
			return nil, r.truncated(err)
		}
		started = true
		r.offset += headerLen

		var n uint32
		n, last = parseHeader(hdr[:])
		if uint64(len(rec))+uint64(n) > uint64(r.max) {
			return nil, fmt.Errorf("%w: %d bytes at offset %d (limit %d)",
				ErrRecordTooLarge, uint64(len(rec))+uint64(n), r.offset-headerLen, r.max)
		}

		start := len(rec)
		rec = append(rec, make([]byte, n)...)
		if _, err := io.ReadFull(r.br, rec[start:]); err != nil {
			return nil, r.truncated(err)
		}
		r.offset += int64(n)
	}

	if rec == nil {
		rec = []byte{}
	}
	r.digest.add(rec)

	if r.log != nil {
		r.log.Debug("read record",
			"record", r.digest.records-1,
			"bytes", len(rec),
			"offset", r.offset)
	}
	return rec, nil
}

func (r *Reader) truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("stream: record at offset %d: %w", r.offset, xdr.ErrTruncatedInput)
	}
	return err
}

// Decode reads the next record and unmarshals it into op. The record must
// contain exactly one value.
func (r *Reader) Decode(op xdr.Unmarshaler) error {
	rec, err := r.ReadRecord()
	if err != nil {
		return err
	}

	if err := r.coder.Unmarshal(rec, op); err != nil {
		return fmt.Errorf("stream: record %d: %w", r.digest.records-1, err)
	}
	return nil
}

// Close releases the gzip reader, if any. The underlying reader is not
// closed.
func (r *Reader) Close() error {
	if r.gz != nil {
		return r.gz.Close()
	}
	return nil
}
