// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package stream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	xdr "go.e43.eu/stellarxdr"
)

// Writer writes framed records. Close must be called to flush buffered
// (and compressed) data. It is not safe for concurrent use.
type Writer struct {
	bw       *bufio.Writer
	gz       *gzip.Writer
	coder    xdr.Coder
	fragment int
	digest   digest
}

// WriterOption configures a Writer
type WriterOption func(*writerConfig)

type writerConfig struct {
	gzip      bool
	gzipLevel int
	coder     xdr.Coder
	fragment  int
}

// WithGzip compresses the stream at the given level (gzip.DefaultCompression
// if unsure)
func WithGzip(level int) WriterOption {
	return func(c *writerConfig) {
		c.gzip = true
		c.gzipLevel = level
	}
}

// WithEncoderCoder sets the coder used by Encode
func WithEncoderCoder(cr xdr.Coder) WriterOption {
	return func(c *writerConfig) {
		c.coder = cr
	}
}

// WithFragmentSize splits records into fragments of at most n bytes
func WithFragmentSize(n int) WriterOption {
	return func(c *writerConfig) {
		c.fragment = n
	}
}

// NewWriter returns a Writer producing a framed stream on dst
func NewWriter(dst io.Writer, opts ...WriterOption) (*Writer, error) {
	cfg := writerConfig{
		coder:    xdr.DefaultCoder,
		fragment: MaxRecordSizeLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.fragment <= 0 || cfg.fragment > MaxRecordSizeLimit {
		return nil, fmt.Errorf("stream: invalid fragment size %d", cfg.fragment)
	}

	w := &Writer{
		coder:    cfg.coder,
		fragment: cfg.fragment,
		digest:   newDigest(),
	}

	if cfg.gzip {
		gz, err := gzip.NewWriterLevel(dst, cfg.gzipLevel)
		if err != nil {
			return nil, fmt.Errorf("stream: %w", err)
		}
		w.gz = gz
		dst = gz
	}
	w.bw = bufio.NewWriter(dst)
	return w, nil
}

// Records returns the number of records written so far
func (w *Writer) Records() int {
	return w.digest.records
}

// Digest returns the running xxhash of the records written so far
func (w *Writer) Digest() uint64 {
	return w.digest.h.Sum64()
}

// WriteRecord writes rec as a single record
func (w *Writer) WriteRecord(rec []byte) error {
	var hdr [headerLen]byte

	rest := rec
	for {
		n := len(rest)
		if n > w.fragment {
			n = w.fragment
		}
		last := n == len(rest)

		putHeader(hdr[:], n, last)
		if _, err := w.bw.Write(hdr[:]); err != nil {
			return err
		}
		if _, err := w.bw.Write(rest[:n]); err != nil {
			return err
		}

		rest = rest[n:]
		if last {
			break
		}
	}

	w.digest.add(rec)
	return nil
}

// Encode marshals o and writes it as one record
func (w *Writer) Encode(o xdr.Marshaler) error {
	b, err := w.coder.Marshal(o)
	if err != nil {
		return err
	}
	return w.WriteRecord(b)
}

// Flush writes buffered data to the underlying writer
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if w.gz != nil {
		return w.gz.Flush()
	}
	return nil
}

// Close flushes the stream and ends the gzip member, if any. The
// underlying writer is not closed.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if w.gz != nil {
		return w.gz.Close()
	}
	return nil
}
