// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package logger

import "log/slog"

// Standard field keys. Use these consistently so that logs from the CLI and
// the stream reader can be queried together.
const (
	KeyType    = "type"    // Registered XDR type name
	KeyBytes   = "bytes"   // Encoded size
	KeyOffset  = "offset"  // Byte offset within the input
	KeyRecord  = "record"  // Zero based record index within a stream
	KeyRecords = "records" // Record count
	KeyDigest  = "digest"  // Running stream digest
	KeyFile    = "file"    // Input path
	KeyError   = "error"   // Error message
)

// Err returns an attribute for err, or an empty attribute if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
