// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package xdr

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
)

func EncodeBenchmarkCommon(b *testing.B, ob Marshaler) {
	b.Run("XDRMarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err := Marshal(ob)
			if err != nil {
				b.Fatalf("Marshal: %s", err)
			}
		}
	})

	b.Run("JSONMarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err := json.Marshal(ob)
			if err != nil {
				b.Fatalf("json.Marshal: %s", err)
			}
		}
	})

	b.Run("XDRWriteDiscard", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			err := Write(io.Discard, ob)
			if err != nil {
				b.Fatalf("Write: %s", err)
			}
		}
	})

	b.Run("XDRWriteBuffer", func(b *testing.B) {
		var buf bytes.Buffer
		for i := 0; i < b.N; i++ {
			err := Write(&buf, ob)
			if err != nil {
				b.Fatalf("Write: %s", err)
			}

			if (i % 2048) == 0 {
				buf.Reset()
			}
		}
	})

	b.Run("JSONEncoderDiscard", func(b *testing.B) {
		w := json.NewEncoder(io.Discard)
		for i := 0; i < b.N; i++ {
			err := w.Encode(ob)
			if err != nil {
				b.Fatalf("Encode: %s", err)
			}
		}
	})
}

func DecodeBenchmarkCommon(b *testing.B, ob Marshaler) {
	buf, err := Marshal(ob)
	if err != nil {
		b.Fatalf("Marshal: %s", err)
	}

	jbuf, err := json.Marshal(ob)
	if err != nil {
		b.Fatalf("json.Marshal: %s", err)
	}

	b.Run("XDRUnmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(buf)))
		for i := 0; i < b.N; i++ {
			if err := Unmarshal(buf, newTarget(ob)); err != nil {
				b.Fatalf("Unmarshal: %s", err)
			}
		}
	})

	b.Run("JSONUnmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(jbuf)))
		for i := 0; i < b.N; i++ {
			if err := json.Unmarshal(jbuf, newTarget(ob)); err != nil {
				b.Fatalf("json.Unmarshal: %s", err)
			}
		}
	})
}

func BenchmarkInt32(b *testing.B) {
	EncodeBenchmarkCommon(b, tInt(123))
	DecodeBenchmarkCommon(b, tInt(123))
}

func BenchmarkHyper(b *testing.B) {
	EncodeBenchmarkCommon(b, tHyper(768))
	DecodeBenchmarkCommon(b, tHyper(768))
}

func BenchmarkOpaque(b *testing.B) {
	EncodeBenchmarkCommon(b, tOpaque("Hello"))
	DecodeBenchmarkCommon(b, tOpaque("Hello"))
}

func BenchmarkArray(b *testing.B) {
	EncodeBenchmarkCommon(b, tArr{1, 2, 3})
	DecodeBenchmarkCommon(b, tArr{1, 2, 3})
}

func BenchmarkNestedTree(b *testing.B) {
	tree := tTree{Children: []tTree{nest(10), nest(20), nest(5)}}
	EncodeBenchmarkCommon(b, tree)
	DecodeBenchmarkCommon(b, tree)
}
