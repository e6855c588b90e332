// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
	"go.e43.eu/stellarxdr/stellar"
	"go.e43.eu/stellarxdr/stream"
)

// SCVal u32 7
const (
	u32Seven     = "AAAAAwAAAAc="
	u32SevenJSON = `{"Type": "SCValTypeU32", "Value": 7}`
)

// run executes the command line args with stdin, returning stdout
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Keep the user's configuration out of the tests
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append(args, "--log-level", "ERROR"))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), err
}

func TestDecode(t *testing.T) {
	out, err := run(t, "", "decode", "--type", "SCVal", u32Seven)
	require.NoError(t, err)
	assert.Contains(t, out, "SCValU32")
	assert.Contains(t, out, "7")
}

func TestDecodeJSON(t *testing.T) {
	out, err := run(t, "", "decode", "-t", "SCVal", "-f", "json", u32Seven)
	require.NoError(t, err)
	assert.JSONEq(t, u32SevenJSON, out)
}

func TestDecodeCBOR(t *testing.T) {
	out, err := run(t, "", "decode", "-t", "SCVal", "-f", "cbor", u32Seven)
	require.NoError(t, err)
	// map(2) { "Type": "SCValTypeU32", "Value": 7 }
	want := []byte{0xa2, 0x64, 'T', 'y', 'p', 'e', 0x6c}
	want = append(want, "SCValTypeU32"...)
	want = append(want, 0x65, 'V', 'a', 'l', 'u', 'e', 0x07)
	assert.Equal(t, want, []byte(out))
}

func TestDecodeJSONKeepsArm(t *testing.T) {
	u32, err := run(t, "00000003 00000005", "decode", "-t", "SCVal", "-i", "hex", "-f", "json")
	require.NoError(t, err)
	i32, err := run(t, "00000004 00000005", "decode", "-t", "SCVal", "-i", "hex", "-f", "json")
	require.NoError(t, err)

	assert.NotEqual(t, u32, i32)
	assert.JSONEq(t, `{"Type": "SCValTypeI32", "Value": 5}`, i32)

	// vec[u32 7]
	out, err := run(t, "00000010 00000001 00000001 00000003 00000007",
		"decode", "-t", "SCVal", "-i", "hex", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type": "SCValTypeVec", "Value": {"Vec": [`+u32SevenJSON+`]}}`, out)
}

func TestTagUnions(t *testing.T) {
	assert.Nil(t, tagUnions(nil))
	assert.Nil(t, tagUnions(stellar.SCVal{}))

	got := tagUnions(stellar.SCVal{Arm: stellar.SCValU32(7)})
	assert.Equal(t, taggedArm{Type: "SCValTypeU32", Value: stellar.SCValU32(7)}, got)
}

func TestDecodeHexFromStdin(t *testing.T) {
	out, err := run(t, "00000003 00000007\n", "decode", "-t", "SCVal", "--input", "hex", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, u32SevenJSON, out)
}

func TestDecodeRawFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "val.xdr")
	require.NoError(t, os.WriteFile(path, []byte{0, 0, 0, 3, 0, 0, 0, 7}, 0644))

	out, err := run(t, "", "decode", "-t", "SCVal", "--input", "raw", "-f", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, u32SevenJSON, out)
}

func TestDecodeErrors(t *testing.T) {
	_, err := run(t, "", "decode", u32Seven)
	assert.ErrorContains(t, err, "--type is required")

	_, err = run(t, "", "decode", "-t", "NoSuchType", u32Seven)
	assert.ErrorContains(t, err, "unknown type")

	_, err = run(t, "", "decode", "-t", "SCVal", "not base64!")
	assert.ErrorContains(t, err, "invalid base64")

	// u32 7 followed by four more bytes
	_, err = run(t, "", "decode", "-t", "SCVal", "AAAAAwAAAAcAAAAA")
	assert.ErrorIs(t, err, xdr.ErrTrailingBytes)

	_, err = run(t, "", "decode", "-t", "SCVal", "AAAAAwAA")
	assert.ErrorIs(t, err, xdr.ErrTruncatedInput)

	_, err = run(t, "", "decode", "-t", "SCVal", "-f", "yaml", u32Seven)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestDecodeMaxDepthFromEnvironment(t *testing.T) {
	// vec[vec[]]
	nested := "00000010 00000001 00000001 00000010 00000001 00000000"

	_, err := run(t, nested, "decode", "-t", "SCVal", "-i", "hex")
	require.NoError(t, err)

	t.Setenv("STELLARXDR_DECODE_MAX_DEPTH", "1")
	_, err = run(t, nested, "decode", "-t", "SCVal", "-i", "hex")
	assert.ErrorIs(t, err, xdr.ErrMaxDepthExceeded)
}

func TestRoundtrip(t *testing.T) {
	out, err := run(t, "", "roundtrip", "-t", "SCVal", u32Seven)
	require.NoError(t, err)
	assert.Equal(t, u32Seven+"\n", out)
}

func TestRoundtripNotCanonical(t *testing.T) {
	// vec present with flag 2, which only decodes leniently
	input := "00000010 00000002 00000000"

	_, err := run(t, input, "roundtrip", "-t", "SCVal", "-i", "hex")
	assert.ErrorIs(t, err, xdr.ErrMalformedOptionalFlag)

	t.Setenv("STELLARXDR_DECODE_LENIENT_OPTIONAL_FLAGS", "true")
	_, err = run(t, input, "roundtrip", "-t", "SCVal", "-i", "hex")
	assert.ErrorIs(t, err, errNotCanonical)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)

	names := strings.Fields(out)
	assert.Equal(t, stellar.TypeNames(), names)
	assert.Contains(t, names, "SCVal")
	assert.Contains(t, names, "LedgerEntry")
}

func TestStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vals.xdr.gz")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := stream.NewWriter(f, stream.WithGzip(gzip.DefaultCompression))
	require.NoError(t, err)
	require.NoError(t, w.Encode(stellar.NewSCValU32(7)))
	require.NoError(t, w.Encode(stellar.NewSCValSymbol("hello")))
	require.NoError(t, w.Encode(stellar.NewSCValBool(false)))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	out, err := run(t, "", "stream", "-t", "SCVal", path)
	require.NoError(t, err)
	assert.Contains(t, out, "SCValU32")
	assert.Contains(t, out, "SCSymbol")
	assert.Contains(t, out, "SCValBool")
	assert.Contains(t, out, "true") // compressed
	assert.Contains(t, out, fmt.Sprintf("%016x", w.Digest()))
}

func TestStreamTruncated(t *testing.T) {
	// A record mark promising eight bytes, followed by four
	_, err := run(t, "\x80\x00\x00\x08\x00\x00\x00\x03", "stream", "-t", "SCVal", "-f", "none", "-")
	assert.ErrorIs(t, err, xdr.ErrTruncatedInput)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "max_depth: 200")
	assert.Contains(t, out, "level: ERROR")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := run(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = run(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "", "config", "init", "--force", path)
	assert.NoError(t, err)

	_, err = run(t, "", "--config", path, "types")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "stellarxdr dev"))
}
