// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xdr "go.e43.eu/stellarxdr"
	"go.e43.eu/stellarxdr/stream"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.EqualValues(t, xdr.DefaultMaxDepth, cfg.Decode.MaxDepth)
	assert.EqualValues(t, stream.DefaultMaxRecordSize, cfg.Stream.MaxRecordSize)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: JSON
decode:
  max_depth: 50
  max_input_len: 64KiB
  max_array_len: 1000
  lenient_optional_flags: true
stream:
  max_record_size: 1 MB
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.EqualValues(t, 50, cfg.Decode.MaxDepth)
	assert.EqualValues(t, 64*1024, cfg.Decode.MaxInputLen)
	assert.EqualValues(t, 1000, cfg.Decode.MaxArrayLen)
	assert.True(t, cfg.Decode.LenientOptionalFlags)
	assert.EqualValues(t, 1000*1000, cfg.Stream.MaxRecordSize)

	assert.Equal(t, xdr.Options{
		MaxDepth:             50,
		MaxInputLen:          64 * 1024,
		MaxArrayLen:          1000,
		LenientOptionalFlags: true,
	}, cfg.ToOptions())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "decode:\n  max_depth: 50\n")
	t.Setenv("STELLARXDR_DECODE_MAX_DEPTH", "7")
	t.Setenv("STELLARXDR_DECODE_MAX_INPUT_LEN", "2KiB")
	t.Setenv("STELLARXDR_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, 7, cfg.Decode.MaxDepth)
	assert.EqualValues(t, 2048, cfg.Decode.MaxInputLen)
	assert.Equal(t, "WARN", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"level":       "logging:\n  level: loud\n",
		"format":      "logging:\n  format: xml\n",
		"size":        "decode:\n  max_input_len: lots\n",
		"record size": "stream:\n  max_record_size: 4GiB\n",
		"syntax":      "decode: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Decode.MaxInputLen = 16 << 20
	cfg.Decode.LenientOptionalFlags = true

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_input_len: 16 MiB")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestByteSizeString(t *testing.T) {
	assert.Equal(t, "64 MiB", ByteSize(64<<20).String())
	assert.Equal(t, "512 B", ByteSize(512).String())
}
