// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects logger output to a buffer, returning it and a
// function restoring the previous settings
func captureOutput(t *testing.T) *bytes.Buffer {
	buf := new(bytes.Buffer)

	mu.Lock()
	originalOutput := output
	output = buf
	mu.Unlock()

	originalLevel := CurrentLevel()
	originalFormat, _ := currentFormat.Load().(string)
	reconfigure()

	t.Cleanup(func() {
		mu.Lock()
		output = originalOutput
		mu.Unlock()
		currentLevel.Store(int32(originalLevel))
		currentFormat.Store(originalFormat)
		reconfigure()
	})
	return buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureOutput(t)
	SetFormat("text")
	SetLevel("WARN")

	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestSetLevel(t *testing.T) {
	captureOutput(t)

	for _, tc := range []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"ERROR", LevelError},
	} {
		SetLevel(tc.name)
		assert.Equal(t, tc.want, CurrentLevel(), tc.name)
	}

	SetLevel("ERROR")
	SetLevel("verbose")
	assert.Equal(t, LevelError, CurrentLevel(), "unknown levels are ignored")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestJSONFormat(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("DEBUG")
	SetFormat("json")

	Info("decoded", KeyType, "SCVal", KeyBytes, 12)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "decoded", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "SCVal", entry[KeyType])
	assert.EqualValues(t, 12, entry[KeyBytes])
}

func TestInitWithWriter(t *testing.T) {
	captureOutput(t)

	var buf bytes.Buffer
	InitWithWriter(&buf, "info", "text")
	With(KeyFile, "ledger.xdr.gz").Info("opened")

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "msg=opened")
	assert.Contains(t, line, "file=ledger.xdr.gz")
}

func TestErrAttr(t *testing.T) {
	assert.Equal(t, "", Err(nil).Key)

	a := Err(errors.New("boom"))
	assert.Equal(t, KeyError, a.Key)
	assert.Equal(t, "boom", a.Value.String())
}
