// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package config

import (
	"fmt"
	"strings"

	xdr "go.e43.eu/stellarxdr"
	"go.e43.eu/stellarxdr/stream"
)

// ApplyDefaults replaces zero values with defaults and normalizes the
// logging settings. Explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyDecodeDefaults(&cfg.Decode)
	applyStreamDefaults(&cfg.Stream)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyDecodeDefaults(cfg *DecodeConfig) {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = xdr.DefaultMaxDepth
	}
}

func applyStreamDefaults(cfg *StreamConfig) {
	if cfg.MaxRecordSize == 0 {
		cfg.MaxRecordSize = stream.DefaultMaxRecordSize
	}
}

// GetDefaultConfig returns the configuration used when no file or
// environment overrides are present
func GetDefaultConfig() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Validate checks a configuration after defaults have been applied
func Validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}

	if uint64(cfg.Decode.MaxInputLen) > maxInputLen {
		return fmt.Errorf("decode.max_input_len: %s is too large", cfg.Decode.MaxInputLen)
	}

	if cfg.Stream.MaxRecordSize > stream.MaxRecordSizeLimit {
		return fmt.Errorf("stream.max_record_size: %s exceeds the record mark limit of %s",
			cfg.Stream.MaxRecordSize, ByteSize(stream.MaxRecordSizeLimit))
	}
	return nil
}
