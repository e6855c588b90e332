// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package config loads the stellarxdr command's configuration from an
// optional YAML file, STELLARXDR_* environment variables and defaults.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	xdr "go.e43.eu/stellarxdr"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// STELLARXDR_DECODE_MAX_DEPTH
const EnvPrefix = "STELLARXDR"

// Config is the complete command configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Decode  DecodeConfig  `mapstructure:"decode" yaml:"decode"`
	Stream  StreamConfig  `mapstructure:"stream" yaml:"stream"`
}

// LoggingConfig controls internal/logger
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// DecodeConfig holds the decoder limits, see xdr.Options
type DecodeConfig struct {
	MaxDepth             uint     `mapstructure:"max_depth" yaml:"max_depth"`
	MaxInputLen          ByteSize `mapstructure:"max_input_len" yaml:"max_input_len"`
	MaxArrayLen          uint32   `mapstructure:"max_array_len" yaml:"max_array_len"`
	LenientOptionalFlags bool     `mapstructure:"lenient_optional_flags" yaml:"lenient_optional_flags"`
}

// StreamConfig controls framed record streams
type StreamConfig struct {
	MaxRecordSize ByteSize `mapstructure:"max_record_size" yaml:"max_record_size"`
}

// ByteSize is a byte count which may be written in configuration as a
// human readable size ("64MiB", "16 MB") or a plain number
type ByteSize uint64

func (b ByteSize) String() string {
	return humanize.IBytes(uint64(b))
}

// MarshalYAML writes sizes in their human readable form
func (b ByteSize) MarshalYAML() (interface{}, error) {
	if b == 0 {
		return 0, nil
	}
	return b.String(), nil
}

// ToOptions converts the decode section to coder options
func (c *Config) ToOptions() xdr.Options {
	return xdr.Options{
		MaxDepth:             c.Decode.MaxDepth,
		MaxInputLen:          int(c.Decode.MaxInputLen),
		MaxArrayLen:          c.Decode.MaxArrayLen,
		LenientOptionalFlags: c.Decode.LenientOptionalFlags,
	}
}

// Load loads configuration from file, environment, and defaults.
//
// Precedence (highest to lowest):
//  1. Environment variables (STELLARXDR_*)
//  2. Configuration file
//  3. Default values
//
// An empty configPath searches the default location; a missing file is not
// an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes cfg to path as YAML
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setupViper configures environment overrides and the file search path
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only consults the environment for keys viper already knows
	for key, value := range defaultKeys() {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(GetConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// defaultKeys returns every configuration key with its zero value. Real
// defaults are filled in by ApplyDefaults so that a file may leave any key
// out.
func defaultKeys() map[string]interface{} {
	return map[string]interface{}{
		"logging.level":                 "",
		"logging.format":                "",
		"logging.output":                "",
		"decode.max_depth":              0,
		"decode.max_input_len":          0,
		"decode.max_array_len":          0,
		"decode.lenient_optional_flags": false,
		"stream.max_record_size":        0,
	}
}

// readConfigFile reads the configuration file if it exists, reporting
// whether one was found
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		byteSizeDecodeHook(),
	)
}

// byteSizeDecodeHook converts strings like "64MiB" and plain numbers to
// ByteSize
func byteSizeDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(ByteSize(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			if v == "" {
				return ByteSize(0), nil
			}
			n, err := humanize.ParseBytes(v)
			if err != nil {
				return nil, fmt.Errorf("invalid size %q: %w", v, err)
			}
			return ByteSize(n), nil
		case int:
			if v < 0 {
				return nil, fmt.Errorf("invalid size %d", v)
			}
			return ByteSize(v), nil
		case int64:
			if v < 0 {
				return nil, fmt.Errorf("invalid size %d", v)
			}
			return ByteSize(v), nil
		case uint64:
			return ByteSize(v), nil
		case float64:
			if v < 0 {
				return nil, fmt.Errorf("invalid size %v", v)
			}
			return ByteSize(v), nil
		default:
			return data, nil
		}
	}
}

// GetConfigDir returns $XDG_CONFIG_HOME/stellarxdr, falling back to
// ~/.config/stellarxdr or the current directory
func GetConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "stellarxdr")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "stellarxdr")
}

// GetDefaultConfigPath returns the configuration file used when --config
// is not given
func GetDefaultConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// maxInputLen is the largest MaxInputLen representable as an int
const maxInputLen = uint64(math.MaxInt)
