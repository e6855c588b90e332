// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

// Package commands implements the stellarxdr command line tool.
package commands

import (
	"github.com/spf13/cobra"

	xdr "go.e43.eu/stellarxdr"
	"go.e43.eu/stellarxdr/internal/config"
	"go.e43.eu/stellarxdr/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globals holds the persistent flags and the configuration they produce
type globals struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg *config.Config
}

// coder returns a Coder applying the configured decode limits
func (g *globals) coder() xdr.Coder {
	return xdr.NewCoder(g.cfg.ToOptions())
}

// load reads the configuration, applies flag overrides and configures the
// logger
func (g *globals) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(g.cfgFile)
	if err != nil {
		return err
	}

	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Logging.Format = g.logFormat
	}
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"max_depth", cfg.Decode.MaxDepth,
		"max_input_len", cfg.Decode.MaxInputLen.String(),
		"max_array_len", cfg.Decode.MaxArrayLen)

	g.cfg = cfg
	return nil
}

// NewRootCmd builds the command tree. Each call returns independent
// commands and flags.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "stellarxdr",
		Short: "Inspect Stellar XDR values",
		Long: `stellarxdr decodes, validates and summarises Stellar XDR: ledger entries,
transactions, SCP messages and Soroban values, either one at a time or as
record-marked streams such as history archive files.

Use "stellarxdr [command] --help" for more information about a command.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: g.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/stellarxdr/config.yaml)")
	flags.StringVar(&g.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&g.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(newDecodeCmd(g))
	root.AddCommand(newRoundtripCmd(g))
	root.AddCommand(newTypesCmd())
	root.AddCommand(newStreamCmd(g))
	root.AddCommand(newConfigCmd(g))
	root.AddCommand(newVersionCmd())

	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// Execute runs the command named by os.Args
func Execute() error {
	return NewRootCmd().Execute()
}
