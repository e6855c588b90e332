// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package commands

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.e43.eu/stellarxdr/internal/logger"
)

// errNotCanonical is returned when re-encoding a decoded value does not
// reproduce its input
var errNotCanonical = errors.New("re-encoded value differs from input")

func newRoundtripCmd(g *globals) *cobra.Command {
	var typeName, input string

	cmd := &cobra.Command{
		Use:   "roundtrip [DATA|FILE|-]",
		Short: "Check that a value re-encodes to identical bytes",
		Long: `Decode a value, encode it again and compare the result with the input.

Hashes and signatures are computed over encoded bytes, so any difference
means the input was not canonical. On success the re-encoded value is
printed as base64.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookupType(typeName)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args, input)
			if err != nil {
				return err
			}

			cr := g.coder()
			if err := cr.Unmarshal(data, v); err != nil {
				return fmt.Errorf("decoding %s: %w", typeName, err)
			}

			out, err := cr.Marshal(v)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", typeName, err)
			}

			if !bytes.Equal(data, out) {
				logger.Warn("round trip mismatch",
					logger.KeyType, typeName,
					"input_bytes", len(data),
					"output_bytes", len(out))
				return fmt.Errorf("%s: %w", typeName, errNotCanonical)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "XDR type to decode")
	cmd.Flags().StringVarP(&input, "input", "i", inputBase64, "input encoding (base64, hex, raw)")
	_ = cmd.RegisterFlagCompletionFunc("type", completeTypes)
	return cmd
}
