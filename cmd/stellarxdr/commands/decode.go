// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"go.e43.eu/stellarxdr/internal/logger"
	"go.e43.eu/stellarxdr/stellar"
)

// Output formats accepted by --format
const (
	formatSpew = "spew"
	formatJSON = "json"
	formatCBOR = "cbor"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newDecodeCmd(g *globals) *cobra.Command {
	var typeName, input, format string

	cmd := &cobra.Command{
		Use:   "decode [DATA|FILE|-]",
		Short: "Decode a single XDR value",
		Long: `Decode a single XDR value of the given type and print it.

The whole input must be consumed by the value; trailing bytes are an error.

Examples:
  # Decode a base64 SCVal
  stellarxdr decode --type SCVal AAAAAwAAAAc=

  # Decode a raw ledger entry from a file as JSON
  stellarxdr decode --type LedgerEntry --input raw --format json entry.xdr`,
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

			if err := g.coder().Unmarshal(data, v); err != nil {
				logger.Debug("decode failed", logger.KeyType, typeName, logger.KeyBytes, len(data), logger.Err(err))
				return fmt.Errorf("decoding %s: %w", typeName, err)
			}
			logger.Debug("decoded", logger.KeyType, typeName, logger.KeyBytes, len(data))

			return printValue(cmd.OutOrStdout(), v, format)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "XDR type to decode")
	cmd.Flags().StringVarP(&input, "input", "i", inputBase64, "input encoding (base64, hex, raw)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSpew, "output format (spew, json, cbor)")
	_ = cmd.RegisterFlagCompletionFunc("type", completeTypes)
	return cmd
}

// printValue writes v to w in the given format. The json and cbor formats
// write unions as {Type, Value} pairs. CBOR is written as raw bytes unless
// w is a terminal, where it is hex encoded.
func printValue(w io.Writer, v stellar.Codec, format string) error {
	switch format {
	case formatSpew:
		dumper.Fdump(w, v)
		return nil
	case formatJSON:
		b, err := json.MarshalIndent(tagUnions(v), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatCBOR:
		b, err := cbor.Marshal(tagUnions(v))
		if err != nil {
			return err
		}
		if isTerminal(w) {
			_, err = fmt.Fprintln(w, hex.EncodeToString(b))
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want spew, json or cbor)", format)
	}
}
