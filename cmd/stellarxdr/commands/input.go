// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"go.e43.eu/stellarxdr/stellar"
)

// Input encodings accepted by --input
const (
	inputBase64 = "base64"
	inputHex    = "hex"
	inputRaw    = "raw"
)

// readInput returns the XDR bytes named by args. With no argument, or "-",
// the input is read from stdin. Otherwise base64 and hex input is taken
// from the argument itself and raw input from the file it names.
func readInput(cmd *cobra.Command, args []string, encoding string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case len(args) == 0 || args[0] == "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	case encoding == inputRaw:
		data, err = os.ReadFile(args[0])
	default:
		data = []byte(args[0])
	}
	if err != nil {
		return nil, err
	}

	switch encoding {
	case inputRaw:
		return data, nil
	case inputBase64:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return b, nil
	case inputHex:
		b, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown input encoding %q (want base64, hex or raw)", encoding)
	}
}

// lookupType returns a new value of the named registered type
func lookupType(name string) (stellar.Codec, error) {
	if name == "" {
		return nil, fmt.Errorf("--type is required (see \"stellarxdr types\")")
	}

	v, ok := stellar.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown type %q (see \"stellarxdr types\")", name)
	}
	return v, nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// completeTypes offers registered type names for --type
func completeTypes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, n := range stellar.TypeNames() {
		if strings.HasPrefix(n, toComplete) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, cobra.ShellCompDirectiveNoFileComp
}
