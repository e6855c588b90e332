// Copyright 2020 Erin Shepherd
// SPDX-License-Identifier: ISC

package main

import (
	"fmt"
	"os"

	"go.e43.eu/stellarxdr/cmd/stellarxdr/commands"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
