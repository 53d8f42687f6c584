// Package main is the entry point for the atmoctl CLI.
//
// atmoctl drives batch operations against an Atmosphere control plane:
// launching instances for many accounts at once, tearing down account
// resources, and updating allocation-unit limits.
//
// Commands: launch, cleanup, allocation, version, completion.
//
// For detailed usage information, run:
//
//	atmoctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/atmoctl/cmd/atmoctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
