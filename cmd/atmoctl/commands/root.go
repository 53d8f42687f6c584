// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the atmoctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atmoctl",
		Short: "Batch instance orchestration for the Atmosphere control plane",
	}

	cmd.AddCommand(Launch())
	cmd.AddCommand(Cleanup())
	cmd.AddCommand(Allocation())

	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
