package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/atmoctl/cmd/atmoctl/handlers"
)

// Cleanup returns the command for tearing down account resources.
func Cleanup() *cobra.Command {
	var opts handlers.CleanupOptions

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete all instances and volumes for one or more accounts",
		Long: `Delete every instance and volume owned by the given accounts.

Accounts are processed one at a time; a failing account is reported and
the remaining accounts are still cleaned. The account's default project
is recreated if it is missing.

Examples:
  # Clean all accounts in a CSV file
  atmoctl cleanup --csv accounts.csv

  # Clean a single account, prompting for the password
  atmoctl cleanup --username alice`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Cleanup(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "CSV file with account credentials")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Single account username (prompts for secret)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: atmoctl.yaml)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Control-plane deployment: cyverse or jetstream")
	cmd.Flags().StringVar(&opts.AuthMode, "auth-mode", "", "Credential interpretation: password or token")

	return cmd
}
