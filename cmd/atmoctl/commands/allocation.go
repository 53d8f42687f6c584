package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imamik/atmoctl/cmd/atmoctl/handlers"
)

// Allocation returns the parent command for allocation-source administration.
func Allocation() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocation",
		Short: "Administer allocation sources",
	}

	cmd.AddCommand(allocationSet())

	return cmd
}

// allocationSet returns the command that updates allocation-unit limits.
func allocationSet() *cobra.Command {
	var opts handlers.AllocationOptions

	cmd := &cobra.Command{
		Use:   "set <compute-allowed>",
		Short: "Set the allowed compute units on each account's allocation source",
		Long: `Set every account's own allocation source to the given compute-unit limit.

Examples:
  # Give each account in the CSV 168 allocation units
  atmoctl allocation set 168 --csv accounts.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			opts.ComputeAllowed = count
			return handlers.Allocation(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "CSV file with account credentials")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Single account username (prompts for secret)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: atmoctl.yaml)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Control-plane deployment: cyverse or jetstream")
	cmd.Flags().StringVar(&opts.AuthMode, "auth-mode", "", "Credential interpretation: password or token")

	return cmd
}
