package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/atmoctl/cmd/atmoctl/handlers"
)

// Launch returns the command for batch-launching instances.
//
// Accounts come from a CSV file (--csv) or a single --username with an
// interactive secret prompt. Each account launches one instance off the
// requested image version, and by default the command waits until every
// instance is active or failed.
//
// Flags:
//
//	--csv:            CSV file with account credentials and launch fields
//	--username:       single account username (prompts for the secret)
//	--image:          image reference for single-account mode
//	--image-version:  image version for single-account mode
//	--size:           instance size for single-account mode
//	--allocation-source: named allocation source (single-account mode)
//	--config, -c:     path to configuration YAML (default: atmoctl.yaml)
//	--target:         control-plane deployment (cyverse or jetstream)
//	--auth-mode:      credential interpretation (password or token)
//	--dont-wait:      record success at submission, skip activation tracking
//	--poll-interval:  delay between activation status fetches
//	--deadline:       per-account activation deadline
//	--metrics-listen: serve prometheus metrics on this address during the run
//	--no-tui:         plain log output instead of the live progress view
func Launch() *cobra.Command {
	var opts handlers.LaunchOptions

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch instances for a batch of accounts",
		Long: `Launch one instance per account, concurrently.

Each account is authenticated independently, its project, identity and
allocation source are resolved by username, and one instance is created
off the requested image version. Accounts never block each other: a
failing account is reported in the final summary while the rest of the
batch proceeds.

Examples:
  # Launch for all accounts in a CSV file
  atmoctl launch --csv accounts.csv

  # Launch a single account's instance, prompting for the password
  atmoctl launch --username alice --image 1552 --image-version 2.0 --size tiny1

  # Submit only, without waiting for activation
  atmoctl launch --csv accounts.csv --dont-wait`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Launch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "CSV file with account credentials")
	cmd.Flags().StringVar(&opts.Username, "username", "", "Single account username (prompts for secret)")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Image reference (single-account mode)")
	cmd.Flags().StringVar(&opts.ImageVersion, "image-version", "", "Image version (single-account mode)")
	cmd.Flags().StringVar(&opts.Size, "size", "", "Instance size (single-account mode)")
	cmd.Flags().StringVar(&opts.AllocationSource, "allocation-source", "", "Named allocation source (single-account mode)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: atmoctl.yaml)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Control-plane deployment: cyverse or jetstream")
	cmd.Flags().StringVar(&opts.AuthMode, "auth-mode", "", "Credential interpretation: password or token")
	cmd.Flags().BoolVar(&opts.DontWait, "dont-wait", false, "Do not wait for instances to activate")
	cmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", 0, "Delay between activation status fetches")
	cmd.Flags().DurationVar(&opts.Deadline, "deadline", 0, "Per-account activation deadline")
	cmd.Flags().StringVar(&opts.MetricsListen, "metrics-listen", "", "Serve prometheus metrics on this address during the run")
	cmd.Flags().BoolVar(&opts.NoTUI, "no-tui", false, "Plain log output instead of the live progress view")

	return cmd
}
