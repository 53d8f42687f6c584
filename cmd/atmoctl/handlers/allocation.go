package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/atmoctl/internal/allocation"
)

// AllocationOptions contains options for the allocation set command.
type AllocationOptions struct {
	CSVPath  string
	Username string

	ConfigPath string
	Target     string
	AuthMode   string

	ComputeAllowed int
}

// Allocation sets each account's own allocation source to the requested
// compute-unit limit.
func Allocation(ctx context.Context, opts AllocationOptions) error {
	if opts.ComputeAllowed < 0 {
		return fmt.Errorf("compute-allowed must not be negative, got %d", opts.ComputeAllowed)
	}

	cfg, err := resolveConfig(opts.ConfigPath, opts.Target, opts.AuthMode)
	if err != nil {
		return err
	}

	creds, err := accountCredentials(ctx, opts.CSVPath, opts.Username, cfg.ParsedAuthMode())
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		return fmt.Errorf("no accounts to update")
	}

	updater := &allocation.Updater{
		Sessions: newSessionProvider(cfg.ParsedTarget(), cfg.ParsedAuthMode()),
	}
	results := updater.SetComputeAllowed(ctx, creds, opts.ComputeAllowed)

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return fmt.Errorf("allocation update failed for all %d accounts", failed)
	}
	return nil
}
