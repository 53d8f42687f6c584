package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/atmoctl/internal/cleanup"
)

// CleanupOptions contains options for the cleanup command.
type CleanupOptions struct {
	CSVPath  string
	Username string

	ConfigPath string
	Target     string
	AuthMode   string
}

// Cleanup deletes every instance and volume owned by the given accounts,
// one account at a time. Returns an error only when no account could be
// cleaned; partial failures are reported per account.
func Cleanup(ctx context.Context, opts CleanupOptions) error {
	cfg, err := resolveConfig(opts.ConfigPath, opts.Target, opts.AuthMode)
	if err != nil {
		return err
	}

	creds, err := accountCredentials(ctx, opts.CSVPath, opts.Username, cfg.ParsedAuthMode())
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		return fmt.Errorf("no accounts to clean")
	}

	cleaner := &cleanup.Cleaner{
		Sessions: newSessionProvider(cfg.ParsedTarget(), cfg.ParsedAuthMode()),
	}
	results := cleaner.Run(ctx, creds)

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return fmt.Errorf("cleanup failed for all %d accounts", failed)
	}
	return nil
}
