// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/atmoctl/internal/config"
	"github.com/imamik/atmoctl/internal/credsource"
	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads the merged configuration.
	loadConfig = config.Load

	// readLaunchCSV reads full launch requests from a CSV file.
	readLaunchCSV = credsource.ReadFile

	// readAccountsCSV reads bare credentials from a CSV file.
	readAccountsCSV = credsource.ReadAccountsFile

	// promptSecret interactively asks for a password or token.
	promptSecret = credsource.PromptSecret

	// newSessionProvider creates the session provider for a target.
	newSessionProvider = func(target atmo.Target, mode launch.AuthMode) launch.SessionProvider {
		return launch.NewSessionProvider(target, mode)
	}
)

// resolveConfig loads the config file and applies command-line overrides.
func resolveConfig(configPath, target, authMode string) (*config.Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if target != "" {
		cfg.Target = target
	}
	if authMode != "" {
		cfg.AuthMode = authMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// secretKind names the prompted secret for the configured auth mode.
func secretKind(mode launch.AuthMode) string {
	if mode == launch.AuthModeToken {
		return "Token"
	}
	return "Password"
}

// singleCredential builds the credential for single-account mode,
// prompting for the secret.
func singleCredential(ctx context.Context, username string, mode launch.AuthMode) (launch.Credential, error) {
	secret, err := promptSecret(ctx, username, secretKind(mode))
	if err != nil {
		return launch.Credential{}, err
	}
	cred := launch.Credential{Username: username}
	if mode == launch.AuthModeToken {
		cred.Token = secret
	} else {
		cred.Password = secret
	}
	return cred, nil
}

// accountCredentials reads credentials from the CSV or single-account
// input surface; exactly one of the two must be given.
func accountCredentials(ctx context.Context, csvPath, username string, mode launch.AuthMode) ([]launch.Credential, error) {
	switch {
	case csvPath != "" && username != "":
		return nil, fmt.Errorf("--csv and --username are mutually exclusive")
	case csvPath != "":
		return readAccountsCSV(csvPath, mode)
	case username != "":
		cred, err := singleCredential(ctx, username, mode)
		if err != nil {
			return nil, err
		}
		return []launch.Credential{cred}, nil
	default:
		return nil, fmt.Errorf("either --csv or --username is required")
	}
}
