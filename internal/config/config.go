// Package config loads and validates atmoctl run configuration.
//
// Configuration merges three layers, later layers winning: built-in
// defaults, an optional atmoctl.yaml file, and command-line flags bound
// by the commands package.
package config

import (
	"fmt"
	"time"

	"github.com/imamik/atmoctl/internal/launch"
	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// Config holds all orchestrator configuration.
type Config struct {
	// Target selects the control-plane deployment.
	Target string

	// AuthMode selects credential interpretation: password or token.
	AuthMode string

	// Wait blocks until each instance activates, errors, or times out.
	// False records success at submission with no polling.
	Wait bool

	// PollInterval is the delay between activation status fetches.
	PollInterval time.Duration

	// Deadline bounds activation tracking per account.
	Deadline time.Duration

	// MetricsListen, when set, serves prometheus metrics on this address
	// for the duration of the run (e.g. ":9090").
	MetricsListen string
}

// Default creates a configuration with built-in defaults.
func Default() *Config {
	return &Config{
		Target:       string(atmo.TargetCyverse),
		AuthMode:     string(launch.AuthModePassword),
		Wait:         true,
		PollInterval: launch.DefaultPollInterval,
		Deadline:     launch.DefaultDeadline,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := atmo.ParseTarget(c.Target); err != nil {
		return err
	}
	if _, err := launch.ParseAuthMode(c.AuthMode); err != nil {
		return err
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %v", c.PollInterval)
	}
	if c.Deadline <= 0 {
		return fmt.Errorf("deadline must be positive, got %v", c.Deadline)
	}
	return nil
}

// ParsedTarget returns the validated control-plane target.
func (c *Config) ParsedTarget() atmo.Target {
	t, _ := atmo.ParseTarget(c.Target)
	return t
}

// ParsedAuthMode returns the validated auth mode.
func (c *Config) ParsedAuthMode() launch.AuthMode {
	m, _ := launch.ParseAuthMode(c.AuthMode)
	return m
}

// LaunchOptions maps the configuration to orchestrator options.
func (c *Config) LaunchOptions() launch.Options {
	return launch.Options{
		Wait:         c.Wait,
		PollInterval: c.PollInterval,
		Deadline:     c.Deadline,
	}
}
