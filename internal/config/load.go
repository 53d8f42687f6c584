package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file auto-detected in the working directory.
const DefaultConfigFile = "atmoctl.yaml"

// fileConfig mirrors Config with the YAML field encodings. Durations are
// written as Go duration strings ("10s", "30m").
type fileConfig struct {
	Target        string `yaml:"target"`
	AuthMode      string `yaml:"auth_mode"`
	Wait          *bool  `yaml:"wait"`
	PollInterval  string `yaml:"poll_interval"`
	Deadline      string `yaml:"deadline"`
	MetricsListen string `yaml:"metrics_listen"`
}

// Load returns the merged configuration: defaults overlaid with the given
// config file. An empty path auto-detects atmoctl.yaml and silently uses
// defaults when no file exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyFile(cfg, data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyFile(cfg *Config, data []byte) error {
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if file.Target != "" {
		cfg.Target = file.Target
	}
	if file.AuthMode != "" {
		cfg.AuthMode = file.AuthMode
	}
	if file.Wait != nil {
		cfg.Wait = *file.Wait
	}
	if file.MetricsListen != "" {
		cfg.MetricsListen = file.MetricsListen
	}

	var err error
	if cfg.PollInterval, err = parseDuration(file.PollInterval, cfg.PollInterval); err != nil {
		return fmt.Errorf("poll_interval: %w", err)
	}
	if cfg.Deadline, err = parseDuration(file.Deadline, cfg.Deadline); err != nil {
		return fmt.Errorf("deadline: %w", err)
	}
	return nil
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}
