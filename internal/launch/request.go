package launch

import (
	"fmt"
	"time"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// AuthMode selects how account credentials are interpreted.
type AuthMode string

// Supported auth modes.
const (
	AuthModePassword AuthMode = "password"
	AuthModeToken    AuthMode = "token"
)

// ParseAuthMode validates an auth mode from configuration or flags.
func ParseAuthMode(s string) (AuthMode, error) {
	switch AuthMode(s) {
	case AuthModePassword, AuthModeToken:
		return AuthMode(s), nil
	default:
		return "", fmt.Errorf("unknown auth mode %q (valid: %s, %s)", s, AuthModePassword, AuthModeToken)
	}
}

// Credential identifies one account. Password mode uses Username+Password;
// token mode uses Username+Token.
type Credential struct {
	Username string
	Password string
	Token    string
}

// LaunchRequest describes one account's instance launch. Immutable once
// read from the credential source; exactly one per account per batch.
type LaunchRequest struct {
	Credential   Credential
	ImageID      int
	ImageVersion string
	Size         string

	// AllocationSource optionally names the quota pool to draw from.
	// When empty, the first allocation source matching the username is used.
	AllocationSource string
}

// Validate reports missing required fields. Called for every request
// before any pipeline starts.
func (r *LaunchRequest) Validate(mode AuthMode) error {
	switch {
	case r.Credential.Username == "":
		return fmt.Errorf("missing username")
	case mode == AuthModePassword && r.Credential.Password == "":
		return fmt.Errorf("missing password for %s", r.Credential.Username)
	case mode == AuthModeToken && r.Credential.Token == "":
		return fmt.Errorf("missing token for %s", r.Credential.Username)
	case r.ImageID == 0:
		return fmt.Errorf("missing image for %s", r.Credential.Username)
	case r.ImageVersion == "":
		return fmt.Errorf("missing image version for %s", r.Credential.Username)
	case r.Size == "":
		return fmt.Errorf("missing instance size for %s", r.Credential.Username)
	}
	return nil
}

// AccountContext is the resolved launch context for one account. It is
// owned exclusively by the pipeline that resolved it.
type AccountContext struct {
	Client             atmo.Client
	Username           string
	ProjectID          string
	IdentityID         string
	AllocationSourceID string
	SourceAlias        string
	SizeAlias          string
	InstanceName       string
}

// InstanceHandle is the read-only identity of a launched instance, used
// for status polling and outcome reporting.
type InstanceHandle struct {
	ID       string
	Username string
}

// Options configures a batch run.
type Options struct {
	// Wait controls whether pipelines block until activation. When false,
	// a pipeline succeeds as soon as submission returns a handle, with no
	// status polling at all.
	Wait bool

	// PollInterval is the delay between status fetches while tracking.
	PollInterval time.Duration

	// Deadline bounds tracking per pipeline, measured from that
	// pipeline's own submission time.
	Deadline time.Duration
}

// Defaults for tracker cadence. The interval is not load-bearing; it only
// needs to stay coarse enough not to hammer the control plane.
const (
	DefaultPollInterval = 10 * time.Second
	DefaultDeadline     = 30 * time.Minute
)

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Deadline <= 0 {
		o.Deadline = DefaultDeadline
	}
	return o
}
