package atmo

import "fmt"

// Target identifies one of the preconfigured control-plane deployments.
type Target string

const (
	// TargetCyverse is the CyVerse Atmosphere deployment.
	TargetCyverse Target = "cyverse"
	// TargetJetstream is the Jetstream Cloud deployment.
	TargetJetstream Target = "jetstream"
)

// endpoints holds the URLs for a control-plane deployment.
type endpoints struct {
	apiBaseURL string
	tokenURL   string
}

var targetEndpoints = map[Target]endpoints{
	TargetCyverse: {
		apiBaseURL: "https://atmo.cyverse.org",
		tokenURL:   "https://de.cyverse.org/terrain/token",
	},
	TargetJetstream: {
		apiBaseURL: "https://use.jetstream-cloud.org",
		tokenURL:   "https://use.jetstream-cloud.org/auth/token",
	},
}

// ParseTarget validates a target name from configuration or flags.
func ParseTarget(s string) (Target, error) {
	t := Target(s)
	if _, ok := targetEndpoints[t]; !ok {
		return "", fmt.Errorf("unknown target %q (valid: %s, %s)", s, TargetCyverse, TargetJetstream)
	}
	return t, nil
}

// APIBaseURL returns the API base URL for the target.
func (t Target) APIBaseURL() string {
	return targetEndpoints[t].apiBaseURL
}

// TokenURL returns the token-exchange endpoint for the target.
func (t Target) TokenURL() string {
	return targetEndpoints[t].tokenURL
}

// String implements fmt.Stringer.
func (t Target) String() string { return string(t) }
