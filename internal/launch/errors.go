package launch

import (
	"errors"
	"fmt"
	"time"
)

// Lookup names the resolver lookup that failed.
type Lookup string

// Resolver lookups.
const (
	LookupProject          Lookup = "project"
	LookupAllocationSource Lookup = "allocation source"
	LookupIdentity         Lookup = "identity"
	LookupImageVersion     Lookup = "image version"
	LookupSize             Lookup = "size"
)

// AuthError indicates a rejected credential or unreachable token endpoint.
type AuthError struct {
	Username string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed for %s: %v", e.Username, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ResolutionError indicates a context lookup found no match.
type ResolutionError struct {
	Username string
	Lookup   Lookup
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving %s for %s: %v", e.Lookup, e.Username, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// LaunchError indicates the control plane rejected the instance creation.
type LaunchError struct {
	Username string
	Err      error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch rejected for %s: %v", e.Username, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ActivationError indicates the instance reached an error status while
// provisioning.
type ActivationError struct {
	InstanceID string
	Status     string
	Err        error
}

func (e *ActivationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("instance %s failed to activate: %v", e.InstanceID, e.Err)
	}
	return fmt.Sprintf("instance %s entered status %q", e.InstanceID, e.Status)
}

func (e *ActivationError) Unwrap() error { return e.Err }

// TimeoutError indicates the activation deadline passed without the
// instance reaching a terminal state.
type TimeoutError struct {
	InstanceID string
	Deadline   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("instance %s not active after %v", e.InstanceID, e.Deadline)
}

// Classify maps a pipeline error to its outcome classification.
func Classify(err error) Classification {
	if err == nil {
		return ClassSucceeded
	}

	var (
		authErr       *AuthError
		resolutionErr *ResolutionError
		launchErr     *LaunchError
		activationErr *ActivationError
		timeoutErr    *TimeoutError
	)
	switch {
	case errors.As(err, &authErr):
		return ClassAuthFailed
	case errors.As(err, &resolutionErr):
		return ClassResolutionFailed
	case errors.As(err, &launchErr):
		return ClassLaunchFailed
	case errors.As(err, &timeoutErr):
		return ClassTimedOut
	case errors.As(err, &activationErr):
		return ClassActivationFailed
	default:
		// Anything escaping the typed taxonomy is still attributed to the
		// account, as an activation failure when tracking was underway.
		return ClassActivationFailed
	}
}
