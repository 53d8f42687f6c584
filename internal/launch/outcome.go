package launch

import "time"

// Classification is the terminal state of one account's pipeline.
type Classification string

// Pipeline classifications. Exactly one applies per account.
const (
	ClassSucceeded        Classification = "succeeded"
	ClassAuthFailed       Classification = "auth-failed"
	ClassResolutionFailed Classification = "resolution-failed"
	ClassLaunchFailed     Classification = "launch-failed"
	ClassActivationFailed Classification = "activation-failed"
	ClassTimedOut         Classification = "timed-out"
)

// Failed reports whether the classification is any of the failure states.
func (c Classification) Failed() bool {
	return c != ClassSucceeded
}

// OutcomeRecord is the final, immutable result of one account's pipeline.
// A batch run produces exactly one per input request.
type OutcomeRecord struct {
	Username       string
	Classification Classification
	Instance       *InstanceHandle
	Elapsed        time.Duration

	// Err is the cause for failed classifications, nil for success.
	Err error
}
