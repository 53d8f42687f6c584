package launch

import (
	"context"
	"time"

	"github.com/imamik/atmoctl/internal/platform/atmo"
)

// State is the activation tracker's position in its lifecycle.
type State string

// Tracker states. Active, Errored and TimedOut are terminal.
const (
	StateSubmitted State = "submitted"
	StatePolling   State = "polling"
	StateActive    State = "active"
	StateErrored   State = "errored"
	StateTimedOut  State = "timed-out"
)

// Terminal reports whether the state ends tracking.
func (s State) Terminal() bool {
	return s == StateActive || s == StateErrored || s == StateTimedOut
}

// Tracker polls one instance until it settles, errors, or exceeds the
// deadline. Each pipeline owns its own Tracker; the deadline clock starts
// at submission, independent of every other pipeline.
type Tracker struct {
	Client       atmo.Client
	PollInterval time.Duration
	Deadline     time.Duration

	// OnTransition, when set, is called on every state change.
	OnTransition func(state State)
}

// Track runs the tracker to a terminal state. It returns nil when the
// instance reached active-and-settled, a *ActivationError when the control
// plane reported an error status, and a *TimeoutError when the deadline
// passed first.
//
// Transient fetch failures are not terminal: the tracker stays in the
// polling state and tries again on the next tick, up to the deadline.
func (t *Tracker) Track(ctx context.Context, handle *InstanceHandle) error {
	t.transition(StateSubmitted)

	ticker := time.NewTicker(t.PollInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(t.Deadline)
	defer deadline.Stop()

	t.transition(StatePolling)
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			// External cancellation is folded into the timeout outcome:
			// the instance never reached a terminal state under our watch.
			t.transition(StateTimedOut)
			return &TimeoutError{InstanceID: handle.ID, Deadline: time.Since(start)}

		case <-deadline.C:
			t.transition(StateTimedOut)
			return &TimeoutError{InstanceID: handle.ID, Deadline: t.Deadline}

		case <-ticker.C:
			instance, err := t.Client.GetInstance(ctx, handle.ID)
			if err != nil {
				statusPollsTotal.WithLabelValues("error").Inc()
				continue
			}
			statusPollsTotal.WithLabelValues("ok").Inc()

			switch {
			case instance.Errored():
				t.transition(StateErrored)
				return &ActivationError{InstanceID: handle.ID, Status: instance.Status}
			case instance.Settled():
				t.transition(StateActive)
				activationDuration.Observe(time.Since(start).Seconds())
				return nil
			}
			// Status "active" with a pending activity is not settled yet;
			// keep polling.
		}
	}
}

func (t *Tracker) transition(state State) {
	if t.OnTransition != nil {
		t.OnTransition(state)
	}
}
