package launch

import (
	"fmt"
	"log"
	"time"
)

// Stage names a pipeline stage for progress reporting.
type Stage string

// Pipeline stages, in execution order.
const (
	StageAuthenticating Stage = "authenticating"
	StageResolving      Stage = "resolving"
	StageSubmitting     Stage = "submitting"
	StageTracking       Stage = "tracking"
	StageDone           Stage = "done"
)

// Event is a progress report from one account's pipeline.
type Event struct {
	Username  string
	Stage     Stage
	State     State // set while tracking
	Message   string
	Timestamp time.Time

	// Outcome is set on the terminal StageDone event.
	Outcome *OutcomeRecord
}

// Observer receives pipeline events. Events for different accounts arrive
// concurrently; implementations must tolerate interleaving.
type Observer interface {
	PipelineEvent(event Event)
}

// NopObserver discards all events.
type NopObserver struct{}

// PipelineEvent implements Observer.
func (NopObserver) PipelineEvent(Event) {}

// LogObserver writes events through the standard logger, one line per
// event, prefixed with the account.
type LogObserver struct{}

// PipelineEvent implements Observer.
func (LogObserver) PipelineEvent(event Event) {
	switch {
	case event.Outcome != nil && event.Outcome.Err != nil:
		log.Printf("[%s] %s: %v", event.Username, event.Outcome.Classification, event.Outcome.Err)
	case event.Outcome != nil:
		log.Printf("[%s] %s in %v", event.Username, event.Outcome.Classification,
			event.Outcome.Elapsed.Round(time.Second))
	case event.Message != "":
		log.Printf("[%s] %s: %s", event.Username, event.Stage, event.Message)
	default:
		log.Printf("[%s] %s", event.Username, event.Stage)
	}
}

// FuncObserver adapts a function to the Observer interface.
type FuncObserver func(Event)

// PipelineEvent implements Observer.
func (f FuncObserver) PipelineEvent(event Event) { f(event) }

func stageEvent(username string, stage Stage) Event {
	return Event{Username: username, Stage: stage, Timestamp: time.Now()}
}

func trackEvent(username string, state State) Event {
	return Event{
		Username:  username,
		Stage:     StageTracking,
		State:     state,
		Message:   fmt.Sprintf("instance %s", state),
		Timestamp: time.Now(),
	}
}

func doneEvent(username string, outcome *OutcomeRecord) Event {
	return Event{
		Username:  username,
		Stage:     StageDone,
		Timestamp: time.Now(),
		Outcome:   outcome,
	}
}
