package launch

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/atmoctl/internal/util/async"
)

// Orchestrator fans independent account pipelines out over a batch of
// launch requests and gathers their outcomes.
type Orchestrator struct {
	sessions SessionProvider
	opts     Options
	observer Observer
}

// NewOrchestrator creates an orchestrator. A nil observer discards
// progress events.
func NewOrchestrator(sessions SessionProvider, opts Options, observer Observer) *Orchestrator {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Orchestrator{
		sessions: sessions,
		opts:     opts.withDefaults(),
		observer: observer,
	}
}

// Run drives one pipeline per request, all concurrently, and returns one
// OutcomeRecord per request in input order. Run returns only after every
// pipeline has reached a terminal state (or immediately after submission
// when Wait is false). It never returns an error: per-account failures are
// classified into their outcome records at the pipeline boundary.
func (o *Orchestrator) Run(ctx context.Context, requests []LaunchRequest) []OutcomeRecord {
	tasks := make([]async.Task[OutcomeRecord], len(requests))
	for i, req := range requests {
		tasks[i] = func(ctx context.Context) OutcomeRecord {
			return o.runPipeline(ctx, req)
		}
	}
	return async.GatherAll(ctx, tasks)
}

// runPipeline executes the stages for one account in strict sequence:
// authenticate, resolve, submit, track. It is the error boundary the
// batch guarantee rests on: every failure, including a panic, becomes a
// classified outcome and nothing propagates to sibling pipelines.
func (o *Orchestrator) runPipeline(ctx context.Context, req LaunchRequest) (rec OutcomeRecord) {
	username := req.Credential.Username
	start := time.Now()

	finish := func(handle *InstanceHandle, err error) OutcomeRecord {
		record := OutcomeRecord{
			Username:       username,
			Classification: Classify(err),
			Instance:       handle,
			Elapsed:        time.Since(start),
			Err:            err,
		}
		outcomesTotal.WithLabelValues(string(record.Classification)).Inc()
		o.observer.PipelineEvent(doneEvent(username, &record))
		return record
	}

	defer func() {
		if r := recover(); r != nil {
			rec = finish(nil, fmt.Errorf("pipeline panic: %v", r))
		}
	}()

	o.observer.PipelineEvent(stageEvent(username, StageAuthenticating))
	client, err := o.sessions.Authenticate(ctx, req.Credential)
	if err != nil {
		return finish(nil, &AuthError{Username: username, Err: err})
	}

	o.observer.PipelineEvent(stageEvent(username, StageResolving))
	acct, err := ResolveContext(ctx, client, req, ResolveOptions{})
	if err != nil {
		return finish(nil, err)
	}

	o.observer.PipelineEvent(stageEvent(username, StageSubmitting))
	handle, err := SubmitLaunch(ctx, acct)
	if err != nil {
		return finish(nil, err)
	}

	if !o.opts.Wait {
		return finish(handle, nil)
	}

	tracker := &Tracker{
		Client:       client,
		PollInterval: o.opts.PollInterval,
		Deadline:     o.opts.Deadline,
		OnTransition: func(state State) {
			o.observer.PipelineEvent(trackEvent(username, state))
		},
	}
	return finish(handle, tracker.Track(ctx, handle))
}
