// Package async provides utilities for parallel task execution.
//
// This package contains generic helpers for running multiple operations
// concurrently and collecting every result. It is used for fanning a batch
// of independent account pipelines out and gathering their outcomes.
package async

import "context"

// Task produces a single result of type T. Tasks must not panic across
// the boundary; callers that need panic isolation recover inside the task.
type Task[T any] func(ctx context.Context) T

// GatherAll executes all tasks concurrently and returns one result per
// task, in task order. Unlike fail-fast helpers, it always waits for every
// task and never discards a result: a failed task simply contributes
// whatever failure value it returns.
func GatherAll[T any](ctx context.Context, tasks []Task[T]) []T {
	if len(tasks) == 0 {
		return nil
	}

	type indexed struct {
		idx int
		val T
	}

	resultChan := make(chan indexed, len(tasks))

	for i, task := range tasks {
		go func() {
			resultChan <- indexed{idx: i, val: task(ctx)}
		}()
	}

	results := make([]T, len(tasks))
	for range len(tasks) {
		res := <-resultChan
		results[res.idx] = res.val
	}
	return results
}
