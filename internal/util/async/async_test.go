package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestGatherAll_ResultsInTaskOrder(t *testing.T) {
	tasks := []Task[string]{
		func(_ context.Context) string {
			time.Sleep(30 * time.Millisecond)
			return "first"
		},
		func(_ context.Context) string {
			return "second"
		},
		func(_ context.Context) string {
			time.Sleep(10 * time.Millisecond)
			return "third"
		},
	}

	results := GatherAll(context.Background(), tasks)

	expected := []string{"first", "second", "third"}
	if len(results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(results))
	}
	for i, want := range expected {
		if results[i] != want {
			t.Errorf("result %d: expected %q, got %q", i, want, results[i])
		}
	}
}

func TestGatherAll_EmptyTasks(t *testing.T) {
	if results := GatherAll[int](context.Background(), nil); results != nil {
		t.Errorf("expected nil for no tasks, got %v", results)
	}
	if results := GatherAll(context.Background(), []Task[int]{}); results != nil {
		t.Errorf("expected nil for empty slice, got %v", results)
	}
}

func TestGatherAll_NeverFailsFast(t *testing.T) {
	var completed atomic.Int32

	tasks := []Task[error]{
		func(_ context.Context) error {
			return context.DeadlineExceeded
		},
		func(_ context.Context) error {
			time.Sleep(50 * time.Millisecond)
			completed.Add(1)
			return nil
		},
		func(_ context.Context) error {
			time.Sleep(50 * time.Millisecond)
			completed.Add(1)
			return nil
		},
	}

	results := GatherAll(context.Background(), tasks)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0] == nil {
		t.Error("expected failure value for first task")
	}
	if completed.Load() != 2 {
		t.Errorf("expected 2 slow tasks to complete, got %d", completed.Load())
	}
}

func TestGatherAll_Concurrent(t *testing.T) {
	var maxConcurrent atomic.Int32
	var current atomic.Int32

	tasks := make([]Task[int], 5)
	for i := range tasks {
		tasks[i] = func(_ context.Context) int {
			c := current.Add(1)
			for {
				old := maxConcurrent.Load()
				if c <= old || maxConcurrent.CompareAndSwap(old, c) {
					break
				}
			}
			time.Sleep(50 * time.Millisecond)
			current.Add(-1)
			return int(c)
		}
	}

	results := GatherAll(context.Background(), tasks)

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if maxConcurrent.Load() != 5 {
		t.Errorf("expected 5 concurrent tasks, got %d", maxConcurrent.Load())
	}
}
