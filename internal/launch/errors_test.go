package launch_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/atmoctl/internal/launch"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want launch.Classification
	}{
		{
			name: "nil",
			err:  nil,
			want: launch.ClassSucceeded,
		},
		{
			name: "auth",
			err:  &launch.AuthError{Username: "alice", Err: errors.New("401")},
			want: launch.ClassAuthFailed,
		},
		{
			name: "resolution",
			err:  &launch.ResolutionError{Username: "alice", Lookup: launch.LookupProject, Err: errors.New("none")},
			want: launch.ClassResolutionFailed,
		},
		{
			name: "launch",
			err:  &launch.LaunchError{Username: "alice", Err: errors.New("quota")},
			want: launch.ClassLaunchFailed,
		},
		{
			name: "activation",
			err:  &launch.ActivationError{InstanceID: "inst-1", Status: "error"},
			want: launch.ClassActivationFailed,
		},
		{
			name: "timeout",
			err:  &launch.TimeoutError{InstanceID: "inst-1", Deadline: time.Minute},
			want: launch.ClassTimedOut,
		},
		{
			name: "wrapped auth",
			err:  fmt.Errorf("pipeline: %w", &launch.AuthError{Username: "alice", Err: errors.New("401")}),
			want: launch.ClassAuthFailed,
		},
		{
			name: "untyped",
			err:  errors.New("something else"),
			want: launch.ClassActivationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, launch.Classify(tt.err))
		})
	}
}

func TestClassificationFailed(t *testing.T) {
	t.Parallel()

	assert.False(t, launch.ClassSucceeded.Failed())
	for _, c := range []launch.Classification{
		launch.ClassAuthFailed,
		launch.ClassResolutionFailed,
		launch.ClassLaunchFailed,
		launch.ClassActivationFailed,
		launch.ClassTimedOut,
	} {
		assert.True(t, c.Failed(), string(c))
	}
}
