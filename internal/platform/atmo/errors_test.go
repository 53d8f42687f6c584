package atmo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", &APIError{StatusCode: 404})))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsRetryable(&APIError{StatusCode: 500}))
	assert.True(t, IsRetryable(&APIError{StatusCode: 503}))
	assert.True(t, IsRetryable(&APIError{StatusCode: 429}))
	// Transport errors without a status are treated as transient.
	assert.True(t, IsRetryable(errors.New("connection reset")))
	assert.False(t, IsRetryable(&APIError{StatusCode: 403}))
	assert.False(t, IsRetryable(&APIError{StatusCode: 404}))
	assert.False(t, IsRetryable(nil))
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	target, err := ParseTarget("cyverse")
	assert.NoError(t, err)
	assert.Equal(t, TargetCyverse, target)
	assert.NotEmpty(t, target.APIBaseURL())
	assert.NotEmpty(t, target.TokenURL())

	_, err = ParseTarget("openstack")
	assert.Error(t, err)
}
