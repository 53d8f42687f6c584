package atmo

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error response from the control plane.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("atmo API error: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error indicates a rejected credential.
func IsUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}

// IsRetryable reports whether an API error is worth retrying. Server-side
// failures and rate limiting are transient; client errors are not.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
	}
	// Transport-level errors (connection reset, timeout) arrive as plain
	// url.Error values and are treated as transient.
	return err != nil
}

func isStatus(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.StatusCode == code {
			return true
		}
	}
	return false
}
