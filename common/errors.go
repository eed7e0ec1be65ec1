package common

import (
	"errors"
	"fmt"
)

var (
	// ErrExternalAPI marks any failed call to the video platform API.
	ErrExternalAPI = errors.New("external API failure")

	// ErrMalformedResponse marks a response that lacks a field the contract requires.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrEmptyInput marks an empty user-supplied query or identifier list.
	// Callers render it as "no results" instead of a failure.
	ErrEmptyInput = errors.New("empty input")

	// ErrDataShapeMismatch marks two result sets whose sizes must agree but do not.
	ErrDataShapeMismatch = errors.New("data shape mismatch")
)

// APIError describes a single failed external call.
type APIError struct {
	Call string // e.g. "commentThreads.list"
	Code int    // HTTP status reported by the API, 0 for transport errors
	Err  error
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s failed with status %d: %v", e.Call, e.Code, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Call, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Is makes every APIError match ErrExternalAPI.
func (e *APIError) Is(target error) bool { return target == ErrExternalAPI }

// ShapeMismatch builds an ErrDataShapeMismatch error for two counts that should be equal.
func ShapeMismatch(what string, want, got int) error {
	return fmt.Errorf("%w: %s: expected %d, got %d", ErrDataShapeMismatch, what, want, got)
}
