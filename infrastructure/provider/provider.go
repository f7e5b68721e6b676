// Package provider implements skill extraction backends: an OpenAI
// compatible chat endpoint and a deterministic keyword heuristic used
// when no endpoint is configured.
package provider

import (
	"errors"
	"fmt"
)

// ErrNoExtraction indicates the backend produced no usable extraction.
var ErrNoExtraction = errors.New("no extraction produced")

// ProviderError wraps a backend failure with its operation and HTTP
// status, when known.
type ProviderError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

// NewProviderError creates a ProviderError.
func NewProviderError(operation string, statusCode int, message string, err error) *ProviderError {
	return &ProviderError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s failed (status %d): %s", e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s failed: %s", e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
