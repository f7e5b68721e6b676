// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jobpilot/jobpilot/domain/session"
)

// APIError is an error that carries its HTTP status code.
type APIError struct {
	code    int
	message string
	cause   error
}

// NewAPIError creates an APIError.
func NewAPIError(code int, message string, cause error) *APIError {
	return &APIError{code: code, message: message, cause: cause}
}

// NewBadRequest creates a 400 APIError.
func NewBadRequest(message string, cause error) *APIError {
	return NewAPIError(http.StatusBadRequest, message, cause)
}

// Code returns the HTTP status code.
func (e *APIError) Code() int { return e.code }

// Message returns the client-facing message.
func (e *APIError) Message() string { return e.message }

func (e *APIError) Error() string {
	if e.cause != nil {
		return "api error: " + e.message + ": " + e.cause.Error()
	}
	return "api error: " + e.message
}

func (e *APIError) Unwrap() error { return e.cause }

// errorBody is the JSON error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to an HTTP status and writes a JSON error body.
// Unmapped errors become 500 with a generic message so internals do not
// leak to clients.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		WriteJSON(w, apiErr.Code(), errorBody{Error: apiErr.Message()})
	case errors.Is(err, session.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, errorBody{Error: "session not found"})
	default:
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
