// Package http provides shared HTTP client patterns for backend clients.
//
// The error taxonomy distinguishes network failures (the request never
// completed, surfaced as wrapped transport errors), non-success statuses
// (APIError carrying the server's detail message), and empty results, which
// are not errors at all.
package http

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for backend clients.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest indicates the request was malformed or rejected.
	ErrBadRequest = errors.New("bad request")

	// ErrServerError indicates a server-side error occurred.
	ErrServerError = errors.New("server error")
)

// APIError represents a non-success response from the review backend.
type APIError struct {
	// Service is the name of the backend (e.g. "review-api").
	Service string

	// StatusCode is the HTTP status code returned.
	StatusCode int

	// Message is the server-provided detail or message, when available.
	Message string

	// Endpoint is the path that was called.
	Endpoint string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (%d) at %s: %s",
		e.Service, e.StatusCode, e.Endpoint, e.Message)
}

// Unwrap returns the underlying sentinel error based on status code.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode >= 500:
		return ErrServerError
	case e.StatusCode >= 400:
		return ErrBadRequest
	default:
		return nil
	}
}

// Detail returns the server-provided message, or empty when the server sent
// none. Callers include it in user-visible failure status strings.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsNotFound reports whether the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
