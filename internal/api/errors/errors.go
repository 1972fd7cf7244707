package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies failures for HTTP translation
type ErrorKind string

const (
	// KindValidation is bad or missing caller input, rejected before
	// any provider call is made
	KindValidation ErrorKind = "validation"
	// KindUpstream is a provider that is unreachable or reported a
	// failure of its own
	KindUpstream ErrorKind = "upstream"
	// KindParse is a provider that answered but violated the expected
	// response contract
	KindParse ErrorKind = "parse"
	// KindInternal is everything else
	KindInternal ErrorKind = "internal"
)

// APIError represents a structured API error response, serialized as
// {"error": ..., "details": ...}
type APIError struct {
	Kind    ErrorKind `json:"-"`
	Message string    `json:"error"`
	Details string    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any
func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates an error for bad or missing input
func NewValidationError(message string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
	}
}

// NewUpstreamError wraps a provider failure
func NewUpstreamError(message string, cause error) *APIError {
	return &APIError{
		Kind:    KindUpstream,
		Message: message,
		Details: causeMessage(cause),
		cause:   cause,
	}
}

// NewParseError wraps a provider response that could not be interpreted
func NewParseError(message string, cause error) *APIError {
	return &APIError{
		Kind:    KindParse,
		Message: message,
		Details: causeMessage(cause),
		cause:   cause,
	}
}

// NewInternalError wraps an unexpected local failure
func NewInternalError(message string, cause error) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
		Details: causeMessage(cause),
		cause:   cause,
	}
}

func causeMessage(cause error) string {
	if cause == nil {
		return ""
	}
	return cause.Error()
}
