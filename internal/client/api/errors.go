package api

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the client-side error taxonomy. Every failure
// returned by a Client maps onto exactly one of these; callers match with
// errors.Is and never inspect raw transport errors.
var (
	// ErrUnavailable: transport-level failure, the server was not reached.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized: HTTP 401, invalid or expired credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation: any other 4xx, carrying the backend's message verbatim.
	ErrValidation = errors.New("validation error")
	// ErrServer: 5xx, unexpected backend failure.
	ErrServer = errors.New("server error")
)

// Error is a normalized backend failure. It unwraps to one of the sentinel
// errors above so errors.Is works, while preserving the HTTP status and the
// backend-supplied message for display.
type Error struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.kind.Error()
}

func (e *Error) Unwrap() error {
	return e.kind
}

// newError classifies an HTTP status code into the error taxonomy.
func newError(statusCode int, message string) *Error {
	var kind error
	switch {
	case statusCode == 401:
		kind = ErrUnauthorized
	case statusCode >= 400 && statusCode < 500:
		kind = ErrValidation
	default:
		kind = ErrServer
	}
	return &Error{StatusCode: statusCode, Message: message, kind: kind}
}

// transportError wraps a failure that happened before any HTTP status was
// received (dial error, timeout, malformed response).
func transportError(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
