// ABOUTME: API error type carrying HTTP status and server message.
// ABOUTME: Distinguishes not-found for callers; everything else is opaque.
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed API call. Status 0 means the request never got a
// response (network unreachable, timeout).
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Status == 0 && e.cause != nil:
		return fmt.Sprintf("api: %v", e.cause)
	case e.Message != "":
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("api: %d: %s", e.Status, http.StatusText(e.Status))
	}
}

func (e *Error) Unwrap() error { return e.cause }

// IsNotFound reports whether err is an API not-found response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Message returns the server-supplied message from err when one exists,
// else the given fallback. Cache error fields are built with this so
// users see something readable regardless of failure mode.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
