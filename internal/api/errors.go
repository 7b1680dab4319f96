package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for backend operations.
var (
	// ErrAuthExpired maps 401/403 responses: the session cookie is gone or
	// stale. Callers clear the local logged-in flag and point the user at
	// `filterctl login`.
	ErrAuthExpired = errors.New("session expired, log in again")

	// ErrNoRecord is returned when no diary record exists for a date.
	// The backend signals this with 204 or an empty body; both are the
	// same outcome for the client.
	ErrNoRecord = errors.New("no record for date")
)

// StatusError is a non-success HTTP status outside the auth-expired case.
// Message carries the server's error message when one was parseable.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Code)
}
