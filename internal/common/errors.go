package common

import "errors"

// Sentinel errors used across services. Handlers map these to HTTP status
// codes with errors.Is.
var (
	// ErrInvalidRequest marks a request rejected before any external call
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDataUnavailable marks total provider data unavailability for the
	// primary ticker
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrNotFound marks a missing stored entity
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a failed credential or token check
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict marks a uniqueness violation such as a duplicate email
	ErrConflict = errors.New("conflict")
)
