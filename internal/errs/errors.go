// Package errs defines the sentinel errors shared across services and
// handlers. Services wrap them with context; handlers map them to HTTP
// status codes with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidInput covers missing or malformed request fields (400).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized covers a missing or invalid session claim (401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers a valid claim with insufficient role (403).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers a referenced entity that does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrConfig covers operator-facing misconfiguration, e.g. a missing
	// signing secret (500).
	ErrConfig = errors.New("configuration error")

	// ErrAlreadyExists covers unique-constraint conflicts on registration.
	ErrAlreadyExists = errors.New("already exists")
)
