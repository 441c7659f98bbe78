package session

import "errors"

var (
	// ErrInvalidSession indicates a nil session or a session without token
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrCorruptedSession indicates a stored session could not be decoded
	ErrCorruptedSession = errors.New("session.corrupted")

	// ErrEmptyNamespace indicates a namespace handle without a name
	ErrEmptyNamespace = errors.New("session.empty_namespace")
)
