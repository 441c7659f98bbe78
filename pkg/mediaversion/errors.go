package mediaversion

import "errors"

var (
	// ErrEmptyRegistry indicates a registry was built without entries
	ErrEmptyRegistry = errors.New("mediaversion.empty_registry")

	// ErrInvalidEntry indicates a registry entry with an empty or duplicated key
	ErrInvalidEntry = errors.New("mediaversion.invalid_entry")

	// ErrDuplicateToken indicates two entries share the same URL token
	ErrDuplicateToken = errors.New("mediaversion.duplicate_token")

	// ErrOverlappingTokens indicates one token is a path-segment prefix of another
	ErrOverlappingTokens = errors.New("mediaversion.overlapping_tokens")

	// ErrNoDefaultVersion indicates path-prefix mode without an unprefixed entry
	ErrNoDefaultVersion = errors.New("mediaversion.no_default_version")

	// ErrUnknownVersion indicates a version key that is not registered
	ErrUnknownVersion = errors.New("mediaversion.unknown_version")

	// ErrInvalidMode indicates an unsupported URL mode or trailing slash policy
	ErrInvalidMode = errors.New("mediaversion.invalid_mode")

	// ErrNoSessionStore indicates the resolver was built without a session store
	ErrNoSessionStore = errors.New("mediaversion.no_session_store")

	// ErrSessionFailed wraps session store failures
	ErrSessionFailed = errors.New("mediaversion.session_failed")

	// ErrClassifierFailed wraps device classifier failures and timeouts
	ErrClassifierFailed = errors.New("mediaversion.classifier_failed")

	// ErrClassifierTimeout indicates the classifier did not answer in time
	ErrClassifierTimeout = errors.New("mediaversion.classifier_timeout")

	// ErrRouteURL wraps failures of the route collaborator while building URLs
	ErrRouteURL = errors.New("mediaversion.route_url_failed")
)
