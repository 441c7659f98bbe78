package cookie

import "errors"

var (
	ErrNoSecret       = errors.New("cookie.no_secret")
	ErrSecretTooShort = errors.New("cookie.secret_too_short")

	// ErrCookieNotFound is returned when the request lacks the cookie
	ErrCookieNotFound = errors.New("cookie.not_found")

	// ErrInvalidFormat covers empty names and signed values that do not decode
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")

	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
)
