package routes

import "errors"

var (
	// ErrUnknownRoute indicates a lookup of a name that was never registered
	ErrUnknownRoute = errors.New("routes.unknown_route")

	// ErrDuplicateRoute indicates two routes registered under one name
	ErrDuplicateRoute = errors.New("routes.duplicate_route")

	// ErrMissingParam indicates a pattern placeholder without a value
	ErrMissingParam = errors.New("routes.missing_param")

	// ErrInvalidParam indicates a value rejected by the placeholder regexp
	ErrInvalidParam = errors.New("routes.invalid_param")
)
