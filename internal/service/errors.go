package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrUnauthenticated is returned when a token is valid but its subject no
	// longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUpstreamUnavailable is returned by pokemon resolution when the
	// provider failed for any reason other than not knowing the name.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
