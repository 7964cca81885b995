package adapter

import "errors"

var (
	// ErrPokemonNotFound means the provider answered that the name is unknown.
	ErrPokemonNotFound = errors.New("pokemon not found at provider")

	// ErrUpstreamUnavailable covers transport errors, timeouts, non-404 error
	// statuses and undecodable responses.
	ErrUpstreamUnavailable = errors.New("pokemon provider unavailable")
)
