// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client of the upstream pokemon data
// provider (PokeAPI).
//
// The primary abstraction is [PokemonProvider], which decouples the service
// layer from the provider's wire format. The package ships an HTTP/REST
// implementation ([NewPokeAPIAdapter]) built on resty.
//
// Transport outcomes are mapped by mapHTTPError to two sentinel values so that
// callers can use [errors.Is]: [ErrPokemonNotFound] when the provider does not
// know the name, [ErrUpstreamUnavailable] for every other failure including
// timeouts.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-poke-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pokemon_provider_mock.go -package=mock

// PokemonProvider looks pokemon up at the upstream data source.
type PokemonProvider interface {
	// GetPokemon returns the provider attributes of the pokemon called name.
	// The returned value has no local id and no timestamps.
	GetPokemon(ctx context.Context, name string) (models.Pokemon, error)
}
