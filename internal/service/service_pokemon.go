package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-poke-keeper/internal/adapter"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
)

type pokemonService struct {
	pokemonRepository store.PokemonRepository
	provider          adapter.PokemonProvider
	ids               IDGenerator

	logger *logger.Logger
}

func NewPokemonService(pokemonRepository store.PokemonRepository, provider adapter.PokemonProvider, ids IDGenerator, logger *logger.Logger) PokemonService {
	return &pokemonService{
		pokemonRepository: pokemonRepository,
		provider:          provider,
		ids:               ids,
		logger:            logger,
	}
}

// Resolve returns the catalog row for name, fetching it from the provider and
// storing it on the first lookup.
//
// Concurrent first lookups of the same name may all reach the provider, but
// they all return the single row that won the insert. An existing row is
// never overwritten.
//
// Errors:
//   - ErrInvalidDataProvided for a blank name.
//   - store.ErrPokemonNotFound if the provider does not know the name.
//   - ErrUpstreamUnavailable for every other provider failure.
func (p *pokemonService) Resolve(ctx context.Context, name string) (models.Pokemon, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Pokemon{}, ErrInvalidDataProvided
	}

	pokemon, err := p.pokemonRepository.FindPokemonByName(ctx, name)
	if err == nil {
		return pokemon, nil
	}
	if !errors.Is(err, store.ErrPokemonNotFound) {
		log.Err(err).Str("name", name).Msg("local pokemon lookup failed")
		return models.Pokemon{}, fmt.Errorf("local pokemon lookup failed: %w", err)
	}

	fetched, err := p.provider.GetPokemon(ctx, name)
	if err != nil {
		if errors.Is(err, adapter.ErrPokemonNotFound) {
			return models.Pokemon{}, fmt.Errorf("%w: %w", store.ErrPokemonNotFound, err)
		}
		log.Err(err).Str("name", name).Msg("pokemon provider lookup failed")
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	fetched.PokemonID = p.ids.Generate()
	stored, err := p.pokemonRepository.InsertOrGetPokemon(ctx, fetched)
	if err != nil {
		log.Err(err).Str("name", fetched.Name).Msg("storing fetched pokemon failed")
		return models.Pokemon{}, fmt.Errorf("storing fetched pokemon failed: %w", err)
	}

	return stored, nil
}

// Update applies a partial update to the catalog row called name. A rename
// onto a taken name yields store.ErrPokemonAlreadyExists.
func (p *pokemonService) Update(ctx context.Context, name string, update models.PokemonUpdate) (models.Pokemon, error) {
	name = strings.TrimSpace(name)
	if name == "" || update.IsEmpty() {
		return models.Pokemon{}, ErrInvalidDataProvided
	}
	if err := validatePokemonUpdate(&update); err != nil {
		return models.Pokemon{}, err
	}

	updated, err := p.pokemonRepository.UpdatePokemonByName(ctx, name, update)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("pokemon update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the catalog row called name. While ownership records point
// at the row it is kept and store.ErrPokemonInUse is returned.
func (p *pokemonService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidDataProvided
	}

	if err := p.pokemonRepository.DeletePokemonByName(ctx, name); err != nil {
		return fmt.Errorf("pokemon deletion failed: %w", err)
	}

	return nil
}

// validatePokemonUpdate trims a new name in place and rejects a blank one.
func validatePokemonUpdate(update *models.PokemonUpdate) error {
	if update.Name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*update.Name)
	if trimmed == "" {
		return ErrInvalidDataProvided
	}
	update.Name = &trimmed
	return nil
}
