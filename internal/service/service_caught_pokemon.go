package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
)

type caughtPokemonService struct {
	caughtPokemonRepository store.CaughtPokemonRepository
	pokemonService          PokemonService
	ids                     IDGenerator

	logger *logger.Logger
}

func NewCaughtPokemonService(caughtPokemonRepository store.CaughtPokemonRepository, pokemonService PokemonService,
	ids IDGenerator, logger *logger.Logger) CaughtPokemonService {
	return &caughtPokemonService{
		caughtPokemonRepository: caughtPokemonRepository,
		pokemonService:          pokemonService,
		ids:                     ids,
		logger:                  logger,
	}
}

// Catch resolves name and records that userID owns it. Resolution errors are
// returned unchanged. store.ErrReferenceNotFound means userID no longer
// exists.
func (c *caughtPokemonService) Catch(ctx context.Context, userID, name string) (models.CaughtPokemon, error) {
	if userID == "" {
		return models.CaughtPokemon{}, ErrUnauthenticated
	}

	pokemon, err := c.pokemonService.Resolve(ctx, name)
	if err != nil {
		return models.CaughtPokemon{}, err
	}

	caught, err := c.caughtPokemonRepository.CreateCaughtPokemon(ctx, models.CaughtPokemon{
		CaughtPokemonID: c.ids.Generate(),
		UserID:          userID,
		PokemonID:       pokemon.PokemonID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("user_id", userID).
			Str("pokemon_id", pokemon.PokemonID).
			Msg("recording caught pokemon failed")
		return models.CaughtPokemon{}, fmt.Errorf("recording caught pokemon failed: %w", err)
	}

	caught.Pokemon = &pokemon
	return caught, nil
}

// Release deletes the ownership record only if it belongs to userID. Another
// user's record and a missing one are indistinguishable:
// store.ErrCaughtPokemonNotFoundOrNotOwned.
func (c *caughtPokemonService) Release(ctx context.Context, caughtPokemonID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	caughtPokemonID = strings.TrimSpace(caughtPokemonID)
	if caughtPokemonID == "" {
		return ErrInvalidDataProvided
	}

	if err := c.caughtPokemonRepository.DeleteOwnedCaughtPokemon(ctx, caughtPokemonID, userID); err != nil {
		return fmt.Errorf("releasing caught pokemon failed: %w", err)
	}

	return nil
}

func (c *caughtPokemonService) ListByUser(ctx context.Context, userID string) ([]models.CaughtPokemon, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	caught, err := c.caughtPokemonRepository.ListCaughtPokemonsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing caught pokemons failed: %w", err)
	}
	if caught == nil {
		caught = []models.CaughtPokemon{}
	}

	return caught, nil
}
