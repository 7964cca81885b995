package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
)

type catalogService struct {
	userRepository          store.UserRepository
	pokemonRepository       store.PokemonRepository
	caughtPokemonRepository store.CaughtPokemonRepository

	hasher *PasswordHasher
	ids    IDGenerator

	logger *logger.Logger
}

func NewCatalogService(storages store.Storages, hasher *PasswordHasher, ids IDGenerator, logger *logger.Logger) CatalogService {
	return &catalogService{
		userRepository:          storages.UserRepository,
		pokemonRepository:       storages.PokemonRepository,
		caughtPokemonRepository: storages.CaughtPokemonRepository,
		hasher:                  hasher,
		ids:                     ids,
		logger:                  logger,
	}
}

// ── users ─────────────────────────────────────────────────────────────────────

func (c *catalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := c.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	public := make([]models.User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

func (c *catalogService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := c.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user.Public(), nil
}

// UpdateUser changes the email and/or the password of the caller. Another
// user's id yields store.ErrUserNotFound. A new password is re-hashed; a taken
// email yields store.ErrEmailAlreadyExists.
func (c *catalogService) UpdateUser(ctx context.Context, callerID, userID string, update models.UserUpdate) (models.User, error) {
	if callerID == "" || userID != callerID {
		return models.User{}, store.ErrUserNotFound
	}
	if update.Email != nil {
		email := strings.TrimSpace(*update.Email)
		if email == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		update.Email = &email
	}
	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		hash, err := c.hasher.Hash(ctx, *update.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.Password = nil
		update.PasswordHash = &hash
	}
	if update.IsEmpty() {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := c.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}
	return user.Public(), nil
}

// DeleteUser removes the caller together with the account and ownership
// records.
func (c *catalogService) DeleteUser(ctx context.Context, callerID, userID string) error {
	if callerID == "" || userID != callerID {
		return store.ErrUserNotFound
	}
	if err := c.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}
	return nil
}

// ── pokemons ──────────────────────────────────────────────────────────────────

func (c *catalogService) ListPokemons(ctx context.Context) ([]models.Pokemon, error) {
	pokemons, err := c.pokemonRepository.ListPokemons(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pokemons failed: %w", err)
	}
	if pokemons == nil {
		pokemons = []models.Pokemon{}
	}
	return pokemons, nil
}

func (c *catalogService) GetPokemon(ctx context.Context, pokemonID string) (models.Pokemon, error) {
	pokemon, err := c.pokemonRepository.FindPokemonByID(ctx, pokemonID)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("pokemon search by id failed: %w", err)
	}
	return pokemon, nil
}

// CreatePokemon inserts a catalog row directly, bypassing the provider.
func (c *catalogService) CreatePokemon(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error) {
	pokemon.Name = strings.TrimSpace(pokemon.Name)
	if pokemon.Name == "" {
		return models.Pokemon{}, ErrInvalidDataProvided
	}
	if pokemon.Types == nil {
		pokemon.Types = []string{}
	}
	pokemon.PokemonID = c.ids.Generate()

	created, err := c.pokemonRepository.CreatePokemon(ctx, pokemon)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("pokemon creation failed: %w", err)
	}
	return created, nil
}

func (c *catalogService) UpdatePokemon(ctx context.Context, pokemonID string, update models.PokemonUpdate) (models.Pokemon, error) {
	if update.IsEmpty() {
		return models.Pokemon{}, ErrInvalidDataProvided
	}
	if err := validatePokemonUpdate(&update); err != nil {
		return models.Pokemon{}, err
	}

	updated, err := c.pokemonRepository.UpdatePokemonByID(ctx, pokemonID, update)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("pokemon update failed: %w", err)
	}
	return updated, nil
}

func (c *catalogService) DeletePokemon(ctx context.Context, pokemonID string) error {
	if err := c.pokemonRepository.DeletePokemonByID(ctx, pokemonID); err != nil {
		return fmt.Errorf("pokemon deletion failed: %w", err)
	}
	return nil
}

// ── caught pokemons ───────────────────────────────────────────────────────────

func (c *catalogService) ListCaughtPokemons(ctx context.Context, callerID string) ([]models.CaughtPokemon, error) {
	caught, err := c.caughtPokemonRepository.ListCaughtPokemonsByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("listing caught pokemons failed: %w", err)
	}
	if caught == nil {
		caught = []models.CaughtPokemon{}
	}
	return caught, nil
}

func (c *catalogService) GetCaughtPokemon(ctx context.Context, callerID, caughtPokemonID string) (models.CaughtPokemon, error) {
	caught, err := c.caughtPokemonRepository.FindOwnedCaughtPokemon(ctx, caughtPokemonID, callerID)
	if err != nil {
		return models.CaughtPokemon{}, fmt.Errorf("caught pokemon search by id failed: %w", err)
	}
	return caught, nil
}

// CreateCaughtPokemon records that the caller owns an existing pokemon row. A
// user_id in the body is overwritten with callerID. An unknown pokemon yields
// store.ErrReferenceNotFound.
func (c *catalogService) CreateCaughtPokemon(ctx context.Context, callerID string, caught models.CaughtPokemon) (models.CaughtPokemon, error) {
	if callerID == "" || strings.TrimSpace(caught.PokemonID) == "" {
		return models.CaughtPokemon{}, ErrInvalidDataProvided
	}
	caught.CaughtPokemonID = c.ids.Generate()
	caught.UserID = callerID
	caught.Pokemon = nil

	created, err := c.caughtPokemonRepository.CreateCaughtPokemon(ctx, caught)
	if err != nil {
		return models.CaughtPokemon{}, fmt.Errorf("caught pokemon creation failed: %w", err)
	}
	return created, nil
}

// UpdateCaughtPokemon repoints one of the caller's records at another pokemon.
// Ownership cannot be handed over: a user_id other than the caller's is
// rejected.
func (c *catalogService) UpdateCaughtPokemon(ctx context.Context, callerID, caughtPokemonID string, update models.CaughtPokemonUpdate) (models.CaughtPokemon, error) {
	if update.UserID != nil && *update.UserID != callerID {
		return models.CaughtPokemon{}, ErrInvalidDataProvided
	}
	if update.PokemonID == nil || *update.PokemonID == "" {
		return models.CaughtPokemon{}, ErrInvalidDataProvided
	}

	updated, err := c.caughtPokemonRepository.UpdateOwnedCaughtPokemon(ctx, caughtPokemonID, callerID, update)
	if err != nil {
		return models.CaughtPokemon{}, fmt.Errorf("caught pokemon update failed: %w", err)
	}
	return updated, nil
}

func (c *catalogService) DeleteCaughtPokemon(ctx context.Context, callerID, caughtPokemonID string) error {
	if err := c.caughtPokemonRepository.DeleteOwnedCaughtPokemon(ctx, caughtPokemonID, callerID); err != nil {
		return fmt.Errorf("caught pokemon deletion failed: %w", err)
	}
	return nil
}
