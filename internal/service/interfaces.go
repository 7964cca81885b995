package service

import (
	"context"

	"github.com/MKhiriev/go-poke-keeper/models"
)

// AuthService is the credential store and the token service.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	Me(ctx context.Context, userID string) (models.Profile, error)
}

// PokemonService resolves pokemon names against the local catalog and, on a
// miss, against the upstream provider.
type PokemonService interface {
	Resolve(ctx context.Context, name string) (models.Pokemon, error)
	Update(ctx context.Context, name string, update models.PokemonUpdate) (models.Pokemon, error)
	Delete(ctx context.Context, name string) error
}

// CaughtPokemonService is the ownership ledger.
type CaughtPokemonService interface {
	Catch(ctx context.Context, userID, name string) (models.CaughtPokemon, error)
	Release(ctx context.Context, caughtPokemonID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]models.CaughtPokemon, error)
}

// CatalogService exposes plain record operations over users, pokemons and
// ownership records. callerID is the authenticated user: a user may only
// change or delete themselves, and only ever sees or touches their own
// ownership records. Anything else is reported as not found.
type CatalogService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, callerID, userID string, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, callerID, userID string) error

	ListPokemons(ctx context.Context) ([]models.Pokemon, error)
	GetPokemon(ctx context.Context, pokemonID string) (models.Pokemon, error)
	CreatePokemon(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error)
	UpdatePokemon(ctx context.Context, pokemonID string, update models.PokemonUpdate) (models.Pokemon, error)
	DeletePokemon(ctx context.Context, pokemonID string) error

	ListCaughtPokemons(ctx context.Context, callerID string) ([]models.CaughtPokemon, error)
	GetCaughtPokemon(ctx context.Context, callerID, caughtPokemonID string) (models.CaughtPokemon, error)
	CreateCaughtPokemon(ctx context.Context, callerID string, caught models.CaughtPokemon) (models.CaughtPokemon, error)
	UpdateCaughtPokemon(ctx context.Context, callerID, caughtPokemonID string, update models.CaughtPokemonUpdate) (models.CaughtPokemon, error)
	DeleteCaughtPokemon(ctx context.Context, callerID, caughtPokemonID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces identifiers for new rows.
type IDGenerator interface {
	Generate() string
}
