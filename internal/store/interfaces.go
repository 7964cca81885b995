package store

import (
	"context"

	"github.com/MKhiriev/go-poke-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users and, at signup, their optional account.
type UserRepository interface {
	// CreateUser inserts user and, when account is non-nil, the account in the
	// same transaction. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User, account *models.Account) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
	// DeleteUser removes the user; the account and ownership records cascade.
	DeleteUser(ctx context.Context, userID string) error
}

type AccountRepository interface {
	FindAccountByUserID(ctx context.Context, userID string) (models.Account, error)
}

// PokemonRepository is the local catalog cache.
type PokemonRepository interface {
	FindPokemonByName(ctx context.Context, name string) (models.Pokemon, error)
	FindPokemonByID(ctx context.Context, pokemonID string) (models.Pokemon, error)
	// InsertOrGetPokemon stores pokemon unless its name is already taken and
	// returns the row that owns the name afterwards. It never updates an
	// existing row.
	InsertOrGetPokemon(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error)
	// CreatePokemon is a plain insert; a taken name yields ErrPokemonAlreadyExists.
	CreatePokemon(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error)
	ListPokemons(ctx context.Context) ([]models.Pokemon, error)
	UpdatePokemonByName(ctx context.Context, name string, update models.PokemonUpdate) (models.Pokemon, error)
	UpdatePokemonByID(ctx context.Context, pokemonID string, update models.PokemonUpdate) (models.Pokemon, error)
	// DeletePokemonByName and DeletePokemonByID fail with ErrPokemonInUse while
	// ownership records reference the row.
	DeletePokemonByName(ctx context.Context, name string) error
	DeletePokemonByID(ctx context.Context, pokemonID string) error
}

// CaughtPokemonRepository is the ownership ledger. Every read and write of a
// single record is matched on both id and owner; a record of another user
// behaves as missing (ErrCaughtPokemonNotFoundOrNotOwned).
type CaughtPokemonRepository interface {
	CreateCaughtPokemon(ctx context.Context, caught models.CaughtPokemon) (models.CaughtPokemon, error)
	FindOwnedCaughtPokemon(ctx context.Context, caughtPokemonID, userID string) (models.CaughtPokemon, error)
	UpdateOwnedCaughtPokemon(ctx context.Context, caughtPokemonID, userID string, update models.CaughtPokemonUpdate) (models.CaughtPokemon, error)
	DeleteOwnedCaughtPokemon(ctx context.Context, caughtPokemonID, userID string) error
	ListCaughtPokemonsByUser(ctx context.Context, userID string) ([]models.CaughtPokemon, error)
}
