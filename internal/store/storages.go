package store

import "github.com/MKhiriev/go-poke-keeper/internal/logger"

// Storages groups every repository built on top of one database handle.
type Storages struct {
	UserRepository          UserRepository
	AccountRepository       AccountRepository
	PokemonRepository       PokemonRepository
	CaughtPokemonRepository CaughtPokemonRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, logger),
		AccountRepository:       NewAccountRepository(db, logger),
		PokemonRepository:       NewPokemonRepository(db, logger),
		CaughtPokemonRepository: NewCaughtPokemonRepository(db, logger),
	}
}
