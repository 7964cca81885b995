package models

import "time"

// CaughtPokemon is an ownership record: a specific user has acquired a
// specific catalog row. Many records may point at the same Pokemon.
type CaughtPokemon struct {
	CaughtPokemonID string    `json:"id"`
	UserID          string    `json:"user_id"`
	PokemonID       string    `json:"pokemon_id"`
	CaughtAt        time.Time `json:"caught_at"`

	// Pokemon is the embedded catalog row. It is populated by the
	// ownership ledger and omitted by plain record operations.
	Pokemon *Pokemon `json:"pokemon,omitempty"`
}

// TableName returns the name of the database table
// associated with the CaughtPokemon model.
func (c CaughtPokemon) TableName() string {
	return "caught_pokemons"
}

// CaughtPokemonUpdate is a partial update of an ownership record
// issued through the plain record endpoints.
type CaughtPokemonUpdate struct {
	UserID    *string `json:"user_id,omitempty"`
	PokemonID *string `json:"pokemon_id,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u CaughtPokemonUpdate) IsEmpty() bool {
	return u.UserID == nil && u.PokemonID == nil
}
