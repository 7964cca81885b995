package models

import "time"

// Pokemon is a catalog row cached locally after the first lookup of its name
// at the upstream provider. There is never more than one row per Name.
type Pokemon struct {
	// PokemonID is the local unique identifier (UUID v7 string).
	PokemonID string `json:"id"`

	// Name is the unique, case-sensitive catalog key.
	Name string `json:"name"`

	// ExternalID is the identifier assigned by the upstream provider.
	ExternalID int64 `json:"external_id"`

	Height         int64    `json:"height"`
	Weight         int64    `json:"weight"`
	BaseExperience int64    `json:"base_experience"`
	Types          []string `json:"types"`
	SpriteURL      string   `json:"sprite_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Pokemon model.
func (p Pokemon) TableName() string {
	return "pokemons"
}

// PokemonUpdate is a partial update of a catalog row.
// Only non-nil fields are applied.
type PokemonUpdate struct {
	Name           *string   `json:"name,omitempty"`
	ExternalID     *int64    `json:"external_id,omitempty"`
	Height         *int64    `json:"height,omitempty"`
	Weight         *int64    `json:"weight,omitempty"`
	BaseExperience *int64    `json:"base_experience,omitempty"`
	Types          *[]string `json:"types,omitempty"`
	SpriteURL      *string   `json:"sprite_url,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u PokemonUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.ExternalID == nil &&
		u.Height == nil &&
		u.Weight == nil &&
		u.BaseExperience == nil &&
		u.Types == nil &&
		u.SpriteURL == nil
}
