package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID v7 string).
	UserID string `json:"id"`

	// Email is the unique login identifier. Case-sensitive as stored.
	Email string `json:"email"`

	// Password carries the raw password on the way in (signup, login,
	// update). It is never persisted and never serialized in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u safe to serialize: no raw password, no hash.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// UserUpdate is a partial update of a user record.
// Only non-nil fields are applied.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`

	// PasswordHash is filled by the service layer from Password.
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no persistable field. The raw
// Password is not one: it must be hashed into PasswordHash first.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil
}
