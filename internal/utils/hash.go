package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest password bcrypt can hash. Longer inputs
// are rejected instead of being silently truncated.
const MaxPasswordLength = 72

var (
	// ErrPasswordTooLong is returned by HashPassword for inputs over MaxPasswordLength bytes.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrPasswordMismatch is returned by ComparePassword when the password does not match the hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// HashPassword returns the bcrypt hash of password computed with the given
// work factor. The result is self-describing ($2a$<cost>$<salt><hash>) and
// carries its own random salt, so hashing the same password twice yields
// different strings.
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword checks password against a hash produced by HashPassword.
// The comparison runs in constant time.
//
// Returns ErrPasswordMismatch on a wrong password and a wrapped bcrypt error
// when the stored hash itself is malformed.
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}
