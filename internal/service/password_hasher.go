package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"golang.org/x/sync/semaphore"
)

// PasswordHasher runs bcrypt with at most concurrency computations in
// flight. Waiting for a slot honors ctx.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

func NewPasswordHasher(cost, concurrency int) *PasswordHasher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PasswordHasher{cost: cost, sem: semaphore.NewWeighted(int64(concurrency))}
}

// Hash returns the bcrypt hash of password. Passwords longer than
// utils.MaxPasswordLength are rejected with ErrInvalidDataProvided.
func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hash, err := utils.HashPassword(password, h.cost)
	switch {
	case errors.Is(err, utils.ErrPasswordTooLong):
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case err != nil:
		return "", err
	}
	return hash, nil
}

// Compare returns ErrWrongPassword when password does not match hash.
func (h *PasswordHasher) Compare(ctx context.Context, hash, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)

	err := utils.ComparePassword(hash, password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		return ErrWrongPassword
	}
	return err
}
