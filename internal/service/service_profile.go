package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/models"
)

type profileService struct {
	userRepository    store.UserRepository
	accountRepository store.AccountRepository

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, accountRepository store.AccountRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository:    userRepository,
		accountRepository: accountRepository,
		logger:            logger,
	}
}

// Me returns the user behind a verified token together with the account, if
// the user has one. A token that outlived its user yields ErrUnauthenticated.
func (p *profileService) Me(ctx context.Context, userID string) (models.Profile, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Profile{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
		}
		return models.Profile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	profile := models.Profile{User: user.Public()}

	account, err := p.accountRepository.FindAccountByUserID(ctx, userID)
	switch {
	case err == nil:
		profile.Account = &account
	case errors.Is(err, store.ErrAccountNotFound):
	default:
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("account search failed")
		return models.Profile{}, fmt.Errorf("account search failed: %w", err)
	}

	return profile, nil
}
