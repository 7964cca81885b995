package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/models"
)

type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// FindAccountByUserID returns [ErrAccountNotFound] for users created while
// account creation was disabled.
func (r *accountRepository) FindAccountByUserID(ctx context.Context, userID string) (models.Account, error) {
	account, err := scanAccount(r.db.QueryRowContext(ctx, findAccountByUserID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.FindAccountByUserID").Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}
