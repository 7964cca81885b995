package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/models"
)

// caughtPokemonRepository is the database/sql implementation of
// [CaughtPokemonRepository].
type caughtPokemonRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCaughtPokemonRepository(db *DB, logger *logger.Logger) CaughtPokemonRepository {
	logger.Debug().Msg("creating caught pokemon repository")
	return &caughtPokemonRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCaughtPokemon inserts an ownership record. A missing user or pokemon
// row yields [ErrReferenceNotFound].
func (r *caughtPokemonRepository) CreateCaughtPokemon(ctx context.Context, caught models.CaughtPokemon) (models.CaughtPokemon, error) {
	created, err := scanCaughtPokemon(r.db.QueryRowContext(ctx, createCaughtPokemon,
		caught.CaughtPokemonID, caught.UserID, caught.PokemonID))
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return models.CaughtPokemon{}, ErrReferenceNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*caughtPokemonRepository.CreateCaughtPokemon").
			Msg("error creating caught pokemon")
		return models.CaughtPokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// DeleteOwnedCaughtPokemon deletes the record in one conditional statement.
// Zero affected rows means the id does not exist or belongs to someone else;
// both are reported as [ErrCaughtPokemonNotFoundOrNotOwned].
func (r *caughtPokemonRepository) DeleteOwnedCaughtPokemon(ctx context.Context, caughtPokemonID, userID string) error {
	res, err := r.db.ExecContext(ctx, deleteOwnedCaughtPokemon, caughtPokemonID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*caughtPokemonRepository.DeleteOwnedCaughtPokemon").
			Msg("error deleting caught pokemon")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrCaughtPokemonNotFoundOrNotOwned)
}

// ListCaughtPokemonsByUser returns the user's records with their catalog
// rows embedded, ordered by catch time. No records is an empty slice.
func (r *caughtPokemonRepository) ListCaughtPokemonsByUser(ctx context.Context, userID string) ([]models.CaughtPokemon, error) {
	query, args, err := buildListCaughtPokemonsByUserQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, query, args, scanCaughtPokemonWithPokemon)
}

func (r *caughtPokemonRepository) list(ctx context.Context, query string, args []any,
	scan func(rowScanner) (models.CaughtPokemon, error)) ([]models.CaughtPokemon, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*caughtPokemonRepository.list").
			Msg("error listing caught pokemons")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	caught := make([]models.CaughtPokemon, 0)
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		caught = append(caught, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return caught, nil
}

// FindOwnedCaughtPokemon returns the record only if it belongs to userID.
func (r *caughtPokemonRepository) FindOwnedCaughtPokemon(ctx context.Context, caughtPokemonID, userID string) (models.CaughtPokemon, error) {
	caught, err := scanCaughtPokemon(r.db.QueryRowContext(ctx, findOwnedCaughtPokemon, caughtPokemonID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CaughtPokemon{}, ErrCaughtPokemonNotFoundOrNotOwned
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*caughtPokemonRepository.FindOwnedCaughtPokemon").
			Msg("error finding caught pokemon")
		return models.CaughtPokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return caught, nil
}

// UpdateOwnedCaughtPokemon changes the pokemon of a record owned by userID in
// one conditional statement.
func (r *caughtPokemonRepository) UpdateOwnedCaughtPokemon(ctx context.Context, caughtPokemonID, userID string, update models.CaughtPokemonUpdate) (models.CaughtPokemon, error) {
	if update.PokemonID == nil {
		return r.FindOwnedCaughtPokemon(ctx, caughtPokemonID, userID)
	}

	query, args, err := buildUpdateCaughtPokemonQuery(caughtPokemonID, userID, update)
	if err != nil {
		return models.CaughtPokemon{}, err
	}

	caught, err := scanCaughtPokemon(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.CaughtPokemon{}, ErrCaughtPokemonNotFoundOrNotOwned
		case r.db.classify(err) == ForeignKeyViolation:
			return models.CaughtPokemon{}, ErrReferenceNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*caughtPokemonRepository.UpdateOwnedCaughtPokemon").
			Msg("error updating caught pokemon")
		return models.CaughtPokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return caught, nil
}
