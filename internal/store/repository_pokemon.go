package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/models"
)

// pokemonRepository is the database/sql implementation of [PokemonRepository].
type pokemonRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPokemonRepository(db *DB, logger *logger.Logger) PokemonRepository {
	logger.Debug().Msg("creating pokemon repository")
	return &pokemonRepository{
		db:     db,
		logger: logger,
	}
}

func (r *pokemonRepository) FindPokemonByName(ctx context.Context, name string) (models.Pokemon, error) {
	return r.findOne(ctx, "*pokemonRepository.FindPokemonByName", findPokemonByName, name)
}

func (r *pokemonRepository) FindPokemonByID(ctx context.Context, pokemonID string) (models.Pokemon, error) {
	return r.findOne(ctx, "*pokemonRepository.FindPokemonByID", findPokemonByID, pokemonID)
}

func (r *pokemonRepository) findOne(ctx context.Context, funcName, query, arg string) (models.Pokemon, error) {
	pokemon, err := scanPokemon(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Pokemon{}, ErrPokemonNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding pokemon")
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return pokemon, nil
}

// InsertOrGetPokemon is the fetch-or-create primitive of the catalog.
//
// The INSERT carries ON CONFLICT (name) DO NOTHING, so of N concurrent callers
// for one unseen name exactly one gets the row back from RETURNING. The others
// get no row and read the winner's row instead. A unique violation reported
// anyway (e.g. on the primary key) is recovered the same way.
func (r *pokemonRepository) InsertOrGetPokemon(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error) {
	log := logger.FromContext(ctx)

	types, err := encodeTypes(pokemon.Types)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	inserted, err := scanPokemon(r.db.QueryRowContext(ctx, insertOrGetPokemon,
		pokemon.PokemonID, pokemon.Name, pokemon.ExternalID, pokemon.Height, pokemon.Weight,
		pokemon.BaseExperience, types, pokemon.SpriteURL))
	switch {
	case err == nil:
		log.Debug().Str("func", "*pokemonRepository.InsertOrGetPokemon").
			Str("name", inserted.Name).Str("pokemon_id", inserted.PokemonID).
			Msg("pokemon inserted")
		return inserted, nil
	case errors.Is(err, sql.ErrNoRows), r.db.classify(err) == UniqueViolation:
		log.Debug().Str("func", "*pokemonRepository.InsertOrGetPokemon").
			Str("name", pokemon.Name).
			Msg("pokemon name already taken, reading existing row")
		return r.FindPokemonByName(ctx, pokemon.Name)
	default:
		log.Err(err).Str("func", "*pokemonRepository.InsertOrGetPokemon").Msg("error inserting pokemon")
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *pokemonRepository) CreatePokemon(ctx context.Context, pokemon models.Pokemon) (models.Pokemon, error) {
	types, err := encodeTypes(pokemon.Types)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPokemon(r.db.QueryRowContext(ctx, createPokemon,
		pokemon.PokemonID, pokemon.Name, pokemon.ExternalID, pokemon.Height, pokemon.Weight,
		pokemon.BaseExperience, types, pokemon.SpriteURL))
	if err != nil {
		if r.db.classify(err) == UniqueViolation {
			return models.Pokemon{}, ErrPokemonAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*pokemonRepository.CreatePokemon").Msg("error creating pokemon")
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *pokemonRepository) ListPokemons(ctx context.Context) ([]models.Pokemon, error) {
	query, args, err := buildListPokemonsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pokemonRepository.ListPokemons").Msg("error listing pokemons")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pokemons := make([]models.Pokemon, 0)
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		pokemons = append(pokemons, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pokemons, nil
}

func (r *pokemonRepository) UpdatePokemonByName(ctx context.Context, name string, update models.PokemonUpdate) (models.Pokemon, error) {
	if update.IsEmpty() {
		return r.FindPokemonByName(ctx, name)
	}
	return r.update(ctx, sq.Eq{"name": name}, update)
}

func (r *pokemonRepository) UpdatePokemonByID(ctx context.Context, pokemonID string, update models.PokemonUpdate) (models.Pokemon, error) {
	if update.IsEmpty() {
		return r.FindPokemonByID(ctx, pokemonID)
	}
	return r.update(ctx, sq.Eq{"id": pokemonID}, update)
}

func (r *pokemonRepository) update(ctx context.Context, where sq.Eq, update models.PokemonUpdate) (models.Pokemon, error) {
	query, args, err := buildUpdatePokemonQuery(where, update)
	if err != nil {
		return models.Pokemon{}, err
	}

	pokemon, err := scanPokemon(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Pokemon{}, ErrPokemonNotFound
		case r.db.classify(err) == UniqueViolation:
			return models.Pokemon{}, ErrPokemonAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*pokemonRepository.update").Msg("error updating pokemon")
		return models.Pokemon{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return pokemon, nil
}

func (r *pokemonRepository) DeletePokemonByName(ctx context.Context, name string) error {
	return r.delete(ctx, deletePokemonByName, name)
}

func (r *pokemonRepository) DeletePokemonByID(ctx context.Context, pokemonID string) error {
	return r.delete(ctx, deletePokemonByID, pokemonID)
}

// delete relies on ON DELETE RESTRICT: a referenced row is never removed.
func (r *pokemonRepository) delete(ctx context.Context, query, arg string) error {
	res, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrPokemonInUse
		}
		logger.FromContext(ctx).Err(err).Str("func", "*pokemonRepository.delete").Msg("error deleting pokemon")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affectedOrNotFound(res, ErrPokemonNotFound)
}
