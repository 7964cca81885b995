package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-poke-keeper/models"
)

var (
	userColumns          = []string{"id", "email", "password_hash", "created_at"}
	accountColumns       = []string{"id", "user_id", "balance", "created_at"}
	pokemonColumns       = []string{"id", "name", "external_id", "height", "weight", "base_experience", "types", "sprite_url", "created_at", "updated_at"}
	caughtPokemonColumns = []string{"id", "user_id", "pokemon_id", "caught_at"}
)

const (
	createUser = `INSERT INTO users (id, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
	FROM users
	WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, created_at
	FROM users
	WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createAccount = `INSERT INTO accounts (id, user_id, balance)
	VALUES ($1, $2, $3)
	RETURNING id, user_id, balance, created_at;`

	findAccountByUserID = `SELECT id, user_id, balance, created_at
	FROM accounts
	WHERE user_id = $1;`

	findPokemonByName = `SELECT id, name, external_id, height, weight, base_experience, types, sprite_url, created_at, updated_at
	FROM pokemons
	WHERE name = $1;`

	findPokemonByID = `SELECT id, name, external_id, height, weight, base_experience, types, sprite_url, created_at, updated_at
	FROM pokemons
	WHERE id = $1;`

	createPokemon = `INSERT INTO pokemons (id, name, external_id, height, weight, base_experience, types, sprite_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, name, external_id, height, weight, base_experience, types, sprite_url, created_at, updated_at;`

	// insertOrGetPokemon returns no row when another writer already owns the name.
	insertOrGetPokemon = `INSERT INTO pokemons (id, name, external_id, height, weight, base_experience, types, sprite_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (name) DO NOTHING
	RETURNING id, name, external_id, height, weight, base_experience, types, sprite_url, created_at, updated_at;`

	deletePokemonByName = `DELETE FROM pokemons WHERE name = $1;`

	deletePokemonByID = `DELETE FROM pokemons WHERE id = $1;`

	createCaughtPokemon = `INSERT INTO caught_pokemons (id, user_id, pokemon_id)
	VALUES ($1, $2, $3)
	RETURNING id, user_id, pokemon_id, caught_at;`

	// findOwnedCaughtPokemon, like deleteOwnedCaughtPokemon, never returns a
	// row owned by another user.
	findOwnedCaughtPokemon = `SELECT id, user_id, pokemon_id, caught_at
	FROM caught_pokemons
	WHERE id = $1 AND user_id = $2;`

	// deleteOwnedCaughtPokemon matches on both id and owner in one statement.
	deleteOwnedCaughtPokemon = `DELETE FROM caught_pokemons WHERE id = $1 AND user_id = $2;`
)

// psql is the statement builder shared by all dynamic queries. Both supported
// drivers accept $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListUsersQuery() (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
}

func buildListPokemonsQuery() (string, []any, error) {
	return psql.Select(pokemonColumns...).
		From(models.Pokemon{}.TableName()).
		OrderBy("name").
		ToSql()
}

// buildListCaughtPokemonsByUserQuery selects the user's ownership records
// joined with their catalog rows, oldest first.
func buildListCaughtPokemonsByUserQuery(userID string) (string, []any, error) {
	columns := make([]string, 0, len(caughtPokemonColumns)+len(pokemonColumns))
	columns = append(columns, prefixed("c", caughtPokemonColumns)...)
	columns = append(columns, prefixed("p", pokemonColumns)...)

	return psql.Select(columns...).
		From("caught_pokemons c").
		Join("pokemons p ON p.id = c.pokemon_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.caught_at", "c.id").
		ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE of one user row.
func buildUpdateUserQuery(userID string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty user update", ErrBuildingSQLQuery)
	}

	q := psql.Update(models.User{}.TableName())
	if update.Email != nil {
		q = q.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		q = q.Set("password_hash", *update.PasswordHash)
	}

	return q.Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

// buildUpdatePokemonQuery builds a partial UPDATE of the catalog row matched
// by where. updated_at is always refreshed.
func buildUpdatePokemonQuery(where sq.Eq, update models.PokemonUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty pokemon update", ErrBuildingSQLQuery)
	}

	q := psql.Update(models.Pokemon{}.TableName())
	if update.Name != nil {
		q = q.Set("name", *update.Name)
	}
	if update.ExternalID != nil {
		q = q.Set("external_id", *update.ExternalID)
	}
	if update.Height != nil {
		q = q.Set("height", *update.Height)
	}
	if update.Weight != nil {
		q = q.Set("weight", *update.Weight)
	}
	if update.BaseExperience != nil {
		q = q.Set("base_experience", *update.BaseExperience)
	}
	if update.Types != nil {
		types, err := encodeTypes(*update.Types)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		q = q.Set("types", types)
	}
	if update.SpriteURL != nil {
		q = q.Set("sprite_url", *update.SpriteURL)
	}

	return q.Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(where).
		Suffix("RETURNING " + strings.Join(pokemonColumns, ", ")).
		ToSql()
}

// buildUpdateCaughtPokemonQuery repoints one ownership record, matched on
// both id and owner, at another pokemon. The owner column is never written.
func buildUpdateCaughtPokemonQuery(id, userID string, update models.CaughtPokemonUpdate) (string, []any, error) {
	if update.PokemonID == nil {
		return "", nil, fmt.Errorf("%w: empty caught pokemon update", ErrBuildingSQLQuery)
	}

	return psql.Update(models.CaughtPokemon{}.TableName()).
		Set("pokemon_id", *update.PokemonID).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(caughtPokemonColumns, ", ")).
		ToSql()
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// encodeTypes stores the type list as a JSON array in a TEXT column, which
// both drivers handle the same way.
func encodeTypes(types []string) (string, error) {
	if types == nil {
		types = []string{}
	}
	b, err := json.Marshal(types)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTypes(raw string) ([]string, error) {
	types := []string{}
	if raw == "" {
		return types, nil
	}
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		return nil, err
	}
	return types, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, (*timeScanner)(&u.CreatedAt))
	return u, err
}

func scanAccount(row rowScanner) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.AccountID, &a.UserID, &a.Balance, (*timeScanner)(&a.CreatedAt))
	return a, err
}

func scanPokemon(row rowScanner) (models.Pokemon, error) {
	var (
		p     models.Pokemon
		types string
	)
	if err := row.Scan(&p.PokemonID, &p.Name, &p.ExternalID, &p.Height, &p.Weight,
		&p.BaseExperience, &types, &p.SpriteURL, (*timeScanner)(&p.CreatedAt), (*timeScanner)(&p.UpdatedAt)); err != nil {
		return models.Pokemon{}, err
	}

	decoded, err := decodeTypes(types)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("error decoding pokemon types: %w", err)
	}
	p.Types = decoded

	return p, nil
}

func scanCaughtPokemon(row rowScanner) (models.CaughtPokemon, error) {
	var c models.CaughtPokemon
	err := row.Scan(&c.CaughtPokemonID, &c.UserID, &c.PokemonID, (*timeScanner)(&c.CaughtAt))
	return c, err
}

// scanCaughtPokemonWithPokemon scans a row produced by
// buildListCaughtPokemonsByUserQuery.
func scanCaughtPokemonWithPokemon(row rowScanner) (models.CaughtPokemon, error) {
	var (
		c     models.CaughtPokemon
		p     models.Pokemon
		types string
	)
	if err := row.Scan(&c.CaughtPokemonID, &c.UserID, &c.PokemonID, (*timeScanner)(&c.CaughtAt),
		&p.PokemonID, &p.Name, &p.ExternalID, &p.Height, &p.Weight,
		&p.BaseExperience, &types, &p.SpriteURL, (*timeScanner)(&p.CreatedAt), (*timeScanner)(&p.UpdatedAt)); err != nil {
		return models.CaughtPokemon{}, err
	}

	decoded, err := decodeTypes(types)
	if err != nil {
		return models.CaughtPokemon{}, fmt.Errorf("error decoding pokemon types: %w", err)
	}
	p.Types = decoded
	c.Pokemon = &p

	return c, nil
}

// sqliteTimestampLayouts are the text forms SQLite stores timestamps in.
var sqliteTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timeScanner scans a timestamp delivered either as time.Time or as text.
// SQLite hands out text when it cannot see the declared column type, which
// is the case for RETURNING clauses.
type timeScanner time.Time

func (t *timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = timeScanner(v)
		return nil
	case nil:
		*t = timeScanner(time.Time{})
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp value of type %T", src)
	}
}

func (t *timeScanner) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqliteTimestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = timeScanner(parsed)
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", s)
}
