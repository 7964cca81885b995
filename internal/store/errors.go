package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user insert or an email change
	// hits the UNIQUE constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when the user has no account row.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPokemonNotFound is returned when no catalog row matches the given
	// name or id.
	ErrPokemonNotFound = errors.New("pokemon not found")

	// ErrPokemonAlreadyExists is returned by explicit creates and renames that
	// collide with an existing name. Insert-or-get never returns it.
	ErrPokemonAlreadyExists = errors.New("pokemon already exists")

	// ErrPokemonInUse is returned when a catalog row cannot be deleted because
	// ownership records still reference it.
	ErrPokemonInUse = errors.New("pokemon is referenced by caught pokemons")

	// ErrCaughtPokemonNotFoundOrNotOwned is returned by the owner-scoped
	// find, update and delete when no row matches both the record id and the
	// user id. A missing record and another user's record look the same.
	ErrCaughtPokemonNotFoundOrNotOwned = errors.New("caught pokemon not found or not owned")

	// ErrReferenceNotFound is returned when an insert or update points at a
	// user or pokemon row that does not exist (foreign key violation).
	ErrReferenceNotFound = errors.New("referenced row does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query with the
	// query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by NewDB for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
