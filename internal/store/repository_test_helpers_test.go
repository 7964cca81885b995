package store

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// newMockDB returns a *DB over sqlmock that classifies errors like PostgreSQL.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return &DB{
		DB:                 conn,
		driver:             "pgx",
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func pokemonRows() *sqlmock.Rows {
	return sqlmock.NewRows(pokemonColumns)
}

func addPokemonRow(rows *sqlmock.Rows, id, name string) *sqlmock.Rows {
	return rows.AddRow(id, name, int64(25), int64(4), int64(60), int64(112), `["electric"]`,
		"https://img/"+name+".png", testNow, testNow)
}


func sqlResult(affected int64) driver.Result {
	return sqlmock.NewResult(0, affected)
}
