// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

var testUser = models.User{UserID: "u-1", Email: "ash@example.com", PasswordHash: "$2a$04$hash"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(testUser.UserID, testUser.Email, testUser.PasswordHash).
		WillReturnRows(userRows().AddRow(testUser.UserID, testUser.Email, testUser.PasswordHash, testNow))
	mock.ExpectCommit()

	created, err := repo.CreateUser(context.Background(), testUser, nil)

	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID)
	assert.Equal(t, testUser.Email, created.Email)
	assert.Equal(t, testNow, created.CreatedAt)
}

func TestCreateUser_WithAccount(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRows().AddRow(testUser.UserID, testUser.Email, testUser.PasswordHash, testNow))
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("a-1", "u-1", int64(100)).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow("a-1", "u-1", int64(100), testNow))
	mock.ExpectCommit()

	_, err := repo.CreateUser(context.Background(), testUser, &models.Account{AccountID: "a-1", Balance: 100})

	require.NoError(t, err)
}

func TestCreateUser_AccountFailureRollsBack(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRows().AddRow(testUser.UserID, testUser.Email, testUser.PasswordHash, testNow))
	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(context.Background(), testUser, &models.Account{AccountID: "a-1", Balance: -1})

	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(context.Background(), testUser, nil)

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRows().AddRow(testUser.UserID, testUser.Email, testUser.PasswordHash, testNow))
	mock.ExpectCommit()

	_, err := repo.CreateUser(context.Background(), testUser, nil)

	require.NoError(t, err)
}

func TestCreateUser_BeginError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("db down"))

	_, err := repo.CreateUser(context.Background(), testUser, nil)

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestFindUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
					WithArgs(testUser.Email).
					WillReturnRows(userRows().AddRow(testUser.UserID, testUser.Email, testUser.PasswordHash, testNow))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(userRows())
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("network"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			user, err := repo.FindUserByEmail(context.Background(), testUser.Email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testUser.PasswordHash, user.PasswordHash)
		})
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").WithArgs("missing").WillReturnRows(userRows())

	_, err := repo.FindUserByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY created_at, id").
		WillReturnRows(userRows().
			AddRow("u-1", "a@example.com", "h1", testNow).
			AddRow("u-2", "b@example.com", "h2", testNow))

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-2", users[1].UserID)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(userRows())

	users, err := repo.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUpdateUser(t *testing.T) {
	email := "new@example.com"

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE users SET email = \\$1 WHERE id = \\$2").
					WithArgs(email, "u-1").
					WillReturnRows(userRows().AddRow("u-1", email, "h", testNow))
			},
		},
		{
			name: "duplicate email",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name: "missing user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE users").WillReturnRows(userRows())
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			user, err := repo.UpdateUser(context.Background(), "u-1", models.UserUpdate{Email: &email})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, email, user.Email)
		})
	}
}

func TestUpdateUser_EmptyReadsCurrentRow(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("u-1").
		WillReturnRows(userRows().AddRow("u-1", "a@example.com", "h", testNow))

	user, err := repo.UpdateUser(context.Background(), "u-1", models.UserUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users WHERE id = \\$1").WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteUser(context.Background(), "u-1"))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteUser(context.Background(), "u-1"), ErrUserNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").WillReturnError(errors.New("network"))

		assert.ErrorIs(t, repo.DeleteUser(context.Background(), "u-1"), ErrExecutingStatement)
	})
}

func TestFindAccountByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE user_id = \\$1").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow("a-1", "u-1", int64(50), testNow))
	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("u-2").
		WillReturnRows(sqlmock.NewRows(accountColumns))

	account, err := repo.FindAccountByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), account.Balance)

	_, err = repo.FindAccountByUserID(context.Background(), "u-2")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
