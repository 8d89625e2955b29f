package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/model"
)

func newUsersMock(t *testing.T) (pgxmock.PgxPoolIface, *UsersRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUsersRepository(mock)
}

func TestUsersCreate(t *testing.T) {
	mock, repo := newUsersMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a", "a@b.c", "$2a$12$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	user, err := repo.Create(context.Background(), &model.User{
		Username:     "a",
		Email:        "a@b.c",
		PasswordHash: "$2a$12$hash",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersCreateDuplicateEmail(t *testing.T) {
	mock, repo := newUsersMock(t)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key", TableName: "users"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a", "a@b.c", "hash").
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), &model.User{
		Username: "a", Email: "a@b.c", PasswordHash: "hash",
	})

	var got *pgconn.PgError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "23505", got.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersGetByEmail(t *testing.T) {
	mock, repo := newUsersMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password_hash, created_at")).
		WithArgs("a@b.c").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(int64(2), "a", "a@b.c", "hash", now))

	user, err := repo.GetByEmail(context.Background(), "a@b.c")

	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "a", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersGetByEmailNotFound(t *testing.T) {
	mock, repo := newUsersMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password_hash, created_at")).
		WithArgs("missing@b.c").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@b.c")

	assert.True(t, errors.Is(err, pgx.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
