package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "email", "username", "password", "image_url", "created_at"}

func TestRepositoryCreateUserMapsUniqueViolation(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "alice@test.com", "hash", "/static/default-pic.png").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	repo := NewRepository(database)
	_, err = repo.CreateUser(context.Background(), CreateUserRequest{
		Username:     "alice",
		Email:        "alice@test.com",
		PasswordHash: "hash",
		ImageURL:     "/static/default-pic.png",
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "users_username_key")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateUserInsideScope(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, "alice@test.com", "alice", "hash", "/static/default-pic.png", now))
	mock.ExpectCommit()

	scope, err := sqlutil.Begin(context.Background(), database)
	require.NoError(t, err)
	ctx := scope.Context(context.Background())

	repo := NewRepository(database)
	user, err := repo.CreateUser(ctx, CreateUserRequest{Username: "alice", Email: "alice@test.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "hash", user.Password)

	require.NoError(t, scope.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetUserNotFound(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err = NewRepository(database).GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySearchUsersPassesTerm(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	now := time.Now()
	mock.ExpectQuery("WHERE username LIKE").
		WithArgs("ali").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice@test.com", "alice", "h", "/static/default-pic.png", now).
			AddRow(2, "alicia@test.com", "alicia", "h", "/static/default-pic.png", now))

	users, err := NewRepository(database).SearchUsers(context.Background(), "ali")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alicia", users[1].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteUser(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectExec("DELETE FROM users").WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(database)
	require.NoError(t, repo.DeleteUser(context.Background(), 1))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 2), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
