package favorites

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existsRow(v bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(v)
}

func TestRepositoryToggleTeamAddsAndRemoves(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM teams WHERE id").WithArgs(int64(4321)).WillReturnRows(existsRow(true))
	mock.ExpectQuery("FROM favorite_teams").WithArgs(int64(1), int64(4321)).WillReturnRows(existsRow(false))
	mock.ExpectExec("INSERT INTO favorite_teams").WithArgs(int64(1), int64(4321)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM teams WHERE id").WithArgs(int64(4321)).WillReturnRows(existsRow(true))
	mock.ExpectQuery("FROM favorite_teams").WithArgs(int64(1), int64(4321)).WillReturnRows(existsRow(true))
	mock.ExpectExec("DELETE FROM favorite_teams").WithArgs(int64(1), int64(4321)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewRepository(database)
	result, err := repo.ToggleTeam(context.Background(), 1, 4321)
	require.NoError(t, err)
	assert.Equal(t, Added, result)

	result, err = repo.ToggleTeam(context.Background(), 1, 4321)
	require.NoError(t, err)
	assert.Equal(t, Removed, result)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryTogglePlayerMissingTarget(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM players WHERE id").WithArgs(int64(9)).WillReturnRows(existsRow(false))
	mock.ExpectRollback()

	_, err = NewRepository(database).TogglePlayer(context.Background(), 1, 9)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Two requests may both see "absent" and both insert. The composite key plus
// ON CONFLICT DO NOTHING keeps a single row and the loser still reports Added.
func TestRepositoryToggleRacingInsertIsAbsorbed(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM players WHERE id").WithArgs(int64(5)).WillReturnRows(existsRow(true))
	mock.ExpectQuery("FROM favorite_players").WithArgs(int64(1), int64(5)).WillReturnRows(existsRow(false))
	mock.ExpectExec("ON CONFLICT \\(user_id, player_id\\) DO NOTHING").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	result, err := NewRepository(database).TogglePlayer(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, Added, result)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryToggleDeletedUserIsUnauthorized(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM teams WHERE id").WithArgs(int64(3)).WillReturnRows(existsRow(true))
	mock.ExpectQuery("FROM favorite_teams").WithArgs(int64(77), int64(3)).WillReturnRows(existsRow(false))
	mock.ExpectExec("INSERT INTO favorite_teams").
		WithArgs(int64(77), int64(3)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "favorite_teams_user_id_fkey"})
	mock.ExpectRollback()

	_, err = NewRepository(database).ToggleTeam(context.Background(), 77, 3)
	assert.ErrorIs(t, err, ErrUnauthorized)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryToggleJoinsRequestScope(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM teams WHERE id").WillReturnRows(existsRow(true))
	mock.ExpectQuery("FROM favorite_teams").WillReturnRows(existsRow(false))
	mock.ExpectExec("INSERT INTO favorite_teams").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	scope, err := sqlutil.Begin(context.Background(), database)
	require.NoError(t, err)
	ctx := scope.Context(context.Background())

	_, err = NewRepository(database).ToggleTeam(ctx, 1, 2)
	require.NoError(t, err)
	require.NoError(t, scope.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListFavoritePlayers(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("JOIN favorite_players fp").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "age", "height", "weight", "college", "group", "position",
			"number", "salary", "seasons", "image_url", "lookup_id",
		}).
			AddRow(1, "Kicker", nil, "", "", "", "Special Teams", "K", nil, "Unknown", nil, "", nil).
			AddRow(2, "Mystery", nil, "", "", "", "Unknown", "", nil, "Unknown", nil, "", nil))

	players, err := NewRepository(database).ListFavoritePlayers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Special Teams", string(players[0].Group))
	require.NoError(t, mock.ExpectationsWereMet())
}
