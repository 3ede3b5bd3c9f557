package player

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var playerColumns = []string{
	"id", "name", "age", "height", "weight", "college", "group", "position",
	"number", "salary", "seasons", "image_url", "lookup_id",
}

func TestRepositoryGetPlayer(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("SELECT (.+) FROM players").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(playerColumns).
			AddRow(3, "Player One", 27, `6' 3"`, "210 lbs", "Alabama", "Offense", "QB", 12, "Unknown", nil, "/p.png", 555))
	mock.ExpectQuery("SELECT (.+) FROM players").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(playerColumns))

	repo := NewRepository(database)
	p, err := repo.GetPlayer(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Player One", p.Name)
	assert.Equal(t, models.GroupOffense, p.Group)
	require.NotNil(t, p.Number)
	assert.Equal(t, 12, *p.Number)
	assert.Nil(t, p.Seasons)
	require.NotNil(t, p.LookupID)
	assert.Equal(t, 555, *p.LookupID)

	_, err = repo.GetPlayer(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListPlayersByGroupReadsFirstTeam(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	cols := append(append([]string{}, playerColumns...), "first_team_id")
	mock.ExpectQuery(`WHERE p."group" = \$1`).
		WithArgs("Defense").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Adams", nil, "", "", "", "Defense", "LB", nil, "Unknown", nil, "", nil, 7).
			AddRow(2, "Baker", nil, "", "", "", "Defense", "CB", nil, "Unknown", nil, "", nil, nil))

	players, err := NewRepository(database).ListPlayersByGroup(context.Background(), models.GroupDefense)
	require.NoError(t, err)
	require.Len(t, players, 2)
	require.NotNil(t, players[0].FirstTeamID)
	assert.Equal(t, int64(7), *players[0].FirstTeamID)
	assert.Nil(t, players[1].FirstTeamID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetFirstTeamIDUnlinked(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("SELECT team_id FROM team_players").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"team_id"}))

	teamID, err := NewRepository(database).GetFirstTeamID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, teamID)
	require.NoError(t, mock.ExpectationsWereMet())
}
