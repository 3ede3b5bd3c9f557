package teams

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teamColumns = []string{"id", "name", "city", "coach", "owner", "stadium", "established", "lookup_id", "logo"}

func TestRepositoryGetTeam(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("SELECT (.+) FROM teams").
		WithArgs(int64(4321)).
		WillReturnRows(sqlmock.NewRows(teamColumns).
			AddRow(4321, "Test Team", "Test City", "Test Coach", nil, "Test Stadium", 1960, 15, "/logo.png"))
	mock.ExpectQuery("SELECT (.+) FROM teams").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(teamColumns))

	repo := NewRepository(database)
	team, err := repo.GetTeam(context.Background(), 4321)
	require.NoError(t, err)
	assert.Equal(t, "Test Team", team.Name)
	assert.Nil(t, team.Owner)
	require.NotNil(t, team.Established)
	assert.Equal(t, 1960, *team.Established)

	_, err = repo.GetTeam(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListRoster(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectQuery("JOIN team_players tp").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "age", "height", "weight", "college", "group", "position",
			"number", "salary", "seasons", "image_url", "lookup_id",
		}).AddRow(5, "Kicker", 30, "", "", "", "Special Teams", "K", 3, "Unknown", 9, "/k.png", nil))

	roster, err := NewRepository(database).ListRoster(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Special Teams", string(roster[0].Group))
	assert.Nil(t, roster[0].LookupID)
	require.NoError(t, mock.ExpectationsWereMet())
}
