package teams

import (
	"context"
	"testing"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	teams  map[int64]models.Team
	roster map[int64][]models.Player
}

func (f *fakeRepo) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (f *fakeRepo) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.teams {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) ListRoster(ctx context.Context, teamID int64) ([]models.Player, error) {
	return f.roster[teamID], nil
}

type fakePlayerApp struct {
	byGroup map[models.RosterGroup][]models.Player
	asked   []models.RosterGroup
}

func (f *fakePlayerApp) ListPlayersByGroup(ctx context.Context, group models.RosterGroup) ([]models.Player, error) {
	f.asked = append(f.asked, group)
	return f.byGroup[group], nil
}

func teamID(id int64) *int64 { return &id }

func TestRosterByGroupFirstTeamWins(t *testing.T) {
	repo := &fakeRepo{teams: map[int64]models.Team{
		1: {ID: 1, Name: "Alphas"},
		2: {ID: 2, Name: "Betas"},
	}}
	players := &fakePlayerApp{byGroup: map[models.RosterGroup][]models.Player{
		models.GroupOffense: {
			{ID: 10, Name: "Adams", Group: models.GroupOffense, FirstTeamID: teamID(1)},
			{ID: 11, Name: "Baker", Group: models.GroupOffense, FirstTeamID: teamID(2)},
			// linked to teams 1 and 2; shown only under 1
			{ID: 12, Name: "Carter", Group: models.GroupOffense, FirstTeamID: teamID(1)},
			{ID: 13, Name: "Dunn", Group: models.GroupOffense},
		},
	}}
	app := NewApp(repo, players)
	ctx := context.Background()

	first, err := app.RosterByGroup(ctx, 1, models.GroupOffense)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Adams", first[0].Name)
	assert.Equal(t, "Carter", first[1].Name)

	second, err := app.RosterByGroup(ctx, 2, models.GroupOffense)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Baker", second[0].Name)

	empty, err := app.RosterByGroup(ctx, 2, models.GroupDefense)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRosterByGroupValidatesInput(t *testing.T) {
	players := &fakePlayerApp{}
	app := NewApp(&fakeRepo{teams: map[int64]models.Team{1: {ID: 1}}}, players)
	ctx := context.Background()

	_, err := app.RosterByGroup(ctx, 99, models.GroupDefense)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = app.RosterByGroup(ctx, 1, models.GroupUnknown)
	assert.ErrorIs(t, err, ErrInvalidGroup)

	assert.Empty(t, players.asked)
}

func TestListRosterRequiresTeam(t *testing.T) {
	repo := &fakeRepo{
		teams:  map[int64]models.Team{4321: {ID: 4321, Name: "Test Team"}},
		roster: map[int64][]models.Player{4321: {{ID: 1, Name: "Player One"}}},
	}
	app := NewApp(repo, &fakePlayerApp{})

	roster, err := app.ListRoster(context.Background(), 4321)
	require.NoError(t, err)
	assert.Len(t, roster, 1)

	_, err = app.ListRoster(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
