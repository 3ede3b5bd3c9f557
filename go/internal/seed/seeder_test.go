package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	sportsapi "github.com/mcdev12/gridiron/go/clients/sports_api_client"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sports/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	teams      []sportsapi.Team
	rosters    map[int][]sportsapi.Player
	rosterErrs map[int]error
	fetched    []int
}

func (f *fakeSource) FetchTeams(ctx context.Context) ([]sportsapi.Team, error) {
	return f.teams, nil
}

func (f *fakeSource) FetchPlayers(ctx context.Context, externalTeamID int) ([]sportsapi.Player, error) {
	f.fetched = append(f.fetched, externalTeamID)
	if err := f.rosterErrs[externalTeamID]; err != nil {
		return nil, err
	}
	return f.rosters[externalTeamID], nil
}

func (f *fakeSource) MapExternalTeam(apiTeam sportsapi.Team) (*models.Team, error) {
	if apiTeam.City == nil {
		return nil, base.ErrSkipRecord
	}
	return &models.Team{Name: apiTeam.Name, City: *apiTeam.City}, nil
}

func (f *fakeSource) MapExternalPlayer(apiPlayer sportsapi.Player) (*models.Player, error) {
	if apiPlayer.Name == "" {
		return nil, base.ErrSkipRecord
	}
	return &models.Player{Name: apiPlayer.Name}, nil
}

type seededTeam struct {
	team    models.Team
	players []models.Player
}

type fakeStore struct {
	seeded []seededTeam
	names  map[string]bool
	resets int
}

func newFakeStore() *fakeStore {
	return &fakeStore{names: make(map[string]bool)}
}

func (f *fakeStore) Reset(ctx context.Context) error {
	f.resets++
	f.seeded = nil
	f.names = make(map[string]bool)
	return nil
}

func (f *fakeStore) SeedTeam(ctx context.Context, team models.Team, players []models.Player) (int64, error) {
	if f.names[team.Name] {
		return 0, fmt.Errorf("%w (teams_name_key)", ErrDuplicateTeam)
	}
	f.names[team.Name] = true
	f.seeded = append(f.seeded, seededTeam{team: team, players: players})
	return int64(len(f.seeded)), nil
}

func city(s string) *string { return &s }

func TestRunSeedsTeamsWithTheirOwnRosters(t *testing.T) {
	source := &fakeSource{
		teams: []sportsapi.Team{
			{ID: 1, Name: "Test Team", City: city("Test City")},
			{ID: 33, Name: "AFC"},
			{ID: 2, Name: "Other Team", City: city("Other City")},
		},
		rosters: map[int][]sportsapi.Player{
			1: {{ID: 10, Name: "Player One"}, {ID: 11, Name: ""}},
			2: {{ID: 20, Name: "Player Two"}},
		},
	}
	store := newFakeStore()

	result, err := NewSeeder(source, store, 0, clockwork.NewRealClock()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Teams)
	assert.Equal(t, 1, result.SkippedTeams)
	assert.Equal(t, 2, result.Players)
	assert.Empty(t, result.Errors)
	assert.Equal(t, []int{1, 2}, source.fetched, "placeholder records are never fetched")

	require.Len(t, store.seeded, 2)
	assert.Equal(t, "Test Team", store.seeded[0].team.Name)
	require.Len(t, store.seeded[0].players, 1)
	assert.Equal(t, "Player One", store.seeded[0].players[0].Name)
	assert.Equal(t, "Player Two", store.seeded[1].players[0].Name)
}

func TestRunCollectsPerTeamErrors(t *testing.T) {
	source := &fakeSource{
		teams: []sportsapi.Team{
			{ID: 1, Name: "Test Team", City: city("Test City")},
			{ID: 2, Name: "Test Team", City: city("Test City")},
			{ID: 3, Name: "Broken Team", City: city("Nowhere")},
		},
		rosterErrs: map[int]error{3: errors.New("upstream unavailable")},
	}
	store := newFakeStore()

	result, err := NewSeeder(source, store, 0, clockwork.NewRealClock()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Teams)
	assert.Equal(t, 1, result.SkippedTeams)
	require.Len(t, result.Errors, 2)
	assert.ErrorIs(t, result.Errors[0], ErrDuplicateTeam)
	assert.Contains(t, result.Errors[1].Error(), "upstream unavailable")
}

func TestRunWaitsBetweenTeams(t *testing.T) {
	source := &fakeSource{
		teams: []sportsapi.Team{
			{ID: 1, Name: "Test Team", City: city("Test City")},
			{ID: 2, Name: "Other Team", City: city("Other City")},
		},
	}
	clock := clockwork.NewFakeClock()
	seeder := NewSeeder(source, newFakeStore(), DefaultDelay, clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan *Result, 1)
	go func() {
		result, err := seeder.Run(ctx)
		assert.NoError(t, err)
		done <- result
	}()

	clock.BlockUntil(1)
	select {
	case <-done:
		t.Fatal("second team seeded before the delay elapsed")
	default:
	}

	clock.Advance(DefaultDelay)
	select {
	case result := <-done:
		assert.Equal(t, 2, result.Teams)
	case <-time.After(time.Second):
		t.Fatal("seeder did not resume after the delay")
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	source := &fakeSource{
		teams: []sportsapi.Team{
			{ID: 1, Name: "Test Team", City: city("Test City")},
			{ID: 2, Name: "Other Team", City: city("Other City")},
		},
	}
	clock := clockwork.NewFakeClock()
	store := newFakeStore()

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() {
		_, err := NewSeeder(source, store, DefaultDelay, clock).Run(ctx)
		errs <- err
	}()

	clock.BlockUntil(1)
	cancel()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, store.seeded, 1)
	case <-time.After(time.Second):
		t.Fatal("seeder ignored cancellation")
	}
}
