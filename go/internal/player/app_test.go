package player

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	players []models.Player
	links   map[int64][]int64 // player id -> team ids
}

func (m *memoryRepo) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	for _, p := range m.players {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepo) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return m.players, nil
}

func (m *memoryRepo) SearchPlayers(ctx context.Context, search string) ([]models.Player, error) {
	var out []models.Player
	for _, p := range m.players {
		if strings.Contains(p.Name, search) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListPlayersByGroup(ctx context.Context, group models.RosterGroup) ([]models.Player, error) {
	var out []models.Player
	for _, p := range m.players {
		if p.Group == group {
			p.FirstTeamID, _ = m.GetFirstTeamID(ctx, p.ID)
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepo) GetFirstTeamID(ctx context.Context, playerID int64) (*int64, error) {
	teams := m.links[playerID]
	if len(teams) == 0 {
		return nil, nil
	}
	first := teams[0]
	for _, id := range teams[1:] {
		if id < first {
			first = id
		}
	}
	return &first, nil
}

func TestListPlayersSearch(t *testing.T) {
	repo := &memoryRepo{players: []models.Player{
		{ID: 1, Name: "Player One"},
		{ID: 2, Name: "Player Two"},
		{ID: 3, Name: "Three"},
	}}
	app := NewApp(repo)
	ctx := context.Background()

	all, err := app.ListPlayers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := app.ListPlayers(ctx, "Two")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Player Two", found[0].Name)

	none, err := app.ListPlayers(ctx, "two")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetPlayerAttachesFirstTeam(t *testing.T) {
	repo := &memoryRepo{
		players: []models.Player{{ID: 1, Name: "Traded"}, {ID: 2, Name: "Free Agent"}},
		links:   map[int64][]int64{1: {9, 4}},
	}
	app := NewApp(repo)

	p, err := app.GetPlayer(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p.FirstTeamID)
	assert.Equal(t, int64(4), *p.FirstTeamID)

	p, err = app.GetPlayer(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, p.FirstTeamID)

	_, err = app.GetPlayer(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
