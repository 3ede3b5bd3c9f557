package player

import (
	"context"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	SearchPlayers(ctx context.Context, search string) ([]models.Player, error)
	ListPlayersByGroup(ctx context.Context, group models.RosterGroup) ([]models.Player, error)
	GetFirstTeamID(ctx context.Context, playerID int64) (*int64, error)
}

// App handles player read logic
type App struct {
	repo PlayerRepository
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetPlayer retrieves a player by ID with FirstTeamID filled in
func (a *App) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	p, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	teamID, err := a.repo.GetFirstTeamID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.FirstTeamID = teamID
	return p, nil
}

// ListPlayers returns every player, or those whose name contains search.
// LIKE wildcards in search are not escaped.
func (a *App) ListPlayers(ctx context.Context, search string) ([]models.Player, error) {
	var (
		players []models.Player
		err     error
	)
	if search == "" {
		players, err = a.repo.ListPlayers(ctx)
	} else {
		players, err = a.repo.SearchPlayers(ctx, search)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// ListPlayersByGroup returns all players whose group matches exactly, sorted by name
func (a *App) ListPlayersByGroup(ctx context.Context, group models.RosterGroup) ([]models.Player, error) {
	players, err := a.repo.ListPlayersByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by group: %w", err)
	}
	return players, nil
}

// FirstTeam returns the id of the team the player is shown under, nil when unlinked
func (a *App) FirstTeam(ctx context.Context, playerID int64) (*int64, error) {
	return a.repo.GetFirstTeamID(ctx, playerID)
}
