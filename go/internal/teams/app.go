package teams

import (
	"context"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	ListRoster(ctx context.Context, teamID int64) ([]models.Player, error)
}

// PlayerApp is the slice of the player app that roster grouping relies on
type PlayerApp interface {
	ListPlayersByGroup(ctx context.Context, group models.RosterGroup) ([]models.Player, error)
}

// App handles teams read logic
type App struct {
	repo      TeamsRepository
	playerApp PlayerApp
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, playerApp PlayerApp) *App {
	return &App{
		repo:      repo,
		playerApp: playerApp,
	}
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListAllTeams retrieves all teams
func (a *App) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all teams: %w", err)
	}
	return teams, nil
}

// ListRoster retrieves the full roster of a team
func (a *App) ListRoster(ctx context.Context, teamID int64) ([]models.Player, error) {
	if _, err := a.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	players, err := a.repo.ListRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return players, nil
}

// RosterByGroup returns the players of group that are shown under teamID,
// sorted by name. A player linked to several teams only appears under the
// first of them (lowest team id), so a later team's page omits them.
func (a *App) RosterByGroup(ctx context.Context, teamID int64, group models.RosterGroup) ([]models.Player, error) {
	switch group {
	case models.GroupOffense, models.GroupDefense, models.GroupSpecialTeams:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroup, group)
	}

	if _, err := a.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	players, err := a.playerApp.ListPlayersByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster by group: %w", err)
	}

	roster := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p.FirstTeamID != nil && *p.FirstTeamID == teamID {
			roster = append(roster, p)
		}
	}
	return roster, nil
}
