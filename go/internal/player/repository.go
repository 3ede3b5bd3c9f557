package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/player/db"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
)

// Repository implements player data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new player repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		db: database,
	}
}

func (r *Repository) queries(ctx context.Context) *db.Queries {
	return db.New(sqlutil.Conn(ctx, r.db))
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	p, err := r.queries(ctx).GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return r.dbPlayerToModel(p), nil
}

// ListPlayers retrieves all players ordered by ID
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := r.queries(ctx).ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return r.dbPlayersToModels(rows), nil
}

// SearchPlayers retrieves players whose name contains search (case-sensitive)
func (r *Repository) SearchPlayers(ctx context.Context, search string) ([]models.Player, error) {
	rows, err := r.queries(ctx).SearchPlayers(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	return r.dbPlayersToModels(rows), nil
}

// ListPlayersByGroup retrieves every player in group, sorted by name, with
// FirstTeamID populated
func (r *Repository) ListPlayersByGroup(ctx context.Context, group models.RosterGroup) ([]models.Player, error) {
	rows, err := r.queries(ctx).ListPlayersByGroup(ctx, string(group))
	if err != nil {
		return nil, fmt.Errorf("failed to list players by group: %w", err)
	}

	players := make([]models.Player, len(rows))
	for i, row := range rows {
		p := r.dbPlayerToModel(row.Player)
		p.FirstTeamID = sqlutil.FromSqlInt64(row.FirstTeamID)
		players[i] = *p
	}
	return players, nil
}

// GetFirstTeamID returns the lowest team id the player is linked to
func (r *Repository) GetFirstTeamID(ctx context.Context, playerID int64) (*int64, error) {
	teamID, err := r.queries(ctx).GetFirstTeamID(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get first team: %w", err)
	}
	return &teamID, nil
}

// dbPlayerToModel converts a database player to domain model
func (r *Repository) dbPlayerToModel(p db.Player) *models.Player {
	return &models.Player{
		ID:       p.ID,
		Name:     p.Name,
		Age:      sqlutil.FromSqlInt32(p.Age),
		Height:   p.Height,
		Weight:   p.Weight,
		College:  p.College,
		Group:    models.RosterGroup(p.Group),
		Position: p.Position,
		Number:   sqlutil.FromSqlInt32(p.Number),
		Salary:   p.Salary,
		Seasons:  sqlutil.FromSqlInt32(p.Seasons),
		ImageURL: p.ImageUrl,
		LookupID: sqlutil.FromSqlInt32(p.LookupID),
	}
}

func (r *Repository) dbPlayersToModels(rows []db.Player) []models.Player {
	players := make([]models.Player, len(rows))
	for i, p := range rows {
		players[i] = *r.dbPlayerToModel(p)
	}
	return players
}
