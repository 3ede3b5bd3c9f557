package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/mcdev12/gridiron/go/internal/teams/db"
)

// Repository implements team data access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new teams repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		db: database,
	}
}

func (r *Repository) queries(ctx context.Context) *db.Queries {
	return db.New(sqlutil.Conn(ctx, r.db))
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	team, err := r.queries(ctx).GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return r.dbTeamToModel(team), nil
}

// ListAllTeams retrieves all teams
func (r *Repository) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries(ctx).ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, t := range dbTeams {
		teams[i] = *r.dbTeamToModel(t)
	}
	return teams, nil
}

// ListRoster retrieves every player linked to the team, sorted by name
func (r *Repository) ListRoster(ctx context.Context, teamID int64) ([]models.Player, error) {
	rows, err := r.queries(ctx).ListTeamRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}

	players := make([]models.Player, len(rows))
	for i, p := range rows {
		players[i] = models.Player{
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
	return players, nil
}

// dbTeamToModel converts a database team to domain model
func (r *Repository) dbTeamToModel(t db.Team) *models.Team {
	return &models.Team{
		ID:          t.ID,
		Name:        t.Name,
		City:        t.City,
		Coach:       t.Coach,
		Owner:       sqlutil.FromSqlStringPtr(t.Owner),
		Stadium:     t.Stadium,
		Established: sqlutil.FromSqlInt32(t.Established),
		LookupID:    sqlutil.FromSqlInt32(t.LookupID),
		Logo:        t.Logo,
	}
}
