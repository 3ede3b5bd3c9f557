package favorites

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/favorites/db"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
)

// Repository implements favorite join-row operations. Rows are addressed by
// their composite key; neither side is loaded.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new favorites repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		db: database,
	}
}

func newQueries(tx sqlutil.DBTX) *db.Queries {
	return db.New(tx)
}

func (r *Repository) queries(ctx context.Context) *db.Queries {
	return db.New(sqlutil.Conn(ctx, r.db))
}

// ToggleTeam flips the (userID, teamID) favorite and reports the new state.
func (r *Repository) ToggleTeam(ctx context.Context, userID, teamID int64) (Result, error) {
	var result Result
	err := sqlutil.Run(ctx, r.db, newQueries, func(q *db.Queries) error {
		exists, err := q.TeamExists(ctx, teamID)
		if err != nil {
			return fmt.Errorf("failed to check team: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		key := db.IsFavoriteTeamParams{UserID: userID, TeamID: teamID}
		marked, err := q.IsFavoriteTeam(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check favorite team: %w", err)
		}

		if marked {
			if _, err := q.RemoveFavoriteTeam(ctx, db.RemoveFavoriteTeamParams(key)); err != nil {
				return fmt.Errorf("failed to remove favorite team: %w", err)
			}
			result = Removed
			return nil
		}

		// a concurrent insert of the same pair is absorbed by ON CONFLICT
		if _, err := q.AddFavoriteTeam(ctx, db.AddFavoriteTeamParams(key)); err != nil {
			return mapInsertError("team", err)
		}
		result = Added
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// TogglePlayer flips the (userID, playerID) favorite and reports the new state.
func (r *Repository) TogglePlayer(ctx context.Context, userID, playerID int64) (Result, error) {
	var result Result
	err := sqlutil.Run(ctx, r.db, newQueries, func(q *db.Queries) error {
		exists, err := q.PlayerExists(ctx, playerID)
		if err != nil {
			return fmt.Errorf("failed to check player: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		key := db.IsFavoritePlayerParams{UserID: userID, PlayerID: playerID}
		marked, err := q.IsFavoritePlayer(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check favorite player: %w", err)
		}

		if marked {
			if _, err := q.RemoveFavoritePlayer(ctx, db.RemoveFavoritePlayerParams(key)); err != nil {
				return fmt.Errorf("failed to remove favorite player: %w", err)
			}
			result = Removed
			return nil
		}

		if _, err := q.AddFavoritePlayer(ctx, db.AddFavoritePlayerParams(key)); err != nil {
			return mapInsertError("player", err)
		}
		result = Added
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// mapInsertError turns a missing user (deleted while the session lived on)
// into ErrUnauthorized
func mapInsertError(kind string, err error) error {
	if sqlutil.IsForeignKeyViolation(err) {
		return ErrUnauthorized
	}
	return fmt.Errorf("failed to add favorite %s: %w", kind, err)
}

// IsFavoriteTeam reports whether the pair exists
func (r *Repository) IsFavoriteTeam(ctx context.Context, userID, teamID int64) (bool, error) {
	ok, err := r.queries(ctx).IsFavoriteTeam(ctx, db.IsFavoriteTeamParams{UserID: userID, TeamID: teamID})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite team: %w", err)
	}
	return ok, nil
}

// IsFavoritePlayer reports whether the pair exists
func (r *Repository) IsFavoritePlayer(ctx context.Context, userID, playerID int64) (bool, error) {
	ok, err := r.queries(ctx).IsFavoritePlayer(ctx, db.IsFavoritePlayerParams{UserID: userID, PlayerID: playerID})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite player: %w", err)
	}
	return ok, nil
}

// ListFavoriteTeams returns the user's favorite teams sorted by name
func (r *Repository) ListFavoriteTeams(ctx context.Context, userID int64) ([]models.Team, error) {
	rows, err := r.queries(ctx).ListFavoriteTeams(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite teams: %w", err)
	}

	teams := make([]models.Team, len(rows))
	for i, t := range rows {
		teams[i] = models.Team{
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
	return teams, nil
}

// ListFavoritePlayers returns the user's favorite players sorted by name
func (r *Repository) ListFavoritePlayers(ctx context.Context, userID int64) ([]models.Player, error) {
	rows, err := r.queries(ctx).ListFavoritePlayers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite players: %w", err)
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
