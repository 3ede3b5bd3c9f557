package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
)

// PgxStore writes seed data through a pgx connection pool.
type PgxStore struct {
	pool *pgxpool.Pool
}

// NewPgxStore creates a new PgxStore
func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	return &PgxStore{pool: pool}
}

// Reset truncates teams and players along with every row that references them.
func (s *PgxStore) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
        TRUNCATE team_players, favorite_players, favorite_teams, players, teams
        RESTART IDENTITY
    `)
	if err != nil {
		return fmt.Errorf("failed to reset reference data: %w", err)
	}
	return nil
}

// SeedTeam inserts the team and its roster in one transaction.
func (s *PgxStore) SeedTeam(ctx context.Context, team models.Team, players []models.Player) (int64, error) {
	var teamID int64
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO teams (name, city, coach, owner, stadium, established, lookup_id, logo)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id
        `,
			team.Name, team.City, team.Coach, team.Owner,
			team.Stadium, team.Established, team.LookupID, team.Logo,
		).Scan(&teamID)
		if err != nil {
			if sqlutil.IsUniqueViolation(err) {
				return fmt.Errorf("%w (%s)", ErrDuplicateTeam, sqlutil.ConstraintName(err))
			}
			return fmt.Errorf("insert team: %w", err)
		}

		for _, p := range players {
			var playerID int64
			err := tx.QueryRow(ctx, `
                INSERT INTO players (
                  name, age, height, weight, college, "group",
                  position, number, salary, seasons, image_url, lookup_id
                ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
                RETURNING id
            `,
				p.Name, p.Age, p.Height, p.Weight, p.College, string(p.Group),
				p.Position, p.Number, p.Salary, p.Seasons, p.ImageURL, p.LookupID,
			).Scan(&playerID)
			if err != nil {
				return fmt.Errorf("insert player %q: %w", p.Name, err)
			}

			if _, err := tx.Exec(ctx,
				`INSERT INTO team_players (team_id, player_id) VALUES ($1, $2)`,
				teamID, playerID,
			); err != nil {
				return fmt.Errorf("link player %q: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return teamID, nil
}
