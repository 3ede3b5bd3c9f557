package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	sportsapi "github.com/mcdev12/gridiron/go/clients/sports_api_client"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sports/base"
	"github.com/rs/zerolog/log"
)

// DefaultDelay spaces out roster requests to stay under the api-sports rate limit.
const DefaultDelay = 8 * time.Second

// ErrDuplicateTeam is returned by a Store when a team collides with an existing row.
var ErrDuplicateTeam = errors.New("team already seeded")

// Source is the part of a sport plugin the seeder needs.
type Source interface {
	FetchTeams(ctx context.Context) ([]sportsapi.Team, error)
	FetchPlayers(ctx context.Context, externalTeamID int) ([]sportsapi.Player, error)
	MapExternalTeam(apiTeam sportsapi.Team) (*models.Team, error)
	MapExternalPlayer(apiPlayer sportsapi.Player) (*models.Player, error)
}

// Store persists a team together with its roster.
type Store interface {
	Reset(ctx context.Context) error
	// SeedTeam inserts team and players and links every player to team,
	// atomically. It returns the new team id.
	SeedTeam(ctx context.Context, team models.Team, players []models.Player) (int64, error)
}

// Result summarizes a seeding run.
type Result struct {
	Teams        int
	SkippedTeams int
	Players      int
	Errors       []error
}

// Seeder copies teams and rosters from a Source into a Store.
type Seeder struct {
	source Source
	store  Store
	delay  time.Duration
	clock  clockwork.Clock
}

// NewSeeder creates a Seeder that waits delay between teams.
func NewSeeder(source Source, store Store, delay time.Duration, clock clockwork.Clock) *Seeder {
	return &Seeder{
		source: source,
		store:  store,
		delay:  delay,
		clock:  clock,
	}
}

// Reset empties the reference tables.
func (s *Seeder) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

// Run seeds every team the source returns. Per-team failures are collected in
// the Result and do not stop the run; a failure to list teams or a cancelled
// context does.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	apiTeams, err := s.source.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	result := &Result{}
	waited := false
	for _, apiTeam := range apiTeams {
		team, err := s.source.MapExternalTeam(apiTeam)
		if err != nil {
			if errors.Is(err, base.ErrSkipRecord) {
				result.SkippedTeams++
				continue
			}
			result.Errors = append(result.Errors, err)
			continue
		}

		if waited {
			if err := s.wait(ctx); err != nil {
				return result, err
			}
		}
		waited = true

		players, err := s.fetchRoster(ctx, apiTeam.ID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("team %q: %w", team.Name, err))
			continue
		}

		id, err := s.store.SeedTeam(ctx, *team, players)
		if err != nil {
			if errors.Is(err, ErrDuplicateTeam) {
				result.SkippedTeams++
			}
			result.Errors = append(result.Errors, fmt.Errorf("team %q: %w", team.Name, err))
			continue
		}

		result.Teams++
		result.Players += len(players)
		log.Info().
			Int64("team_id", id).
			Str("team", team.Name).
			Int("players", len(players)).
			Msg("seeded team")
	}

	return result, nil
}

func (s *Seeder) fetchRoster(ctx context.Context, externalTeamID int) ([]models.Player, error) {
	apiPlayers, err := s.source.FetchPlayers(ctx, externalTeamID)
	if err != nil {
		return nil, err
	}

	players := make([]models.Player, 0, len(apiPlayers))
	for _, apiPlayer := range apiPlayers {
		player, err := s.source.MapExternalPlayer(apiPlayer)
		if err != nil {
			if errors.Is(err, base.ErrSkipRecord) {
				log.Debug().Err(err).Msg("skipping player")
				continue
			}
			return nil, err
		}
		players = append(players, *player)
	}
	return players, nil
}

func (s *Seeder) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(s.delay):
		return nil
	}
}
