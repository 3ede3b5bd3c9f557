package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/gridiron/go/internal/identity"
	"github.com/mcdev12/gridiron/go/internal/metrics"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// FavoritesRepository defines what the app layer needs from the repository
type FavoritesRepository interface {
	ToggleTeam(ctx context.Context, userID, teamID int64) (Result, error)
	TogglePlayer(ctx context.Context, userID, playerID int64) (Result, error)
	IsFavoriteTeam(ctx context.Context, userID, teamID int64) (bool, error)
	IsFavoritePlayer(ctx context.Context, userID, playerID int64) (bool, error)
	ListFavoriteTeams(ctx context.Context, userID int64) ([]models.Team, error)
	ListFavoritePlayers(ctx context.Context, userID int64) ([]models.Player, error)
}

// App handles favorite toggling and lookups
type App struct {
	repo      FavoritesRepository
	publisher EventPublisher
	clock     clockwork.Clock

	inflight sync.WaitGroup
}

// NewApp creates a new favorites App
func NewApp(repo FavoritesRepository, publisher EventPublisher, clock clockwork.Clock) *App {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &App{
		repo:      repo,
		publisher: publisher,
		clock:     clock,
	}
}

// ToggleTeam adds the team to the caller's favorites, or removes it when
// already present. The caller is taken from ctx.
func (a *App) ToggleTeam(ctx context.Context, teamID int64) (Result, error) {
	return a.toggle(ctx, KindTeam, teamID, a.repo.ToggleTeam)
}

// TogglePlayer adds the player to the caller's favorites, or removes it when
// already present. The caller is taken from ctx.
func (a *App) TogglePlayer(ctx context.Context, playerID int64) (Result, error) {
	return a.toggle(ctx, KindPlayer, playerID, a.repo.TogglePlayer)
}

func (a *App) toggle(
	ctx context.Context,
	kind Kind,
	targetID int64,
	flip func(ctx context.Context, userID, targetID int64) (Result, error),
) (Result, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		metrics.RecordFavoriteToggle(string(kind), "unauthorized")
		return "", ErrUnauthorized
	}

	result, err := flip(ctx, caller.UserID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			metrics.RecordFavoriteToggle(string(kind), "not_found")
		case errors.Is(err, ErrUnauthorized):
			sqlutil.MarkRollback(ctx)
			metrics.RecordFavoriteToggle(string(kind), "unauthorized")
		default:
			sqlutil.MarkRollback(ctx)
			metrics.RecordFavoriteToggle(string(kind), "error")
			return "", fmt.Errorf("failed to toggle favorite %s: %w", kind, err)
		}
		return "", err
	}

	metrics.RecordFavoriteToggle(string(kind), string(result))
	log.Debug().
		Int64("user_id", caller.UserID).
		Str("kind", string(kind)).
		Int64("target_id", targetID).
		Str("result", string(result)).
		Msg("toggled favorite")

	event := Event{
		ID:         uuid.New(),
		Kind:       kind,
		Result:     result,
		UserID:     caller.UserID,
		TargetID:   targetID,
		OccurredAt: a.clock.Now().UTC(),
	}
	// Publish off the commit path; Wait drains in-flight events.
	pctx := context.WithoutCancel(ctx)
	sqlutil.AfterCommit(ctx, func() {
		a.inflight.Add(1)
		go func() {
			defer a.inflight.Done()
			a.publish(pctx, event)
		}()
	})

	return result, nil
}

func (a *App) publish(ctx context.Context, event Event) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := a.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("failed to publish favorite event")
	}
}

// Wait blocks until every event handed to the publisher has been sent or has failed
func (a *App) Wait() {
	a.inflight.Wait()
}

// IsFavoriteTeam reports whether userID has marked teamID
func (a *App) IsFavoriteTeam(ctx context.Context, userID, teamID int64) (bool, error) {
	return a.repo.IsFavoriteTeam(ctx, userID, teamID)
}

// IsFavoritePlayer reports whether userID has marked playerID
func (a *App) IsFavoritePlayer(ctx context.Context, userID, playerID int64) (bool, error) {
	return a.repo.IsFavoritePlayer(ctx, userID, playerID)
}

// ListFavoriteTeams returns userID's favorite teams
func (a *App) ListFavoriteTeams(ctx context.Context, userID int64) ([]models.Team, error) {
	return a.repo.ListFavoriteTeams(ctx, userID)
}

// ListFavoritePlayers returns userID's favorite players
func (a *App) ListFavoritePlayers(ctx context.Context, userID int64) ([]models.Player, error) {
	return a.repo.ListFavoritePlayers(ctx, userID)
}

// ListFavorites returns both favorite sets
func (a *App) ListFavorites(ctx context.Context, userID int64) (*Favorites, error) {
	teams, err := a.repo.ListFavoriteTeams(ctx, userID)
	if err != nil {
		return nil, err
	}
	players, err := a.repo.ListFavoritePlayers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Favorites{Teams: teams, Players: players}, nil
}

// FavoritePlayersByGroup partitions userID's favorite players by exact group
// name. Players in "Unknown" or any other group appear in no bucket.
func (a *App) FavoritePlayersByGroup(ctx context.Context, userID int64) (*GroupedPlayers, error) {
	players, err := a.repo.ListFavoritePlayers(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped := &GroupedPlayers{}
	for _, p := range players {
		switch p.Group {
		case models.GroupOffense:
			grouped.Offense = append(grouped.Offense, p)
		case models.GroupDefense:
			grouped.Defense = append(grouped.Defense, p)
		case models.GroupSpecialTeams:
			grouped.SpecialTeams = append(grouped.SpecialTeams, p)
		}
	}
	return grouped, nil
}
