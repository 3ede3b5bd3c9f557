package stats

import (
	"context"

	"github.com/mcdev12/gridiron/go/internal/metrics"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/rs/zerolog/log"
)

// DefaultSeason is the season the seed data and statistics are pinned to
const DefaultSeason = 2023

// StatisticsFetcher looks up a player's season statistics by their
// api-sports id. A nil result with nil error means nothing is available.
type StatisticsFetcher interface {
	FetchPlayerStatistics(ctx context.Context, lookupID, season int) (*models.StatGroups, error)
}

// App serves player statistics for profile pages
type App struct {
	fetcher StatisticsFetcher
	season  int
}

// NewApp creates a new stats App
func NewApp(fetcher StatisticsFetcher, season int) *App {
	if season == 0 {
		season = DefaultSeason
	}
	return &App{
		fetcher: fetcher,
		season:  season,
	}
}

// ForPlayer returns the player's statistics, or nil when none can be shown.
// Upstream failures are logged and degrade to nil instead of failing the page.
func (a *App) ForPlayer(ctx context.Context, player *models.Player) *models.StatGroups {
	if a.fetcher == nil || player == nil || player.LookupID == nil {
		return nil
	}

	stats, err := a.fetcher.FetchPlayerStatistics(ctx, *player.LookupID, a.season)
	if err != nil {
		metrics.RecordStatsFetch("error")
		log.Warn().Err(err).
			Int64("player_id", player.ID).
			Int("lookup_id", *player.LookupID).
			Msg("failed to fetch player statistics")
		return nil
	}
	if stats == nil || len(stats.Groups) == 0 {
		metrics.RecordStatsFetch("empty")
		return nil
	}

	metrics.RecordStatsFetch("ok")
	return stats
}
