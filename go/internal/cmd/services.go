package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/gridiron/go/internal/favorites"
	"github.com/mcdev12/gridiron/go/internal/health"
	"github.com/mcdev12/gridiron/go/internal/player"
	"github.com/mcdev12/gridiron/go/internal/session"
	"github.com/mcdev12/gridiron/go/internal/sports/base"
	"github.com/mcdev12/gridiron/go/internal/stats"
	"github.com/mcdev12/gridiron/go/internal/teams"
	"github.com/mcdev12/gridiron/go/internal/users"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Users     *users.App
	Teams     *teams.App
	Players   *player.App
	Favorites *favorites.App
	Stats     *stats.App
	Sessions  *session.Manager
	Health    *health.Checker

	closers []func() error
}

// Close waits for in-flight favorite events, then releases connections opened for the services
func (s *Services) Close() {
	if s.Favorites != nil {
		s.Favorites.Wait()
	}
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			log.Warn().Err(err).Msg("failed to close service dependency")
		}
	}
}

func setupServices(ctx context.Context, database *sql.DB, plugins map[string]base.SportPlugin, config *Config) (*Services, error) {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer

	services := &Services{Health: health.NewChecker(database)}
	clock := clockwork.NewRealClock()

	// Players
	playerRepo := player.NewRepository(database)
	playerApp := player.NewApp(playerRepo)

	// Teams
	teamsRepo := teams.NewRepository(database)
	teamsApp := teams.NewApp(teamsRepo, playerApp)

	// Users
	userRepo := users.NewRepository(database)
	userApp := users.NewApp(userRepo, users.BcryptHasher{})

	// Favorites
	publisher, err := setupPublisher(config)
	if err != nil {
		return nil, err
	}
	if js, ok := publisher.(*favorites.JetStreamPublisher); ok {
		services.closers = append(services.closers, js.Close)
		services.Health.WithEvents(js)
	}
	favoritesRepo := favorites.NewRepository(database)
	favoritesApp := favorites.NewApp(favoritesRepo, publisher, clock)

	// Stats
	nfl, ok := plugins["nfl"]
	if !ok {
		return nil, fmt.Errorf("the nfl plugin must be enabled for player statistics")
	}
	statsApp := stats.NewApp(nfl, config.Stats.Season)

	// Sessions
	store, err := setupSessionStore(ctx, database, clock, config, services)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(store, clock, session.Config{
		TTL:          config.Session.TTL,
		CookieSecure: config.Session.CookieSecure,
	})

	services.Users = userApp
	services.Teams = teamsApp
	services.Players = playerApp
	services.Favorites = favoritesApp
	services.Stats = statsApp
	services.Sessions = sessions
	return services, nil
}

func setupPublisher(config *Config) (favorites.EventPublisher, error) {
	if config.Events.NatsURL == "" {
		log.Info().Msg("NATS_URL not set, favorite events are not published")
		return favorites.NoopPublisher{}, nil
	}

	jsConfig := favorites.DefaultJetStreamConfig()
	jsConfig.URL = config.Events.NatsURL
	publisher, err := favorites.NewJetStreamPublisher(jsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect event publisher: %w", err)
	}
	return publisher, nil
}

func setupSessionStore(ctx context.Context, database *sql.DB, clock clockwork.Clock, config *Config, services *Services) (session.Store, error) {
	switch config.Session.Store {
	case "postgres", "":
		return session.NewPostgresStore(database), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: config.Session.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		services.closers = append(services.closers, rdb.Close)
		services.Health.WithCheck("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		return session.NewRedisStore(rdb, clock), nil
	case "memory":
		log.Warn().Msg("using in-memory sessions; they are lost on restart")
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", config.Session.Store)
	}
}
