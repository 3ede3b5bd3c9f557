package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/mcdev12/gridiron/go/internal/favorites"
	"github.com/mcdev12/gridiron/go/internal/player"
	"github.com/mcdev12/gridiron/go/internal/teams"
	"github.com/mcdev12/gridiron/go/internal/web"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(database *sql.DB, services *Services, limiter *web.LoginLimiter, config *Config) (*http.Server, error) {
	site, err := web.NewServer(web.Deps{
		DB:        database,
		Sessions:  services.Sessions,
		Users:     services.Users,
		Teams:     services.Teams,
		Players:   services.Players,
		Favorites: services.Favorites,
		Stats:     services.Stats,
		Limiter:   limiter,
		Health:    services.Health,
	}, config.Web)
	if err != nil {
		return nil, fmt.Errorf("failed to set up site: %w", err)
	}

	// Register services
	registerServices(site, services)

	// Setup HTTP/2 server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", config.Port),
		Handler:           h2c.NewHandler(site.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func registerServices(site *web.Server, services *Services) {
	// Register favorite service
	favoriteServicePath, favoriteServiceHandler := favorites.NewFavoriteServiceHandler(favorites.NewService(services.Favorites))
	site.Mount(favoriteServicePath, favoriteServiceHandler)

	// Register team service
	teamServicePath, teamServiceHandler := teams.NewTeamServiceHandler(teams.NewService(services.Teams))
	site.Mount(teamServicePath, teamServiceHandler)

	// Register player service
	playerServicePath, playerServiceHandler := player.NewPlayerServiceHandler(player.NewService(services.Players))
	site.Mount(playerServicePath, playerServiceHandler)
}
