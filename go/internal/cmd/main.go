package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mcdev12/gridiron/go/internal/sports/nfl"
	"github.com/mcdev12/gridiron/go/internal/web"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := setupDatabase(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up database")
	}
	defer database.Close()

	plugins, err := setupSportsPlugins(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up sports plugins")
	}

	services, err := setupServices(ctx, database, plugins, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up services")
	}
	defer services.Close()

	limiter := web.NewLoginLimiter(config.Web.LoginRate, config.Web.LoginBurst)
	server, err := setupServer(database, services, limiter, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up server")
	}

	if config.Session.SweepInterval > 0 {
		go services.Sessions.RunSweeper(ctx, config.Session.SweepInterval)
	}
	go limiter.RunCleanup(ctx, 10*time.Minute)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("gridiron listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		log.Error().Err(err).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
