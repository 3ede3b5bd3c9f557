package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/gridiron/go/internal/dbconfig"
	"github.com/mcdev12/gridiron/go/internal/migrations"
	"github.com/mcdev12/gridiron/go/internal/seed"
	"github.com/mcdev12/gridiron/go/internal/sports/base"
	_ "github.com/mcdev12/gridiron/go/internal/sports/nfl"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		reset  = flag.Bool("reset", false, "truncate teams, players and favorites before seeding")
		delay  = flag.Duration("delay", seed.DefaultDelay, "pause between teams to respect api rate limits")
		sport  = flag.String("sport", "nfl", "sport plugin to seed from")
		season = flag.Int("season", 0, "season to fetch (plugin default when zero)")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect")
	}
	defer pool.Close()

	// 2) Make sure the schema exists
	if err := migrations.Up(stdlib.OpenDBFromPool(pool)); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// 3) Initialize the plugin
	if err := base.InitializePlugin(*sport, base.Config{
		APIKey:  os.Getenv("SPORTS_API_KEY"),
		BaseURL: os.Getenv("SPORTS_API_BASE_URL"),
		Season:  *season,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize plugin")
	}
	plugin, err := base.GetPlugin(*sport)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load plugin")
	}

	seeder := seed.NewSeeder(plugin, seed.NewPgxStore(pool), *delay, clockwork.NewRealClock())
	if *reset {
		if err := seeder.Reset(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to reset")
		}
		log.Info().Msg("reference data truncated")
	}

	// 4) Seed and print summary
	result, err := seeder.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed aborted")
	}
	for _, e := range result.Errors {
		log.Warn().Err(e).Msg("team not seeded")
	}
	log.Info().
		Int("teams", result.Teams).
		Int("skipped", result.SkippedTeams).
		Int("players", result.Players).
		Int("errors", len(result.Errors)).
		Msg("seed complete")
}
