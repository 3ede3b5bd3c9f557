package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/gridiron/go/internal/sports/base"
	"github.com/mcdev12/gridiron/go/internal/stats"
	"github.com/mcdev12/gridiron/go/internal/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	Sports struct {
		EnabledPlugins []string    `yaml:"enabled_plugins"`
		Plugin         base.Config `yaml:"plugin"`
	} `yaml:"sports"`

	Stats struct {
		Season int `yaml:"season"`
	} `yaml:"stats"`

	Session struct {
		Store         string        `yaml:"store"`
		TTL           time.Duration `yaml:"ttl"`
		CookieSecure  bool          `yaml:"cookie_secure"`
		SweepInterval time.Duration `yaml:"sweep_interval"`
		RedisAddr     string        `yaml:"redis_addr"`
	} `yaml:"session"`

	Events struct {
		NatsURL string `yaml:"nats_url"`
	} `yaml:"events"`

	Web web.Config `yaml:"web"`

	AutoMigrate bool   `yaml:"auto_migrate"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

func defaultConfig() *Config {
	cfg := &Config{Port: "8080"}
	cfg.Sports.EnabledPlugins = []string{"nfl"}
	cfg.Stats.Season = stats.DefaultSeason
	cfg.Session.Store = "postgres"
	cfg.Session.TTL = 7 * 24 * time.Hour
	cfg.Session.SweepInterval = time.Hour
	cfg.Web.CORSOrigins = []string{"*"}
	cfg.Web.LoginRate = 10
	cfg.Web.LoginBurst = 5
	cfg.LogLevel = "info"
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.Sports.Plugin.APIKey = getEnv("SPORTS_API_KEY", c.Sports.Plugin.APIKey)
	c.Sports.Plugin.BaseURL = getEnv("SPORTS_API_BASE_URL", c.Sports.Plugin.BaseURL)
	c.Session.Store = strings.ToLower(getEnv("SESSION_STORE", c.Session.Store))
	c.Session.RedisAddr = getEnv("REDIS_ADDR", c.Session.RedisAddr)
	c.Events.NatsURL = getEnv("NATS_URL", c.Events.NatsURL)
	c.AutoMigrate = getEnvAsBool("AUTO_MIGRATE", c.AutoMigrate)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)

	if c.Sports.Plugin.Season == 0 {
		c.Sports.Plugin.Season = c.Stats.Season
	}
}

func setupLogging(config *Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func setupSportsPlugins(config *Config) (map[string]base.SportPlugin, error) {
	plugins, err := base.LoadEnabled(config.Sports.EnabledPlugins, config.Sports.Plugin)
	if err != nil {
		return nil, err
	}
	for key := range plugins {
		log.Info().Str("plugin", key).Msg("initialized sport plugin")
	}
	return plugins, nil
}
