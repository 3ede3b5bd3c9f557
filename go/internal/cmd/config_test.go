package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "SPORTS_API_KEY", "SPORTS_API_BASE_URL", "SESSION_STORE", "REDIS_ADDR",
		"NATS_URL", "AUTO_MIGRATE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, []string{"nfl"}, config.Sports.EnabledPlugins)
	assert.Equal(t, 2023, config.Stats.Season)
	assert.Equal(t, 2023, config.Sports.Plugin.Season)
	assert.Equal(t, "postgres", config.Session.Store)
	assert.Equal(t, 7*24*time.Hour, config.Session.TTL)
	assert.False(t, config.AutoMigrate)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
stats:
  season: 2022
session:
  store: redis
  ttl: 2h
  cookie_secure: true
web:
  cors_origins: ["https://gridiron.test"]
  login_rate: 3
`), 0o600))

	t.Setenv("SESSION_STORE", "MEMORY")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("SPORTS_API_KEY", "secret")

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, 2022, config.Stats.Season)
	assert.Equal(t, 2022, config.Sports.Plugin.Season)
	assert.Equal(t, "memory", config.Session.Store)
	assert.Equal(t, 2*time.Hour, config.Session.TTL)
	assert.True(t, config.Session.CookieSecure)
	assert.Equal(t, []string{"https://gridiron.test"}, config.Web.CORSOrigins)
	assert.Equal(t, 3, config.Web.LoginRate)
	assert.Equal(t, 5, config.Web.LoginBurst)
	assert.True(t, config.AutoMigrate)
	assert.Equal(t, "secret", config.Sports.Plugin.APIKey)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: ["), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}
