package base

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	sportsapi "github.com/mcdev12/gridiron/go/clients/sports_api_client"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// ErrSkipRecord is returned by the Map functions for upstream records that
// should not be stored at all.
var ErrSkipRecord = errors.New("record skipped")

// Config is handed to a plugin when it is initialized.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"api_base_url"`
	Season  int    `yaml:"season"`
}

// SportPlugin defines the interface each sport plugin must implement.
type SportPlugin interface {
	Init(cfg Config) error
	FetchTeams(ctx context.Context) ([]sportsapi.Team, error)
	FetchPlayers(ctx context.Context, externalTeamID int) ([]sportsapi.Player, error)
	FetchPlayerStatistics(ctx context.Context, lookupID, season int) (*models.StatGroups, error)
	MapExternalTeam(apiTeam sportsapi.Team) (*models.Team, error)
	MapExternalPlayer(apiPlayer sportsapi.Player) (*models.Player, error)
}

var (
	registry   = make(map[string]SportPlugin)
	registryMu sync.RWMutex
)

// RegisterPlugin adds a plugin implementation under a key.
// It should be called in each sport plugin's init() function.
// The plugin will be initialized later when retrieved.
func RegisterPlugin(key string, plugin SportPlugin) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if key == "" {
		return fmt.Errorf("plugin key cannot be empty")
	}
	if _, exists := registry[key]; exists {
		return fmt.Errorf("plugin already registered for key %q", key)
	}
	registry[key] = plugin
	return nil
}

// GetPlugin retrieves a plugin by key or returns an error if not found.
func GetPlugin(key string) (SportPlugin, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	plugin, exists := registry[key]
	if !exists {
		return nil, fmt.Errorf("no sport plugin registered for key %q", key)
	}
	return plugin, nil
}

// InitializePlugin initializes a specific plugin.
func InitializePlugin(key string, cfg Config) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	plugin, exists := registry[key]
	if !exists {
		return fmt.Errorf("no sport plugin registered for key %q", key)
	}
	if err := plugin.Init(cfg); err != nil {
		return fmt.Errorf("failed to init plugin %q: %w", key, err)
	}
	return nil
}

// LoadEnabled initializes and returns the plugins named in keys.
func LoadEnabled(keys []string, cfg Config) (map[string]SportPlugin, error) {
	plugins := make(map[string]SportPlugin, len(keys))
	for _, key := range keys {
		if err := InitializePlugin(key, cfg); err != nil {
			return nil, err
		}
		plugin, err := GetPlugin(key)
		if err != nil {
			return nil, err
		}
		plugins[key] = plugin
	}
	return plugins, nil
}

// Registered lists the registered plugin keys in order.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
