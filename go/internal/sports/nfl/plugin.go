package nfl

import (
	"context"
	"fmt"

	sportsapi "github.com/mcdev12/gridiron/go/clients/sports_api_client"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/sports/base"
)

const unknown = "Unknown"

// NFLPlugin implements the SportPlugin interface for the NFL.
type NFLPlugin struct {
	api    *sportsapi.SportsApiClient
	config base.Config
}

// init registers the NFL plugin with the base registry.
func init() {
	plugin := &NFLPlugin{}
	if err := base.RegisterPlugin("nfl", plugin); err != nil {
		panic(fmt.Sprintf("Failed to register NFL plugin: %v", err))
	}
}

// Init creates the API client from cfg.
func (p *NFLPlugin) Init(cfg base.Config) error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = sportsapi.BaseURL
	}
	if cfg.Season == 0 {
		cfg.Season = sportsapi.Season2023
	}
	p.config = cfg
	p.api = sportsapi.NewSportsApiClientWithBaseURL(cfg.BaseURL, cfg.APIKey)
	return nil
}

// FetchTeams retrieves the league's teams for the configured season.
func (p *NFLPlugin) FetchTeams(ctx context.Context) ([]sportsapi.Team, error) {
	teams, err := p.api.GetTeamsByLeagueAndSeason(ctx, sportsapi.NFLLeagueID, p.config.Season)
	if err != nil {
		return nil, fmt.Errorf("nfl: FetchTeams error: %w", err)
	}
	return teams, nil
}

// FetchPlayers retrieves the roster of one team, by its api-sports id.
func (p *NFLPlugin) FetchPlayers(ctx context.Context, externalTeamID int) ([]sportsapi.Player, error) {
	players, err := p.api.GetPlayersByTeamAndSeason(ctx, externalTeamID, p.config.Season)
	if err != nil {
		return nil, fmt.Errorf("nfl: FetchPlayers error: %w", err)
	}
	return players, nil
}

// FetchPlayerStatistics proxies the statistics endpoint.
func (p *NFLPlugin) FetchPlayerStatistics(ctx context.Context, lookupID, season int) (*models.StatGroups, error) {
	return p.api.FetchPlayerStatistics(ctx, lookupID, season)
}

// MapExternalTeam converts an API team. Records without a city are
// conference placeholders and are skipped.
func (p *NFLPlugin) MapExternalTeam(apiTeam sportsapi.Team) (*models.Team, error) {
	if apiTeam.City == nil {
		return nil, fmt.Errorf("nfl: team %q: %w", apiTeam.Name, base.ErrSkipRecord)
	}

	lookupID := apiTeam.ID
	return &models.Team{
		Name:        apiTeam.Name,
		City:        *apiTeam.City,
		Coach:       deref(apiTeam.Coach, unknown),
		Owner:       apiTeam.Owner,
		Stadium:     deref(apiTeam.Stadium, unknown),
		Established: apiTeam.Established,
		LookupID:    &lookupID,
		Logo:        deref(&apiTeam.Logo, models.DefaultImageURL),
	}, nil
}

// MapExternalPlayer converts an API roster entry. Missing text fields become
// "Unknown"; experience is stored as seasons.
func (p *NFLPlugin) MapExternalPlayer(apiPlayer sportsapi.Player) (*models.Player, error) {
	if apiPlayer.Name == "" {
		return nil, fmt.Errorf("nfl: player %d has no name: %w", apiPlayer.ID, base.ErrSkipRecord)
	}

	lookupID := apiPlayer.ID
	return &models.Player{
		Name:     apiPlayer.Name,
		Age:      apiPlayer.Age,
		Height:   deref(apiPlayer.Height, unknown),
		Weight:   deref(apiPlayer.Weight, unknown),
		College:  deref(apiPlayer.College, unknown),
		Group:    models.RosterGroup(deref(apiPlayer.Group, string(models.GroupUnknown))),
		Position: deref(apiPlayer.Position, unknown),
		Number:   apiPlayer.Number,
		Salary:   deref(apiPlayer.Salary, unknown),
		Seasons:  apiPlayer.Experience,
		ImageURL: deref(apiPlayer.Image, models.DefaultImageURL),
		LookupID: &lookupID,
	}, nil
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
