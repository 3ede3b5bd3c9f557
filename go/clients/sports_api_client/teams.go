package sports_api_client

import (
	"context"
	"fmt"
)

type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// Team is a team record as api-sports returns it. Conference placeholders
// such as "AFC" come back with a null city.
type Team struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Code        *string `json:"code"`
	City        *string `json:"city"`
	Coach       *string `json:"coach"`
	Owner       *string `json:"owner"`
	Stadium     *string `json:"stadium"`
	Established *int    `json:"established"`
	Logo        string  `json:"logo"`
	Country     Country `json:"country"`
}

func (c *SportsApiClient) GetNFLTeams(ctx context.Context) ([]Team, error) {
	return c.GetTeamsByLeagueAndSeason(ctx, NFLLeagueID, Season2023)
}

func (c *SportsApiClient) GetTeamsByLeagueAndSeason(ctx context.Context, leagueID, season int) ([]Team, error) {
	endpoint := fmt.Sprintf("%s?league=%d&season=%d", TeamsEndpoint, leagueID, season)
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	return decode[Team](body)
}
