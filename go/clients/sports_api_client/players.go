package sports_api_client

import (
	"context"
	"fmt"
)

// Player is a roster entry as api-sports returns it
type Player struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Age        *int    `json:"age"`
	Height     *string `json:"height"`
	Weight     *string `json:"weight"`
	College    *string `json:"college"`
	Group      *string `json:"group"`
	Position   *string `json:"position"`
	Number     *int    `json:"number"`
	Salary     *string `json:"salary"`
	Experience *int    `json:"experience"`
	Image      *string `json:"image"`
}

func (c *SportsApiClient) GetPlayersByTeamAndSeason(ctx context.Context, teamID, season int) ([]Player, error) {
	endpoint := fmt.Sprintf("%s?team=%d&season=%d", PlayersEndpoint, teamID, season)
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	return decode[Player](body)
}
