package sports_api_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/tidwall/gjson"
)

// FetchPlayerStatistics returns the stat groups of the player's first team
// entry for season. A nil result with nil error means the API had nothing.
func (c *SportsApiClient) FetchPlayerStatistics(ctx context.Context, lookupID, season int) (*models.StatGroups, error) {
	endpoint := fmt.Sprintf("%s?id=%d&season=%d", StatisticsEndpoint, lookupID, season)
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get player statistics: %w", err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid statistics response: %s", string(body))
	}
	return parseStatistics(body, season), nil
}

func parseStatistics(body []byte, season int) *models.StatGroups {
	first := gjson.GetBytes(body, "response.0.teams.0")
	if !first.Exists() {
		return nil
	}

	groups := first.Get("groups").Array()
	if len(groups) == 0 {
		return nil
	}

	out := &models.StatGroups{
		Season: season,
		Team:   first.Get("team.name").String(),
		Groups: make([]models.StatGroup, 0, len(groups)),
	}
	for _, g := range groups {
		group := models.StatGroup{Name: g.Get("name").String()}
		g.Get("statistics").ForEach(func(_, stat gjson.Result) bool {
			value := stat.Get("value")
			v := value.String()
			if value.Type == gjson.Null || !value.Exists() {
				v = "-"
			}
			group.Statistics = append(group.Statistics, models.Statistic{
				Name:  stat.Get("name").String(),
				Value: v,
			})
			return true
		})
		out.Groups = append(out.Groups, group)
	}
	return out
}
