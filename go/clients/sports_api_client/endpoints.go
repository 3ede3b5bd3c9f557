package sports_api_client

const (
	// Base URL
	BaseURL = "https://v1.american-football.api-sports.io"

	// API Endpoints
	TeamsEndpoint      = "/teams"
	PlayersEndpoint    = "/players"
	StatisticsEndpoint = "/players/statistics"

	// League IDs
	NFLLeagueID = 1

	// Seasons
	Season2023 = 2023

	// Headers
	APIKeyHeader = "x-apisports-key"
)
