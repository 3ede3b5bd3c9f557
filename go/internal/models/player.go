package models

// RosterGroup is the coarse position category assigned to a player at seed time.
// It is stored as free text; only exact matches count.
type RosterGroup string

const (
	GroupOffense      RosterGroup = "Offense"
	GroupDefense      RosterGroup = "Defense"
	GroupSpecialTeams RosterGroup = "Special Teams"
	GroupUnknown      RosterGroup = "Unknown"
)

// Player represents an NFL player seeded from the sports API
type Player struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Age      *int        `json:"age,omitempty"`
	Height   string      `json:"height"` // '6' 3"'
	Weight   string      `json:"weight"` // '210 lbs'
	College  string      `json:"college"`
	Group    RosterGroup `json:"group"`
	Position string      `json:"position"`
	Number   *int        `json:"number,omitempty"`
	Salary   string      `json:"salary"`
	Seasons  *int        `json:"seasons,omitempty"`
	ImageURL string      `json:"image_url"`
	LookupID *int        `json:"lookup_id,omitempty"` // api-sports player id

	// FirstTeamID is the lowest team id the player is linked to, when loaded.
	FirstTeamID *int64 `json:"first_team_id,omitempty"`
}
