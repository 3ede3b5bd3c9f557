package favorites

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/gridiron/go/internal/models"
)

// Kind is the type of entity a favorite points at
type Kind string

const (
	KindTeam   Kind = "team"
	KindPlayer Kind = "player"
)

// Result is the outcome of a toggle
type Result string

const (
	Added   Result = "added"
	Removed Result = "removed"
)

// Message is the user-facing text for a toggle outcome
func (r Result) Message() string {
	if r == Added {
		return "Favorite added"
	}
	return "Favorite removed"
}

// GroupedPlayers partitions a user's favorite players by roster group.
// Players in any other group are left out.
type GroupedPlayers struct {
	Offense      []models.Player `json:"offense"`
	Defense      []models.Player `json:"defense"`
	SpecialTeams []models.Player `json:"special_teams"`
}

// Favorites is everything a user has marked
type Favorites struct {
	Teams   []models.Team   `json:"teams"`
	Players []models.Player `json:"players"`
}

// Event is emitted once a toggle has committed
type Event struct {
	ID         uuid.UUID `json:"event_id"`
	Kind       Kind      `json:"kind"`
	Result     Result    `json:"result"`
	UserID     int64     `json:"user_id"`
	TargetID   int64     `json:"target_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
