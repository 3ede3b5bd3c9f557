package models

// Statistic is one named value inside a statistics group, e.g. "yards" -> "1,204".
type Statistic struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StatGroup is a named block of statistics such as "Passing" or "Rushing".
type StatGroup struct {
	Name       string      `json:"name"`
	Statistics []Statistic `json:"statistics"`
}

// StatGroups is the flattened statistics payload rendered on a player page
type StatGroups struct {
	Season int         `json:"season"`
	Team   string      `json:"team"`
	Groups []StatGroup `json:"groups"`
}
