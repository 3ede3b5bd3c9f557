package models

// Team represents an NFL team seeded from the sports API
type Team struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Coach       string  `json:"coach"`
	Owner       *string `json:"owner,omitempty"`
	Stadium     string  `json:"stadium"`
	Established *int    `json:"established,omitempty"`
	LookupID    *int    `json:"lookup_id,omitempty"` // api-sports team id
	Logo        string  `json:"logo"`
}
