package models

import "time"

// DefaultImageURL is the placeholder used for users, teams and players without an image.
const DefaultImageURL = "/static/default-pic.png"

// User represents a registered user in the system
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never the plaintext
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
