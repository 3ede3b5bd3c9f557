package db

import (
	"time"
)

type User struct {
	ID        int64
	Email     string
	Username  string
	Password  string
	ImageUrl  string
	CreatedAt time.Time
}
