package db

import (
	"database/sql"
	"time"

	"github.com/sqlc-dev/pqtype"
)

type Session struct {
	ID         string
	UserID     sql.NullInt64
	Data       pqtype.NullRawMessage
	ClientAddr pqtype.Inet
	ExpiresAt  time.Time
	CreatedAt  time.Time
}
