package db

import (
	"database/sql"
)

type Player struct {
	ID       int64
	Name     string
	Age      sql.NullInt32
	Height   string
	Weight   string
	College  string
	Group    string
	Position string
	Number   sql.NullInt32
	Salary   string
	Seasons  sql.NullInt32
	ImageUrl string
	LookupID sql.NullInt32
}
