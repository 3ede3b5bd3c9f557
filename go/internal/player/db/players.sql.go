package db

import (
	"context"
	"database/sql"
)

const getPlayer = `-- name: GetPlayer :one
SELECT id, name, age, height, weight, college, "group", position, number, salary, seasons, image_url, lookup_id FROM players
WHERE id = $1
`

func (q *Queries) GetPlayer(ctx context.Context, id int64) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, id)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Age,
		&i.Height,
		&i.Weight,
		&i.College,
		&i.Group,
		&i.Position,
		&i.Number,
		&i.Salary,
		&i.Seasons,
		&i.ImageUrl,
		&i.LookupID,
	)
	return i, err
}

const listPlayers = `-- name: ListPlayers :many
SELECT id, name, age, height, weight, college, "group", position, number, salary, seasons, image_url, lookup_id FROM players
ORDER BY id
`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayers(rows)
}

const searchPlayers = `-- name: SearchPlayers :many
SELECT id, name, age, height, weight, college, "group", position, number, salary, seasons, image_url, lookup_id FROM players
WHERE name LIKE '%' || $1 || '%'
ORDER BY id
`

func (q *Queries) SearchPlayers(ctx context.Context, search string) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, searchPlayers, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPlayers(rows)
}

const listPlayersByGroup = `-- name: ListPlayersByGroup :many
SELECT p.id, p.name, p.age, p.height, p.weight, p.college, p."group", p.position, p.number, p.salary, p.seasons, p.image_url, p.lookup_id,
       (SELECT tp.team_id FROM team_players tp
        WHERE tp.player_id = p.id
        ORDER BY tp.team_id
        LIMIT 1) AS first_team_id
FROM players p
WHERE p."group" = $1
ORDER BY p.name ASC
`

type ListPlayersByGroupRow struct {
	Player      Player
	FirstTeamID sql.NullInt64
}

func (q *Queries) ListPlayersByGroup(ctx context.Context, group string) ([]ListPlayersByGroupRow, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByGroup, group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListPlayersByGroupRow
	for rows.Next() {
		var i ListPlayersByGroupRow
		if err := rows.Scan(
			&i.Player.ID,
			&i.Player.Name,
			&i.Player.Age,
			&i.Player.Height,
			&i.Player.Weight,
			&i.Player.College,
			&i.Player.Group,
			&i.Player.Position,
			&i.Player.Number,
			&i.Player.Salary,
			&i.Player.Seasons,
			&i.Player.ImageUrl,
			&i.Player.LookupID,
			&i.FirstTeamID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getFirstTeamID = `-- name: GetFirstTeamID :one
SELECT team_id FROM team_players
WHERE player_id = $1
ORDER BY team_id
LIMIT 1
`

func (q *Queries) GetFirstTeamID(ctx context.Context, playerID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, getFirstTeamID, playerID)
	var team_id int64
	err := row.Scan(&team_id)
	return team_id, err
}

func scanPlayers(rows *sql.Rows) ([]Player, error) {
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Age,
			&i.Height,
			&i.Weight,
			&i.College,
			&i.Group,
			&i.Position,
			&i.Number,
			&i.Salary,
			&i.Seasons,
			&i.ImageUrl,
			&i.LookupID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
