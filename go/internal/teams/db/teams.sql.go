package db

import (
	"context"
)

const getTeam = `-- name: GetTeam :one
SELECT id, name, city, coach, owner, stadium, established, lookup_id, logo FROM teams
WHERE id = $1
`

func (q *Queries) GetTeam(ctx context.Context, id int64) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, id)
	var i Team
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.Coach,
		&i.Owner,
		&i.Stadium,
		&i.Established,
		&i.LookupID,
		&i.Logo,
	)
	return i, err
}

const listAllTeams = `-- name: ListAllTeams :many
SELECT id, name, city, coach, owner, stadium, established, lookup_id, logo FROM teams
ORDER BY id
`

func (q *Queries) ListAllTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listAllTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Team
	for rows.Next() {
		var i Team
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.City,
			&i.Coach,
			&i.Owner,
			&i.Stadium,
			&i.Established,
			&i.LookupID,
			&i.Logo,
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

const listTeamRoster = `-- name: ListTeamRoster :many
SELECT p.id, p.name, p.age, p.height, p.weight, p.college, p."group", p.position, p.number, p.salary, p.seasons, p.image_url, p.lookup_id
FROM players p
JOIN team_players tp ON tp.player_id = p.id
WHERE tp.team_id = $1
ORDER BY p.name ASC
`

func (q *Queries) ListTeamRoster(ctx context.Context, teamID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listTeamRoster, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
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
