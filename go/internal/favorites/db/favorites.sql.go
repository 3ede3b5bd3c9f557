package db

import (
	"context"
)

const teamExists = `-- name: TeamExists :one
SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)
`

func (q *Queries) TeamExists(ctx context.Context, id int64) (bool, error) {
	row := q.db.QueryRowContext(ctx, teamExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const playerExists = `-- name: PlayerExists :one
SELECT EXISTS(SELECT 1 FROM players WHERE id = $1)
`

func (q *Queries) PlayerExists(ctx context.Context, id int64) (bool, error) {
	row := q.db.QueryRowContext(ctx, playerExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const isFavoriteTeam = `-- name: IsFavoriteTeam :one
SELECT EXISTS(SELECT 1 FROM favorite_teams WHERE user_id = $1 AND team_id = $2)
`

type IsFavoriteTeamParams struct {
	UserID int64
	TeamID int64
}

func (q *Queries) IsFavoriteTeam(ctx context.Context, arg IsFavoriteTeamParams) (bool, error) {
	row := q.db.QueryRowContext(ctx, isFavoriteTeam, arg.UserID, arg.TeamID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const isFavoritePlayer = `-- name: IsFavoritePlayer :one
SELECT EXISTS(SELECT 1 FROM favorite_players WHERE user_id = $1 AND player_id = $2)
`

type IsFavoritePlayerParams struct {
	UserID   int64
	PlayerID int64
}

func (q *Queries) IsFavoritePlayer(ctx context.Context, arg IsFavoritePlayerParams) (bool, error) {
	row := q.db.QueryRowContext(ctx, isFavoritePlayer, arg.UserID, arg.PlayerID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const addFavoriteTeam = `-- name: AddFavoriteTeam :execrows
INSERT INTO favorite_teams (user_id, team_id)
VALUES ($1, $2)
ON CONFLICT (user_id, team_id) DO NOTHING
`

type AddFavoriteTeamParams struct {
	UserID int64
	TeamID int64
}

func (q *Queries) AddFavoriteTeam(ctx context.Context, arg AddFavoriteTeamParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, addFavoriteTeam, arg.UserID, arg.TeamID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const removeFavoriteTeam = `-- name: RemoveFavoriteTeam :execrows
DELETE FROM favorite_teams
WHERE user_id = $1 AND team_id = $2
`

type RemoveFavoriteTeamParams struct {
	UserID int64
	TeamID int64
}

func (q *Queries) RemoveFavoriteTeam(ctx context.Context, arg RemoveFavoriteTeamParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, removeFavoriteTeam, arg.UserID, arg.TeamID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const addFavoritePlayer = `-- name: AddFavoritePlayer :execrows
INSERT INTO favorite_players (user_id, player_id)
VALUES ($1, $2)
ON CONFLICT (user_id, player_id) DO NOTHING
`

type AddFavoritePlayerParams struct {
	UserID   int64
	PlayerID int64
}

func (q *Queries) AddFavoritePlayer(ctx context.Context, arg AddFavoritePlayerParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, addFavoritePlayer, arg.UserID, arg.PlayerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const removeFavoritePlayer = `-- name: RemoveFavoritePlayer :execrows
DELETE FROM favorite_players
WHERE user_id = $1 AND player_id = $2
`

type RemoveFavoritePlayerParams struct {
	UserID   int64
	PlayerID int64
}

func (q *Queries) RemoveFavoritePlayer(ctx context.Context, arg RemoveFavoritePlayerParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, removeFavoritePlayer, arg.UserID, arg.PlayerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listFavoriteTeams = `-- name: ListFavoriteTeams :many
SELECT t.id, t.name, t.city, t.coach, t.owner, t.stadium, t.established, t.lookup_id, t.logo
FROM teams t
JOIN favorite_teams ft ON ft.team_id = t.id
WHERE ft.user_id = $1
ORDER BY t.name ASC
`

func (q *Queries) ListFavoriteTeams(ctx context.Context, userID int64) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listFavoriteTeams, userID)
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

const listFavoritePlayers = `-- name: ListFavoritePlayers :many
SELECT p.id, p.name, p.age, p.height, p.weight, p.college, p."group", p.position, p.number, p.salary, p.seasons, p.image_url, p.lookup_id
FROM players p
JOIN favorite_players fp ON fp.player_id = p.id
WHERE fp.user_id = $1
ORDER BY p.name ASC
`

func (q *Queries) ListFavoritePlayers(ctx context.Context, userID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listFavoritePlayers, userID)
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
