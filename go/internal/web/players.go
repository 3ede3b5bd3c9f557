package web

import (
	"errors"
	"net/http"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/player"
	"github.com/mcdev12/gridiron/go/internal/teams"
)

type playerListPage struct {
	Players         []models.Player
	Query           string
	FavoritePlayers map[int64]bool
}

type playerPage struct {
	Player   *models.Player
	Team     *models.Team
	Stats    *models.StatGroups
	Favorite bool
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	list, err := s.deps.Players.ListPlayers(r.Context(), query)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	_, favPlayers, err := s.favoriteSets(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "players/all-players.html", playerListPage{
		Players:         list,
		Query:           query,
		FavoritePlayers: favPlayers,
	})
}

// handleShowPlayer renders a player with live statistics. A failed lookup
// still renders the page, without statistics.
func (s *Server) handleShowPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	p, err := s.deps.Players.GetPlayer(r.Context(), id)
	if err != nil {
		if errors.Is(err, player.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	page := playerPage{Player: p}
	if p.FirstTeamID != nil {
		team, err := s.deps.Teams.GetTeam(r.Context(), *p.FirstTeamID)
		if err != nil && !errors.Is(err, teams.ErrNotFound) {
			s.serverError(w, r, err)
			return
		}
		page.Team = team
	}

	_, favPlayers, err := s.favoriteSets(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	page.Favorite = favPlayers[p.ID]
	page.Stats = s.deps.Stats.ForPlayer(r.Context(), p)

	s.render(w, r, http.StatusOK, "players/stats.html", page)
}
