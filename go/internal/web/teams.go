package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/teams"
)

type homePage struct {
	Teams         []models.Team
	FavoriteTeams map[int64]bool
}

type teamPage struct {
	Team     *models.Team
	Favorite bool
}

type rosterPage struct {
	Team            *models.Team
	Group           models.RosterGroup
	Players         []models.Player
	FavoritePlayers map[int64]bool
}

// favoriteSets returns the current user's favorite team and player ids.
// Both are empty for anonymous visitors.
func (s *Server) favoriteSets(ctx context.Context) (map[int64]bool, map[int64]bool, error) {
	teamIDs, playerIDs := map[int64]bool{}, map[int64]bool{}
	user := currentUser(ctx)
	if user == nil {
		return teamIDs, playerIDs, nil
	}

	favs, err := s.deps.Favorites.ListFavorites(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	for _, t := range favs.Teams {
		teamIDs[t.ID] = true
	}
	for _, p := range favs.Players {
		playerIDs[p.ID] = true
	}
	return teamIDs, playerIDs, nil
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	all, err := s.deps.Teams.ListAllTeams(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	favTeams, _, err := s.favoriteSets(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "home.html", homePage{Teams: all, FavoriteTeams: favTeams})
}

func (s *Server) lookupTeam(w http.ResponseWriter, r *http.Request) (*models.Team, bool) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return nil, false
	}
	team, err := s.deps.Teams.GetTeam(r.Context(), id)
	if err != nil {
		if errors.Is(err, teams.ErrNotFound) {
			s.notFound(w, r)
		} else {
			s.serverError(w, r, err)
		}
		return nil, false
	}
	return team, true
}

func (s *Server) handleShowTeam(w http.ResponseWriter, r *http.Request) {
	team, ok := s.lookupTeam(w, r)
	if !ok {
		return
	}

	page := teamPage{Team: team}
	if user := currentUser(r.Context()); user != nil {
		fav, err := s.deps.Favorites.IsFavoriteTeam(r.Context(), user.ID, team.ID)
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		page.Favorite = fav
	}
	s.render(w, r, http.StatusOK, "teams/show.html", page)
}

// rosterHandler serves one roster group of a team.
func (s *Server) rosterHandler(group models.RosterGroup, tmpl string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, ok := s.lookupTeam(w, r)
		if !ok {
			return
		}

		players, err := s.deps.Teams.RosterByGroup(r.Context(), team.ID, group)
		if err != nil {
			if errors.Is(err, teams.ErrNotFound) {
				s.notFound(w, r)
				return
			}
			s.serverError(w, r, err)
			return
		}

		_, favPlayers, err := s.favoriteSets(r.Context())
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		s.render(w, r, http.StatusOK, tmpl, rosterPage{
			Team:            team,
			Group:           group,
			Players:         players,
			FavoritePlayers: favPlayers,
		})
	}
}
