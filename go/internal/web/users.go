package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mcdev12/gridiron/go/internal/favorites"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/session"
	"github.com/mcdev12/gridiron/go/internal/users"
)

type profileForm struct {
	Username string
	Email    string
	ImageURL string
	Error    string
}

type userPage struct {
	User      *models.User
	Favorites *favorites.Favorites
}

type userPlayersPage struct {
	User   *models.User
	Groups *favorites.GroupedPlayers
}

type userListPage struct {
	Users []models.User
	Query string
}

// requireUser redirects anonymous visitors home with a flash.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := currentUser(r.Context())
	if user == nil {
		flash(r, "danger", "Access unauthorized")
		redirect(w, r, "/")
		return nil, false
	}
	return user, true
}

func (s *Server) handleShowUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.lookupUser(w, r)
	if !ok {
		return
	}

	favs, err := s.deps.Favorites.ListFavorites(r.Context(), user.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "users/show.html", userPage{User: user, Favorites: favs})
}

func (s *Server) handleUserPlayers(w http.ResponseWriter, r *http.Request) {
	user, ok := s.lookupUser(w, r)
	if !ok {
		return
	}

	groups, err := s.deps.Favorites.FavoritePlayersByGroup(r.Context(), user.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "users/players.html", userPlayersPage{User: user, Groups: groups})
}

func (s *Server) lookupUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return nil, false
	}
	user, err := s.deps.Users.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.notFound(w, r)
		} else {
			s.serverError(w, r, err)
		}
		return nil, false
	}
	return user, true
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	list, err := s.deps.Users.ListUsers(r.Context(), query)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "users/all-users.html", userListPage{Users: list, Query: query})
}

func (s *Server) handleProfileForm(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, "users/edit.html", profileForm{
		Username: user.Username,
		Email:    user.Email,
		ImageURL: user.ImageURL,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "users/edit.html", profileForm{Error: "Malformed form"})
		return
	}

	form := profileForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		ImageURL: strings.TrimSpace(r.PostFormValue("image_url")),
	}

	updated, err := s.deps.Users.UpdateProfile(r.Context(), user.ID, users.UpdateProfileRequest{
		Username: form.Username,
		Email:    form.Email,
		ImageURL: form.ImageURL,
		Password: r.PostFormValue("password"),
	})
	switch {
	case errors.Is(err, users.ErrValidation):
		form.Error = err.Error()
		s.render(w, r, http.StatusBadRequest, "users/edit.html", form)
		return
	case errors.Is(err, users.ErrNotAuthenticated):
		flash(r, "danger", "Invalid credentials.")
		s.render(w, r, http.StatusUnauthorized, "users/edit.html", form)
		return
	case errors.Is(err, users.ErrConflict):
		flash(r, "danger", "Username or email already taken!")
		s.render(w, r, http.StatusConflict, "users/edit.html", form)
		return
	case err != nil:
		s.serverError(w, r, err)
		return
	}

	redirect(w, r, fmt.Sprintf("/users/%d", updated.ID))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	if err := s.deps.Users.DeleteUser(r.Context(), user.ID); err != nil {
		s.serverError(w, r, err)
		return
	}

	if sess, ok := session.FromContext(r.Context()); ok {
		s.deps.Sessions.Logout(r.Context(), sess)
	}
	flash(r, "success", "Account deleted successfully")
	redirect(w, r, "/")
}
