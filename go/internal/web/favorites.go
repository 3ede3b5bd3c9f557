package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/mcdev12/gridiron/go/internal/favorites"
	"github.com/mcdev12/gridiron/go/internal/identity"
)

func (s *Server) handleToggleTeam(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, s.deps.Favorites.ToggleTeam)
}

func (s *Server) handleTogglePlayer(w http.ResponseWriter, r *http.Request) {
	s.toggle(w, r, s.deps.Favorites.TogglePlayer)
}

// toggle answers in plain text for the page script: the outcome message, or
// 401 "Unauthorized" without a logged-in user.
func (s *Server) toggle(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (favorites.Result, error)) {
	if _, ok := identity.FromContext(r.Context()); !ok {
		writeText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	result, err := fn(r.Context(), id)
	switch {
	case errors.Is(err, favorites.ErrUnauthorized):
		writeText(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, favorites.ErrNotFound):
		s.notFound(w, r)
	case err != nil:
		s.serverError(w, r, err)
	default:
		writeText(w, http.StatusOK, result.Message())
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
