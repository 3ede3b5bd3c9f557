package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"

	"github.com/mcdev12/gridiron/go/internal/identity"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/session"
	"github.com/mcdev12/gridiron/go/internal/users"
	"github.com/rs/zerolog/log"
)

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

var pageFiles = []string{
	"home.html",
	"errors/404.html",
	"errors/500.html",
	"users/signup.html",
	"users/login.html",
	"users/show.html",
	"users/players.html",
	"users/edit.html",
	"users/all-users.html",
	"teams/show.html",
	"teams/offense.html",
	"teams/defense.html",
	"teams/special-teams.html",
	"players/all-players.html",
	"players/stats.html",
}

var funcs = template.FuncMap{
	"teamPath":   func(id int64) string { return "/teams/" + strconv.FormatInt(id, 10) },
	"playerPath": func(id int64) string { return "/players/" + strconv.FormatInt(id, 10) },
	"userPath":   func(id int64) string { return "/users/" + strconv.FormatInt(id, 10) },
	"fav":        func(id int64, on bool) favoriteButton { return favoriteButton{ID: id, On: on} },
	"derefInt": func(v *int) string {
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	},
}

type favoriteButton struct {
	ID int64
	On bool
}

// NewRenderer parses the layout, partials and every page from assets.
func NewRenderer(assets fs.FS) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageFiles))}
	for _, page := range pageFiles {
		t, err := template.New(path.Base(page)).Funcs(funcs).ParseFS(assets,
			"templates/base.html",
			"templates/partials/*.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Page is the value every template is executed with
type Page struct {
	CurrentUser *models.User
	Flashes     []session.Flash
	Data        any
}

func (r *Renderer) execute(name string, page Page) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// render writes the named page. Queued flashes are consumed.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	page := Page{
		CurrentUser: currentUser(r.Context()),
		Data:        data,
	}
	if sess, ok := session.FromContext(r.Context()); ok {
		page.Flashes = sess.PopFlashes()
	}

	body, err := s.renderer.execute(name, page)
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "errors/404.html", nil)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	s.render(w, r, http.StatusInternalServerError, "errors/500.html", nil)
}

func flash(r *http.Request, category, message string) {
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.AddFlash(category, message)
	}
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// pathID parses the {id} wildcard. Non-numeric ids are treated as missing.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type userKey struct{}

func currentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey{}).(*models.User)
	return u
}

// loadCurrentUser resolves the session's identity to a user. A session that
// outlived its user is logged out and the request continues anonymously.
func (s *Server) loadCurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.FromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.deps.Users.GetUser(r.Context(), id.UserID)
		if err != nil {
			if !errors.Is(err, users.ErrNotFound) {
				s.serverError(w, r, err)
				return
			}
			if sess, ok := session.FromContext(r.Context()); ok {
				s.deps.Sessions.Logout(r.Context(), sess)
			}
			next.ServeHTTP(w, r.WithContext(identity.Clear(r.Context())))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}
