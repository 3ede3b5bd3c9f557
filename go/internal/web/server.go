// Package web serves the server-rendered site: pages, forms, the favorite
// toggle endpoints and static assets.
package web

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"net/http"

	"github.com/mcdev12/gridiron/go/internal/favorites"
	"github.com/mcdev12/gridiron/go/internal/metrics"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/session"
	"github.com/mcdev12/gridiron/go/internal/users"
	"github.com/rs/cors"
)

//go:embed templates static
var assets embed.FS

// UserApp is what the site needs from the users application
type UserApp interface {
	Register(ctx context.Context, req users.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, search string) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, req users.UpdateProfileRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// TeamApp is what the site needs from the teams application
type TeamApp interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	RosterByGroup(ctx context.Context, teamID int64, group models.RosterGroup) ([]models.Player, error)
}

// PlayerApp is what the site needs from the player application
type PlayerApp interface {
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	ListPlayers(ctx context.Context, search string) ([]models.Player, error)
}

// FavoriteApp is what the site needs from the favorites application
type FavoriteApp interface {
	ToggleTeam(ctx context.Context, teamID int64) (favorites.Result, error)
	TogglePlayer(ctx context.Context, playerID int64) (favorites.Result, error)
	IsFavoriteTeam(ctx context.Context, userID, teamID int64) (bool, error)
	ListFavorites(ctx context.Context, userID int64) (*favorites.Favorites, error)
	FavoritePlayersByGroup(ctx context.Context, userID int64) (*favorites.GroupedPlayers, error)
}

// StatsApp looks up statistics for a player page
type StatsApp interface {
	ForPlayer(ctx context.Context, player *models.Player) *models.StatGroups
}

// Deps are the collaborators of a Server.
type Deps struct {
	// DB, when set, gives every page request its own transaction scope.
	DB        *sql.DB
	Sessions  *session.Manager
	Users     UserApp
	Teams     TeamApp
	Players   PlayerApp
	Favorites FavoriteApp
	Stats     StatsApp
	Limiter   *LoginLimiter
	// Health replaces the plain liveness answer on /health when set.
	Health http.Handler
}

// Config holds site options.
type Config struct {
	CORSOrigins []string `yaml:"cors_origins"`
	LoginRate   int      `yaml:"login_rate"`
	LoginBurst  int      `yaml:"login_burst"`
}

// Server routes requests to the page handlers
type Server struct {
	deps     Deps
	config   Config
	renderer *Renderer
	pages    *http.ServeMux
}

// NewServer parses the templates and registers every route.
func NewServer(deps Deps, cfg Config) (*Server, error) {
	renderer, err := NewRenderer(assets)
	if err != nil {
		return nil, err
	}
	if deps.Limiter == nil {
		deps.Limiter = NewLoginLimiter(cfg.LoginRate, cfg.LoginBurst)
	}

	s := &Server{
		deps:     deps,
		config:   cfg,
		renderer: renderer,
		pages:    http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	mux := s.pages

	mux.HandleFunc("GET /{$}", s.handleHome)

	mux.HandleFunc("GET /signup", s.handleSignupForm)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)

	mux.HandleFunc("POST /users/toggle-favorite-team/{id}", s.handleToggleTeam)
	mux.HandleFunc("POST /users/toggle-favorite-player/{id}", s.handleTogglePlayer)
	mux.HandleFunc("GET /users/profile", s.handleProfileForm)
	mux.HandleFunc("POST /users/profile", s.handleProfile)
	mux.HandleFunc("POST /users/delete", s.handleDeleteUser)
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("GET /users/{id}", s.handleShowUser)
	mux.HandleFunc("GET /users/{id}/players", s.handleUserPlayers)

	mux.HandleFunc("GET /teams/{id}", s.handleShowTeam)
	mux.HandleFunc("GET /teams/{id}/offense", s.rosterHandler(models.GroupOffense, "teams/offense.html"))
	mux.HandleFunc("GET /teams/{id}/defense", s.rosterHandler(models.GroupDefense, "teams/defense.html"))
	mux.HandleFunc("GET /teams/{id}/special-teams", s.rosterHandler(models.GroupSpecialTeams, "teams/special-teams.html"))

	mux.HandleFunc("GET /players", s.handleListPlayers)
	mux.HandleFunc("GET /players/{id}", s.handleShowPlayer)
}

// Mount adds h under pattern behind the session and transaction middleware,
// e.g. an RPC handler that needs the caller's identity.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.pages.Handle(pattern, h)
}

// Handler assembles the middleware chain around the routes.
func (s *Server) Handler() http.Handler {
	var pages http.Handler = s.pages
	pages = s.loadCurrentUser(pages)
	if s.deps.DB != nil {
		pages = TxScope(s.deps.DB)(pages)
	}
	pages = s.deps.Limiter.Handler(pages)
	pages = s.deps.Sessions.Middleware(pages)

	root := http.NewServeMux()
	root.Handle("/", pages)
	root.Handle("GET /metrics", metrics.Handler())
	if s.deps.Health != nil {
		root.Handle("GET /health", s.deps.Health)
	} else {
		root.HandleFunc("GET /health", handleHealth)
	}
	static, _ := fs.Sub(assets, "static")
	root.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins:   s.config.CORSOrigins,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	var handler http.Handler = root
	handler = c.Handler(handler)
	handler = metrics.InstrumentHandler(handler)
	handler = RequestLogger(handler)
	handler = Recover(handler)
	return handler
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
