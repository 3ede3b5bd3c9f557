package session

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/gridiron/go/internal/identity"
	"github.com/mcdev12/gridiron/go/internal/sqlutil"
	"github.com/rs/zerolog/log"
)

const CookieName = "gridiron_session"

type Config struct {
	TTL          time.Duration
	CookieSecure bool
}

func DefaultConfig() Config {
	return Config{
		TTL: 7 * 24 * time.Hour,
	}
}

// Manager ties the session cookie to a Store
type Manager struct {
	store  Store
	clock  clockwork.Clock
	config Config
}

func NewManager(store Store, clock clockwork.Clock, cfg Config) *Manager {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Manager{
		store:  store,
		clock:  clock,
		config: cfg,
	}
}

// Load returns the session named by the request cookie, or a fresh anonymous
// session when the cookie is missing, unknown or expired.
func (m *Manager) Load(r *http.Request) *Session {
	ctx := r.Context()
	fresh := &Session{ID: uuid.NewString(), ClientAddr: clientAddr(r)}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return fresh
	}

	s, err := m.store.Load(ctx, cookie.Value)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Msg("failed to load session")
		}
		return fresh
	}

	if !s.ExpiresAt.After(m.clock.Now()) {
		if err := m.store.Delete(ctx, s.ID); err != nil {
			log.Warn().Err(err).Str("session_id", s.ID).Msg("failed to delete expired session")
		}
		return fresh
	}
	return s
}

// Save extends the session's expiry, persists it and sets the cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, s *Session) error {
	s.ExpiresAt = m.clock.Now().Add(m.config.TTL)
	if err := m.store.Save(ctx, s); err != nil {
		return err
	}
	s.dirty = false

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   m.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Login binds userID to the session under a new session ID.
func (m *Manager) Login(ctx context.Context, s *Session, userID int64) {
	m.rotate(ctx, s)
	s.UserID = &userID
	s.dirty = true
}

// Logout drops the user from the session under a new session ID.
// Queued flashes survive.
func (m *Manager) Logout(ctx context.Context, s *Session) {
	m.rotate(ctx, s)
	s.UserID = nil
	s.dirty = true
}

// rotate moves s to a fresh ID. The old record is dropped once the request's
// transaction commits, so the store never waits on rows that transaction holds.
func (m *Manager) rotate(ctx context.Context, s *Session) {
	oldID := s.ID
	sqlutil.AfterCommit(ctx, func() {
		if err := m.store.Delete(context.WithoutCancel(ctx), oldID); err != nil {
			log.Warn().Err(err).Str("session_id", oldID).Msg("failed to delete rotated session")
		}
	})
	s.ID = uuid.NewString()
}

// Sweep removes expired sessions from stores that do not expire them on their own
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	sweeper, ok := m.store.(Sweeper)
	if !ok {
		return 0, nil
	}
	return sweeper.DeleteExpired(ctx, m.clock.Now())
}

// RunSweeper calls Sweep every interval until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			n, err := m.Sweep(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("removed", n).Msg("swept expired sessions")
			}
		}
	}
}

// Middleware loads the session into the request context, and the identity
// with it when a user is logged in. A changed session is saved just before
// the response headers go out.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Load(r)

		ctx := WithSession(r.Context(), s)
		if s.UserID != nil {
			ctx = identity.WithIdentity(ctx, identity.Identity{UserID: *s.UserID})
		}

		sw := &saveOnWrite{ResponseWriter: w, manager: m, session: s, ctx: ctx}
		next.ServeHTTP(sw, r.WithContext(ctx))
		sw.save()
	})
}

// saveOnWrite persists a dirty session the first time headers are written
type saveOnWrite struct {
	http.ResponseWriter
	manager *Manager
	session *Session
	ctx     context.Context
	done    bool
}

func (w *saveOnWrite) save() {
	if w.done {
		return
	}
	w.done = true
	if !w.session.Dirty() {
		return
	}
	if err := w.manager.Save(w.ctx, w.ResponseWriter, w.session); err != nil {
		log.Error().Err(err).Str("session_id", w.session.ID).Msg("failed to save session")
	}
}

func (w *saveOnWrite) WriteHeader(code int) {
	w.save()
	w.ResponseWriter.WriteHeader(code)
}

func (w *saveOnWrite) Write(b []byte) (int, error) {
	w.save()
	return w.ResponseWriter.Write(b)
}

func (w *saveOnWrite) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
