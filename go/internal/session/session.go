package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Flash is a one-shot message shown on the next rendered page
type Flash struct {
	Category string `json:"category"` // "success", "danger", ...
	Message  string `json:"message"`
}

// Session is the server-side state behind the session cookie. UserID is the
// only authentication signal.
type Session struct {
	ID         string    `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	Flashes    []Flash   `json:"flashes,omitempty"`
	ClientAddr string    `json:"client_addr,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`

	dirty bool
}

// AddFlash queues a message for the next page
func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
	s.dirty = true
}

// PopFlashes returns and clears the queued messages
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	if len(flashes) > 0 {
		s.Flashes = nil
		s.dirty = true
	}
	return flashes
}

// Authenticated reports whether a user is logged in on this session
func (s *Session) Authenticated() bool {
	return s.UserID != nil
}

// Dirty reports whether the session changed since it was loaded
func (s *Session) Dirty() bool {
	return s.dirty
}

// Store persists sessions by ID
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// Sweeper is implemented by stores that need expired rows removed explicitly
type Sweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type contextKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session carried by ctx
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
