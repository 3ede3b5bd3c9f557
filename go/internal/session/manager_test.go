package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/gridiron/go/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *MemoryStore, *clockwork.FakeClock) {
	store := NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC))
	return NewManager(store, clock, Config{TTL: time.Hour}), store, clock
}

// serve runs one request through the middleware and returns the session
// cookie that came back, if any.
func serve(t *testing.T, m *Manager, cookie *http.Cookie, h http.HandlerFunc) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	m.Middleware(h).ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return cookie
}

func TestAnonymousSessionIsNotPersisted(t *testing.T) {
	m, store, _ := newTestManager()

	cookie := serve(t, m, nil, func(w http.ResponseWriter, r *http.Request) {
		s, ok := FromContext(r.Context())
		require.True(t, ok)
		assert.False(t, s.Authenticated())
		_, ok = identity.FromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	assert.Nil(t, cookie)
	assert.Empty(t, store.sessions)
}

func TestLoginThreadsIdentity(t *testing.T) {
	m, _, _ := newTestManager()

	cookie := serve(t, m, nil, func(w http.ResponseWriter, r *http.Request) {
		s, _ := FromContext(r.Context())
		m.Login(r.Context(), s, 42)
		s.AddFlash("success", "Hello, alice!")
		http.Redirect(w, r, "/", http.StatusFound)
	})
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	serve(t, m, cookie, func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), id.UserID)

		s, _ := FromContext(r.Context())
		flashes := s.PopFlashes()
		require.Len(t, flashes, 1)
		assert.Equal(t, "Hello, alice!", flashes[0].Message)
	})

	serve(t, m, cookie, func(w http.ResponseWriter, r *http.Request) {
		s, _ := FromContext(r.Context())
		assert.Empty(t, s.PopFlashes(), "flashes are shown once")
	})
}

func TestLoginRotatesSessionID(t *testing.T) {
	m, store, _ := newTestManager()
	ctx := context.Background()

	s := &Session{ID: "before"}
	require.NoError(t, store.Save(ctx, s))

	m.Login(ctx, s, 1)
	assert.NotEqual(t, "before", s.ID)
	_, err := store.Load(ctx, "before")
	assert.ErrorIs(t, err, ErrNotFound)

	m.Logout(ctx, s)
	assert.Nil(t, s.UserID)
	assert.True(t, s.Dirty())
}

func TestExpiredSessionIsDropped(t *testing.T) {
	m, store, clock := newTestManager()

	cookie := serve(t, m, nil, func(w http.ResponseWriter, r *http.Request) {
		s, _ := FromContext(r.Context())
		m.Login(r.Context(), s, 7)
	})
	require.NotNil(t, cookie)
	require.Len(t, store.sessions, 1)

	clock.Advance(2 * time.Hour)

	serve(t, m, cookie, func(w http.ResponseWriter, r *http.Request) {
		_, ok := identity.FromContext(r.Context())
		assert.False(t, ok)
	})
	assert.Empty(t, store.sessions)
}

func TestSweep(t *testing.T) {
	m, store, clock := newTestManager()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "old", ExpiresAt: clock.Now().Add(time.Minute)}))
	require.NoError(t, store.Save(ctx, &Session{ID: "new", ExpiresAt: clock.Now().Add(time.Hour)}))
	clock.Advance(10 * time.Minute)

	n, err := m.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = store.Load(ctx, "new")
	assert.NoError(t, err)
}
