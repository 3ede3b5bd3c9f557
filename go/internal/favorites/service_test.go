package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/mcdev12/gridiron/go/internal/identity"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rpcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCaller stands in for the session middleware.
func withCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test-User") == "1" {
			r = r.WithContext(identity.WithIdentity(r.Context(), identity.Identity{UserID: 1}))
		}
		next.ServeHTTP(w, r)
	})
}

func TestServiceToggleTeamOverConnect(t *testing.T) {
	app, repo, _ := newTestApp()
	repo.teams[4321] = models.Team{ID: 4321, Name: "Test Team"}

	mux := http.NewServeMux()
	path, handler := NewFavoriteServiceHandler(NewService(app))
	mux.Handle(path, withCaller(handler))
	server := httptest.NewServer(mux)
	defer server.Close()

	client := connect.NewClient[ToggleRequest, ToggleResponse](
		server.Client(),
		server.URL+FavoriteServiceToggleTeamProcedure,
		rpcutil.ClientOptions()...,
	)

	req := connect.NewRequest(&ToggleRequest{ID: 4321})
	req.Header().Set("X-Test-User", "1")
	resp, err := client.CallUnary(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, Added, resp.Msg.Result)
	assert.Equal(t, "Favorite added", resp.Msg.Message)

	_, err = client.CallUnary(context.Background(), connect.NewRequest(&ToggleRequest{ID: 4321}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	missing := connect.NewRequest(&ToggleRequest{ID: 1})
	missing.Header().Set("X-Test-User", "1")
	_, err = client.CallUnary(context.Background(), missing)
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestServiceListFavorites(t *testing.T) {
	app, repo, _ := newTestApp()
	repo.teams[4321] = models.Team{ID: 4321, Name: "Test Team"}
	repo.favTeams[pair{1, 4321}] = true

	path, handler := NewFavoriteServiceHandler(NewService(app))
	mux := http.NewServeMux()
	mux.Handle(path, withCaller(handler))
	server := httptest.NewServer(mux)
	defer server.Close()

	client := connect.NewClient[ListFavoritesRequest, ListFavoritesResponse](
		server.Client(),
		server.URL+FavoriteServiceListFavoritesProcedure,
		rpcutil.ClientOptions()...,
	)

	req := connect.NewRequest(&ListFavoritesRequest{})
	req.Header().Set("X-Test-User", "1")
	resp, err := client.CallUnary(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Msg.Favorites.Teams, 1)
	assert.Equal(t, "Test Team", resp.Msg.Favorites.Teams[0].Name)
	assert.Empty(t, resp.Msg.Favorites.Players)
}
