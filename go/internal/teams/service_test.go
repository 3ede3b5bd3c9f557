package teams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rpcutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamServer(t *testing.T, app *App) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	path, handler := NewTeamServiceHandler(NewService(app))
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestServiceGetTeam(t *testing.T) {
	app := NewApp(&fakeRepo{teams: map[int64]models.Team{4321: {ID: 4321, Name: "Test Team"}}}, &fakePlayerApp{})
	server := newTeamServer(t, app)

	client := connect.NewClient[GetTeamRequest, GetTeamResponse](
		server.Client(),
		server.URL+TeamServiceGetTeamProcedure,
		rpcutil.ClientOptions()...,
	)

	resp, err := client.CallUnary(context.Background(), connect.NewRequest(&GetTeamRequest{ID: 4321}))
	require.NoError(t, err)
	assert.Equal(t, "Test Team", resp.Msg.Team.Name)

	_, err = client.CallUnary(context.Background(), connect.NewRequest(&GetTeamRequest{ID: 1}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestServiceGetRoster(t *testing.T) {
	repo := &fakeRepo{
		teams:  map[int64]models.Team{4321: {ID: 4321}},
		roster: map[int64][]models.Player{4321: {{ID: 1, Name: "Player One"}, {ID: 2, Name: "Player Two"}}},
	}
	players := &fakePlayerApp{byGroup: map[models.RosterGroup][]models.Player{
		models.GroupDefense: {{ID: 2, Name: "Player Two", Group: models.GroupDefense, FirstTeamID: teamID(4321)}},
	}}
	server := newTeamServer(t, NewApp(repo, players))

	client := connect.NewClient[GetRosterRequest, GetRosterResponse](
		server.Client(),
		server.URL+TeamServiceGetRosterProcedure,
		rpcutil.ClientOptions()...,
	)
	ctx := context.Background()

	all, err := client.CallUnary(ctx, connect.NewRequest(&GetRosterRequest{TeamID: 4321}))
	require.NoError(t, err)
	assert.Len(t, all.Msg.Players, 2)

	defense, err := client.CallUnary(ctx, connect.NewRequest(&GetRosterRequest{TeamID: 4321, Group: models.GroupDefense}))
	require.NoError(t, err)
	require.Len(t, defense.Msg.Players, 1)
	assert.Equal(t, "Player Two", defense.Msg.Players[0].Name)

	_, err = client.CallUnary(ctx, connect.NewRequest(&GetRosterRequest{TeamID: 4321, Group: models.GroupUnknown}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.CallUnary(ctx, connect.NewRequest(&GetRosterRequest{TeamID: 99}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
