package player

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rpcutil"
)

const (
	// PlayerServiceName is the fully-qualified name of the PlayerService service.
	PlayerServiceName = "gridiron.players.v1.PlayerService"

	PlayerServiceGetPlayerProcedure   = "/gridiron.players.v1.PlayerService/GetPlayer"
	PlayerServiceListPlayersProcedure = "/gridiron.players.v1.PlayerService/ListPlayers"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	ListPlayers(ctx context.Context, search string) ([]models.Player, error)
}

type GetPlayerRequest struct {
	ID int64 `json:"id"`
}

type GetPlayerResponse struct {
	Player *models.Player `json:"player"`
}

type ListPlayersRequest struct {
	Search string `json:"search,omitempty"`
}

type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
}

// Service implements the PlayerService RPC interface
type Service struct {
	app PlayerApp
}

// NewService creates a new player RPC service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// NewPlayerServiceHandler builds an HTTP handler serving every procedure of
// the service, to be mounted on the returned path.
func NewPlayerServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpcutil.HandlerOptions(opts...)
	getPlayer := connect.NewUnaryHandler(PlayerServiceGetPlayerProcedure, svc.GetPlayer, opts...)
	listPlayers := connect.NewUnaryHandler(PlayerServiceListPlayersProcedure, svc.ListPlayers, opts...)

	return "/" + PlayerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PlayerServiceGetPlayerProcedure:
			getPlayer.ServeHTTP(w, r)
		case PlayerServiceListPlayersProcedure:
			listPlayers.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerRequest]) (*connect.Response[GetPlayerResponse], error) {
	p, err := s.app.GetPlayer(ctx, req.Msg.ID)
	if err != nil {
		return nil, connect.NewError(rpcutil.CodeFor(err, map[error]connect.Code{ErrNotFound: connect.CodeNotFound}), err)
	}

	return connect.NewResponse(&GetPlayerResponse{Player: p}), nil
}

// ListPlayers returns every player, or those whose name contains the search term
func (s *Service) ListPlayers(ctx context.Context, req *connect.Request[ListPlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	players, err := s.app.ListPlayers(ctx, req.Msg.Search)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ListPlayersResponse{Players: players}), nil
}
