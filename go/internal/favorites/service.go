package favorites

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/gridiron/go/internal/identity"
	"github.com/mcdev12/gridiron/go/internal/rpcutil"
)

const (
	// FavoriteServiceName is the fully-qualified name of the FavoriteService service.
	FavoriteServiceName = "gridiron.favorites.v1.FavoriteService"

	FavoriteServiceToggleTeamProcedure    = "/gridiron.favorites.v1.FavoriteService/ToggleTeam"
	FavoriteServiceTogglePlayerProcedure  = "/gridiron.favorites.v1.FavoriteService/TogglePlayer"
	FavoriteServiceListFavoritesProcedure = "/gridiron.favorites.v1.FavoriteService/ListFavorites"
)

// FavoritesApp defines what the service layer needs from the favorites application
type FavoritesApp interface {
	ToggleTeam(ctx context.Context, teamID int64) (Result, error)
	TogglePlayer(ctx context.Context, playerID int64) (Result, error)
	ListFavorites(ctx context.Context, userID int64) (*Favorites, error)
}

type ToggleRequest struct {
	ID int64 `json:"id"`
}

type ToggleResponse struct {
	Result  Result `json:"result"`
	Message string `json:"message"`
}

type ListFavoritesRequest struct{}

type ListFavoritesResponse struct {
	Favorites *Favorites `json:"favorites"`
}

var errorCodes = map[error]connect.Code{
	ErrUnauthorized: connect.CodeUnauthenticated,
	ErrNotFound:     connect.CodeNotFound,
}

// Service implements the FavoriteService RPC interface
type Service struct {
	app FavoritesApp
}

// NewService creates a new favorites RPC service
func NewService(app FavoritesApp) *Service {
	return &Service{
		app: app,
	}
}

// NewFavoriteServiceHandler builds an HTTP handler serving every procedure of
// the service, to be mounted on the returned path.
func NewFavoriteServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpcutil.HandlerOptions(opts...)
	toggleTeam := connect.NewUnaryHandler(FavoriteServiceToggleTeamProcedure, svc.ToggleTeam, opts...)
	togglePlayer := connect.NewUnaryHandler(FavoriteServiceTogglePlayerProcedure, svc.TogglePlayer, opts...)
	listFavorites := connect.NewUnaryHandler(FavoriteServiceListFavoritesProcedure, svc.ListFavorites, opts...)

	return "/" + FavoriteServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case FavoriteServiceToggleTeamProcedure:
			toggleTeam.ServeHTTP(w, r)
		case FavoriteServiceTogglePlayerProcedure:
			togglePlayer.ServeHTTP(w, r)
		case FavoriteServiceListFavoritesProcedure:
			listFavorites.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ToggleTeam flips a team in the caller's favorites
func (s *Service) ToggleTeam(ctx context.Context, req *connect.Request[ToggleRequest]) (*connect.Response[ToggleResponse], error) {
	result, err := s.app.ToggleTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, connect.NewError(rpcutil.CodeFor(err, errorCodes), err)
	}

	return connect.NewResponse(&ToggleResponse{
		Result:  result,
		Message: result.Message(),
	}), nil
}

// TogglePlayer flips a player in the caller's favorites
func (s *Service) TogglePlayer(ctx context.Context, req *connect.Request[ToggleRequest]) (*connect.Response[ToggleResponse], error) {
	result, err := s.app.TogglePlayer(ctx, req.Msg.ID)
	if err != nil {
		return nil, connect.NewError(rpcutil.CodeFor(err, errorCodes), err)
	}

	return connect.NewResponse(&ToggleResponse{
		Result:  result,
		Message: result.Message(),
	}), nil
}

// ListFavorites returns the caller's favorite teams and players
func (s *Service) ListFavorites(ctx context.Context, req *connect.Request[ListFavoritesRequest]) (*connect.Response[ListFavoritesResponse], error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrUnauthorized)
	}

	favs, err := s.app.ListFavorites(ctx, caller.UserID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ListFavoritesResponse{Favorites: favs}), nil
}
