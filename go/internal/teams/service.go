package teams

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/gridiron/go/internal/models"
	"github.com/mcdev12/gridiron/go/internal/rpcutil"
)

const (
	// TeamServiceName is the fully-qualified name of the TeamService service.
	TeamServiceName = "gridiron.teams.v1.TeamService"

	TeamServiceGetTeamProcedure   = "/gridiron.teams.v1.TeamService/GetTeam"
	TeamServiceListTeamsProcedure = "/gridiron.teams.v1.TeamService/ListTeams"
	TeamServiceGetRosterProcedure = "/gridiron.teams.v1.TeamService/GetRoster"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	ListRoster(ctx context.Context, teamID int64) ([]models.Player, error)
	RosterByGroup(ctx context.Context, teamID int64, group models.RosterGroup) ([]models.Player, error)
}

type GetTeamRequest struct {
	ID int64 `json:"id"`
}

type GetTeamResponse struct {
	Team *models.Team `json:"team"`
}

type ListTeamsRequest struct{}

type ListTeamsResponse struct {
	Teams []models.Team `json:"teams"`
}

// GetRosterRequest asks for a team's roster. An empty Group returns every player.
type GetRosterRequest struct {
	TeamID int64              `json:"team_id"`
	Group  models.RosterGroup `json:"group,omitempty"`
}

type GetRosterResponse struct {
	Players []models.Player `json:"players"`
}

var errorCodes = map[error]connect.Code{
	ErrNotFound:     connect.CodeNotFound,
	ErrInvalidGroup: connect.CodeInvalidArgument,
}

// Service implements the TeamService RPC interface
type Service struct {
	app TeamsApp
}

// NewService creates a new teams RPC service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// NewTeamServiceHandler builds an HTTP handler serving every procedure of
// the service, to be mounted on the returned path.
func NewTeamServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = rpcutil.HandlerOptions(opts...)
	getTeam := connect.NewUnaryHandler(TeamServiceGetTeamProcedure, svc.GetTeam, opts...)
	listTeams := connect.NewUnaryHandler(TeamServiceListTeamsProcedure, svc.ListTeams, opts...)
	getRoster := connect.NewUnaryHandler(TeamServiceGetRosterProcedure, svc.GetRoster, opts...)

	return "/" + TeamServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TeamServiceGetTeamProcedure:
			getTeam.ServeHTTP(w, r)
		case TeamServiceListTeamsProcedure:
			listTeams.ServeHTTP(w, r)
		case TeamServiceGetRosterProcedure:
			getRoster.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[GetTeamRequest]) (*connect.Response[GetTeamResponse], error) {
	team, err := s.app.GetTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, connect.NewError(rpcutil.CodeFor(err, errorCodes), err)
	}

	return connect.NewResponse(&GetTeamResponse{Team: team}), nil
}

// ListTeams retrieves all teams
func (s *Service) ListTeams(ctx context.Context, req *connect.Request[ListTeamsRequest]) (*connect.Response[ListTeamsResponse], error) {
	teams, err := s.app.ListAllTeams(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&ListTeamsResponse{Teams: teams}), nil
}

// GetRoster retrieves a team's roster, optionally narrowed to one roster group
func (s *Service) GetRoster(ctx context.Context, req *connect.Request[GetRosterRequest]) (*connect.Response[GetRosterResponse], error) {
	var (
		players []models.Player
		err     error
	)
	if req.Msg.Group == "" {
		players, err = s.app.ListRoster(ctx, req.Msg.TeamID)
	} else {
		players, err = s.app.RosterByGroup(ctx, req.Msg.TeamID, req.Msg.Group)
	}
	if err != nil {
		return nil, connect.NewError(rpcutil.CodeFor(err, errorCodes), err)
	}

	return connect.NewResponse(&GetRosterResponse{Players: players}), nil
}
