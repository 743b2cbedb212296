package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/request"
	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/service"
)

type TeamService interface {
	RequestJoin(ctx context.Context, teamID, userID uint) (domain.Team, error)
	Decide(ctx context.Context, teamID, leaderID, memberID uint, action string) (domain.MemberDecision, error)
	StopPublication(ctx context.Context, teamID, leaderID uint) (domain.EnrichedTeam, error)
	DeleteTeam(ctx context.Context, teamID, leaderID uint) error
	GetTeam(ctx context.Context, teamID uint) (domain.EnrichedTeam, error)
	GetAllTeams(ctx context.Context) ([]domain.EnrichedTeam, error)
	GetTeamsForUser(ctx context.Context, userID uint) ([]domain.EnrichedTeam, error)
}

type TeamHandler struct {
	svc  TeamService
	uSvc UserGetter
}

func NewTeamHandler(svc TeamService, uSvc UserGetter) *TeamHandler {
	return &TeamHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetTeams godoc
// @Summary      List all teams
// @Tags         teams
// @Produce      json
// @Success      200  {array}   domain.EnrichedTeam
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /teams [get]
// @Security     BearerAuth
func (h *TeamHandler) HandleGetTeams(ctx *gin.Context) {
	teams, err := h.svc.GetAllTeams(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetTeams -> h.svc.GetAllTeams -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetTeam godoc
// @Summary      Get one team
// @Tags         teams
// @Produce      json
// @Param        teamID  path      int  true  "Team ID"
// @Success      200     {object}  domain.EnrichedTeam
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID} [get]
// @Security     BearerAuth
func (h *TeamHandler) HandleGetTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseUint(ctx.Param("teamID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	team, err := h.svc.GetTeam(ctx.Request.Context(), uint(teamID))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team", "teamID", teamID))
			return
		}

		err = fmt.Errorf("v1.HandleGetTeam -> h.svc.GetTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleRequestJoin godoc
// @Summary      Ask to join a team
// @Description  Files a pending join request and notifies the team leader.
// @Tags         teams
// @Produce      json
// @Param        teamID  path      int  true  "Team ID"
// @Success      201     {object}  domain.Team
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/join [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleRequestJoin(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, err := strconv.ParseUint(ctx.Param("teamID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	team, err := h.svc.RequestJoin(ctx.Request.Context(), uint(teamID), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "teamID", teamID))
			return
		case errors.Is(err, service.ErrTeamFull),
			errors.Is(err, service.ErrAlreadyMember),
			errors.Is(err, service.ErrDuplicateJoinRequest),
			errors.Is(err, service.ErrAlreadyParticipating):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleRequestJoin -> h.svc.RequestJoin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// HandleDecideMember godoc
// @Summary      Approve or reject a pending join request
// @Tags         teams
// @Accept       json
// @Produce      json
// @Param        teamID  path      int                            true  "Team ID"
// @Param        request body      request.MemberDecisionRequest  true  "decision"
// @Success      200     {object}  domain.MemberDecision
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/members [patch]
// @Security     BearerAuth
func (h *TeamHandler) HandleDecideMember(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, err := strconv.ParseUint(ctx.Param("teamID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.MemberDecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	decision, err := h.svc.Decide(ctx.Request.Context(), uint(teamID), user.ID, req.MemberID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "teamID", teamID))
			return
		case errors.Is(err, service.ErrNotTeamLeader):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		case errors.Is(err, service.ErrTeamFull), errors.Is(err, service.ErrAlreadyParticipating):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		case errors.Is(err, service.ErrUnknownDecision):
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleDecideMember -> h.svc.Decide -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, decision)
}

// HandleStopPublication godoc
// @Summary      Close a team for further joins
// @Tags         teams
// @Produce      json
// @Param        teamID  path      int  true  "Team ID"
// @Success      200     {object}  domain.EnrichedTeam
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID}/stopPublication [post]
// @Security     BearerAuth
func (h *TeamHandler) HandleStopPublication(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, err := strconv.ParseUint(ctx.Param("teamID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	team, err := h.svc.StopPublication(ctx.Request.Context(), uint(teamID), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "teamID", teamID))
			return
		case errors.Is(err, service.ErrNotTeamLeader):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		case errors.Is(err, service.ErrCompetitionExpired):
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleStopPublication -> h.svc.StopPublication -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// HandleDeleteTeam godoc
// @Summary      Delete a team and everything attached to it
// @Tags         teams
// @Produce      json
// @Param        teamID  path  int  true  "Team ID"
// @Success      204
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /teams/{teamID} [delete]
// @Security     BearerAuth
func (h *TeamHandler) HandleDeleteTeam(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	teamID, err := strconv.ParseUint(ctx.Param("teamID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteTeam(ctx.Request.Context(), uint(teamID), user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.RenderErr(ctx, response.ErrNotFound("team", "teamID", teamID))
			return
		case errors.Is(err, service.ErrNotTeamLeader):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTeam -> h.svc.DeleteTeam -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
