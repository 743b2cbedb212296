package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/domain"
)

type ProfileService interface {
	GetJoinedCompetitions(ctx context.Context, userID uint) ([]domain.Competition, error)
	GetMajors(ctx context.Context) ([]domain.Major, error)
}

type ProfileTeamLister interface {
	GetTeamsForUser(ctx context.Context, userID uint) ([]domain.EnrichedTeam, error)
}

type ProfileHandler struct {
	svc     ProfileService
	teamSvc ProfileTeamLister
}

func NewProfileHandler(svc ProfileService, teamSvc ProfileTeamLister) *ProfileHandler {
	return &ProfileHandler{
		svc:     svc,
		teamSvc: teamSvc,
	}
}

// HandleGetProfileTeams godoc
// @Summary      List the teams a user leads or belongs to
// @Tags         profile
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   domain.EnrichedTeam
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /profile/{userID}/teams [get]
// @Security     BearerAuth
func (h *ProfileHandler) HandleGetProfileTeams(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	teams, err := h.teamSvc.GetTeamsForUser(ctx.Request.Context(), uint(userID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetProfileTeams -> h.teamSvc.GetTeamsForUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, teams)
}

// HandleGetProfileCompetitions godoc
// @Summary      List the competitions a user has joined
// @Tags         profile
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   domain.Competition
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /profile/{userID}/competitions [get]
// @Security     BearerAuth
func (h *ProfileHandler) HandleGetProfileCompetitions(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	competitions, err := h.svc.GetJoinedCompetitions(ctx.Request.Context(), uint(userID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetProfileCompetitions -> h.svc.GetJoinedCompetitions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, competitions)
}

// HandleGetMajors godoc
// @Summary      List all majors
// @Tags         majors
// @Produce      json
// @Success      200  {array}   domain.Major
// @Failure      500  {object}  response.Err
// @Router       /majors [get]
func (h *ProfileHandler) HandleGetMajors(ctx *gin.Context) {
	majors, err := h.svc.GetMajors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMajors -> h.svc.GetMajors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, majors)
}
