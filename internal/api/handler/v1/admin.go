package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/service"
)

type AdminService interface {
	GetDashboard(ctx context.Context) (domain.ReimburseDashboard, error)
	GetReimburseDetail(ctx context.Context, id uint) (domain.ReimburseDetail, error)
	ApproveReimbursement(ctx context.Context, id uint) (domain.Reimbursement, error)
	RejectReimbursement(ctx context.Context, id uint) (domain.Reimbursement, error)
	ProcessReimbursement(ctx context.Context, id uint) (domain.Reimbursement, error)
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// HandleGetDashboard godoc
// @Summary      Reimbursement review dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.ReimburseDashboard
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/reimburses [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetDashboard(ctx *gin.Context) {
	dashboard, err := h.svc.GetDashboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDashboard -> h.svc.GetDashboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}

// HandleGetReimburseDetail godoc
// @Summary      One claim with its claimant and team roster
// @Tags         admin
// @Produce      json
// @Param        reimburseID  path      int  true  "Reimbursement ID"
// @Success      200          {object}  domain.ReimburseDetail
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/reimburses/{reimburseID} [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleGetReimburseDetail(ctx *gin.Context) {
	reimburseID, err := strconv.ParseUint(ctx.Param("reimburseID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	detail, err := h.svc.GetReimburseDetail(ctx.Request.Context(), uint(reimburseID))
	if err != nil {
		if errors.Is(err, service.ErrReimbursementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reimbursement", "reimburseID", reimburseID))
			return
		}

		err = fmt.Errorf("v1.HandleGetReimburseDetail -> h.svc.GetReimburseDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// HandleApproveReimbursement godoc
// @Summary      Approve a claim
// @Tags         admin
// @Produce      json
// @Param        reimburseID  path      int  true  "Reimbursement ID"
// @Success      200          {object}  domain.Reimbursement
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/reimburses/{reimburseID}/approve [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleApproveReimbursement(ctx *gin.Context) {
	h.decide(ctx, h.svc.ApproveReimbursement)
}

// HandleRejectReimbursement godoc
// @Summary      Reject a claim
// @Tags         admin
// @Produce      json
// @Param        reimburseID  path      int  true  "Reimbursement ID"
// @Success      200          {object}  domain.Reimbursement
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/reimburses/{reimburseID}/reject [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleRejectReimbursement(ctx *gin.Context) {
	h.decide(ctx, h.svc.RejectReimbursement)
}

// HandleProcessReimbursement godoc
// @Summary      Mark a claim as being processed
// @Tags         admin
// @Produce      json
// @Param        reimburseID  path      int  true  "Reimbursement ID"
// @Success      200          {object}  domain.Reimbursement
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/reimburses/{reimburseID}/process [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleProcessReimbursement(ctx *gin.Context) {
	h.decide(ctx, h.svc.ProcessReimbursement)
}

func (h *AdminHandler) decide(ctx *gin.Context, fn func(context.Context, uint) (domain.Reimbursement, error)) {
	reimburseID, err := strconv.ParseUint(ctx.Param("reimburseID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	claim, err := fn(ctx.Request.Context(), uint(reimburseID))
	if err != nil {
		if errors.Is(err, service.ErrReimbursementNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reimbursement", "reimburseID", reimburseID))
			return
		}

		err = fmt.Errorf("v1.AdminHandler.decide -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, claim)
}
