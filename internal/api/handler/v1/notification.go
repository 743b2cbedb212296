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

type NotificationService interface {
	GetNotifications(ctx context.Context, receiverID uint) ([]domain.Notification, error)
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// HandleGetNotifications godoc
// @Summary      List a user's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Param        userID  path      int  true  "Receiver user ID"
// @Success      200     {array}   domain.Notification
// @Failure      400     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /notifications/{userID} [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleGetNotifications(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	notifications, err := h.svc.GetNotifications(ctx.Request.Context(), uint(userID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetNotifications -> h.svc.GetNotifications -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}
