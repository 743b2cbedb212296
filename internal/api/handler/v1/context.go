package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/api/middleware"
	"github.com/codepedia/lomba-api/internal/domain"
	"github.com/codepedia/lomba-api/internal/service"
)

type UserGetter interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// getUserFromContext resolves the authenticated user stored by the JWT
// middleware into a full user record.
func getUserFromContext(ctx *gin.Context, svc UserGetter) (domain.User, *response.Err) {
	raw, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized("not authenticated")
	}

	userID, ok := raw.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized("not authenticated")
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized("not authenticated")
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}
