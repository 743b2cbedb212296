package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codepedia/lomba-api/internal/api/handler/v1/response"
	"github.com/codepedia/lomba-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "userRole"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// caller's identity in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("missing authorization header"))
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid authorization header"))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized("invalid token"))
			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin must run after VerifyJWT.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextKeyRole) != "ADMIN" {
			response.RenderErr(ctx, response.ErrUnauthorized("admin access required"))
			return
		}

		ctx.Next()
	}
}
