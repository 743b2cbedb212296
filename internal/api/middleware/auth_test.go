package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codepedia/lomba-api/internal/api/middleware"
	"github.com/codepedia/lomba-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authenticator := middleware.NewAuthenticator(testSigningKey)
	group := router.Group("/", authenticator.VerifyJWT())
	group.GET("/me", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userID": ctx.GetUint(middleware.ContextKeyUserID),
			"role":   ctx.GetString(middleware.ContextKeyRole),
		})
	})

	admin := router.Group("/admin", authenticator.VerifyJWT(), authenticator.RequireAdmin())
	admin.GET("/ping", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	router := newTestRouter()

	t.Run("valid token passes identity through", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "USER", "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userID":42`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte("other-key"), 42, "USER", "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	router := newTestRouter()

	t.Run("admin role passes", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, "ADMIN", "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("plain user is refused", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 2, "USER", "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
