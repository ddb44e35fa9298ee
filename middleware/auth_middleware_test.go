package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulndesk-api/services"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString("userId"),
			"userType": c.GetString("userType"),
		})
	})
	router.GET("/workers-only", AuthMiddleware(), WorkerMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	token, _, err := services.GenerateToken("user-1", "worker@vulndesk.local", "worker")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "worker")
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	token, _, err := services.GenerateToken("user-2", "client@vulndesk.local", "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "secret-a")
	token, _, err := services.GenerateToken("user-3", "worker@vulndesk.local", "worker")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	router := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWorkerMiddlewareForbidsClientAccounts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	token, _, err := services.GenerateToken("user-4", "client@vulndesk.local", "client")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workers-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWorkerMiddlewareAllowsWorkerAccounts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	token, _, err := services.GenerateToken("user-5", "worker@vulndesk.local", "worker")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workers-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
