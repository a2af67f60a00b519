package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campusvoice/backend/internal/api/middleware"
	"campusvoice/backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c)})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := middleware.GenerateToken(testSecret, "student-1")
	require.NoError(t, err)

	userID, err := middleware.ParseToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, "student-1", userID)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	token, err := middleware.GenerateToken(testSecret, "student-1")
	require.NoError(t, err)

	_, err = middleware.ParseToken("another-secret", token)
	assert.Error(t, err)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	_, err := middleware.ParseToken(testSecret, "not.a.jwt")
	assert.Error(t, err)
}

func TestAuthRequired_BearerHeader(t *testing.T) {
	token, err := middleware.GenerateToken(testSecret, "student-1")
	require.NoError(t, err)

	r := authedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "student-1")
}

func TestAuthRequired_QueryTokenForWebsockets(t *testing.T) {
	token, err := middleware.GenerateToken(testSecret, "student-1")
	require.NoError(t, err)

	r := authedRouter(testSecret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami?token="+token, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired_Rejections(t *testing.T) {
	r := authedRouter(testSecret)

	tests := []struct {
		name   string
		header string
		target string
	}{
		{"missing token", "", "/whoami"},
		{"malformed header", "Token abc", "/whoami"},
		{"invalid token", "Bearer bogus", "/whoami"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	storageMock := new(mocks.Storage)
	storageMock.On("IsAdmin", "admin-1").Return(true, nil)
	storageMock.On("IsAdmin", "student-1").Return(false, nil)

	r := gin.New()
	r.GET("/admin-only",
		middleware.AuthRequired(testSecret),
		middleware.AdminRequired(storageMock),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	adminToken, err := middleware.GenerateToken(testSecret, "admin-1")
	require.NoError(t, err)
	studentToken, err := middleware.GenerateToken(testSecret, "student-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
