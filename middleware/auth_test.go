package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsline/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("SESSION_SECRET", "unit-test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func guardedEngine() *gin.Engine {
	r := gin.New()
	r.GET("/protected", LoginRequired(), func(ctx *gin.Context) {
		userID, _ := CurrentUserID(ctx)
		ctx.String(http.StatusOK, "user=%d name=%s", userID, CurrentUsername(ctx))
	})
	return r
}

func TestLoginRequiredWithoutCookie(t *testing.T) {
	r := guardedEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestLoginRequiredWithInvalidToken(t *testing.T) {
	r := guardedEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestLoginRequiredWithValidToken(t *testing.T) {
	r := guardedEngine()

	token, err := utils.IssueSession(9, "carol", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user=9 name=carol", w.Body.String())
}

func TestLoginRequiredWithRevokedToken(t *testing.T) {
	r := guardedEngine()

	token, err := utils.IssueSession(3, "dave", time.Hour)
	require.NoError(t, err)
	claims, err := utils.ParseSession(token)
	require.NoError(t, err)
	utils.RevokeSession(claims.ID, claims.ExpiresAt.Time)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}
