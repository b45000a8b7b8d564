package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jdifek/fitziz-adminka/internal/features/auth/service"
)

type fakeAuthService struct {
	token      string
	loggedOut  []string
	loginCalls int
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	f.loginCalls++
	if username != "admin" || password != "secret" {
		return "", service.ErrInvalidCredentials
	}
	return f.token, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) Validate(ctx context.Context, token string) (bool, error) {
	return token == f.token, nil
}

func setupRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(svc).RegisterRoutes(router.Group(""), router.Group("/admin"))
	return router
}

func TestLoginHandlerSuccess(t *testing.T) {
	router := setupRouter(&fakeAuthService{token: "tok-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"username":"admin","password":"secret"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"token":"tok-1"}`, w.Body.String())
}

func TestLoginHandlerWrongCredentials(t *testing.T) {
	router := setupRouter(&fakeAuthService{token: "tok-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLoginHandlerBadBody(t *testing.T) {
	svc := &fakeAuthService{}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader("{"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, svc.loginCalls)
}

func TestLogoutHandler(t *testing.T) {
	svc := &fakeAuthService{token: "tok-2"}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-2")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, []string{"tok-2"}, svc.loggedOut)
}
