package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/roamstone/esim-portal/internal/infrastructure/httpserver/middleware"
)

func invokeAdminKey(t *testing.T, m *middleware.AdminKeyMiddleware, key string) error {
	t.Helper()
	e := echo.New()
	handler := m.RequireAdminKey()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if key != "" {
		req.Header.Set(middleware.AdminKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	return handler(e.NewContext(req, rec))
}

func TestAdminKeyMiddleware_MissingKeyReturns401(t *testing.T) {
	m := middleware.NewAdminKeyMiddleware("secret", nil)
	err := invokeAdminKey(t, m, "")
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

func TestAdminKeyMiddleware_WrongKeyReturns401(t *testing.T) {
	m := middleware.NewAdminKeyMiddleware("secret", nil)
	err := invokeAdminKey(t, m, "not-the-key")
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, htErr.Code)
}

func TestAdminKeyMiddleware_ValidKeyPasses(t *testing.T) {
	m := middleware.NewAdminKeyMiddleware("secret", nil)
	require.NoError(t, invokeAdminKey(t, m, "secret"))
}

func TestAdminKeyMiddleware_UnconfiguredReturns503(t *testing.T) {
	m := middleware.NewAdminKeyMiddleware("", nil)
	err := invokeAdminKey(t, m, "anything")
	require.Error(t, err)
	htErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusServiceUnavailable, htErr.Code)
}
