package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AdminKeyHeader authenticates catalog mutations.
const AdminKeyHeader = "X-Admin-Key"

type AdminKeyMiddleware struct {
	apiKey string
	logger *logrus.Logger
}

func NewAdminKeyMiddleware(apiKey string, logger *logrus.Logger) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{apiKey: apiKey, logger: logger}
}

// RequireAdminKey rejects requests whose X-Admin-Key header does not match
// the configured key. Comparison is constant-time.
func (m *AdminKeyMiddleware) RequireAdminKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.apiKey == "" {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "admin API is not configured")
			}
			got := c.Request().Header.Get(AdminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"path": c.Path(), "remote": c.RealIP()}).Warn("rejected admin request with invalid key")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid admin key")
			}
			return next(c)
		}
	}
}
