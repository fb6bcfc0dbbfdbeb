package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) checkBalance(c echo.Context) error {
	var req struct {
		SubscriberID string `json:"subscriber_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.SubscriberID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subscriber_id is required")
	}
	status, err := s.subscriberSvc.CheckBalance(c.Request().Context(), req.SubscriberID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, status)
}
