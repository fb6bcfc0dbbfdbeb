package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) submitContact(c echo.Context) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := s.contactSvc.Submit(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}
