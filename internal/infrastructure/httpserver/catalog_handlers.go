package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
)

// listResponse is the envelope for every list endpoint. A degraded response
// still carries renderable data, with fallback=true and the error text
// alongside it.
type listResponse struct {
	Data     any     `json:"data"`
	Fallback bool    `json:"fallback"`
	Error    *string `json:"error"`
}

func listJSON(c echo.Context, data any, fallback bool, err error) error {
	resp := listResponse{Data: data, Fallback: fallback}
	if err != nil {
		msg := err.Error()
		resp.Error = &msg
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) listCountries(c echo.Context) error {
	f := catalog.CountryFilter{
		Status: catalog.Status(c.QueryParam("status")),
		Region: c.QueryParam("region"),
	}
	if top := c.QueryParam("top"); top != "" {
		v, err := strconv.ParseBool(top)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid top parameter")
		}
		f.TopDestination = &v
	}
	if codes := c.QueryParam("codes"); codes != "" {
		f.Codes = strings.Split(codes, ",")
	}
	data, fallback, err := s.catalogSvc.ListCountries(c.Request().Context(), f)
	return listJSON(c, data, fallback, err)
}

func (s *Server) getCountry(c echo.Context) error {
	country, err := s.catalogSvc.GetCountry(c.Request().Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "country not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, country)
}

func (s *Server) listPackages(c echo.Context) error {
	f := catalog.PackageFilter{
		CountryCode: c.QueryParam("country"),
		Status:      catalog.Status(c.QueryParam("status")),
	}
	data, fallback, err := s.catalogSvc.ListPackages(c.Request().Context(), f)
	return listJSON(c, data, fallback, err)
}

func (s *Server) listComboPackages(c echo.Context) error {
	f := catalog.ComboPackageFilter{
		Status:  catalog.Status(c.QueryParam("status")),
		Country: c.QueryParam("country"),
	}
	data, fallback, err := s.catalogSvc.ListComboPackages(c.Request().Context(), f)
	return listJSON(c, data, fallback, err)
}

func (s *Server) listRegions(c echo.Context) error {
	f := catalog.RegionFilter{Status: catalog.Status(c.QueryParam("status"))}
	data, fallback, err := s.catalogSvc.ListRegions(c.Request().Context(), f)
	return listJSON(c, data, fallback, err)
}

func (s *Server) getPage(c echo.Context) error {
	page, err := s.catalogSvc.GetPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "page not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, page)
}
