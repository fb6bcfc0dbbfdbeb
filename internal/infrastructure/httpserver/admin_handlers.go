package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
)

func adminError(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

type reorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func bindReorder(c echo.Context) ([]uuid.UUID, error) {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if len(req.IDs) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "ids are required")
	}
	return req.IDs, nil
}

// Countries

func (s *Server) createCountry(c echo.Context) error {
	var req catalog.CreateCountryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	country, err := s.adminSvc.CreateCountry(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, country)
}

func (s *Server) updateCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid country ID")
	}
	var req catalog.UpdateCountryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	country, err := s.adminSvc.UpdateCountry(c.Request().Context(), id, &req)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, country)
}

func (s *Server) deleteCountry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid country ID")
	}
	if err := s.adminSvc.DeleteCountry(c.Request().Context(), id); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reorderCountries(c echo.Context) error {
	ids, err := bindReorder(c)
	if err != nil {
		return err
	}
	if err := s.adminSvc.ReorderCountries(c.Request().Context(), ids); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Packages

func (s *Server) createPackage(c echo.Context) error {
	var req catalog.CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pkg, err := s.adminSvc.CreatePackage(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, pkg)
}

func (s *Server) updatePackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package ID")
	}
	var req catalog.UpdatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pkg, err := s.adminSvc.UpdatePackage(c.Request().Context(), id, &req)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (s *Server) deletePackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package ID")
	}
	if err := s.adminSvc.DeletePackage(c.Request().Context(), id); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reorderPackages(c echo.Context) error {
	ids, err := bindReorder(c)
	if err != nil {
		return err
	}
	if err := s.adminSvc.ReorderPackages(c.Request().Context(), ids); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Combo packages

func (s *Server) createComboPackage(c echo.Context) error {
	var req catalog.CreateComboPackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	combo, err := s.adminSvc.CreateComboPackage(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, combo)
}

func (s *Server) updateComboPackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid combo package ID")
	}
	var req catalog.UpdateComboPackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	combo, err := s.adminSvc.UpdateComboPackage(c.Request().Context(), id, &req)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, combo)
}

func (s *Server) deleteComboPackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid combo package ID")
	}
	if err := s.adminSvc.DeleteComboPackage(c.Request().Context(), id); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reorderComboPackages(c echo.Context) error {
	ids, err := bindReorder(c)
	if err != nil {
		return err
	}
	if err := s.adminSvc.ReorderComboPackages(c.Request().Context(), ids); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Regions

func (s *Server) createRegion(c echo.Context) error {
	var req catalog.CreateRegionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	region, err := s.adminSvc.CreateRegion(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, region)
}

func (s *Server) updateRegion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid region ID")
	}
	var req catalog.UpdateRegionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	region, err := s.adminSvc.UpdateRegion(c.Request().Context(), id, &req)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, region)
}

func (s *Server) deleteRegion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid region ID")
	}
	if err := s.adminSvc.DeleteRegion(c.Request().Context(), id); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) reorderRegions(c echo.Context) error {
	ids, err := bindReorder(c)
	if err != nil {
		return err
	}
	if err := s.adminSvc.ReorderRegions(c.Request().Context(), ids); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Pages

func (s *Server) createPage(c echo.Context) error {
	var req catalog.CreatePageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	page, err := s.adminSvc.CreatePage(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, page)
}

func (s *Server) updatePage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page ID")
	}
	var req catalog.UpdatePageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	page, err := s.adminSvc.UpdatePage(c.Request().Context(), id, &req)
	if err != nil {
		return adminError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) deletePage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page ID")
	}
	if err := s.adminSvc.DeletePage(c.Request().Context(), id); err != nil {
		return adminError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
