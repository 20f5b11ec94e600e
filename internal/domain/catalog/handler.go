package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// Handler provides REST endpoints for the biomarker catalog.
type Handler struct {
	svc *Service
}

// NewHandler creates a new catalog handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers catalog routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/biomarkers", h.List)
	api.GET("/biomarkers/stats/categories", h.CategoryStats)
	api.GET("/biomarkers/:code", h.GetByCode)
	api.GET("/biomarkers/:code/range", h.GetRange)
}

// List handles GET /api/v1/biomarkers?category=...
func (h *Handler) List(c echo.Context) error {
	biomarkers, err := h.svc.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if biomarkers == nil {
		biomarkers = []*Biomarker{}
	}
	return c.JSON(http.StatusOK, biomarkers)
}

// GetByCode handles GET /api/v1/biomarkers/:code
func (h *Handler) GetByCode(c echo.Context) error {
	b, err := h.svc.LookupByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

// GetRange handles GET /api/v1/biomarkers/:code/range?gender=MALE|FEMALE
func (h *Handler) GetRange(c echo.Context) error {
	gender := Gender(c.QueryParam("gender"))
	rr, err := h.svc.ResolveRange(c.Request().Context(), c.Param("code"), gender)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, rr)
}

// CategoryStats handles GET /api/v1/biomarkers/stats/categories
func (h *Handler) CategoryStats(c echo.Context) error {
	counts, err := h.svc.CountByCategory(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if counts == nil {
		counts = []CategoryCount{}
	}
	return c.JSON(http.StatusOK, counts)
}
