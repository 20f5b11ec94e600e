package alias

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// Handler provides REST endpoints for the alias registry.
type Handler struct {
	svc *Service
}

// NewHandler creates a new alias handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers alias routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/aliases", h.List)
	api.GET("/aliases/stats/providers", h.ProviderStats)
	api.POST("/aliases", h.Add)
}

// List handles GET /api/v1/aliases?provider=...
// Without a provider filter the full registry is returned.
func (h *Handler) List(c echo.Context) error {
	provider := c.QueryParam("provider")

	var (
		aliases []*Alias
		err     error
	)
	if provider == "" {
		aliases, err = h.svc.ListAll(c.Request().Context())
	} else {
		aliases, err = h.svc.ListByProvider(c.Request().Context(), provider)
	}
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if aliases == nil {
		aliases = []*Alias{}
	}
	return c.JSON(http.StatusOK, aliases)
}

// ProviderStats handles GET /api/v1/aliases/stats/providers
func (h *Handler) ProviderStats(c echo.Context) error {
	counts, err := h.svc.CountByProvider(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if counts == nil {
		counts = []ProviderCount{}
	}
	return c.JSON(http.StatusOK, counts)
}

// Add handles POST /api/v1/aliases. Responds 201 when a new alias row was
// created, 200 when an existing mapping was refreshed.
func (h *Handler) Add(c echo.Context) error {
	var req AddAliasRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, created, err := h.svc.AddAlias(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, a)
}
