package labresult

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajbrades/adonishealth/internal/domain/catalog"
	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// Handler provides REST endpoints for panels, results and reviewer notes.
// Result submission itself lives in the normalize package; this handler
// covers the read paths and annotations.
type Handler struct {
	svc *Service
}

// NewHandler creates a new lab result handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers panel and result routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/panels", h.CreatePanel)
	api.GET("/panels/:id", h.GetPanel)
	api.GET("/panels/:id/results", h.ListResults)
	api.POST("/results/:id/notes", h.AddNote)
	api.GET("/results/:id/notes", h.ListNotes)
	api.GET("/results/review", h.ReviewQueue)
}

type createPanelRequest struct {
	PatientID     string     `json:"patient_id"`
	LabProvider   string     `json:"lab_provider"`
	PatientGender string     `json:"patient_gender"`
	ReportedAt    *time.Time `json:"reported_at,omitempty"`
}

// CreatePanel handles POST /api/v1/panels
func (h *Handler) CreatePanel(c echo.Context) error {
	var req createPanelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.CreatePanel(c.Request().Context(), &Panel{
		PatientID:     req.PatientID,
		LabProvider:   req.LabProvider,
		PatientGender: catalog.Gender(req.PatientGender),
		ReportedAt:    req.ReportedAt,
	})
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

// GetPanel handles GET /api/v1/panels/:id
func (h *Handler) GetPanel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid panel id")
	}
	p, err := h.svc.GetPanel(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

// ListResults handles GET /api/v1/panels/:id/results?needs_review=true
func (h *Handler) ListResults(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid panel id")
	}
	needsReview, _ := strconv.ParseBool(c.QueryParam("needs_review"))

	results, err := h.svc.ListResults(c.Request().Context(), id, needsReview)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if results == nil {
		results = []*Result{}
	}
	return c.JSON(http.StatusOK, results)
}

type addNoteRequest struct {
	Author string `json:"author"`
	Note   string `json:"note"`
}

// AddNote handles POST /api/v1/results/:id/notes
func (h *Handler) AddNote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid result id")
	}
	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	n, err := h.svc.AddNote(c.Request().Context(), id, req.Author, req.Note)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusCreated, n)
}

// ListNotes handles GET /api/v1/results/:id/notes
func (h *Handler) ListNotes(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid result id")
	}
	notes, err := h.svc.ListNotes(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if notes == nil {
		notes = []*Note{}
	}
	return c.JSON(http.StatusOK, notes)
}

// ReviewQueue handles GET /api/v1/results/review?limit=...
func (h *Handler) ReviewQueue(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	results, err := h.svc.ReviewQueue(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}
	if results == nil {
		results = []*Result{}
	}
	return c.JSON(http.StatusOK, results)
}
