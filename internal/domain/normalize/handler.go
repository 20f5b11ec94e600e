package normalize

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rajbrades/adonishealth/internal/domain/labresult"
	"github.com/rajbrades/adonishealth/internal/extract"
	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// Handler provides the result submission endpoint: raw observations in,
// normalized and persisted results out.
type Handler struct {
	engine  *Engine
	results *labresult.Service
	extract *extract.Registry
}

// NewHandler creates a new normalization handler.
func NewHandler(engine *Engine, results *labresult.Service, reg *extract.Registry) *Handler {
	return &Handler{engine: engine, results: results, extract: reg}
}

// RegisterRoutes registers the submission route on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/panels/:id/results", h.SubmitResults)
}

type submitRequest struct {
	// Observations are pre-extracted tuples. Alternatively RawReport carries
	// vendor report text to run through the panel provider's adapter.
	Observations []RawObservation `json:"observations"`
	RawReport    string           `json:"raw_report"`
}

type submitResponse struct {
	PanelID  uuid.UUID `json:"panel_id"`
	Total    int       `json:"total"`
	Saved    int       `json:"saved"`
	Failed   int       `json:"failed"`
	Review   int       `json:"needs_review"`
	Outcomes []Outcome `json:"outcomes"`
}

// SubmitResults handles POST /api/v1/panels/:id/results. The response is
// always HTTP 200 with per-item outcomes; item failures are reported in the
// body, not as a request failure.
func (h *Handler) SubmitResults(c echo.Context) error {
	panelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid panel id")
	}

	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	panel, err := h.results.GetPanel(ctx, panelID)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	observations := req.Observations
	if len(observations) == 0 && req.RawReport != "" {
		adapter, err := h.extract.Get(panel.LabProvider)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		extracted, err := adapter.Extract(req.RawReport)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		for _, o := range extracted {
			observations = append(observations, RawObservation{
				RawName:  o.RawName,
				RawValue: o.RawValue,
				RawUnit:  o.RawUnit,
				RawCode:  o.RawCode,
			})
		}
	}
	if len(observations) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "observations or raw_report is required")
	}

	outcomes, err := h.engine.Process(ctx, panel, observations)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	var toSave []*labresult.Result
	for _, out := range outcomes {
		if out.Result != nil {
			toSave = append(toSave, out.Result)
		}
	}
	if err := h.results.SaveResults(ctx, panelID, toSave); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), err.Error())
	}

	resp := submitResponse{
		PanelID:  panelID,
		Total:    len(outcomes),
		Saved:    len(toSave),
		Outcomes: outcomes,
	}
	for _, out := range outcomes {
		if out.Err != "" {
			resp.Failed++
		}
		if out.NeedsReview {
			resp.Review++
		}
	}
	return c.JSON(http.StatusOK, resp)
}
