package labresult

import (
	"context"

	"github.com/google/uuid"

	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// Service provides panel and result persistence operations.
type Service struct {
	panels  PanelRepository
	results ResultRepository
}

// NewService creates a new lab result service.
func NewService(panels PanelRepository, results ResultRepository) *Service {
	return &Service{panels: panels, results: results}
}

// CreatePanel opens a pending panel for one patient and provider.
func (s *Service) CreatePanel(ctx context.Context, p *Panel) (*Panel, error) {
	if p.PatientID == "" {
		return nil, apperr.Validation("patient_id", "patient_id is required")
	}
	if p.LabProvider == "" {
		return nil, apperr.Validation("lab_provider", "lab_provider is required")
	}
	if !p.PatientGender.Valid() {
		return nil, apperr.Validation("patient_gender", "must be MALE or FEMALE, got %q", string(p.PatientGender))
	}
	if err := s.panels.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPanel returns one panel by ID.
func (s *Service) GetPanel(ctx context.Context, id uuid.UUID) (*Panel, error) {
	return s.panels.Get(ctx, id)
}

// SaveResults persists the engine's output for a panel and marks the panel
// processed. Each result row is written as produced; items the engine could
// not resolve are stored with nil biomarker linkage rather than dropped.
func (s *Service) SaveResults(ctx context.Context, panelID uuid.UUID, results []*Result) error {
	for _, res := range results {
		res.PanelID = panelID
		if err := s.results.Insert(ctx, res); err != nil {
			return err
		}
	}
	return s.panels.UpdateStatus(ctx, panelID, PanelProcessed)
}

// ListResults returns a panel's results, optionally only those needing review.
func (s *Service) ListResults(ctx context.Context, panelID uuid.UUID, needsReviewOnly bool) ([]*Result, error) {
	if _, err := s.panels.Get(ctx, panelID); err != nil {
		return nil, err
	}
	return s.results.ListByPanel(ctx, panelID, needsReviewOnly)
}

// ReviewQueue returns results across all panels that need reviewer attention.
func (s *Service) ReviewQueue(ctx context.Context, limit int) ([]*Result, error) {
	return s.results.ListReviewQueue(ctx, limit)
}

// AddNote appends a reviewer annotation to a result. The result row itself
// is never mutated.
func (s *Service) AddNote(ctx context.Context, resultID uuid.UUID, author, note string) (*Note, error) {
	if author == "" {
		return nil, apperr.Validation("author", "author is required")
	}
	if note == "" {
		return nil, apperr.Validation("note", "note is required")
	}
	if _, err := s.results.Get(ctx, resultID); err != nil {
		return nil, err
	}

	n := &Note{ResultID: resultID, Author: author, Note: note}
	if err := s.results.AddNote(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// ListNotes returns all annotations on a result in insertion order.
func (s *Service) ListNotes(ctx context.Context, resultID uuid.UUID) ([]*Note, error) {
	return s.results.ListNotes(ctx, resultID)
}
