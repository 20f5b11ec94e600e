package labresult

import (
	"context"

	"github.com/google/uuid"
)

// PanelRepository provides access to lab panels.
type PanelRepository interface {
	Create(ctx context.Context, p *Panel) error
	Get(ctx context.Context, id uuid.UUID) (*Panel, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status PanelStatus) error
}

// ResultRepository provides access to normalized results and their notes.
type ResultRepository interface {
	Insert(ctx context.Context, r *Result) error
	Get(ctx context.Context, id uuid.UUID) (*Result, error)
	ListByPanel(ctx context.Context, panelID uuid.UUID, needsReviewOnly bool) ([]*Result, error)
	ListReviewQueue(ctx context.Context, limit int) ([]*Result, error)
	AddNote(ctx context.Context, n *Note) error
	ListNotes(ctx context.Context, resultID uuid.UUID) ([]*Note, error)
}
