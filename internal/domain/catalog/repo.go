package catalog

import "context"

// Repository provides access to the biomarker catalog.
type Repository interface {
	List(ctx context.Context, category string) ([]*Biomarker, error)
	GetByCode(ctx context.Context, code string) (*Biomarker, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	Upsert(ctx context.Context, b *Biomarker) error
}
