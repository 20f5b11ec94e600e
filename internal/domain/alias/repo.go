package alias

import "context"

// Repository provides access to the vendor alias registry.
type Repository interface {
	// GetByName does an exact (case-sensitive) name lookup.
	GetByName(ctx context.Context, provider, name string) (*Alias, error)
	// GetByNameFold does a case-insensitive name lookup.
	GetByNameFold(ctx context.Context, provider, name string) (*Alias, error)
	// GetByCode looks an alias up by the vendor's own analyte code.
	GetByCode(ctx context.Context, provider, code string) (*Alias, error)
	ListByProvider(ctx context.Context, provider string) ([]*Alias, error)
	ListAll(ctx context.Context) ([]*Alias, error)
	CountByProvider(ctx context.Context) ([]ProviderCount, error)
	// Upsert inserts the alias or, when (provider, name) already maps to the
	// same biomarker, refreshes its details. It reports whether a new row was
	// created and returns a ConflictError when the name is bound to a
	// different biomarker.
	Upsert(ctx context.Context, a *Alias) (created bool, err error)
}
