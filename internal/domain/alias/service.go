package alias

import (
	"context"
	"errors"

	"github.com/rajbrades/adonishealth/internal/domain/catalog"
	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// CatalogLookup is the slice of the catalog the alias registry needs.
type CatalogLookup interface {
	GetByCode(ctx context.Context, code string) (*catalog.Biomarker, error)
}

// Service provides alias resolution and management operations.
type Service struct {
	repo    Repository
	catalog CatalogLookup
}

// NewService creates a new alias service.
func NewService(repo Repository, cat CatalogLookup) *Service {
	return &Service{repo: repo, catalog: cat}
}

// FindByVendorName resolves a vendor analyte name to an alias using tiered
// matching: exact first, then case-insensitive, then whitespace-normalized.
// Returns NotFoundError when no tier matches.
func (s *Service) FindByVendorName(ctx context.Context, provider, rawName string) (*Alias, error) {
	if provider == "" || rawName == "" {
		return nil, apperr.Validation("alias", "provider and name are required")
	}

	a, err := s.repo.GetByName(ctx, provider, rawName)
	if err == nil {
		return a, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	a, err = s.repo.GetByNameFold(ctx, provider, rawName)
	if err == nil {
		return a, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	// Whitespace-normalized tier: the registry is small per provider, so a
	// linear scan is fine.
	want := NormalizeName(rawName)
	aliases, err := s.repo.ListByProvider(ctx, provider)
	if err != nil {
		return nil, err
	}
	for _, a := range aliases {
		if NormalizeName(a.AliasName) == want {
			return a, nil
		}
	}
	return nil, apperr.NotFound("alias", provider+"/"+rawName)
}

// FindByVendorCode resolves a vendor analyte code to an alias.
func (s *Service) FindByVendorCode(ctx context.Context, provider, rawCode string) (*Alias, error) {
	if provider == "" || rawCode == "" {
		return nil, apperr.Validation("alias", "provider and code are required")
	}
	return s.repo.GetByCode(ctx, provider, rawCode)
}

// AddAliasRequest carries the write path for registering a vendor alias.
type AddAliasRequest struct {
	BiomarkerCode    string   `json:"biomarker_code"`
	LabProvider      string   `json:"lab_provider"`
	AliasName        string   `json:"alias_name"`
	AliasCode        *string  `json:"alias_code,omitempty"`
	LabUnit          string   `json:"lab_unit"`
	ConversionFactor float64  `json:"conversion_factor"`
	LabRefLow        *float64 `json:"lab_ref_low,omitempty"`
	LabRefHigh       *float64 `json:"lab_ref_high,omitempty"`
}

// AddAlias registers or refreshes a vendor alias. The biomarker code must
// exist (NotFoundError otherwise) and the (provider, name) pair must not be
// bound to a different biomarker (ConflictError). Re-registering the same
// mapping updates unit, factor and vendor range in place.
func (s *Service) AddAlias(ctx context.Context, req *AddAliasRequest) (*Alias, bool, error) {
	if req.BiomarkerCode == "" {
		return nil, false, apperr.Validation("biomarker_code", "biomarker_code is required")
	}
	if req.LabProvider == "" {
		return nil, false, apperr.Validation("lab_provider", "lab_provider is required")
	}
	if req.AliasName == "" {
		return nil, false, apperr.Validation("alias_name", "alias_name is required")
	}
	if req.ConversionFactor < 0 {
		return nil, false, apperr.Validation("conversion_factor", "must not be negative, got %v", req.ConversionFactor)
	}

	b, err := s.catalog.GetByCode(ctx, req.BiomarkerCode)
	if err != nil {
		return nil, false, err
	}

	factor := req.ConversionFactor
	if factor == 0 {
		factor = 1.0
	}
	unit := req.LabUnit
	if unit == "" {
		unit = b.DefaultUnit
	}

	a := &Alias{
		BiomarkerID:      b.ID,
		BiomarkerCode:    b.Code,
		LabProvider:      req.LabProvider,
		AliasName:        req.AliasName,
		AliasCode:        req.AliasCode,
		LabUnit:          unit,
		ConversionFactor: factor,
		LabRefLow:        req.LabRefLow,
		LabRefHigh:       req.LabRefHigh,
	}

	created, err := s.repo.Upsert(ctx, a)
	if err != nil {
		return nil, false, err
	}
	return a, created, nil
}

// ListByProvider returns all aliases registered for one provider.
func (s *Service) ListByProvider(ctx context.Context, provider string) ([]*Alias, error) {
	if provider == "" {
		return nil, apperr.Validation("provider", "provider query parameter is required")
	}
	return s.repo.ListByProvider(ctx, provider)
}

// ListAll returns the full registry across providers.
func (s *Service) ListAll(ctx context.Context) ([]*Alias, error) {
	return s.repo.ListAll(ctx)
}

// CountByProvider returns the number of registered aliases per provider.
func (s *Service) CountByProvider(ctx context.Context) ([]ProviderCount, error) {
	return s.repo.CountByProvider(ctx)
}

// LoadSeed registers the given alias seed entries through the normal AddAlias
// path, so seeding is idempotent and validated the same way API writes are.
func (s *Service) LoadSeed(ctx context.Context, entries []*AddAliasRequest) (int, error) {
	count := 0
	for _, req := range entries {
		if _, _, err := s.AddAlias(ctx, req); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func isNotFound(err error) bool {
	var nf *apperr.NotFoundError
	return errors.As(err, &nf)
}
