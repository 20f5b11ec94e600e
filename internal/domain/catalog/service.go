package catalog

import (
	"context"
	"fmt"

	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// Service provides catalog lookup and statistics operations.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns catalog entries ordered by display order, optionally filtered
// by category.
func (s *Service) List(ctx context.Context, category string) ([]*Biomarker, error) {
	return s.repo.List(ctx, category)
}

// LookupByCode returns the catalog entry for a canonical code.
func (s *Service) LookupByCode(ctx context.Context, code string) (*Biomarker, error) {
	if code == "" {
		return nil, apperr.Validation("code", "code is required")
	}
	return s.repo.GetByCode(ctx, code)
}

// ResolveRange returns the effective reference and optimal bounds for one
// biomarker and gender.
func (s *Service) ResolveRange(ctx context.Context, code string, gender Gender) (*ResolvedRange, error) {
	if !gender.Valid() {
		return nil, apperr.Validation("gender", "must be MALE or FEMALE, got %q", string(gender))
	}
	b, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	rr := b.ResolveRange(gender)
	return &rr, nil
}

// CountByCategory returns the number of catalog entries per category.
func (s *Service) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	return s.repo.CountByCategory(ctx)
}

// LoadSeed validates and upserts the given catalog entries. Validation
// failures abort the whole load; the catalog is reference data and a partial
// load is worse than none.
func (s *Service) LoadSeed(ctx context.Context, entries []*Biomarker) (int, error) {
	seen := make(map[string]bool, len(entries))
	for _, b := range entries {
		if b.Code == "" {
			return 0, fmt.Errorf("seed entry %q has no code", b.Name)
		}
		if seen[b.Code] {
			return 0, fmt.Errorf("duplicate seed code %s", b.Code)
		}
		seen[b.Code] = true

		if err := validateRange(b.Code, b.RefLow, b.RefHigh); err != nil {
			return 0, err
		}
		for gender, ov := range b.GenderRanges {
			if !gender.Valid() {
				return 0, fmt.Errorf("seed %s: unknown override gender %q", b.Code, string(gender))
			}
			if err := validateRange(b.Code, ov.RefLow, ov.RefHigh); err != nil {
				return 0, err
			}
		}
	}

	count := 0
	for _, b := range entries {
		if err := s.repo.Upsert(ctx, b); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func validateRange(code string, low, high *float64) error {
	if low != nil && high != nil && *low > *high {
		return fmt.Errorf("seed %s: ref_low %v exceeds ref_high %v", code, *low, *high)
	}
	return nil
}
