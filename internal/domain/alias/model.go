package alias

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Alias maps one vendor's name (and optionally code) for an analyte onto a
// canonical biomarker. ConversionFactor converts a value reported in LabUnit
// into the biomarker's default unit.
type Alias struct {
	ID               uuid.UUID `db:"id" json:"id"`
	BiomarkerID      uuid.UUID `db:"biomarker_id" json:"biomarker_id"`
	BiomarkerCode    string    `db:"biomarker_code" json:"biomarker_code"`
	LabProvider      string    `db:"lab_provider" json:"lab_provider"`
	AliasName        string    `db:"alias_name" json:"alias_name"`
	AliasCode        *string   `db:"alias_code" json:"alias_code,omitempty"`
	LabUnit          string    `db:"lab_unit" json:"lab_unit"`
	ConversionFactor float64   `db:"conversion_factor" json:"conversion_factor"`
	LabRefLow        *float64  `db:"lab_ref_low" json:"lab_ref_low,omitempty"`
	LabRefHigh       *float64  `db:"lab_ref_high" json:"lab_ref_high,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// ProviderCount is one row of the per-provider alias statistics report.
type ProviderCount struct {
	LabProvider string `db:"lab_provider" json:"lab_provider"`
	Count       int    `db:"count" json:"count"`
}

// NormalizeName canonicalizes a vendor analyte name for matching: trims,
// collapses internal whitespace runs to single spaces, and casefolds.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
