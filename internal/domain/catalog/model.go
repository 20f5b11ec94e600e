package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Gender identifies which reference range override applies.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid reports whether g is a known gender value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// RangeOverride carries gender-specific reference and optimal bounds. Any
// bound may be nil; a nil bound means the top-level biomarker bound applies
// (overrides replace the whole range, not individual bounds).
type RangeOverride struct {
	RefLow      *float64 `db:"ref_low" json:"ref_low,omitempty"`
	RefHigh     *float64 `db:"ref_high" json:"ref_high,omitempty"`
	OptimalLow  *float64 `db:"optimal_low" json:"optimal_low,omitempty"`
	OptimalHigh *float64 `db:"optimal_high" json:"optimal_high,omitempty"`
}

// Biomarker is a canonical catalog entry. Code is the stable identity used
// by aliases and results; it never changes after creation.
type Biomarker struct {
	ID           uuid.UUID                `db:"id" json:"id"`
	Code         string                   `db:"code" json:"code"`
	Name         string                   `db:"name" json:"name"`
	Category     string                   `db:"category" json:"category"`
	Subcategory  *string                  `db:"subcategory" json:"subcategory,omitempty"`
	DefaultUnit  string                   `db:"default_unit" json:"default_unit"`
	RefLow       *float64                 `db:"ref_low" json:"ref_low,omitempty"`
	RefHigh      *float64                 `db:"ref_high" json:"ref_high,omitempty"`
	OptimalLow   *float64                 `db:"optimal_low" json:"optimal_low,omitempty"`
	OptimalHigh  *float64                 `db:"optimal_high" json:"optimal_high,omitempty"`
	GenderRanges map[Gender]RangeOverride `db:"-" json:"gender_ranges,omitempty"`
	DisplayOrder int                      `db:"display_order" json:"display_order"`
	CreatedAt    time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time                `db:"updated_at" json:"updated_at"`
}

// ResolvedRange is the effective range for one biomarker and gender.
type ResolvedRange struct {
	Code        string   `json:"code"`
	Gender      Gender   `json:"gender"`
	Unit        string   `json:"unit"`
	RefLow      *float64 `json:"ref_low,omitempty"`
	RefHigh     *float64 `json:"ref_high,omitempty"`
	OptimalLow  *float64 `json:"optimal_low,omitempty"`
	OptimalHigh *float64 `json:"optimal_high,omitempty"`
}

// ResolveRange returns the reference and optimal bounds that apply for the
// given gender. When a gender override exists it wins wholesale; otherwise
// the top-level bounds apply.
func (b *Biomarker) ResolveRange(gender Gender) ResolvedRange {
	rr := ResolvedRange{
		Code:        b.Code,
		Gender:      gender,
		Unit:        b.DefaultUnit,
		RefLow:      b.RefLow,
		RefHigh:     b.RefHigh,
		OptimalLow:  b.OptimalLow,
		OptimalHigh: b.OptimalHigh,
	}
	if ov, ok := b.GenderRanges[gender]; ok {
		rr.RefLow = ov.RefLow
		rr.RefHigh = ov.RefHigh
		rr.OptimalLow = ov.OptimalLow
		rr.OptimalHigh = ov.OptimalHigh
	}
	return rr
}

// CategoryCount is one row of the category statistics report.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}
