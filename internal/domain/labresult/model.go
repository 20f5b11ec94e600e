package labresult

import (
	"time"

	"github.com/google/uuid"

	"github.com/rajbrades/adonishealth/internal/domain/catalog"
)

// PanelStatus tracks whether a panel's raw observations have been run
// through the normalization engine.
type PanelStatus string

const (
	PanelPending   PanelStatus = "pending"
	PanelProcessed PanelStatus = "processed"
)

// Panel groups the results of one lab report for one patient.
type Panel struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	PatientID     string         `db:"patient_id" json:"patient_id"`
	LabProvider   string         `db:"lab_provider" json:"lab_provider"`
	PatientGender catalog.Gender `db:"patient_gender" json:"patient_gender"`
	ReportedAt    *time.Time     `db:"reported_at" json:"reported_at,omitempty"`
	Status        PanelStatus    `db:"status" json:"status"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// Flag classifies a numeric value against the resolved reference range.
type Flag string

const (
	FlagLow          Flag = "LOW"
	FlagNormal       Flag = "NORMAL"
	FlagHigh         Flag = "HIGH"
	FlagCriticalLow  Flag = "CRITICAL_LOW"
	FlagCriticalHigh Flag = "CRITICAL_HIGH"
)

// Result is one normalized observation. Raw fields are stored verbatim so
// the original vendor report can always be reconstructed; normalized fields
// are nil whenever the corresponding step could not run (unresolved
// biomarker, qualitative value, missing range).
type Result struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	PanelID        uuid.UUID  `db:"panel_id" json:"panel_id"`
	BiomarkerID    *uuid.UUID `db:"biomarker_id" json:"biomarker_id,omitempty"`
	BiomarkerCode  *string    `db:"biomarker_code" json:"biomarker_code,omitempty"`
	RawName        string     `db:"raw_name" json:"raw_name"`
	RawValue       string     `db:"raw_value" json:"raw_value"`
	RawUnit        *string    `db:"raw_unit" json:"raw_unit,omitempty"`
	RawCode        *string    `db:"raw_code" json:"raw_code,omitempty"`
	Operator       *string    `db:"operator" json:"operator,omitempty"`
	NumericValue   *float64   `db:"numeric_value" json:"numeric_value,omitempty"`
	NormalizedUnit *string    `db:"normalized_unit" json:"normalized_unit,omitempty"`
	Flag           *Flag      `db:"flag" json:"flag,omitempty"`
	Confidence     float64    `db:"confidence" json:"confidence"`
	ManualEntry    bool       `db:"manual_entry" json:"manual_entry"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// NeedsReview reports whether a reviewer should look at this result: either
// the biomarker could not be resolved or it resolved below full confidence.
func (r *Result) NeedsReview() bool {
	return r.BiomarkerID == nil || r.Confidence < 1.0
}

// Note is an additive reviewer annotation on a result. Corrections never
// mutate the extraction row; they accumulate here.
type Note struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ResultID  uuid.UUID `db:"result_id" json:"result_id"`
	Author    string    `db:"author" json:"author"`
	Note      string    `db:"note" json:"note"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
