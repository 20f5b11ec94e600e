package normalize

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rajbrades/adonishealth/internal/domain/alias"
	"github.com/rajbrades/adonishealth/internal/domain/catalog"
	"github.com/rajbrades/adonishealth/internal/domain/labresult"
	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

type mockCatalog struct {
	biomarkers []*catalog.Biomarker
}

func (m *mockCatalog) List(ctx context.Context, category string) ([]*catalog.Biomarker, error) {
	return m.biomarkers, nil
}

func (m *mockCatalog) LookupByCode(ctx context.Context, code string) (*catalog.Biomarker, error) {
	for _, b := range m.biomarkers {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, apperr.NotFound("biomarker", code)
}

type mockAliases struct {
	aliases []*alias.Alias
}

func (m *mockAliases) FindByVendorName(ctx context.Context, provider, rawName string) (*alias.Alias, error) {
	want := alias.NormalizeName(rawName)
	for _, a := range m.aliases {
		if a.LabProvider == provider && alias.NormalizeName(a.AliasName) == want {
			return a, nil
		}
	}
	return nil, apperr.NotFound("alias", provider+"/"+rawName)
}

func (m *mockAliases) FindByVendorCode(ctx context.Context, provider, rawCode string) (*alias.Alias, error) {
	for _, a := range m.aliases {
		if a.LabProvider == provider && a.AliasCode != nil && *a.AliasCode == rawCode {
			return a, nil
		}
	}
	return nil, apperr.NotFound("alias", provider+"/#"+rawCode)
}

func (m *mockAliases) ListAll(ctx context.Context) ([]*alias.Alias, error) {
	return m.aliases, nil
}

func newTestEngine(t *testing.T) (*Engine, *labresult.Panel) {
	t.Helper()

	testosterone := &catalog.Biomarker{
		ID: uuid.New(), Code: "TESTOSTERONE_TOTAL", Name: "Total Testosterone",
		Category: "Hormones", DefaultUnit: "ng/dL",
		GenderRanges: map[catalog.Gender]catalog.RangeOverride{
			catalog.GenderMale:   {RefLow: fp(264), RefHigh: fp(916)},
			catalog.GenderFemale: {RefLow: fp(8), RefHigh: fp(60)},
		},
	}
	free := &catalog.Biomarker{
		ID: uuid.New(), Code: "TESTOSTERONE_FREE", Name: "Free Testosterone",
		Category: "Hormones", DefaultUnit: "pg/mL",
		GenderRanges: map[catalog.Gender]catalog.RangeOverride{
			catalog.GenderMale: {RefLow: fp(8.7), RefHigh: fp(25.1)},
		},
	}
	tsh := &catalog.Biomarker{
		ID: uuid.New(), Code: "TSH", Name: "Thyroid Stimulating Hormone",
		Category: "Thyroid", DefaultUnit: "uIU/mL", RefLow: fp(0.45), RefHigh: fp(4.5),
	}
	egfr := &catalog.Biomarker{
		ID: uuid.New(), Code: "EGFR", Name: "eGFR", Category: "Kidney",
		DefaultUnit: "mL/min/1.73",
	}

	cat := &mockCatalog{biomarkers: []*catalog.Biomarker{testosterone, free, tsh, egfr}}
	aliases := &mockAliases{aliases: []*alias.Alias{
		{ID: uuid.New(), BiomarkerID: testosterone.ID, BiomarkerCode: "TESTOSTERONE_TOTAL",
			LabProvider: "QUEST", AliasName: "Testosterone, Total, MS", AliasCode: sp("15983"),
			LabUnit: "ng/dL", ConversionFactor: 1.0},
		{ID: uuid.New(), BiomarkerID: testosterone.ID, BiomarkerCode: "TESTOSTERONE_TOTAL",
			LabProvider: "EVEXIA", AliasName: "Testosterone, Total",
			LabUnit: "nmol/L", ConversionFactor: 28.842},
		{ID: uuid.New(), BiomarkerID: tsh.ID, BiomarkerCode: "TSH",
			LabProvider: "QUEST", AliasName: "TSH", AliasCode: sp("899"),
			LabUnit: "uIU/mL", ConversionFactor: 1.0},
		{ID: uuid.New(), BiomarkerID: egfr.ID, BiomarkerCode: "EGFR",
			LabProvider: "QUEST", AliasName: "eGFR", ConversionFactor: 1.0},
	}}

	engine := NewEngine(aliases, cat, DefaultConfig(), zerolog.Nop())
	panel := &labresult.Panel{
		ID: uuid.New(), PatientID: "p1", LabProvider: "QUEST",
		PatientGender: catalog.GenderMale, Status: labresult.PanelPending,
	}
	return engine, panel
}

func TestNormalizeOne_AliasNameMatch(t *testing.T) {
	engine, panel := newTestEngine(t)

	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Testosterone, Total, MS", RawValue: "650", RawUnit: sp("ng/dL"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BiomarkerCode == nil || *res.BiomarkerCode != "TESTOSTERONE_TOTAL" {
		t.Fatalf("biomarker: got %v", res.BiomarkerCode)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence: got %v, want 1.0", res.Confidence)
	}
	if res.NumericValue == nil || *res.NumericValue != 650 {
		t.Errorf("numeric: got %v, want 650", res.NumericValue)
	}
	if res.NormalizedUnit == nil || *res.NormalizedUnit != "ng/dL" {
		t.Errorf("unit: got %v", res.NormalizedUnit)
	}
	if res.Flag == nil || *res.Flag != labresult.FlagNormal {
		t.Errorf("flag: got %v, want NORMAL", res.Flag)
	}
	if res.NeedsReview() {
		t.Error("full-confidence match must not need review")
	}
}

func TestNormalizeOne_UnitConversion(t *testing.T) {
	engine, _ := newTestEngine(t)
	panel := &labresult.Panel{
		ID: uuid.New(), PatientID: "p1", LabProvider: "EVEXIA",
		PatientGender: catalog.GenderMale,
	}

	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Testosterone, Total", RawValue: "22.5", RawUnit: sp("nmol/L"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 22.5 * 28.842
	if res.NumericValue == nil || math.Abs(*res.NumericValue-want) > 1e-9 {
		t.Errorf("numeric: got %v, want %v", res.NumericValue, want)
	}
	if res.NormalizedUnit == nil || *res.NormalizedUnit != "ng/dL" {
		t.Errorf("unit: got %v, want canonical ng/dL", res.NormalizedUnit)
	}
	if res.RawValue != "22.5" || res.RawUnit == nil || *res.RawUnit != "nmol/L" {
		t.Errorf("raw fields must be preserved verbatim: %+v", res)
	}
	if res.Flag == nil || *res.Flag != labresult.FlagNormal {
		t.Errorf("flag: got %v, want NORMAL (649 in [264, 916])", res.Flag)
	}
}

func TestNormalizeOne_Flags(t *testing.T) {
	engine, panel := newTestEngine(t)
	ctx := context.Background()

	// Male range 264-916, margin 0.40: critical below 158.4, above 1282.4.
	tests := []struct {
		value string
		want  labresult.Flag
	}{
		{"650", labresult.FlagNormal},
		{"264", labresult.FlagNormal},
		{"916", labresult.FlagNormal},
		{"200", labresult.FlagLow},
		{"160", labresult.FlagLow},
		{"100", labresult.FlagCriticalLow},
		{"1000", labresult.FlagHigh},
		{"1280", labresult.FlagHigh},
		{"1500", labresult.FlagCriticalHigh},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			res, err := engine.NormalizeOne(ctx, panel, RawObservation{
				RawName: "Testosterone, Total, MS", RawValue: tt.value,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Flag == nil || *res.Flag != tt.want {
				t.Errorf("flag for %s: got %v, want %s", tt.value, res.Flag, tt.want)
			}
		})
	}
}

func TestNormalizeOne_GenderRange(t *testing.T) {
	engine, panel := newTestEngine(t)
	panel.PatientGender = catalog.GenderFemale

	// 650 ng/dL is normal for a male panel but far above the female range.
	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Testosterone, Total, MS", RawValue: "650",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Flag == nil || *res.Flag != labresult.FlagCriticalHigh {
		t.Errorf("flag: got %v, want CRITICAL_HIGH", res.Flag)
	}
}

func TestNormalizeOne_OperatorStripped(t *testing.T) {
	engine, panel := newTestEngine(t)

	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "TSH", RawValue: "<0.1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Operator == nil || *res.Operator != "<" {
		t.Errorf("operator: got %v, want <", res.Operator)
	}
	if res.NumericValue == nil || *res.NumericValue != 0.1 {
		t.Errorf("numeric: got %v, want 0.1", res.NumericValue)
	}
	if res.RawValue != "<0.1" {
		t.Errorf("raw value must keep the operator: %q", res.RawValue)
	}
	if res.Flag == nil || *res.Flag != labresult.FlagCriticalLow {
		t.Errorf("flag: got %v, want CRITICAL_LOW (0.1 < 0.45*0.6)", res.Flag)
	}
}

func TestNormalizeOne_QualitativeValue(t *testing.T) {
	engine, panel := newTestEngine(t)

	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "TSH", RawValue: "Negative",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BiomarkerCode == nil || *res.BiomarkerCode != "TSH" {
		t.Errorf("qualitative value must still resolve: %v", res.BiomarkerCode)
	}
	if res.NumericValue != nil {
		t.Errorf("numeric: got %v, want nil", *res.NumericValue)
	}
	if res.Flag != nil {
		t.Errorf("flag: got %v, want nil", *res.Flag)
	}
	if res.RawValue != "Negative" {
		t.Errorf("raw value: got %q", res.RawValue)
	}
}

func TestNormalizeOne_CodeFallback(t *testing.T) {
	engine, panel := newTestEngine(t)

	// Name unknown to the registry, but the vendor code is registered.
	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Thyrotropin Reflex", RawValue: "2.1", RawCode: sp("899"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BiomarkerCode == nil || *res.BiomarkerCode != "TSH" {
		t.Fatalf("biomarker: got %v, want TSH via code path", res.BiomarkerCode)
	}
	if res.Confidence != 1.0 {
		t.Errorf("confidence: got %v, want 1.0", res.Confidence)
	}
}

func TestNormalizeOne_FuzzyFallback(t *testing.T) {
	engine, panel := newTestEngine(t)

	// "Total Testosterone" is the catalog name, not a registered QUEST alias.
	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Total Testosterone", RawValue: "650",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BiomarkerCode == nil || *res.BiomarkerCode != "TESTOSTERONE_TOTAL" {
		t.Fatalf("biomarker: got %v, want fuzzy match to TESTOSTERONE_TOTAL", res.BiomarkerCode)
	}
	if res.Confidence < 0.82 {
		t.Errorf("confidence: got %v, want >= threshold", res.Confidence)
	}
	// Fuzzy matches have no alias, so no conversion is applied.
	if res.NumericValue == nil || *res.NumericValue != 650 {
		t.Errorf("numeric: got %v, want 650", res.NumericValue)
	}
}

func TestNormalizeOne_FuzzyAmbiguityRejected(t *testing.T) {
	engine, panel := newTestEngine(t)

	// Bare "Testosterone" sits between the total and free entries; the
	// engine must refuse to guess.
	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Testosterone", RawValue: "650",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BiomarkerID != nil {
		t.Fatalf("ambiguous name must stay unresolved, got %v", *res.BiomarkerCode)
	}
	if !res.ManualEntry {
		t.Error("unresolved result must be marked manual entry")
	}
	if res.Confidence != 0 {
		t.Errorf("confidence: got %v, want 0", res.Confidence)
	}
	if !res.NeedsReview() {
		t.Error("unresolved result must need review")
	}
}

func TestNormalizeOne_UnresolvedKeepsRawData(t *testing.T) {
	engine, panel := newTestEngine(t)

	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "Obscure Analyte XYZ", RawValue: "12.3", RawUnit: sp("au"),
	})
	if err != nil {
		t.Fatalf("unresolved observations are data, not errors: %v", err)
	}
	if res.BiomarkerID != nil {
		t.Fatal("expected unresolved result")
	}
	if res.RawName != "Obscure Analyte XYZ" || res.RawValue != "12.3" || *res.RawUnit != "au" {
		t.Errorf("raw fields lost: %+v", res)
	}
	if res.NumericValue != nil || res.Flag != nil {
		t.Error("unresolved results carry no normalized fields")
	}
}

func TestNormalizeOne_NoRangeNoFlag(t *testing.T) {
	engine, panel := newTestEngine(t)

	res, err := engine.NormalizeOne(context.Background(), panel, RawObservation{
		RawName: "eGFR", RawValue: "95",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BiomarkerCode == nil || *res.BiomarkerCode != "EGFR" {
		t.Fatalf("biomarker: got %v", res.BiomarkerCode)
	}
	if res.NumericValue == nil || *res.NumericValue != 95 {
		t.Errorf("numeric: got %v", res.NumericValue)
	}
	// eGFR's mock entry has no bounds at all.
	if res.Flag != nil {
		t.Errorf("flag: got %v, want nil for rangeless analyte", *res.Flag)
	}
}

func TestProcess_PositionalOutcomes(t *testing.T) {
	engine, panel := newTestEngine(t)

	observations := []RawObservation{
		{RawName: "Testosterone, Total, MS", RawValue: "650"},
		{RawName: "TSH", RawValue: ""}, // item-level validation failure
		{RawName: "Obscure Analyte XYZ", RawValue: "1.0"},
		{RawName: "TSH", RawValue: "2.31"},
	}

	outcomes, err := engine.Process(context.Background(), panel, observations)
	if err != nil {
		t.Fatalf("batch must not fail on item errors: %v", err)
	}
	if len(outcomes) != len(observations) {
		t.Fatalf("outcomes: got %d, want %d", len(outcomes), len(observations))
	}

	for i, out := range outcomes {
		if out.Index != i {
			t.Errorf("outcome %d has index %d", i, out.Index)
		}
	}

	if outcomes[0].Result == nil || outcomes[0].Err != "" {
		t.Errorf("outcome 0: %+v", outcomes[0])
	}
	if outcomes[1].Result != nil || !strings.Contains(outcomes[1].Err, "raw_value") {
		t.Errorf("outcome 1 must carry the validation error: %+v", outcomes[1])
	}
	if outcomes[2].Result == nil || !outcomes[2].NeedsReview {
		t.Errorf("outcome 2 must be an unresolved result needing review: %+v", outcomes[2])
	}
	if outcomes[3].Result == nil || outcomes[3].Result.Flag == nil || *outcomes[3].Result.Flag != labresult.FlagNormal {
		t.Errorf("outcome 3: %+v", outcomes[3])
	}
}

func TestProcess_LargeBatch(t *testing.T) {
	engine, panel := newTestEngine(t)

	var observations []RawObservation
	for i := 0; i < 100; i++ {
		observations = append(observations, RawObservation{RawName: "TSH", RawValue: "2.0"})
	}

	outcomes, err := engine.Process(context.Background(), panel, observations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 100 {
		t.Fatalf("outcomes: got %d", len(outcomes))
	}
	for i, out := range outcomes {
		if out.Result == nil || out.Result.Flag == nil || *out.Result.Flag != labresult.FlagNormal {
			t.Fatalf("outcome %d: %+v", i, out)
		}
	}
}

func sp(v string) *string { return &v }
