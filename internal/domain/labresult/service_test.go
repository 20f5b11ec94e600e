package labresult

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rajbrades/adonishealth/internal/domain/catalog"
	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

type mockPanelRepo struct {
	panels map[uuid.UUID]*Panel
}

func newMockPanelRepo() *mockPanelRepo {
	return &mockPanelRepo{panels: make(map[uuid.UUID]*Panel)}
}

func (m *mockPanelRepo) Create(ctx context.Context, p *Panel) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PanelPending
	}
	m.panels[p.ID] = p
	return nil
}

func (m *mockPanelRepo) Get(ctx context.Context, id uuid.UUID) (*Panel, error) {
	p, ok := m.panels[id]
	if !ok {
		return nil, apperr.NotFound("panel", id.String())
	}
	return p, nil
}

func (m *mockPanelRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status PanelStatus) error {
	p, ok := m.panels[id]
	if !ok {
		return apperr.NotFound("panel", id.String())
	}
	p.Status = status
	return nil
}

type mockResultRepo struct {
	results []*Result
	notes   []*Note
}

func (m *mockResultRepo) Insert(ctx context.Context, r *Result) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	m.results = append(m.results, r)
	return nil
}

func (m *mockResultRepo) Get(ctx context.Context, id uuid.UUID) (*Result, error) {
	for _, r := range m.results {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("result", id.String())
}

func (m *mockResultRepo) ListByPanel(ctx context.Context, panelID uuid.UUID, needsReviewOnly bool) ([]*Result, error) {
	var out []*Result
	for _, r := range m.results {
		if r.PanelID != panelID {
			continue
		}
		if needsReviewOnly && !r.NeedsReview() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockResultRepo) ListReviewQueue(ctx context.Context, limit int) ([]*Result, error) {
	var out []*Result
	for _, r := range m.results {
		if r.NeedsReview() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockResultRepo) AddNote(ctx context.Context, n *Note) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	m.notes = append(m.notes, n)
	return nil
}

func (m *mockResultRepo) ListNotes(ctx context.Context, resultID uuid.UUID) ([]*Note, error) {
	var out []*Note
	for _, n := range m.notes {
		if n.ResultID == resultID {
			out = append(out, n)
		}
	}
	return out, nil
}

func TestCreatePanel_Validation(t *testing.T) {
	svc := NewService(newMockPanelRepo(), &mockResultRepo{})
	ctx := context.Background()

	tests := []struct {
		name  string
		panel *Panel
		valid bool
	}{
		{"valid", &Panel{PatientID: "p1", LabProvider: "QUEST", PatientGender: catalog.GenderMale}, true},
		{"missing patient", &Panel{LabProvider: "QUEST", PatientGender: catalog.GenderMale}, false},
		{"missing provider", &Panel{PatientID: "p1", PatientGender: catalog.GenderFemale}, false},
		{"bad gender", &Panel{PatientID: "p1", LabProvider: "QUEST", PatientGender: "X"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := svc.CreatePanel(ctx, tt.panel)
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p.Status != PanelPending {
					t.Errorf("new panel status: got %s, want pending", p.Status)
				}
				return
			}
			var ve *apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestSaveResults_MarksProcessed(t *testing.T) {
	panels := newMockPanelRepo()
	results := &mockResultRepo{}
	svc := NewService(panels, results)
	ctx := context.Background()

	p, err := svc.CreatePanel(ctx, &Panel{PatientID: "p1", LabProvider: "QUEST", PatientGender: catalog.GenderMale})
	if err != nil {
		t.Fatal(err)
	}

	code := "TSH"
	bid := uuid.New()
	err = svc.SaveResults(ctx, p.ID, []*Result{
		{BiomarkerID: &bid, BiomarkerCode: &code, RawName: "TSH", RawValue: "2.1", Confidence: 1.0},
		{RawName: "Mystery Analyte", RawValue: "12", ManualEntry: true},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := svc.GetPanel(ctx, p.ID)
	if got.Status != PanelProcessed {
		t.Errorf("panel status: got %s, want processed", got.Status)
	}

	all, _ := svc.ListResults(ctx, p.ID, false)
	if len(all) != 2 {
		t.Fatalf("results: got %d, want 2", len(all))
	}

	review, _ := svc.ListResults(ctx, p.ID, true)
	if len(review) != 1 || review[0].RawName != "Mystery Analyte" {
		t.Errorf("review filter returned %d results", len(review))
	}
}

func TestAddNote_AdditiveOnly(t *testing.T) {
	panels := newMockPanelRepo()
	results := &mockResultRepo{}
	svc := NewService(panels, results)
	ctx := context.Background()

	p, _ := svc.CreatePanel(ctx, &Panel{PatientID: "p1", LabProvider: "QUEST", PatientGender: catalog.GenderMale})
	svc.SaveResults(ctx, p.ID, []*Result{{RawName: "ALT", RawValue: "31", Confidence: 1.0}})
	resultID := results.results[0].ID
	before := *results.results[0]

	n1, err := svc.AddNote(ctx, resultID, "dr.smith", "verified against source PDF")
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	n2, err := svc.AddNote(ctx, resultID, "dr.jones", "unit confirmed with lab")
	if err != nil {
		t.Fatalf("second note: %v", err)
	}
	if n1.ID == n2.ID {
		t.Error("notes must be distinct rows")
	}

	notes, _ := svc.ListNotes(ctx, resultID)
	if len(notes) != 2 {
		t.Fatalf("notes: got %d, want 2", len(notes))
	}

	after := *results.results[0]
	if before.RawValue != after.RawValue || before.Flag != after.Flag {
		t.Error("result row mutated by annotation")
	}
}

func TestAddNote_Validation(t *testing.T) {
	svc := NewService(newMockPanelRepo(), &mockResultRepo{})
	ctx := context.Background()

	var ve *apperr.ValidationError
	if _, err := svc.AddNote(ctx, uuid.New(), "", "text"); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for empty author, got %v", err)
	}
	if _, err := svc.AddNote(ctx, uuid.New(), "me", ""); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for empty note, got %v", err)
	}

	var nf *apperr.NotFoundError
	if _, err := svc.AddNote(ctx, uuid.New(), "me", "text"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for unknown result, got %v", err)
	}
}

func TestListResults_UnknownPanel(t *testing.T) {
	svc := NewService(newMockPanelRepo(), &mockResultRepo{})

	var nf *apperr.NotFoundError
	if _, err := svc.ListResults(context.Background(), uuid.New(), false); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
