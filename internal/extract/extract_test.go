package extract

import "testing"

func TestColumnarAdapter(t *testing.T) {
	report := `# Quest Diagnostics flat export
Testosterone, Total, MS [15983]    650    ng/dL    264-916
TSH [899]	2.31	uIU/mL	0.45-4.50
Glucose    99    mg/dL
HIV 1/2 Screen    Negative
`
	adapter := NewColumnarAdapter("QUEST")
	obs, err := adapter.Extract(report)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(obs) != 4 {
		t.Fatalf("got %d observations, want 4", len(obs))
	}

	first := obs[0]
	if first.RawName != "Testosterone, Total, MS" {
		t.Errorf("name: got %q", first.RawName)
	}
	if first.RawValue != "650" {
		t.Errorf("value: got %q", first.RawValue)
	}
	if first.RawUnit == nil || *first.RawUnit != "ng/dL" {
		t.Errorf("unit: got %v", first.RawUnit)
	}
	if first.RawCode == nil || *first.RawCode != "15983" {
		t.Errorf("code: got %v", first.RawCode)
	}

	tsh := obs[1]
	if tsh.RawName != "TSH" || tsh.RawValue != "2.31" {
		t.Errorf("tab-separated line: got %+v", tsh)
	}
	if tsh.RawCode == nil || *tsh.RawCode != "899" {
		t.Errorf("tsh code: got %v", tsh.RawCode)
	}

	qualitative := obs[3]
	if qualitative.RawValue != "Negative" {
		t.Errorf("qualitative value: got %q", qualitative.RawValue)
	}
	if qualitative.RawUnit != nil {
		t.Errorf("qualitative unit: got %v", *qualitative.RawUnit)
	}
}

func TestColumnarAdapter_SkipsNoise(t *testing.T) {
	report := `# header comment

Patient Name
Testosterone, Total    650    ng/dL
`
	obs, err := NewColumnarAdapter("QUEST").Extract(report)
	if err != nil {
		t.Fatal(err)
	}
	if len(obs) != 1 {
		t.Fatalf("got %d observations, want 1 (noise lines skipped)", len(obs))
	}
}

func TestLabeledAdapter(t *testing.T) {
	report := `Testosterone, Total: 22.5 nmol/L
Estradiol (E2): 95 pmol/L
25-Hydroxyvitamin D: <25 nmol/L
Rheumatoid Factor: Negative
`
	obs, err := NewLabeledAdapter("EVEXIA").Extract(report)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(obs) != 4 {
		t.Fatalf("got %d observations, want 4", len(obs))
	}

	if obs[0].RawName != "Testosterone, Total" || obs[0].RawValue != "22.5" {
		t.Errorf("first: got %+v", obs[0])
	}
	if obs[0].RawUnit == nil || *obs[0].RawUnit != "nmol/L" {
		t.Errorf("first unit: got %v", obs[0].RawUnit)
	}
	if obs[2].RawValue != "<25" {
		t.Errorf("censored value: got %q", obs[2].RawValue)
	}
	if obs[3].RawValue != "Negative" {
		t.Errorf("qualitative: got %q", obs[3].RawValue)
	}
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	a, err := reg.Get("quest")
	if err != nil {
		t.Fatalf("lookup is case-insensitive: %v", err)
	}
	if a.Provider() != "QUEST" {
		t.Errorf("provider: got %s", a.Provider())
	}

	if _, err := reg.Get("UNKNOWN_LAB"); err == nil {
		t.Fatal("expected error for unknown provider")
	}

	providers := reg.Providers()
	want := []string{"ACCESS_MEDICAL", "EVEXIA", "LABCORP", "QUEST"}
	if len(providers) != len(want) {
		t.Fatalf("providers: got %v", providers)
	}
	for i := range want {
		if providers[i] != want[i] {
			t.Errorf("providers[%d]: got %s, want %s", i, providers[i], want[i])
		}
	}
}
