package normalize

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		operator string // "" means none
		numeric  *float64
	}{
		{"plain integer", "650", "", fp(650)},
		{"decimal", "2.31", "", fp(2.31)},
		{"thousands separator", "1,245", "", fp(1245)},
		{"less than", "<0.1", "<", fp(0.1)},
		{"greater than", ">1000", ">", fp(1000)},
		{"less or equal", "<=4", "<=", fp(4)},
		{"greater or equal", ">=90", ">=", fp(90)},
		{"operator with space", "< 0.5", "<", fp(0.5)},
		{"qualitative", "Negative", "", nil},
		{"not detected", "Not Detected", "", nil},
		{"whitespace", "  12.5  ", "", fp(12.5)},
		{"empty", "", "", nil},
		{"bare operator", "<", "<", nil},
		{"garbage", "N/A", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv := ParseValue(tt.raw)

			if tt.operator == "" {
				if pv.Operator != nil {
					t.Errorf("operator: got %q, want none", *pv.Operator)
				}
			} else if pv.Operator == nil || *pv.Operator != tt.operator {
				t.Errorf("operator: got %v, want %q", pv.Operator, tt.operator)
			}

			if tt.numeric == nil {
				if pv.Numeric != nil {
					t.Errorf("numeric: got %v, want nil", *pv.Numeric)
				}
			} else if pv.Numeric == nil || *pv.Numeric != *tt.numeric {
				t.Errorf("numeric: got %v, want %v", pv.Numeric, *tt.numeric)
			}
		})
	}
}

func fp(v float64) *float64 { return &v }
