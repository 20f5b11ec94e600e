package normalize

import (
	"strconv"
	"strings"
)

// ParsedValue is the outcome of parsing one raw result value. Qualitative
// values ("Negative", "Not Detected") parse to a nil Numeric with the raw
// string left to the caller to preserve.
type ParsedValue struct {
	Operator *string
	Numeric  *float64
}

// comparison operators some labs prefix to censored values ("<0.1", ">1000").
// Two-character operators must be checked first.
var operators = []string{"<=", ">=", "<", ">"}

// ParseValue parses a raw vendor value string. A leading comparison operator
// is recorded and stripped; the remainder is parsed as a float with
// thousands separators tolerated. Non-numeric remainders yield a nil
// Numeric.
func ParseValue(raw string) ParsedValue {
	s := strings.TrimSpace(raw)
	var pv ParsedValue

	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			o := op
			pv.Operator = &o
			s = strings.TrimSpace(strings.TrimPrefix(s, op))
			break
		}
	}

	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return pv
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		pv.Numeric = &v
	}
	return pv
}
