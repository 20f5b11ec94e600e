package extract

import (
	"regexp"
	"strings"
)

// columnarAdapter handles the tab-or-multi-space separated exports that
// Quest, Labcorp and Access Medical produce:
//
//	Testosterone, Total, MS [15983]    650    ng/dL    264-916
//
// The bracketed vendor code and the trailing reference range are optional.
type columnarAdapter struct {
	provider string
}

var (
	columnSplitRE = regexp.MustCompile(`\t+|\s{2,}`)
	vendorCodeRE  = regexp.MustCompile(`^(.*?)\s*\[([A-Za-z0-9-]+)\]$`)
	refRangeRE    = regexp.MustCompile(`^[\d.]+\s*-\s*[\d.]+$`)
	unitRE        = regexp.MustCompile(`^[A-Za-z%][A-Za-z0-9%./*^]*$`)
)

// NewColumnarAdapter creates an adapter for column-formatted reports.
func NewColumnarAdapter(provider string) Adapter {
	return &columnarAdapter{provider: strings.ToUpper(provider)}
}

func (a *columnarAdapter) Provider() string { return a.provider }

func (a *columnarAdapter) Extract(report string) ([]Observation, error) {
	var observations []Observation

	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := columnSplitRE.Split(line, -1)
		if len(cols) < 2 {
			continue
		}

		obs := Observation{
			RawName:  strings.TrimSpace(cols[0]),
			RawValue: strings.TrimSpace(cols[1]),
		}
		if obs.RawName == "" || obs.RawValue == "" {
			continue
		}

		if m := vendorCodeRE.FindStringSubmatch(obs.RawName); m != nil {
			obs.RawName = strings.TrimSpace(m[1])
			code := m[2]
			obs.RawCode = &code
		}

		// Remaining columns are unit and/or reference range in either order.
		for _, col := range cols[2:] {
			col = strings.TrimSpace(col)
			if col == "" || refRangeRE.MatchString(col) {
				continue
			}
			if obs.RawUnit == nil && unitRE.MatchString(col) {
				unit := col
				obs.RawUnit = &unit
			}
		}

		observations = append(observations, obs)
	}
	return observations, nil
}

// labeledAdapter handles the "Name: value unit" exports Evexia produces:
//
//	Testosterone, Total: 22.5 nmol/L
type labeledAdapter struct {
	provider string
}

var labeledLineRE = regexp.MustCompile(`^(.+?):\s*([<>]=?\s*[\d.,]+|[\d.,]+|[A-Za-z][A-Za-z ]*)\s*(\S+)?\s*$`)

// NewLabeledAdapter creates an adapter for colon-labeled reports.
func NewLabeledAdapter(provider string) Adapter {
	return &labeledAdapter{provider: strings.ToUpper(provider)}
}

func (a *labeledAdapter) Provider() string { return a.provider }

func (a *labeledAdapter) Extract(report string) ([]Observation, error) {
	var observations []Observation

	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := labeledLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		obs := Observation{
			RawName:  strings.TrimSpace(m[1]),
			RawValue: strings.TrimSpace(m[2]),
		}
		if m[3] != "" && unitRE.MatchString(m[3]) {
			unit := m[3]
			obs.RawUnit = &unit
		}
		observations = append(observations, obs)
	}
	return observations, nil
}

// DefaultRegistry wires the shipped vendor adapters.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewColumnarAdapter("QUEST"),
		NewColumnarAdapter("LABCORP"),
		NewColumnarAdapter("ACCESS_MEDICAL"),
		NewLabeledAdapter("EVEXIA"),
	)
}
