// Package extract turns raw vendor report text into observation tuples for
// the normalization engine. Adapters are per-vendor because every lab
// formats its flat-file exports differently; real ingestion (PDF, HL7) sits
// upstream and hands this package plain text.
package extract

import (
	"fmt"
	"sort"
	"strings"
)

// Observation is one extracted analyte line: the vendor's name for it, the
// verbatim value, and optionally a unit and the vendor's analyte code.
type Observation struct {
	RawName  string  `json:"raw_name"`
	RawValue string  `json:"raw_value"`
	RawUnit  *string `json:"raw_unit,omitempty"`
	RawCode  *string `json:"raw_code,omitempty"`
}

// Adapter extracts observations from one vendor's report format.
type Adapter interface {
	Provider() string
	Extract(report string) ([]Observation, error)
}

// Registry holds the known vendor adapters keyed by provider identifier.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates a registry from the given adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Provider()] = a
	}
	return r
}

// Get returns the adapter for a provider.
func (r *Registry) Get(provider string) (Adapter, error) {
	a, ok := r.adapters[strings.ToUpper(provider)]
	if !ok {
		return nil, fmt.Errorf("no extraction adapter registered for provider %q", provider)
	}
	return a, nil
}

// Providers lists the registered provider identifiers, sorted.
func (r *Registry) Providers() []string {
	out := make([]string, 0, len(r.adapters))
	for p := range r.adapters {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
