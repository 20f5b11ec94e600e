package normalize

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rajbrades/adonishealth/internal/domain/alias"
	"github.com/rajbrades/adonishealth/internal/domain/catalog"
	"github.com/rajbrades/adonishealth/internal/domain/labresult"
	"github.com/rajbrades/adonishealth/internal/platform/apperr"
)

// RawObservation is one extracted tuple from a vendor report.
type RawObservation struct {
	RawName  string  `json:"raw_name"`
	RawValue string  `json:"raw_value"`
	RawUnit  *string `json:"raw_unit,omitempty"`
	RawCode  *string `json:"raw_code,omitempty"`
}

// Outcome is the per-item batch result. Exactly one outcome is produced per
// input observation, at the same index. Err is set only for item-level
// validation failures; everything else produces a Result, resolved or not.
type Outcome struct {
	Index       int               `json:"index"`
	Result      *labresult.Result `json:"result,omitempty"`
	Err         string            `json:"error,omitempty"`
	NeedsReview bool              `json:"needs_review"`
}

// AliasResolver is the slice of the alias registry the engine needs.
type AliasResolver interface {
	FindByVendorName(ctx context.Context, provider, rawName string) (*alias.Alias, error)
	FindByVendorCode(ctx context.Context, provider, rawCode string) (*alias.Alias, error)
	ListAll(ctx context.Context) ([]*alias.Alias, error)
}

// CatalogSource is the slice of the catalog the engine needs.
type CatalogSource interface {
	List(ctx context.Context, category string) ([]*catalog.Biomarker, error)
	LookupByCode(ctx context.Context, code string) (*catalog.Biomarker, error)
}

// Config tunes the engine. All values are validated at startup by the config
// package; the zero value is not usable.
type Config struct {
	// CriticalMarginFactor f escalates LOW/HIGH to CRITICAL when the value
	// falls below refLow*(1-f) or above refHigh*(1+f).
	CriticalMarginFactor float64
	// FuzzyThreshold is the minimum score for the fuzzy fallback to accept.
	FuzzyThreshold float64
	// FuzzyMargin is the minimum lead over the best-scoring different
	// biomarker; closer than this is ambiguous and rejected.
	FuzzyMargin float64
	// BatchLimit bounds concurrent per-item work in a batch.
	BatchLimit int
}

// DefaultConfig returns the engine defaults used when no tuning is supplied.
func DefaultConfig() Config {
	return Config{
		CriticalMarginFactor: 0.40,
		FuzzyThreshold:       0.82,
		FuzzyMargin:          0.05,
		BatchLimit:           8,
	}
}

// Engine turns raw vendor observations into normalized, flagged results.
type Engine struct {
	aliases AliasResolver
	catalog CatalogSource
	cfg     Config
	logger  zerolog.Logger
}

// NewEngine creates a normalization engine.
func NewEngine(aliases AliasResolver, cat CatalogSource, cfg Config, logger zerolog.Logger) *Engine {
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 8
	}
	return &Engine{aliases: aliases, catalog: cat, cfg: cfg, logger: logger}
}

// Process normalizes a batch of observations for one panel. Items are
// processed concurrently; the returned slice is positional and complete, one
// outcome per input. A failing item never aborts its siblings.
func (e *Engine) Process(ctx context.Context, panel *labresult.Panel, observations []RawObservation) ([]Outcome, error) {
	corpus, err := e.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(observations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.BatchLimit)
	for i, obs := range observations {
		i, obs := i, obs
		g.Go(func() error {
			res, err := e.normalizeOne(gctx, panel, obs, corpus)
			out := Outcome{Index: i}
			if err != nil {
				var ve *apperr.ValidationError
				if errors.As(err, &ve) {
					out.Err = err.Error()
				} else {
					// Infrastructure failures also stay item-scoped; the
					// batch contract is best effort per item.
					out.Err = err.Error()
					e.logger.Error().Err(err).Str("raw_name", obs.RawName).Msg("normalize item failed")
				}
			} else {
				out.Result = res
				out.NeedsReview = res.NeedsReview()
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// NormalizeOne normalizes a single observation outside of a batch.
func (e *Engine) NormalizeOne(ctx context.Context, panel *labresult.Panel, obs RawObservation) (*labresult.Result, error) {
	corpus, err := e.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}
	return e.normalizeOne(ctx, panel, obs, corpus)
}

// resolution is the outcome of biomarker identification for one observation.
type resolution struct {
	biomarker  *catalog.Biomarker
	factor     float64
	confidence float64
}

func (e *Engine) normalizeOne(ctx context.Context, panel *labresult.Panel, obs RawObservation, corpus []candidate) (*labresult.Result, error) {
	if obs.RawName == "" {
		return nil, apperr.Validation("raw_name", "raw_name is required")
	}
	if obs.RawValue == "" {
		return nil, apperr.Validation("raw_value", "raw_value is required for %q", obs.RawName)
	}

	res := &labresult.Result{
		PanelID:  panel.ID,
		RawName:  obs.RawName,
		RawValue: obs.RawValue,
		RawUnit:  obs.RawUnit,
		RawCode:  obs.RawCode,
	}

	r, err := e.resolve(ctx, panel.LabProvider, obs, corpus)
	if err != nil {
		return nil, err
	}
	if r == nil {
		// Unresolved observations are data, not errors: persist them raw and
		// route to manual review.
		res.ManualEntry = true
		e.logger.Debug().
			Str("provider", panel.LabProvider).
			Str("raw_name", obs.RawName).
			Msg("observation unresolved")
		return res, nil
	}

	bid := r.biomarker.ID
	code := r.biomarker.Code
	res.BiomarkerID = &bid
	res.BiomarkerCode = &code
	res.Confidence = r.confidence

	pv := ParseValue(obs.RawValue)
	res.Operator = pv.Operator
	if pv.Numeric == nil {
		// Qualitative value; keep the resolved linkage but no flag.
		return res, nil
	}

	v := *pv.Numeric * r.factor
	unit := r.biomarker.DefaultUnit
	res.NumericValue = &v
	res.NormalizedUnit = &unit

	rr := r.biomarker.ResolveRange(panel.PatientGender)
	res.Flag = classify(v, rr.RefLow, rr.RefHigh, e.cfg.CriticalMarginFactor)
	return res, nil
}

// resolve identifies the biomarker for one observation: alias name lookup,
// then alias code lookup, then the conservative fuzzy fallback. A nil
// resolution with nil error means unresolved.
func (e *Engine) resolve(ctx context.Context, provider string, obs RawObservation, corpus []candidate) (*resolution, error) {
	a, err := e.aliases.FindByVendorName(ctx, provider, obs.RawName)
	if err == nil {
		return e.fromAlias(ctx, a)
	}
	if !isNotFound(err) {
		return nil, err
	}

	if obs.RawCode != nil && *obs.RawCode != "" {
		a, err = e.aliases.FindByVendorCode(ctx, provider, *obs.RawCode)
		if err == nil {
			return e.fromAlias(ctx, a)
		}
		if !isNotFound(err) {
			return nil, err
		}
	}

	best, runnerUp := bestMatch(alias.NormalizeName(obs.RawName), corpus)
	if best.score < e.cfg.FuzzyThreshold || best.score-runnerUp < e.cfg.FuzzyMargin {
		return nil, nil
	}

	b, err := e.catalog.LookupByCode(ctx, best.code)
	if err != nil {
		return nil, fmt.Errorf("fuzzy match %q resolved to unknown code %s: %w", obs.RawName, best.code, err)
	}
	e.logger.Info().
		Str("provider", provider).
		Str("raw_name", obs.RawName).
		Str("code", best.code).
		Float64("score", best.score).
		Msg("fuzzy match accepted")

	// No alias, so no known conversion; assume the vendor reports in the
	// canonical unit.
	return &resolution{biomarker: b, factor: 1.0, confidence: best.score}, nil
}

func (e *Engine) fromAlias(ctx context.Context, a *alias.Alias) (*resolution, error) {
	b, err := e.catalog.LookupByCode(ctx, a.BiomarkerCode)
	if err != nil {
		return nil, fmt.Errorf("alias %s/%s points at unknown biomarker %s: %w",
			a.LabProvider, a.AliasName, a.BiomarkerCode, err)
	}
	factor := a.ConversionFactor
	if factor == 0 {
		factor = 1.0
	}
	return &resolution{biomarker: b, factor: factor, confidence: 1.0}, nil
}

// loadCorpus builds the fuzzy-match corpus from every catalog name and every
// registered alias across providers.
func (e *Engine) loadCorpus(ctx context.Context) ([]candidate, error) {
	biomarkers, err := e.catalog.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load catalog for matching: %w", err)
	}
	aliases, err := e.aliases.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aliases for matching: %w", err)
	}

	corpus := make([]candidate, 0, len(biomarkers)+len(aliases))
	for _, b := range biomarkers {
		corpus = append(corpus, candidate{name: alias.NormalizeName(b.Name), biomarkerID: b.ID, code: b.Code})
	}
	for _, a := range aliases {
		corpus = append(corpus, candidate{name: alias.NormalizeName(a.AliasName), biomarkerID: a.BiomarkerID, code: a.BiomarkerCode})
	}
	return corpus, nil
}

// classify flags a converted value against the resolved range. Both bounds
// absent means an informational analyte with no flag.
func classify(v float64, refLow, refHigh *float64, margin float64) *labresult.Flag {
	if refLow == nil && refHigh == nil {
		return nil
	}
	if refLow != nil && v < *refLow {
		f := labresult.FlagLow
		if v < *refLow*(1-margin) {
			f = labresult.FlagCriticalLow
		}
		return &f
	}
	if refHigh != nil && v > *refHigh {
		f := labresult.FlagHigh
		if v > *refHigh*(1+margin) {
			f = labresult.FlagCriticalHigh
		}
		return &f
	}
	f := labresult.FlagNormal
	return &f
}

func isNotFound(err error) bool {
	var nf *apperr.NotFoundError
	return errors.As(err, &nf)
}
