package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
)

type matchRangeFilter struct {
	rng compare.Range
}

// NewMatchRange creates a filter that drops records outside the configured match range.
func NewMatchRange() Filter {
	return &matchRangeFilter{rng: compare.DefaultRange()}
}

func (f *matchRangeFilter) Name() string { return "match_range" }

func (f *matchRangeFilter) Disable(string) {}

func (f *matchRangeFilter) IsEnabled() bool { return true }

func (f *matchRangeFilter) Validate(cfg *Config) error {
	f.rng = compare.DefaultRange()
	if cfg != nil {
		f.rng = cfg.Range
	}
	return f.rng.Validate()
}

func (f *matchRangeFilter) Apply(_ context.Context, deps Deps, records []compare.Record) ([]compare.Record, Step, error) {
	initial := len(records)
	kept, err := compare.Filter(records, f.rng)
	if err != nil {
		return nil, Step{}, err
	}

	if deps.Logger != nil && len(kept) < initial {
		deps.Logger.Info("excluding resumes outside the match range",
			zap.Float64("min_match", f.rng.Min),
			zap.Float64("max_match", f.rng.Max),
			zap.Int("resumes_left", len(kept)),
		)
	}

	return kept, stepOf(initial, kept), nil
}

func (f *matchRangeFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{
		"min": strconv.FormatFloat(f.rng.Min, 'f', -1, 64),
		"max": strconv.FormatFloat(f.rng.Max, 'f', -1, 64),
	}}
}
