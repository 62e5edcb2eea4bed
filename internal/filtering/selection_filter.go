package filtering

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
)

type selectionFilter struct {
	disabled  bool
	reason    string
	selection compare.Selection
}

// NewSelection creates a filter that keeps only the selected resumes, in selection order.
func NewSelection() Filter {
	return &selectionFilter{}
}

func (f *selectionFilter) Name() string { return "selection" }

func (f *selectionFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *selectionFilter) IsEnabled() bool { return !f.disabled }

func (f *selectionFilter) Validate(cfg *Config) error {
	f.selection = compare.Selection{}
	if cfg != nil {
		f.selection = cfg.Selection
	}
	return nil
}

func (f *selectionFilter) Apply(_ context.Context, deps Deps, records []compare.Record) ([]compare.Record, Step, error) {
	initial := len(records)
	if f.selection.Len() == 0 {
		return records, stepOf(initial, records), nil
	}

	picked, missing := compare.Pick(records, f.selection)
	if deps.Logger != nil && len(missing) > 0 {
		deps.Logger.Warn("selected resumes have no match records",
			zap.Strings("missing_resumes", missing),
			zap.Int("resumes_left", len(picked)),
		)
	}

	return picked, stepOf(initial, picked), nil
}

func (f *selectionFilter) Status() Status {
	details := map[string]string{
		"size": strconv.Itoa(f.selection.Len()),
	}
	if f.selection.Len() > 0 {
		details["resumes"] = strings.Join(f.selection.IDs(), ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
