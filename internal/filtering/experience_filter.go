package filtering

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
)

type experienceFilter struct {
	minMonths int
}

// NewExperience creates a filter that drops resumes below the minimum experience.
// Resumes without experience are dropped only when a minimum is configured.
func NewExperience() Filter {
	return &experienceFilter{}
}

func (f *experienceFilter) Name() string { return "experience" }

func (f *experienceFilter) Disable(string) {}

func (f *experienceFilter) IsEnabled() bool { return true }

func (f *experienceFilter) Validate(cfg *Config) error {
	f.minMonths = 0
	if cfg != nil {
		f.minMonths = cfg.MinExperienceMonths
	}
	if f.minMonths < 0 {
		return fmt.Errorf("minimum experience must not be negative, got %d", f.minMonths)
	}
	return nil
}

func (f *experienceFilter) Apply(_ context.Context, deps Deps, records []compare.Record) ([]compare.Record, Step, error) {
	initial := len(records)
	if f.minMonths == 0 {
		return records, stepOf(initial, records), nil
	}

	kept := make([]compare.Record, 0, initial)
	var excluded []compare.Record
	for _, record := range records {
		if record.HasExperience() && *record.ExperienceMonths >= f.minMonths {
			kept = append(kept, record)
			continue
		}
		excluded = append(excluded, record)
	}

	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes with insufficient experience",
			zap.Int("min_experience_months", f.minMonths),
			zap.Strings("excluded_resumes", idsOf(excluded)),
			zap.Int("resumes_left", len(kept)),
		)
	}

	return kept, stepOf(initial, kept), nil
}

func (f *experienceFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true, Details: map[string]string{
		"min_months": strconv.Itoa(f.minMonths),
	}}
}
