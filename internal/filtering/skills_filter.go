package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
)

type requiredSkillsFilter struct {
	skills []string
}

// NewRequiredSkills creates a filter that keeps resumes matching every configured skill.
func NewRequiredSkills() Filter {
	return &requiredSkillsFilter{}
}

func (f *requiredSkillsFilter) Name() string { return "required_skills" }

func (f *requiredSkillsFilter) Disable(string) {}

func (f *requiredSkillsFilter) IsEnabled() bool { return true }

func (f *requiredSkillsFilter) Validate(cfg *Config) error {
	f.skills = nil
	if cfg == nil {
		return nil
	}
	for _, skill := range cfg.RequiredSkills {
		if skill = strings.ToLower(strings.TrimSpace(skill)); skill != "" {
			f.skills = append(f.skills, skill)
		}
	}
	return nil
}

func (f *requiredSkillsFilter) Apply(_ context.Context, deps Deps, records []compare.Record) ([]compare.Record, Step, error) {
	initial := len(records)
	if len(f.skills) == 0 {
		return records, stepOf(initial, records), nil
	}

	kept := make([]compare.Record, 0, initial)
	var excluded []compare.Record
	for _, record := range records {
		if hasAll(record.MatchedSkills, f.skills) {
			kept = append(kept, record)
			continue
		}
		excluded = append(excluded, record)
	}

	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes missing required skills",
			zap.Strings("required_skills", f.skills),
			zap.Strings("excluded_resumes", idsOf(excluded)),
			zap.Int("resumes_left", len(kept)),
		)
	}

	return kept, stepOf(initial, kept), nil
}

func hasAll(matched, required []string) bool {
	have := make(map[string]bool, len(matched))
	for _, skill := range matched {
		have[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	for _, skill := range required {
		if !have[skill] {
			return false
		}
	}
	return true
}

func (f *requiredSkillsFilter) Status() Status {
	details := map[string]string{}
	if len(f.skills) > 0 {
		details["skills"] = strings.Join(f.skills, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
