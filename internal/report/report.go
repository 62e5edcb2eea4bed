package report

import (
	"fmt"
	"slices"
	"time"

	"github.com/spigell/resume-insight/internal/compare"
	"github.com/spigell/resume-insight/internal/l10n"
)

// Comparison is everything a rendered comparison of resumes shows.
type Comparison struct {
	VacancyID   string               `json:"vacancy_id,omitempty"`
	Locale      l10n.Locale          `json:"locale"`
	Ranked      []compare.Ranked     `json:"ranked"`
	Summary     compare.Summary      `json:"summary"`
	Skills      []compare.SkillCount `json:"skills"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// Build ranks records by match percentage and lays the rows out in the
// requested order.
func Build(vacancyID string, loc l10n.Locale, records []compare.Record, key compare.SortKey, dir compare.Direction, now time.Time) (Comparison, error) {
	if err := loc.Validate(); err != nil {
		return Comparison{}, err
	}

	byMatch, err := compare.Sort(records, compare.SortByMatch, compare.Descending)
	if err != nil {
		return Comparison{}, err
	}

	rows, err := compare.Order(compare.Rank(byMatch), key, dir)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		VacancyID:   vacancyID,
		Locale:      loc,
		Ranked:      rows,
		Summary:     compare.Summarize(records),
		Skills:      compare.SkillMatrix(records),
		GeneratedAt: now.UTC(),
	}, nil
}

// Formatter renders a comparison in one output format.
type Formatter interface {
	Format(c Comparison) (string, error)
	Extension() string
}

// Registry manages all available formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a registry with the text, markdown, json and csv formatters.
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[string]Formatter)}

	r.Register("text", &TextFormatter{})
	r.Register("markdown", &MarkdownFormatter{})
	r.Register("json", &JSONFormatter{})
	r.Register("csv", &CSVFormatter{})

	return r
}

// Register adds or replaces the formatter for format.
func (r *Registry) Register(format string, f Formatter) {
	r.formatters[format] = f
}

// Lookup returns the formatter for format.
func (r *Registry) Lookup(format string) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format '%s'. Supported formats: %v", format, r.SupportedFormats())
	}
	return f, nil
}

// Format renders c with the formatter registered for format.
func (r *Registry) Format(c Comparison, format string) (string, error) {
	f, err := r.Lookup(format)
	if err != nil {
		return "", err
	}
	return f.Format(c)
}

// SupportedFormats returns the registered formats in name order.
func (r *Registry) SupportedFormats() []string {
	formats := make([]string, 0, len(r.formatters))
	for format := range r.formatters {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}
