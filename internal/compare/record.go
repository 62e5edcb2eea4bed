package compare

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Record is the match computation of one resume against a vacancy.
type Record struct {
	ResumeID         string    `json:"resume_id"`
	Title            string    `json:"title,omitempty"`
	MatchPercentage  float64   `json:"match_percentage"`
	MatchedSkills    []string  `json:"matched_skills,omitempty"`
	MissingSkills    []string  `json:"missing_skills,omitempty"`
	ExperienceMonths *int      `json:"experience_months,omitempty"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// Validate checks the identifier and the percentage bounds.
func (r Record) Validate() error {
	if strings.TrimSpace(r.ResumeID) == "" {
		return fmt.Errorf("%w: empty resume id", ErrInvalidRecord)
	}
	if math.IsNaN(r.MatchPercentage) || r.MatchPercentage < 0 || r.MatchPercentage > 100 {
		return fmt.Errorf("%w: resume %s has match percentage %v outside [0,100]", ErrInvalidRecord, r.ResumeID, r.MatchPercentage)
	}
	if r.ExperienceMonths != nil && *r.ExperienceMonths < 0 {
		return fmt.Errorf("%w: resume %s has negative experience", ErrInvalidRecord, r.ResumeID)
	}
	return nil
}

// HasExperience reports whether the record carries an experience value.
func (r Record) HasExperience() bool {
	return r.ExperienceMonths != nil
}

// DecodeRecords converts raw backend items into validated records.
func DecodeRecords(items []map[string]any) ([]Record, error) {
	records := make([]Record, 0, len(items))

	for idx, item := range items {
		var record Record
		cfg := &mapstructure.DecoderConfig{
			Result:           &record,
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook:       stringToTimeHook,
		}

		decoder, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidRecord, idx, err)
		}

		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", idx, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func stringToTimeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}

	s := strings.TrimSpace(reflect.ValueOf(data).String())
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return nil, fmt.Errorf("cannot parse time %q", s)
}

func clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
