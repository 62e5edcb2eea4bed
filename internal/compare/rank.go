package compare

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Range is a closed match percentage interval.
type Range struct {
	Min float64 `json:"min" mapstructure:"min-match"`
	Max float64 `json:"max" mapstructure:"max-match"`
}

// DefaultRange covers every valid percentage.
func DefaultRange() Range {
	return Range{Min: 0, Max: 100}
}

// Validate rejects inverted ranges and bounds outside [0,100].
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return fmt.Errorf("%w: NaN bound", ErrInvalidRange)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min < 0 || r.Max > 100 {
		return fmt.Errorf("%w: [%v, %v] is outside [0, 100]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func (r Range) Contains(pct float64) bool {
	return pct >= r.Min && pct <= r.Max
}

// IsDefault reports whether r is the full range.
func (r Range) IsDefault() bool {
	return r == DefaultRange()
}

// Filter returns the records inside r, keeping input order.
func Filter(records []Record, r Range) ([]Record, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(records))
	for _, record := range records {
		if r.Contains(record.MatchPercentage) {
			out = append(out, record)
		}
	}
	return out, nil
}

// SortKey selects the field records are ordered by.
type SortKey string

const (
	SortByMatch      SortKey = "match"
	SortByDate       SortKey = "date"
	SortByExperience SortKey = "experience"
	SortByTitle      SortKey = "title"
)

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

const (
	DefaultSortKey   = SortByMatch
	DefaultDirection = Descending
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByMatch, SortByDate, SortByExperience, SortByTitle:
		return k, nil
	case "":
		return DefaultSortKey, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Ascending, Descending:
		return d, nil
	case "":
		return DefaultDirection, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Sort returns a copy of records ordered by key. Equal keys keep their input
// order in both directions.
func Sort(records []Record, key SortKey, dir Direction) ([]Record, error) {
	compare, err := comparator(key)
	if err != nil {
		return nil, err
	}

	switch dir {
	case Ascending:
	case Descending:
		asc := compare
		compare = func(a, b Record) int { return asc(b, a) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
	}

	out := clone(records)
	slices.SortStableFunc(out, compare)
	return out, nil
}

func comparator(key SortKey) (func(a, b Record) int, error) {
	switch key {
	case SortByMatch:
		return func(a, b Record) int { return cmp.Compare(a.MatchPercentage, b.MatchPercentage) }, nil
	case SortByDate:
		return func(a, b Record) int { return a.CreatedAt.Compare(b.CreatedAt) }, nil
	case SortByExperience:
		// Records without experience order before any reported value.
		return func(a, b Record) int { return cmp.Compare(experienceOf(a), experienceOf(b)) }, nil
	case SortByTitle:
		return func(a, b Record) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, string(key))
	}
}

func experienceOf(r Record) int {
	if r.ExperienceMonths == nil {
		return -1
	}
	return *r.ExperienceMonths
}

// Ranked is a record with its place in a ranking.
type Ranked struct {
	Record
	// Position is the 1-based ordinal, unique per record.
	Position int `json:"position"`
	// Rank is shared by equal match percentages.
	Rank int `json:"rank"`
}

// Rank labels records already sorted by match percentage descending. Ranks
// are dense: a tie reuses the rank of the first record with that percentage
// and the next distinct percentage gets the following rank.
func Rank(records []Record) []Ranked {
	out := make([]Ranked, len(records))
	rank := 0
	for i, record := range records {
		if i == 0 || record.MatchPercentage != records[i-1].MatchPercentage {
			rank++
		}
		out[i] = Ranked{Record: record, Position: i + 1, Rank: rank}
	}
	return out
}

// Pick returns the records of the selection in selection order. Duplicate
// resume ids keep their first record; ids without a record are returned as missing.
func Pick(records []Record, sel Selection) ([]Record, []string) {
	byID := make(map[string]Record, len(records))
	for _, record := range records {
		if _, seen := byID[record.ResumeID]; !seen {
			byID[record.ResumeID] = record
		}
	}

	picked := make([]Record, 0, sel.Len())
	var missing []string
	for _, id := range sel.ids {
		record, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		picked = append(picked, record)
	}
	return picked, missing
}

// Order returns a copy of ranked rows reordered by key. Rank labels are kept,
// so rows sorted by date still show their standing by match percentage.
func Order(ranked []Ranked, key SortKey, dir Direction) ([]Ranked, error) {
	byRecord, err := comparator(key)
	if err != nil {
		return nil, err
	}

	compare := func(a, b Ranked) int { return byRecord(a.Record, b.Record) }
	switch dir {
	case Ascending:
	case Descending:
		compare = func(a, b Ranked) int { return byRecord(b.Record, a.Record) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
	}

	out := make([]Ranked, len(ranked))
	copy(out, ranked)
	slices.SortStableFunc(out, compare)
	return out, nil
}
