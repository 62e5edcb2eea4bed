package compare

import (
	"cmp"
	"slices"
	"strings"
)

// Bucket counts records whose experience falls in [FromMonths, ToMonths).
// ToMonths of zero means unbounded.
type Bucket struct {
	Label      string `json:"label"`
	FromMonths int    `json:"from_months"`
	ToMonths   int    `json:"to_months,omitempty"`
	Count      int    `json:"count"`
}

// ExperienceStats aggregates only the records that report experience.
type ExperienceStats struct {
	Reported int      `json:"reported"`
	Min      int      `json:"min_months"`
	Max      int      `json:"max_months"`
	Mean     float64  `json:"mean_months"`
	Buckets  []Bucket `json:"buckets"`
}

// Summary aggregates a set of compared records.
type Summary struct {
	Count        int             `json:"count"`
	AverageMatch float64         `json:"average_match"`
	Experience   ExperienceStats `json:"experience"`
}

func experienceBuckets() []Bucket {
	return []Bucket{
		{Label: "<1y", FromMonths: 0, ToMonths: 12},
		{Label: "1-3y", FromMonths: 12, ToMonths: 36},
		{Label: "3-5y", FromMonths: 36, ToMonths: 60},
		{Label: "5y+", FromMonths: 60},
	}
}

// Summarize computes the count, the unrounded mean match percentage and the
// experience breakdown. Records without experience are left out of the
// experience figures rather than counted as zero.
func Summarize(records []Record) Summary {
	summary := Summary{
		Count:      len(records),
		Experience: ExperienceStats{Buckets: experienceBuckets()},
	}
	if len(records) == 0 {
		return summary
	}

	var matchTotal float64
	var expTotal int
	exp := &summary.Experience

	for _, record := range records {
		matchTotal += record.MatchPercentage

		if record.ExperienceMonths == nil {
			continue
		}
		months := *record.ExperienceMonths

		if exp.Reported == 0 || months < exp.Min {
			exp.Min = months
		}
		if exp.Reported == 0 || months > exp.Max {
			exp.Max = months
		}
		exp.Reported++
		expTotal += months

		for i := range exp.Buckets {
			b := &exp.Buckets[i]
			if months >= b.FromMonths && (b.ToMonths == 0 || months < b.ToMonths) {
				b.Count++
				break
			}
		}
	}

	summary.AverageMatch = matchTotal / float64(len(records))
	if exp.Reported > 0 {
		exp.Mean = float64(expTotal) / float64(exp.Reported)
	}

	return summary
}

// SkillCount is the number of compared resumes that match a skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillMatrix counts matched skills across records, case-insensitively,
// ordered by count descending and then by name.
func SkillMatrix(records []Record) []SkillCount {
	counts := make(map[string]int)
	names := make(map[string]string)

	for _, record := range records {
		seen := make(map[string]bool, len(record.MatchedSkills))
		for _, skill := range record.MatchedSkills {
			name := strings.TrimSpace(skill)
			key := strings.ToLower(name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			counts[key]++
			if _, ok := names[key]; !ok {
				names[key] = name
			}
		}
	}

	matrix := make([]SkillCount, 0, len(counts))
	for key, count := range counts {
		matrix = append(matrix, SkillCount{Skill: names[key], Count: count})
	}

	slices.SortFunc(matrix, func(a, b SkillCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Skill), strings.ToLower(b.Skill))
	})

	return matrix
}
