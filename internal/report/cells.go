package report

import (
	"fmt"
	"math"

	"github.com/spigell/resume-insight/internal/l10n"
	"github.com/spigell/resume-insight/internal/util"
)

const (
	titleWidth = 32
	topSkills  = 10
	emptyCell  = "-"
)

type labels struct {
	vacancy, generated                               string
	position, rank, resume, title, match, exp, added string
	summary, count, average, experience, reported    string
	skills, none                                     string
}

var localized = map[l10n.Locale]labels{
	l10n.English: {
		vacancy: "Vacancy", generated: "Generated",
		position: "#", rank: "Rank", resume: "Resume", title: "Title", match: "Match", exp: "Experience", added: "Added",
		summary: "Summary", count: "Resumes", average: "Average match", experience: "Experience", reported: "reported by",
		skills: "Matched skills", none: "no resumes to compare",
	},
	l10n.Russian: {
		vacancy: "Вакансия", generated: "Сформировано",
		position: "№", rank: "Место", resume: "Резюме", title: "Должность", match: "Совпадение", exp: "Опыт", added: "Добавлено",
		summary: "Итоги", count: "Резюме", average: "Среднее совпадение", experience: "Опыт", reported: "указан у",
		skills: "Совпавшие навыки", none: "нет резюме для сравнения",
	},
}

// row is a ranked record rendered for display.
type row struct {
	position, rank, resume, title, match, experience, added string
}

func rows(c Comparison) ([]row, error) {
	out := make([]row, 0, len(c.Ranked))
	for _, r := range c.Ranked {
		match, err := l10n.Percent(r.MatchPercentage/100, c.Locale, l10n.DefaultPercentDecimals)
		if err != nil {
			return nil, err
		}

		exp := emptyCell
		if r.HasExperience() {
			if exp, err = l10n.Experience(*r.ExperienceMonths, c.Locale); err != nil {
				return nil, err
			}
		}

		added := emptyCell
		if !r.CreatedAt.IsZero() {
			if added, err = l10n.DateShort(r.CreatedAt, c.Locale); err != nil {
				return nil, err
			}
		}

		title := util.Truncate(r.Title, titleWidth)
		if title == "" {
			title = emptyCell
		}

		out = append(out, row{
			position:   fmt.Sprint(r.Position),
			rank:       fmt.Sprint(r.Rank),
			resume:     r.ResumeID,
			title:      title,
			match:      match,
			experience: exp,
			added:      added,
		})
	}
	return out, nil
}

// summaryLines renders the aggregate figures as label/value pairs.
func summaryLines(c Comparison) ([][2]string, error) {
	l := localized[c.Locale]
	s := c.Summary

	count, err := l10n.Number(float64(s.Count), c.Locale, nil)
	if err != nil {
		return nil, err
	}
	lines := [][2]string{{l.count, count}}
	if s.Count == 0 {
		return lines, nil
	}

	average, err := l10n.Percent(s.AverageMatch/100, c.Locale, l10n.DefaultPercentDecimals)
	if err != nil {
		return nil, err
	}
	lines = append(lines, [2]string{l.average, average})

	exp := s.Experience
	if exp.Reported == 0 {
		return lines, nil
	}

	lo, err := l10n.Experience(exp.Min, c.Locale)
	if err != nil {
		return nil, err
	}
	hi, err := l10n.Experience(exp.Max, c.Locale)
	if err != nil {
		return nil, err
	}
	mean, err := l10n.Experience(int(math.Round(exp.Mean)), c.Locale)
	if err != nil {
		return nil, err
	}

	value := fmt.Sprintf("%s .. %s, ~%s (%s %d/%d)", lo, hi, mean, l.reported, exp.Reported, s.Count)
	return append(lines, [2]string{l.experience, value}), nil
}

func skillList(c Comparison) []string {
	skills := c.Skills
	if len(skills) > topSkills {
		skills = skills[:topSkills]
	}

	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, fmt.Sprintf("%s (%d/%d)", s.Skill, s.Count, c.Summary.Count))
	}
	return out
}

func header(c Comparison) ([][2]string, error) {
	l := localized[c.Locale]
	lines := make([][2]string, 0, 2)
	if c.VacancyID != "" {
		lines = append(lines, [2]string{l.vacancy, c.VacancyID})
	}
	if c.GeneratedAt.IsZero() {
		return lines, nil
	}

	generated, err := l10n.DateTime(c.GeneratedAt, c.Locale)
	if err != nil {
		return nil, err
	}
	return append(lines, [2]string{l.generated, generated}), nil
}
