package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// TextFormatter renders an aligned plain text table.
type TextFormatter struct{}

func (f *TextFormatter) Extension() string { return "txt" }

func (f *TextFormatter) Format(c Comparison) (string, error) {
	if err := c.Locale.Validate(); err != nil {
		return "", err
	}
	l := localized[c.Locale]

	head, err := header(c)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, line := range head {
		fmt.Fprintf(&out, "%s: %s\n", line[0], line[1])
	}
	out.WriteString("\n")

	table, err := rows(c)
	if err != nil {
		return "", err
	}

	if len(table) == 0 {
		out.WriteString(l.none + "\n")
	} else {
		tw := tabwriter.NewWriter(&out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", l.position, l.rank, l.resume, l.title, l.match, l.exp, l.added)
		for _, r := range table {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.position, r.rank, r.resume, r.title, r.match, r.experience, r.added)
		}
		if err := tw.Flush(); err != nil {
			return "", err
		}
	}

	summary, err := summaryLines(c)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&out, "\n=== %s ===\n", strings.ToUpper(l.summary))
	for _, line := range summary {
		fmt.Fprintf(&out, "%s: %s\n", line[0], line[1])
	}

	if skills := skillList(c); len(skills) > 0 {
		fmt.Fprintf(&out, "%s: %s\n", l.skills, strings.Join(skills, ", "))
	}

	return out.String(), nil
}

// MarkdownFormatter renders a markdown document with a table.
type MarkdownFormatter struct{}

func (f *MarkdownFormatter) Extension() string { return "md" }

func (f *MarkdownFormatter) Format(c Comparison) (string, error) {
	if err := c.Locale.Validate(); err != nil {
		return "", err
	}
	l := localized[c.Locale]

	head, err := header(c)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, line := range head {
		fmt.Fprintf(&out, "**%s:** %s  \n", line[0], line[1])
	}
	out.WriteString("\n")

	table, err := rows(c)
	if err != nil {
		return "", err
	}

	if len(table) == 0 {
		fmt.Fprintf(&out, "_%s_\n", l.none)
	} else {
		fmt.Fprintf(&out, "| %s | %s | %s | %s | %s | %s | %s |\n", l.position, l.rank, l.resume, l.title, l.match, l.exp, l.added)
		out.WriteString("|---:|---:|---|---|---:|---|---|\n")
		for _, r := range table {
			fmt.Fprintf(&out, "| %s | %s | %s | %s | %s | %s | %s |\n",
				r.position, r.rank, escapePipes(r.resume), escapePipes(r.title), r.match, r.experience, r.added)
		}
	}

	summary, err := summaryLines(c)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&out, "\n## %s\n\n", l.summary)
	for _, line := range summary {
		fmt.Fprintf(&out, "- **%s:** %s\n", line[0], line[1])
	}

	if skills := skillList(c); len(skills) > 0 {
		fmt.Fprintf(&out, "\n## %s\n\n", l.skills)
		for _, s := range skills {
			fmt.Fprintf(&out, "- %s\n", s)
		}
	}

	return out.String(), nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// JSONFormatter renders the raw comparison as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Extension() string { return "json" }

func (f *JSONFormatter) Format(c Comparison) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// CSVFormatter renders one row per ranked resume with raw, locale-neutral values.
type CSVFormatter struct{}

func (f *CSVFormatter) Extension() string { return "csv" }

func (f *CSVFormatter) Format(c Comparison) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"position", "rank", "resume_id", "title", "match_percentage", "experience_months", "created_at", "matched_skills", "missing_skills"}}
	for _, r := range c.Ranked {
		exp := ""
		if r.HasExperience() {
			exp = strconv.Itoa(*r.ExperienceMonths)
		}
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.RFC3339)
		}

		records = append(records, []string{
			strconv.Itoa(r.Position),
			strconv.Itoa(r.Rank),
			r.ResumeID,
			r.Title,
			strconv.FormatFloat(r.MatchPercentage, 'f', -1, 64),
			exp,
			created,
			strings.Join(r.MatchedSkills, ";"),
			strings.Join(r.MissingSkills, ";"),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return "", err
	}
	return buf.String(), nil
}
