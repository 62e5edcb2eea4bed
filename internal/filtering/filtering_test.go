package filtering

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-insight/internal/compare"
)

func months(n int) *int {
	return &n
}

func records() []compare.Record {
	return []compare.Record{
		{ResumeID: "r1", MatchPercentage: 91, ExperienceMonths: months(48), MatchedSkills: []string{"Go", "Postgres"}},
		{ResumeID: "r2", MatchPercentage: 35, ExperienceMonths: months(10), MatchedSkills: []string{"go"}},
		{ResumeID: "r3", MatchPercentage: 77, MatchedSkills: []string{"Go", "postgres", "Kafka"}},
		{ResumeID: "r4", MatchPercentage: 60, ExperienceMonths: months(30), MatchedSkills: []string{"Python"}},
	}
}

func TestRunAppliesStepsInOrder(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	sel, _ := compare.NewSelection("r3", "r1", "r2", "r4")

	cfg := &Config{
		Selection:           sel,
		Range:               compare.Range{Min: 40, Max: 100},
		MinExperienceMonths: 12,
		RequiredSkills:      []string{" GO "},
	}

	input := records()
	got, steps, err := Run(context.Background(), cfg, Deps{Logger: zap.New(core)}, Default(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"r1"}, idsOf(got)); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}

	want := []Step{
		{Name: "selection", Initial: 4, Dropped: 0, Left: 4},
		{Name: "match_range", Initial: 4, Dropped: 1, Left: 3},
		{Name: "experience", Initial: 3, Dropped: 1, Left: 2},
		{Name: "required_skills", Initial: 2, Dropped: 1, Left: 1},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Fatalf("unexpected steps (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"r1", "r2", "r3", "r4"}, idsOf(input)); diff != "" {
		t.Fatalf("input was modified (-want +got):\n%s", diff)
	}

	if n := len(observed.FilterMessage("filter step").All()); n != 4 {
		t.Fatalf("expected 4 step log entries, got %d", n)
	}
}

func TestSelectionKeepsSelectionOrder(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	sel, _ := compare.NewSelection("r4", "r2", "ghost")

	got, _, err := Run(context.Background(), &Config{Selection: sel, Range: compare.DefaultRange()}, Deps{Logger: zap.New(core)}, Default(), records())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"r4", "r2"}, idsOf(got)); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}

	entries := observed.FilterMessage("selected resumes have no match records").All()
	if len(entries) != 1 {
		t.Fatalf("expected a warning about missing resumes, got %d", len(entries))
	}
}

func TestRunValidatesBeforeApplying(t *testing.T) {
	cfg := &Config{Range: compare.Range{Min: 90, Max: 10}}
	_, _, err := Run(context.Background(), cfg, Deps{}, Default(), records())
	if !errors.Is(err, compare.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	cfg = &Config{Range: compare.DefaultRange(), MinExperienceMonths: -1}
	if _, _, err := Run(context.Background(), cfg, Deps{}, Default(), records()); err == nil {
		t.Fatalf("expected negative experience to be rejected")
	}
}

func TestRunNilConfigKeepsEverything(t *testing.T) {
	got, steps, err := Run(context.Background(), nil, Deps{}, Default(), records())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 || len(steps) != 4 {
		t.Fatalf("expected all records and steps, got %d records and %d steps", len(got), len(steps))
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := Run(ctx, nil, Deps{}, Default(), records()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDisableByName(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	steps := Default()
	DisableByName(steps, "selection", "comparing the whole vacancy")

	sel, _ := compare.NewSelection("r1", "r2")
	got, report, err := Run(context.Background(), &Config{Selection: sel, Range: compare.DefaultRange()}, Deps{Logger: zap.New(core)}, steps, records())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 || len(report) != 3 {
		t.Fatalf("expected disabled selection to be skipped, got %d records and %d steps", len(got), len(report))
	}
	if len(observed.FilterMessage("filter disabled").All()) != 1 {
		t.Fatalf("expected a log entry for the disabled filter")
	}

	statuses := Describe(steps)
	if statuses[0].Enabled || statuses[0].Reason != "comparing the whole vacancy" {
		t.Fatalf("unexpected selection status: %+v", statuses[0])
	}
}

func TestDescribe(t *testing.T) {
	steps := Default()
	cfg := &Config{Range: compare.Range{Min: 10, Max: 80.5}, MinExperienceMonths: 6, RequiredSkills: []string{"Go", " "}}
	for _, step := range steps {
		if err := step.Validate(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := Describe(steps)
	want := []Status{
		{Name: "selection", Enabled: true, Details: map[string]string{"size": "0"}},
		{Name: "match_range", Enabled: true, Details: map[string]string{"min": "10", "max": "80.5"}},
		{Name: "experience", Enabled: true, Details: map[string]string{"min_months": "6"}},
		{Name: "required_skills", Enabled: true, Details: map[string]string{"skills": "go"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected statuses (-want +got):\n%s", diff)
	}
}
