package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
	"github.com/spigell/resume-insight/internal/filtering"
	"github.com/spigell/resume-insight/internal/l10n"
	"github.com/spigell/resume-insight/internal/logger"
	"github.com/spigell/resume-insight/internal/report"
	"github.com/spigell/resume-insight/internal/saved"
)

var errExit = errors.New("exit requested")

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Filter, rank and render resumes matched against a vacancy",
	Run: func(cmd *cobra.Command, _ []string) {
		runCompare(cmd)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("input", "i", "-", "JSON file with match records, - for stdin")
	compareCmd.Flags().String("vacancy", "", "vacancy id, overrides the one in the input")
	compareCmd.Flags().StringSlice("resumes", nil, "resume ids to compare, in order")
	compareCmd.Flags().String("from-url", "", "restore the comparison from a shared link")
	compareCmd.Flags().String("saved", "", "restore the comparison saved under this id")
	compareCmd.Flags().Float64("min", 0, "minimum match percentage")
	compareCmd.Flags().Float64("max", 100, "maximum match percentage")
	compareCmd.Flags().String("sort", "", "sort key: match, date, experience or title")
	compareCmd.Flags().String("order", "", "sort direction: asc or desc")
	compareCmd.Flags().Int("min-experience", 0, "minimum experience in months")
	compareCmd.Flags().StringSlice("skills", nil, "skills every resume must match")
	compareCmd.Flags().StringP("output", "o", "", "output format: text, markdown, json or csv")
	compareCmd.Flags().Bool("interactive", false, "build the selection interactively")
	compareCmd.Flags().StringSlice("action", nil, "actions to run after rendering: save, share, export")
	compareCmd.Flags().String("export-dir", "", "directory for exported files (default is the system temp dir)")

	viper.BindPFlag("compare.min-match", compareCmd.Flags().Lookup("min"))
	viper.BindPFlag("compare.max-match", compareCmd.Flags().Lookup("max"))
	viper.BindPFlag("compare.sort", compareCmd.Flags().Lookup("sort"))
	viper.BindPFlag("compare.order", compareCmd.Flags().Lookup("order"))
	viper.BindPFlag("compare.min-experience-months", compareCmd.Flags().Lookup("min-experience"))
	viper.BindPFlag("compare.required-skills", compareCmd.Flags().Lookup("skills"))
	viper.BindPFlag("compare.output", compareCmd.Flags().Lookup("output"))
}

// session is one comparison being built, rendered and acted upon.
type session struct {
	logger   *zap.Logger
	config   *Config
	locale   l10n.Locale
	vacancy  string
	records  []compare.Record
	state    compare.State
	registry *report.Registry
	output   string
	out      io.Writer
	now      func() time.Time
	exporter *saved.Exporter
}

func runCompare(cmd *cobra.Command) {
	ctx := context.Background()
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	s, err := newSession(cmd, config, log)
	if err != nil {
		log.Fatal("preparing the comparison", zap.Error(err))
	}

	s.logger.Info("starting the comparison",
		zap.String("version", version),
		zap.Int("records", len(s.records)),
	)

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		if err := s.interactive(ctx); err != nil && !errors.Is(err, errExit) {
			s.logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	if err := s.render(ctx); err != nil {
		s.logger.Fatal("rendering the comparison", zap.Error(err))
	}

	names, _ := cmd.Flags().GetStringSlice("action")
	for _, name := range names {
		action, err := compare.ParseAction(name)
		if err != nil {
			s.logger.Fatal("parsing actions", zap.Error(err))
		}
		if err := s.handleAction(ctx, action); err != nil {
			s.logger.Fatal("running "+string(action), zap.Error(err))
		}
	}
}

func newSession(cmd *cobra.Command, config *Config, log *zap.Logger) (*session, error) {
	loc, err := l10n.ParseLocale(config.Locale)
	if err != nil {
		return nil, err
	}

	state, err := stateFromFlags(cmd, config)
	if err != nil {
		return nil, err
	}

	input, _ := cmd.Flags().GetString("input")
	vacancy, records, err := readRecords(input, cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading match records: %w", err)
	}
	if flagVacancy, _ := cmd.Flags().GetString("vacancy"); flagVacancy != "" {
		vacancy = flagVacancy
	}

	exportDir, _ := cmd.Flags().GetString("export-dir")
	registry := report.NewRegistry()
	if _, err := registry.Lookup(config.Compare.Output); err != nil {
		return nil, err
	}

	return &session{
		logger:   logger.WithCommonFields(log, loc.String(), vacancy),
		config:   config,
		locale:   loc,
		vacancy:  vacancy,
		records:  records,
		state:    state,
		registry: registry,
		output:   config.Compare.Output,
		out:      cmd.OutOrStdout(),
		now:      time.Now,
		exporter: &saved.Exporter{Registry: registry, Dir: exportDir},
	}, nil
}

// stateFromFlags starts from a saved comparison or a shared link when one is
// given. Configured range, sort and order replace the restored ones only when
// they differ from the defaults; --resumes always wins.
func stateFromFlags(cmd *cobra.Command, config *Config) (compare.State, error) {
	state := compare.DefaultState()
	cfg := config.Compare

	if id, _ := cmd.Flags().GetString("saved"); id != "" {
		restored, err := savedState(config.SavedFile, id)
		if err != nil {
			return state, err
		}
		state = restored
	}

	if link, _ := cmd.Flags().GetString("from-url"); link != "" {
		restored, err := saved.ParseShareURL(link)
		if err != nil {
			return state, err
		}
		state = restored
	}

	if cmd.Flags().Changed("resumes") {
		ids, _ := cmd.Flags().GetStringSlice("resumes")
		sel, err := compare.NewSelection(ids...)
		if err != nil {
			return state, err
		}
		state.Selection = sel
	}

	if !cfg.Range.IsDefault() {
		state.Range = cfg.Range
	}
	if err := state.Range.Validate(); err != nil {
		return state, err
	}

	key, err := compare.ParseSortKey(cfg.Sort)
	if err != nil {
		return state, err
	}
	if key != compare.DefaultSortKey {
		state.SortKey = key
	}

	dir, err := compare.ParseDirection(cfg.Order)
	if err != nil {
		return state, err
	}
	if dir != compare.DefaultDirection {
		state.Direction = dir
	}

	return state, nil
}

func savedState(path, id string) (compare.State, error) {
	store, err := saved.Load(path)
	if err != nil {
		return compare.DefaultState(), fmt.Errorf("loading saved comparisons: %w", err)
	}

	comparison, ok := store.FindByID(id)
	if !ok {
		return compare.DefaultState(), fmt.Errorf("saved comparison %s not found in %s", id, path)
	}
	return comparison.State()
}

// matchPayload is the backend response wrapping match records with their vacancy.
type matchPayload struct {
	VacancyID string           `json:"vacancy_id"`
	Items     []map[string]any `json:"items"`
}

// readRecords accepts either a bare array of match items or a matchPayload object.
func readRecords(path string, stdin io.Reader) (string, []compare.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", nil, err
	}

	var payload matchPayload
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		err = json.Unmarshal(trimmed, &payload)
	} else {
		err = json.Unmarshal(trimmed, &payload.Items)
	}
	if err != nil {
		return "", nil, err
	}

	records, err := compare.DecodeRecords(payload.Items)
	if err != nil {
		return "", nil, err
	}
	return payload.VacancyID, records, nil
}

// build runs the filter pipeline over the records and lays out the comparison.
func (s *session) build(ctx context.Context) (report.Comparison, error) {
	steps := filtering.Default()
	if s.state.Selection.Len() == 0 {
		filtering.DisableByName(steps, "selection", "no resumes selected")
	}

	cfg := &filtering.Config{
		Selection:           s.state.Selection,
		Range:               s.state.Range,
		MinExperienceMonths: s.config.Compare.MinExperienceMonths,
		RequiredSkills:      s.config.Compare.RequiredSkills,
	}

	left, _, err := filtering.Run(ctx, cfg, filtering.Deps{Logger: s.logger}, steps, s.records)
	if err != nil {
		return report.Comparison{}, fmt.Errorf("filtering: %w", err)
	}

	return report.Build(s.vacancy, s.locale, left, s.state.SortKey, s.state.Direction, s.now())
}

func (s *session) render(ctx context.Context) error {
	c, err := s.build(ctx)
	if err != nil {
		return err
	}

	out, err := s.registry.Format(c, s.output)
	if err != nil {
		return err
	}

	_, err = io.WriteString(s.out, out)
	return err
}

func (s *session) handleAction(ctx context.Context, action compare.Action) error {
	switch action {
	case compare.ActionSave:
		return s.save()
	case compare.ActionShare:
		link, err := saved.ShareURL(s.config.ShareBaseURL, s.state)
		if err != nil {
			return err
		}
		s.logger.Info("comparison shared", logger.Resumes(s.state.Selection.IDs())...)
		fmt.Fprintln(s.out, link)
		return nil
	case compare.ActionExport:
		c, err := s.build(ctx)
		if err != nil {
			return err
		}
		s.exporter.Logger = s.logger
		path, err := s.exporter.Export(s.state.Selection, c, s.output)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, path)
		return nil
	default:
		return fmt.Errorf("%w: %q", compare.ErrUnknownAction, string(action))
	}
}

func (s *session) save() error {
	comparison, err := saved.New(s.vacancy, s.state, s.now())
	if err != nil {
		return err
	}

	path := strings.TrimSpace(s.config.SavedFile)
	store, err := saved.Load(path)
	if err != nil {
		return fmt.Errorf("loading saved comparisons: %w", err)
	}

	store.Append(comparison)
	if err := store.ToFile(path); err != nil {
		return fmt.Errorf("writing saved comparisons: %w", err)
	}

	s.logger.Info("comparison saved",
		append(logger.Resumes(comparison.ResumeIDs),
			zap.String("id", comparison.ID),
			zap.String("filename", path),
		)...,
	)
	return nil
}
