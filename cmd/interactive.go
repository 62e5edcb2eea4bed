package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"

	"github.com/spigell/resume-insight/internal/compare"
	"github.com/spigell/resume-insight/internal/l10n"
	"github.com/spigell/resume-insight/internal/logger"
	"github.com/spigell/resume-insight/internal/util"
)

const (
	PromptShow   = "Show comparison"
	PromptAdd    = "Add a resume"
	PromptRemove = "Remove a resume"
	PromptSave   = "Save comparison"
	PromptShare  = "Share comparison"
	PromptExport = "Export comparison"
	PromptExit   = "Exit"
	PromptBack   = "back"
)

var menuActions = map[string]compare.Action{
	PromptSave:   compare.ActionSave,
	PromptShare:  compare.ActionShare,
	PromptExport: compare.ActionExport,
}

// interactive loops over the main menu until the user exits.
func (s *session) interactive(ctx context.Context) error {
	menu := promptui.Select{
		Label: "Compare resumes",
		Items: []string{PromptShow, PromptAdd, PromptRemove, PromptSave, PromptShare, PromptExport, PromptExit},
	}

	for {
		_, choice, err := menu.Run()
		if err != nil {
			return err
		}

		s.logger.Info("current selection", logger.Resumes(s.state.Selection.IDs())...)

		if err := s.handleChoice(ctx, choice); err != nil {
			if errors.Is(err, errExit) {
				return err
			}
			if !isSelectionError(err) {
				return err
			}
			s.logger.Warn("action is not available for the current selection", zap.Error(err))
		}
	}
}

func (s *session) handleChoice(ctx context.Context, choice string) error {
	switch choice {
	case PromptShow:
		return s.render(ctx)
	case PromptAdd:
		return s.addResume()
	case PromptRemove:
		return s.removeResume()
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	}

	if action, ok := menuActions[choice]; ok {
		return s.handleAction(ctx, action)
	}
	return fmt.Errorf("invalid action: %s", choice)
}

func (s *session) addResume() error {
	labels := make([]string, 0, len(s.records))
	for _, r := range s.records {
		if s.state.Selection.Contains(r.ResumeID) {
			continue
		}
		label, err := resumeLabel(r, s.locale)
		if err != nil {
			return err
		}
		labels = append(labels, label)
	}

	id, err := pickResume("Choose a resume to add and press ENTER", labels)
	if err != nil || id == "" {
		return err
	}

	sel, err := s.state.Selection.Add(id)
	if err != nil {
		return err
	}
	s.state.Selection = sel
	return nil
}

func (s *session) removeResume() error {
	id, err := pickResume("Choose a resume to remove and press ENTER", s.state.Selection.IDs())
	if err != nil || id == "" {
		return err
	}

	s.state.Selection = s.state.Selection.Remove(id)
	return nil
}

// pickResume returns the resume id of the chosen label, or "" for back.
func pickResume(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: append(items, PromptBack),
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if selected == PromptBack {
		return "", nil
	}
	return strings.Split(selected, " ")[0], nil
}

func resumeLabel(r compare.Record, loc l10n.Locale) (string, error) {
	match, err := l10n.Percent(r.MatchPercentage/100, loc, l10n.DefaultPercentDecimals)
	if err != nil {
		return "", err
	}
	return util.JoinNonEmpty(" / ", r.ResumeID+" "+match, util.Truncate(r.Title, 40)), nil
}

func isSelectionError(err error) bool {
	for _, target := range []error{
		compare.ErrInsufficientResumes,
		compare.ErrInsufficientResumesForShare,
		compare.ErrTooManyResumes,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
