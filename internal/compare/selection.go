package compare

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// MinSelection is the smallest selection that can be saved, shared or exported.
	MinSelection = 2
	// MaxSelection caps the number of resumes compared at once.
	MaxSelection = 5

	idSeparator = ","
)

// Selection is an ordered set of resume ids. Insertion order is kept and the
// value is never modified in place.
type Selection struct {
	ids []string
}

// NewSelection adds ids one by one, failing when the cap is exceeded.
func NewSelection(ids ...string) (Selection, error) {
	var sel Selection
	for _, id := range ids {
		next, err := sel.Add(id)
		if err != nil {
			return sel, err
		}
		sel = next
	}
	return sel, nil
}

// Add returns a selection with id appended. Adding a present id is a no-op;
// adding a new id to a full selection fails with ErrTooManyResumes. Ids may
// not contain the query separator.
func (s Selection) Add(id string) (Selection, error) {
	id = strings.TrimSpace(id)
	if id == "" || s.Contains(id) {
		return s, nil
	}
	if strings.Contains(id, idSeparator) {
		return s, fmt.Errorf("%w: %q contains %q", ErrInvalidResumeID, id, idSeparator)
	}
	if len(s.ids) >= MaxSelection {
		return s, fmt.Errorf("%w: at most %d resumes, cannot add %s", ErrTooManyResumes, MaxSelection, id)
	}

	ids := make([]string, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)
	return Selection{ids: append(ids, id)}, nil
}

// Remove returns a selection without id.
func (s Selection) Remove(id string) Selection {
	idx := slices.Index(s.ids, strings.TrimSpace(id))
	if idx < 0 {
		return s
	}

	ids := make([]string, 0, len(s.ids)-1)
	ids = append(ids, s.ids[:idx]...)
	ids = append(ids, s.ids[idx+1:]...)
	return Selection{ids: ids}
}

func (s Selection) Contains(id string) bool {
	return slices.Contains(s.ids, strings.TrimSpace(id))
}

func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the ids in insertion order.
func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Action is an external operation gated by the selection size.
type Action string

const (
	ActionSave   Action = "save"
	ActionShare  Action = "share"
	ActionExport Action = "export"
)

// ParseAction resolves an action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionSave, ActionShare, ActionExport:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Validate is the gate for save, share and export.
func Validate(s Selection, action Action) error {
	switch action {
	case ActionSave, ActionExport:
		return validateBand(s, action)
	case ActionShare:
		return validateShare(s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, string(action))
	}
}

// validateBand enforces MinSelection..MaxSelection for save and export.
func validateBand(s Selection, action Action) error {
	n := s.Len()
	if n < MinSelection {
		return fmt.Errorf("%w: %s needs %d to %d resumes, got %d", ErrInsufficientResumes, action, MinSelection, MaxSelection, n)
	}
	if n > MaxSelection {
		return fmt.Errorf("%w: %s needs %d to %d resumes, got %d", ErrTooManyResumes, action, MinSelection, MaxSelection, n)
	}
	return nil
}

// validateShare only has a lower bound.
func validateShare(s Selection) error {
	if n := s.Len(); n < MinSelection {
		return fmt.Errorf("%w: share needs at least %d resumes, got %d", ErrInsufficientResumesForShare, MinSelection, n)
	}
	return nil
}
