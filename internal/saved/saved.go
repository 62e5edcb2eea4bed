package saved

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/resume-insight/internal/compare"
)

// Comparison is a saved selection of resumes for one vacancy.
type Comparison struct {
	ID        string    `json:"id"`
	VacancyID string    `json:"vacancy_id,omitempty"`
	ResumeIDs []string  `json:"resume_ids"`
	Query     string    `json:"query,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store holds saved comparisons in the order they were saved.
type Store struct {
	Items []*Comparison `json:"items"`
}

// New builds a saved comparison from the current state. The selection must
// pass the save check.
func New(vacancyID string, state compare.State, now time.Time) (*Comparison, error) {
	if err := compare.Validate(state.Selection, compare.ActionSave); err != nil {
		return nil, err
	}

	return &Comparison{
		ID:        uuid.NewString(),
		VacancyID: vacancyID,
		ResumeIDs: state.Selection.IDs(),
		Query:     state.Query().Encode(),
		CreatedAt: now.UTC(),
	}, nil
}

// State restores the comparison state saved with c.
func (c *Comparison) State() (compare.State, error) {
	q, err := url.ParseQuery(c.Query)
	if err != nil {
		return compare.DefaultState(), fmt.Errorf("parsing saved query of %s: %w", c.ID, err)
	}
	return compare.ParseState(q)
}

// Load reads the store at path. A missing or empty file is an empty store.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Store{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Store{}, nil
	}

	var store Store
	if err := json.NewDecoder(file).Decode(&store); err != nil {
		return nil, fmt.Errorf("decoding saved comparisons from %s: %w", path, err)
	}
	return &store, nil
}

func (s *Store) Append(items ...*Comparison) {
	s.Items = append(s.Items, items...)
}

func (s *Store) Len() int {
	return len(s.Items)
}

// FindByID returns the saved comparison with id.
func (s *Store) FindByID(id string) (*Comparison, bool) {
	i := slices.IndexFunc(s.Items, func(c *Comparison) bool { return c.ID == id })
	if i < 0 {
		return nil, false
	}
	return s.Items[i], true
}

// ForVacancy returns the comparisons saved for vacancyID, oldest first.
func (s *Store) ForVacancy(vacancyID string) []*Comparison {
	out := make([]*Comparison, 0)
	for _, c := range s.Items {
		if c.VacancyID == vacancyID {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
