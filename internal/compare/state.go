package compare

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	queryResumes  = "resumes"
	queryMinMatch = "min"
	queryMaxMatch = "max"
	querySort     = "sort"
	queryOrder    = "order"
)

// State is the comparison view as carried in a URL query string.
type State struct {
	Selection Selection
	Range     Range
	SortKey   SortKey
	Direction Direction
}

// DefaultState has an empty selection and the default filter and sort.
func DefaultState() State {
	return State{
		Range:     DefaultRange(),
		SortKey:   DefaultSortKey,
		Direction: DefaultDirection,
	}
}

// Query encodes the state. Default values are omitted.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Selection.Len() > 0 {
		q.Set(queryResumes, strings.Join(s.Selection.ids, idSeparator))
	}
	if s.Range.Min != 0 {
		q.Set(queryMinMatch, strconv.FormatFloat(s.Range.Min, 'f', -1, 64))
	}
	if s.Range.Max != 100 {
		q.Set(queryMaxMatch, strconv.FormatFloat(s.Range.Max, 'f', -1, 64))
	}
	if s.SortKey != "" && s.SortKey != DefaultSortKey {
		q.Set(querySort, string(s.SortKey))
	}
	if s.Direction != "" && s.Direction != DefaultDirection {
		q.Set(queryOrder, string(s.Direction))
	}
	return q
}

// ParseState decodes a query produced by Query. Missing values take defaults.
func ParseState(q url.Values) (State, error) {
	state := DefaultState()

	if raw := q.Get(queryResumes); raw != "" {
		sel, err := NewSelection(strings.Split(raw, idSeparator)...)
		if err != nil {
			return state, err
		}
		state.Selection = sel
	}

	var err error
	if state.Range.Min, err = parseBound(q, queryMinMatch, 0); err != nil {
		return state, err
	}
	if state.Range.Max, err = parseBound(q, queryMaxMatch, 100); err != nil {
		return state, err
	}
	if err := state.Range.Validate(); err != nil {
		return state, err
	}

	if state.SortKey, err = ParseSortKey(q.Get(querySort)); err != nil {
		return state, err
	}
	if state.Direction, err = ParseDirection(q.Get(queryOrder)); err != nil {
		return state, err
	}

	return state, nil
}

func parseBound(q url.Values, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidRange, key, raw)
	}
	return v, nil
}
