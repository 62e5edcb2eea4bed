package saved

import (
	"fmt"
	"net/url"

	"github.com/spigell/resume-insight/internal/compare"
)

// ShareURL encodes state into the query string of base. The selection must
// pass the share check.
func ShareURL(base string, state compare.State) (string, error) {
	if err := compare.Validate(state.Selection, compare.ActionShare); err != nil {
		return "", err
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing share base url: %w", err)
	}

	q := u.Query()
	for key, values := range state.Query() {
		q[key] = values
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// ParseShareURL restores the comparison state from a shared link.
func ParseShareURL(raw string) (compare.State, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return compare.DefaultState(), fmt.Errorf("parsing share url: %w", err)
	}
	return compare.ParseState(u.Query())
}
