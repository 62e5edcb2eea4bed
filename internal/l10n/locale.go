package l10n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var (
	ErrUnsupportedLocale   = errors.New("unsupported locale")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidUnit         = errors.New("invalid relative time unit")
)

// Locale selects the rendering convention. Only English and Russian exist.
type Locale string

const (
	English Locale = "en"
	Russian Locale = "ru"
)

var supported = []Locale{English, Russian}

// SupportedLocales returns the closed, ordered set of locales.
func SupportedLocales() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// ParseLocale resolves a BCP 47 tag such as "ru", "en-US" or "RU_ru" to a supported locale.
func ParseLocale(tag string) (Locale, error) {
	raw := strings.TrimSpace(tag)
	if raw == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupportedLocale)
	}

	parsed, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}

	base, _ := parsed.Base()
	loc := Locale(base.String())
	if err := loc.Validate(); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, tag)
	}

	return loc, nil
}

// Validate reports ErrUnsupportedLocale for anything outside SupportedLocales.
func (l Locale) Validate() error {
	switch l {
	case English, Russian:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, string(l))
	}
}

func (l Locale) String() string {
	return string(l)
}

// symbols holds the separators of a locale.
type symbols struct {
	group   string
	decimal string
}

func (l Locale) symbols() symbols {
	if l == Russian {
		return symbols{group: nbsp, decimal: ","}
	}
	return symbols{group: ",", decimal: "."}
}

const nbsp = "\u00a0"
