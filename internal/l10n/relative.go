package l10n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Unit is a relative time unit.
type Unit string

const (
	Second Unit = "second"
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Week   Unit = "week"
	Month  Unit = "month"
	Year   Unit = "year"
)

var units = []Unit{Second, Minute, Hour, Day, Week, Month, Year}

// ParseUnit accepts singular or plural English unit names.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, u := range units {
		if string(u) == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// PluralClass is the count-agreement category of a number.
type PluralClass int

const (
	Other PluralClass = iota
	One
	Few
	Many
)

// unitNouns is keyed by (unit, plural class). Russian entries carry the
// accusative forms used after "через" and before "назад".
var unitNouns = map[Locale]map[Unit]map[PluralClass]string{
	English: {
		Second: {One: "second", Other: "seconds"},
		Minute: {One: "minute", Other: "minutes"},
		Hour:   {One: "hour", Other: "hours"},
		Day:    {One: "day", Other: "days"},
		Week:   {One: "week", Other: "weeks"},
		Month:  {One: "month", Other: "months"},
		Year:   {One: "year", Other: "years"},
	},
	Russian: {
		Second: {One: "секунду", Few: "секунды", Many: "секунд"},
		Minute: {One: "минуту", Few: "минуты", Many: "минут"},
		Hour:   {One: "час", Few: "часа", Many: "часов"},
		Day:    {One: "день", Few: "дня", Many: "дней"},
		Week:   {One: "неделю", Few: "недели", Many: "недель"},
		Month:  {One: "месяц", Few: "месяца", Many: "месяцев"},
		Year:   {One: "год", Few: "года", Many: "лет"},
	},
}

// durationNouns holds the nominative forms used for spans of experience.
var durationNouns = map[Locale]map[Unit]map[PluralClass]string{
	English: unitNouns[English],
	Russian: {
		Month: {One: "месяц", Few: "месяца", Many: "месяцев"},
		Year:  {One: "год", Few: "года", Many: "лет"},
	},
}

var relativeTemplates = map[Locale]struct{ past, future string }{
	English: {past: "%s %s ago", future: "in %s %s"},
	Russian: {past: "%s %s назад", future: "через %s %s"},
}

// PluralClass returns the plural category of n for the locale.
func (l Locale) PluralClass(n int64) PluralClass {
	return l.pluralOf(magnitude(n))
}

// magnitude is |n|, also for math.MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func (l Locale) pluralOf(n uint64) PluralClass {
	if l != Russian {
		if n == 1 {
			return One
		}
		return Other
	}

	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return One
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return Few
	default:
		return Many
	}
}

// RelativeTime renders amount units relative to now. Negative and zero
// amounts are in the past ("2 days ago"), positive ones in the future
// ("через 3 часа").
func RelativeTime(amount int64, unit Unit, loc Locale) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	nouns, ok := unitNouns[loc][unit]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, string(unit))
	}

	n := magnitude(amount)
	noun := nouns[loc.pluralOf(n)]
	count := group(strconv.FormatUint(n, 10), loc.symbols().group)

	tmpl := relativeTemplates[loc]
	if amount > 0 {
		return fmt.Sprintf(tmpl.future, count, noun), nil
	}
	return fmt.Sprintf(tmpl.past, count, noun), nil
}

var spans = []struct {
	unit Unit
	size time.Duration
}{
	{Year, 365 * 24 * time.Hour},
	{Month, 30 * 24 * time.Hour},
	{Week, 7 * 24 * time.Hour},
	{Day, 24 * time.Hour},
	{Hour, time.Hour},
	{Minute, time.Minute},
}

// Since renders value relative to now using the largest whole unit.
func Since(value any, now time.Time, loc Locale) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	t, err := ToTime(value)
	if err != nil {
		return "", err
	}

	diff := t.Sub(now)
	abs := time.Duration(math.MaxInt64)
	if m := magnitude(int64(diff)); m < uint64(abs) {
		abs = time.Duration(m)
	}

	unit, size := Second, time.Second
	for _, span := range spans {
		if abs >= span.size {
			unit, size = span.unit, span.size
			break
		}
	}

	return RelativeTime(int64(diff/size), unit, loc)
}

// Experience renders a span of months as years and months:
// "2 years 3 months" or "2 года 3 месяца".
func Experience(months int, loc Locale) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}
	if months < 0 {
		return "", fmt.Errorf("%w: negative experience %d", ErrInvalidNumber, months)
	}

	years, rest := months/12, months%12
	nouns := durationNouns[loc]

	parts := make([]string, 0, 2)
	if years > 0 {
		parts = append(parts, strconv.Itoa(years)+" "+nouns[Year][loc.PluralClass(int64(years))])
	}
	if rest > 0 || years == 0 {
		parts = append(parts, strconv.Itoa(rest)+" "+nouns[Month][loc.PluralClass(int64(rest))])
	}

	return strings.Join(parts, " "), nil
}
