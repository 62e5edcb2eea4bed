package l10n

import (
	"fmt"
	"strconv"
	"time"
)

// MonthStyle controls how the month of a date is rendered.
type MonthStyle int

const (
	MonthLong MonthStyle = iota
	MonthShort
	MonthNumeric
)

// DateOptions overrides the default long-form date rendering.
type DateOptions struct {
	Month MonthStyle
}

// TimeOptions overrides the locale clock. Hour12 nil keeps the locale default.
type TimeOptions struct {
	Hour12  *bool
	Seconds bool
}

var (
	enMonthsLong = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	enMonthsShort = [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	// Russian dates put the month in the genitive case.
	ruMonthsLong = [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
	ruMonthsShort = [12]string{
		"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
		"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
	}
)

// Date renders a calendar date: "January 15, 2024" or "15 января 2024".
func Date(value any, loc Locale, opts *DateOptions) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	t, err := ToTime(value)
	if err != nil {
		return "", err
	}

	style := MonthLong
	if opts != nil {
		style = opts.Month
	}

	return formatDate(t, loc, style)
}

// DateShort renders a date with an abbreviated month: "Jan 15, 2024" or "15 янв. 2024".
func DateShort(value any, loc Locale) (string, error) {
	return Date(value, loc, &DateOptions{Month: MonthShort})
}

// DateTime renders a short date followed by the time of day in the locale clock.
func DateTime(value any, loc Locale) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	t, err := ToTime(value)
	if err != nil {
		return "", err
	}

	date, err := formatDate(t, loc, MonthShort)
	if err != nil {
		return "", err
	}

	return date + ", " + formatClock(t, loc.hour12(), false), nil
}

// Time renders the time of day. English uses a 12-hour clock with AM/PM,
// Russian a 24-hour clock.
func Time(value any, loc Locale, opts *TimeOptions) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}

	t, err := ToTime(value)
	if err != nil {
		return "", err
	}

	hour12 := loc.hour12()
	seconds := false
	if opts != nil {
		if opts.Hour12 != nil {
			hour12 = *opts.Hour12
		}
		seconds = opts.Seconds
	}

	return formatClock(t, hour12, seconds), nil
}

func (l Locale) hour12() bool {
	return l == English
}

func formatDate(t time.Time, loc Locale, style MonthStyle) (string, error) {
	day := t.Day()
	month := int(t.Month()) - 1
	year := strconv.Itoa(t.Year())

	switch style {
	case MonthLong, MonthShort:
	case MonthNumeric:
		if loc == Russian {
			return fmt.Sprintf("%02d.%02d.%s", day, month+1, year), nil
		}
		return fmt.Sprintf("%d/%d/%s", month+1, day, year), nil
	default:
		return "", fmt.Errorf("unknown month style %d", style)
	}

	if loc == Russian {
		names := ruMonthsLong
		if style == MonthShort {
			names = ruMonthsShort
		}
		return fmt.Sprintf("%d %s %s", day, names[month], year), nil
	}

	names := enMonthsLong
	if style == MonthShort {
		names = enMonthsShort
	}
	return fmt.Sprintf("%s %d, %s", names[month], day, year), nil
}

func formatClock(t time.Time, hour12, seconds bool) string {
	hour, minute, second := t.Clock()

	var clock string
	if hour12 {
		h := hour % 12
		if h == 0 {
			h = 12
		}
		clock = fmt.Sprintf("%d:%02d", h, minute)
	} else {
		clock = fmt.Sprintf("%02d:%02d", hour, minute)
	}

	if seconds {
		clock += fmt.Sprintf(":%02d", second)
	}

	if !hour12 {
		return clock
	}

	if hour < 12 {
		return clock + " AM"
	}
	return clock + " PM"
}
