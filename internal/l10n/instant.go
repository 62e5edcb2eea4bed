package l10n

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// maxEpochMillis mirrors the range of an ECMAScript Date: ±100,000,000 days.
const maxEpochMillis = 8.64e15

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToTime normalizes a formattable instant to UTC. Accepted values are
// time.Time, an ISO-8601 string and Unix epoch milliseconds.
func ToTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return v.UTC(), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return ToTime(*v)
	case string:
		return parseISO(v)
	case int:
		return fromMillis(float64(v))
	case int64:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
	}
}

func parseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func fromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, fmt.Errorf("%w: non-finite timestamp", ErrInvalidDate)
	}
	if ms != math.Trunc(ms) {
		return time.Time{}, fmt.Errorf("%w: fractional timestamp %v", ErrInvalidDate, ms)
	}
	if math.Abs(ms) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("%w: timestamp %v out of range", ErrInvalidDate, ms)
	}

	return time.UnixMilli(int64(ms)).UTC(), nil
}
