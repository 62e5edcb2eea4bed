package l10n

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var instant = time.Date(2024, time.January, 15, 14, 30, 5, 0, time.UTC)

func TestSupportedLocales(t *testing.T) {
	got := SupportedLocales()
	if diff := cmp.Diff([]Locale{English, Russian}, got); diff != "" {
		t.Fatalf("unexpected locales (-want +got):\n%s", diff)
	}

	got[0] = "de"
	if SupportedLocales()[0] != English {
		t.Fatalf("expected a defensive copy")
	}
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag     string
		want    Locale
		wantErr bool
	}{
		{tag: "en", want: English},
		{tag: " RU ", want: Russian},
		{tag: "en-US", want: English},
		{tag: "ru_RU", want: Russian},
		{tag: "de", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "???", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLocale(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedLocale) {
					t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		loc   Locale
		opts  *DateOptions
		want  string
	}{
		{name: "en long", value: instant, loc: English, want: "January 15, 2024"},
		{name: "ru long", value: instant, loc: Russian, want: "15 января 2024"},
		{name: "en iso string", value: "2024-03-05T10:00:00Z", loc: English, want: "March 5, 2024"},
		{name: "ru date only string", value: "2024-05-01", loc: Russian, want: "1 мая 2024"},
		{name: "epoch millis", value: int64(1705329000000), loc: English, want: "January 15, 2024"},
		{name: "en numeric", value: instant, loc: English, opts: &DateOptions{Month: MonthNumeric}, want: "1/15/2024"},
		{name: "ru numeric", value: instant, loc: Russian, opts: &DateOptions{Month: MonthNumeric}, want: "15.01.2024"},
		{name: "ru short via options", value: instant, loc: Russian, opts: &DateOptions{Month: MonthShort}, want: "15 янв. 2024"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Date(tt.value, tt.loc, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDateContainsDayAndYearForEveryMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		value := time.Date(2031, month, 27, 0, 0, 0, 0, time.UTC)
		for _, loc := range SupportedLocales() {
			got, err := Date(value, loc, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, "27") || !strings.Contains(got, "2031") {
				t.Fatalf("%s: %q misses day or year", loc, got)
			}
			want := enMonthsLong[month-1]
			if loc == Russian {
				want = ruMonthsLong[month-1]
			}
			if !strings.Contains(got, want) {
				t.Fatalf("%s: %q misses month %q", loc, got, want)
			}
		}
	}
}

func TestDateShort(t *testing.T) {
	got, err := DateShort(instant, English)
	if err != nil || got != "Jan 15, 2024" {
		t.Fatalf("expected Jan 15, 2024, got %q (%v)", got, err)
	}

	got, err = DateShort(instant, Russian)
	if err != nil || got != "15 янв. 2024" {
		t.Fatalf("expected 15 янв. 2024, got %q (%v)", got, err)
	}
}

func TestDateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		loc   Locale
		want  error
	}{
		{name: "garbage string", value: "not a date", loc: English, want: ErrInvalidDate},
		{name: "empty string", value: "  ", loc: English, want: ErrInvalidDate},
		{name: "nan millis", value: math.NaN(), loc: English, want: ErrInvalidDate},
		{name: "infinite millis", value: math.Inf(1), loc: Russian, want: ErrInvalidDate},
		{name: "out of range millis", value: 9e15, loc: English, want: ErrInvalidDate},
		{name: "unsupported type", value: struct{}{}, loc: English, want: ErrInvalidDate},
		{name: "zero time", value: time.Time{}, loc: English, want: ErrInvalidDate},
		{name: "unsupported locale", value: instant, loc: "de", want: ErrUnsupportedLocale},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Date(tt.value, tt.loc, nil); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDateTime(t *testing.T) {
	got, err := DateTime(instant, Russian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "15 янв. 2024, 14:30" {
		t.Fatalf("unexpected ru datetime: %q", got)
	}

	got, err = DateTime("2024-01-15T14:30:00Z", English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Jan 15, 2024, 2:30 PM" {
		t.Fatalf("unexpected en datetime: %q", got)
	}

	// Offsets are normalized to UTC.
	got, err = DateTime("2024-01-15T17:30:00+03:00", Russian)
	if err != nil || !strings.HasSuffix(got, "14:30") {
		t.Fatalf("expected 14:30 suffix, got %q (%v)", got, err)
	}
}

func TestTime(t *testing.T) {
	t.Parallel()

	off := false
	on := true
	midnight := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		loc   Locale
		opts  *TimeOptions
		want  string
	}{
		{name: "en afternoon", value: instant, loc: English, want: "2:30 PM"},
		{name: "en midnight", value: midnight, loc: English, want: "12:05 AM"},
		{name: "ru afternoon", value: instant, loc: Russian, want: "14:30"},
		{name: "ru midnight", value: midnight, loc: Russian, want: "00:05"},
		{name: "en forced 24h", value: instant, loc: English, opts: &TimeOptions{Hour12: &off}, want: "14:30"},
		{name: "ru forced 12h", value: instant, loc: Russian, opts: &TimeOptions{Hour12: &on}, want: "2:30 PM"},
		{name: "ru seconds", value: instant, loc: Russian, opts: &TimeOptions{Seconds: true}, want: "14:30:05"},
		{name: "en seconds", value: instant, loc: English, opts: &TimeOptions{Seconds: true}, want: "2:30:05 PM"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Time(tt.value, tt.loc, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    float64
		loc  Locale
		opts *NumberOptions
		want string
	}{
		{name: "en grouping", x: 1234567, loc: English, want: "1,234,567"},
		{name: "ru grouping", x: 1234567, loc: Russian, want: "1\u00a0234\u00a0567"},
		{name: "en max fraction rounds", x: 1234.567, loc: English, opts: &NumberOptions{MaxFractionDigits: 2}, want: "1,234.57"},
		{name: "ru decimal comma", x: 1234.5, loc: Russian, want: "1\u00a0234,5"},
		{name: "default max three", x: 3.14159, loc: English, want: "3.142"},
		{name: "min fraction pads", x: 2, loc: English, opts: &NumberOptions{MinFractionDigits: 2, MaxFractionDigits: 2}, want: "2.00"},
		{name: "half away from zero", x: 1.005, loc: English, opts: &NumberOptions{MaxFractionDigits: 2}, want: "1.01"},
		{name: "negative half away from zero", x: -2.5, loc: English, opts: &NumberOptions{}, want: "-3"},
		{name: "carry into new digit", x: 999.9996, loc: English, want: "1,000"},
		{name: "negative zero", x: -0.0001, loc: English, want: "0"},
		{name: "small", x: 0.5, loc: Russian, want: "0,5"},
		{name: "max below min", x: 1.23456, loc: English, opts: &NumberOptions{MinFractionDigits: 3, MaxFractionDigits: 1}, want: "1.235"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Number(tt.x, tt.loc, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNumberErrors(t *testing.T) {
	if _, err := Number(math.NaN(), English, nil); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if _, err := Number(math.Inf(-1), Russian, nil); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if _, err := Number(1, "de", nil); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
	if _, err := Number(1, English, &NumberOptions{MaxFractionDigits: -1}); err == nil {
		t.Fatalf("expected error for negative fraction digits")
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ratio    float64
		loc      Locale
		decimals int
		want     string
	}{
		{name: "en default", ratio: 0.75, loc: English, decimals: DefaultPercentDecimals, want: "75.0%"},
		{name: "ru default", ratio: 0.75, loc: Russian, decimals: DefaultPercentDecimals, want: "75,0%"},
		{name: "no decimals", ratio: 0.075, loc: English, decimals: 0, want: "8%"},
		{name: "two decimals", ratio: 0.12345, loc: English, decimals: 2, want: "12.35%"},
		{name: "whole", ratio: 1, loc: Russian, decimals: 1, want: "100,0%"},
		{name: "above one", ratio: 12.5, loc: English, decimals: 0, want: "1,250%"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Percent(tt.ratio, tt.loc, tt.decimals)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if _, err := Percent(math.NaN(), English, 1); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		loc    Locale
		code   string
		opts   *NumberOptions
		want   string
	}{
		{name: "en usd", amount: 1234.56, loc: English, code: "USD", want: "$1,234.56"},
		{name: "en zero", amount: 0, loc: English, code: "USD", want: "$0.00"},
		{name: "ru rub", amount: 1234.56, loc: Russian, code: "RUB", want: "1\u00a0234,56\u00a0₽"},
		{name: "en negative", amount: -1234.56, loc: English, code: "USD", want: "-$1,234.56"},
		{name: "ru negative", amount: -5, loc: Russian, code: "rub", want: "-5,00\u00a0₽"},
		{name: "ru usd", amount: 10, loc: Russian, code: "USD", want: "10,00\u00a0$"},
		{name: "unknown symbol falls back to code", amount: 10, loc: English, code: "CHF", want: "CHF\u00a010.00"},
		{name: "no fraction override", amount: 1234.5, loc: English, code: "EUR", opts: &NumberOptions{}, want: "€1,235"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Currency(tt.amount, tt.loc, tt.code, tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCurrencyErrors(t *testing.T) {
	if _, err := Currency(math.NaN(), English, "USD", nil); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if _, err := Currency(1, "fr", "USD", nil); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
	if _, err := Currency(1, English, "ZZZ", nil); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    float64
		loc      Locale
		decimals int
		want     string
	}{
		{name: "one kilobyte", bytes: 1024, loc: English, decimals: DefaultFileSizeDecimals, want: "1.0 KB"},
		{name: "one megabyte", bytes: 1048576, loc: English, decimals: DefaultFileSizeDecimals, want: "1.0 MB"},
		{name: "bytes", bytes: 512, loc: English, decimals: DefaultFileSizeDecimals, want: "512 B"},
		{name: "zero", bytes: 0, loc: English, decimals: DefaultFileSizeDecimals, want: "0 B"},
		{name: "ru decimal comma", bytes: 1536, loc: Russian, decimals: DefaultFileSizeDecimals, want: "1,5 KB"},
		{name: "two decimals", bytes: 5 * 1024 * 1024 * 1024 / 4, loc: English, decimals: 2, want: "1.25 GB"},
		{name: "bytes rounding up rolls over", bytes: 1023.99, loc: English, decimals: DefaultFileSizeDecimals, want: "1.0 KB"},
		{name: "kilobytes rounding up rolls over", bytes: 1048575, loc: English, decimals: DefaultFileSizeDecimals, want: "1.0 MB"},
		{name: "no rollover below the half", bytes: 1023.4 * 1024, loc: Russian, decimals: DefaultFileSizeDecimals, want: "1\u00a0023,4 KB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FileSize(tt.bytes, tt.loc, tt.decimals)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}

	for _, bad := range []float64{-1, math.NaN()} {
		if _, err := FileSize(bad, English, 1); !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("expected ErrInvalidNumber for %v, got %v", bad, err)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount int64
		unit   Unit
		loc    Locale
		want   string
	}{
		{amount: -2, unit: Day, loc: English, want: "2 days ago"},
		{amount: -1, unit: Day, loc: English, want: "1 day ago"},
		{amount: 3, unit: Hour, loc: English, want: "in 3 hours"},
		{amount: 0, unit: Minute, loc: English, want: "0 minutes ago"},
		{amount: 3, unit: Hour, loc: Russian, want: "через 3 часа"},
		{amount: -2, unit: Day, loc: Russian, want: "2 дня назад"},
		{amount: -1, unit: Minute, loc: Russian, want: "1 минуту назад"},
		{amount: 5, unit: Year, loc: Russian, want: "через 5 лет"},
		{amount: -11, unit: Week, loc: Russian, want: "11 недель назад"},
		{amount: 21, unit: Second, loc: Russian, want: "через 21 секунду"},
		{amount: 22, unit: Month, loc: Russian, want: "через 22 месяца"},
		{amount: -112, unit: Hour, loc: Russian, want: "112 часов назад"},
		{amount: 1500, unit: Day, loc: English, want: "in 1,500 days"},
		{amount: math.MinInt64, unit: Day, loc: English, want: "9,223,372,036,854,775,808 days ago"},
		{amount: math.MinInt64, unit: Day, loc: Russian, want: "9\u00a0223\u00a0372\u00a0036\u00a0854\u00a0775\u00a0808 дней назад"},
		{amount: math.MaxInt64, unit: Second, loc: English, want: "in 9,223,372,036,854,775,807 seconds"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got, err := RelativeTime(tt.amount, tt.unit, tt.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if _, err := RelativeTime(1, "decade", English); !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
	if _, err := RelativeTime(1, Day, "de"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestPluralClass(t *testing.T) {
	t.Parallel()

	ru := map[int64]PluralClass{
		0: Many, 1: One, 2: Few, 4: Few, 5: Many, 11: Many, 12: Many, 14: Many,
		21: One, 22: Few, 25: Many, 101: One, 111: Many, 1004: Few,
		-3: Few, math.MinInt64: Many, math.MaxInt64: Many,
	}
	for n, want := range ru {
		if got := Russian.PluralClass(n); got != want {
			t.Fatalf("ru %d: expected %d, got %d", n, want, got)
		}
	}

	if English.PluralClass(1) != One || English.PluralClass(2) != Other || English.PluralClass(0) != Other {
		t.Fatalf("unexpected english plural classes")
	}
}

func TestParseUnit(t *testing.T) {
	for _, in := range []string{"day", "Days", " hours "} {
		if _, err := ParseUnit(in); err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
	}
	if _, err := ParseUnit("fortnight"); !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}

func TestSince(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		value any
		loc   Locale
		want  string
	}{
		{value: now.Add(-30 * time.Second), loc: English, want: "30 seconds ago"},
		{value: now.Add(-90 * time.Minute), loc: English, want: "1 hour ago"},
		{value: now.Add(3 * 24 * time.Hour), loc: Russian, want: "через 3 дня"},
		{value: now.Add(-15 * 24 * time.Hour), loc: Russian, want: "2 недели назад"},
		{value: now.AddDate(-2, 0, 0), loc: English, want: "2 years ago"},
		{value: now, loc: English, want: "0 seconds ago"},
		{value: int64(-8_640_000_000_000_000), loc: English, want: "292 years ago"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got, err := Since(tt.value, now, tt.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		months int
		loc    Locale
		want   string
	}{
		{months: 0, loc: English, want: "0 months"},
		{months: 1, loc: English, want: "1 month"},
		{months: 12, loc: English, want: "1 year"},
		{months: 27, loc: English, want: "2 years 3 months"},
		{months: 0, loc: Russian, want: "0 месяцев"},
		{months: 27, loc: Russian, want: "2 года 3 месяца"},
		{months: 60, loc: Russian, want: "5 лет"},
		{months: 253, loc: Russian, want: "21 год 1 месяц"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got, err := Experience(tt.months, tt.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if _, err := Experience(-1, English); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestFormattersAreIdempotentAcrossGoroutines(t *testing.T) {
	render := func() string {
		parts := make([]string, 0, 6)
		for _, loc := range SupportedLocales() {
			d, _ := DateTime(instant, loc)
			n, _ := Number(9876543.21, loc, nil)
			c, _ := Currency(42.5, loc, "EUR", nil)
			r, _ := RelativeTime(-7, Day, loc)
			parts = append(parts, d, n, c, r)
		}
		return strings.Join(parts, "|")
	}

	want := render()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = render()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Fatalf("goroutine %d rendered %q, want %q", i, got, want)
		}
	}
}
