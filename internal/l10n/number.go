package l10n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPercentDecimals  = 1
	DefaultFileSizeDecimals = 1
	defaultMaxFraction      = 3
	maxFractionDigits       = 20
)

// NumberOptions bounds the number of fraction digits. Nil options mean 0..3.
type NumberOptions struct {
	MinFractionDigits int
	MaxFractionDigits int
}

func (o *NumberOptions) resolve(defMin, defMax int) (int, int, error) {
	if o == nil {
		return defMin, defMax, nil
	}

	lo, hi := o.MinFractionDigits, o.MaxFractionDigits
	if lo < 0 || hi < 0 || lo > maxFractionDigits || hi > maxFractionDigits {
		return 0, 0, fmt.Errorf("fraction digits must be within 0..%d", maxFractionDigits)
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi, nil
}

// Number renders x with the locale grouping and decimal separators.
// Rounding is half away from zero on the shortest decimal form of x.
func Number(x float64, loc Locale, opts *NumberOptions) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}
	if err := checkFinite(x); err != nil {
		return "", err
	}

	lo, hi, err := opts.resolve(0, defaultMaxFraction)
	if err != nil {
		return "", err
	}

	return formatDecimal(x, 0, lo, hi, loc.symbols()), nil
}

// Percent renders ratio*100 with exactly decimals fraction digits: 0.75 -> "75.0%".
func Percent(ratio float64, loc Locale, decimals int) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}
	if err := checkFinite(ratio); err != nil {
		return "", err
	}
	if decimals < 0 || decimals > maxFractionDigits {
		return "", fmt.Errorf("decimal places must be within 0..%d", maxFractionDigits)
	}

	return formatDecimal(ratio, 2, decimals, decimals, loc.symbols()) + "%", nil
}

func checkFinite(x float64) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: NaN", ErrInvalidNumber)
	}
	if math.IsInf(x, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidNumber, x)
	}
	return nil
}

// formatDecimal scales x by 10^shift, rounds it to [lo, hi] fraction digits
// and applies the separators.
func formatDecimal(x float64, shift, lo, hi int, sym symbols) string {
	neg := math.Signbit(x)
	intPart, frac := decimalDigits(math.Abs(x), shift)
	intPart, frac = roundHalfUp(intPart, frac, hi)

	frac = strings.TrimRight(frac, "0")
	if len(frac) < lo {
		frac += strings.Repeat("0", lo-len(frac))
	}

	if neg && strings.Trim(intPart+frac, "0") == "" {
		neg = false
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(group(intPart, sym.group))
	if frac != "" {
		b.WriteString(sym.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// decimalDigits splits the shortest decimal representation of a non-negative
// x into integer and fraction digits, moving the point shift places right.
func decimalDigits(x float64, shift int) (string, string) {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	for ; shift > 0; shift-- {
		if frac == "" {
			intPart += "0"
			continue
		}
		intPart += frac[:1]
		frac = frac[1:]
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	return intPart, frac
}

// roundHalfUp keeps digits fraction digits, rounding the magnitude half up.
func roundHalfUp(intPart, frac string, digits int) (string, string) {
	if len(frac) <= digits {
		return intPart, frac
	}

	roundUp := frac[digits] >= '5'
	frac = frac[:digits]
	if !roundUp {
		return intPart, frac
	}

	all := []byte(intPart + frac)
	i := len(all) - 1
	for ; i >= 0; i-- {
		if all[i] < '9' {
			all[i]++
			break
		}
		all[i] = '0'
	}
	if i < 0 {
		all = append([]byte{'1'}, all...)
	}

	cut := len(all) - digits
	return string(all[:cut]), string(all[cut:])
}

func group(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
