package l10n

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

const defaultCurrencyFraction = 2

// currencySymbols lists the canonical symbols. Codes missing here render as
// the ISO code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"RUB": "₽",
	"KZT": "₸",
	"UAH": "₴",
	"INR": "₹",
}

// Currency renders amount with the currency symbol for the locale:
// "$1,234.56" in English and "1 234,56 ₽" in Russian. Two fraction digits are
// used unless opts override them.
func Currency(amount float64, loc Locale, code string, opts *NumberOptions) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}
	if err := checkFinite(amount); err != nil {
		return "", err
	}

	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	lo, hi, err := opts.resolve(defaultCurrencyFraction, defaultCurrencyFraction)
	if err != nil {
		return "", err
	}

	iso := unit.String()
	symbol, known := currencySymbols[iso]
	if !known {
		symbol = iso
	}

	digits := formatDecimal(amount, 0, lo, hi, loc.symbols())
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	if loc == Russian {
		return sign + digits + nbsp + symbol, nil
	}
	if !known {
		return sign + symbol + nbsp + digits, nil
	}
	return sign + symbol + digits, nil
}
