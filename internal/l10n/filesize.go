package l10n

import (
	"fmt"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FileSize renders a byte count in the largest base-1024 unit with a
// magnitude of at least one. Counts below 1 KB are whole bytes.
func FileSize(bytes float64, loc Locale, decimals int) (string, error) {
	if err := loc.Validate(); err != nil {
		return "", err
	}
	if err := checkFinite(bytes); err != nil {
		return "", err
	}
	if bytes < 0 {
		return "", fmt.Errorf("%w: negative size %v", ErrInvalidNumber, bytes)
	}
	if decimals < 0 || decimals > maxFractionDigits {
		return "", fmt.Errorf("decimal places must be within 0..%d", maxFractionDigits)
	}

	value := bytes
	idx := 0
	for value >= 1024 && idx < len(sizeUnits)-1 {
		value /= 1024
		idx++
	}

	for {
		digits := decimals
		if idx == 0 {
			digits = 0
		}

		// 1023.99 B shows as 1.0 KB, not 1,024 B.
		if idx < len(sizeUnits)-1 && roundsToNextUnit(value, digits) {
			value /= 1024
			idx++
			continue
		}

		return formatDecimal(value, 0, digits, digits, loc.symbols()) + " " + sizeUnits[idx], nil
	}
}

func roundsToNextUnit(value float64, digits int) bool {
	intPart, frac := decimalDigits(value, 0)
	intPart, _ = roundHalfUp(intPart, frac, digits)
	return len(intPart) > 4 || (len(intPart) == 4 && intPart >= "1024")
}
