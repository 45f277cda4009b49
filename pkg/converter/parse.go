// --- START OF FINAL REVISED FILE pkg/converter/parse.go ---
package converter

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTemperature parses a candidate temperature value. Surrounding
// whitespace is ignored. A decimal comma is accepted alongside the decimal
// point ("21,5" parses as 21.5), so input typed under locales that write
// decimals with a comma works at the prompt.
func ParseTemperature(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidTemperature)
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v, nil
	}
	// Single decimal comma, no point: retry with the comma swapped for a point.
	if strings.Count(trimmed, ",") == 1 && !strings.Contains(trimmed, ".") {
		if v, err := strconv.ParseFloat(strings.Replace(trimmed, ",", ".", 1), 64); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTemperature, s)
}

// IsValidScale reports whether the uppercase form of s is exactly "C" or "F".
// It is a pure predicate: false for the empty string and anything else,
// including inputs with surrounding whitespace. No side effects.
func IsValidScale(s string) bool {
	switch strings.ToUpper(s) {
	case string(ScaleCelsius), string(ScaleFahrenheit):
		return true
	default:
		return false
	}
}

// ParseScale normalizes a candidate scale symbol. Unlike IsValidScale it
// tolerates surrounding whitespace, since prompt input arrives untrimmed from
// some sources. Returns ErrInvalidScale for anything that does not uppercase
// to "C" or "F".
func ParseScale(s string) (Scale, error) {
	trimmed := strings.TrimSpace(s)
	if !IsValidScale(trimmed) {
		return "", fmt.Errorf("%w: %q", ErrInvalidScale, s)
	}
	return Scale(strings.ToUpper(trimmed)), nil
}

// --- END OF FINAL REVISED FILE pkg/converter/parse.go ---
