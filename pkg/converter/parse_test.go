package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTemperature covers plain, whitespace-padded, scientific, and
// decimal-comma inputs alongside the rejection cases.
func TestParseTemperature(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    float64
		expectError bool
	}{
		{name: "Integer", input: "100", expected: 100},
		{name: "Negative", input: "-40", expected: -40},
		{name: "Decimal point", input: "21.5", expected: 21.5},
		{name: "Decimal comma", input: "21,5", expected: 21.5},
		{name: "Negative decimal comma", input: "-0,5", expected: -0.5},
		{name: "Surrounding whitespace", input: "  37.2  ", expected: 37.2},
		{name: "Scientific notation", input: "1e3", expected: 1000},
		{name: "Empty", input: "", expectError: true},
		{name: "Whitespace only", input: "   ", expectError: true},
		{name: "Letters", input: "abc", expectError: true},
		{name: "Comma and point mixed", input: "1,234.5", expectError: true},
		{name: "Multiple commas", input: "1,2,3", expectError: true},
		{name: "Trailing garbage", input: "21.5x", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTemperature(tc.input)
			if tc.expectError {
				require.Error(t, err, "Input %q should be rejected", tc.input)
				assert.ErrorIs(t, err, ErrInvalidTemperature)
			} else {
				require.NoError(t, err, "Input %q should parse", tc.input)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

// TestIsValidScale verifies the pure predicate: true exactly for inputs whose
// uppercase form is "C" or "F".
func TestIsValidScale(t *testing.T) {
	valid := []string{"C", "c", "F", "f"}
	for _, s := range valid {
		assert.True(t, IsValidScale(s), "IsValidScale(%q)", s)
	}

	invalid := []string{"", " ", "K", "k", "celsius", "fahrenheit", "CF", " C", "C ", "°C"}
	for _, s := range invalid {
		assert.False(t, IsValidScale(s), "IsValidScale(%q)", s)
	}
}

// TestParseScale verifies normalization to uppercase and whitespace tolerance.
func TestParseScale(t *testing.T) {
	testCases := []struct {
		input       string
		expected    Scale
		expectError bool
	}{
		{input: "C", expected: ScaleCelsius},
		{input: "c", expected: ScaleCelsius},
		{input: "F", expected: ScaleFahrenheit},
		{input: "f", expected: ScaleFahrenheit},
		{input: " f ", expected: ScaleFahrenheit},
		{input: "", expectError: true},
		{input: "Q", expectError: true},
		{input: "celsius", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseScale(tc.input)
			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidScale)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
