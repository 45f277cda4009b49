// --- START OF FINAL REVISED FILE pkg/converter/format.go ---
package converter

import (
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxLocaleFractionDigits bounds locale-formatted output. The plain path uses
// the shortest round-trip representation instead, which has no fixed width.
const maxLocaleFractionDigits = 12

// FormatValue renders a temperature value as text. For the undefined tag it
// uses the shortest representation that round-trips through ParseFloat; for a
// concrete locale it delegates to x/text so digits, separators, and grouping
// follow that locale's conventions.
func FormatValue(v float64, loc language.Tag) string {
	if loc == language.Und {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	p := message.NewPrinter(loc)
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(maxLocaleFractionDigits)))
}

// Format renders the conversion result line:
//
//	<source value>°<source scale> => <converted value>°<converted scale>
func Format(c Conversion, loc language.Tag) string {
	return fmt.Sprintf("%s°%s => %s°%s",
		FormatValue(c.Input, loc), c.InputScale,
		FormatValue(c.Output, loc), c.OutputScale,
	)
}

// String implements fmt.Stringer using plain (locale-free) formatting.
func (c Conversion) String() string {
	return Format(c, language.Und)
}

// RenderJSON marshals the conversion result for the "json" output format.
func RenderJSON(c Conversion) (string, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal conversion result: %w", err)
	}
	return string(b), nil
}

// --- END OF FINAL REVISED FILE pkg/converter/format.go ---
