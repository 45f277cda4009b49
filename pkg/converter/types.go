// --- START OF FINAL REVISED FILE pkg/converter/types.go ---
package converter

// Scale identifies the unit of a temperature value.
type Scale string

// Constants representing the supported temperature scales.
const (
	ScaleCelsius    Scale = "C"
	ScaleFahrenheit Scale = "F"
)

// OutputFormat defines the format of the conversion result printed to standard output.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Conversion is the result of a single temperature conversion. Input holds the
// value exactly as resolved from flags or prompts; Output holds the derived
// value in the complementary scale.
type Conversion struct {
	Input       float64 `json:"input"`
	InputScale  Scale   `json:"inputScale"`
	Output      float64 `json:"output"`
	OutputScale Scale   `json:"outputScale"`
}

// --- END OF FINAL REVISED FILE pkg/converter/types.go ---
