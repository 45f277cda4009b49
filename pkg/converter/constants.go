// --- START OF FINAL REVISED FILE pkg/converter/constants.go ---
package converter

// Constants defining default values for the configuration options.
// These are used when setting up Viper defaults in the configuration loading
// process and when registering flag defaults on the root command.
const (
	// DefaultOutputFormat is the default format for the conversion result.
	DefaultOutputFormat = OutputFormatText
	// DefaultMaxPromptAttempts bounds the interactive retry loops. 0 means
	// re-prompt until a valid value is supplied.
	DefaultMaxPromptAttempts = 0
	// DefaultTuiEnabled is the default state for the interactive prompt UI
	// when standard input and output are attached to a terminal.
	DefaultTuiEnabled = true
	// DefaultVerbose is the default state for debug logging.
	DefaultVerbose = false
	// DefaultLocale is the default number-formatting locale. Empty selects the
	// shortest round-trip representation with a decimal point.
	DefaultLocale = ""
)

// Prompt strings written before each blocking read of standard input.
const (
	PromptTemperature = "Base temperature value: "
	PromptUnit        = "Base temperature unit (C or F): "
)

// --- END OF FINAL REVISED FILE pkg/converter/constants.go ---
