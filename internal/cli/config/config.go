// --- START OF FINAL REVISED FILE internal/cli/config/config.go ---
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/Izocel/ConvertisseurTemperature/pkg/converter"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// TEMPCONVERTER_UNIT=F or TEMPCONVERTER_OUTPUT_FORMAT=json.
const EnvPrefix = "TEMPCONVERTER"

// LoadAndValidate resolves configuration from all sources (defaults,
// environment, flags), validates the merged result, derives values (parsed
// locale tag, effective TUI state), and sets up the logger. There is no
// config-file layer: the tool persists nothing between invocations.
// Returns the populated Options struct or an error.
func LoadAndValidate(appVersion string, verbose bool, flags *pflag.FlagSet) (converter.Options, *slog.Logger, error) {
	var opts converter.Options
	v := viper.New()

	// Temporary basic logger for early loading errors.
	tempLogHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	tempLogger := slog.New(tempLogHandler)

	setDefaults(v)

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Bind Flags (Highest Priority) ---
	// Flag names must align with the registrations in cmd/temp-converter/root.go.
	flagKeys := []string{
		"temperature", "unit", "verbose", "no-tui",
		"output-format", "locale", "max-attempts",
	}
	for _, key := range flagKeys {
		flag := flags.Lookup(key)
		if flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				tempLogger.Error("Error binding flag", slog.String("flag", key), slog.Any("error", err))
				return opts, tempLogger, fmt.Errorf("error binding flag '--%s': %w", key, err)
			}
		} else {
			tempLogger.Debug("Flag lookup failed during binding", slog.String("flag", key))
		}
	}

	// Viper keys that differ from flag names.
	v.RegisterAlias("outputFormat", "output-format")
	v.RegisterAlias("maxAttempts", "max-attempts")

	// --- Unmarshal Final Configuration ---
	opts.AppVersion = appVersion
	if err := v.Unmarshal(&opts); err != nil {
		tempLogger.Error("Error unmarshalling configuration", slog.Any("error", err))
		return opts, tempLogger, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// --- Explicitly Apply Flag Values for Core Inputs (overriding others) ---
	// Command-line candidates for the two conversion inputs take absolute
	// precedence over environment values.
	if flags.Changed("temperature") {
		opts.Temperature, _ = flags.GetString("temperature")
	}
	if flags.Changed("unit") {
		opts.Unit, _ = flags.GetString("unit")
	}

	// --- Explicitly Handle Flag Overrides for Booleans ---
	if flags.Changed("verbose") {
		opts.Verbose, _ = flags.GetBool("verbose")
	}
	if verbose {
		// The persistent -v flag wins regardless of binding order.
		opts.Verbose = true
	}

	// --- Setup Final Logger ---
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	// Log to Stderr so stdout carries only the conversion result.
	logHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logHandler)
	opts.Logger = logHandler

	// --- Final Validation and Derivations ---
	if err := validateAndDeriveOptions(&opts, logger, flags); err != nil {
		return opts, logger, err
	}

	logger.Debug("Configuration loading and validation complete",
		slog.String("outputFormat", string(opts.OutputFormat)),
		slog.String("locale", opts.Locale),
		slog.Int("maxAttempts", opts.MaxPromptAttempts),
		slog.Bool("verbose", opts.Verbose),
		slog.Bool("tuiEnabledEffective", opts.TuiEnabled),
	)

	return opts, logger, nil
}

// setDefaults establishes the default values for configuration options in Viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("temperature", "")
	v.SetDefault("unit", "")
	v.SetDefault("verbose", converter.DefaultVerbose)
	v.SetDefault("outputFormat", string(converter.DefaultOutputFormat))
	v.SetDefault("locale", converter.DefaultLocale)
	v.SetDefault("maxAttempts", converter.DefaultMaxPromptAttempts)
	v.SetDefault("tuiEnabled", converter.DefaultTuiEnabled)
}

// isValidEnumValue checks if a given string value is present in a slice of
// allowed enum values. Case-sensitive comparison.
func isValidEnumValue[T ~string](value T, allowedValues []T) bool {
	return slices.Contains(allowedValues, value)
}

// validateAndDeriveOptions performs semantic validation on the populated
// Options struct and calculates derived fields. Candidate values for the two
// conversion inputs are deliberately NOT validated here: an unparsable
// --temperature or an invalid --unit is resolved by the interactive
// validation loop, never rejected as a configuration error.
// Validation failures wrap converter.ErrConfigValidation.
func validateAndDeriveOptions(opts *converter.Options, logger *slog.Logger, flags *pflag.FlagSet) error {
	// === Enum String Validations ===
	allowedOutputFormat := []converter.OutputFormat{converter.OutputFormatText, converter.OutputFormatJSON}
	if !isValidEnumValue(opts.OutputFormat, allowedOutputFormat) {
		err := fmt.Errorf("%w: invalid value '%s' for key 'outputFormat' (flag --output-format). Allowed: %v",
			converter.ErrConfigValidation, opts.OutputFormat, allowedOutputFormat)
		logger.Error(err.Error(), slog.String("key", "outputFormat"), slog.String("value", string(opts.OutputFormat)))
		return err
	}

	// === Numeric Range Validations ===
	if opts.MaxPromptAttempts < 0 {
		err := fmt.Errorf("%w: invalid value '%d' for key 'maxAttempts' (flag --max-attempts). Must be >= 0",
			converter.ErrConfigValidation, opts.MaxPromptAttempts)
		logger.Error(err.Error(), slog.String("key", "maxAttempts"), slog.Int("value", opts.MaxPromptAttempts))
		return err
	}

	// === Locale Derivation ===
	opts.LocaleTag = language.Und
	if opts.Locale != "" {
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			err = fmt.Errorf("%w: invalid BCP-47 locale '%s' for key 'locale' (flag --locale): %w",
				converter.ErrConfigValidation, opts.Locale, err)
			logger.Error(err.Error(), slog.String("key", "locale"), slog.String("value", opts.Locale))
			return err
		}
		opts.LocaleTag = tag
		logger.Debug("Parsed locale", slog.String("tag", tag.String()))
	}

	// === Derive Effective TUI State ===
	// The prompt UI needs a real terminal on both ends, and is pointless when
	// verbose logging or machine-readable output is requested.
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if !interactive {
		opts.TuiEnabled = false
	}
	if noTui, _ := flags.GetBool("no-tui"); noTui {
		if opts.TuiEnabled {
			logger.Debug("TUI explicitly disabled via --no-tui flag")
		}
		opts.TuiEnabled = false
	}
	if opts.Verbose && opts.TuiEnabled {
		logger.Debug("Verbose mode enabled, TUI disabled")
		opts.TuiEnabled = false
	}
	if opts.OutputFormat == converter.OutputFormatJSON {
		opts.TuiEnabled = false
	}

	return nil
}

// --- END OF FINAL REVISED FILE internal/cli/config/config.go ---
