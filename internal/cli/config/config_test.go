package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Izocel/ConvertisseurTemperature/pkg/converter"
)

// newTestFlags mirrors the flag registrations in cmd/temp-converter/root.go.
func newTestFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("temp-converter", pflag.ContinueOnError)
	fs.StringP("temperature", "t", "", "")
	fs.StringP("unit", "u", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.Bool("no-tui", false, "")
	fs.String("output-format", string(converter.DefaultOutputFormat), "")
	fs.String("locale", converter.DefaultLocale, "")
	fs.Int("max-attempts", converter.DefaultMaxPromptAttempts, "")
	return fs
}

// TestLoadAndValidateDefaults verifies the option values with no flags set.
func TestLoadAndValidateDefaults(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse(nil))

	opts, logger, err := LoadAndValidate("test-version", false, fs)
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Equal(t, "test-version", opts.AppVersion)
	assert.Empty(t, opts.Temperature)
	assert.Empty(t, opts.Unit)
	assert.Equal(t, converter.OutputFormatText, opts.OutputFormat)
	assert.Equal(t, converter.DefaultMaxPromptAttempts, opts.MaxPromptAttempts)
	assert.Equal(t, language.Und, opts.LocaleTag)
	assert.False(t, opts.Verbose)
	assert.NotNil(t, opts.Logger, "Logger handler must be injected into Options")
	assert.False(t, opts.TuiEnabled, "TUI must be off when stdin/stdout are not terminals")
}

// TestLoadAndValidateFlagValues verifies flag propagation into Options.
func TestLoadAndValidateFlagValues(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{
		"-t", "21,5", "-u", "f",
		"--output-format", "json",
		"--locale", "fr",
		"--max-attempts", "3",
	}))

	opts, _, err := LoadAndValidate("dev", false, fs)
	require.NoError(t, err)

	assert.Equal(t, "21,5", opts.Temperature)
	assert.Equal(t, "f", opts.Unit, "Candidate unit is kept raw; normalization happens in the library")
	assert.Equal(t, converter.OutputFormatJSON, opts.OutputFormat)
	assert.Equal(t, language.French, opts.LocaleTag)
	assert.Equal(t, 3, opts.MaxPromptAttempts)
}

// TestLoadAndValidateInvalidUnitIsNotFatal covers the contract that -u Q must
// lead to prompting, not to a configuration error.
func TestLoadAndValidateInvalidUnitIsNotFatal(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"-u", "Q"}))

	opts, _, err := LoadAndValidate("dev", false, fs)
	require.NoError(t, err, "An invalid unit candidate is resolved by the prompt loop, never rejected here")
	assert.Equal(t, "Q", opts.Unit)
}

// TestLoadAndValidateInvalidOutputFormat verifies the enum check.
func TestLoadAndValidateInvalidOutputFormat(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"--output-format", "xml"}))

	_, _, err := LoadAndValidate("dev", false, fs)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrConfigValidation)
}

// TestLoadAndValidateNegativeMaxAttempts verifies the numeric range check.
func TestLoadAndValidateNegativeMaxAttempts(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"--max-attempts", "-1"}))

	_, _, err := LoadAndValidate("dev", false, fs)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrConfigValidation)
}

// TestLoadAndValidateInvalidLocale verifies BCP-47 validation of --locale.
func TestLoadAndValidateInvalidLocale(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"--locale", "!!"}))

	_, _, err := LoadAndValidate("dev", false, fs)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrConfigValidation)
}

// TestLoadAndValidateEnvOverride verifies that environment variables supply
// values when the corresponding flag is unset.
func TestLoadAndValidateEnvOverride(t *testing.T) {
	t.Setenv("TEMPCONVERTER_UNIT", "F")
	t.Setenv("TEMPCONVERTER_OUTPUT_FORMAT", "json")

	fs := newTestFlags()
	require.NoError(t, fs.Parse(nil))

	opts, _, err := LoadAndValidate("dev", false, fs)
	require.NoError(t, err)
	assert.Equal(t, "F", opts.Unit)
	assert.Equal(t, converter.OutputFormatJSON, opts.OutputFormat)
}

// TestLoadAndValidateFlagBeatsEnv verifies precedence: flags over environment.
func TestLoadAndValidateFlagBeatsEnv(t *testing.T) {
	t.Setenv("TEMPCONVERTER_UNIT", "F")

	fs := newTestFlags()
	require.NoError(t, fs.Parse([]string{"-u", "c"}))

	opts, _, err := LoadAndValidate("dev", false, fs)
	require.NoError(t, err)
	assert.Equal(t, "c", opts.Unit)
}

// TestLoadAndValidateVerbose verifies that the persistent verbose value wins.
func TestLoadAndValidateVerbose(t *testing.T) {
	fs := newTestFlags()
	require.NoError(t, fs.Parse(nil))

	opts, _, err := LoadAndValidate("dev", true, fs)
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.False(t, opts.TuiEnabled, "Verbose mode must disable the prompt UI")
}
