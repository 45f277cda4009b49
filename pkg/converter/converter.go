// --- START OF FINAL REVISED FILE pkg/converter/converter.go ---
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Convert applies the linear formula between Celsius and Fahrenheit. The
// scale names the unit of the *source* value: Celsius input converts to
// Fahrenheit with v*1.8+32, Fahrenheit input converts to Celsius with
// (v-32)/1.8. The mapping is pinned by the round-trip and exact-value tests.
//
// Any other scale is an invariant violation: the validation loop upstream
// guarantees a valid scale, so ErrUnknownScale is an internal error, never a
// user-facing one.
func Convert(value float64, from Scale) (float64, error) {
	switch from {
	case ScaleCelsius:
		return value*1.8 + 32, nil
	case ScaleFahrenheit:
		return (value - 32) / 1.8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScale, from)
	}
}

// Complement returns the scale a conversion targets: F for C and C for
// anything else (which, after validation, is only ever F).
func Complement(s Scale) Scale {
	if s == ScaleFahrenheit {
		return ScaleCelsius
	}
	return ScaleFahrenheit
}

// Resolve is the library entry point. It turns the candidate inputs carried
// by opts into a valid (value, scale) pair, prompting through opts.Prompter
// for any field that is unset or invalid, then converts and returns the
// Conversion. The validation loops re-prompt until a valid value is supplied;
// they end early only on context cancellation, on ErrInputClosed when the
// input source is exhausted, or on ErrTooManyAttempts when a non-zero
// MaxPromptAttempts cap is configured.
func Resolve(ctx context.Context, opts Options) (Conversion, error) {
	logger := resolveLogger(opts)
	prompter := opts.Prompter
	if prompter == nil {
		prompter = NewLinePrompter(os.Stdin, os.Stdout)
		logger.Debug("Prompter not provided, using default (LinePrompter over stdin/stdout).")
	}

	value, err := resolveTemperature(ctx, prompter, opts, logger)
	if err != nil {
		return Conversion{}, err
	}
	scale, err := resolveScale(ctx, prompter, opts, logger)
	if err != nil {
		return Conversion{}, err
	}

	output, err := Convert(value, scale)
	if err != nil {
		// Unreachable after validation; surfaced as an internal error.
		logger.Error("Invariant violation in conversion", slog.Any("error", err))
		return Conversion{}, err
	}

	result := Conversion{
		Input:       value,
		InputScale:  scale,
		Output:      output,
		OutputScale: Complement(scale),
	}
	logger.Debug("Conversion resolved",
		slog.Float64("input", result.Input),
		slog.String("inputScale", string(result.InputScale)),
		slog.Float64("output", result.Output),
		slog.String("outputScale", string(result.OutputScale)),
	)
	return result, nil
}

// resolveTemperature obtains a valid numeric value: the flag candidate when it
// parses, otherwise the blocking prompt loop.
func resolveTemperature(ctx context.Context, prompter Prompter, opts Options, logger *slog.Logger) (float64, error) {
	if strings.TrimSpace(opts.Temperature) != "" {
		v, err := ParseTemperature(opts.Temperature)
		if err == nil {
			return v, nil
		}
		logger.Debug("Temperature flag value is not numeric, prompting",
			slog.String("value", opts.Temperature))
	}

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if opts.MaxPromptAttempts > 0 && attempts >= opts.MaxPromptAttempts {
			return 0, fmt.Errorf("%w: no numeric value after %d attempts", ErrTooManyAttempts, attempts)
		}
		attempts++

		line, err := prompter.PromptLine(ctx, PromptTemperature)
		if err != nil {
			return 0, err
		}
		v, perr := ParseTemperature(line)
		if perr == nil {
			return v, nil
		}
		logger.Debug("Rejected temperature input", slog.String("value", line))
	}
}

// resolveScale obtains a valid scale symbol: the flag candidate when it
// validates, otherwise the blocking prompt loop. An empty line is invalid
// input like any other and re-prompts; it must never fault.
func resolveScale(ctx context.Context, prompter Prompter, opts Options, logger *slog.Logger) (Scale, error) {
	if s, err := ParseScale(opts.Unit); err == nil {
		return s, nil
	} else if strings.TrimSpace(opts.Unit) != "" {
		logger.Debug("Unit flag value is not a valid scale, prompting",
			slog.String("value", opts.Unit))
	}

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if opts.MaxPromptAttempts > 0 && attempts >= opts.MaxPromptAttempts {
			return "", fmt.Errorf("%w: no valid scale after %d attempts", ErrTooManyAttempts, attempts)
		}
		attempts++

		line, err := prompter.PromptLine(ctx, PromptUnit)
		if err != nil {
			return "", err
		}
		s, perr := ParseScale(line)
		if perr == nil {
			return s, nil
		}
		logger.Debug("Rejected scale input", slog.String("value", line))
	}
}

// resolveLogger builds the library logger from the injected handler, falling
// back to a text handler on stderr so Debug calls never hit a nil handler.
func resolveLogger(opts Options) *slog.Logger {
	if opts.Logger != nil {
		return slog.New(opts.Logger)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// --- END OF FINAL REVISED FILE pkg/converter/converter.go ---
