// --- START OF FINAL REVISED FILE pkg/converter/errors.go ---
package converter

import "errors"

// --- Exported Error Variables ---
// These errors represent specific categories of issues that might be returned
// by Resolve or encountered while validating options. Library users can check
// against these using errors.Is.

var (
	// ErrConfigValidation indicates that the provided Options failed validation
	// checks (e.g., invalid output format, negative attempt cap, bad locale).
	// This is returned directly as a fatal error before any prompting starts.
	ErrConfigValidation = errors.New("invalid configuration options provided")

	// ErrInvalidTemperature indicates that a candidate string could not be
	// parsed as a floating-point temperature value. Inside the validation loop
	// this is recovered by re-prompting and never surfaces to the caller.
	ErrInvalidTemperature = errors.New("temperature value is not a number")

	// ErrInvalidScale indicates that a candidate string is not one of the
	// supported scale symbols ("C" or "F", case-insensitive). Inside the
	// validation loop this is recovered by re-prompting.
	ErrInvalidScale = errors.New("invalid temperature scale")

	// ErrInputClosed indicates that standard input reached EOF (or the prompt
	// UI was cancelled) before a valid value was supplied. Re-prompting a
	// closed stream can never make progress, so the loop ends with this error
	// instead of spinning.
	ErrInputClosed = errors.New("input closed before a valid value was supplied")

	// ErrTooManyAttempts indicates that a validation loop exhausted the
	// configured MaxPromptAttempts without obtaining a valid value. Only
	// possible when the cap is non-zero; the default keeps the loop unbounded.
	ErrTooManyAttempts = errors.New("prompt attempt limit reached")

	// ErrUnknownScale indicates that a scale other than "C" or "F" reached the
	// conversion step. The validation loop guarantees a valid scale, so this
	// is an internal invariant violation, never a user-facing condition.
	ErrUnknownScale = errors.New("internal error: unknown temperature scale at conversion time")
)

// --- END OF FINAL REVISED FILE pkg/converter/errors.go ---
