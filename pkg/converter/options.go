// --- START OF FINAL REVISED FILE pkg/converter/options.go ---
package converter

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"
)

// Prompter obtains one line of user input for a validation loop. PromptLine
// writes the prompt, blocks until a line is available, and returns it with
// surrounding whitespace trimmed. Implementations must return ErrInputClosed
// (or an error wrapping it) when the input source can no longer produce a
// line, and the context error when the context is cancelled.
type Prompter interface {
	PromptLine(ctx context.Context, prompt string) (string, error)
}

// Options carries the full, validated configuration for a single conversion
// run. It is populated by the CLI configuration layer from defaults,
// environment variables, and flags, and then passed to Resolve. There is no
// ambient shared state; everything the library needs travels in this struct.
type Options struct {
	// Temperature is the raw candidate value from the --temperature flag.
	// Empty or unparsable values trigger the interactive validation loop.
	Temperature string `mapstructure:"temperature"`

	// Unit is the raw candidate scale symbol from the --unit flag.
	// Empty or invalid values trigger the interactive validation loop.
	Unit string `mapstructure:"unit"`

	// OutputFormat selects how the result is rendered ("text" or "json").
	OutputFormat OutputFormat `mapstructure:"outputFormat"`

	// Locale is the BCP-47 tag for number formatting ("" for plain output).
	Locale string `mapstructure:"locale"`

	// MaxPromptAttempts caps each validation loop. 0 means unbounded;
	// non-interactive callers (pipes, tests) can set a cap so a stream of
	// invalid lines fails instead of looping forever.
	MaxPromptAttempts int `mapstructure:"maxAttempts"`

	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose"`

	// TuiEnabled selects the terminal UI prompter instead of plain stdin
	// prompts. Derived by the CLI layer from TTY detection and flags.
	TuiEnabled bool `mapstructure:"tuiEnabled"`

	// AppVersion is the application version string, injected by the CLI layer.
	AppVersion string `mapstructure:"-"`

	// LocaleTag is the parsed form of Locale, derived during validation.
	// language.Und when Locale is empty.
	LocaleTag language.Tag `mapstructure:"-"`

	// Logger is the slog handler used by the library. The CLI layer injects
	// the handler backing its own logger so both sides log consistently.
	Logger slog.Handler `mapstructure:"-"`

	// Prompter supplies user input for the validation loops. When nil, Resolve
	// falls back to a line prompter over os.Stdin/os.Stdout.
	Prompter Prompter `mapstructure:"-"`
}

// --- END OF FINAL REVISED FILE pkg/converter/options.go ---
