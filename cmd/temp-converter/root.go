// --- START OF FINAL REVISED FILE cmd/temp-converter/root.go ---
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Izocel/ConvertisseurTemperature/internal/cli"
	"github.com/Izocel/ConvertisseurTemperature/internal/cli/config"
	"github.com/Izocel/ConvertisseurTemperature/pkg/converter"
)

var (
	// These are set during build time using -ldflags
	version = "dev"     // Default version
	commit  = "none"    // Default commit hash
	date    = "unknown" // Default build date
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// newRootCmd constructs the root command with all flags registered. Tests use
// this to get a fresh command instance with isolated flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "temp-converter [-t <value>] [-u <C|F>]",
		Short: "Converts a temperature between Celsius and Fahrenheit.",
		Long: `temp-converter converts a single temperature value between Celsius
and Fahrenheit.

The value and unit come from the -t and -u flags. Any input that is missing
or invalid is requested interactively instead: the tool re-prompts on
standard input until a valid value is supplied (or, with --max-attempts set,
until the retry cap is reached). A decimal comma is accepted alongside the
decimal point.

When attached to a terminal the prompts use a small interactive UI; piped
input falls back to plain prompts. The result is printed to standard output
as text or JSON.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.NoArgs, // Inputs arrive via flags or prompts, not positional args
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create a context that listens for interrupt signals so a blocked
			// prompt loop can be cancelled.
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			verbose, _ := cmd.Flags().GetBool("verbose")

			// Load configuration (delegated). Candidate values for -t/-u are
			// never rejected here; invalid candidates fall through to the
			// interactive validation loops.
			opts, logger, err := config.LoadAndValidate(version, verbose, cmd.Flags())
			if err != nil {
				// config.LoadAndValidate already logged the specific error.
				// Return it so cobra prints it and exits non-zero.
				return err
			}

			// Execute the main application logic (delegated).
			return cli.Run(ctx, opts, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	// Core input flags. Both are optional: a missing or invalid value is
	// resolved by the interactive validation loop.
	cmd.Flags().StringP("temperature", "t", "", "Source temperature value (prompts when omitted or not a number)")
	cmd.Flags().StringP("unit", "u", "", `Source temperature unit, "C" or "F" (prompts when omitted or invalid)`)

	// Behavior flags.
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose (debug) logging output (disables the prompt UI)")
	cmd.Flags().Bool("no-tui", false, "Disable the interactive prompt UI even when attached to a terminal")
	cmd.Flags().String("output-format", string(converter.DefaultOutputFormat), `Result format ("text", "json")`)
	cmd.Flags().String("locale", converter.DefaultLocale, `BCP-47 locale for number formatting (e.g. "fr"); empty for plain output`)
	cmd.Flags().Int("max-attempts", converter.DefaultMaxPromptAttempts, "Maximum prompt retries per field (0 for unbounded)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. An unrecognized flag or a failed run makes the process exit
// non-zero; cobra has already printed the error (and usage, for flag errors)
// to standard error.
func Execute() {
	rootCmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- END OF FINAL REVISED FILE cmd/temp-converter/root.go ---
