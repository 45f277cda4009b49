package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Izocel/ConvertisseurTemperature/internal/cli/ui"
	"github.com/Izocel/ConvertisseurTemperature/pkg/converter"
)

// Run orchestrates the main application logic after configuration loading.
// It receives the application context, validated options, the logger, and the
// streams to prompt on and print to (os.Stdin/os.Stdout in production,
// buffers in tests).
func Run(ctx context.Context, opts converter.Options, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	if opts.Prompter == nil {
		if opts.TuiEnabled {
			opts.Prompter = ui.NewPrompt(stdin, stdout, opts.AppVersion)
			logger.Debug("Using terminal UI prompter")
		} else {
			opts.Prompter = converter.NewLinePrompter(stdin, stdout)
			logger.Debug("Using plain line prompter")
		}
	}

	result, err := converter.Resolve(ctx, opts)
	if err != nil {
		switch {
		case errors.Is(err, converter.ErrInputClosed):
			logger.Error("Input ended before a valid value was supplied", slog.Any("error", err))
		case errors.Is(err, converter.ErrTooManyAttempts):
			logger.Error("Prompt attempt limit reached", slog.Any("error", err))
		case errors.Is(err, context.Canceled):
			logger.Debug("Run cancelled")
		default:
			logger.Error("Conversion failed", slog.Any("error", err))
		}
		return err
	}

	switch opts.OutputFormat {
	case converter.OutputFormatJSON:
		rendered, err := converter.RenderJSON(result)
		if err != nil {
			logger.Error("Failed to render JSON result", slog.Any("error", err))
			return err
		}
		fmt.Fprintln(stdout, rendered)
	default:
		fmt.Fprintln(stdout, converter.Format(result, opts.LocaleTag))
	}

	logger.Debug("Conversion complete",
		slog.Float64("input", result.Input),
		slog.String("inputScale", string(result.InputScale)),
		slog.Float64("output", result.Output),
		slog.String("outputScale", string(result.OutputScale)),
	)

	return nil
}
