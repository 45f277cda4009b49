// --- START OF FINAL REVISED FILE pkg/converter/prompt.go ---
package converter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter implements Prompter over a plain reader/writer pair, normally
// os.Stdin and os.Stdout. Each PromptLine call is one suspension point of a
// validation loop: write the prompt, block on the next line, return it
// trimmed. Cancellation is cooperative; the context is checked before each
// read, so a cancelled context ends the loop at the next prompt rather than
// interrupting a read already in progress.
type LinePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewLinePrompter returns a LinePrompter reading lines from r and writing
// prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), writer: w}
}

// PromptLine implements the Prompter interface. EOF with no pending text maps
// to ErrInputClosed; a final line without a trailing newline is still
// delivered. An empty line is returned as "" for the caller's validity check
// to reject, never as an error.
func (p *LinePrompter) PromptLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// --- END OF FINAL REVISED FILE pkg/converter/prompt.go ---
