package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Izocel/ConvertisseurTemperature/pkg/converter"
)

// --- Prompter Implementation ---

// Prompt implements converter.Prompter with a small terminal UI: each
// PromptLine call runs one bubbletea program showing the question and a text
// input field. The validation loop stays in the library; on an invalid
// submission the library simply calls PromptLine again.
type Prompt struct {
	in      io.Reader
	out     io.Writer
	version string
}

// NewPrompt returns a terminal UI prompter reading key events from in and
// rendering to out.
func NewPrompt(in io.Reader, out io.Writer, version string) *Prompt {
	return &Prompt{in: in, out: out, version: version}
}

// PromptLine implements the converter.Prompter interface. Enter submits the
// current field value; Esc or Ctrl+C aborts, which maps to
// converter.ErrInputClosed so the caller's loop ends cleanly instead of
// spinning or faulting.
func (p *Prompt) PromptLine(ctx context.Context, prompt string) (string, error) {
	m := newModel(prompt, p.version)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.in != nil {
		progOpts = append(progOpts, tea.WithInput(p.in))
	}
	if p.out != nil {
		progOpts = append(progOpts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", converter.ErrInputClosed, err)
	}

	fm, ok := final.(*Model)
	if !ok || fm.aborted {
		return "", converter.ErrInputClosed
	}
	return strings.TrimSpace(fm.input.Value()), nil
}

// --- Model Struct ---

// Model represents the state of one prompt screen: the question being asked,
// the text input component, and the submit/abort outcome.
type Model struct {
	// prompt is the question rendered above the input field.
	prompt string
	// version is shown in the header.
	version string
	// input is the bubbletea text input component.
	input textinput.Model
	// width is the current terminal width, updated on WindowSizeMsg.
	width int
	// submitted is set when the user confirms the current value with Enter.
	submitted bool
	// aborted is set when the user cancels with Esc or Ctrl+C.
	aborted bool
}

// newModel creates the initial model for a single prompt screen.
func newModel(prompt, version string) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	return &Model{
		prompt:  prompt,
		version: version,
		input:   ti,
	}
}

// --- Bubble Tea Interface Implementations ---

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key events and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the header, the question, the input field, and the key help.
func (m *Model) View() string {
	if m.submitted || m.aborted {
		// Clear the prompt screen on exit; the result line is printed by the
		// caller on plain stdout.
		return ""
	}

	header := HeaderStyle.Render(fmt.Sprintf("temp-converter %s", m.version))
	question := QuestionStyle.Render(m.prompt)
	help := HelpStyle.Render("enter: submit · esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		question,
		m.input.View(),
		"",
		help,
	)
}

// Value returns the text currently held by the input field.
func (m *Model) Value() string {
	return m.input.Value()
}

// --- Styles ---

const (
	ColorHeaderFg = lipgloss.Color("252") // Light Gray
	ColorHeaderBg = lipgloss.Color("62")  // Purple
	ColorQuestion = lipgloss.Color("250") // Off-white
	ColorHelp     = lipgloss.Color("244") // Dim gray
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeaderFg).
			Background(ColorHeaderBg).
			Padding(0, 1)

	QuestionStyle = lipgloss.NewStyle().
			Foreground(ColorQuestion)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorHelp)
)
