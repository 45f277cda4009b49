package ui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Izocel/ConvertisseurTemperature/pkg/converter"
)

// typeRunes feeds a string into the model as key events.
func typeRunes(m *Model, s string) *Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(*Model)
	}
	return m
}

// TestModelView verifies the prompt screen contents.
func TestModelView(t *testing.T) {
	m := newModel(converter.PromptUnit, "test")
	view := m.View()

	assert.Contains(t, view, converter.PromptUnit)
	assert.Contains(t, view, "temp-converter test")
	assert.Contains(t, view, "enter: submit")
}

// TestModelSubmit verifies that typed input is held and Enter quits with the
// submitted flag set.
func TestModelSubmit(t *testing.T) {
	m := newModel(converter.PromptTemperature, "test")
	m = typeRunes(m, "21,5")
	assert.Equal(t, "21,5", m.Value())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	fm := updated.(*Model)
	assert.True(t, fm.submitted)
	assert.False(t, fm.aborted)
	require.NotNil(t, cmd, "Enter must produce a quit command")
	assert.Empty(t, fm.View(), "The prompt screen clears once submitted")
}

// TestModelAbort verifies Esc and Ctrl+C set the aborted flag.
func TestModelAbort(t *testing.T) {
	for _, keyType := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newModel(converter.PromptUnit, "test")
		updated, cmd := m.Update(tea.KeyMsg{Type: keyType})
		fm := updated.(*Model)
		assert.True(t, fm.aborted, "Key %v should abort", keyType)
		require.NotNil(t, cmd)
	}
}

// TestPromptLine runs a full headless program: typed digits followed by a
// carriage return (Enter) must deliver the line.
func TestPromptLine(t *testing.T) {
	p := NewPrompt(strings.NewReader("100\r"), io.Discard, "test")
	line, err := p.PromptLine(context.Background(), converter.PromptTemperature)
	require.NoError(t, err)
	assert.Equal(t, "100", line)
}

// TestPromptLineAborted verifies the ErrInputClosed mapping for a cancelled
// prompt.
func TestPromptLineAborted(t *testing.T) {
	// Ctrl+C is a single control byte, immune to escape-sequence ambiguity.
	p := NewPrompt(strings.NewReader("\x03"), io.Discard, "test")
	_, err := p.PromptLine(context.Background(), converter.PromptUnit)
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrInputClosed)
}
