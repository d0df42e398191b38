package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Delete", "Delete 2 words?", 100)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Delete")
	assert.Contains(t, clean, "Delete 2 words?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
	assert.Equal(t, dialogWidth, lipgloss.Width(out))
}

func TestInputDialogIncludesTitleInputAndHints(t *testing.T) {
	out := InputDialog("Wordnik API key", "••••", 100)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Wordnik API key")
	assert.Contains(t, clean, "> ••••")
	assert.Contains(t, clean, "enter: submit | esc: cancel")
}

func TestDialogsFitNarrowTerminal(t *testing.T) {
	for _, out := range []string{
		ConfirmDialog("Delete", "Delete \"serendipity\" and its notes?", 30),
		InputDialog("Wordnik API key", "••••", 30),
	} {
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 30)
		}
	}
}
