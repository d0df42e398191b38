package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintShowsDescriptionBeforeKey(t *testing.T) {
	out := Hint("↑/↓", "Scroll")
	assert.Less(t, strings.Index(out, "Scroll"), strings.Index(out, "↑/↓"))
}

func TestStatusBarWithoutWidthIsOneLine(t *testing.T) {
	out := StatusBar("saving", []string{Hint("q", "Quit")}, 0)
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "saving")
	assert.Contains(t, out, "Quit")
}

func TestStatusBarStartsWithRule(t *testing.T) {
	out := StatusBar("", []string{Hint("q", "Quit")}, 30)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], strings.Repeat("─", 30))
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 30)
	}
}

func TestWrapSegmentsPacksRows(t *testing.T) {
	rows := wrapSegments([]string{"1234", "abcd", "efghijklmnop", "x"}, 10)
	assert.Equal(t, []string{"1234  abcd", "efghijklmnop", "x"}, rows)
	assert.Empty(t, wrapSegments(nil, 10))
}
