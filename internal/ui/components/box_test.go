package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 80, boxWidth(200))
	assert.Equal(t, 70, boxWidth(100))
}

func TestBoxNarrowTerminalClampsWidth(t *testing.T) {
	for _, out := range []string{
		TitledBox("Help", "line", 20),
		ErrorBox("Error", "save vocabulary: disk full", 20),
	} {
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 20)
		}
	}
}

func TestBoxUsesFullComputedWidth(t *testing.T) {
	out := TitledBox("Info", "Notes saved.", 100)
	assert.Equal(t, 70, lipgloss.Width(strings.Split(out, "\n")[0]))
	assert.Equal(t, 64, BoxContentWidth(100))
	assert.Equal(t, 14, BoxContentWidth(20))
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox("My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, TitledBox("", "Content", 80), "Content")
}

func TestErrorBoxIncludesMessage(t *testing.T) {
	out := ErrorBox("Error", "Something broke", 80)
	assert.Contains(t, out, "Something broke")
}

func TestPaneHasExactSize(t *testing.T) {
	for _, active := range []bool{false, true} {
		out := Pane("Words", "apple\nbanana", 30, 8, active)
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 8)
		for _, line := range lines {
			assert.Equal(t, 30, lipgloss.Width(line))
		}
		assert.Contains(t, SanitizeText(out), "[ Words ]")
	}
}

func TestPaneTruncatesTallContent(t *testing.T) {
	out := Pane("Words", strings.Repeat("row\n", 40), 20, 6, false)
	assert.Len(t, strings.Split(out, "\n"), 6)
}

func TestPaneContentSize(t *testing.T) {
	assert.Equal(t, 26, PaneContentWidth(30))
	assert.Equal(t, 6, PaneContentHeight(8))
	assert.Equal(t, 1, PaneContentWidth(2))
}

func TestClampTextWidthEllipsis(t *testing.T) {
	assert.Equal(t, "short", ClampTextWidthEllipsis("short", 10))
	assert.Equal(t, "seren…", ClampTextWidthEllipsis("serendipity", 6))
	assert.Equal(t, "…", ClampTextWidthEllipsis("serendipity", 1))
	assert.Equal(t, "ser", ClampTextWidth("serendipity", 3))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "你", truncateRunes("你好", 1))
}

func TestIndentPreservesLineCountAndAddsPadding(t *testing.T) {
	lines := strings.Split(Indent("a\nb\nc", 2), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "))
	}
}
