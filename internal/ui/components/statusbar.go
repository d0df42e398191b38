package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1b1a17")).
			Background(lipgloss.Color("#9a9385")).
			Bold(true).
			Padding(0, 1)
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a9385"))
	hintGap     = "  "
	statusStyle = lipgloss.NewStyle().
			PaddingLeft(1)
	statusRule = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3a362f"))
)

// StatusBar renders a rule followed by the key hints, centered and wrapped
// onto as many rows as width needs. A non-empty status is shown before the
// hints on the first row.
func StatusBar(status string, hints []string, width int) string {
	segments := make([]string, 0, len(hints)+1)
	if status != "" {
		segments = append(segments, status)
	}
	segments = append(segments, hints...)
	if width <= 0 {
		return statusStyle.Render(strings.Join(segments, hintGap))
	}

	inner := width - statusStyle.GetHorizontalPadding()
	if inner < 1 {
		inner = 1
	}
	rows := wrapSegments(segments, inner)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, statusRule.Render(strings.Repeat("─", width)))
	for _, row := range rows {
		lines = append(lines, statusStyle.Width(width).Align(lipgloss.Center).Render(row))
	}
	return strings.Join(lines, "\n")
}

// Hint formats a single key hint like "Scroll ↑/↓".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + hintKeyStyle.Render(key)
}

// wrapSegments packs segments into rows no wider than width. A segment wider
// than width gets a row of its own.
func wrapSegments(segments []string, width int) []string {
	var rows []string
	row, rowWidth := "", 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if rowWidth > 0 && rowWidth+len(hintGap)+w > width {
			rows = append(rows, row)
			row, rowWidth = "", 0
		}
		if rowWidth > 0 {
			row += hintGap
			rowWidth += len(hintGap)
		}
		row += seg
		rowWidth += w
	}
	if rowWidth > 0 {
		rows = append(rows, row)
	}
	return rows
}
