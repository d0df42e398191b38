package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderColor       = lipgloss.Color("#273540")
	activeBorderColor = lipgloss.Color("#7f57b4")

	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	paneBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	paneBorderActive = paneBorder.
				BorderForeground(activeBorderColor)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(1, 2)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))
)

// boxWidth sizes free-standing boxes (dialogs, toasts) to ~70% of the
// terminal, between 40 and 80 columns, border included.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

// safeBoxWidth is the lipgloss Width for a bordered box that must fit in
// width columns. lipgloss Width excludes the border.
func safeBoxWidth(width int) int {
	return styleWidth(boxWidth(width), width)
}

func styleWidth(want, width int) int {
	if width > 0 && want > width {
		want = width
	}
	if want <= 0 {
		return 0
	}
	inner := want - boxBorder.GetHorizontalBorderSize()
	if inner < 1 {
		inner = 1
	}
	return inner
}

// BoxContentWidth returns the text width inside a box, padding excluded.
func BoxContentWidth(width int) int {
	inner := safeBoxWidth(width) - boxBorder.GetHorizontalPadding()
	if inner < 0 {
		return 0
	}
	return inner
}

// ClampTextWidth truncates text to the given visual width.
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ClampTextWidthEllipsis truncates text and marks the cut with "…".
func ClampTextWidthEllipsis(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title) + "\n\n"
	}
	body := errorBodyStyle.Render(message)
	return errorBorder.Width(safeBoxWidth(width)).Render(header + body)
}

// TitledBox renders a box with a header title.
func TitledBox(title, content string, width int) string {
	return titled(title, boxBorder.Width(safeBoxWidth(width)).Render(content), borderColor)
}

// Pane renders a titled box exactly width columns wide and height rows tall
// (height <= 0 leaves it to the content). Active panes get the accent border.
func Pane(title, content string, width, height int, active bool) string {
	style, color := paneBorder, borderColor
	if active {
		style, color = paneBorderActive, activeBorderColor
	}
	// Width covers padding but not the border.
	inner := width - style.GetBorderLeftSize() - style.GetBorderRightSize()
	if inner < 1 {
		inner = 1
	}
	style = style.Width(inner)
	if height > 0 {
		rows := height - style.GetBorderTopSize() - style.GetBorderBottomSize()
		if rows < 1 {
			rows = 1
		}
		if lines := strings.Split(content, "\n"); len(lines) > rows {
			content = strings.Join(lines[:rows], "\n")
		}
		style = style.Height(rows).MaxHeight(height)
	}
	return titled(title, style.Render(content), color)
}

// PaneContentWidth is the text width available inside a Pane of width.
func PaneContentWidth(width int) int {
	inner := width - paneBorder.GetHorizontalFrameSize()
	if inner < 1 {
		return 1
	}
	return inner
}

// PaneContentHeight is the row count available inside a Pane of height.
func PaneContentHeight(height int) int {
	inner := height - paneBorder.GetVerticalFrameSize()
	if inner < 1 {
		return 1
	}
	return inner
}

// titled writes " [ title ] " into the top border line of boxed.
func titled(title, boxed string, color lipgloss.Color) string {
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" [ %s ] ", title)
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	titleWidth := lipgloss.Width(titleText)
	left := (middleLen - titleWidth) / 2
	right := middleLen - titleWidth - left
	if right < 0 {
		right = 0
	}

	borderStyle := lipgloss.NewStyle().Foreground(color)
	line := borderStyle.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxHeaderStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)

	lines[0] = line
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	b.Grow(max)
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// Indent adds left padding to every line of a multi-line string.
func Indent(s string, spaces int) string {
	pad := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
