package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	detailWidthPercent = 58
	detailMinWidth     = 40
	detailMaxWidth     = 96
	listMinWidth       = 24
)

// splitWidths divides the terminal between the list and the detail pane in
// regular layout.
func splitWidths(total int) (list, detail int) {
	if total <= 0 {
		return listMinWidth, detailMinWidth
	}
	detail = total * detailWidthPercent / 100
	if detail < detailMinWidth {
		detail = detailMinWidth
	}
	if detail > detailMaxWidth {
		detail = detailMaxWidth
	}
	list = total - detail
	if list < listMinWidth {
		list = listMinWidth
		detail = total - list
	}
	if detail < 1 {
		detail = 1
	}
	return list, detail
}

// wrapText breaks text into lines no wider than width, on spaces where
// possible. Existing line breaks are kept.
func wrapText(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		if lipgloss.Width(para) <= width {
			out = append(out, para)
			continue
		}
		var line strings.Builder
		lineW := 0
		for _, word := range strings.Fields(para) {
			ww := lipgloss.Width(word)
			if lineW > 0 && lineW+1+ww > width {
				out = append(out, line.String())
				line.Reset()
				lineW = 0
			}
			for ww > width {
				// A single word wider than the pane is hard-split.
				head, tail := splitAtWidth(word, width-lineW)
				line.WriteString(head)
				out = append(out, line.String())
				line.Reset()
				lineW = 0
				word = tail
				ww = lipgloss.Width(word)
			}
			if lineW > 0 {
				line.WriteByte(' ')
				lineW++
			}
			line.WriteString(word)
			lineW += ww
		}
		out = append(out, line.String())
	}
	return out
}

func splitAtWidth(s string, width int) (string, string) {
	if width < 1 {
		width = 1
	}
	w := 0
	for i, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}

// centerBlockUniform shifts every line of s by the same amount so the widest
// line is centered in width.
func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
