package components

import (
	"github.com/charmbracelet/lipgloss"
)

const dialogWidth = 46

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#436b77"))
)

// ConfirmDialog renders a yes/no confirmation that fits in width columns.
func ConfirmDialog(title, message string, width int) string {
	header := dialogTitleStyle.Render(title)
	body := dialogBodyStyle.Render(message)
	hint := dialogBodyStyle.Render("\ny: confirm | n: cancel")
	return dialogStyle.Width(styleWidth(dialogWidth, width)).Render(header + "\n\n" + body + hint)
}

// InputDialog renders a prompt around an already rendered input field.
func InputDialog(title, field string, width int) string {
	header := dialogTitleStyle.Render(title)
	hint := dialogBodyStyle.Render("\nenter: submit | esc: cancel")
	return dialogStyle.Width(styleWidth(dialogWidth, width)).Render(header + "\n\n" + dialogFieldStyle.Render("> ") + field + hint)
}
