package ui

import "github.com/charmbracelet/lipgloss"

// --- Palette ---

var (
	ColorPrimary    = lipgloss.Color("#c9a26b") // brass
	ColorSecondary  = lipgloss.Color("#6f8f86") // sage
	ColorAccent     = lipgloss.Color("#d07a5c") // clay
	ColorBackground = lipgloss.Color("#1b1a17") // ink
	ColorText       = lipgloss.Color("#e4ddcf") // paper
	ColorMuted      = lipgloss.Color("#9a9385") // faded
	ColorSuccess    = lipgloss.Color("#7fa36b")
	ColorWarning    = lipgloss.Color("#d9a441")
	ColorError      = lipgloss.Color("#c0605a")
)

// --- Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	// SectionStyle labels the Search, Notes and History groups of the list.
	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	// OpenStyle marks the row of the word shown in the detail pane.
	OpenStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorSecondary).
			Bold(true)

	MarkStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ModeActiveStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	ModeInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)
)
