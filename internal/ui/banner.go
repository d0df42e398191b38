package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
╻ ╻┏━┓┏━┓╺┳┓┏━┓┏━┓┏━┓┏┳┓
┃╻┃┃ ┃┣┳┛ ┃┃┣┳┛┃ ┃┃ ┃┃┃┃
┗┻┛┗━┛╹┗╸╺┻┛╹┗╸┗━┛┗━┛╹ ╹`

const bannerSubtitle = "Words and notes • Terminal edition"

// bannerMinHeight is the terminal height below which the banner is dropped.
const bannerMinHeight = 24

// RenderBanner returns the styled title block.
func RenderBanner() string {
	lines := splitLines(bannerArt)

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	blockWidth := maxWidth
	if w := lipgloss.Width(bannerSubtitle); w > blockWidth {
		blockWidth = w
	}

	artStyle := BannerStyle.Width(blockWidth).Align(lipgloss.Center)
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(artStyle.Render(line))
		b.WriteString("\n")
	}

	subtitle := MutedStyle.Width(blockWidth).Align(lipgloss.Center).Render(bannerSubtitle)
	return b.String() + subtitle
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
