package ui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. Building one with
	// WithAutoStyle can block on terminal queries.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders md for the given wrap width without document
// margins. Render failures fall back to the raw text.
func renderMarkdown(md, theme string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	styleName := markdownStyle(theme)
	key := styleName + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		cfg := markdownStyleConfig(styleName)
		zero := uint(0)
		cfg.Document.Margin = &zero
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if styleName == "light" {
		cfg = styles.LightStyleConfig
	}
	applyWordroomPalette(&cfg, styleName)
	return cfg
}

// markdownStyle resolves the configured theme. Only "auto" looks at the
// terminal; anything unknown renders dark.
func markdownStyle(theme string) string {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		return "light"
	case "auto":
	default:
		return "dark"
	}
	// COLORFGBG is often "fg;bg" (e.g. "15;0" => dark bg).
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			if bg >= 7 {
				return "light"
			}
			return "dark"
		}
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func applyWordroomPalette(cfg *ansi.StyleConfig, styleName string) {
	text := string(ColorText)
	if styleName == "light" {
		text = string(ColorBackground)
	}
	heading := string(ColorPrimary)

	cfg.Heading.Color = &heading
	cfg.H1.Color = &heading
	cfg.H1.BackgroundColor = nil
	cfg.H1.Prefix = ""
	cfg.H1.Suffix = ""
	cfg.H2.Color = &heading
	cfg.H3.Color = &heading
	cfg.Text.Color = &text

	// Emphasis carries the part of speech; keep it in the text color.
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	notFaint := false
	cfg.BlockQuote.Faint = &notFaint
}
