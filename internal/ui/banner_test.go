package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/wordroom/internal/ui/components"
)

func TestSplitLinesSplitsOnNewlines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitLines("a\nb\nc"))
}

func TestRenderBannerIncludesSubtitle(t *testing.T) {
	out := RenderBanner()
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Words and notes")
	assert.Contains(t, clean, "┏━┓")
	assert.Len(t, strings.Split(clean, "\n"), 4)
}
