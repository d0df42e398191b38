package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/ui/components"
	"github.com/gravitrone/wordroom/internal/vocab"
)

// detailScreen is one open word.
type detailScreen struct {
	word        string
	def         *api.Definition
	suggestions []string
	loading     bool
	showNotes   bool
	body        viewport.Model
}

func (s *detailScreen) scroll(lines int) {
	if lines > 0 {
		s.body.LineDown(lines)
	} else if lines < 0 {
		s.body.LineUp(-lines)
	}
}

// detailPane implements coordinator.DetailView. The regular layout shows a
// single screen; the compact layout keeps a stack that the coordinator
// pushes to and pops from.
type detailPane struct {
	store *vocab.Store
	theme string
	// lookups is false when no definition provider is configured.
	lookups bool

	single *detailScreen
	stack  []*detailScreen
}

func newDetailPane(store *vocab.Store, theme string, lookups bool) *detailPane {
	return &detailPane{store: store, theme: theme, lookups: lookups}
}

func (d *detailPane) newScreen(word string) *detailScreen {
	return &detailScreen{
		word:      word,
		loading:   d.lookups,
		showNotes: d.store.Notes(word) != "",
		body:      viewport.New(0, 0),
	}
}

// --- coordinator.DetailView ---

// PushWord only happens in compact layout, where the regular screen is not
// shown; it is rebuilt by ShowWord when the layout widens again.
func (d *detailPane) PushWord(word string) {
	d.single = nil
	d.stack = append(d.stack, d.newScreen(word))
}

func (d *detailPane) PopWord() {
	if len(d.stack) > 0 {
		d.stack = d.stack[:len(d.stack)-1]
	}
}

func (d *detailPane) ShowWord(word string) {
	d.single = d.newScreen(word)
}

func (d *detailPane) ShowPlaceholder() {
	d.single = nil
}

func (d *detailPane) ShowDefinition(word string, def api.Definition, suggestions []string) {
	s := d.top()
	if s == nil || s.word != word {
		return
	}
	s.def = &def
	s.suggestions = suggestions
	s.loading = false
}

// --- State ---

// top is the screen currently in front: the top of the compact stack, or
// the single regular screen.
func (d *detailPane) top() *detailScreen {
	if n := len(d.stack); n > 0 {
		return d.stack[n-1]
	}
	return d.single
}

func (d *detailPane) depth() int {
	return len(d.stack)
}

func (d *detailPane) toggleNotes() {
	if s := d.top(); s != nil {
		s.showNotes = !s.showNotes
		s.body.GotoTop()
	}
}

func (d *detailPane) scroll(lines int) {
	if s := d.top(); s != nil {
		s.scroll(lines)
	}
}

// suggestion returns the i-th (zero based) suggestion of the front screen.
func (d *detailPane) suggestion(i int) (string, bool) {
	s := d.top()
	if s == nil || s.showNotes || i < 0 || i >= len(s.suggestions) {
		return "", false
	}
	return s.suggestions[i], true
}

// --- View ---

// view renders the front screen into a width x height block. editor, when
// non-empty, replaces the body with the notes editor.
func (d *detailPane) view(width, height int, editor string) string {
	s := d.top()
	if s == nil {
		return d.placeholder(width, height)
	}

	tabs := d.tabs(s)
	if d.depth() > 1 {
		tabs += MutedStyle.Render(fmt.Sprintf("  %d deep", d.depth()))
	}
	if editor != "" {
		return tabs + "\n\n" + editor
	}

	bodyHeight := height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	s.body.Width = width
	s.body.Height = bodyHeight
	s.body.SetContent(d.body(s, width))
	return tabs + "\n\n" + s.body.View()
}

func (d *detailPane) tabs(s *detailScreen) string {
	def, notes := ModeActiveStyle, ModeInactiveStyle
	if s.showNotes {
		def, notes = ModeInactiveStyle, ModeActiveStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, def.Render("Definition"), notes.Render("Notes"))
}

func (d *detailPane) body(s *detailScreen, width int) string {
	if s.showNotes {
		notes := components.SanitizeText(d.store.Notes(s.word))
		if notes == "" {
			return MutedStyle.Render("No notes yet. Press e to write some.")
		}
		return strings.Join(wrapText(notes, width), "\n")
	}

	switch {
	case s.loading:
		return MutedStyle.Render("Looking up " + s.word + "...")
	case s.def == nil:
		return MutedStyle.Render("No lookup configured.")
	case s.def.Found:
		return renderMarkdown(components.SanitizeText(s.def.Markdown()), d.theme, width)
	}

	var b strings.Builder
	b.WriteString(WarningStyle.Render("No definition found for " + components.SanitizeOneLine(s.word) + "."))
	if len(s.suggestions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(MutedStyle.Render("Did you mean:"))
		for i, w := range s.suggestions {
			b.WriteString("\n")
			b.WriteString(AccentStyle.Render(fmt.Sprintf("%d ", i+1)))
			b.WriteString(NormalStyle.Render(components.SanitizeOneLine(w)))
		}
	}
	return b.String()
}

func (d *detailPane) placeholder(width, height int) string {
	msg := MutedStyle.Render("Select a word, or press / to look one up.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
