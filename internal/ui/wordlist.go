package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gravitrone/wordroom/internal/coordinator"
	"github.com/gravitrone/wordroom/internal/ui/components"
	"github.com/gravitrone/wordroom/internal/vocab"
)

// wordList is the list pane. It renders the store's current sections and
// implements coordinator.ListView; every row mutation re-reads the store.
type wordList struct {
	store    *vocab.Store
	sections []vocab.Section
	coords   []vocab.Coordinate
	cursor   *components.List

	selected *vocab.Coordinate
	// marked maps identity keys of rows marked for deletion to their words.
	marked map[string]string
}

func newWordList(store *vocab.Store) *wordList {
	l := &wordList{
		store:  store,
		cursor: components.NewList(10),
		marked: map[string]string{},
	}
	l.refresh()
	return l
}

// --- coordinator.ListView ---

func (l *wordList) InsertRows([]coordinator.RowPath) {
	l.refresh()
}

func (l *wordList) DeleteRows([]coordinator.RowPath) {
	l.refresh()
}

func (l *wordList) ReloadRows([]coordinator.RowPath) {
	l.refresh()
}

func (l *wordList) ReloadAll() {
	l.selected = nil
	l.marked = map[string]string{}
	l.cursor.SetItems(nil)
	l.refresh()
}

func (l *wordList) SelectRow(row *coordinator.RowPath) {
	if row == nil {
		l.selected = nil
		return
	}
	at := vocab.Coordinate{Section: row.Section, Row: row.Row}
	l.selected = &at
	if i := l.indexOf(at); i >= 0 {
		l.cursor.SetCursor(i)
	}
}

// --- Rows ---

func (l *wordList) refresh() {
	l.sections = l.store.Current()
	l.coords = l.coords[:0]
	items := make([]string, 0, vocab.Rows(l.sections))
	for si, sec := range l.sections {
		for ri, word := range sec.Words {
			l.coords = append(l.coords, vocab.Coordinate{Section: si, Row: ri})
			items = append(items, word)
		}
	}
	l.cursor.Replace(items)
	for key, word := range l.marked {
		if !l.store.Has(word) {
			delete(l.marked, key)
		}
	}
}

func (l *wordList) indexOf(at vocab.Coordinate) int {
	for i, c := range l.coords {
		if c == at {
			return i
		}
	}
	return -1
}

// headerLines is the number of lines taken by section headers and the
// blank lines between sections.
func (l *wordList) headerLines() int {
	n := 0
	for _, sec := range l.sections {
		if len(sec.Words) > 0 {
			n += 2
		}
	}
	return n
}

func (l *wordList) setPageSize(rows int) {
	if rows < 1 {
		rows = 1
	}
	l.cursor.PageSize = rows
	l.cursor.SetCursor(l.cursor.Cursor)
}

// current returns the coordinate under the cursor.
func (l *wordList) current() (vocab.Coordinate, bool) {
	if len(l.coords) == 0 {
		return vocab.Coordinate{}, false
	}
	return l.coords[l.cursor.Selected()], true
}

func (l *wordList) isLive(at vocab.Coordinate) bool {
	return at.Section < len(l.sections) && l.sections[at.Section].Kind == vocab.LiveSearchSection
}

// toggleMark flips the delete mark on the cursor row. Search rows cannot be
// marked.
func (l *wordList) toggleMark() bool {
	at, ok := l.current()
	if !ok || l.isLive(at) {
		return false
	}
	word := l.cursor.Items[l.cursor.Selected()]
	key := vocab.IdentityKey(word)
	if _, marked := l.marked[key]; marked {
		delete(l.marked, key)
	} else {
		l.marked[key] = word
	}
	return true
}

func (l *wordList) isMarked(word string) bool {
	_, ok := l.marked[vocab.IdentityKey(word)]
	return ok
}

// deleteTargets returns the listed marked rows, or the cursor row when
// nothing is marked, in list order.
func (l *wordList) deleteTargets() []vocab.Coordinate {
	var out []vocab.Coordinate
	for _, word := range l.marked {
		if at, ok := l.store.Locate(word); ok {
			out = append(out, at)
		}
	}
	if len(out) == 0 {
		if at, ok := l.current(); ok && !l.isLive(at) {
			out = append(out, at)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].Row < out[j].Row
	})
	return out
}

func (l *wordList) wordsAt(coords []vocab.Coordinate) []string {
	words := make([]string, 0, len(coords))
	for _, at := range coords {
		if w, err := l.store.CellAt(at); err == nil {
			words = append(words, w)
		}
	}
	return words
}

// --- View ---

func (l *wordList) view(width int) string {
	if len(l.coords) == 0 {
		if l.store.Len() == 0 {
			return MutedStyle.Render("No words yet. Press / and type one.")
		}
		return MutedStyle.Render("No matches.")
	}

	labelWidth := width - 4
	var b strings.Builder
	visible := l.cursor.Visible()
	lastSection := -1
	for i := range visible {
		abs := l.cursor.RelToAbs(i)
		at := l.coords[abs]
		if at.Section != lastSection {
			if lastSection >= 0 {
				b.WriteString("\n")
			}
			sec := l.sections[at.Section]
			header := sec.Kind.String()
			if sec.Kind != vocab.LiveSearchSection {
				header = fmt.Sprintf("%s (%d)", header, len(sec.Words))
			}
			b.WriteString(SectionStyle.Render(header))
			b.WriteString("\n")
			lastSection = at.Section
		}

		label := components.ClampTextWidthEllipsis(l.cursor.Items[abs], labelWidth)
		if l.isLive(at) {
			label = AccentStyle.Render("↵ ") + label
		}
		mark := "  "
		if l.isMarked(l.cursor.Items[abs]) {
			mark = MarkStyle.Render("• ")
		}

		switch {
		case l.selected != nil && *l.selected == at && l.cursor.IsSelected(abs):
			b.WriteString(SelectedStyle.Render("> ") + mark + OpenStyle.Render(label))
		case l.selected != nil && *l.selected == at:
			b.WriteString("  " + mark + OpenStyle.Render(label))
		case l.cursor.IsSelected(abs):
			b.WriteString(SelectedStyle.Render("> " + mark + label))
		default:
			b.WriteString("  " + mark + NormalStyle.Render(label))
		}
		if i < len(visible)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
