package vocab

import (
	"fmt"
	"strings"
)

// Scope selects what a query text is matched against.
type Scope int

const (
	WordScope Scope = iota
	NoteScope
)

func (s Scope) String() string {
	if s == NoteScope {
		return "notes"
	}
	return "words"
}

// NoteMarker is the leading character that switches a typed query to NoteScope.
const NoteMarker = "#"

// Query filters the word list.
type Query struct {
	Text  string
	Scope Scope
}

// Active reports whether the query filters anything.
func (q Query) Active() bool {
	return strings.TrimSpace(q.Text) != ""
}

// ResolveQuery turns raw search-field input into a Query. A leading
// NoteMarker forces NoteScope and is stripped from the text.
func ResolveQuery(raw string, scope Scope) Query {
	trimmed := strings.TrimLeft(raw, " \t")
	if strings.HasPrefix(trimmed, NoteMarker) {
		return Query{Text: strings.TrimPrefix(trimmed, NoteMarker), Scope: NoteScope}
	}
	return Query{Text: raw, Scope: scope}
}

// SectionKind names a section.
type SectionKind int

const (
	LiveSearchSection SectionKind = iota
	AnnotatedSection
	HistorySection
)

func (k SectionKind) String() string {
	switch k {
	case LiveSearchSection:
		return "Search"
	case AnnotatedSection:
		return "Notes"
	case HistorySection:
		return "History"
	}
	return fmt.Sprintf("SectionKind(%d)", int(k))
}

// Section is an ordered, named part of the filtered word list.
type Section struct {
	Kind  SectionKind
	Words []string
}

// Filter computes the sections for an arbitrary entry set. It orders entries
// the same way a Store does.
func Filter(entries []Entry, q Query) []Section {
	recs := make([]*record, 0, len(entries))
	for _, e := range entries {
		recs = append(recs, newRecord(e.Word, e.Notes))
	}
	sortRecords(recs)
	return filterRecords(recs, q)
}

// filterRecords expects recs in alphabetic order and only evaluates the
// match predicate, one pass over recs.
func filterRecords(recs []*record, q Query) []Section {
	text := strings.TrimSpace(q.Text)
	needle := fold(text)

	annotated := Section{Kind: AnnotatedSection, Words: []string{}}
	history := Section{Kind: HistorySection, Words: []string{}}
	satisfied := false
	for _, rec := range recs {
		if needle != "" && rec.key == needle {
			satisfied = true
		}
		if !matches(rec, needle, q.Scope) {
			continue
		}
		if rec.annotated() {
			annotated.Words = append(annotated.Words, rec.word)
		} else {
			history.Words = append(history.Words, rec.word)
		}
	}

	if needle != "" && q.Scope == WordScope && !satisfied {
		live := Section{Kind: LiveSearchSection, Words: []string{text}}
		return []Section{live, annotated, history}
	}
	return []Section{annotated, history}
}

func matches(rec *record, needle string, scope Scope) bool {
	if needle == "" {
		return true
	}
	if scope == NoteScope {
		return strings.Contains(rec.foldedNotes, needle)
	}
	return strings.Contains(rec.key, needle)
}

// Rows returns the total row count across sections.
func Rows(sections []Section) int {
	n := 0
	for _, sec := range sections {
		n += len(sec.Words)
	}
	return n
}

func cellAt(sections []Section, c Coordinate) (string, error) {
	if c.Section < 0 || c.Section >= len(sections) {
		return "", fmt.Errorf("section %d of %d: %w", c.Section, len(sections), ErrOutOfRange)
	}
	words := sections[c.Section].Words
	if c.Row < 0 || c.Row >= len(words) {
		return "", fmt.Errorf("row %d of %d in section %d: %w", c.Row, len(words), c.Section, ErrOutOfRange)
	}
	return words[c.Row], nil
}

func locate(sections []Section, key string) (Coordinate, bool) {
	if key == "" {
		return Coordinate{}, false
	}
	for si, sec := range sections {
		for ri, word := range sec.Words {
			if IdentityKey(word) == key {
				return Coordinate{Section: si, Row: ri}, true
			}
		}
	}
	return Coordinate{}, false
}

// SameLayout reports whether two section lists have the same kinds in the
// same order, so row-level changes between them can be applied in place.
func SameLayout(a, b []Section) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
	}
	return true
}
