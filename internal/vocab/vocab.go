package vocab

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrOutOfRange is returned when a coordinate does not resolve to a row.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrMalformedData is returned when persisted vocabulary data cannot be used.
	ErrMalformedData = errors.New("malformed vocabulary data")
	// ErrEmpty is returned by operations that need at least one entry.
	ErrEmpty = errors.New("vocabulary is empty")
	// ErrEmptyWord is returned when a word is blank after trimming.
	ErrEmptyWord = errors.New("word must be non-empty")
)

// Entry is a stored word and its notes.
type Entry struct {
	Word  string `json:"word"`
	Notes string `json:"notes"`
}

// Coordinate addresses a row as (section, row). It is the only coordinate
// convention used inside the store and the coordinator.
type Coordinate struct {
	Section int
	Row     int
}

// ChangeEvent describes how a mutation moved rows under the active query.
// Removed holds pre-mutation coordinates, Inserted and Updated hold
// post-mutation coordinates. Reload means the section layout changed and
// row-level changes must not be applied.
type ChangeEvent struct {
	Removed  []Coordinate
	Inserted []Coordinate
	Updated  []Coordinate
	Reload   bool
}

// Empty reports whether the event carries no change at all.
func (e ChangeEvent) Empty() bool {
	return !e.Reload && len(e.Removed) == 0 && len(e.Inserted) == 0 && len(e.Updated) == 0
}

type record struct {
	key         string
	word        string
	notes       string
	foldedNotes string
}

func newRecord(word, notes string) *record {
	return &record{
		key:         IdentityKey(word),
		word:        word,
		notes:       notes,
		foldedNotes: fold(notes),
	}
}

func (r *record) annotated() bool {
	return r.notes != ""
}

// IdentityKey returns the case-folded form used for uniqueness and lookup.
func IdentityKey(word string) string {
	return fold(validText(word))
}

// validText replaces invalid UTF-8 with U+FFFD, which is what a JSON save
// would write anyway.
func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used by RandomWord.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rand = r
	}
}

// Store holds the word entries and the active query. It is not safe for
// concurrent use; callers serialize access through one interaction loop.
type Store struct {
	entries map[string]*record
	ordered []*record
	query   Query
	rand    *rand.Rand
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{entries: make(map[string]*record)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Has reports whether an entry exists for the word's identity key.
func (s *Store) Has(word string) bool {
	_, ok := s.entries[IdentityKey(strings.TrimSpace(word))]
	return ok
}

// Lookup returns the stored entry for the word's identity key.
func (s *Store) Lookup(word string) (Entry, bool) {
	rec, ok := s.entries[IdentityKey(strings.TrimSpace(word))]
	if !ok {
		return Entry{}, false
	}
	return Entry{Word: rec.word, Notes: rec.notes}, true
}

// Notes returns the notes for a word, or "" when it is not stored.
func (s *Store) Notes(word string) string {
	if rec, ok := s.entries[IdentityKey(strings.TrimSpace(word))]; ok {
		return rec.notes
	}
	return ""
}

// Query returns the active query.
func (s *Store) Query() Query {
	return s.query
}

// SetQuery replaces the active query. The whole list must be reloaded.
func (s *Store) SetQuery(q Query) ChangeEvent {
	s.query = q
	return ChangeEvent{Reload: true}
}

// Sections computes the sections for a query. Same entries and query always
// produce the same sections.
func (s *Store) Sections(q Query) []Section {
	return filterRecords(s.sorted(), q)
}

// Current returns the sections under the active query.
func (s *Store) Current() []Section {
	return s.Sections(s.query)
}

// CellAt resolves a coordinate under the active query.
func (s *Store) CellAt(c Coordinate) (string, error) {
	return cellAt(s.Current(), c)
}

// Locate returns the coordinate of a word under the active query, if shown.
func (s *Store) Locate(word string) (Coordinate, bool) {
	return locate(s.Current(), IdentityKey(strings.TrimSpace(word)))
}

// SetNotes creates or updates the entry for the word's identity key. The new
// display form replaces a differently cased stored one, and the stale row is
// reported as removed.
func (s *Store) SetNotes(word, notes string) (ChangeEvent, error) {
	word = strings.TrimSpace(validText(word))
	notes = validText(notes)
	if word == "" {
		return ChangeEvent{}, ErrEmptyWord
	}
	key := IdentityKey(word)
	old, existed := s.entries[key]
	if existed && old.word == word && old.notes == notes {
		return ChangeEvent{}, nil
	}

	before := s.Current()
	oldCoord, oldVisible := Coordinate{}, false
	if existed {
		oldCoord, oldVisible = locate(before, key)
	}

	s.entries[key] = newRecord(word, notes)
	s.ordered = nil

	after := s.Current()
	if !SameLayout(before, after) {
		return ChangeEvent{Reload: true}, nil
	}
	newCoord, newVisible := locate(after, key)

	var ev ChangeEvent
	if existed && old.word == word && oldVisible && newVisible && oldCoord == newCoord {
		ev.Updated = []Coordinate{newCoord}
		return ev, nil
	}
	if oldVisible {
		ev.Removed = []Coordinate{oldCoord}
	}
	if newVisible {
		ev.Inserted = []Coordinate{newCoord}
	}
	return ev, nil
}

// DeleteWords removes the entries at the given coordinates of the active
// query. Every coordinate is validated before anything is removed. Rows are
// removed highest first within each section and the removed words are
// returned in that order.
func (s *Store) DeleteWords(coords []Coordinate) ([]string, error) {
	sections := s.Current()
	seen := make(map[Coordinate]struct{}, len(coords))
	for _, c := range coords {
		if _, err := cellAt(sections, c); err != nil {
			return nil, err
		}
		if sections[c.Section].Kind == LiveSearchSection {
			return nil, fmt.Errorf("delete live search row %d/%d: %w", c.Section, c.Row, ErrOutOfRange)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate coordinate %d/%d: %w", c.Section, c.Row, ErrOutOfRange)
		}
		seen[c] = struct{}{}
	}

	ordered := append([]Coordinate(nil), coords...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Section != ordered[j].Section {
			return ordered[i].Section < ordered[j].Section
		}
		return ordered[i].Row > ordered[j].Row
	})

	words := make([]string, 0, len(ordered))
	for _, c := range ordered {
		word := sections[c.Section].Words[c.Row]
		delete(s.entries, IdentityKey(word))
		words = append(words, word)
	}
	if len(words) > 0 {
		s.ordered = nil
	}
	return words, nil
}

// RandomWord returns a uniformly chosen stored word.
func (s *Store) RandomWord() (string, error) {
	recs := s.sorted()
	if len(recs) == 0 {
		return "", ErrEmpty
	}
	var i int
	if s.rand != nil {
		i = s.rand.IntN(len(recs))
	} else {
		i = rand.IntN(len(recs))
	}
	return recs[i].word, nil
}

// sorted returns the cached alphabetic ordering, rebuilding it after writes.
func (s *Store) sorted() []*record {
	if s.ordered != nil || len(s.entries) == 0 {
		return s.ordered
	}
	recs := make([]*record, 0, len(s.entries))
	for _, rec := range s.entries {
		recs = append(recs, rec)
	}
	sortRecords(recs)
	s.ordered = recs
	return recs
}

func sortRecords(recs []*record) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].key != recs[j].key {
			return recs[i].key < recs[j].key
		}
		return recs[i].word < recs[j].word
	})
}
