package coordinator

import (
	"context"
	"log"
	"strings"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/vocab"
)

// suggestionLimit caps the near matches shown for a word without definition.
const suggestionLimit = 5

// Mode is the presentation layout.
type Mode int

const (
	// ModeUnset is the state before the first layout notification.
	ModeUnset Mode = iota
	Compact
	Regular
)

func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Regular:
		return "regular"
	}
	return "unset"
}

type shownDefinition struct {
	word        string
	def         api.Definition
	suggestions []string
}

// Coordinator keeps the list and detail views in step with the store and
// the layout. It is not safe for concurrent use.
type Coordinator struct {
	store    *vocab.Store
	list     ListView
	detail   DetailView
	provider Provider

	mode      Mode
	openWords []string

	// last emitted selection; selectionKnown is false until one is emitted
	// and again after the list reloads.
	selection      *vocab.Coordinate
	selectionKnown bool

	generation uint64
	baseCtx    context.Context
	cancel     context.CancelFunc

	shown *shownDefinition
}

// New builds a coordinator. provider may be nil, in which case words open
// without lookups.
func New(store *vocab.Store, list ListView, detail DetailView, provider Provider) *Coordinator {
	return &Coordinator{
		store:    store,
		list:     list,
		detail:   detail,
		provider: provider,
		baseCtx:  context.Background(),
	}
}

// --- State ---

// Mode returns the current layout.
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// Displayed returns the word shown in the detail pane, or "".
func (c *Coordinator) Displayed() string {
	if len(c.openWords) == 0 {
		return ""
	}
	return c.openWords[len(c.openWords)-1]
}

// OpenWords returns a copy of the open word stack, most recent last.
func (c *Coordinator) OpenWords() []string {
	return append([]string(nil), c.openWords...)
}

// Generation returns the current fetch generation.
func (c *Coordinator) Generation() uint64 {
	return c.generation
}

// Close cancels any in-flight fetch.
func (c *Coordinator) Close() {
	c.cancelFetch()
}

// --- Layout ---

// LayoutChanged reacts to a layout notification. Repeated notifications of
// the current mode do nothing.
func (c *Coordinator) LayoutChanged(mode Mode) {
	if mode == c.mode || mode == ModeUnset {
		return
	}
	prev := c.mode
	c.mode = mode
	top := c.Displayed()
	log.Printf("coordinator: layout %s -> %s (open=%d)", prev, mode, len(c.openWords))

	switch mode {
	case Regular:
		if prev == Compact {
			for range c.openWords {
				c.detail.PopWord()
			}
		}
		if top == "" {
			c.openWords = nil
			c.detail.ShowPlaceholder()
			break
		}
		c.openWords = []string{top}
		c.detail.ShowWord(top)
		c.reshow(top)
	case Compact:
		if top == "" {
			c.openWords = nil
			break
		}
		c.openWords = []string{top}
		c.detail.PushWord(top)
		c.reshow(top)
	}
	c.SyncSelection()
}

func (c *Coordinator) reshow(word string) {
	if c.shown != nil && c.shown.word == word {
		c.detail.ShowDefinition(word, c.shown.def, c.shown.suggestions)
	}
}

// --- Navigation ---

// OpenWord shows a word in the detail pane and returns the lookup to run for
// it. In regular layout reopening the displayed word is skipped unless force
// is set, and the returned fetch is nil.
func (c *Coordinator) OpenWord(word string, force bool) *Fetch {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}
	if e, ok := c.store.Lookup(word); ok {
		word = e.Word
	}

	if c.mode == Compact {
		c.openWords = append(c.openWords, word)
		c.detail.PushWord(word)
	} else {
		if !force && c.Displayed() == word {
			return nil
		}
		c.openWords = []string{word}
		c.detail.ShowWord(word)
	}
	c.shown = nil
	fetch := c.startFetch(word)
	c.SyncSelection()
	return fetch
}

// OpenRow opens the word at a list coordinate.
func (c *Coordinator) OpenRow(at vocab.Coordinate) (*Fetch, error) {
	word, err := c.store.CellAt(at)
	if err != nil {
		return nil, err
	}
	return c.OpenWord(word, false), nil
}

// OpenRandom opens a random stored word.
func (c *Coordinator) OpenRandom() (*Fetch, error) {
	word, err := c.store.RandomWord()
	if err != nil {
		return nil, err
	}
	return c.OpenWord(word, false), nil
}

// SubmitQuery opens the typed query text as a word. Note searches do not
// open anything.
func (c *Coordinator) SubmitQuery(text string) *Fetch {
	q := vocab.ResolveQuery(text, vocab.WordScope)
	if q.Scope != vocab.WordScope {
		return nil
	}
	return c.OpenWord(q.Text, false)
}

// CloseWord clears the detail pane.
func (c *Coordinator) CloseWord() {
	c.invalidateFetch()
	if c.mode == Compact {
		for range c.openWords {
			c.detail.PopWord()
		}
	}
	c.openWords = nil
	c.shown = nil
	c.detail.ShowPlaceholder()
	c.SyncSelection()
}

// Back pops the top detail screen in compact layout.
func (c *Coordinator) Back() {
	if c.mode != Compact || len(c.openWords) == 0 {
		return
	}
	c.invalidateFetch()
	c.openWords = c.openWords[:len(c.openWords)-1]
	c.shown = nil
	c.detail.PopWord()
	c.SyncSelection()
}

// ReturnToList pops every detail screen in compact layout.
func (c *Coordinator) ReturnToList() {
	if c.mode != Compact || len(c.openWords) == 0 {
		return
	}
	c.invalidateFetch()
	for range c.openWords {
		c.detail.PopWord()
	}
	c.openWords = nil
	c.shown = nil
	c.SyncSelection()
}

// --- Store Mutations ---

// SetQuery applies a new list query.
func (c *Coordinator) SetQuery(q vocab.Query) {
	c.apply(c.store.SetQuery(q))
	c.SyncSelection()
}

// EditNotes stores notes for a word and updates the list rows.
func (c *Coordinator) EditNotes(word, notes string) error {
	ev, err := c.store.SetNotes(word, notes)
	if err != nil {
		return err
	}
	c.apply(ev)
	c.SyncSelection()
	return nil
}

// DeleteRows deletes the words at the given coordinates. The detail pane is
// closed when its word is among them.
func (c *Coordinator) DeleteRows(coords []vocab.Coordinate) ([]string, error) {
	before := c.store.Current()
	words, err := c.store.DeleteWords(coords)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return words, nil
	}

	if vocab.SameLayout(before, c.store.Current()) {
		c.list.DeleteRows(rowPaths(coords))
		c.forgetSelectionIn(coords)
	} else {
		c.reloadAll()
	}

	displayed := vocab.IdentityKey(c.Displayed())
	for _, w := range words {
		if displayed != "" && vocab.IdentityKey(w) == displayed {
			c.CloseWord()
			return words, nil
		}
	}
	c.SyncSelection()
	return words, nil
}

func (c *Coordinator) apply(ev vocab.ChangeEvent) {
	if ev.Reload {
		c.reloadAll()
		return
	}
	if len(ev.Removed) > 0 {
		c.list.DeleteRows(rowPaths(ev.Removed))
		c.forgetSelectionIn(ev.Removed)
	}
	if len(ev.Inserted) > 0 {
		c.list.InsertRows(rowPaths(ev.Inserted))
	}
	if len(ev.Updated) > 0 {
		c.list.ReloadRows(rowPaths(ev.Updated))
	}
}

// forgetSelectionIn marks the selection unknown when its row was removed.
func (c *Coordinator) forgetSelectionIn(removed []vocab.Coordinate) {
	if c.selection == nil {
		return
	}
	for _, at := range removed {
		if at == *c.selection {
			c.selectionKnown = false
			return
		}
	}
}

func (c *Coordinator) reloadAll() {
	c.list.ReloadAll()
	c.selectionKnown = false
}

// --- Selection ---

// SyncSelection selects the row of the displayed word, or clears the
// selection when it is not listed. Nothing is emitted when the selection is
// already correct.
func (c *Coordinator) SyncSelection() {
	var target *vocab.Coordinate
	if word := c.Displayed(); word != "" {
		if at, ok := c.store.Locate(word); ok {
			target = &at
		}
	}
	if c.selectionKnown && sameCoordinate(c.selection, target) {
		return
	}
	c.selection = target
	c.selectionKnown = true
	if target == nil {
		c.list.SelectRow(nil)
		return
	}
	row := rowPath(*target)
	c.list.SelectRow(&row)
}

func sameCoordinate(a, b *vocab.Coordinate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// --- Fetch ---

func (c *Coordinator) startFetch(word string) *Fetch {
	c.invalidateFetch()
	if c.provider == nil {
		return nil
	}
	ctx, cancel := context.WithCancel(c.baseCtx)
	c.cancel = cancel
	return &Fetch{Word: word, Generation: c.generation, ctx: ctx, provider: c.provider}
}

func (c *Coordinator) invalidateFetch() {
	c.cancelFetch()
	c.generation++
}

func (c *Coordinator) cancelFetch() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// ApplyFetch shows a finished lookup if it is still current: same generation
// and the pane still displays its word. Otherwise it is dropped. A found
// definition for a word not yet stored records it in History; recorded
// reports that the store changed.
func (c *Coordinator) ApplyFetch(res FetchResult) (applied, recorded bool) {
	if res.Generation != c.generation || c.Displayed() != res.Word {
		log.Printf("coordinator: dropped stale definition for %q (gen %d, current %d)", res.Word, res.Generation, c.generation)
		return false, false
	}
	c.cancelFetch()

	shown := shownDefinition{word: res.Word, def: api.Definition{Word: res.Word}}
	if res.Found() {
		shown.def = *res.Definition
		if !c.store.Has(res.Word) {
			if err := c.EditNotes(res.Word, ""); err != nil {
				log.Printf("coordinator: record %q: %v", res.Word, err)
			} else {
				recorded = true
			}
		}
	} else {
		if res.Err != nil {
			log.Printf("coordinator: define %q: %v", res.Word, res.Err)
		}
		shown.suggestions = c.store.Suggest(res.Word, suggestionLimit)
	}

	c.shown = &shown
	c.detail.ShowDefinition(shown.word, shown.def, shown.suggestions)
	return true, recorded
}

