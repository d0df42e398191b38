package coordinator

import (
	"context"

	"github.com/gravitrone/wordroom/internal/api"
	"github.com/gravitrone/wordroom/internal/vocab"
)

// RowPath is a list position in the row-first order the list view uses.
type RowPath struct {
	Row     int
	Section int
}

// rowPath is the only place a vocab.Coordinate becomes a RowPath.
func rowPath(c vocab.Coordinate) RowPath {
	return RowPath{Row: c.Row, Section: c.Section}
}

func rowPaths(cs []vocab.Coordinate) []RowPath {
	out := make([]RowPath, 0, len(cs))
	for _, c := range cs {
		out = append(out, rowPath(c))
	}
	return out
}

// ListView receives row mutations and selection changes. Removed rows use
// coordinates from before the mutation, inserted and reloaded rows use
// coordinates after it. ReloadAll drops the current selection.
type ListView interface {
	InsertRows(rows []RowPath)
	DeleteRows(rows []RowPath)
	ReloadRows(rows []RowPath)
	ReloadAll()
	SelectRow(row *RowPath)
}

// DetailView shows open words. PushWord and PopWord manage the screen stack
// in compact layout; ShowWord and ShowPlaceholder replace the single pane in
// regular layout. ShowDefinition fills the pane currently showing word.
type DetailView interface {
	PushWord(word string)
	PopWord()
	ShowWord(word string)
	ShowPlaceholder()
	ShowDefinition(word string, def api.Definition, suggestions []string)
}

// Provider looks up definitions.
type Provider interface {
	Define(ctx context.Context, word string) (*api.Definition, error)
}
