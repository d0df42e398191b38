package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Entries returns every entry in alphabetic order.
func (s *Store) Entries() []Entry {
	recs := s.sorted()
	out := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Entry{Word: rec.word, Notes: rec.notes})
	}
	return out
}

// Replace swaps the whole entry set. Nothing changes when the entries are
// invalid.
func (s *Store) Replace(entries []Entry) error {
	next, err := buildRecords(entries)
	if err != nil {
		return err
	}
	s.entries = next
	s.ordered = nil
	return nil
}

// Load replaces the entries with a JSON vocabulary read from r.
func (s *Store) Load(r io.Reader) error {
	entries, err := DecodeEntries(r)
	if err != nil {
		return err
	}
	return s.Replace(entries)
}

// Save writes the full entry set as a JSON vocabulary.
func (s *Store) Save(w io.Writer) error {
	return EncodeEntries(w, s.Entries())
}

// DecodeEntries reads a JSON object mapping words to notes.
func DecodeEntries(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("expected a JSON object: %w", ErrMalformedData)
	}

	// Pointers tell a null apart from "".
	var raw map[string]*string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %v: %w", err, ErrMalformedData)
	}

	entries := make([]Entry, 0, len(raw))
	for word, notes := range raw {
		if notes == nil {
			return nil, fmt.Errorf("notes for %q are null: %w", word, ErrMalformedData)
		}
		entries = append(entries, Entry{Word: word, Notes: *notes})
	}
	recs, err := buildRecords(entries)
	if err != nil {
		return nil, err
	}
	return sortedEntries(recs), nil
}

func sortedEntries(recs map[string]*record) []Entry {
	list := make([]*record, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec)
	}
	sortRecords(list)
	out := make([]Entry, 0, len(list))
	for _, rec := range list {
		out = append(out, Entry{Word: rec.word, Notes: rec.notes})
	}
	return out
}

// EncodeEntries writes entries as a JSON object mapping words to notes.
func EncodeEntries(w io.Writer, entries []Entry) error {
	raw := make(map[string]string, len(entries))
	for _, e := range entries {
		raw[e.Word] = e.Notes
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	return nil
}

// ExportNotes formats words and their notes for sharing.
func (s *Store) ExportNotes(words []string) string {
	blocks := make([]string, 0, len(words))
	for _, word := range words {
		blocks = append(blocks, fmt.Sprintf("%s\n\n%s", word, s.Notes(word)))
	}
	return strings.Join(blocks, "\n\n----\n\n")
}

func buildRecords(entries []Entry) (map[string]*record, error) {
	next := make(map[string]*record, len(entries))
	for _, e := range entries {
		word := strings.TrimSpace(validText(e.Word))
		if word == "" {
			return nil, fmt.Errorf("blank word: %w", ErrMalformedData)
		}
		rec := newRecord(word, validText(e.Notes))
		if prev, dup := next[rec.key]; dup {
			return nil, fmt.Errorf("%q and %q share an identity key: %w", prev.word, word, ErrMalformedData)
		}
		next[rec.key] = rec
	}
	return next, nil
}
