package vocab

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n stored words close to word by edit distance,
// nearest first. The word itself is never suggested.
func (s *Store) Suggest(word string, n int) []string {
	key := IdentityKey(strings.TrimSpace(word))
	if key == "" || n <= 0 {
		return nil
	}
	limit := 1 + utf8.RuneCountInString(key)/4

	type candidate struct {
		rec  *record
		dist int
	}
	var found []candidate
	for _, rec := range s.sorted() {
		if rec.key == key {
			continue
		}
		dist := levenshtein.ComputeDistance(key, rec.key)
		if dist <= limit {
			found = append(found, candidate{rec: rec, dist: dist})
		}
	}
	// s.sorted() is alphabetic, so a stable sort keeps ties alphabetic.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].dist < found[j].dist
	})
	if len(found) > n {
		found = found[:n]
	}
	out := make([]string, 0, len(found))
	for _, c := range found {
		out = append(out, c.rec.word)
	}
	return out
}
