package search

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/linkhoard/linkhoard/internal/model"
)

// Field weights of the lexical index. Title dominates; OCR text from
// screenshots contributes least.
var searchFields = []struct {
	name   string
	weight float64
}{
	{"title", 0.40},
	{"notes", 0.25},
	{"description", 0.15},
	{"tags", 0.15},
	{"ocrText", 0.05},
}

const (
	// maxFieldDistance rejects matches with normalized edit distance
	// above this value.
	maxFieldDistance = 0.4

	// minMatchLength is the shortest query that can match at all.
	minMatchLength = 2
)

type indexEntry struct {
	bookmark model.Bookmark
	fields   []string // lowercase field values, ordered as searchFields
}

// LexicalIndex answers fuzzy ranked queries over bookmark fields. The
// snapshot of lowercased field strings is rebuilt only when the structural
// hash of the dataset changes. Hash collisions on different data are an
// accepted approximation: at worst a request reads a slightly stale
// snapshot.
type LexicalIndex struct {
	mu      sync.RWMutex
	hash    string
	entries []indexEntry
}

func NewLexicalIndex() *LexicalIndex {
	return &LexicalIndex{}
}

// Search ranks bookmarks by weighted fuzzy relevance, best (lowest score)
// first. An empty query passes every bookmark through with score 0 so the
// downstream filter and pagination path is uniform.
func (ix *LexicalIndex) Search(bookmarks []model.Bookmark, query string) []Result {
	entries := ix.snapshot(bookmarks)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		results := make([]Result, len(entries))
		for i, e := range entries {
			results[i] = Result{Item: e.bookmark}
		}
		return results
	}

	var results []Result
	for _, e := range entries {
		var weighted, totalWeight float64
		var matches []FieldMatch
		for i, f := range searchFields {
			d, ok := fieldDistance(e.fields[i], q)
			if !ok {
				continue
			}
			weighted += f.weight * d
			totalWeight += f.weight
			matches = append(matches, FieldMatch{Field: f.name, Value: e.fields[i]})
		}
		if totalWeight == 0 {
			continue
		}
		results = append(results, Result{
			Item:    e.bookmark,
			Score:   weighted / totalWeight,
			Matches: matches,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// fieldDistance returns the best normalized edit distance between the query
// and the field, ignoring where in the field the match occurs. A direct
// substring hit is distance 0; otherwise the query is compared against each
// token and the whole field, keeping the minimum.
func fieldDistance(field, query string) (float64, bool) {
	if field == "" || utf8.RuneCountInString(query) < minMatchLength {
		return 0, false
	}
	if strings.Contains(field, query) {
		return 0, true
	}

	best := normalizedDistance(query, field)
	for _, tok := range strings.Fields(field) {
		if d := normalizedDistance(query, tok); d < best {
			best = d
		}
	}
	if best > maxFieldDistance {
		return 0, false
	}
	return best, true
}

func normalizedDistance(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// snapshot returns the per-bookmark field strings, rebuilding them when the
// dataset hash changed since the last build.
func (ix *LexicalIndex) snapshot(bookmarks []model.Bookmark) []indexEntry {
	h := structuralHash(bookmarks)

	ix.mu.RLock()
	if ix.hash == h {
		entries := ix.entries
		ix.mu.RUnlock()
		return entries
	}
	ix.mu.RUnlock()

	entries := make([]indexEntry, len(bookmarks))
	for i, b := range bookmarks {
		entries[i] = indexEntry{
			bookmark: b,
			fields: []string{
				strings.ToLower(b.Title),
				strings.ToLower(b.Notes),
				strings.ToLower(b.Description),
				strings.ToLower(strings.Join(b.Tags, " ")),
				strings.ToLower(b.OCRText()),
			},
		}
	}

	ix.mu.Lock()
	ix.hash = h
	ix.entries = entries
	ix.mu.Unlock()
	return entries
}

// structuralHash is a cheap change detector: item count plus serialized
// length. Not content-derived; collisions on equal-size edits are accepted.
func structuralHash(bookmarks []model.Bookmark) string {
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Sprintf("%d:err", len(bookmarks))
	}
	return fmt.Sprintf("%d:%d", len(bookmarks), len(data))
}
