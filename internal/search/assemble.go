package search

import (
	"fmt"
	"sort"
	"strings"
)

const (
	SortRelevance = "relevance"
	SortDate      = "date"
	SortTitle     = "title"

	maxTagSuggestions = 5
)

// SortResults reorders results in place. Relevance keeps the engine's
// native order; date sorts newest first with missing timestamps treated as
// oldest; title sorts ascending case-insensitively with missing titles
// first.
func SortResults(results []Result, sortBy string) {
	switch sortBy {
	case SortDate:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Item.CreatedAt > results[j].Item.CreatedAt
		})
	case SortTitle:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].Item.Title) < strings.ToLower(results[j].Item.Title)
		})
	}
}

// Paginate slices out the 1-based page and reports total pages.
func Paginate(results []Result, page, limit int) ([]Result, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages := (len(results) + limit - 1) / limit

	start := (page - 1) * limit
	if start >= len(results) {
		return []Result{}, totalPages
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	return results[start:end], totalPages
}

// TagSuggestions tallies tag frequency across the filtered pre-pagination
// set and formats the top entries as "#tag". Count ties keep first
// encounter order.
func TagSuggestions(results []Result) []string {
	counts := map[string]int{}
	var order []string
	for _, r := range results {
		for _, tag := range r.Item.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTagSuggestions {
		order = order[:maxTagSuggestions]
	}
	suggestions := make([]string, len(order))
	for i, tag := range order {
		suggestions[i] = fmt.Sprintf("#%s", tag)
	}
	return suggestions
}
