package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkhoard/linkhoard/internal/model"
)

func TestSortByDate(t *testing.T) {
	results := asResults([]model.Bookmark{
		{ID: "mid", CreatedAt: 200},
		{ID: "newest", CreatedAt: 300},
		{ID: "missing"}, // treated as oldest
		{ID: "oldest", CreatedAt: 100},
	})

	SortResults(results, SortDate)

	assert.Equal(t, "newest", results[0].Item.ID)
	assert.Equal(t, "mid", results[1].Item.ID)
	assert.Equal(t, "oldest", results[2].Item.ID)
	assert.Equal(t, "missing", results[3].Item.ID)
}

func TestSortByTitle(t *testing.T) {
	results := asResults([]model.Bookmark{
		{ID: "b", Title: "Bravo"},
		{ID: "empty"},
		{ID: "a", Title: "alpha"},
	})

	SortResults(results, SortTitle)

	assert.Equal(t, "empty", results[0].Item.ID)
	assert.Equal(t, "a", results[1].Item.ID)
	assert.Equal(t, "b", results[2].Item.ID)
}

func TestSortRelevanceKeepsEngineOrder(t *testing.T) {
	results := asResults([]model.Bookmark{{ID: "x"}, {ID: "y"}, {ID: "z"}})

	SortResults(results, SortRelevance)

	assert.Equal(t, "x", results[0].Item.ID)
	assert.Equal(t, "z", results[2].Item.ID)
}

func TestPaginateBasics(t *testing.T) {
	results := asResults([]model.Bookmark{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}})

	page, totalPages := Paginate(results, 1, 2)
	assert.Len(t, page, 2)
	assert.Equal(t, 3, totalPages)

	page, _ = Paginate(results, 3, 2)
	assert.Len(t, page, 1)
	assert.Equal(t, "5", page[0].Item.ID)

	page, _ = Paginate(results, 4, 2)
	assert.Empty(t, page)
}

func TestPaginateIdempotence(t *testing.T) {
	var results []Result
	for i := 0; i < 23; i++ {
		results = append(results, Result{Item: model.Bookmark{ID: fmt.Sprintf("b%d", i)}})
	}

	limit := 7
	_, totalPages := Paginate(results, 1, limit)

	// Concatenating every page reproduces the set exactly once
	var collected []string
	for p := 1; p <= totalPages; p++ {
		page, _ := Paginate(results, p, limit)
		for _, r := range page {
			collected = append(collected, r.Item.ID)
		}
	}

	assert.Len(t, collected, len(results))
	for i, r := range results {
		assert.Equal(t, r.Item.ID, collected[i])
	}
}

func TestTagSuggestionsRanking(t *testing.T) {
	results := asResults([]model.Bookmark{
		{ID: "1", Tags: []string{"a"}},
		{ID: "2", Tags: []string{"a", "b"}},
		{ID: "3", Tags: []string{"b", "a", "c"}},
	})

	suggestions := TagSuggestions(results)

	assert.Equal(t, []string{"#a", "#b", "#c"}, suggestions)
}

func TestTagSuggestionsTiesKeepEncounterOrder(t *testing.T) {
	results := asResults([]model.Bookmark{
		{ID: "1", Tags: []string{"zulu"}},
		{ID: "2", Tags: []string{"alpha"}},
	})

	suggestions := TagSuggestions(results)

	assert.Equal(t, []string{"#zulu", "#alpha"}, suggestions)
}

func TestTagSuggestionsTopFive(t *testing.T) {
	results := asResults([]model.Bookmark{
		{ID: "1", Tags: []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"}},
	})

	assert.Len(t, TagSuggestions(results), 5)
}
