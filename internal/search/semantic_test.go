package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhoard/linkhoard/internal/embedding"
	"github.com/linkhoard/linkhoard/internal/model"
)

func newSemanticService(bookmarks []model.Bookmark, provider embedding.Provider) *Service {
	embedder := embedding.NewService(provider, 100, 0)
	return NewService(&mockStore{bookmarks: bookmarks}, embedder, 4)
}

func TestSemanticSearchEmptyQueryRejected(t *testing.T) {
	svc := newSemanticService(nil, nil)

	_, err := svc.SemanticSearch(context.Background(), SemanticRequest{Query: ""})
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = svc.SemanticSearch(context.Background(), SemanticRequest{Query: "   "})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSemanticSearchRanksBySimilarity(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "cake", Title: "chocolate cake recipe with frosting"},
		{ID: "go", Title: "golang channels concurrency tutorial"},
		{ID: "go2", Title: "concurrency patterns golang channels goroutines"},
	}
	// Fallback-only embedder: similarity reduces to bag-of-words overlap
	svc := newSemanticService(bookmarks, nil)

	zero := 0.0
	resp, err := svc.SemanticSearch(context.Background(), SemanticRequest{
		Query:     "golang concurrency channels",
		Threshold: &zero,
	})
	require.NoError(t, err)

	assert.Equal(t, embedding.MethodFallback, resp.Method)
	require.NotEmpty(t, resp.Results)
	assert.Contains(t, []string{"go", "go2"}, resp.Results[0].Item.ID)

	// Scores mirror similarity and descend
	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Similarity, resp.Results[i].Similarity)
		assert.InDelta(t, 1-resp.Results[i].Similarity, resp.Results[i].Score, 1e-9)
	}
}

func TestSemanticSearchThresholdAboveMax(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "1", Title: "golang concurrency"},
	}
	svc := newSemanticService(bookmarks, nil)

	over := 1.1
	resp, err := svc.SemanticSearch(context.Background(), SemanticRequest{
		Query:     "golang concurrency",
		Threshold: &over,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Results)
	assert.Zero(t, resp.Total)
}

func TestSemanticSearchEmptyContentShortCircuits(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "empty", URL: "https://example.com"},
		{ID: "full", Title: "golang concurrency tutorial"},
	}
	provider := &countingProvider{vector: []float32{1, 0, 0}}
	svc := newSemanticService(bookmarks, provider)

	zero := 0.0
	resp, err := svc.SemanticSearch(context.Background(), SemanticRequest{
		Query:     "golang",
		Threshold: &zero,
	})
	require.NoError(t, err)

	// Query plus the one non-empty candidate; the empty one never reaches
	// the provider and surfaces as similarity 0
	assert.Equal(t, int64(2), provider.calls.Load())

	var emptySim, fullSim *float64
	for i := range resp.Results {
		switch resp.Results[i].Item.ID {
		case "empty":
			emptySim = &resp.Results[i].Similarity
		case "full":
			fullSim = &resp.Results[i].Similarity
		}
	}
	require.NotNil(t, emptySim)
	assert.Zero(t, *emptySim)
	require.NotNil(t, fullSim)
	assert.InDelta(t, 1.0, *fullSim, 1e-6)
}

func TestSemanticSearchAppliesTaxonomyPreFilter(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "tagged", Title: "golang tutorial", Tags: []string{"work"}},
		{ID: "untagged", Title: "golang tutorial"},
	}
	svc := newSemanticService(bookmarks, nil)

	zero := 0.0
	resp, err := svc.SemanticSearch(context.Background(), SemanticRequest{
		Query:     "golang tutorial",
		Filters:   Filters{Tags: []string{"work"}},
		Threshold: &zero,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 1)
	assert.Equal(t, "tagged", resp.Results[0].Item.ID)
}

func TestSemanticSearchLimit(t *testing.T) {
	var bookmarks []model.Bookmark
	for _, id := range []string{"a", "b", "c", "d"} {
		bookmarks = append(bookmarks, model.Bookmark{ID: id, Title: "golang concurrency notes"})
	}
	svc := newSemanticService(bookmarks, nil)

	zero := 0.0
	resp, err := svc.SemanticSearch(context.Background(), SemanticRequest{
		Query:     "golang concurrency",
		Limit:     2,
		Threshold: &zero,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Results, 2)
}

func TestSemanticSearchDefaultThreshold(t *testing.T) {
	bookmarks := []model.Bookmark{
		{ID: "unrelated", Title: "chocolate cake frosting dessert"},
	}
	svc := newSemanticService(bookmarks, nil)

	// No shared tokens: fallback similarity 0 sits below the 0.3 default
	resp, err := svc.SemanticSearch(context.Background(), SemanticRequest{
		Query: "kubernetes networking",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}
