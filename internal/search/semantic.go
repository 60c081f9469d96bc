package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/linkhoard/linkhoard/internal/embedding"
	"github.com/linkhoard/linkhoard/internal/model"
)

// DefaultThreshold is the minimum cosine similarity kept when the request
// does not set one.
const DefaultThreshold = 0.3

// ErrEmptyQuery rejects semantic searches with a blank query.
var ErrEmptyQuery = errors.New("query is required")

// SemanticSearch embeds the query and every candidate's searchable text,
// ranks by cosine similarity and keeps results above the threshold. The
// per-candidate embedding fan-out is bounded; all candidates are embedded
// before any ranking. Provider failures degrade to the deterministic
// fallback inside the embedder and never fail the request.
func (s *Service) SemanticSearch(ctx context.Context, req SemanticRequest) (*SemanticResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	bookmarks, err := s.store.LoadBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	candidates := FilterCandidates(bookmarks, req.Filters)

	threshold := DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	limit := req.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	queryVec, method := s.embedder.Embed(ctx, query)

	similarities := make([]float64, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, b := range candidates {
		text := model.SearchableText(b)
		if text == "" {
			// No searchable content: defined degenerate case, no
			// provider call.
			continue
		}
		i := i
		g.Go(func() error {
			vec, _ := s.embedder.Embed(gctx, text)
			similarities[i] = embedding.Cosine(queryVec, vec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []SemanticResult
	for i, b := range candidates {
		sim := similarities[i]
		if sim < threshold {
			continue
		}
		results = append(results, SemanticResult{
			Item:       b,
			Score:      1 - sim,
			Similarity: sim,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []SemanticResult{}
	}

	return &SemanticResponse{
		Results: results,
		Total:   len(results),
		Query:   req.Query,
		Method:  method,
	}, nil
}
