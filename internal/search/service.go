package search

import (
	"context"
	"fmt"
	"time"

	"github.com/linkhoard/linkhoard/internal/embedding"
	"github.com/linkhoard/linkhoard/internal/model"
	"github.com/linkhoard/linkhoard/internal/store"
)

const (
	DefaultPageSize = 20

	// DefaultEmbedConcurrency caps in-flight provider calls during the
	// semantic fan-out.
	DefaultEmbedConcurrency = 8
)

// Service owns the search pipeline: it loads a bookmark snapshot from the
// store, ranks it lexically or semantically, then filters, sorts and
// paginates. All mutable state (lexical snapshot, embedding cache) lives in
// injected components, not globals.
type Service struct {
	store       store.Store
	embedder    *embedding.Service
	index       *LexicalIndex
	concurrency int
	now         func() time.Time
}

func NewService(st store.Store, embedder *embedding.Service, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = DefaultEmbedConcurrency
	}
	return &Service{
		store:       st,
		embedder:    embedder,
		index:       NewLexicalIndex(),
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Search runs the lexical pipeline: rank, filter, sort, paginate, suggest.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	bookmarks, err := s.store.LoadBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	ranked := s.index.Search(bookmarks, req.Query)
	filtered := FilterResults(ranked, req.Filters, s.now())
	SortResults(filtered, req.SortBy)

	suggestions := TagSuggestions(filtered)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	pageResults, totalPages := Paginate(filtered, page, limit)

	return &Response{
		Results:     pageResults,
		Total:       len(filtered),
		Page:        page,
		TotalPages:  totalPages,
		Suggestions: suggestions,
		Query:       req.Query,
		Filters:     req.Filters,
	}, nil
}

// WarmEmbeddings pre-populates the embedding cache from every bookmark's
// warmup text, skipping empty ones.
func (s *Service) WarmEmbeddings(ctx context.Context) (processed, total, cacheSize int, err error) {
	bookmarks, err := s.store.LoadBookmarks(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("load bookmarks: %w", err)
	}

	for _, b := range bookmarks {
		text := model.WarmupText(b)
		if text == "" {
			continue
		}
		s.embedder.Embed(ctx, text)
		processed++
	}
	return processed, len(bookmarks), s.embedder.CacheSize(), nil
}
