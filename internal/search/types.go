package search

import (
	"github.com/linkhoard/linkhoard/internal/model"
)

// Filters narrows a result set by structured criteria. Every field is
// optional; an empty set skips that filter.
type Filters struct {
	Types       []string `json:"types,omitempty"`
	Collections []string `json:"collections,omitempty"`
	Tags        []string `json:"tags,omitempty"` // OR semantics
	Sources     []string `json:"sources,omitempty"`
	DatePreset  string   `json:"datePreset,omitempty"`
	DateFrom    *int64   `json:"dateFrom,omitempty"` // epoch ms
	DateTo      *int64   `json:"dateTo,omitempty"`
}

// Request is a lexical search call.
type Request struct {
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	SortBy  string  `json:"sortBy"` // relevance | date | title
}

// FieldMatch records which field of a bookmark matched the query.
type FieldMatch struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Result pairs a bookmark with its score. Lower scores are better matches;
// a pass-through (empty query) result scores 0.
type Result struct {
	Item    model.Bookmark `json:"item"`
	Score   float64        `json:"score"`
	Matches []FieldMatch   `json:"matches,omitempty"`
}

// Response is the paginated lexical search answer.
type Response struct {
	Results     []Result `json:"results"`
	Total       int      `json:"total"`
	Page        int      `json:"page"`
	TotalPages  int      `json:"totalPages"`
	Suggestions []string `json:"suggestions"`
	Query       string   `json:"query"`
	Filters     Filters  `json:"filters"`
}

// SemanticRequest is a similarity search call. Threshold defaults to 0.3
// when nil.
type SemanticRequest struct {
	Query     string   `json:"query"`
	Filters   Filters  `json:"filters"`
	Limit     int      `json:"limit"`
	Threshold *float64 `json:"threshold,omitempty"`
}

type SemanticResult struct {
	Item       model.Bookmark `json:"item"`
	Score      float64        `json:"score"` // 1 - similarity
	Similarity float64        `json:"similarity"`
}

// SemanticResponse reports results plus the embedding method actually used,
// so clients can flag degraded (bag-of-words) quality.
type SemanticResponse struct {
	Results []SemanticResult `json:"results"`
	Total   int              `json:"total"`
	Query   string           `json:"query"`
	Method  string           `json:"method"`
}

// Suggestion is one autocomplete entry for the suggestions endpoint.
type Suggestion struct {
	Type  string `json:"type"` // tag | type | date
	Value string `json:"value"`
	Label string `json:"label"`
}
