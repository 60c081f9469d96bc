package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/linkhoard/linkhoard/internal/model"
)

const maxQuerySuggestions = 10

// Suggest matches a partial query against known tags, bookmark type names
// and date preset names, in that order, capped at ten entries.
func (s *Service) Suggest(ctx context.Context, q string) ([]Suggestion, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return []Suggestion{}, nil
	}

	bookmarks, err := s.store.LoadBookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	suggestions := []Suggestion{}
	seen := map[string]bool{}
	for _, b := range bookmarks {
		for _, tag := range b.Tags {
			if seen[tag] || !strings.Contains(strings.ToLower(tag), q) {
				continue
			}
			seen[tag] = true
			suggestions = append(suggestions, Suggestion{
				Type:  "tag",
				Value: tag,
				Label: fmt.Sprintf("#%s", tag),
			})
		}
	}

	for _, t := range model.Types {
		if strings.Contains(string(t), q) {
			suggestions = append(suggestions, Suggestion{
				Type:  "type",
				Value: string(t),
				Label: fmt.Sprintf("type:%s", t),
			})
		}
	}

	for _, preset := range DatePresetNames {
		if strings.Contains(preset, q) {
			suggestions = append(suggestions, Suggestion{
				Type:  "date",
				Value: preset,
				Label: fmt.Sprintf("date:%s", preset),
			})
		}
	}

	if len(suggestions) > maxQuerySuggestions {
		suggestions = suggestions[:maxQuerySuggestions]
	}
	return suggestions, nil
}
