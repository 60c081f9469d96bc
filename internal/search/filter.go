package search

import (
	"time"

	"github.com/linkhoard/linkhoard/internal/model"
)

// datePresets maps preset names to days back from now. The cutoff is the
// start of that day in local time.
var datePresets = map[string]int{
	"today":     0,
	"yesterday": 1,
	"week":      7,
	"month":     30,
	"quarter":   90,
	"year":      365,
}

// DatePresetNames lists the presets in display order for suggestions.
var DatePresetNames = []string{"today", "yesterday", "week", "month", "quarter", "year"}

// PresetCutoff resolves a named date preset to an epoch-ms cutoff relative
// to now.
func PresetCutoff(preset string, now time.Time) (int64, bool) {
	days, ok := datePresets[preset]
	if !ok {
		return 0, false
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -days).UnixMilli(), true
}

// FilterResults applies the full filter pipeline to a scored result set.
// Each filter is a set intersection, so application order does not change
// the outcome.
func FilterResults(results []Result, f Filters, now time.Time) []Result {
	out := results[:0:0]
	for _, r := range results {
		if f.matchesTaxonomy(r.Item) && f.matchesDates(r.Item, now) && f.matchesSource(r.Item) {
			out = append(out, r)
		}
	}
	return out
}

// FilterCandidates applies only the type/collection/tag filters; the
// semantic path does no date or source pre-filtering.
func FilterCandidates(bookmarks []model.Bookmark, f Filters) []model.Bookmark {
	out := bookmarks[:0:0]
	for _, b := range bookmarks {
		if f.matchesTaxonomy(b) {
			out = append(out, b)
		}
	}
	return out
}

func (f Filters) matchesTaxonomy(b model.Bookmark) bool {
	if len(f.Types) > 0 && !contains(f.Types, string(model.Classify(b))) {
		return false
	}
	if len(f.Collections) > 0 && !contains(f.Collections, b.CollectionID) {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(b.Tags, f.Tags) {
		return false
	}
	return true
}

func (f Filters) matchesDates(b model.Bookmark, now time.Time) bool {
	// Preset takes precedence over explicit bounds.
	if cutoff, ok := PresetCutoff(f.DatePreset, now); ok {
		return b.CreatedAt >= cutoff
	}
	if f.DateFrom != nil && b.CreatedAt < *f.DateFrom {
		return false
	}
	if f.DateTo != nil && b.CreatedAt > *f.DateTo {
		return false
	}
	return true
}

func (f Filters) matchesSource(b model.Bookmark) bool {
	if len(f.Sources) == 0 {
		return true
	}
	return contains(f.Sources, b.AppSource())
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func hasAnyTag(tags, wanted []string) bool {
	for _, t := range tags {
		if contains(wanted, t) {
			return true
		}
	}
	return false
}
