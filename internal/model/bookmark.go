package model

import (
	"net/url"
	"strings"
)

// BookmarkType is derived per request from the bookmark's url and content,
// never stored alongside the record.
type BookmarkType string

const (
	TypeNote    BookmarkType = "note"
	TypeTweet   BookmarkType = "tweet"
	TypeYouTube BookmarkType = "youtube"
	TypeLink    BookmarkType = "link"
)

// Types lists every bookmark type in classification order.
var Types = []BookmarkType{TypeNote, TypeTweet, TypeYouTube, TypeLink}

// Bookmark is a single record from the bookmark store. The search core
// treats it as a read-only snapshot.
type Bookmark struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Notes        string         `json:"notes"`
	Description  string         `json:"description"`
	Tags         []string       `json:"tags"`
	CollectionID string         `json:"collectionId,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    int64          `json:"createdAt"` // epoch milliseconds
	URL          string         `json:"url,omitempty"`
	Type         string         `json:"type,omitempty"`
}

// OCRText returns metadata.ocrText when present.
func (b Bookmark) OCRText() string {
	if b.Metadata == nil {
		return ""
	}
	if s, ok := b.Metadata["ocrText"].(string); ok {
		return s
	}
	return ""
}

// AppSource returns metadata.appSource when present.
func (b Bookmark) AppSource() string {
	if b.Metadata == nil {
		return ""
	}
	if s, ok := b.Metadata["appSource"].(string); ok {
		return s
	}
	return ""
}

// Classify derives the bookmark type. Note detection runs first because a
// note may carry no url at all.
func Classify(b Bookmark) BookmarkType {
	if b.Type == string(TypeNote) || strings.HasPrefix(b.URL, "note://") {
		return TypeNote
	}
	if b.URL == "" {
		if b.Notes != "" || b.Title != "" {
			return TypeNote
		}
		return TypeLink
	}

	switch hostOf(b.URL) {
	case "twitter.com", "x.com":
		return TypeTweet
	case "youtube.com", "youtu.be":
		return TypeYouTube
	}
	return TypeLink
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// SearchableText concatenates every searched field of a bookmark. Semantic
// search embeds this; an empty result means the bookmark has no content to
// compare against.
func SearchableText(b Bookmark) string {
	parts := []string{b.Title, b.Notes, b.Description, strings.Join(b.Tags, " "), b.OCRText()}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// WarmupText is the shorter concatenation used when pre-warming the
// embedding cache.
func WarmupText(b Bookmark) string {
	parts := []string{b.Title, b.Notes, strings.Join(b.Tags, " ")}
	return strings.TrimSpace(strings.Join(parts, " "))
}
