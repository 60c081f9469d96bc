package search

import (
	"context"
	"sync/atomic"

	"github.com/linkhoard/linkhoard/internal/model"
)

type mockStore struct {
	bookmarks []model.Bookmark
	err       error
}

func (m *mockStore) LoadBookmarks(_ context.Context) ([]model.Bookmark, error) {
	return m.bookmarks, m.err
}

func (m *mockStore) SaveBookmark(_ context.Context, b model.Bookmark) (model.Bookmark, error) {
	m.bookmarks = append(m.bookmarks, b)
	return b, nil
}

func (m *mockStore) DeleteBookmark(_ context.Context, id string) error {
	for i := range m.bookmarks {
		if m.bookmarks[i].ID == id {
			m.bookmarks = append(m.bookmarks[:i], m.bookmarks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStore) Close() error { return nil }

// countingProvider counts provider calls so tests can assert that empty
// candidates never reach the provider.
type countingProvider struct {
	calls  atomic.Int64
	vector []float32
}

func (p *countingProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	p.calls.Add(1)
	return p.vector, nil
}

func (p *countingProvider) Name() string { return "openai" }
