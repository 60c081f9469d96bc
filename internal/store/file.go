package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linkhoard/linkhoard/internal/model"
)

// FileStore keeps the whole collection in one JSON file, the flat-file
// variant of the bookmark store.
type FileStore struct {
	mu        sync.RWMutex
	path      string
	bookmarks []model.Bookmark
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read bookmarks file: %w", err)
	}

	if err := json.Unmarshal(data, &s.bookmarks); err != nil {
		return fmt.Errorf("decode bookmarks file: %w", err)
	}
	return nil
}

// persist writes the collection back to disk. Callers hold the write lock.
func (s *FileStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.Marshal(s.bookmarks)
	if err != nil {
		return fmt.Errorf("marshal bookmarks: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write bookmarks file: %w", err)
	}
	return nil
}

func (s *FileStore) LoadBookmarks(_ context.Context) ([]model.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out, nil
}

func (s *FileStore) SaveBookmark(_ context.Context, b model.Bookmark) (model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = time.Now().UnixMilli()
	}

	replaced := false
	for i := range s.bookmarks {
		if s.bookmarks[i].ID == b.ID {
			s.bookmarks[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		s.bookmarks = append(s.bookmarks, b)
	}

	if err := s.persist(); err != nil {
		return model.Bookmark{}, err
	}
	return b, nil
}

func (s *FileStore) DeleteBookmark(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookmarks {
		if s.bookmarks[i].ID == id {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("bookmark %s not found", id)
}

func (s *FileStore) Close() error {
	return nil
}
