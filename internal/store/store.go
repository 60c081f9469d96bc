package store

import (
	"context"
	"fmt"

	"github.com/linkhoard/linkhoard/internal/config"
	"github.com/linkhoard/linkhoard/internal/model"
)

// Store supplies bookmark records. The search core only reads full
// snapshots via LoadBookmarks; Save and Delete back the thin CRUD surface.
type Store interface {
	LoadBookmarks(ctx context.Context) ([]model.Bookmark, error)
	SaveBookmark(ctx context.Context, b model.Bookmark) (model.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error
	Close() error
}

// Open builds the store backend named by the config.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		path := cfg.Path
		if path == "" {
			path = "data/bookmarks.json"
		}
		return NewFileStore(path)
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "data/bookmarks.db"
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Backend)
	}
}
