package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/linkhoard/linkhoard/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore persists bookmarks in a single SQLite database. Tags and
// metadata are stored as JSON columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, notes, description, tags, collection_id, metadata, created_at, url, type
		FROM bookmarks
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var b model.Bookmark
		var tagsJSON, metadataJSON string
		if err := rows.Scan(&b.ID, &b.Title, &b.Notes, &b.Description, &tagsJSON,
			&b.CollectionID, &metadataJSON, &b.CreatedAt, &b.URL, &b.Type); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &b.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %s: %w", b.ID, err)
		}
		if err := json.Unmarshal([]byte(metadataJSON), &b.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata for %s: %w", b.ID, err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

func (s *SQLiteStore) SaveBookmark(ctx context.Context, b model.Bookmark) (model.Bookmark, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = time.Now().UnixMilli()
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Metadata == nil {
		b.Metadata = map[string]any{}
	}

	tagsJSON, err := json.Marshal(b.Tags)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("marshal tags: %w", err)
	}
	metadataJSON, err := json.Marshal(b.Metadata)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("marshal metadata: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, title, notes, description, tags, collection_id, metadata, created_at, url, type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			notes = excluded.notes,
			description = excluded.description,
			tags = excluded.tags,
			collection_id = excluded.collection_id,
			metadata = excluded.metadata,
			created_at = excluded.created_at,
			url = excluded.url,
			type = excluded.type`,
		b.ID, b.Title, b.Notes, b.Description, string(tagsJSON),
		b.CollectionID, string(metadataJSON), b.CreatedAt, b.URL, b.Type)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("upsert bookmark: %w", err)
	}
	return b, nil
}

func (s *SQLiteStore) DeleteBookmark(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bookmark %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
