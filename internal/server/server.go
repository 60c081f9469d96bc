package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linkhoard/linkhoard/internal/config"
	"github.com/linkhoard/linkhoard/internal/embedding"
	"github.com/linkhoard/linkhoard/internal/search"
	"github.com/linkhoard/linkhoard/internal/store"
)

type Server struct {
	store  store.Store
	search *search.Service
}

// New wires the store, embedding service and search service from config.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	st, err := store.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := embedding.NewProvider(ctx, cfg.Embedding)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init embedding provider: %w", err)
	}

	timeout := time.Duration(cfg.Embedding.TimeoutSeconds) * time.Second
	embedder := embedding.NewService(provider, cfg.Embedding.CacheSize, timeout)
	svc := search.NewService(st, embedder, cfg.Embedding.Concurrency)

	return &Server{
		store:  st,
		search: svc,
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/search", s.Search)
	api.POST("/semantic-search", s.SemanticSearch)
	api.GET("/search/suggestions", s.Suggestions)
	api.POST("/embeddings/generate", s.GenerateEmbeddings)

	api.GET("/bookmarks", s.ListBookmarks)
	api.POST("/bookmarks", s.CreateBookmark)
	api.DELETE("/bookmarks/:id", s.DeleteBookmark)

	return r
}

// Close releases the store.
func (s *Server) Close() error {
	return s.store.Close()
}
