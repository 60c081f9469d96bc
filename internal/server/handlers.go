package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/linkhoard/linkhoard/internal/model"
	"github.com/linkhoard/linkhoard/internal/search"
)

func (s *Server) Search(c *gin.Context) {
	var req search.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	resp, err := s.search.Search(c.Request.Context(), req)
	if err != nil {
		log.Printf("Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) SemanticSearch(c *gin.Context) {
	var req search.SemanticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	resp, err := s.search.SemanticSearch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Semantic search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) Suggestions(c *gin.Context) {
	suggestions, err := s.search.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("Suggestions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (s *Server) GenerateEmbeddings(c *gin.Context) {
	processed, total, cacheSize, err := s.search.WarmEmbeddings(c.Request.Context())
	if err != nil {
		log.Printf("Embedding warmup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"processed": processed,
		"total":     total,
		"cacheSize": cacheSize,
	})
}

func (s *Server) ListBookmarks(c *gin.Context) {
	bookmarks, err := s.store.LoadBookmarks(c.Request.Context())
	if err != nil {
		log.Printf("List bookmarks failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks, "total": len(bookmarks)})
}

func (s *Server) CreateBookmark(c *gin.Context) {
	var b model.Bookmark
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	saved, err := s.store.SaveBookmark(c.Request.Context(), b)
	if err != nil {
		log.Printf("Save bookmark failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (s *Server) DeleteBookmark(c *gin.Context) {
	if err := s.store.DeleteBookmark(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
