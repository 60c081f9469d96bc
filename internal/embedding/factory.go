package embedding

import (
	"context"
	"fmt"
	"strings"

	"github.com/linkhoard/linkhoard/internal/config"
)

// NewProvider builds the embedding provider named by the config. A nil
// provider (provider "" or "none") means the service runs fallback-only.
func NewProvider(ctx context.Context, cfg config.EmbeddingConfig) (Provider, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "", "none":
		return nil, nil

	case "openai":
		return NewOpenAIProvider(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model)

	case "ollama":
		// Ollama speaks the OpenAI embeddings API under /v1. The key is
		// ignored by Ollama but required by the client config.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		p := NewOpenAIProvider(apiKey, cfg.Model, baseURL)
		p.name = "ollama"
		return p, nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}
