package embedding

import (
	"context"
)

// Dimensions is the vector length produced by both the reference embedding
// models and the local fallback, so the two are directly comparable.
const Dimensions = 384

// Provider converts text into an embedding vector via an external API.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Name() string
}
