package embedding

import (
	"context"
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// MethodFallback labels vectors produced by the local pseudo-embedding.
	MethodFallback = "fallback"

	// maxInputLen is the provider input limit; longer text is truncated
	// before the call.
	maxInputLen = 8000

	// cacheKeyLen keys the cache by a prefix of the text rather than a
	// full-content hash. Longer texts sharing a prefix collide; the
	// pre-warm endpoint relies on this exact keying, so it stays.
	cacheKeyLen = 100

	DefaultCacheSize = 10000
	DefaultTimeout   = 10 * time.Second
)

type cached struct {
	vec    []float32
	method string
}

// Service turns text into embedding vectors. It consults the cache first,
// then the configured provider, and finally the deterministic fallback; it
// never fails for non-empty input. Each Service owns its cache, so tests
// and callers construct isolated instances.
type Service struct {
	provider Provider
	cache    *lru.Cache[string, cached]
	timeout  time.Duration
}

func NewService(provider Provider, cacheSize int, timeout time.Duration) *Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cache, err := lru.New[string, cached](cacheSize)
	if err != nil {
		// Unreachable with a positive size.
		cache, _ = lru.New[string, cached](DefaultCacheSize)
	}
	return &Service{
		provider: provider,
		cache:    cache,
		timeout:  timeout,
	}
}

// Embed returns the vector for text and the method that produced it: the
// provider's name or "fallback". Provider errors are logged and recovered
// by falling through to the fallback vector.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, string) {
	if len(text) > maxInputLen {
		text = text[:maxInputLen]
	}

	key := cacheKey(text)
	if hit, ok := s.cache.Get(key); ok {
		return hit.vec, hit.method
	}

	if s.provider != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		vec, err := s.provider.Embed(callCtx, text)
		cancel()
		if err == nil && len(vec) > 0 {
			s.cache.Add(key, cached{vec: vec, method: s.provider.Name()})
			return vec, s.provider.Name()
		}
		log.Printf("embedding provider %s failed, using fallback: %v", s.provider.Name(), err)
	}

	vec := FallbackVector(text)
	s.cache.Add(key, cached{vec: vec, method: MethodFallback})
	return vec, MethodFallback
}

// Method reports the label callers should expect from Embed when the
// provider path is healthy.
func (s *Service) Method() string {
	if s.provider != nil {
		return s.provider.Name()
	}
	return MethodFallback
}

// CacheSize returns the number of cached vectors.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}

func cacheKey(text string) string {
	if len(text) > cacheKeyLen {
		return text[:cacheKeyLen]
	}
	return text
}
