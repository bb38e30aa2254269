package matcher

import (
	"context"
	"sync"

	"github.com/go-pkgz/lgr"
)

// Cache holds keyword embeddings for one scanner instance. Entries live for the
// process lifetime unless cleared; size is bounded by the number of distinct
// semantic keywords configured. Safe for concurrent use so scanners running in
// the same process can share a single instance.
type Cache struct {
	embedder Embedder

	mu        sync.RWMutex
	vectors   map[string][]float32
	available bool
}

// NewCache creates an empty embedding cache on top of the given embedder
func NewCache(embedder Embedder) *Cache {
	return &Cache{embedder: embedder, vectors: map[string][]float32{}, available: true}
}

// Update computes and stores embeddings for texts not already cached.
// A failed attempt marks the cache unavailable until the next successful
// update or an explicit Clear.
func (c *Cache) Update(ctx context.Context, texts []string) {
	c.mu.RLock()
	var missing []string
	for _, t := range texts {
		if _, ok := c.vectors[t]; !ok {
			missing = append(missing, t)
		}
	}
	c.mu.RUnlock()

	if len(missing) == 0 {
		return
	}

	vectors, err := c.embedder.Embed(ctx, missing)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil || len(vectors) != len(missing) {
		if err != nil {
			lgr.Printf("[WARN] embedding backend unavailable: %v", err)
		}
		c.available = false
		return
	}
	for i, t := range missing {
		c.vectors[t] = vectors[i]
	}
	c.available = true
}

// Get returns the cached vector for a text, or nil if not cached
func (c *Cache) Get(text string) []float32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vectors[text]
}

// Available reports whether the last embedding attempt succeeded
func (c *Cache) Available() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.available
}

// Clear drops all cached vectors and resets availability
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vectors = map[string][]float32{}
	c.available = true
}
