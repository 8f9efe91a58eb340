package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/trottparts/garage-api/internal/domain"
)

// partCache provides an in-memory LRU cache for part lookups with
// time-based expiration. Installation flows resolve the same parts
// repeatedly (preview, then record), so caching saves a round trip.
type partCache struct {
	lru *expirable.LRU[string, *domain.Part]
}

func newPartCache(size int, ttl time.Duration) *partCache {
	return &partCache{
		lru: expirable.NewLRU[string, *domain.Part](size, nil, ttl),
	}
}

// Get retrieves a part from the cache.
func (c *partCache) Get(partID string) (*domain.Part, bool) {
	return c.lru.Get(partID)
}

// Set stores a part in the cache.
func (c *partCache) Set(part *domain.Part) {
	c.lru.Add(part.ID, part)
}

// Invalidate removes a part from the cache. Called on admin updates.
func (c *partCache) Invalidate(partID string) {
	c.lru.Remove(partID)
}
