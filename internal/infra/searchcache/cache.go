// Package searchcache provides LRU caching for launcher search results.
package searchcache

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/loomos/loomshell/internal/domain"
)

// Ensure Cache implements domain.SearchCache.
var _ domain.SearchCache = (*Cache)(nil)

// normalize folds case and surrounding space of the query, which
// never change search results.
func normalize(k domain.SearchKey) domain.SearchKey {
	k.Query = strings.ToLower(strings.TrimSpace(k.Query))
	return k
}

// Stats holds cache statistics.
type Stats struct {
	Size    int
	MaxSize int
	Hits    int64
	Misses  int64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache maps search keys to result lists.
type Cache struct {
	cache   *lru.Cache[domain.SearchKey, []*domain.AppDefinition]
	maxSize int
	hits    int64
	misses  int64
	mu      sync.Mutex
}

// New creates a cache holding at most maxSize searches.
func New(maxSize int) (*Cache, error) {
	if maxSize <= 0 {
		maxSize = domain.DefaultCacheSize
	}
	c, err := lru.New[domain.SearchKey, []*domain.AppDefinition](maxSize)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}
	return &Cache{cache: c, maxSize: maxSize}, nil
}

// Get returns a copy of the cached results for key.
func (c *Cache) Get(key domain.SearchKey) ([]*domain.AppDefinition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	apps, ok := c.cache.Get(normalize(key))
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return cloneList(apps), true
}

// Put stores results for key.
func (c *Cache) Put(key domain.SearchKey, apps []*domain.AppDefinition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(normalize(key), cloneList(apps))
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Size:    c.cache.Len(),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

func cloneList(apps []*domain.AppDefinition) []*domain.AppDefinition {
	out := make([]*domain.AppDefinition, len(apps))
	copy(out, apps)
	return out
}
