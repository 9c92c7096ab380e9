package pathfind

import (
	"slices"
	"sync"

	"github.com/zyedidia/generic/cache"

	"github.com/lixenwraith/gridpath/core"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/search"
)

// cacheKey identifies a search by grid identity, grids are immutable after build
type cacheKey struct {
	grid   *grid.Grid
	alg    search.Algorithm
	origin core.Point
	goal   core.Point
}

// PathCache memoises completed search results with LRU eviction
// Safe for concurrent use
type PathCache struct {
	mu       sync.Mutex
	lru      *cache.Cache[cacheKey, search.Result]
	capacity int

	hits   int
	misses int
}

// NewPathCache creates a cache holding up to capacity results
func NewPathCache(capacity int) *PathCache {
	if capacity < 1 {
		capacity = 1
	}
	return &PathCache{
		lru:      cache.New[cacheKey, search.Result](capacity),
		capacity: capacity,
	}
}

// Lookup returns a copy of the cached result for the search, if any
func (c *PathCache) Lookup(g *grid.Grid, alg search.Algorithm, origin, goal core.Point) (search.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.lru.Get(cacheKey{grid: g, alg: alg, origin: origin, goal: goal})
	if !ok {
		c.misses++
		return search.Result{}, false
	}
	c.hits++
	return cloneResult(r), true
}

// Store records a terminal result, aborted runs are not cached
func (c *PathCache) Store(g *grid.Grid, alg search.Algorithm, origin, goal core.Point, r search.Result) {
	if r.Status != search.Found && r.Status != search.NoPath {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Put(cacheKey{grid: g, alg: alg, origin: origin, goal: goal}, cloneResult(r))
}

// Invalidate drops every cached result
func (c *PathCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru = cache.New[cacheKey, search.Result](c.capacity)
}

// Len returns the number of cached results
func (c *PathCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Size()
}

// Stats returns lookup hit and miss counts since creation
func (c *PathCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// cloneResult detaches slices so callers own what they receive
func cloneResult(r search.Result) search.Result {
	r.Path = slices.Clone(r.Path)
	r.Closed = slices.Clone(r.Closed)
	return r
}
