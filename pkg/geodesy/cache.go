package geodesy

import (
	"container/list"
	"sync"

	"github.com/rs/zerolog"
)

// Shape is a boundable value with an identity hash, the key type of
// BoundsCache.
type Shape[C Coordinates[C]] interface {
	Boundable[C]
	Hashable
}

// BoundsCache memoizes bounding boxes keyed by shape identity hash.
//
// Nothing in the package consults a cache on its own; callers that compute
// the box of the same large shape repeatedly create one and pass it where it
// is needed. Entries are never invalidated automatically: shapes are
// immutable, so a hash always maps to the same box. Use CacheOptions.MaxEntries
// to bound memory, or Remove and Clear to evict explicitly.
//
// A BoundsCache is safe for concurrent use.
//
// Example:
//
//	cache := geodesy.NewBoundsCache[geodesy.Coordinate2D](geodesy.DefaultCacheOptions())
//	box, ok := cache.Get(coastline)
type BoundsCache[C Coordinates[C]] struct {
	maxEntries int
	entries    map[uint64]*boundsEntry[C]
	lru        *list.List // most recent at front
	log        zerolog.Logger

	hits      uint64
	misses    uint64
	evictions uint64

	mu sync.RWMutex
}

type boundsEntry[C Coordinates[C]] struct {
	key     uint64
	box     BoundingBox[C]
	element *list.Element
}

// NewBoundsCache creates an empty cache.
func NewBoundsCache[C Coordinates[C]](opts CacheOptions) *BoundsCache[C] {
	return &BoundsCache[C]{
		maxEntries: max(opts.MaxEntries, 0),
		entries:    make(map[uint64]*boundsEntry[C]),
		lru:        list.New(),
		log:        loggerOrNop(opts.Logger).With().Str("component", "bounds_cache").Str("crs", string(crsOf[C]().ID)).Logger(),
	}
}

// Get returns the bounding box of shape, computing and storing it on a miss.
// The boolean is false when the shape has no points; such results are not
// cached.
func (c *BoundsCache[C]) Get(shape Shape[C]) (BoundingBox[C], bool) {
	key := shape.Hash()

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.hits++
		c.lru.MoveToFront(entry.element)
		box := entry.box
		c.mu.Unlock()
		return box, true
	}
	c.mu.Unlock()

	box, ok := shape.BoundingBox()

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()

	if !ok {
		return BoundingBox[C]{}, false
	}

	c.Add(key, box)
	return box, true
}

// Add stores box under key, replacing any previous entry.
func (c *BoundsCache[C]) Add(key uint64, box BoundingBox[C]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		if entry.box != box {
			entry.box = box
		}
		c.lru.MoveToFront(entry.element)
		return
	}

	if c.maxEntries > 0 {
		for c.lru.Len() >= c.maxEntries {
			c.evictLRU()
		}
	}

	entry := &boundsEntry[C]{key: key, box: box}
	entry.element = c.lru.PushFront(entry)
	c.entries[key] = entry

	c.log.Debug().Uint64("key", key).Int("entries", len(c.entries)).Msg("Cached bounding box")
}

// evictLRU removes the least recently used entry.
// Must be called with c.mu locked.
func (c *BoundsCache[C]) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	entry := elem.Value.(*boundsEntry[C])
	c.lru.Remove(elem)
	delete(c.entries, entry.key)
	c.evictions++

	c.log.Debug().Uint64("key", entry.key).Msg("Evicted bounding box")
}

// Lookup returns the cached box for shape without computing it.
func (c *BoundsCache[C]) Lookup(shape Hashable) (BoundingBox[C], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, ok := c.entries[shape.Hash()]; ok {
		return entry.box, true
	}
	return BoundingBox[C]{}, false
}

// Remove evicts the entry of shape, if any.
func (c *BoundsCache[C]) Remove(shape Hashable) {
	key := shape.Hash()

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.lru.Remove(entry.element)
		delete(c.entries, key)
	}
}

// Clear removes every entry. Hit and miss counters are kept.
func (c *BoundsCache[C]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[uint64]*boundsEntry[C])
	c.lru.Init()

	c.log.Debug().Int("removed", n).Msg("Cleared bounds cache")
}

// Len returns the number of cached boxes.
func (c *BoundsCache[C]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *BoundsCache[C]) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Entries:    len(c.entries),
		MaxEntries: c.maxEntries,
		Hits:       c.hits,
		Misses:     c.misses,
		Evictions:  c.evictions,
	}
}

// CacheStats holds cache counters.
type CacheStats struct {
	Entries    int    // Boxes currently cached
	MaxEntries int    // Capacity, 0 for unbounded
	Hits       uint64 // Get calls served from the cache
	Misses     uint64 // Get calls that computed the box
	Evictions  uint64 // Entries dropped by the LRU policy
}

// HitRatio returns Hits / (Hits + Misses), or 0 before the first Get.
func (s CacheStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
