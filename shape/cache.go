package shape

import "sync"

// defaultMemoCapacity bounds the shaping memo. When the limit is reached
// the memo is flushed wholesale; shaping is cheap enough that rebuilding
// beats bookkeeping an eviction order.
const defaultMemoCapacity = 512

// memoCache caches shaping results keyed by text, font list and scale.
// A single mutex guards the map; entries are immutable once stored.
type memoCache struct {
	mu      sync.Mutex
	entries map[memoKey][]Glyph
	cap     int

	hits   uint64
	misses uint64
}

func newMemoCache(capacity int) *memoCache {
	return &memoCache{
		entries: make(map[memoKey][]Glyph),
		cap:     capacity,
	}
}

// getOrCreate returns the cached glyphs for key, invoking create on a miss.
// The create function runs outside the lock so concurrent shaping of
// distinct strings does not serialize.
func (c *memoCache) getOrCreate(key memoKey, create func() []Glyph) []Glyph {
	c.mu.Lock()
	if glyphs, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return glyphs
	}
	c.misses++
	c.mu.Unlock()

	glyphs := create()

	c.mu.Lock()
	if len(c.entries) >= c.cap {
		c.entries = make(map[memoKey][]Glyph)
	}
	c.entries[key] = glyphs
	c.mu.Unlock()
	return glyphs
}

// Stats returns the cumulative hit and miss counts of the shaping memo.
func (c *memoCache) stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
