package tuicore

import "sync"

// flexItemsPool reuses the []flexItem scratch slice the flex distribution
// passes build per stack container, matching the donor's sync.Pool idiom
// for hot-path allocation reuse (stack.go/grid.go's component pools).
var flexItemsPool = sync.Pool{
	New: func() any { return make([]flexItem, 0, 16) },
}

// getFlexItems returns a zero-length []flexItem with capacity for at least
// n items, reused from the pool when possible.
func getFlexItems(n int) []flexItem {
	items := flexItemsPool.Get().([]flexItem)
	if cap(items) < n {
		items = make([]flexItem, 0, n)
	}
	return items[:0]
}

// putFlexItems returns items to the pool for reuse by the next layout pass.
func putFlexItems(items []flexItem) {
	flexItemsPool.Put(items[:0]) //nolint:staticcheck // intentional zero-length retain-capacity idiom
}

// glyphRepeatCache memoizes the rendered string for (rune, count) pairs
// used by fillRect-as-text call sites (border edges, divider lines,
// progress-bar fill segments) so a 1000-cell horizontal rule doesn't
// reallocate a fresh string every frame. Grounded on the donor's arena.go
// flat-byte-arena allocation-avoidance technique, adapted from arena
// slices to a map capped at glyphRepeatCapacity entries with no LRU order:
// when the cap is reached the whole map is emptied (border/divider/bar
// widths repeat heavily across a frame but the distinct-width set is small).
type glyphRepeatCache struct {
	mu      sync.Mutex
	entries map[glyphRepeatKey]string
}

type glyphRepeatKey struct {
	r     rune
	count int
}

// glyphRepeatCapacity is the maximum number of memoized (rune, count) pairs.
const glyphRepeatCapacity = 256

var repeatCache = &glyphRepeatCache{entries: make(map[glyphRepeatKey]string)}

// repeat returns a string of r repeated count times, memoized globally. At
// most glyphRepeatCapacity entries are kept; storing a new entry into a
// full cache first empties it.
func (c *glyphRepeatCache) repeat(r rune, count int) string {
	if count <= 0 {
		return ""
	}
	key := glyphRepeatKey{r: r, count: count}
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.entries[key]; ok {
		return s
	}
	s := string(r)
	for i := 1; i < count; i++ {
		s += string(r)
	}
	if len(c.entries) >= glyphRepeatCapacity {
		clear(c.entries)
	}
	c.entries[key] = s
	return s
}

// repeatGlyph is the package-level convenience wrapper over repeatCache.
func repeatGlyph(r rune, count int) string {
	return repeatCache.repeat(r, count)
}
