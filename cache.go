package tuicore

// MeasureCache memoizes intrinsic measurement results keyed on
// (node identity -> axis -> maxW -> maxH), using nested integer-keyed maps
// rather than a single composite string key — the canonical form decided in
// §9 Open Questions, grounded on the donor's arena.go identity scheme. Zero
// value is ready to use.
type MeasureCache struct {
	byRef map[Ref]map[Axis]map[int]map[int]Size
}

// NewMeasureCache returns an empty cache.
func NewMeasureCache() *MeasureCache {
	return &MeasureCache{byRef: make(map[Ref]map[Axis]map[int]map[int]Size)}
}

// Get looks up a previously stored measurement. ok is false on any miss,
// including when ref is a member of dirty (a dirty node is treated as
// absent regardless of what's stored, per §4.3).
func (c *MeasureCache) Get(ref Ref, axis Axis, maxW, maxH int, dirty DirtySet) (Size, bool) {
	if dirty.Contains(ref) {
		return Size{}, false
	}
	byAxis, ok := c.byRef[ref]
	if !ok {
		return Size{}, false
	}
	byW, ok := byAxis[axis]
	if !ok {
		return Size{}, false
	}
	byH, ok := byW[maxW]
	if !ok {
		return Size{}, false
	}
	sz, ok := byH[maxH]
	return sz, ok
}

// Put stores a measurement result.
func (c *MeasureCache) Put(ref Ref, axis Axis, maxW, maxH int, sz Size) {
	if c.byRef == nil {
		c.byRef = make(map[Ref]map[Axis]map[int]map[int]Size)
	}
	byAxis, ok := c.byRef[ref]
	if !ok {
		byAxis = make(map[Axis]map[int]map[int]Size)
		c.byRef[ref] = byAxis
	}
	byW, ok := byAxis[axis]
	if !ok {
		byW = make(map[int]map[int]Size)
		byAxis[axis] = byW
	}
	byH, ok := byW[maxW]
	if !ok {
		byH = make(map[int]Size)
		byW[maxW] = byH
	}
	byH[maxH] = sz
}

// Invalidate drops every cached measurement for ref (called when a node's
// subtree is rebuilt under a new Ref, or explicitly evicted by the caller).
func (c *MeasureCache) Invalidate(ref Ref) {
	delete(c.byRef, ref)
}

// layoutKey is the full key tuple a LayoutCache entry is addressed by:
// axis, the two incoming max constraints, an optional forced size (used
// when a parent pins a child's size exactly, e.g. flex-grow results), and
// the node's resolved absolute position.
type layoutKey struct {
	axis               Axis
	maxW, maxH         int
	forcedW, forcedH   int
	x, y               int
}

// LayoutCache memoizes full positioned-rect results keyed on
// (node identity -> axis -> maxW -> maxH -> forcedW -> forcedH -> x -> y),
// the nested-map chain mandated by §9. Distinct from MeasureCache because a
// layout result additionally depends on final position and any forced size,
// neither of which affects intrinsic measurement.
type LayoutCache struct {
	byRef map[Ref]map[Axis]map[int]map[int]map[int]map[int]map[int]map[int]Rect
}

// NewLayoutCache returns an empty cache.
func NewLayoutCache() *LayoutCache {
	return &LayoutCache{byRef: make(map[Ref]map[Axis]map[int]map[int]map[int]map[int]map[int]map[int]Rect)}
}

// Get looks up a previously computed layout rect, honoring dirty the same
// way MeasureCache.Get does.
func (c *LayoutCache) Get(ref Ref, k layoutKey, dirty DirtySet) (Rect, bool) {
	if dirty.Contains(ref) {
		return Rect{}, false
	}
	m1, ok := c.byRef[ref]
	if !ok {
		return Rect{}, false
	}
	m2, ok := m1[k.axis]
	if !ok {
		return Rect{}, false
	}
	m3, ok := m2[k.maxW]
	if !ok {
		return Rect{}, false
	}
	m4, ok := m3[k.maxH]
	if !ok {
		return Rect{}, false
	}
	m5, ok := m4[k.forcedW]
	if !ok {
		return Rect{}, false
	}
	m6, ok := m5[k.forcedH]
	if !ok {
		return Rect{}, false
	}
	m7, ok := m6[k.x]
	if !ok {
		return Rect{}, false
	}
	rect, ok := m7[k.y]
	return rect, ok
}

// Put stores a computed layout rect.
func (c *LayoutCache) Put(ref Ref, k layoutKey, rect Rect) {
	m1, ok := c.byRef[ref]
	if !ok {
		m1 = make(map[Axis]map[int]map[int]map[int]map[int]map[int]map[int]Rect)
		c.byRef[ref] = m1
	}
	m2, ok := m1[k.axis]
	if !ok {
		m2 = make(map[int]map[int]map[int]map[int]map[int]map[int]Rect)
		m1[k.axis] = m2
	}
	m3, ok := m2[k.maxW]
	if !ok {
		m3 = make(map[int]map[int]map[int]map[int]map[int]Rect)
		m2[k.maxW] = m3
	}
	m4, ok := m3[k.maxH]
	if !ok {
		m4 = make(map[int]map[int]map[int]map[int]Rect)
		m3[k.maxH] = m4
	}
	m5, ok := m4[k.forcedW]
	if !ok {
		m5 = make(map[int]map[int]map[int]Rect)
		m4[k.forcedW] = m5
	}
	m6, ok := m5[k.forcedH]
	if !ok {
		m6 = make(map[int]map[int]Rect)
		m5[k.forcedH] = m6
	}
	m7, ok := m6[k.x]
	if !ok {
		m7 = make(map[int]Rect)
		m6[k.x] = m7
	}
	m7[k.y] = rect
}

// Invalidate drops every cached layout result for ref.
func (c *LayoutCache) Invalidate(ref Ref) {
	delete(c.byRef, ref)
}

// cacheScope lets layout push/pop a nested cache pair for content rendered
// in an isolated coordinate space (e.g. modal/overlay content, whose layout
// must not collide with the host tree's cache entries even when both trees
// contain structurally-identical nodes under different Refs — identity is
// already Ref-based so this mainly exists to scope dirty-set lookups per
// nesting level, matching the donor's layer.go push/pop stack discipline).
type cacheScope struct {
	measure []*MeasureCache
	layout  []*LayoutCache
}

func newCacheScope(root *MeasureCache, rootLayout *LayoutCache) *cacheScope {
	return &cacheScope{
		measure: []*MeasureCache{root},
		layout:  []*LayoutCache{rootLayout},
	}
}

func (s *cacheScope) push(m *MeasureCache, l *LayoutCache) {
	s.measure = append(s.measure, m)
	s.layout = append(s.layout, l)
}

func (s *cacheScope) pop() {
	s.measure = s.measure[:len(s.measure)-1]
	s.layout = s.layout[:len(s.layout)-1]
}

func (s *cacheScope) top() (*MeasureCache, *LayoutCache) {
	return s.measure[len(s.measure)-1], s.layout[len(s.layout)-1]
}
