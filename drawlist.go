package tuicore

// DrawlistBuilder is the abstract primitive surface render.go emits to.
// Concrete backends (a recording list for tests, or the cellbuf/lipgloss
// backed builder in refbuilder.go) need only implement these four calls.
type DrawlistBuilder interface {
	// DrawText draws s starting at (x, y) in style, clipped to the current
	// clip rect. Wide runes consume two cells; callers are responsible for
	// pre-truncating to the available width (geom.go's truncateToWidth).
	DrawText(x, y int, s string, style Style)
	// FillRect fills rect with a single cell repeated, in style.
	FillRect(rect Rect, cell rune, style Style)
	// PushClip intersects the current clip with rect and pushes it.
	PushClip(rect Rect)
	// PopClip restores the clip in effect before the matching PushClip.
	PopClip()
}

// OpKind tags a recorded drawlist operation.
type OpKind uint8

const (
	OpDrawText OpKind = iota
	OpFillRect
	OpPushClip
	OpPopClip
)

// Op is one recorded drawlist primitive, as produced by RecordingBuilder.
type Op struct {
	Kind  OpKind
	X, Y  int
	Text  string
	Rect  Rect
	Cell  rune
	Style Style
}

// RecordingBuilder is a DrawlistBuilder that appends every call to a slice,
// used by tests and by any host that wants to inspect/diff the drawlist
// instead of rendering it directly.
type RecordingBuilder struct {
	Ops []Op
}

func (b *RecordingBuilder) DrawText(x, y int, s string, style Style) {
	b.Ops = append(b.Ops, Op{Kind: OpDrawText, X: x, Y: y, Text: s, Style: style})
}

func (b *RecordingBuilder) FillRect(rect Rect, cell rune, style Style) {
	b.Ops = append(b.Ops, Op{Kind: OpFillRect, Rect: rect, Cell: cell, Style: style})
}

func (b *RecordingBuilder) PushClip(rect Rect) {
	b.Ops = append(b.Ops, Op{Kind: OpPushClip, Rect: rect})
}

func (b *RecordingBuilder) PopClip() {
	b.Ops = append(b.Ops, Op{Kind: OpPopClip})
}

// clipStack tracks nested PushClip/PopClip regions during the render walk,
// using a null-sentinel entry to mark "no popClip needed" frames (the
// renderer pushes a sentinel rather than calling PushClip for nodes that
// don't introduce a new clip, so the pop side can unconditionally pop one
// stack entry per pushed node without branching on whether it clips).
type clipStack struct {
	rects []Rect
	real  []bool // true if the matching rects entry came from an actual PushClip
}

func newClipStack(root Rect) *clipStack {
	return &clipStack{rects: []Rect{root}, real: []bool{true}}
}

// pushClipped intersects rect with the current clip and pushes a real
// clip frame, returning the new effective clip.
func (c *clipStack) pushClipped(b DrawlistBuilder, rect Rect) Rect {
	effective := c.top().Intersect(rect)
	b.PushClip(effective)
	c.rects = append(c.rects, effective)
	c.real = append(c.real, true)
	return effective
}

// pushSentinel pushes a no-op frame (the current clip unchanged) so the
// walk's pop side can treat every visited node uniformly.
func (c *clipStack) pushSentinel() {
	c.rects = append(c.rects, c.top())
	c.real = append(c.real, false)
}

// pop pops one frame, calling PopClip on b only if it was a real push.
func (c *clipStack) pop(b DrawlistBuilder) {
	n := len(c.rects) - 1
	if c.real[n] {
		b.PopClip()
	}
	c.rects = c.rects[:n]
	c.real = c.real[:n]
}

func (c *clipStack) top() Rect {
	return c.rects[len(c.rects)-1]
}
