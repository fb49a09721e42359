package tuicore

// RuntimeInstance mirrors the LayoutTree shape but carries the mutable,
// per-widget runtime state the renderer needs that layout itself never
// touches: scroll position, focus, and open/collapsed UI state. Walked in
// lockstep with the LayoutTree during rendering (§4.2), never during
// layout. Application state/event handling that produces these values is
// out of scope (§1) — this is just the read side the renderer consumes.
type RuntimeInstance struct {
	ScrollX, ScrollY int
	Focused          bool
	Collapsed        bool
	Selected         int // selection cursor, for lists/trees/tables
	Children         []*RuntimeInstance
}

// runtimeFor returns the i'th child runtime instance, or the zero value if
// ri is nil or has fewer children than i — keeps the parallel-stack walk in
// render.go from needing a nil check at every call site.
func runtimeFor(ri *RuntimeInstance, i int) *RuntimeInstance {
	if ri == nil || i >= len(ri.Children) {
		return &RuntimeInstance{}
	}
	return ri.Children[i]
}

// FocusState names which node currently holds keyboard focus, by stable
// VNode.ID. Focus management itself is out of scope (§1); the renderer only
// reads this to decide whether to draw a focus ring/cursor.
type FocusState struct {
	FocusedID string
}

// IsFocused reports whether id currently holds focus.
func (f FocusState) IsFocused(id string) bool {
	return id != "" && id == f.FocusedID
}

// CursorInfo is the resolved screen cursor the host terminal should
// position its hardware cursor at, or Visible=false to hide it — the
// renderer's *output* (§6's ResolvedCursor), not to be confused with
// CursorState below, which is an *input*.
type CursorInfo struct {
	X, Y    int
	Visible bool
}

// CursorState carries the reconciler's per-instance caret position
// (§6 "cursorByInstanceId: map<instanceId, graphemeOffset>"), keyed by the
// owning VNode's stable ID. The renderer consults it to place an input's
// caret within its value instead of always defaulting to the end of text.
type CursorState struct {
	ByID map[string]int
}

// OffsetFor returns id's recorded grapheme offset into value, defaulting to
// the end of value when id has no entry (e.g. an input that has never
// received an explicit caret position).
func (c CursorState) OffsetFor(id, value string) int {
	if off, ok := c.ByID[id]; ok {
		return off
	}
	return graphemeCount(value)
}

// IdRectIndex maps a stable VNode.ID to its resolved screen rect after
// layout, used to anchor overlays (dropdowns, tooltips) against the element
// that triggered them and to resolve focus-ring geometry.
type IdRectIndex map[string]Rect

// buildIdRectIndex walks tree and records every node carrying a non-empty
// ID, last-write-wins on duplicate IDs (matching render.go's cursor
// resolution tie-break).
func buildIdRectIndex(tree *LayoutTree) IdRectIndex {
	idx := make(IdRectIndex)
	var walk func(t *LayoutTree)
	walk = func(t *LayoutTree) {
		if t == nil {
			return
		}
		if t.VNode.ID != "" {
			idx[t.VNode.ID] = t.Rect
		}
		for _, c := range t.Children {
			walk(c)
		}
	}
	walk(tree)
	return idx
}
