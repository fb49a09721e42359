package tuicore

// renderFrame is one entry on the explicit walk stack: the layout node and
// its runtime instance, the inherited style already merged down to this
// node, the accumulated ancestor scroll shift (offsetX/offsetY — nonzero
// only inside an overflow=scroll subtree), and whether its children have
// been pushed yet. Whether the node pushed a clip is tracked beside the
// frame in renderToDrawlist's stackEntry.
type renderFrame struct {
	tree             *LayoutTree
	runtime          *RuntimeInstance
	style            Style
	offsetX, offsetY int
	entered          bool // false until its children have been pushed (pre-order marker)
}

// shiftRect translates r by (-dx, -dy) — the transform a scrolled ancestor
// applies to every descendant's absolute rect so content scrolls up/left as
// scrollX/scrollY grow, without layout.go's positions themselves depending
// on scroll (layout stays scroll-position-independent so its cache entries
// remain valid while the user merely scrolls).
func shiftRect(r Rect, dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W, H: r.H}
}

// renderToDrawlist walks tree and runtime in lockstep and emits drawlist
// primitives to b, restricted to the region overlapping damage (nil means
// "the whole tree", i.e. no pruning) and clipped to viewport. cursorState
// supplies per-instance caret offsets for input-like leaves; scope lets the
// overlay/dropdown anchor-resolution step below run a nested layout() call
// without disturbing the caller's own measure/layout caches. Uses one
// explicit stack of frames (node, runtime, style, scroll shift) plus a clip
// stack that receives a null-sentinel entry for nodes that do not clip,
// rather than recursion (§4.2).
func renderToDrawlist(tree *LayoutTree, runtime *RuntimeInstance, viewport Rect, th *Theme, focus FocusState, cursorState CursorState, scope *cacheScope, damage *Rect, b DrawlistBuilder) (CursorInfo, error) {
	clip := newClipStack(viewport)
	cursor := CursorInfo{}
	lastCursorWriter := -1
	idIndex := buildIdRectIndex(tree)

	type stackEntry struct {
		frame      renderFrame
		pushedClip bool
	}
	stack := []stackEntry{{frame: renderFrame{tree: tree, runtime: runtime, style: Style{}}}}

	order := 0
	for len(stack) > 0 {
		n := len(stack) - 1
		top := stack[n]

		if !top.frame.entered {
			order++
			stack[n].frame.entered = true
			t := top.frame.tree

			if t.VNode.Kind == KindDropdown {
				if resolved, err := resolveDropdownContent(t, idIndex, viewport, scope); err != nil {
					return cursor, err
				} else if resolved != t {
					t = resolved
					stack[n].frame.tree = t
				}
			}

			view := t
			if top.frame.offsetX != 0 || top.frame.offsetY != 0 {
				shifted := *t
				shifted.Rect = shiftRect(t.Rect, top.frame.offsetX, top.frame.offsetY)
				view = &shifted
			}

			if damage != nil && !damagePrunes(view, *damage) {
				stack = stack[:n]
				continue
			}

			style := mergeNodeStyle(top.frame.style, t.VNode)
			stack[n].frame.style = style

			pushed := false
			if shouldClip(t.VNode) {
				clip.pushClipped(b, view.Rect)
				pushed = true
			} else {
				clip.pushSentinel()
				pushed = true
			}
			stack[n].pushedClip = pushed

			if err := renderNodeSelf(view, top.frame.runtime, style, th, clip.top(), b, focus); err != nil {
				return cursor, err
			}

			if ci, ok := resolveNodeCursor(view, top.frame.runtime, clip.top(), focus, cursorState); ok {
				if order >= lastCursorWriter {
					cursor = ci
					lastCursorWriter = order
				}
			}

			scrolls := t.VNode.Constraints.Overflow == OverflowScroll
			childOffsetX, childOffsetY := top.frame.offsetX, top.frame.offsetY
			if scrolls && top.frame.runtime != nil {
				sx, sy := clampScrollOffset(t.ScrollExtent, top.frame.runtime.ScrollX, top.frame.runtime.ScrollY)
				childOffsetX += sx
				childOffsetY += sy
			}

			for i := len(t.Children) - 1; i >= 0; i-- {
				child := t.Children[i]
				if scrolls && !shiftRect(child.Rect, childOffsetX, childOffsetY).Intersects(view.Rect) {
					continue
				}
				stack = append(stack, stackEntry{frame: renderFrame{
					tree:    child,
					runtime: runtimeFor(top.frame.runtime, i),
					style:   style,
					offsetX: childOffsetX,
					offsetY: childOffsetY,
				}})
			}
			continue
		}

		if top.pushedClip {
			clip.pop(b)
		}
		stack = stack[:n]
	}

	return cursor, nil
}

// resolveDropdownContent positions a dropdown against its anchor (via
// resolveOverlayRect/IdRectIndex) and lays out its children into the
// resolved rect, since a dropdown's content depends on its trigger's
// on-screen position — only known after the host tree's own layout() has
// already run — and so cannot be positioned by the original layout() pass
// that produced tree. Returns t unchanged if it carries no anchor props.
// The nested layout call gets its own MeasureCache/LayoutCache pushed onto
// scope (when non-nil) so it doesn't pollute the caller's cache with
// dropdown-content entries keyed by a rect that changes every time the
// dropdown repositions.
func resolveDropdownContent(t *LayoutTree, idx IdRectIndex, viewport Rect, scope *cacheScope) (*LayoutTree, error) {
	ap, ok := t.VNode.Props.(overlayAnchorProps)
	if !ok {
		return t, nil
	}
	rect := resolveOverlayRect(t.VNode, ap, idx, viewport)
	m, l := NewMeasureCache(), NewLayoutCache()
	if scope != nil {
		scope.push(m, l)
		defer scope.pop()
	}
	children := make([]*LayoutTree, 0, len(t.VNode.Children))
	for i, child := range t.VNode.Children {
		if child.Constraints.Position == PositionAbsolute {
			continue
		}
		lt, err := layoutNode(child, "dropdown"+indexSuffix(i), rect.X, rect.Y, rect.W, rect.H, m, l, nil)
		if err != nil {
			return nil, err
		}
		children = append(children, lt)
	}
	view := *t
	view.Rect = rect
	view.Children = children
	return &view, nil
}

// mergeNodeStyle merges the node's own style override (if any) onto the
// inherited parent style, per the renderer's inheritance rule (§4.2).
func mergeNodeStyle(parent Style, node *VNode) Style {
	return parent.Merge(node.Style)
}

// shouldClip reports whether a node's family introduces a new clip region:
// any container with Overflow != OverflowVisible, plus overlay-family
// nodes (which always clip to their own rect).
func shouldClip(node *VNode) bool {
	if node.Constraints.Overflow != OverflowVisible {
		return true
	}
	return familyOf(node.Kind) == familyOverlay
}

// damagePrunes reports whether t's subtree can possibly intersect damage —
// false means the whole subtree is skipped. It is a plain rect
// intersection test, and renderToDrawlist applies it to every visited node
// of every family, stack children included; no binary search over a
// stack's children is done during the walk.
func damagePrunes(t *LayoutTree, damage Rect) bool {
	return t.Rect.Intersects(damage)
}

// damageRangeInStack returns the [lo, hi) index range of stackChildren
// (sorted ascending along axis by their Rect offset) that can intersect
// damage, via binary search rather than a linear scan. renderToDrawlist
// does not call it.
func damageRangeInStack(children []*LayoutTree, axis Axis, damage Rect) (lo, hi int) {
	n := len(children)
	mainStart := func(t *LayoutTree) int {
		if axis == AxisRow {
			return t.Rect.X
		}
		return t.Rect.Y
	}
	mainEnd := func(t *LayoutTree) int {
		if axis == AxisRow {
			return t.Rect.Right()
		}
		return t.Rect.Bottom()
	}
	damageStart, damageEnd := damage.X, damage.Right()
	if axis == AxisColumn {
		damageStart, damageEnd = damage.Y, damage.Bottom()
	}
	lo = sortSearch(n, func(i int) bool { return mainEnd(children[i]) > damageStart })
	hi = sortSearch(n, func(i int) bool { return mainStart(children[i]) >= damageEnd })
	return lo, hi
}

// sortSearch is sort.Search inlined to avoid importing sort here twice
// across files; kept local since render.go's search predicate shape is
// specific to damageRangeInStack.
func sortSearch(n int, f func(int) bool) int {
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if f(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
