package tuicore

// renderOverlayBackdrop draws the dim/opaque backdrop behind a modal-family
// node before its content renders (content itself is just this node's
// normal children, walked by render.go). Paints the ambient clip region
// (the full area the overlay sits within), not just the overlay's own rect,
// per §4.2 "backdrop ... paints the current clip". Grounded on the donor's
// tui.go OverlayNode{Backdrop,BackdropFG,BG} shape, with the dim blend
// upgraded from raw RGB lerp to go-colorful's perceptual BlendLab (style.go's
// BlendColor) per SPEC_FULL.md §11.
func renderOverlayBackdrop(t *LayoutTree, style Style, clip Rect, th *Theme, b DrawlistBuilder) {
	switch t.VNode.Kind {
	case KindModal:
		mp, _ := t.VNode.Props.(modalProps)
		switch mp.Backdrop {
		case BackdropOpaque:
			b.FillRect(clip, ' ', Style{BG: th.resolve(Named("bg"))})
		case BackdropDim:
			border := th.resolve(Named("border"))
			dim := BlendColor(border, RGB(0, 0, 0), clamp01(mp.DimAmount))
			b.FillRect(clip, '░', Style{FG: dim})
		}
	case KindToolApprovalDialog, KindCommandPalette:
		b.FillRect(clip, ' ', Style{BG: RGB(0, 0, 0)})
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// resolveOverlayRect looks up node's anchor in idx and computes its final
// dropdown rect against viewport, warning (deduplicated) when the anchor id
// is unknown and falling back to centering the overlay in viewport.
func resolveOverlayRect(node *VNode, ap overlayAnchorProps, idx IdRectIndex, viewport Rect) Rect {
	anchor, ok := idx[ap.AnchorID]
	if !ok {
		warnMissingAnchor(node.ID, ap.AnchorID)
		return Rect{
			X: viewport.X + (viewport.W-ap.Width)/2,
			Y: viewport.Y + (viewport.H-ap.Height)/2,
			W: ap.Width, H: ap.Height,
		}
	}
	return resolveDropdownRect(anchor, ap.Placement, ap.Width, ap.Height, viewport)
}

// Placement is a parsed overlayAnchorProps.Placement: a main side
// ("below"/"above"/"left"/"right") and a cross alignment ("start"/"end").
type placement struct {
	side, align string
}

func parsePlacement(s string) placement {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return placement{side: s[:i], align: s[i+1:]}
		}
	}
	return placement{side: s, align: "start"}
}

// resolveDropdownRect computes a dropdown/tooltip-like overlay's final rect
// given its anchor's screen rect, requested placement, desired size, and
// the viewport it must stay within — flipping to the opposite side when
// the preferred placement would overflow the viewport (§4.2 "Overlay &
// backdrop compositing", §8 scenario 5).
func resolveDropdownRect(anchor Rect, requested string, w, h int, viewport Rect) Rect {
	p := parsePlacement(requested)
	rect := placeAtSide(anchor, p, w, h)
	if mainAxisOverflows(p.side, rect, viewport) {
		flipped := placement{side: oppositeSide(p.side), align: p.align}
		flippedRect := placeAtSide(anchor, flipped, w, h)
		if !mainAxisOverflows(flipped.side, flippedRect, viewport) {
			rect = flippedRect
		}
	}
	return clampRectToViewport(rect, viewport)
}

// mainAxisOverflows reports whether rect overflows the viewport along the
// axis placement `side` pushes out on: vertical for below/above, horizontal
// for left/right. Only the main axis drives the flip decision — any
// remaining cross-axis overflow is corrected afterward by
// clampRectToViewport (slide, not flip).
func mainAxisOverflows(side string, rect, viewport Rect) bool {
	switch side {
	case "below", "above":
		return rect.Y < viewport.Y || rect.Bottom() > viewport.Bottom()
	case "left", "right":
		return rect.X < viewport.X || rect.Right() > viewport.Right()
	default:
		return false
	}
}

func placeAtSide(anchor Rect, p placement, w, h int) Rect {
	var x, y int
	switch p.side {
	case "below":
		y = anchor.Bottom()
	case "above":
		y = anchor.Y - h
	case "left":
		x = anchor.X - w
	case "right":
		x = anchor.Right()
	}
	switch p.side {
	case "below", "above":
		if p.align == "end" {
			x = anchor.Right() - w
		} else {
			x = anchor.X
		}
	case "left", "right":
		if p.align == "end" {
			y = anchor.Bottom() - h
		} else {
			y = anchor.Y
		}
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

func oppositeSide(side string) string {
	switch side {
	case "below":
		return "above"
	case "above":
		return "below"
	case "left":
		return "right"
	case "right":
		return "left"
	default:
		return side
	}
}

// clampRectToViewport slides (never shrinks) rect to stay fully within
// viewport, used as the final safety net after flip still doesn't fit
// (e.g. an oversized dropdown on a tiny viewport).
func clampRectToViewport(rect, viewport Rect) Rect {
	maxX := viewport.Right() - rect.W
	maxY := viewport.Bottom() - rect.H
	x := rect.X
	if x < viewport.X {
		x = viewport.X
	} else if x > maxX {
		x = max(maxX, viewport.X)
	}
	y := rect.Y
	if y < viewport.Y {
		y = viewport.Y
	} else if y > maxY {
		y = max(maxY, viewport.Y)
	}
	return Rect{X: x, Y: y, W: rect.W, H: rect.H}
}
