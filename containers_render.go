package tuicore

// renderNodeSelf draws the portion of node owned by this node alone (text
// content, fill, border, scrollbar) — never its children, which the walk
// in render.go visits separately. clip is the effective clip rect already
// pushed for this node.
func renderNodeSelf(t *LayoutTree, runtime *RuntimeInstance, style Style, th *Theme, clip Rect, b DrawlistBuilder, focus FocusState) error {
	node := t.VNode
	style = resolveThemedColors(style, th)

	switch familyOf(node.Kind) {
	case familyLeaf:
		renderLeaf(t, style, b, focus)
	case familyStack, familyBox, familyGrid:
		renderContainerDecoration(t, style, b)
		if runtime != nil && node.Constraints.Overflow == OverflowScroll {
			renderScrollbar(t, runtime, style, b)
		}
	case familyCollection:
		return renderCollection(t, runtime, style, th, b)
	case familyOverlay:
		renderOverlayBackdrop(t, style, clip, th, b)
	}
	return nil
}

// renderLeaf draws a leaf's own content: text, a fixed glyph, or a
// progress/gauge bar fill.
func renderLeaf(t *LayoutTree, style Style, b DrawlistBuilder, focus FocusState) {
	node := t.VNode
	switch node.Kind {
	case KindButton, KindSelect, KindCheckbox, KindRadioGroup:
		style = style.Merge(resolveRecipe(recipeKeyOf(node)))
		tp, _ := node.Props.(textProps)
		text := truncateToWidth(tp.Content, t.Rect.W)
		b.DrawText(t.Rect.X, t.Rect.Y, text, style)
	case KindInput:
		style = style.Merge(resolveRecipe(recipeKeyOf(node)))
		ip, _ := node.Props.(inputProps)
		content := ip.Value
		if content == "" {
			content = ip.Placeholder
			style.Dim = true
		}
		text := truncateToWidth(content, t.Rect.W)
		b.DrawText(t.Rect.X, t.Rect.Y, text, style)
	case KindText, KindRichText, KindTag, KindBadge, KindStatus, KindKbd:
		tp, _ := node.Props.(textProps)
		text := truncateToWidth(tp.Content, t.Rect.W)
		b.DrawText(t.Rect.X, t.Rect.Y, text, style)
	case KindDivider:
		b.FillRect(t.Rect, '─', style)
	case KindSpacer:
		// intentionally blank
	case KindProgress, KindGauge, KindSlider:
		if node.Kind == KindSlider {
			style = style.Merge(resolveRecipe(recipeKeyOf(node)))
		}
		renderProgressBar(t, node, style, b)
	case KindIcon:
		b.FillRect(t.Rect, '■', style)
	default:
		// Unmodeled leaf kinds still need stable, deterministic output:
		// fill with a blank cell of the resolved style so clipping/damage
		// math around them stays correct even though this engine has no
		// bespoke visual for the kind.
		b.FillRect(t.Rect, ' ', style)
	}
}

// progressProps is the measurement-relevant subset of progress-like Props.
type progressProps struct {
	Value, Max float64
}

func renderProgressBar(t *LayoutTree, node *VNode, style Style, b DrawlistBuilder) {
	pp, _ := node.Props.(progressProps)
	width := t.Rect.W - 2
	if width < 0 {
		width = 0
	}
	frac := 0.0
	if pp.Max > 0 {
		frac = pp.Value / pp.Max
	}
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	b.DrawText(t.Rect.X, t.Rect.Y, "[", style)
	if filled > 0 {
		b.FillRect(Rect{X: t.Rect.X + 1, Y: t.Rect.Y, W: filled, H: 1}, '=', style)
	}
	if width-filled > 0 {
		b.FillRect(Rect{X: t.Rect.X + 1 + filled, Y: t.Rect.Y, W: width - filled, H: 1}, ' ', style)
	}
	b.DrawText(t.Rect.X+1+width, t.Rect.Y, "]", style)
}

// renderContainerDecoration draws a box's border and title: each enabled
// edge is filled with its line glyph, corner glyphs are drawn over the
// ends where two enabled edges meet, and the title (padded with one space
// each side) is written over the top edge starting two cells in. Glyphs
// are not merged with neighbouring borders.
func renderContainerDecoration(t *LayoutTree, style Style, b DrawlistBuilder) {
	bp, ok := t.VNode.Props.(boxProps)
	if !ok || bp.Border == BorderNone {
		return
	}
	glyphs, ok := resolveBorder(bp.Border)
	if !ok {
		return
	}
	r := t.Rect
	if bp.Sides.Top {
		b.FillRect(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, glyphs.Horizontal, style)
	}
	if bp.Sides.Bottom {
		b.FillRect(Rect{X: r.X, Y: r.Bottom() - 1, W: r.W, H: 1}, glyphs.Horizontal, style)
	}
	if bp.Sides.Left {
		b.FillRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, glyphs.Vertical, style)
	}
	if bp.Sides.Right {
		b.FillRect(Rect{X: r.Right() - 1, Y: r.Y, W: 1, H: r.H}, glyphs.Vertical, style)
	}
	if bp.Sides.Top && bp.Sides.Left {
		b.DrawText(r.X, r.Y, string(glyphs.TopLeft), style)
	}
	if bp.Sides.Top && bp.Sides.Right {
		b.DrawText(r.Right()-1, r.Y, string(glyphs.TopRight), style)
	}
	if bp.Sides.Bottom && bp.Sides.Left {
		b.DrawText(r.X, r.Bottom()-1, string(glyphs.BottomLeft), style)
	}
	if bp.Sides.Bottom && bp.Sides.Right {
		b.DrawText(r.Right()-1, r.Bottom()-1, string(glyphs.BottomRight), style)
	}
	if bp.Title != "" && bp.Sides.Top && r.W > 4 {
		title := truncateToWidth(" "+bp.Title+" ", r.W-2)
		b.DrawText(r.X+2, r.Y, title, style)
	}
}

// renderScrollbar draws a vertical and/or horizontal scrollbar thumb/track
// on a scrollable container's right/bottom edge, using runtime's clamped
// offset against the subtree's ScrollExtent, plus the corner cell where
// both axes overflow at once (§4.2 "Corner cell drawn when both scrollbars
// active"; this engine supplements a concrete scrollbar drawing, which the
// donor never implemented).
func renderScrollbar(t *LayoutTree, runtime *RuntimeInstance, style Style, b DrawlistBuilder) {
	hasV := t.ScrollExtent.H > 0 && t.Rect.H > 0
	hasH := t.ScrollExtent.W > 0 && t.Rect.W > 0
	if !hasV && !hasH {
		return
	}
	scrollX, scrollY := clampScrollOffset(t.ScrollExtent, runtime.ScrollX, runtime.ScrollY)

	vTrackH, hTrackW := t.Rect.H, t.Rect.W
	if hasV && hasH {
		vTrackH--
		hTrackW--
	}

	if hasV {
		trackX := t.Rect.Right() - 1
		b.FillRect(Rect{X: trackX, Y: t.Rect.Y, W: 1, H: vTrackH}, '│', style)

		totalContent := vTrackH + t.ScrollExtent.H
		thumbH := max(1, vTrackH*vTrackH/max(totalContent, 1))
		maxThumbY := vTrackH - thumbH
		thumbY := 0
		if t.ScrollExtent.H > 0 {
			thumbY = scrollY * maxThumbY / t.ScrollExtent.H
		}
		b.FillRect(Rect{X: trackX, Y: t.Rect.Y + thumbY, W: 1, H: thumbH}, '█', style)
	}

	if hasH {
		trackY := t.Rect.Bottom() - 1
		b.FillRect(Rect{X: t.Rect.X, Y: trackY, W: hTrackW, H: 1}, '─', style)

		totalContent := hTrackW + t.ScrollExtent.W
		thumbW := max(1, hTrackW*hTrackW/max(totalContent, 1))
		maxThumbX := hTrackW - thumbW
		thumbX := 0
		if t.ScrollExtent.W > 0 {
			thumbX = scrollX * maxThumbX / t.ScrollExtent.W
		}
		b.FillRect(Rect{X: t.Rect.X + thumbX, Y: trackY, W: thumbW, H: 1}, '█', style)
	}

	if hasV && hasH {
		b.FillRect(Rect{X: t.Rect.Right() - 1, Y: t.Rect.Bottom() - 1, W: 1, H: 1}, ' ', style)
	}
}

// renderCollection dispatches to the table/tree/editor/diff/logs renderers;
// the generic list/table/tree cases only fill their rect with blanks since
// their row content is application-supplied and out of scope (§1), while
// codeEditor/diffViewer/logsConsole have concrete renderers implemented in
// editors_render.go.
func renderCollection(t *LayoutTree, runtime *RuntimeInstance, style Style, th *Theme, b DrawlistBuilder) error {
	switch t.VNode.Kind {
	case KindCodeEditor:
		return renderCodeEditor(t, style, b)
	case KindDiffViewer:
		return renderDiffViewer(t, style, b)
	case KindLogsConsole:
		return renderLogsConsole(t, runtime, style, b)
	default:
		b.FillRect(t.Rect, ' ', style)
		return nil
	}
}

// resolveThemedColors substitutes any ColorNamed channel in style for its
// theme.colors lookup, falling back to the style unchanged when th is nil
// or the key is unknown (§9 Design Notes: missing theme keys degrade to
// "no color applied", never an error).
func resolveThemedColors(style Style, th *Theme) Style {
	if th == nil {
		return style
	}
	style.FG = th.resolve(style.FG)
	style.BG = th.resolve(style.BG)
	style.UnderlineColor = th.resolve(style.UnderlineColor)
	return style
}
