package tuicore

import "strings"

// textProps is the subset of KindText's Props this engine reads for
// measurement/rendering purposes (the full widget semantics are out of
// scope; only layout-relevant fields are modeled, per §1).
type textProps struct {
	Content string
	Wrap    bool
}

// measure computes the intrinsic Size of node along axis, constrained to
// (maxW, maxH), consulting and populating cache. This is the engine's single
// measurement entry point; layout.go calls it once per node per distinct
// constraint tuple thanks to the cache.
func measure(node *VNode, axis Axis, maxW, maxH int, cache *MeasureCache, dirty DirtySet) (Size, error) {
	ref, ok := refOf(node)
	if ok {
		if sz, hit := cache.Get(ref, axis, maxW, maxH, dirty); hit {
			return sz, nil
		}
	}

	sz, err := measureUncached(node, axis, maxW, maxH, cache, dirty)
	if err != nil {
		return Size{}, err
	}
	if ok {
		cache.Put(ref, axis, maxW, maxH, sz)
	}
	return sz, nil
}

func measureUncached(node *VNode, axis Axis, maxW, maxH int, cache *MeasureCache, dirty DirtySet) (Size, error) {
	if node.Constraints.hasExplicitWidth() && node.Constraints.hasExplicitHeight() {
		return Size{W: *node.Constraints.Width, H: *node.Constraints.Height}, nil
	}

	var sz Size
	var err error
	switch familyOf(node.Kind) {
	case familyLeaf:
		sz, err = measureLeaf(node, maxW, maxH)
	case familyStack:
		sz, err = measureStack(node, axis, maxW, maxH, cache, dirty)
	case familyBox:
		sz, err = measureBox(node, maxW, maxH, cache, dirty)
	case familyGrid:
		sz, err = measureGrid(node, maxW, maxH, cache, dirty)
	case familyWrapper:
		sz, err = measureWrapper(node, axis, maxW, maxH, cache, dirty)
	default:
		sz, err = measureLeaf(node, maxW, maxH)
	}
	if err != nil {
		return Size{}, err
	}

	if node.Constraints.hasExplicitWidth() {
		sz.W = *node.Constraints.Width
	}
	if node.Constraints.hasExplicitHeight() {
		sz.H = *node.Constraints.Height
	}
	sz.W = clampToMinMax(sz.W, node.Constraints.MinWidth, node.Constraints.MaxWidth)
	sz.H = clampToMinMax(sz.H, node.Constraints.MinHeight, node.Constraints.MaxHeight)
	return sz, nil
}

// measureLeaf handles all leaf kinds. Text wraps greedily at word
// boundaries when maxW is bounded and Wrap is set; most other leaves report
// a small fixed intrinsic size plus padding.
func measureLeaf(node *VNode, maxW, maxH int) (Size, error) {
	switch node.Kind {
	case KindText, KindRichText:
		tp, _ := node.Props.(textProps)
		return measureText(tp.Content, tp.Wrap, maxW), nil
	case KindSpacer:
		return Size{W: 0, H: 0}, nil
	case KindDivider:
		return Size{W: 1, H: 1}, nil
	case KindButton, KindTag, KindBadge, KindStatus, KindKbd:
		tp, _ := node.Props.(textProps)
		base := measureText(tp.Content, false, maxW)
		return Size{W: base.W + 2, H: 1}, nil
	case KindInput:
		ip, _ := node.Props.(inputProps)
		w := max(cellWidth(ip.Value), cellWidth(ip.Placeholder))
		return Size{W: w + 2, H: 1}, nil
	case KindProgress, KindGauge, KindSlider:
		w := maxW
		if w <= 0 || w > 20 {
			w = 20
		}
		return Size{W: w, H: 1}, nil
	case KindIcon:
		return Size{W: 1, H: 1}, nil
	default:
		return Size{W: minIntrinsicWidth(node), H: 1}, nil
	}
}

// minIntrinsicWidth is the fallback width for leaf kinds this engine has no
// bespoke measurement rule for (widget-specific behavioral semantics are
// out of scope per §1; the engine only needs a stable, deterministic size).
func minIntrinsicWidth(node *VNode) int {
	if node.Constraints.hasExplicitWidth() {
		return *node.Constraints.Width
	}
	return 1
}

// measureText computes min/max-content width and the wrapped line count at
// the given max width, honoring East Asian Width via cellWidth.
func measureText(content string, wrap bool, maxW int) Size {
	if content == "" {
		return Size{W: 0, H: 1}
	}
	if !wrap || maxW <= 0 {
		lines := strings.Split(content, "\n")
		w := 0
		for _, ln := range lines {
			if cw := cellWidth(ln); cw > w {
				w = cw
			}
		}
		return Size{W: w, H: len(lines)}
	}
	lineCount := 0
	maxLineW := 0
	for _, paragraph := range strings.Split(content, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lineCount++
			continue
		}
		curW := 0
		for i, word := range words {
			ww := cellWidth(word)
			sep := 0
			if curW > 0 {
				sep = 1
			}
			if curW > 0 && curW+sep+ww > maxW {
				lineCount++
				curW = ww
			} else {
				curW += sep + ww
			}
			if curW > maxLineW {
				maxLineW = curW
			}
			if i == len(words)-1 {
				lineCount++
			}
		}
	}
	if maxLineW > maxW {
		maxLineW = maxW
	}
	if lineCount == 0 {
		lineCount = 1
	}
	return Size{W: maxLineW, H: lineCount}
}

// measureStack sums (row) or maxes (column) children along the main axis
// per the node's own orientation, with gap accounted between children.
func measureStack(node *VNode, _ Axis, maxW, maxH int, cache *MeasureCache, dirty DirtySet) (Size, error) {
	stackAxis := AxisRow
	if node.Kind == KindColumn {
		stackAxis = AxisColumn
	}
	gap := node.Constraints.Gap
	var mainSum, crossMax int
	active := 0
	for _, child := range node.Children {
		if child.Constraints.Position == PositionAbsolute {
			continue
		}
		active++
		csz, err := measure(child, stackAxis, maxW, maxH, cache, dirty)
		if err != nil {
			return Size{}, err
		}
		if stackAxis == AxisRow {
			mainSum += csz.W
			crossMax = max(crossMax, csz.H)
		} else {
			mainSum += csz.H
			crossMax = max(crossMax, csz.W)
		}
	}
	if active > 1 {
		mainSum += gap * (active - 1)
	}
	pt, pr, pb, pl := node.Constraints.Padding[0], node.Constraints.Padding[1], node.Constraints.Padding[2], node.Constraints.Padding[3]
	if stackAxis == AxisRow {
		return Size{W: mainSum + pl + pr, H: crossMax + pt + pb}, nil
	}
	return Size{W: crossMax + pl + pr, H: mainSum + pt + pb}, nil
}

// measureBox measures a decorated container whose normal-flow children are
// stacked vertically: content size plus padding plus a 1-cell border
// allowance per drawn side.
func measureBox(node *VNode, maxW, maxH int, cache *MeasureCache, dirty DirtySet) (Size, error) {
	borderW, borderH := 0, 0
	if bp, ok := node.Props.(boxProps); ok && bp.Border != BorderNone {
		if bp.Sides.Left {
			borderW++
		}
		if bp.Sides.Right {
			borderW++
		}
		if bp.Sides.Top {
			borderH++
		}
		if bp.Sides.Bottom {
			borderH++
		}
	}
	pt, pr, pb, pl := node.Constraints.Padding[0], node.Constraints.Padding[1], node.Constraints.Padding[2], node.Constraints.Padding[3]
	innerMaxW := maxW - borderW - pl - pr
	innerMaxH := maxH - borderH - pt - pb
	var contentW, contentH int
	for _, child := range node.Children {
		if child.Constraints.Position == PositionAbsolute {
			continue
		}
		csz, err := measure(child, AxisColumn, innerMaxW, innerMaxH, cache, dirty)
		if err != nil {
			return Size{}, err
		}
		contentW = max(contentW, csz.W)
		contentH += csz.H
	}
	return Size{
		W: contentW + borderW + pl + pr,
		H: contentH + borderH + pt + pb,
	}, nil
}

// measureWrapper passes through to the single child unchanged: focusZone,
// focusTrap, themed and field are transparent for layout purposes (§3).
func measureWrapper(node *VNode, axis Axis, maxW, maxH int, cache *MeasureCache, dirty DirtySet) (Size, error) {
	if len(node.Children) == 0 {
		return Size{}, nil
	}
	return measure(node.Children[0], axis, maxW, maxH, cache, dirty)
}

// refOf extracts the Ref a node was allocated with, if it carries one. Nodes
// built without an arena (e.g. ad hoc test fixtures) simply opt out of
// caching.
func refOf(node *VNode) (Ref, bool) {
	if node == nil {
		return Ref{}, false
	}
	if r, ok := nodeRefs[node]; ok {
		return r, true
	}
	return Ref{}, false
}

// nodeRefs backs refOf: arenas register each VNode's Ref here on Alloc so
// that measure/layout can key caches without threading a Ref parameter
// through every call. Cleared on frame Reset.
var nodeRefs = make(map[*VNode]Ref)
