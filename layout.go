package tuicore

// LayoutTree is the positioned output of layout(): one node per VNode,
// carrying its resolved absolute rect and positioned children (§3).
type LayoutTree struct {
	VNode    *VNode
	Rect     Rect
	Children []*LayoutTree
	// ScrollExtent is the content size beyond the visible viewport for a
	// scrollable container (0,0 when content fits), used by the renderer
	// to draw scrollbars and by scroll-clamp logic to bound ScrollX/Y.
	ScrollExtent Size
}

// layout computes the full positioned tree for root within (maxW, maxH),
// the engine's single layout entry point. Mirrors the three-phase
// measure -> distribute -> position cycle the donor's arena.go runs per
// frame, generalized across all families.
func layout(root *VNode, maxW, maxH int, cache *MeasureCache, layoutCache *LayoutCache, dirty DirtySet) (*LayoutTree, error) {
	if err := validateConstraints(root.Constraints, "root"); err != nil {
		return nil, err
	}
	return layoutNode(root, "root", 0, 0, maxW, maxH, cache, layoutCache, dirty)
}

func layoutNode(node *VNode, path string, x, y, maxW, maxH int, cache *MeasureCache, layoutCache *LayoutCache, dirty DirtySet) (*LayoutTree, error) {
	if err := validateConstraints(node.Constraints, path); err != nil {
		return nil, err
	}

	w, h := maxW, maxH
	if node.Constraints.hasExplicitWidth() {
		w = *node.Constraints.Width
	}
	if node.Constraints.hasExplicitHeight() {
		h = *node.Constraints.Height
	}
	w = clampToMinMax(w, node.Constraints.MinWidth, node.Constraints.MaxWidth)
	h = clampToMinMax(h, node.Constraints.MinHeight, node.Constraints.MaxHeight)
	rect := clampRect(int64(x), int64(y), int64(w), int64(h))

	tree := &LayoutTree{VNode: node, Rect: rect}

	switch familyOf(node.Kind) {
	case familyStack:
		children, extent, err := layoutStack(node, rect, cache, layoutCache, dirty, path)
		if err != nil {
			return nil, err
		}
		tree.Children = children
		tree.ScrollExtent = extent
	case familyBox:
		children, extent, err := layoutBox(node, rect, cache, layoutCache, dirty, path)
		if err != nil {
			return nil, err
		}
		tree.Children = children
		tree.ScrollExtent = extent
	case familyGrid:
		children, extent, err := layoutGrid(node, rect, cache, layoutCache, dirty, path)
		if err != nil {
			return nil, err
		}
		tree.Children = children
		tree.ScrollExtent = extent
	case familyWrapper:
		if len(node.Children) > 0 {
			child, err := layoutNode(node.Children[0], path+"/"+kindPathSeg(node.Children[0]), rect.X, rect.Y, rect.W, rect.H, cache, layoutCache, dirty)
			if err != nil {
				return nil, err
			}
			tree.Children = []*LayoutTree{child}
		}
	}

	if err := layoutAbsoluteChildren(node, rect, tree, cache, layoutCache, dirty, path); err != nil {
		return nil, err
	}

	return tree, nil
}

func kindPathSeg(n *VNode) string {
	return kindName(n.Kind)
}

// layoutStack positions children along the stack's main axis using the
// flex grow/shrink distribution, then the requested justify-content, then
// applies overflow/scroll clamping.
func layoutStack(node *VNode, rect Rect, cache *MeasureCache, layoutCache *LayoutCache, dirty DirtySet, path string) ([]*LayoutTree, Size, error) {
	stackAxis := AxisRow
	if node.Kind == KindColumn {
		stackAxis = AxisColumn
	}
	pt, pr, pb, pl := node.Constraints.Padding[0], node.Constraints.Padding[1], node.Constraints.Padding[2], node.Constraints.Padding[3]
	inner := rect.Inset(pt, pr, pb, pl)

	mainAvail, crossAvail := inner.W, inner.H
	if stackAxis == AxisColumn {
		mainAvail, crossAvail = inner.H, inner.W
	}
	mainAvail, crossAvail = reserveScrollbars(node, mainAvail, crossAvail, stackAxis)

	active := activeChildren(node)
	items := getFlexItems(len(active))
	defer putFlexItems(items)
	for i, child := range active {
		csz, err := measure(child, stackAxis, mainAvail, crossAvail, cache, dirty)
		if err != nil {
			return nil, Size{}, err
		}
		main := csz.W
		if stackAxis == AxisColumn {
			main = csz.H
		}
		if child.Constraints.FlexBasis != nil {
			main = *child.Constraints.FlexBasis
		}
		maxMain := child.Constraints.MaxWidth
		minMain := child.Constraints.MinWidth
		if stackAxis == AxisColumn {
			maxMain = child.Constraints.MaxHeight
			minMain = child.Constraints.MinHeight
		}
		items = append(items, flexItem{index: i, basis: main, grow: child.Constraints.FlexGrow, shrink: child.Constraints.FlexShrink, maxMain: maxMain, minMain: minMain})
	}
	gap := node.Constraints.Gap
	used := 0
	for _, it := range items {
		used += it.basis
	}
	if len(items) > 1 {
		used += gap * (len(items) - 1)
	}
	if used < mainAvail {
		distributeGrow(items, mainAvail-used)
	} else if used > mainAvail {
		distributeShrink(items, used-mainAvail)
	} else {
		for i := range items {
			items[i].final = items[i].basis
		}
	}

	finalUsed := 0
	for _, it := range items {
		finalUsed += it.final
	}
	if len(items) > 1 {
		finalUsed += gap * (len(items) - 1)
	}
	start, extraGap := justifyOffsets(node.Constraints.Justify, mainAvail, finalUsed, len(items))

	children := make([]*LayoutTree, 0, len(node.Children))
	cursor := start
	contentMain := 0
	for i, child := range active {
		it := items[i]
		childPath := path + "/" + kindPathSeg(child) + indexSuffix(i)
		var cx, cy, cw, ch int
		if stackAxis == AxisRow {
			cx, cy = inner.X+cursor, inner.Y
			cw, ch = it.final, crossAvail
		} else {
			cx, cy = inner.X, inner.Y+cursor
			cw, ch = crossAvail, it.final
		}
		lt, err := layoutNode(child, childPath, cx, cy, cw, ch, cache, layoutCache, dirty)
		if err != nil {
			return nil, Size{}, err
		}
		children = append(children, lt)
		cursor += it.final + gap + extraGap
		contentMain += it.final
	}
	if len(active) > 1 {
		contentMain += gap * (len(active) - 1)
	}

	extent := Size{}
	if contentMain > mainAvail {
		if stackAxis == AxisRow {
			extent.W = contentMain - mainAvail
		} else {
			extent.H = contentMain - mainAvail
		}
	}
	return children, extent, nil
}

// layoutBox stacks its normal-flow children top to bottom, each at full
// inner width, inside the rect inset by border+padding.
func layoutBox(node *VNode, rect Rect, cache *MeasureCache, layoutCache *LayoutCache, dirty DirtySet, path string) ([]*LayoutTree, Size, error) {
	bp, _ := node.Props.(boxProps)
	top, right, bottom, left := 0, 0, 0, 0
	if bp.Border != BorderNone {
		if bp.Sides.Top {
			top = 1
		}
		if bp.Sides.Right {
			right = 1
		}
		if bp.Sides.Bottom {
			bottom = 1
		}
		if bp.Sides.Left {
			left = 1
		}
	}
	pt, pr, pb, pl := node.Constraints.Padding[0], node.Constraints.Padding[1], node.Constraints.Padding[2], node.Constraints.Padding[3]
	inner := rect.Inset(top+pt, right+pr, bottom+pb, left+pl)
	inner.W, inner.H = reserveBoxScrollbars(node, inner.W, inner.H)

	active := activeChildren(node)
	children := make([]*LayoutTree, 0, len(active))
	cursorY := 0
	maxContentH := 0
	for i, child := range active {
		childPath := path + "/" + kindPathSeg(child) + indexSuffix(i)
		csz, err := measure(child, AxisColumn, inner.W, inner.H-cursorY, cache, dirty)
		if err != nil {
			return nil, Size{}, err
		}
		h := csz.H
		if child.Constraints.hasExplicitHeight() {
			h = *child.Constraints.Height
		}
		lt, err := layoutNode(child, childPath, inner.X, inner.Y+cursorY, inner.W, h, cache, layoutCache, dirty)
		if err != nil {
			return nil, Size{}, err
		}
		children = append(children, lt)
		cursorY += h
		maxContentH += h
	}
	extent := Size{}
	if maxContentH > inner.H {
		extent.H = maxContentH - inner.H
	}
	return children, extent, nil
}

// layoutGrid places each cell at its track's accumulated offset.
func layoutGrid(node *VNode, rect Rect, cache *MeasureCache, layoutCache *LayoutCache, dirty DirtySet, path string) ([]*LayoutTree, Size, error) {
	cols, rows, colGap, rowGap, _ := gridLayout(node)
	cells := placeGridCells(node.Children, cols, rows)

	availW, availH := reserveBoxScrollbars(node, rect.W, rect.H)

	colW := make([]int, cols)
	rowH := make([]int, rows)
	for _, cell := range cells {
		csz, err := measure(cell.child, AxisColumn, availW/max(cols, 1), availH/max(rows, 1), cache, dirty)
		if err != nil {
			return nil, Size{}, err
		}
		colW[cell.col] = max(colW[cell.col], csz.W)
		rowH[cell.row] = max(rowH[cell.row], csz.H)
	}
	colX := make([]int, cols)
	for i := 1; i < cols; i++ {
		colX[i] = colX[i-1] + colW[i-1] + colGap
	}
	rowY := make([]int, rows)
	for i := 1; i < rows; i++ {
		rowY[i] = rowY[i-1] + rowH[i-1] + rowGap
	}

	children := make([]*LayoutTree, 0, len(cells))
	for i, cell := range cells {
		childPath := path + "/" + kindPathSeg(cell.child) + indexSuffix(i)
		lt, err := layoutNode(cell.child, childPath, rect.X+colX[cell.col], rect.Y+rowY[cell.row], colW[cell.col], rowH[cell.row], cache, layoutCache, dirty)
		if err != nil {
			return nil, Size{}, err
		}
		children = append(children, lt)
	}
	totalW, totalH := 0, 0
	for _, w := range colW {
		totalW += w
	}
	for _, h := range rowH {
		totalH += h
	}
	if cols > 1 {
		totalW += colGap * (cols - 1)
	}
	if rows > 1 {
		totalH += rowGap * (rows - 1)
	}
	extent := Size{}
	if totalW > availW {
		extent.W = totalW - availW
	}
	if totalH > availH {
		extent.H = totalH - availH
	}
	return children, extent, nil
}

// layoutAbsoluteChildren positions PositionAbsolute children against the
// parent's rect using their top/right/bottom/left offsets, independent of
// the normal-flow layout above (§3 "Position handling").
func layoutAbsoluteChildren(node *VNode, rect Rect, tree *LayoutTree, cache *MeasureCache, layoutCache *LayoutCache, dirty DirtySet, path string) error {
	for i, child := range node.Children {
		if child.Constraints.Position != PositionAbsolute {
			continue
		}
		childPath := path + "/" + kindPathSeg(child) + indexSuffix(i) + "[abs]"
		csz, err := measure(child, AxisColumn, rect.W, rect.H, cache, dirty)
		if err != nil {
			return err
		}
		w, h := csz.W, csz.H
		if child.Constraints.hasExplicitWidth() {
			w = *child.Constraints.Width
		}
		if child.Constraints.hasExplicitHeight() {
			h = *child.Constraints.Height
		}
		x, y := resolveAbsoluteOrigin(child.Constraints, rect, w, h)
		lt, err := layoutNode(child, childPath, x, y, w, h, cache, layoutCache, dirty)
		if err != nil {
			return err
		}
		tree.Children = append(tree.Children, lt)
	}
	return nil
}

func resolveAbsoluteOrigin(c LayoutConstraints, parent Rect, w, h int) (int, int) {
	x, y := parent.X, parent.Y
	if c.Left != nil {
		x = parent.X + *c.Left
	} else if c.Right != nil {
		x = parent.Right() - *c.Right - w
	}
	if c.Top != nil {
		y = parent.Y + *c.Top
	} else if c.Bottom != nil {
		y = parent.Bottom() - *c.Bottom - h
	}
	return x, y
}

// reserveScrollbars shrinks the cross-axis available space by one cell
// whenever the container has Overflow == OverflowScroll, whether or not its
// content actually overflows. The main axis is never reduced and no second
// reservation pass is made.
func reserveScrollbars(node *VNode, mainAvail, crossAvail int, axis Axis) (int, int) {
	if node.Constraints.Overflow != OverflowScroll {
		return mainAvail, crossAvail
	}
	// A stack's scrollbar only ever occupies the cross axis (the main axis
	// scrolls, the cross axis does not wrap), so one reservation pass
	// suffices here. box/grid can overflow on both axes at once and go
	// through reserveBoxScrollbars below instead.
	_ = axis
	if crossAvail > 0 {
		crossAvail--
	}
	return mainAvail, crossAvail
}

// reserveBoxScrollbars shrinks a box/grid's available width and height to
// leave room for a vertical and/or horizontal scrollbar track when the
// container scrolls. Unlike reserveScrollbars (stack family, cross-axis
// only), box/grid content can overflow either axis independently, so both
// dimensions are reserved symmetrically.
func reserveBoxScrollbars(node *VNode, w, h int) (int, int) {
	if node.Constraints.Overflow != OverflowScroll {
		return w, h
	}
	if w > 0 {
		w--
	}
	if h > 0 {
		h--
	}
	return w, h
}

// clampScrollOffset bounds a requested scroll offset to [0, extent] on each
// axis — content can never be scrolled past its own end (§8 scenario: a
// requested scrollY of 9999 against an 80-cell extent clamps to 80).
func clampScrollOffset(extent Size, scrollX, scrollY int) (int, int) {
	return clampToMinMax(scrollX, 0, extent.W), clampToMinMax(scrollY, 0, extent.H)
}

func indexSuffix(i int) string {
	return "[" + itoa(i) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

func kindName(k Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "node"
}

var kindNames = map[Kind]string{
	KindText: "text", KindButton: "button", KindInput: "input", KindSpacer: "spacer",
	KindDivider: "divider", KindIcon: "icon", KindSpinner: "spinner", KindProgress: "progress",
	KindRow: "row", KindColumn: "column", KindBox: "box", KindGrid: "grid",
	KindTable: "table", KindTree: "tree", KindCodeEditor: "codeEditor",
	KindDiffViewer: "diffViewer", KindLogsConsole: "logsConsole",
	KindModal: "modal", KindDropdown: "dropdown", KindLayer: "layer",
	KindCommandPalette: "commandPalette", KindToolApprovalDialog: "toolApprovalDialog",
	KindToastContainer: "toastContainer",
}
