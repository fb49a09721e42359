package tuicore

import "math"

// gridTrackWeight returns the relative growth weight of the i'th column
// track given its spec token. The canonical engine has no star/fr-track
// support (§9 Open Questions, decided: out of scope) — every token gets
// uniform weight 1. This hook exists so a future extension can special-
// case weighted tracks without touching the placement algorithm below.
func gridTrackWeight(_ string) float64 {
	return 1
}

// gridColumnCount infers the number of columns from a track spec: the
// token count of the whitespace-separated "columns" string (§4.1 "Grid
// track inference"). An empty spec falls back to 1 column (every child in
// a single column, like a plain vertical stack).
func gridColumnCount(spec string) int {
	toks := splitTrackTokens(spec)
	if len(toks) == 0 {
		return 1
	}
	return len(toks)
}

// gridRowCount returns the explicit row count if set, else the row-major
// ceiling inferred from child count and column count.
func gridRowCount(explicitRows, childCount, cols int) int {
	if explicitRows > 0 {
		return explicitRows
	}
	if cols <= 0 {
		cols = 1
	}
	return int(math.Ceil(float64(childCount) / float64(cols)))
}

// gridCell is one placed child's (col, row) coordinate, assigned row-major.
// Children beyond rows*cols capacity are dropped (not wrapped into an
// overflow row) per §4.1 "capacity drop".
type gridCell struct {
	child    *VNode
	col, row int
}

// placeGridCells assigns each non-absolute child a row-major (col,row)
// slot, dropping any that exceed rows*cols capacity.
func placeGridCells(children []*VNode, cols, rows int) []gridCell {
	capacity := cols * rows
	cells := make([]gridCell, 0, len(children))
	idx := 0
	for _, child := range children {
		if child.Constraints.Position == PositionAbsolute {
			continue
		}
		if idx >= capacity {
			break
		}
		cells = append(cells, gridCell{child: child, col: idx % cols, row: idx / cols})
		idx++
	}
	return cells
}

// gridLayout resolves a grid's column count, row count and per-track
// (explicit) gaps from its constraints and props, preferring explicit
// LayoutConstraints fields over Props duplicates.
func gridLayout(node *VNode) (cols, rows, colGap, rowGap int, spec string) {
	gp, _ := node.Props.(gridProps)
	spec = node.Constraints.Columns
	if spec == "" {
		spec = gp.Columns
	}
	cols = gridColumnCount(spec)
	explicitRows := gp.ExplicitRows
	rows = gridRowCount(explicitRows, len(activeChildren(node)), cols)
	colGap = node.Constraints.ColumnGap
	if colGap == 0 {
		colGap = gp.ColGap
	}
	rowGap = node.Constraints.RowGap
	if rowGap == 0 {
		rowGap = gp.RowGap
	}
	return
}

// measureGrid computes a grid's intrinsic size as the sum of each column's
// max child width plus gaps, and each row's max child height plus gaps —
// generalizing the donor's uniform-cell-size grid (equal division of width
// and height across all tracks) to per-track intrinsic sizing, since each
// column/row is measured independently.
func measureGrid(node *VNode, maxW, maxH int, cache *MeasureCache, dirty DirtySet) (Size, error) {
	cols, rows, colGap, rowGap, _ := gridLayout(node)
	cells := placeGridCells(node.Children, cols, rows)
	colW := make([]int, cols)
	rowH := make([]int, rows)
	for _, cell := range cells {
		csz, err := measure(cell.child, AxisColumn, maxW/max(cols, 1), maxH/max(rows, 1), cache, dirty)
		if err != nil {
			return Size{}, err
		}
		colW[cell.col] = max(colW[cell.col], csz.W)
		rowH[cell.row] = max(rowH[cell.row], csz.H)
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
	pt, pr, pb, pl := node.Constraints.Padding[0], node.Constraints.Padding[1], node.Constraints.Padding[2], node.Constraints.Padding[3]
	return Size{W: totalW + pl + pr, H: totalH + pt + pb}, nil
}

func activeChildren(node *VNode) []*VNode {
	out := make([]*VNode, 0, len(node.Children))
	for _, c := range node.Children {
		if c.Constraints.Position != PositionAbsolute {
			out = append(out, c)
		}
	}
	return out
}
