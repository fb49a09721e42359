package tuicore

import "github.com/mattn/go-runewidth"

// Size is a natural size in terminal cells, as returned by measure.
type Size struct {
	W, H int
}

// Rect is an integer rectangle in terminal cells. Coordinates are absolute
// unless documented otherwise (e.g. content-relative before positioning).
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect encloses no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right and Bottom give the exclusive edges of the rect.
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersect returns the overlapping region of r and o. The result is empty
// (W or H <= 0) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether r and o share any cell.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// Contains reports whether point (x,y) falls within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by the given amounts on each side, clamping to zero size.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	w := r.W - left - right
	h := r.H - top - bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + left, Y: r.Y + top, W: w, H: h}
}

// clampRect clamps every field into the documented 32-bit cell range and
// floors negative sizes to zero, per the LayoutTree rect invariant (§3).
func clampRect(x, y, w, h int64) Rect {
	return Rect{
		X: clampCell(x),
		Y: clampCell(y),
		W: clampNonNeg(w),
		H: clampNonNeg(h),
	}
}

// Axis selects the measurement/layout main axis.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

// cellWidth returns the number of terminal cells s occupies, honoring East
// Asian Width: double-width runes consume two cells. Grounded on the
// donor's use of go-runewidth in buffer.go's text-writing methods.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// runeCellWidth returns the cell width of a single rune (1 or 2, 0 for
// zero-width/combining marks).
func runeCellWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// truncateToWidth truncates s so cellWidth(result) <= w, never splitting a
// double-width rune.
func truncateToWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if cellWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "")
}
