package tuicore

import "github.com/rivo/uniseg"

// resolveNodeCursor reports the screen cursor position a focused,
// cursor-bearing node would place the hardware cursor at, if node is
// focused and visible within clip. Grounded on the donor's cursor
// resolution (layer.go/cursor.go ScreenCursor), generalized across every
// cursor-bearing kind instead of one hardcoded widget, and moved from
// terminal-escape emission (out of scope, §1) to pure coordinate math.
func resolveNodeCursor(t *LayoutTree, runtime *RuntimeInstance, clip Rect, focus FocusState, cursorState CursorState) (CursorInfo, bool) {
	node := t.VNode
	if !focus.IsFocused(node.ID) {
		return CursorInfo{}, false
	}
	x, y, ok := cursorCellForKind(t, runtime, cursorState)
	if !ok {
		return CursorInfo{}, false
	}
	if !clip.Contains(x, y) {
		return CursorInfo{}, false
	}
	return CursorInfo{X: x, Y: y, Visible: true}, true
}

func cursorCellForKind(t *LayoutTree, runtime *RuntimeInstance, cursorState CursorState) (int, int, bool) {
	switch t.VNode.Kind {
	case KindInput:
		ip, _ := t.VNode.Props.(inputProps)
		offset := cursorState.OffsetFor(t.VNode.ID, ip.Value)
		col := graphemeColumn(ip.Value, offset)
		return t.Rect.X + col, t.Rect.Y, true
	case KindCodeEditor:
		cp, ok := t.VNode.Props.(codeEditorProps)
		if !ok {
			return 0, 0, false
		}
		gutterW := gutterWidth(len(cp.Lines))
		line := cp.CursorLine
		if line < 0 {
			line = 0
		}
		col := 0
		if line < len(cp.Lines) {
			col = graphemeColumn(cp.Lines[line], cp.CursorCol)
		}
		// +2 matches renderCodeEditor's content column: one blank cell left
		// of the gutter and one gap cell between gutter and source text.
		// Source line r is drawn on row rect.Y + r.
		return t.Rect.X + gutterW + 2 + col, t.Rect.Y + (line - scrollOf(runtime)), true
	default:
		return 0, 0, false
	}
}

// graphemeColumn converts a grapheme-cluster offset within s into a cell
// column, honoring both grapheme clustering (via uniseg) and East Asian
// Width (via cellWidth) — a combining-mark sequence is one cursor stop
// even though it may render as one wide glyph.
func graphemeColumn(s string, graphemeOffset int) int {
	col := 0
	gr := uniseg.NewGraphemes(s)
	i := 0
	for gr.Next() {
		if i >= graphemeOffset {
			break
		}
		col += cellWidth(gr.Str())
		i++
	}
	return col
}

// gutterWidth is the code editor's line-number gutter width: the decimal
// digit count of the highest line number, plus 1 for breathing room
// (1..9 lines -> 2, 10..99 -> 3, 100..999 -> 4).
func gutterWidth(lineCount int) int {
	if lineCount <= 0 {
		return 1 + 1
	}
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}

func scrollOf(runtime *RuntimeInstance) int {
	if runtime == nil {
		return 0
	}
	return runtime.ScrollY
}
