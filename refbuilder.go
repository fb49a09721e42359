package tuicore

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// CellBufBuilder is the reference DrawlistBuilder implementation: it
// backs every primitive with a charmbracelet/x/cellbuf cell grid and
// renders styled spans through lipgloss, so the profile-aware ANSI
// encoding a real terminal needs is never hand-rolled (§11 domain stack).
// Terminal I/O itself (writing bytes to a pty, reading terminfo) stays out
// of scope (§1) — Render below just returns the composed string.
type CellBufBuilder struct {
	buf           *cellbuf.Buffer
	clipStack     []Rect
	profile       lipgloss.Profile
	pendingStyles []styledSpan
}

// NewCellBufBuilder allocates a builder backed by a width x height cell
// grid, using profile to decide how styles degrade (true color, 256-color,
// or plain).
func NewCellBufBuilder(width, height int, profile lipgloss.Profile) *CellBufBuilder {
	return &CellBufBuilder{
		buf:       cellbuf.NewBuffer(width, height),
		clipStack: []Rect{{X: 0, Y: 0, W: width, H: height}},
		profile:   profile,
	}
}

func (c *CellBufBuilder) clip() Rect {
	return c.clipStack[len(c.clipStack)-1]
}

// DrawText writes s starting at (x, y), clipped to the active clip rect and
// to the buffer bounds. Cells are stamped without style; the whole span and
// its style are recorded, and lipgloss styling is applied only in Render.
func (c *CellBufBuilder) DrawText(x, y int, s string, style Style) {
	clip := c.clip()
	col := x
	for _, r := range s {
		w := runeCellWidth(r)
		if w == 0 {
			continue
		}
		if clip.Contains(col, y) {
			c.buf.SetCell(col, y, cellbuf.NewCellString(string(r)))
		}
		col += w
	}
	// Style application happens at Render time (see renderStyledLine); this
	// pass only needs to record the span and stamp the cell grid for clip
	// bookkeeping.
	c.pendingStyles = append(c.pendingStyles, styledSpan{x: x, y: y, text: s, style: style})
}

type styledSpan struct {
	x, y int
	text string
	style Style
}

// FillRect fills rect (clamped to the clip) with cell repeated.
func (c *CellBufBuilder) FillRect(rect Rect, cell rune, style Style) {
	area := rect.Intersect(c.clip())
	if area.Empty() {
		return
	}
	line := repeatGlyph(cell, area.W)
	for y := area.Y; y < area.Bottom(); y++ {
		c.DrawText(area.X, y, line, style)
	}
}

// PushClip intersects rect with the current clip and pushes it.
func (c *CellBufBuilder) PushClip(rect Rect) {
	c.clipStack = append(c.clipStack, rect.Intersect(c.clip()))
}

// PopClip pops the most recently pushed clip.
func (c *CellBufBuilder) PopClip() {
	if len(c.clipStack) > 1 {
		c.clipStack = c.clipStack[:len(c.clipStack)-1]
	}
}

// Render returns every recorded span, styled via lipgloss, one span per
// line in drawing order. The output does not reflect span positions,
// clipping or overdraw, and the cell grid is not read.
func (c *CellBufBuilder) Render() string {
	var sb strings.Builder
	for _, span := range c.pendingStyles {
		sb.WriteString(renderStyledLine(span, c.profile))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderStyledLine(span styledSpan, profile lipgloss.Profile) string {
	st := lipgloss.NewStyle()
	if span.style.FG.Mode == ColorRGB {
		st = st.Foreground(lipgloss.Color(hexOf(span.style.FG)))
	}
	if span.style.BG.Mode == ColorRGB {
		st = st.Background(lipgloss.Color(hexOf(span.style.BG)))
	}
	if span.style.Bold {
		st = st.Bold(true)
	}
	if span.style.Italic {
		st = st.Italic(true)
	}
	if span.style.Underline {
		st = st.Underline(true)
	}
	if span.style.Dim {
		st = st.Faint(true)
	}
	if span.style.Inverse {
		st = st.Reverse(true)
	}
	renderer := lipgloss.NewRenderer(nil)
	renderer.SetColorProfile(profile)
	return st.Renderer(renderer).Render(span.text)
}

func hexOf(c Color) string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 7)
	b[0] = '#'
	put := func(i int, v uint8) {
		b[i] = hexDigits[v>>4]
		b[i+1] = hexDigits[v&0xf]
	}
	put(1, c.R)
	put(3, c.G)
	put(5, c.B)
	return string(b)
}
