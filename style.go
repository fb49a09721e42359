package tuicore

import "github.com/lucasb-eyer/go-colorful"

// ColorMode tags how a Color's channels should be interpreted. Grounded on
// the donor's tui.go (package forme) ColorMode/Color pair.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default, no override
	ColorNamed                    // theme.colors semantic key, resolved at render time
	ColorRGB                      // 24-bit true color, r/g/b each 0-255
)

// Color is a terminal color: either the terminal default, a named theme
// token (§6 "or a named theme key"), or an explicit RGB triple.
type Color struct {
	Mode ColorMode
	R, G, B uint8
	Name    string
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color { return Color{Mode: ColorDefault} }

// RGB returns an explicit 24-bit color.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorRGB, R: r, G: g, B: b} }

// Named returns a color that resolves against theme.colors at render time.
func Named(key string) Color { return Color{Mode: ColorNamed, Name: key} }

// colorful converts an RGB-mode Color to a go-colorful color for blending.
// Non-RGB colors are not blendable and return black, ok=false.
func (c Color) colorful() (colorful.Color, bool) {
	if c.Mode != ColorRGB {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, true
}

// BlendColor linearly interpolates two RGB colors in a perceptual (Lab)
// color space via go-colorful, used for the backdrop=dim composite (§4.2).
// t=0 returns a, t=1 returns b. If either input is not RGB, no blending
// happens: a is returned for t < 0.5 and b otherwise.
func BlendColor(a, b Color, t float64) Color {
	ca, aok := a.colorful()
	cb, bok := b.colorful()
	if !aok || !bok {
		if t >= 0.5 {
			return b
		}
		return a
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	blended := ca.BlendLab(cb, t)
	r, g, bl := blended.Clamped().RGB255()
	return RGB(r, g, bl)
}

// UnderlineStyle selects the underline glyph shape, per §6.
type UnderlineStyle uint8

const (
	UnderlineStraight UnderlineStyle = iota
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
	UnderlineDouble
)

// Align specifies text alignment within an allotted width.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Style carries inherited text styling. Grounded on the donor's tui.go
// Style struct, extended with UnderlineStyle/UnderlineColor (§6).
type Style struct {
	FG, BG         Color
	Bold           bool
	Italic         bool
	Underline      bool
	UnderlineStyle UnderlineStyle
	UnderlineColor Color
	Inverse        bool
	Dim            bool
}

// Merge returns a copy of child with any zero-valued field replaced by the
// parent's value, implementing the renderer's style-inheritance rule (§4.2):
// parentStyle is merged per kind, boolean attributes are additive (a child
// that doesn't set Bold still inherits it) while colors are overridden only
// when the child specifies a non-default one.
func (parent Style) Merge(child Style) Style {
	out := parent
	if child.FG.Mode != ColorDefault {
		out.FG = child.FG
	}
	if child.BG.Mode != ColorDefault {
		out.BG = child.BG
	}
	out.Bold = parent.Bold || child.Bold
	out.Italic = parent.Italic || child.Italic
	out.Underline = parent.Underline || child.Underline
	out.Dim = parent.Dim || child.Dim
	out.Inverse = parent.Inverse || child.Inverse
	if child.Underline {
		out.UnderlineStyle = child.UnderlineStyle
		out.UnderlineColor = child.UnderlineColor
	}
	return out
}

// Cell is a single styled terminal character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// BorderKind selects a border glyph set, per §4.2.
type BorderKind uint8

const (
	BorderNone BorderKind = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderStyle names the glyphs used to draw a rectangular border. Grounded
// on the donor's buffer.go BorderStyle + Box* rune tables.
type BorderStyle struct {
	Horizontal, Vertical                        rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

var borderGlyphs = map[BorderKind]BorderStyle{
	BorderSingle: {
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	},
	BorderDouble: {
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	},
	BorderRounded: {
		Horizontal: '─', Vertical: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	},
	BorderThick: {
		Horizontal: '━', Vertical: '┃',
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
	},
}

// resolveBorder returns the glyph set for kind; for BorderNone/unknown kinds
// it returns the zero value and ok=false, which callers treat as "no border".
func resolveBorder(kind BorderKind) (BorderStyle, bool) {
	bs, ok := borderGlyphs[kind]
	return bs, ok
}

// BorderSides toggles which of the four edges are drawn, for per-side
// border configuration on `box` (§4.2).
type BorderSides struct {
	Top, Right, Bottom, Left bool
}

// AllSides returns a BorderSides with every edge enabled.
func AllSides() BorderSides { return BorderSides{true, true, true, true} }
