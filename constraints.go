package tuicore

// LayoutConstraints is the per-node sizing contract attached to a VNode,
// generalized from the donor's per-kind width/height/flexGrow/percentWidth
// fields (tui.go's flex struct) into one shared shape every family reads.
type LayoutConstraints struct {
	Width, Height         *int // explicit cell size; nil means "intrinsic"
	MinWidth, MinHeight   int
	MaxWidth, MaxHeight   int // 0 means unbounded
	FlexGrow, FlexShrink  float64
	FlexBasis             *int // nil means "use intrinsic size as basis"
	Position              Position
	Top, Right, Bottom, Left *int // only meaningful when Position == PositionAbsolute
	Margin                 [4]int // top, right, bottom, left
	Padding                [4]int
	Overflow               Overflow
	Justify                Justify
	Gap                    int
	Columns                string // grid track spec, e.g. "1 1 1" or "a b c"; "" means unspecified
	RowGap, ColumnGap      int
}

// hasExplicitWidth/hasExplicitHeight report whether the node pins a size on
// that axis rather than deferring to intrinsic measurement.
func (c LayoutConstraints) hasExplicitWidth() bool  { return c.Width != nil }
func (c LayoutConstraints) hasExplicitHeight() bool { return c.Height != nil }

// clampToMinMax clamps v into [min, max] on one axis; max<=0 means unbounded.
func clampToMinMax(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}

// validateConstraints rejects negative or inverted min/max sizes, negative
// flex factors, and percentage-suffixed grid column tokens (see
// rejectLegacyColumns). Breakpoint-map constraints are not detected. path
// is used to build the InvalidProps locator.
func validateConstraints(c LayoutConstraints, path string) error {
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return &InvalidProps{Detail: "min width/height must be >= 0", Path: path}
	}
	if c.MaxWidth < 0 || c.MaxHeight < 0 {
		return &InvalidProps{Detail: "max width/height must be >= 0", Path: path}
	}
	if c.MaxWidth > 0 && c.MinWidth > c.MaxWidth {
		return &InvalidProps{Detail: "minWidth exceeds maxWidth", Path: path}
	}
	if c.MaxHeight > 0 && c.MinHeight > c.MaxHeight {
		return &InvalidProps{Detail: "minHeight exceeds maxHeight", Path: path}
	}
	if c.FlexGrow < 0 || c.FlexShrink < 0 {
		return &InvalidProps{Detail: "flexGrow/flexShrink must be >= 0", Path: path}
	}
	if err := rejectLegacyColumns(c.Columns, path); err != nil {
		return err
	}
	return nil
}

// rejectLegacyColumns rejects a grid "columns" spec containing any track
// token with a percentage suffix ("50%"); percentages are never resolved.
// Only the Columns spec is checked, and no other legacy form is recognized.
func rejectLegacyColumns(spec string, path string) error {
	for _, tok := range splitTrackTokens(spec) {
		if hasPercentSuffix(tok) {
			return &InvalidProps{Detail: "percentage track sizes are not supported: " + tok, Path: path}
		}
	}
	return nil
}

func hasPercentSuffix(tok string) bool {
	return len(tok) > 0 && tok[len(tok)-1] == '%'
}

// splitTrackTokens splits a grid track spec on whitespace, used both for
// validation and for column-count inference (grid.go).
func splitTrackTokens(spec string) []string {
	var toks []string
	start := -1
	for i, r := range spec {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				toks = append(toks, spec[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, spec[start:])
	}
	return toks
}
