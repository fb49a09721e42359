package tuicore

// Theme is an open semantic-color/spacing palette, generalized from the
// donor's ThemeEx struct (which hardcoded a fixed set of named fields)
// into an open map so new semantic keys never require a struct change.
// Individual color values are explicitly out of scope (§1 Non-goals:
// "theme color palettes") — what's in scope is the resolution mechanism a
// Named color goes through during rendering.
type Theme struct {
	Colors  map[string]Color
	Spacing []int
}

// defaultSpacing is used when a Theme supplies no Spacing scale, one of the
// few ambient defaults this engine commits to since layout needs some
// spacing unit even in the absence of a theme.
var defaultSpacing = []int{0, 1, 2, 4, 8}

// resolve substitutes a ColorNamed color for its theme.Colors entry. Any
// other mode (default/RGB), or a name with no entry, passes through
// unchanged — a missing semantic key degrades silently rather than erroring
// (§9 Design Notes), since a theme is allowed to be partial.
func (th *Theme) resolve(c Color) Color {
	if th == nil || c.Mode != ColorNamed {
		return c
	}
	if resolved, ok := th.Colors[c.Name]; ok {
		return resolved
	}
	return c
}

// SpacingUnit returns the i'th step of the theme's spacing scale, clamping
// to the last defined step for an out-of-range index, or to
// defaultSpacing when the theme defines none.
func (th *Theme) SpacingUnit(i int) int {
	scale := defaultSpacing
	if th != nil && len(th.Spacing) > 0 {
		scale = th.Spacing
	}
	if i < 0 {
		i = 0
	}
	if i >= len(scale) {
		i = len(scale) - 1
	}
	return scale[i]
}
