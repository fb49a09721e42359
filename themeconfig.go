package tuicore

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// themeDocument is the on-disk TOML shape a Theme is decoded from, e.g.:
//
//	spacing = [0, 1, 2, 4, 8]
//
//	[colors]
//	primary   = "#4C8BF5"
//	danger    = "#E5484D"
//	muted     = "default"
type themeDocument struct {
	Spacing []int             `toml:"spacing"`
	Colors  map[string]string `toml:"colors"`
}

// LoadThemeFile decodes a TOML theme document from path into a Theme.
// Grounded on the donor pack's own BurntSushi/toml dependency (indirect in
// the donor's go.mod, promoted to direct here since configuration loading
// is an ambient concern every complete implementation needs — see
// SPEC_FULL.md §10).
func LoadThemeFile(path string) (*Theme, error) {
	var doc themeDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("decode theme file %s: %w", path, err)
	}
	return buildTheme(doc)
}

// LoadThemeString decodes a TOML theme document from a string, primarily
// for tests and embedded default themes.
func LoadThemeString(s string) (*Theme, error) {
	var doc themeDocument
	if _, err := toml.Decode(s, &doc); err != nil {
		return nil, fmt.Errorf("decode theme string: %w", err)
	}
	return buildTheme(doc)
}

func buildTheme(doc themeDocument) (*Theme, error) {
	th := &Theme{Colors: make(map[string]Color, len(doc.Colors)), Spacing: doc.Spacing}
	for key, val := range doc.Colors {
		c, err := parseThemeColor(val)
		if err != nil {
			return nil, &InvalidProps{Detail: fmt.Sprintf("theme color %q: %v", key, err), Path: "theme/colors/" + key}
		}
		th.Colors[key] = c
	}
	return th, nil
}

// parseThemeColor accepts "default" or a "#rrggbb" hex literal; any other
// form is rejected rather than guessed at.
func parseThemeColor(val string) (Color, error) {
	if val == "default" || val == "" {
		return DefaultColor(), nil
	}
	if len(val) == 7 && val[0] == '#' {
		r, okR := hexByte(val[1:3])
		g, okG := hexByte(val[3:5])
		b, okB := hexByte(val[5:7])
		if okR && okG && okB {
			return RGB(r, g, b), nil
		}
	}
	return Color{}, fmt.Errorf("unrecognized color literal %q (want \"default\" or \"#rrggbb\")", val)
}

func hexByte(s string) (uint8, bool) {
	hi, ok1 := hexNibble(s[0])
	lo, ok2 := hexNibble(s[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
