package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleMergeInheritsBooleansAdditively(t *testing.T) {
	parent := Style{Bold: true}
	child := Style{Italic: true}
	merged := parent.Merge(child)
	assert.True(t, merged.Bold)
	assert.True(t, merged.Italic)
}

func TestStyleMergeChildColorOverridesParent(t *testing.T) {
	parent := Style{FG: RGB(255, 0, 0)}
	child := Style{FG: RGB(0, 255, 0)}
	merged := parent.Merge(child)
	assert.Equal(t, RGB(0, 255, 0), merged.FG)
}

func TestStyleMergeDefaultChildColorDoesNotOverride(t *testing.T) {
	parent := Style{FG: RGB(255, 0, 0)}
	child := Style{} // FG left at ColorDefault
	merged := parent.Merge(child)
	assert.Equal(t, RGB(255, 0, 0), merged.FG)
}

func TestStyleMergeUnderlineSubfieldsTravelTogether(t *testing.T) {
	parent := Style{}
	child := Style{Underline: true, UnderlineStyle: UnderlineCurly, UnderlineColor: RGB(1, 2, 3)}
	merged := parent.Merge(child)
	assert.True(t, merged.Underline)
	assert.Equal(t, UnderlineCurly, merged.UnderlineStyle)
	assert.Equal(t, RGB(1, 2, 3), merged.UnderlineColor)
}

func TestBlendColorEndpoints(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(255, 255, 255)
	assert.Equal(t, a, BlendColor(a, b, 0))
	assert.Equal(t, b, BlendColor(a, b, 1))
}

func TestBlendColorNonRGBFallsBackByThreshold(t *testing.T) {
	a, b := DefaultColor(), RGB(255, 255, 255)
	assert.Equal(t, a, BlendColor(a, b, 0.4))
	assert.Equal(t, b, BlendColor(a, b, 0.6))
}

func TestResolveBorderKnownKinds(t *testing.T) {
	for _, kind := range []BorderKind{BorderSingle, BorderDouble, BorderRounded, BorderThick} {
		bs, ok := resolveBorder(kind)
		assert.True(t, ok)
		assert.NotZero(t, bs.TopLeft)
	}
}

func TestResolveBorderNoneIsAbsent(t *testing.T) {
	_, ok := resolveBorder(BorderNone)
	assert.False(t, ok)
}
