package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureTextWrapsAtWordBoundary(t *testing.T) {
	sz := measureText("the quick brown fox", true, 10)
	assert.Equal(t, 2, sz.H)
	assert.LessOrEqual(t, sz.W, 10)
}

func TestMeasureTextNoWrapUsesLongestLine(t *testing.T) {
	sz := measureText("short\nmuch longer line", false, 100)
	assert.Equal(t, 2, sz.H)
	assert.Equal(t, cellWidth("much longer line"), sz.W)
}

func TestMeasureTextEmptyContent(t *testing.T) {
	sz := measureText("", true, 10)
	assert.Equal(t, Size{W: 0, H: 1}, sz)
}

func TestMeasureStackRowSumsChildren(t *testing.T) {
	frame := NewFrame()
	a := &VNode{Kind: KindText, Props: textProps{Content: "ab"}}
	b := &VNode{Kind: KindText, Props: textProps{Content: "cde"}}
	row := &VNode{Kind: KindRow, Constraints: LayoutConstraints{Gap: 1}, Children: []*VNode{a, b}}
	for _, n := range []*VNode{a, b, row} {
		frame.Alloc(n)
	}
	sz, err := measure(row, AxisRow, 100, 10, NewMeasureCache(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2+3+1, sz.W) // "ab" + "cde" + 1 gap
	assert.Equal(t, 1, sz.H)
}

func TestMeasureRespectsExplicitWidthHeight(t *testing.T) {
	w, h := 7, 3
	node := &VNode{Kind: KindBox, Constraints: LayoutConstraints{Width: &w, Height: &h}}
	sz, err := measure(node, AxisRow, 100, 100, NewMeasureCache(), nil)
	require.NoError(t, err)
	assert.Equal(t, Size{W: 7, H: 3}, sz)
}

func TestMeasureClampsToMinMax(t *testing.T) {
	node := &VNode{
		Kind:        KindText,
		Constraints: LayoutConstraints{MinWidth: 20, MaxWidth: 0},
		Props:       textProps{Content: "x"},
	}
	sz, err := measure(node, AxisRow, 100, 10, NewMeasureCache(), nil)
	require.NoError(t, err)
	assert.Equal(t, 20, sz.W)
}

func TestMeasureInputUsesWiderOfValueAndPlaceholder(t *testing.T) {
	node := &VNode{Kind: KindInput, Props: inputProps{Value: "hi", Placeholder: "search here"}}
	sz, err := measure(node, AxisRow, 100, 10, NewMeasureCache(), nil)
	require.NoError(t, err)
	assert.Equal(t, cellWidth("search here")+2, sz.W)
	assert.Equal(t, 1, sz.H)
}

func TestMeasureCachesResultPerRef(t *testing.T) {
	frame := NewFrame()
	node := &VNode{Kind: KindText, Props: textProps{Content: "hi"}}
	frame.Alloc(node)
	cache := NewMeasureCache()

	sz1, err := measure(node, AxisRow, 50, 10, cache, nil)
	require.NoError(t, err)
	ref, _ := refOf(node)
	cached, ok := cache.Get(ref, AxisRow, 50, 10, nil)
	require.True(t, ok)
	assert.Equal(t, sz1, cached)
}
