package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampScrollOffsetBoundsToExtent(t *testing.T) {
	// A requested scrollY of 9999 against an 80-cell extent clamps to 80
	// (§8 scenario 3).
	_, y := clampScrollOffset(Size{W: 0, H: 80}, 0, 9999)
	assert.Equal(t, 80, y)
}

func TestClampScrollOffsetNeverNegative(t *testing.T) {
	x, y := clampScrollOffset(Size{W: 10, H: 10}, -5, -1)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestLayoutRowDistributesFlexGrow(t *testing.T) {
	frame := NewFrame()
	a := &VNode{Kind: KindSpacer, Constraints: LayoutConstraints{FlexGrow: 1}}
	bw := 10
	b := &VNode{Kind: KindText, Constraints: LayoutConstraints{Width: &bw}, Props: textProps{}}
	row := &VNode{Kind: KindRow, Children: []*VNode{a, b}}
	for _, n := range []*VNode{a, b, row} {
		frame.Alloc(n)
	}

	tree, err := layout(row, 30, 1, NewMeasureCache(), NewLayoutCache(), nil)
	require.NoError(t, err)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, 20, tree.Children[0].Rect.W)
	assert.Equal(t, 10, tree.Children[1].Rect.W)
}

func TestLayoutAbsoluteChildIgnoresNormalFlow(t *testing.T) {
	frame := NewFrame()
	top, left := 2, 3
	w, h := 5, 1
	abs := &VNode{
		Kind: KindText,
		Constraints: LayoutConstraints{
			Position: PositionAbsolute, Top: &top, Left: &left,
			Width: &w, Height: &h,
		},
		Props: textProps{Content: "x"},
	}
	root := &VNode{Kind: KindRow, Children: []*VNode{abs}}
	frame.Alloc(abs)
	frame.Alloc(root)

	tree, err := layout(root, 40, 10, NewMeasureCache(), NewLayoutCache(), nil)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, Rect{X: 3, Y: 2, W: 5, H: 1}, tree.Children[0].Rect)
}

func TestValidateConstraintsRejectsPercentageColumns(t *testing.T) {
	c := LayoutConstraints{Columns: "50% 50%"}
	err := validateConstraints(c, "root/grid")
	require.Error(t, err)
	var ip *InvalidProps
	assert.ErrorAs(t, err, &ip)
}

func TestValidateConstraintsRejectsInvertedMinMax(t *testing.T) {
	c := LayoutConstraints{MinWidth: 10, MaxWidth: 5}
	err := validateConstraints(c, "root")
	require.Error(t, err)
}
