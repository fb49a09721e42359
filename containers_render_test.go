package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProgressBarFillsProportionally(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{Rect: Rect{X: 0, Y: 0, W: 12, H: 1}}
	node := &VNode{Kind: KindProgress, Props: progressProps{Value: 5, Max: 10}}
	renderProgressBar(tree, node, Style{}, b)

	require.Len(t, b.Ops, 4) // "[", filled, empty, "]"
	assert.Equal(t, "[", b.Ops[0].Text)
	assert.Equal(t, OpFillRect, b.Ops[1].Kind)
	assert.Equal(t, 5, b.Ops[1].Rect.W) // half of width-2=10
	assert.Equal(t, "]", b.Ops[3].Text)
}

func TestRenderProgressBarClampsOverfullValue(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{Rect: Rect{X: 0, Y: 0, W: 12, H: 1}}
	node := &VNode{Kind: KindProgress, Props: progressProps{Value: 50, Max: 10}}
	renderProgressBar(tree, node, Style{}, b)
	assert.Equal(t, 10, b.Ops[1].Rect.W)
}

func TestRenderContainerDecorationDrawsCornersAndTitle(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		VNode: &VNode{Kind: KindBox, Props: boxProps{Border: BorderSingle, Sides: AllSides(), Title: "panel"}},
		Rect:  Rect{X: 0, Y: 0, W: 10, H: 5},
	}
	renderContainerDecoration(tree, Style{}, b)
	assert.NotEmpty(t, b.Ops)

	var sawTopLeft, sawTitle bool
	for _, op := range b.Ops {
		if op.Kind == OpDrawText && op.Text == "┌" {
			sawTopLeft = true
		}
		if op.Kind == OpDrawText && op.Text == " panel " {
			sawTitle = true
		}
	}
	assert.True(t, sawTopLeft)
	assert.True(t, sawTitle)
}

func TestRenderContainerDecorationSkipsWhenBorderNone(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		VNode: &VNode{Kind: KindBox, Props: boxProps{Border: BorderNone}},
		Rect:  Rect{X: 0, Y: 0, W: 10, H: 5},
	}
	renderContainerDecoration(tree, Style{}, b)
	assert.Empty(t, b.Ops)
}

func TestRenderScrollbarDrawsTrackAndThumb(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		Rect:         Rect{X: 0, Y: 0, W: 10, H: 10},
		ScrollExtent: Size{H: 10},
	}
	runtime := &RuntimeInstance{ScrollY: 5}
	renderScrollbar(tree, runtime, Style{}, b)
	require.Len(t, b.Ops, 2)
	assert.Equal(t, '│', b.Ops[0].Cell)
	assert.Equal(t, '█', b.Ops[1].Cell)
}

func TestRenderScrollbarSkipsWhenNoOverflow(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{Rect: Rect{X: 0, Y: 0, W: 10, H: 10}, ScrollExtent: Size{H: 0}}
	renderScrollbar(tree, &RuntimeInstance{}, Style{}, b)
	assert.Empty(t, b.Ops)
}

func TestRenderScrollbarDrawsHorizontalTrackAndThumb(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		Rect:         Rect{X: 0, Y: 0, W: 10, H: 10},
		ScrollExtent: Size{W: 10},
	}
	runtime := &RuntimeInstance{ScrollX: 5}
	renderScrollbar(tree, runtime, Style{}, b)
	require.Len(t, b.Ops, 2)
	assert.Equal(t, '─', b.Ops[0].Cell)
	assert.Equal(t, '█', b.Ops[1].Cell)
}

func TestRenderScrollbarDrawsCornerWhenBothAxesOverflow(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		Rect:         Rect{X: 0, Y: 0, W: 10, H: 10},
		ScrollExtent: Size{W: 10, H: 10},
	}
	renderScrollbar(tree, &RuntimeInstance{}, Style{}, b)
	require.Len(t, b.Ops, 5) // v track, v thumb, h track, h thumb, corner
	assert.Equal(t, ' ', b.Ops[4].Cell)
	assert.Equal(t, 1, b.Ops[4].Rect.W)
	assert.Equal(t, 1, b.Ops[4].Rect.H)
}

func TestRenderLeafInputShowsPlaceholderWhenEmpty(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{VNode: &VNode{Kind: KindInput, Props: inputProps{Placeholder: "search"}}, Rect: Rect{X: 0, Y: 0, W: 10, H: 1}}
	renderLeaf(tree, Style{}, b, FocusState{})
	require.Len(t, b.Ops, 1)
	assert.Equal(t, "search", b.Ops[0].Text)
	assert.True(t, b.Ops[0].Style.Dim)
}

func TestResolveThemedColorsSubstitutesNamedKeys(t *testing.T) {
	th := &Theme{Colors: map[string]Color{"primary": RGB(1, 2, 3)}}
	style := Style{FG: Named("primary")}
	resolved := resolveThemedColors(style, th)
	assert.Equal(t, RGB(1, 2, 3), resolved.FG)
}

func TestResolveThemedColorsPassesThroughWhenThemeNil(t *testing.T) {
	style := Style{FG: Named("primary")}
	resolved := resolveThemedColors(style, nil)
	assert.Equal(t, style, resolved)
}

func TestRenderLeafUnmodeledKindFillsBlank(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{VNode: &VNode{Kind: KindHeatmap}, Rect: Rect{X: 0, Y: 0, W: 3, H: 3}}
	renderLeaf(tree, Style{}, b, FocusState{})
	require.Len(t, b.Ops, 1)
	assert.Equal(t, OpFillRect, b.Ops[0].Kind)
}
