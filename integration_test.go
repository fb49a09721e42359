package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLayoutThenRenderProducesExpectedDrawlist exercises layout() and
// renderToDrawlist() together against a small two-button row with a border,
// checking that layout positions feed directly into the renderer's drawlist
// without needing any app-level glue.
func TestLayoutThenRenderProducesExpectedDrawlist(t *testing.T) {
	frame := NewFrame()
	defer frame.Reset()

	left := &VNode{Kind: KindButton, ID: "left", Props: textProps{Content: "OK"}}
	right := &VNode{Kind: KindButton, ID: "right", Props: textProps{Content: "Cancel"}}
	root := &VNode{
		Kind: KindRow,
		Props: boxProps{},
		Constraints: LayoutConstraints{
			Gap: 1,
		},
		Children: []*VNode{left, right},
	}
	for _, n := range []*VNode{left, right, root} {
		frame.Alloc(n)
	}

	cache := NewMeasureCache()
	layoutCache := NewLayoutCache()
	tree, err := layout(root, 40, 5, cache, layoutCache, nil)
	require.NoError(t, err)
	require.Len(t, tree.Children, 2)

	b := &RecordingBuilder{}
	th := &Theme{Colors: map[string]Color{"primary": RGB(10, 20, 30)}}
	viewport := Rect{X: 0, Y: 0, W: 40, H: 5}
	cursor, err := renderToDrawlist(tree, &RuntimeInstance{}, viewport, th, FocusState{}, CursorState{}, nil, nil, b)
	require.NoError(t, err)
	assert.False(t, cursor.Visible)
	assert.NotEmpty(t, b.Ops)

	var texts []string
	for _, op := range b.Ops {
		if op.Kind == OpDrawText {
			texts = append(texts, op.Text)
		}
	}
	assert.Contains(t, texts, "OK")
	assert.Contains(t, texts, "Cancel")
}

// TestLayoutThenRenderResolvesFocusedInputCursor checks that a focused
// KindInput leaf's cursor is resolved through the full pipeline.
func TestLayoutThenRenderResolvesFocusedInputCursor(t *testing.T) {
	frame := NewFrame()
	defer frame.Reset()

	input := &VNode{Kind: KindInput, ID: "search", Props: inputProps{Value: "hello"}}
	root := &VNode{Kind: KindColumn, Children: []*VNode{input}}
	for _, n := range []*VNode{input, root} {
		frame.Alloc(n)
	}

	cache := NewMeasureCache()
	layoutCache := NewLayoutCache()
	tree, err := layout(root, 40, 5, cache, layoutCache, nil)
	require.NoError(t, err)

	b := &RecordingBuilder{}
	focus := FocusState{FocusedID: "search"}
	viewport := Rect{X: 0, Y: 0, W: 40, H: 5}
	cursor, err := renderToDrawlist(tree, &RuntimeInstance{}, viewport, nil, focus, CursorState{}, nil, nil, b)
	require.NoError(t, err)
	assert.True(t, cursor.Visible)
	assert.Equal(t, tree.Children[0].Rect.Y, cursor.Y)
}
