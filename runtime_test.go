package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeForReturnsZeroValueWhenNil(t *testing.T) {
	ri := runtimeFor(nil, 3)
	assert.NotNil(t, ri)
	assert.Equal(t, 0, ri.ScrollY)
}

func TestRuntimeForReturnsZeroValueWhenIndexOutOfRange(t *testing.T) {
	parent := &RuntimeInstance{Children: []*RuntimeInstance{{ScrollY: 5}}}
	ri := runtimeFor(parent, 4)
	assert.Equal(t, 0, ri.ScrollY)
}

func TestRuntimeForReturnsActualChild(t *testing.T) {
	child := &RuntimeInstance{ScrollY: 7}
	parent := &RuntimeInstance{Children: []*RuntimeInstance{child}}
	assert.Same(t, child, runtimeFor(parent, 0))
}

func TestFocusStateIsFocused(t *testing.T) {
	fs := FocusState{FocusedID: "input1"}
	assert.True(t, fs.IsFocused("input1"))
	assert.False(t, fs.IsFocused("input2"))
	assert.False(t, fs.IsFocused(""))
}

func TestBuildIdRectIndexLastWriteWinsOnDuplicateIDs(t *testing.T) {
	tree := &LayoutTree{
		VNode: &VNode{ID: "dup"},
		Rect:  Rect{X: 0, Y: 0, W: 1, H: 1},
		Children: []*LayoutTree{
			{VNode: &VNode{ID: "dup"}, Rect: Rect{X: 5, Y: 5, W: 1, H: 1}},
		},
	}
	idx := buildIdRectIndex(tree)
	assert.Equal(t, Rect{X: 5, Y: 5, W: 1, H: 1}, idx["dup"])
}

func TestCursorStateOffsetForReturnsRecordedOffset(t *testing.T) {
	cs := CursorState{ByID: map[string]int{"search": 3}}
	assert.Equal(t, 3, cs.OffsetFor("search", "hello world"))
}

func TestCursorStateOffsetForDefaultsToEndOfValue(t *testing.T) {
	cs := CursorState{}
	assert.Equal(t, 5, cs.OffsetFor("missing", "hello"))
}

func TestBuildIdRectIndexSkipsEmptyIDs(t *testing.T) {
	tree := &LayoutTree{
		VNode: &VNode{ID: ""},
		Rect:  Rect{X: 0, Y: 0, W: 1, H: 1},
	}
	idx := buildIdRectIndex(tree)
	assert.Empty(t, idx)
}
