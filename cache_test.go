package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureCacheMissThenHit(t *testing.T) {
	cache := NewMeasureCache()
	ref := Ref{Generation: 1, Index: 0}
	_, ok := cache.Get(ref, AxisRow, 10, 10, nil)
	assert.False(t, ok)

	cache.Put(ref, AxisRow, 10, 10, Size{W: 3, H: 1})
	sz, ok := cache.Get(ref, AxisRow, 10, 10, nil)
	assert.True(t, ok)
	assert.Equal(t, Size{W: 3, H: 1}, sz)
}

func TestMeasureCacheDirtyNodeAlwaysMisses(t *testing.T) {
	cache := NewMeasureCache()
	ref := Ref{Generation: 1, Index: 0}
	cache.Put(ref, AxisRow, 10, 10, Size{W: 3, H: 1})

	dirty := DirtySet{ref: struct{}{}}
	_, ok := cache.Get(ref, AxisRow, 10, 10, dirty)
	assert.False(t, ok)
}

func TestMeasureCacheDistinctConstraintsDontCollide(t *testing.T) {
	cache := NewMeasureCache()
	ref := Ref{Generation: 1, Index: 0}
	cache.Put(ref, AxisRow, 10, 10, Size{W: 3, H: 1})
	cache.Put(ref, AxisRow, 20, 10, Size{W: 5, H: 1})

	sz1, _ := cache.Get(ref, AxisRow, 10, 10, nil)
	sz2, _ := cache.Get(ref, AxisRow, 20, 10, nil)
	assert.NotEqual(t, sz1, sz2)
}

func TestLayoutCacheFullKeyRoundTrip(t *testing.T) {
	cache := NewLayoutCache()
	ref := Ref{Generation: 1, Index: 3}
	key := layoutKey{axis: AxisColumn, maxW: 40, maxH: 20, x: 1, y: 2}
	cache.Put(ref, key, Rect{X: 1, Y: 2, W: 10, H: 5})

	rect, ok := cache.Get(ref, key, nil)
	assert.True(t, ok)
	assert.Equal(t, Rect{X: 1, Y: 2, W: 10, H: 5}, rect)

	otherKey := key
	otherKey.x = 2
	_, ok = cache.Get(ref, otherKey, nil)
	assert.False(t, ok)
}

func TestFrameArenaRefsInvalidatedAcrossReset(t *testing.T) {
	frame := NewFrame()
	node := &VNode{Kind: KindText}
	ref := frame.Alloc(node)
	assert.Same(t, node, frame.Node(ref))

	frame.Reset()
	assert.Nil(t, frame.Node(ref))
}
