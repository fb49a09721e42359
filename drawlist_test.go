package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingBuilderRecordsAllOpKinds(t *testing.T) {
	b := &RecordingBuilder{}
	b.DrawText(1, 2, "hi", Style{})
	b.FillRect(Rect{X: 0, Y: 0, W: 2, H: 2}, '#', Style{})
	b.PushClip(Rect{X: 0, Y: 0, W: 5, H: 5})
	b.PopClip()

	require.Len(t, b.Ops, 4)
	assert.Equal(t, OpDrawText, b.Ops[0].Kind)
	assert.Equal(t, "hi", b.Ops[0].Text)
	assert.Equal(t, OpFillRect, b.Ops[1].Kind)
	assert.Equal(t, '#', b.Ops[1].Cell)
	assert.Equal(t, OpPushClip, b.Ops[2].Kind)
	assert.Equal(t, OpPopClip, b.Ops[3].Kind)
}

func TestClipStackSentinelPopDoesNotCallPopClip(t *testing.T) {
	b := &RecordingBuilder{}
	cs := newClipStack(Rect{X: 0, Y: 0, W: 80, H: 24})
	cs.pushSentinel()
	cs.pop(b)
	assert.Empty(t, b.Ops)
}

func TestClipStackRealPushIntersectsCurrentClip(t *testing.T) {
	b := &RecordingBuilder{}
	cs := newClipStack(Rect{X: 0, Y: 0, W: 10, H: 10})
	effective := cs.pushClipped(b, Rect{X: 5, Y: 5, W: 20, H: 20})
	assert.Equal(t, Rect{X: 5, Y: 5, W: 5, H: 5}, effective)
	require.Len(t, b.Ops, 1)
	assert.Equal(t, OpPushClip, b.Ops[0].Kind)

	cs.pop(b)
	require.Len(t, b.Ops, 2)
	assert.Equal(t, OpPopClip, b.Ops[1].Kind)
}

func TestClipStackTopReflectsCurrentFrame(t *testing.T) {
	cs := newClipStack(Rect{X: 0, Y: 0, W: 80, H: 24})
	assert.Equal(t, Rect{X: 0, Y: 0, W: 80, H: 24}, cs.top())
}
