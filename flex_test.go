package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeShrinkDeterministicFinalWidths(t *testing.T) {
	// Two items (basis 20 and 10, equal shrink weight) must absorb a
	// 10-cell deficit proportionally, with the 1-cell remainder landing on
	// whichever item has the larger fractional share — here item 0 — per
	// the deterministic remainder rule (§8 scenario 1): final widths 13, 7.
	items := []flexItem{
		{index: 0, basis: 20, shrink: 1},
		{index: 1, basis: 10, shrink: 1},
	}
	distributeShrink(items, 10)
	assert.Equal(t, 13, items[0].final)
	assert.Equal(t, 7, items[1].final)
}

func TestDistributeGrowRespectsMax(t *testing.T) {
	items := []flexItem{
		{index: 0, basis: 5, grow: 1, maxMain: 8},
		{index: 1, basis: 5, grow: 1},
	}
	distributeGrow(items, 10)
	assert.Equal(t, 8, items[0].final)
	assert.Equal(t, 12, items[1].final)
}

func TestDistributeGrowRemainderTieBreakByIndex(t *testing.T) {
	// Three equal-weight items splitting 1 leftover cell: the remainder
	// goes to the lowest index among equal fractional shares.
	items := []flexItem{
		{index: 0, basis: 0, grow: 1},
		{index: 1, basis: 0, grow: 1},
		{index: 2, basis: 0, grow: 1},
	}
	distributeGrow(items, 10)
	total := items[0].final + items[1].final + items[2].final
	assert.Equal(t, 10, total)
	assert.Equal(t, items[0].final, items[1].final+1)
}

func TestJustifyBetweenSingleItemHasNoGap(t *testing.T) {
	start, gap := justifyOffsets(JustifyBetween, 20, 5, 1)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, gap)
}

func TestJustifyCenter(t *testing.T) {
	start, gap := justifyOffsets(JustifyCenter, 20, 10, 2)
	assert.Equal(t, 5, start)
	assert.Equal(t, 0, gap)
}
