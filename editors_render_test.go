package tuicore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineOffsetRangeAccountsForNewlines(t *testing.T) {
	lines := []string{"abc", "de", "f"}
	start, end := lineOffsetRange(lines, 1)
	assert.Equal(t, 4, start) // "abc" (3) + newline (1)
	assert.Equal(t, 6, end)   // + "de" (2)
}

func TestOverlapsSelectionDetectsIntersection(t *testing.T) {
	assert.True(t, overlapsSelection(4, 6, 2, 5))
	assert.False(t, overlapsSelection(4, 6, 0, 4))
	assert.False(t, overlapsSelection(4, 6, 6, 10))
}

func TestOverlapsSelectionEmptySelectionNeverOverlaps(t *testing.T) {
	assert.False(t, overlapsSelection(0, 10, 5, 5))
}

func TestContainsFoldIsCaseInsensitive(t *testing.T) {
	assert.True(t, containsFold("Connection Reset", "reset"))
	assert.False(t, containsFold("Connection Reset", "timeout"))
}

func TestContainsFoldEmptyNeedleAlwaysMatches(t *testing.T) {
	assert.True(t, containsFold("anything", ""))
}

func TestFilterLogEntriesAppliesAllFilters(t *testing.T) {
	lp := logsConsoleProps{
		LevelFilter: "error",
		Entries: []logEntry{
			{Level: "error", Source: "net", Message: "timeout"},
			{Level: "warn", Source: "net", Message: "slow"},
			{Level: "error", Source: "db", Message: "conflict"},
		},
	}
	filtered := filterLogEntries(lp)
	require.Len(t, filtered, 2)
	assert.Equal(t, "net", filtered[0].Source)
	assert.Equal(t, "db", filtered[1].Source)
}

func TestFilterLogEntriesSearchMatchesMessageSubstring(t *testing.T) {
	lp := logsConsoleProps{
		Search: "conn",
		Entries: []logEntry{
			{Level: "info", Message: "connected to peer"},
			{Level: "info", Message: "disk full"},
		},
	}
	filtered := filterLogEntries(lp)
	require.Len(t, filtered, 1)
	assert.Equal(t, "connected to peer", filtered[0].Message)
}

func TestCollapsedSummaryReportsLineCount(t *testing.T) {
	h := diffHunk{Lines: []diffLine{{Kind: "context"}, {Kind: "context"}, {Kind: "context"}}}
	assert.Equal(t, "  (3 unchanged lines)", collapsedSummary(h))
}

func TestRenderDiffViewerEmitsHeaderAndMarkedLines(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		VNode: &VNode{Kind: KindDiffViewer, Props: diffViewerProps{
			Hunks: []diffHunk{{
				Header: "@@ -1,2 +1,2 @@",
				Lines: []diffLine{
					{Kind: "remove", Text: "old"},
					{Kind: "add", Text: "new"},
				},
			}},
		}},
		Rect: Rect{X: 0, Y: 0, W: 40, H: 10},
	}
	err := renderDiffViewer(tree, Style{}, b)
	require.NoError(t, err)
	require.Len(t, b.Ops, 3)
	assert.Contains(t, b.Ops[1].Text, "-old")
	assert.Contains(t, b.Ops[2].Text, "+new")
}

func TestRenderLogsConsoleHonorsScrollOffsetFromRuntime(t *testing.T) {
	b := &RecordingBuilder{}
	tree := &LayoutTree{
		VNode: &VNode{Kind: KindLogsConsole, Props: logsConsoleProps{
			Entries: []logEntry{
				{Level: "info", Source: "a", Message: "one"},
				{Level: "info", Source: "a", Message: "two"},
			},
		}},
		Rect: Rect{X: 0, Y: 0, W: 40, H: 10},
	}
	runtime := &RuntimeInstance{ScrollY: 1}
	err := renderLogsConsole(tree, runtime, Style{}, b)
	require.NoError(t, err)
	require.Len(t, b.Ops, 1)
	assert.Contains(t, b.Ops[0].Text, "two")
}
