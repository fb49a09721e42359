package tuicore

import "fmt"

// InvalidProps reports a constraint or prop that failed validation: a
// negative or inverted size constraint, a negative flex factor, a
// percentage grid track, or an unparseable theme color. Unknown VNode kinds
// are not reported (they measure and render as leaves), and anchor
// resolution has no cycle check.
// Path points at the offending node using a slash-separated locator built
// from kind names and child indices, e.g. "root/column[2]/box".
type InvalidProps struct {
	Detail string
	Path   string
}

func (e *InvalidProps) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid props: %s", e.Detail)
	}
	return fmt.Sprintf("invalid props at %s: %s", e.Path, e.Detail)
}

// OverflowInternal reports a defensive integer clamp during cell arithmetic.
// Layout and measurement silently clamp to [minCell, maxCell] via clampCell
// and clampNonNeg; no function in this package returns this error.
type OverflowInternal struct {
	Detail string
	Value  int64
}

func (e *OverflowInternal) Error() string {
	return fmt.Sprintf("overflow clamped: %s (value %d)", e.Detail, e.Value)
}

// Cell arithmetic bounds, clamped to the 32-bit signed range.
const (
	minCell = -(1 << 31)
	maxCell = (1 << 31) - 1
)

// clampCell clamps v into [minCell, maxCell].
func clampCell(v int64) int {
	if v < minCell {
		return minCell
	}
	if v > maxCell {
		return maxCell
	}
	return int(v)
}

// clampNonNeg clamps v into [0, maxCell]; negative sizes clamp to 0 per the
// LayoutTree rect invariant (§3).
func clampNonNeg(v int64) int {
	if v < 0 {
		return 0
	}
	if v > maxCell {
		return maxCell
	}
	return int(v)
}
