package tuicore

// This file collects the per-kind Props payloads a VNode.Props may hold.
// Only fields the layout engine or renderer actually consult are modeled;
// widget behavioral semantics (what a click does, validation rules, etc.)
// are out of scope per §1.

// boxProps configures a KindBox's border/title/shadow decoration.
type boxProps struct {
	Border BorderKind
	Sides  BorderSides
	Title  string
	Shadow bool
}

// gridProps configures a KindGrid's track layout. Columns/Rows mirror
// LayoutConstraints.Columns/RowGap/ColumnGap but are also reachable directly
// off Props for callers that build grids without going through constraints.
type gridProps struct {
	Columns        string
	ExplicitRows   int // 0 means infer from child count / column count
	RowGap, ColGap int
}

// scrollProps carries scroll offset state for any container with
// Overflow == OverflowScroll (§4.1 "Overflow & scroll clamping").
type scrollProps struct {
	ScrollX, ScrollY int
}

// overlayAnchorProps configures a dropdown/tooltip-like overlay's preferred
// anchor and flip behavior (§4.2 "Overlay & backdrop compositing").
type overlayAnchorProps struct {
	AnchorID string
	Placement string // e.g. "below-start", "above-end"
	Width, Height int
}

// BackdropKind selects how an overlay's backdrop paints the clip region
// behind it (§4.2 "backdrop ∈ {none, dim, opaque}").
type BackdropKind uint8

const (
	BackdropNone BackdropKind = iota
	BackdropDim
	BackdropOpaque
)

// modalProps configures a centered modal overlay's backdrop.
type modalProps struct {
	Backdrop      BackdropKind
	DimAmount     float64 // 0..1, blended via BlendColor for BackdropDim
	Width, Height int
}

// inputProps carries a text input's current value and placeholder, per
// §4.1 "placeholder vs. value width for inputs".
type inputProps struct {
	Value       string
	Placeholder string
}

// selectRecipeProps names the (variant,tone,size,state) tuple forms_render
// resolves into a concrete Style, per §4.2 "Form recipe resolution".
type selectRecipeProps struct {
	Variant string
	Tone    string
	Size    string
	State   string
}

// codeEditorProps configures KindCodeEditor rendering (§4.2).
type codeEditorProps struct {
	Lines      []string
	CursorLine int
	CursorCol  int // grapheme offset within the line, translated via uniseg
	SelectionFrom, SelectionTo int // line-major linear offsets, from<=to
	Diagnostics []diagnosticMark
}

// diagnosticMark is a single squiggle annotation on a code editor line.
type diagnosticMark struct {
	Line, ColStart, ColEnd int
	Severity               string // "error", "warning", "info"
}

// diffViewerProps configures KindDiffViewer rendering (§4.2).
type diffViewerProps struct {
	Hunks      []diffHunk
	SideBySide bool
}

type diffHunk struct {
	Header    string
	Lines     []diffLine
	Collapsed bool
}

type diffLine struct {
	Kind string // "context", "add", "remove"
	Text string
}

// logsConsoleProps configures KindLogsConsole rendering (§4.2).
type logsConsoleProps struct {
	Entries      []logEntry
	LevelFilter  string
	SourceFilter string
	Search       string
	ScrollOffset int
}

type logEntry struct {
	Level, Source, Message string
	Expanded               bool
}
