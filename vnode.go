package tuicore

// Kind tags a VNode with its widget family, a closed enum per §3/§9: family
// dispatch tables (measure/layout/render) are indexed by this tag rather
// than modeling widgets as a class hierarchy.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Leaf kinds.
	KindText
	KindButton
	KindInput
	KindSpacer
	KindDivider
	KindIcon
	KindSpinner
	KindProgress
	KindSkeleton
	KindBadge
	KindStatus
	KindTag
	KindGauge
	KindEmpty
	KindErrorDisplay
	KindCallout
	KindSparkline
	KindBarChart
	KindMiniChart
	KindKbd
	KindRichText
	KindImage
	KindCanvas
	KindLink
	KindLineChart
	KindScatter
	KindHeatmap
	KindSelect
	KindCheckbox
	KindRadioGroup
	KindSlider
	KindFocusAnnouncer

	// Stack containers.
	KindRow
	KindColumn

	// Box.
	KindBox

	// Grid.
	KindGrid

	// Collections.
	KindTable
	KindTree
	KindVirtualList
	KindFilePicker
	KindFileTreeExplorer
	KindCodeEditor
	KindDiffViewer
	KindLogsConsole

	// Overlays.
	KindLayers
	KindModal
	KindDropdown
	KindLayer
	KindCommandPalette
	KindToolApprovalDialog
	KindToastContainer

	// Split/pane.
	KindSplitPane
	KindPanelGroup
	KindResizablePanel

	// Transparent wrappers.
	KindFocusZone
	KindFocusTrap
	KindThemed
	KindField

	// Navigation.
	KindTabs
	KindAccordion
	KindBreadcrumb
	KindPagination
)

// family buckets a Kind into the dispatch group used by measure/layout/
// render. Matches the grouping used throughout §3/§4.
type family uint8

const (
	familyLeaf family = iota
	familyStack
	familyBox
	familyGrid
	familyCollection
	familyOverlay
	familySplitPane
	familyWrapper
	familyNavigation
)

var kindFamily = map[Kind]family{
	KindText: familyLeaf, KindButton: familyLeaf, KindInput: familyLeaf,
	KindSpacer: familyLeaf, KindDivider: familyLeaf, KindIcon: familyLeaf,
	KindSpinner: familyLeaf, KindProgress: familyLeaf, KindSkeleton: familyLeaf,
	KindBadge: familyLeaf, KindStatus: familyLeaf, KindTag: familyLeaf,
	KindGauge: familyLeaf, KindEmpty: familyLeaf, KindErrorDisplay: familyLeaf,
	KindCallout: familyLeaf, KindSparkline: familyLeaf, KindBarChart: familyLeaf,
	KindMiniChart: familyLeaf, KindKbd: familyLeaf, KindRichText: familyLeaf,
	KindImage: familyLeaf, KindCanvas: familyLeaf, KindLink: familyLeaf,
	KindLineChart: familyLeaf, KindScatter: familyLeaf, KindHeatmap: familyLeaf,
	KindSelect: familyLeaf, KindCheckbox: familyLeaf, KindRadioGroup: familyLeaf,
	KindSlider: familyLeaf, KindFocusAnnouncer: familyLeaf,

	KindRow: familyStack, KindColumn: familyStack,
	KindBox: familyBox,
	KindGrid: familyGrid,

	KindTable: familyCollection, KindTree: familyCollection,
	KindVirtualList: familyCollection, KindFilePicker: familyCollection,
	KindFileTreeExplorer: familyCollection, KindCodeEditor: familyCollection,
	KindDiffViewer: familyCollection, KindLogsConsole: familyCollection,

	KindLayers: familyOverlay, KindModal: familyOverlay,
	KindDropdown: familyOverlay, KindLayer: familyOverlay,
	KindCommandPalette: familyOverlay, KindToolApprovalDialog: familyOverlay,
	KindToastContainer: familyOverlay,

	KindSplitPane: familySplitPane, KindPanelGroup: familySplitPane,
	KindResizablePanel: familySplitPane,

	KindFocusZone: familyWrapper, KindFocusTrap: familyWrapper,
	KindThemed: familyWrapper, KindField: familyWrapper,

	KindTabs: familyNavigation, KindAccordion: familyNavigation,
	KindBreadcrumb: familyNavigation, KindPagination: familyNavigation,
}

func familyOf(k Kind) family {
	if f, ok := kindFamily[k]; ok {
		return f
	}
	return familyLeaf
}

// Position selects static or absolute positioning for a node, per §3.
type Position uint8

const (
	PositionStatic Position = iota
	PositionAbsolute
)

// Overflow selects clip behavior for a container's children, per §3.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Justify selects main-axis distribution of extra space, per §4.1.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifyBetween
	JustifyEvenly
	JustifyAround
)

// VNode is an immutable widget descriptor: the unit of identity for both
// caches. Two VNodes compare equal for cache purposes iff they are the same
// allocation (tracked via Ref, below); structural equality is irrelevant.
type VNode struct {
	Kind        Kind
	ID          string // optional stable widget id, consumed by IdRectIndex/dropdown anchors
	Constraints LayoutConstraints
	Style       Style // explicit style override; zero value inherits fully from the parent
	Props       any   // one of the per-kind *Props structs in props.go
	Children    []*VNode
}

// frameArena allocates VNodes for a single frame and hands out generation-
// indexed references that remain valid (and comparable) even though Go has
// a tracing GC — see SPEC_FULL.md §9 "Identity keys & caches", grounded on
// the donor's arena.go Frame/Node arena-of-structs scheme. Caches key on
// Ref, not on the VNode pointer, so a node can be looked up by identity
// without pinning every VNode ever built in a map.
type frameArena struct {
	generation uint64
	nodes      []*VNode
}

// Ref is the (generation, index) identity of a VNode within its owning
// arena, usable as a map key (comparable, no pointer chasing required).
type Ref struct {
	Generation uint64
	Index      int32
}

// NewFrame returns an empty arena at generation 1. Capacity reuse across
// frames comes from Reset, which truncates the backing slice (the donor's
// Frame.Reset idiom) instead of reallocating.
func NewFrame() *frameArena {
	return &frameArena{generation: 1}
}

// Reset begins a new generation, invalidating every previously issued Ref
// without freeing the backing array.
func (f *frameArena) Reset() {
	for _, n := range f.nodes {
		delete(nodeRefs, n)
	}
	f.generation++
	f.nodes = f.nodes[:0]
}

// Alloc places node into the arena and returns its Ref. The Ref is also
// recorded in nodeRefs so measure/layout can recover it from the node
// pointer alone (see measure.go's refOf).
func (f *frameArena) Alloc(node *VNode) Ref {
	idx := int32(len(f.nodes))
	f.nodes = append(f.nodes, node)
	ref := Ref{Generation: f.generation, Index: idx}
	nodeRefs[node] = ref
	return ref
}

// Node dereferences a Ref issued by this arena. Returns nil if the Ref
// belongs to a stale generation (the arena has since been Reset).
func (f *frameArena) Node(r Ref) *VNode {
	if r.Generation != f.generation || r.Index < 0 || int(r.Index) >= len(f.nodes) {
		return nil
	}
	return f.nodes[r.Index]
}

// DirtySet is the reconciler-supplied set of VNode refs whose subtree must
// be recomputed this frame; cache reads are skipped for members (§3/§4.3).
type DirtySet map[Ref]struct{}

// Contains reports whether ref is a member.
func (d DirtySet) Contains(ref Ref) bool {
	if d == nil {
		return false
	}
	_, ok := d[ref]
	return ok
}
