package flex

import (
	"sync/atomic"

	"github.com/Joshua7054/FlexLayout/internal/core/geom"
)

// Size is the result of a measure callback.
type Size struct {
	Width  float64
	Height float64
}

// MeasureFunc computes the content size of a leaf under the given constraints.
// It is only ever installed on nodes without children.
type MeasureFunc func(node *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// BaselineFunc returns the distance from the top of the node to its text
// baseline for baseline alignment.
type BaselineFunc func(node *Node, width, height float64) float64

// DirtiedFunc is invoked when a clean node becomes dirty.
type DirtiedFunc func(node *Node)

// PrintFunc lets callers inject extra attributes into debug printing.
type PrintFunc func(node *Node)

// maxCachedResultCount bounds the per-node measurement cache. Even the most
// complicated layouts should not require more than 16 entries.
const maxCachedResultCount = 16

// cachedMeasurement remembers the outcome of one constraint query.
type cachedMeasurement struct {
	availableWidth    float64
	availableHeight   float64
	widthMeasureMode  MeasureMode
	heightMeasureMode MeasureMode

	computedWidth  float64
	computedHeight float64
}

func emptyCachedMeasurement() cachedMeasurement {
	return cachedMeasurement{
		widthMeasureMode:  measureModeUnset,
		heightMeasureMode: measureModeUnset,
		computedWidth:     -1,
		computedHeight:    -1,
	}
}

// layoutResults is the per-node output slot of the solver. Positions are
// relative to the parent; dimensions include border and padding but not
// margins.
type layoutResults struct {
	position   [4]float64
	dimensions [2]float64
	margin     [6]float64
	border     [6]float64
	padding    [6]float64
	direction  Direction

	computedFlexBasisGeneration uint32
	computedFlexBasis           float64
	hadOverflow                 bool

	generationCount     uint32
	lastParentDirection Direction

	nextCachedMeasurementsIndex int
	cachedMeasurements          [maxCachedResultCount]cachedMeasurement
	measuredDimensions          [2]float64

	cachedLayout cachedMeasurement

	didUseLegacyFlag                   bool
	doesLegacyStretchFlagAffectsLayout bool
}

func emptyLayout() layoutResults {
	l := layoutResults{
		dimensions:          [2]float64{Undefined, Undefined},
		measuredDimensions:  [2]float64{Undefined, Undefined},
		computedFlexBasis:   Undefined,
		lastParentDirection: directionUnset,
		cachedLayout:        emptyCachedMeasurement(),
	}
	for i := range l.cachedMeasurements {
		l.cachedMeasurements[i] = emptyCachedMeasurement()
	}
	return l
}

// Node is one box in the layout tree. A node owns its children; the parent
// pointer is a weak back reference used for traversal only. After Clone, two
// parents may share the same child nodes until the first mutation clones them.
type Node struct {
	context interface{}

	print    PrintFunc
	measure  MeasureFunc
	baseline BaselineFunc
	dirtied  DirtiedFunc

	hasNewLayout bool
	nodeType     NodeType

	style     Style
	layout    layoutResults
	lineIndex int

	parent   *Node
	children []*Node

	config  *Config
	isDirty bool

	resolvedDimensions [2]Value
}

// NewNodeWithConfig creates a node bound to the given config.
func NewNodeWithConfig(config *Config) *Node {
	atomic.AddInt32(&nodeInstanceCount, 1)
	node := &Node{
		hasNewLayout:       true,
		style:              defaultStyle(),
		layout:             emptyLayout(),
		config:             config,
		resolvedDimensions: [2]Value{ValueUndefined, ValueUndefined},
	}
	if config.useWebDefaults {
		node.style.flexDirection = FlexDirectionRow
		node.style.alignContent = AlignStretch
	}
	return node
}

// NewNode creates a node with a fresh default config.
func NewNode() *Node {
	return NewNodeWithConfig(NewConfig())
}

// Clone returns a shallow copy of node sharing its children. The clone has no
// parent; the children still point back at the original owner, so the first
// mutation through the clone triggers copy-on-write. The slice itself is
// copied so that in-place edits by one owner never reach the other.
func Clone(node *Node) *Node {
	atomic.AddInt32(&nodeInstanceCount, 1)
	clone := *node
	clone.children = append([]*Node(nil), node.children...)
	clone.parent = nil
	return &clone
}

func deepClone(node *Node) *Node {
	clone := Clone(node)
	children := make([]*Node, 0, len(node.children))
	for _, item := range node.children {
		childClone := deepClone(item)
		childClone.parent = clone
		children = append(children, childClone)
	}
	clone.children = children
	if node.config != nil {
		clone.config = configClone(node.config)
	}
	return clone
}

// Free releases one node, detaching it from its parent and orphaning its
// children without freeing them.
func Free(node *Node) {
	if node.parent != nil {
		node.parent.removeChildNode(node)
		node.parent = nil
	}
	for _, child := range node.children {
		child.parent = nil
	}
	node.children = nil
	atomic.AddInt32(&nodeInstanceCount, -1)
}

// FreeRecursive releases a whole owned subtree. Shared children that belong
// to another parent are left alive.
func FreeRecursive(root *Node) {
	for len(root.children) > 0 {
		child := root.children[0]
		if child.parent != root {
			// Don't free shared nodes that we don't own.
			break
		}
		root.RemoveChild(child)
		FreeRecursive(child)
	}
	Free(root)
}

func configFreeRecursive(root *Node) {
	if root.config != nil {
		FreeConfig(root.config)
	}
	for _, child := range root.children {
		configFreeRecursive(child)
	}
}

// Reset returns a detached, childless node to its initial state.
func Reset(node *Node) {
	assertWithNode(node, len(node.children) == 0,
		"Cannot reset a node which still has children attached")
	assertWithNode(node, node.parent == nil,
		"Cannot reset a node still attached to a parent")

	config := node.config
	*node = *NewNodeWithConfig(config)
	atomic.AddInt32(&nodeInstanceCount, -1)
}

// Accessors

// SetContext attaches caller data to the node.
func (n *Node) SetContext(context interface{}) { n.context = context }

// Context returns the caller data attached to the node.
func (n *Node) Context() interface{} { return n.context }

// SetPrintFunc installs a callback invoked during debug printing.
func (n *Node) SetPrintFunc(print PrintFunc) { n.print = print }

// SetBaselineFunc installs the baseline callback.
func (n *Node) SetBaselineFunc(baseline BaselineFunc) { n.baseline = baseline }

// BaselineFunc returns the installed baseline callback.
func (n *Node) BaselineFunc() BaselineFunc { return n.baseline }

// SetDirtiedFunc installs the dirtied notification callback.
func (n *Node) SetDirtiedFunc(dirtied DirtiedFunc) { n.dirtied = dirtied }

// DirtiedFunc returns the installed dirtied callback.
func (n *Node) DirtiedFunc() DirtiedFunc { return n.dirtied }

// SetMeasureFunc installs a measure callback. Only childless nodes may carry
// one; installing it marks the node as a text leaf, removing it reverts the
// node type.
func (n *Node) SetMeasureFunc(measure MeasureFunc) {
	if measure == nil {
		n.nodeType = NodeTypeDefault
	} else {
		assertWithNode(n, len(n.children) == 0,
			"Cannot set measure function: Nodes with measure functions cannot have children.")
		n.nodeType = NodeTypeText
	}
	n.measure = measure
}

// MeasureFunc returns the installed measure callback.
func (n *Node) MeasureFunc() MeasureFunc { return n.measure }

// SetNodeType overrides the node type used by pixel rounding.
func (n *Node) SetNodeType(nodeType NodeType) { n.nodeType = nodeType }

// NodeType returns the node type.
func (n *Node) NodeType() NodeType { return n.nodeType }

// SetHasNewLayout clears or sets the "layout changed" flag consumers poll.
func (n *Node) SetHasNewLayout(hasNewLayout bool) { n.hasNewLayout = hasNewLayout }

// HasNewLayout reports whether the last CalculateLayout touched this node.
func (n *Node) HasNewLayout() bool { return n.hasNewLayout }

// IsDirty reports whether the node needs to be re-laid-out.
func (n *Node) IsDirty() bool { return n.isDirty }

// Config returns the config the node is bound to.
func (n *Node) Config() *Config { return n.config }

// SetConfig rebinds the node to another config.
func (n *Node) SetConfig(config *Config) { n.config = config }

// Parent returns the owning parent, or nil for a root or detached node. A
// child shared with a clone keeps pointing at its original owner.
func (n *Node) Parent() *Node { return n.parent }

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < len(n.children) {
		return n.children[i]
	}
	return nil
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// LineIndex returns the flex line the node was placed on during the last
// layout of its parent.
func (n *Node) LineIndex() int { return n.lineIndex }

func (n *Node) setDirty(dirty bool) {
	if dirty == n.isDirty {
		return
	}
	n.isDirty = dirty
	if dirty && n.dirtied != nil {
		n.dirtied(n)
	}
}

// Tree edits

// InsertChild attaches child at the given index. The child must be detached
// and the parent must not have a measure function.
func (n *Node) InsertChild(child *Node, index int) {
	assertWithNode(n, child.parent == nil,
		"Child already has a parent, it must be removed first.")
	assertWithNode(n, n.measure == nil,
		"Cannot add child: Nodes with measure functions cannot have children.")

	n.cloneChildrenIfNeeded()
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.markDirtyAndPropagate()
}

// removeChildNode drops child from the child slice if present.
func (n *Node) removeChildNode(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveChild detaches excludedChild. When the child list is shared with
// another parent, every child except the excluded one is cloned first so the
// excluded child stays valid under its other owner.
func (n *Node) RemoveChild(excludedChild *Node) {
	childCount := len(n.children)
	if childCount == 0 {
		// This is an empty set. Nothing to remove.
		return
	}
	firstChild := n.children[0]
	if firstChild.parent == n {
		// If the first child has this node as its parent, we assume the child
		// set is already unique and can delete from it directly.
		if n.removeChildNode(excludedChild) {
			excludedChild.layout = emptyLayout() // layout is no longer valid
			excludedChild.parent = nil
			n.markDirtyAndPropagate()
		}
		return
	}
	// Otherwise clone the child list except for the child being removed, so
	// the excluded child remains untouched under its other owner.
	cloned := n.config.cloned
	nextInsertIndex := 0
	for i := 0; i < childCount; i++ {
		oldChild := n.children[i]
		if oldChild == excludedChild {
			// Skip the removed child without resetting its layout or parent;
			// it is still valid in the other tree. This parent changed, so
			// mark it dirty.
			n.markDirtyAndPropagate()
			continue
		}
		newChild := Clone(oldChild)
		n.children[nextInsertIndex] = newChild
		newChild.parent = n
		if cloned != nil {
			cloned(oldChild, newChild, n, nextInsertIndex)
		}
		nextInsertIndex++
	}
	n.children = n.children[:nextInsertIndex]
}

// RemoveAllChildren detaches every child. An owned child set is cleared in
// place; a shared one is simply dropped.
func (n *Node) RemoveAllChildren() {
	childCount := len(n.children)
	if childCount == 0 {
		// This is an empty set already. Nothing to do.
		return
	}
	firstChild := n.children[0]
	if firstChild.parent == n {
		for _, oldChild := range n.children {
			oldChild.layout = emptyLayout() // layout is no longer valid
			oldChild.parent = nil
		}
		n.children = nil
		n.markDirtyAndPropagate()
		return
	}
	// Not the owner of the child set; nothing to reset on the children.
	n.children = nil
	n.markDirtyAndPropagate()
}

// cloneChildrenIfNeeded makes the child list unique to this node before a
// mutation. A first child whose parent pointer is elsewhere means the whole
// slice is shared with the node this one was cloned from.
func (n *Node) cloneChildrenIfNeeded() {
	childCount := len(n.children)
	if childCount == 0 {
		return
	}

	firstChild := n.children[0]
	if firstChild.parent == n {
		// If the first child points back at us the set is already unique, and
		// so are all of its siblings.
		return
	}

	cloned := n.config.cloned
	children := make([]*Node, childCount)
	copy(children, n.children)
	n.children = children
	for i, oldChild := range n.children {
		newChild := Clone(oldChild)
		n.children[i] = newChild
		newChild.parent = n
		if cloned != nil {
			cloned(oldChild, newChild, n, i)
		}
	}
}

// MarkDirty flags a measure-function leaf whose content changed. Internal
// nodes are dirtied automatically by style mutations.
func MarkDirty(node *Node) {
	assertWithNode(node, node.measure != nil,
		"Only leaf nodes with custom measure functions should manually mark themselves as dirty")
	node.markDirtyAndPropagate()
}

// MarkDirtyAndPropagateToDescendants force-dirties a whole subtree. Intended
// for benchmarks and debugging.
func MarkDirtyAndPropagateToDescendants(node *Node) {
	node.markDirtyAndPropagateDownwards()
}

func (n *Node) markDirtyAndPropagate() {
	if !n.isDirty {
		n.setDirty(true)
		n.layout.computedFlexBasis = Undefined
		if n.parent != nil {
			n.parent.markDirtyAndPropagate()
		}
	}
}

func (n *Node) markDirtyAndPropagateDownwards() {
	n.isDirty = true
	for _, child := range n.children {
		child.markDirtyAndPropagateDownwards()
	}
}

// CopyStyle copies src's style onto dst, dirtying dst only when the styles
// actually differ.
func CopyStyle(dst, src *Node) {
	if !styleEqual(&dst.style, &src.style) {
		dst.style = src.style
		dst.markDirtyAndPropagate()
	}
}

// Style resolution helpers

func (n *Node) resolvedDimension(d Dimension) Value {
	return n.resolvedDimensions[d]
}

// resolveDimension pins a dimension to max when min and max agree; otherwise
// the styled dimension stands.
func (n *Node) resolveDimension() {
	for d := DimensionWidth; d <= DimensionHeight; d++ {
		if n.style.maxDimensions[d].Unit != UnitUndefined &&
			ValueEqual(n.style.maxDimensions[d], n.style.minDimensions[d]) {
			n.resolvedDimensions[d] = n.style.maxDimensions[d]
		} else {
			n.resolvedDimensions[d] = n.style.dimensions[d]
		}
	}
}

func (n *Node) resolveDirection(parentDirection Direction) Direction {
	if n.style.direction == DirectionInherit {
		if parentDirection > DirectionInherit {
			return parentDirection
		}
		return DirectionLTR
	}
	return n.style.direction
}

// resolveFlexGrow honors flexGrow, then a positive flex shorthand. Root nodes
// never grow.
func (n *Node) resolveFlexGrow() float64 {
	if n.parent == nil {
		return 0
	}
	if !FloatIsUndefined(n.style.flexGrow) {
		return n.style.flexGrow
	}
	if !FloatIsUndefined(n.style.flex) && n.style.flex > 0 {
		return n.style.flex
	}
	return defaultFlexGrow
}

// resolveFlexShrink honors flexShrink, then a negative flex shorthand outside
// web defaults. Root nodes never shrink.
func (n *Node) resolveFlexShrink() float64 {
	if n.parent == nil {
		return 0
	}
	if !FloatIsUndefined(n.style.flexShrink) {
		return n.style.flexShrink
	}
	if !n.config.useWebDefaults && !FloatIsUndefined(n.style.flex) && n.style.flex < 0 {
		return -n.style.flex
	}
	if n.config.useWebDefaults {
		return webDefaultFlexShrink
	}
	return defaultFlexShrink
}

func (n *Node) isNodeFlexible() bool {
	return n.style.positionType == PositionTypeRelative &&
		(n.resolveFlexGrow() != 0 || n.resolveFlexShrink() != 0)
}

// resolveFlexBasis returns the effective flex basis value: the styled basis
// when set, zero (auto under web defaults) for a positive flex shorthand, and
// auto otherwise.
func (n *Node) resolveFlexBasis() Value {
	flexBasis := n.style.flexBasis
	if flexBasis.Unit != UnitAuto && flexBasis.Unit != UnitUndefined {
		return flexBasis
	}
	if !FloatIsUndefined(n.style.flex) && n.style.flex > 0 {
		if n.config.useWebDefaults {
			return ValueAuto
		}
		return ValueZero
	}
	return ValueAuto
}

// Edge resolution against the resolved axis. Start/End take precedence over
// physical edges on row axes.

func (n *Node) leadingPosition(axis FlexDirection, axisSize float64) float64 {
	if flexDirectionIsRow(axis) {
		leadingPosition := computedEdgeValue(&n.style.position, EdgeStart, ValueUndefined)
		if leadingPosition.Unit != UnitUndefined {
			return resolveValue(leadingPosition, axisSize)
		}
	}
	leadingPosition := computedEdgeValue(&n.style.position, leading[axis], ValueUndefined)
	if leadingPosition.Unit == UnitUndefined {
		return 0
	}
	return resolveValue(leadingPosition, axisSize)
}

func (n *Node) trailingPosition(axis FlexDirection, axisSize float64) float64 {
	if flexDirectionIsRow(axis) {
		trailingPosition := computedEdgeValue(&n.style.position, EdgeEnd, ValueUndefined)
		if trailingPosition.Unit != UnitUndefined {
			return resolveValue(trailingPosition, axisSize)
		}
	}
	trailingPosition := computedEdgeValue(&n.style.position, trailing[axis], ValueUndefined)
	if trailingPosition.Unit == UnitUndefined {
		return 0
	}
	return resolveValue(trailingPosition, axisSize)
}

func (n *Node) isLeadingPositionDefined(axis FlexDirection) bool {
	return (flexDirectionIsRow(axis) &&
		computedEdgeValue(&n.style.position, EdgeStart, ValueUndefined).Unit != UnitUndefined) ||
		computedEdgeValue(&n.style.position, leading[axis], ValueUndefined).Unit != UnitUndefined
}

func (n *Node) isTrailingPositionDefined(axis FlexDirection) bool {
	return (flexDirectionIsRow(axis) &&
		computedEdgeValue(&n.style.position, EdgeEnd, ValueUndefined).Unit != UnitUndefined) ||
		computedEdgeValue(&n.style.position, trailing[axis], ValueUndefined).Unit != UnitUndefined
}

func (n *Node) leadingMargin(axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && n.style.margin[EdgeStart].Unit != UnitUndefined {
		return resolveValueMargin(n.style.margin[EdgeStart], widthSize)
	}
	return resolveValueMargin(
		computedEdgeValue(&n.style.margin, leading[axis], ValueZero), widthSize)
}

func (n *Node) trailingMargin(axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && n.style.margin[EdgeEnd].Unit != UnitUndefined {
		return resolveValueMargin(n.style.margin[EdgeEnd], widthSize)
	}
	return resolveValueMargin(
		computedEdgeValue(&n.style.margin, trailing[axis], ValueZero), widthSize)
}

func (n *Node) marginForAxis(axis FlexDirection, widthSize float64) float64 {
	return n.leadingMargin(axis, widthSize) + n.trailingMargin(axis, widthSize)
}

func (n *Node) marginLeadingValue(axis FlexDirection) Value {
	if flexDirectionIsRow(axis) && n.style.margin[EdgeStart].Unit != UnitUndefined {
		return n.style.margin[EdgeStart]
	}
	return n.style.margin[leading[axis]]
}

func (n *Node) marginTrailingValue(axis FlexDirection) Value {
	if flexDirectionIsRow(axis) && n.style.margin[EdgeEnd].Unit != UnitUndefined {
		return n.style.margin[EdgeEnd]
	}
	return n.style.margin[trailing[axis]]
}

func (n *Node) leadingBorder(axis FlexDirection) float64 {
	if flexDirectionIsRow(axis) && n.style.border[EdgeStart].Unit != UnitUndefined &&
		n.style.border[EdgeStart].Value >= 0 {
		return n.style.border[EdgeStart].Value
	}
	return geom.MaxF64(computedEdgeValue(&n.style.border, leading[axis], ValueZero).Value, 0)
}

func (n *Node) trailingBorder(axis FlexDirection) float64 {
	if flexDirectionIsRow(axis) && n.style.border[EdgeEnd].Unit != UnitUndefined &&
		n.style.border[EdgeEnd].Value >= 0 {
		return n.style.border[EdgeEnd].Value
	}
	return geom.MaxF64(computedEdgeValue(&n.style.border, trailing[axis], ValueZero).Value, 0)
}

func (n *Node) leadingPadding(axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && n.style.padding[EdgeStart].Unit != UnitUndefined &&
		resolveValue(n.style.padding[EdgeStart], widthSize) >= 0 {
		return resolveValue(n.style.padding[EdgeStart], widthSize)
	}
	return geom.MaxF64(
		resolveValue(computedEdgeValue(&n.style.padding, leading[axis], ValueZero), widthSize), 0)
}

func (n *Node) trailingPadding(axis FlexDirection, widthSize float64) float64 {
	if flexDirectionIsRow(axis) && n.style.padding[EdgeEnd].Unit != UnitUndefined &&
		resolveValue(n.style.padding[EdgeEnd], widthSize) >= 0 {
		return resolveValue(n.style.padding[EdgeEnd], widthSize)
	}
	return geom.MaxF64(
		resolveValue(computedEdgeValue(&n.style.padding, trailing[axis], ValueZero), widthSize), 0)
}

func (n *Node) leadingPaddingAndBorder(axis FlexDirection, widthSize float64) float64 {
	return n.leadingPadding(axis, widthSize) + n.leadingBorder(axis)
}

func (n *Node) trailingPaddingAndBorder(axis FlexDirection, widthSize float64) float64 {
	return n.trailingPadding(axis, widthSize) + n.trailingBorder(axis)
}

// relativePosition is +leading offset when defined, else -trailing.
func (n *Node) relativePosition(axis FlexDirection, axisSize float64) float64 {
	if n.isLeadingPositionDefined(axis) {
		return n.leadingPosition(axis, axisSize)
	}
	return -n.trailingPosition(axis, axisSize)
}

// setPosition writes the node's declared offset plus margins onto all four
// layout position slots.
func (n *Node) setPosition(direction Direction, mainSize, crossSize, parentWidth float64) {
	// Root nodes are always laid out LTR so positions stay non-negative.
	directionRespectingRoot := DirectionLTR
	if n.parent != nil {
		directionRespectingRoot = direction
	}
	mainAxis := resolveFlexDirection(n.style.flexDirection, directionRespectingRoot)
	crossAxis := flexDirectionCross(mainAxis, directionRespectingRoot)

	relativePositionMain := n.relativePosition(mainAxis, mainSize)
	relativePositionCross := n.relativePosition(crossAxis, crossSize)

	n.layout.position[leading[mainAxis]] =
		n.leadingMargin(mainAxis, parentWidth) + relativePositionMain
	n.layout.position[trailing[mainAxis]] =
		n.trailingMargin(mainAxis, parentWidth) + relativePositionMain
	n.layout.position[leading[crossAxis]] =
		n.leadingMargin(crossAxis, parentWidth) + relativePositionCross
	n.layout.position[trailing[crossAxis]] =
		n.trailingMargin(crossAxis, parentWidth) + relativePositionCross
}

// didUseLegacyFlag reports whether the node or any direct child hit the
// legacy stretch path during the last layout.
func (n *Node) didUseLegacyFlag() bool {
	if n.layout.didUseLegacyFlag {
		return true
	}
	for _, child := range n.children {
		if child.layout.didUseLegacyFlag {
			return true
		}
	}
	return false
}

func (n *Node) setAndPropagateUseLegacyFlag(useLegacyFlag bool) {
	n.config.useLegacyStretchBehaviour = useLegacyFlag
	for _, child := range n.children {
		child.config.useLegacyStretchBehaviour = useLegacyFlag
	}
}

// isLayoutTreeEqual compares the computed layout of two trees node by node.
func (n *Node) isLayoutTreeEqual(other *Node) bool {
	for i := range n.layout.position {
		if !geom.FloatsEqual(n.layout.position[i], other.layout.position[i]) {
			return false
		}
	}
	for i := range n.layout.dimensions {
		if !geom.FloatsEqual(n.layout.dimensions[i], other.layout.dimensions[i]) {
			return false
		}
	}
	for i := range n.layout.margin {
		if !geom.FloatsEqual(n.layout.margin[i], other.layout.margin[i]) ||
			!geom.FloatsEqual(n.layout.border[i], other.layout.border[i]) ||
			!geom.FloatsEqual(n.layout.padding[i], other.layout.padding[i]) {
			return false
		}
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, child := range n.children {
		if !child.isLayoutTreeEqual(other.children[i]) {
			return false
		}
	}
	return true
}
