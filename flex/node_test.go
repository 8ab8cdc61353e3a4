package flex_test

import (
	"testing"

	"github.com/Joshua7054/FlexLayout/flex"
	"github.com/stretchr/testify/require"
)

func TestInsertAndRemoveChild(t *testing.T) {
	parent := flex.NewNode()
	a := flex.NewNode()
	b := flex.NewNode()

	parent.InsertChild(a, 0)
	parent.InsertChild(b, 1)
	require.Equal(t, 2, parent.ChildCount())
	require.Same(t, a, parent.Child(0))
	require.Same(t, b, parent.Child(1))
	require.Same(t, parent, a.Parent())

	parent.RemoveChild(a)
	require.Equal(t, 1, parent.ChildCount())
	require.Same(t, b, parent.Child(0))
	require.Nil(t, a.Parent())

	parent.RemoveAllChildren()
	require.Equal(t, 0, parent.ChildCount())
	require.Nil(t, b.Parent())
}

func TestInsertChildPreconditions(t *testing.T) {
	parent := flex.NewNode()
	other := flex.NewNode()
	child := flex.NewNode()
	parent.InsertChild(child, 0)

	// A child can only have one parent at a time.
	require.Panics(t, func() { other.InsertChild(child, 0) })

	// Measure-function nodes are leaves.
	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(node *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{Width: 10, Height: 10}
	})
	require.Panics(t, func() { leaf.InsertChild(flex.NewNode(), 0) })

	// And a node with children cannot become a measure leaf.
	require.Panics(t, func() {
		parent.SetMeasureFunc(func(node *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
			return flex.Size{}
		})
	})
}

func TestMarkDirtyOnlyForMeasureNodes(t *testing.T) {
	plain := flex.NewNode()
	require.Panics(t, func() { flex.MarkDirty(plain) })

	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(node *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{Width: 10, Height: 10}
	})
	require.NotPanics(t, func() { flex.MarkDirty(leaf) })
	require.True(t, leaf.IsDirty())
}

func TestResetPreconditions(t *testing.T) {
	parent := flex.NewNode()
	child := flex.NewNode()
	parent.InsertChild(child, 0)

	require.Panics(t, func() { flex.Reset(parent) }) // still has children
	require.Panics(t, func() { flex.Reset(child) })  // still attached

	parent.RemoveChild(child)
	require.NotPanics(t, func() { flex.Reset(child) })
}

func TestResetRestoresDefaults(t *testing.T) {
	node := flex.NewNode()
	node.SetFlexDirection(flex.FlexDirectionRowReverse)
	node.SetWidth(120)

	flex.Reset(node)
	require.Equal(t, flex.FlexDirectionColumn, node.FlexDirection())
	require.Equal(t, flex.UnitAuto, node.Width().Unit)
}

func TestDirtyPropagatesToRoot(t *testing.T) {
	root := flex.NewNode()
	mid := flex.NewNode()
	leaf := flex.NewNode()
	root.InsertChild(mid, 0)
	mid.InsertChild(leaf, 0)

	flex.CalculateLayout(root, 100, 100, flex.DirectionLTR)
	require.False(t, root.IsDirty())

	var dirtied []*flex.Node
	root.SetDirtiedFunc(func(n *flex.Node) { dirtied = append(dirtied, n) })

	leaf.SetWidth(10)
	require.True(t, leaf.IsDirty())
	require.True(t, mid.IsDirty())
	require.True(t, root.IsDirty())
	require.Len(t, dirtied, 1) // only root carries the callback

	// Dirtying an already-dirty subtree does not re-fire the callback.
	leaf.SetHeight(10)
	require.Len(t, dirtied, 1)
}

func TestCopyStyleDirtiesOnlyOnChange(t *testing.T) {
	src := flex.NewNode()
	src.SetWidth(100)
	src.SetFlexGrow(2)

	dst := flex.NewNode()
	flex.CalculateLayout(dst, 100, 100, flex.DirectionLTR)
	require.False(t, dst.IsDirty())

	flex.CopyStyle(dst, src)
	require.True(t, dst.IsDirty())
	require.Equal(t, 2.0, dst.FlexGrow())
	require.True(t, flex.ValueEqual(flex.Point(100), dst.Width()))

	flex.CalculateLayout(dst, 100, 100, flex.DirectionLTR)
	flex.CopyStyle(dst, src) // identical styles: no dirtying
	require.False(t, dst.IsDirty())
}

func TestCloneSharesChildrenUntilMutation(t *testing.T) {
	parent := flex.NewNode()
	a := flex.NewNode()
	b := flex.NewNode()
	parent.InsertChild(a, 0)
	parent.InsertChild(b, 1)

	clone := flex.Clone(parent)
	require.Nil(t, clone.Parent())
	require.Equal(t, 2, clone.ChildCount())
	// The child list is shared: both parents see the same nodes, which still
	// point back at the original parent.
	require.Same(t, a, clone.Child(0))
	require.Same(t, parent, clone.Child(0).Parent())

	// Mutating the clone's child list clones the children instead of
	// corrupting the original owner.
	c := flex.NewNode()
	clone.InsertChild(c, 2)
	require.Equal(t, 3, clone.ChildCount())
	require.NotSame(t, a, clone.Child(0))
	require.Same(t, clone, clone.Child(0).Parent())

	// The original tree is untouched.
	require.Equal(t, 2, parent.ChildCount())
	require.Same(t, a, parent.Child(0))
	require.Same(t, parent, a.Parent())
}

func TestRemoveChildFromSharedListKeepsOtherOwnerValid(t *testing.T) {
	parent := flex.NewNode()
	a := flex.NewNode()
	b := flex.NewNode()
	parent.InsertChild(a, 0)
	parent.InsertChild(b, 1)

	clone := flex.Clone(parent)
	clone.RemoveChild(a)

	require.Equal(t, 1, clone.ChildCount())
	require.NotSame(t, b, clone.Child(0)) // b was cloned for the new owner

	// a stays attached and untouched under the original parent.
	require.Equal(t, 2, parent.ChildCount())
	require.Same(t, a, parent.Child(0))
	require.Same(t, parent, a.Parent())
}

func TestClonedCallbackFires(t *testing.T) {
	config := flex.NewConfig()
	type cloneEvent struct {
		old, new, parent *flex.Node
		index            int
	}
	var events []cloneEvent
	config.SetNodeClonedFunc(func(oldNode, newNode, parent *flex.Node, childIndex int) {
		events = append(events, cloneEvent{oldNode, newNode, parent, childIndex})
	})

	parent := flex.NewNodeWithConfig(config)
	a := flex.NewNodeWithConfig(config)
	b := flex.NewNodeWithConfig(config)
	parent.InsertChild(a, 0)
	parent.InsertChild(b, 1)

	clone := flex.Clone(parent)
	clone.InsertChild(flex.NewNodeWithConfig(config), 2)

	require.Len(t, events, 2)
	require.Same(t, a, events[0].old)
	require.Same(t, clone, events[0].parent)
	require.Equal(t, 0, events[0].index)
	require.Same(t, b, events[1].old)
	require.Equal(t, 1, events[1].index)
}

func TestCloneOfCloneIsStructurallyEqual(t *testing.T) {
	root := flex.NewNode()
	root.SetWidth(100)
	root.SetFlexDirection(flex.FlexDirectionRow)
	child := flex.NewNode()
	child.SetFlexGrow(1)
	root.InsertChild(child, 0)

	twice := flex.Clone(flex.Clone(root))
	require.Equal(t, root.ChildCount(), twice.ChildCount())
	require.True(t, flex.ValueEqual(root.Width(), twice.Width()))
	require.Equal(t, root.FlexDirection(), twice.FlexDirection())
	require.Equal(t, child.FlexGrow(), twice.Child(0).FlexGrow())
}

func TestInstanceCounters(t *testing.T) {
	nodesBefore := flex.NodeCount()
	configsBefore := flex.ConfigCount()

	config := flex.NewConfig()
	root := flex.NewNodeWithConfig(config)
	child := flex.NewNodeWithConfig(config)
	root.InsertChild(child, 0)
	require.Equal(t, nodesBefore+2, flex.NodeCount())
	require.Equal(t, configsBefore+1, flex.ConfigCount())

	flex.FreeRecursive(root)
	flex.FreeConfig(config)
	require.Equal(t, nodesBefore, flex.NodeCount())
	require.Equal(t, configsBefore, flex.ConfigCount())
}

func TestStyleSetterGetterRoundTrip(t *testing.T) {
	node := flex.NewNode()

	node.SetDirection(flex.DirectionRTL)
	require.Equal(t, flex.DirectionRTL, node.Direction())

	node.SetFlexDirection(flex.FlexDirectionRow)
	require.Equal(t, flex.FlexDirectionRow, node.FlexDirection())

	node.SetJustifyContent(flex.JustifySpaceAround)
	require.Equal(t, flex.JustifySpaceAround, node.JustifyContent())

	node.SetAlignContent(flex.AlignStretch)
	require.Equal(t, flex.AlignStretch, node.AlignContent())

	node.SetAlignItems(flex.AlignCenter)
	require.Equal(t, flex.AlignCenter, node.AlignItems())

	node.SetAlignSelf(flex.AlignFlexEnd)
	require.Equal(t, flex.AlignFlexEnd, node.AlignSelf())

	node.SetPositionType(flex.PositionTypeAbsolute)
	require.Equal(t, flex.PositionTypeAbsolute, node.PositionType())

	node.SetFlexWrap(flex.WrapWrap)
	require.Equal(t, flex.WrapWrap, node.FlexWrap())

	node.SetOverflow(flex.OverflowHidden)
	require.Equal(t, flex.OverflowHidden, node.Overflow())

	node.SetDisplay(flex.DisplayNone)
	require.Equal(t, flex.DisplayNone, node.Display())

	node.SetFlex(2)
	require.Equal(t, 2.0, node.Flex())

	node.SetFlexGrow(3)
	require.Equal(t, 3.0, node.FlexGrow())

	node.SetFlexShrink(4)
	require.Equal(t, 4.0, node.FlexShrink())

	node.SetFlexBasis(17)
	require.True(t, flex.ValueEqual(flex.Point(17), node.FlexBasis()))
	node.SetFlexBasisPercent(40)
	require.True(t, flex.ValueEqual(flex.Percent(40), node.FlexBasis()))
	node.SetFlexBasisAuto()
	require.Equal(t, flex.UnitAuto, node.FlexBasis().Unit)

	node.SetPosition(flex.EdgeLeft, 5)
	require.True(t, flex.ValueEqual(flex.Point(5), node.Position(flex.EdgeLeft)))
	node.SetPositionPercent(flex.EdgeTop, 10)
	require.True(t, flex.ValueEqual(flex.Percent(10), node.Position(flex.EdgeTop)))

	node.SetMargin(flex.EdgeAll, 6)
	require.True(t, flex.ValueEqual(flex.Point(6), node.Margin(flex.EdgeAll)))
	node.SetMarginPercent(flex.EdgeStart, 7)
	require.True(t, flex.ValueEqual(flex.Percent(7), node.Margin(flex.EdgeStart)))
	node.SetMarginAuto(flex.EdgeLeft)
	require.Equal(t, flex.UnitAuto, node.Margin(flex.EdgeLeft).Unit)

	node.SetPadding(flex.EdgeHorizontal, 8)
	require.True(t, flex.ValueEqual(flex.Point(8), node.Padding(flex.EdgeHorizontal)))
	node.SetPaddingPercent(flex.EdgeVertical, 9)
	require.True(t, flex.ValueEqual(flex.Percent(9), node.Padding(flex.EdgeVertical)))

	node.SetBorder(flex.EdgeAll, 2)
	require.Equal(t, 2.0, node.Border(flex.EdgeAll))

	node.SetWidth(100)
	require.True(t, flex.ValueEqual(flex.Point(100), node.Width()))
	node.SetWidthPercent(50)
	require.True(t, flex.ValueEqual(flex.Percent(50), node.Width()))
	node.SetWidthAuto()
	require.Equal(t, flex.UnitAuto, node.Width().Unit)

	node.SetHeight(60)
	require.True(t, flex.ValueEqual(flex.Point(60), node.Height()))

	node.SetMinWidth(10)
	require.True(t, flex.ValueEqual(flex.Point(10), node.MinWidth()))
	node.SetMinHeightPercent(15)
	require.True(t, flex.ValueEqual(flex.Percent(15), node.MinHeight()))
	node.SetMaxWidthPercent(90)
	require.True(t, flex.ValueEqual(flex.Percent(90), node.MaxWidth()))
	node.SetMaxHeight(500)
	require.True(t, flex.ValueEqual(flex.Point(500), node.MaxHeight()))

	node.SetAspectRatio(1.5)
	require.Equal(t, 1.5, node.AspectRatio())
}

func TestFlexShorthandResolution(t *testing.T) {
	// flexGrow defaults to 0 and flexShrink to 0 without web defaults.
	node := flex.NewNode()
	require.Equal(t, 0.0, node.FlexGrow())
	require.Equal(t, 0.0, node.FlexShrink())

	// Web defaults flip the shrink default to 1 and the main axis to row.
	config := flex.NewConfig()
	config.SetUseWebDefaults(true)
	web := flex.NewNodeWithConfig(config)
	require.Equal(t, 1.0, web.FlexShrink())
	require.Equal(t, flex.FlexDirectionRow, web.FlexDirection())
	require.Equal(t, flex.AlignStretch, web.AlignContent())
}
