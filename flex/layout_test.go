package flex_test

import (
	"testing"

	"github.com/Joshua7054/FlexLayout/flex"
	"github.com/stretchr/testify/require"
)

// frame collects the computed geometry of one node for compact assertions.
type frame struct {
	x, y, w, h float64
}

func frameOf(n *flex.Node) frame {
	return frame{n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight()}
}

func TestRowWithThreeEqualFlexChildren(t *testing.T) {
	// free = 300 - 3*0 = 300; each child gets 300/3 = 100 and stretches to the
	// container height.
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(50)

	children := make([]*flex.Node, 3)
	for i := range children {
		children[i] = flex.NewNode()
		children[i].SetFlexGrow(1)
		root.InsertChild(children[i], i)
	}

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{0, 0, 300, 50}, frameOf(root))
	require.Equal(t, frame{0, 0, 100, 50}, frameOf(children[0]))
	require.Equal(t, frame{100, 0, 100, 50}, frameOf(children[1]))
	require.Equal(t, frame{200, 0, 100, 50}, frameOf(children[2]))
}

func TestPercentPadding(t *testing.T) {
	// padding = 10% of the parent width 200 = 20 per edge.
	// child = (200 - 2*20) square at (20, 20).
	root := flex.NewNode()
	root.SetWidth(200)
	root.SetHeight(200)
	root.SetPaddingPercent(flex.EdgeAll, 10)

	child := flex.NewNode()
	child.SetFlexGrow(1)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, 200, 200, flex.DirectionLTR)

	require.Equal(t, frame{20, 20, 160, 160}, frameOf(child))
}

func TestAbsoluteChildAnchoredTrailingOnly(t *testing.T) {
	// x = 100 - right(10) - width(30) = 60; y = top(10).
	root := flex.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetPositionType(flex.PositionTypeAbsolute)
	child.SetPosition(flex.EdgeRight, 10)
	child.SetPosition(flex.EdgeTop, 10)
	child.SetWidth(30)
	child.SetHeight(30)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{60, 10, 30, 30}, frameOf(child))
}

func TestAbsoluteChildSizedByOpposingOffsets(t *testing.T) {
	// width = 100 - left(10) - right(10) = 80; likewise for height.
	root := flex.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetPositionType(flex.PositionTypeAbsolute)
	child.SetPosition(flex.EdgeLeft, 10)
	child.SetPosition(flex.EdgeRight, 10)
	child.SetPosition(flex.EdgeTop, 10)
	child.SetPosition(flex.EdgeBottom, 10)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{10, 10, 80, 80}, frameOf(child))
}

func TestWrapReverseFlowsLinesUpward(t *testing.T) {
	// Two items of width 40 fit per line (40+40 <= 100, +40 overflows), so
	// four children make two lines of height 25 each. Wrap-reverse reflects
	// the cross positions: line one lands at y = 100-0-25 = 75, line two at
	// y = 100-25-25 = 50.
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetFlexWrap(flex.WrapWrapReverse)
	root.SetWidth(100)
	root.SetHeight(100)

	children := make([]*flex.Node, 4)
	for i := range children {
		children[i] = flex.NewNode()
		children[i].SetWidth(40)
		children[i].SetHeight(25)
		root.InsertChild(children[i], i)
	}

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{0, 75, 40, 25}, frameOf(children[0]))
	require.Equal(t, frame{40, 75, 40, 25}, frameOf(children[1]))
	require.Equal(t, frame{0, 50, 40, 25}, frameOf(children[2]))
	require.Equal(t, frame{40, 50, 40, 25}, frameOf(children[3]))
}

func TestRTLRowWithStartPadding(t *testing.T) {
	// In RTL the start edge is the right one: the child's right edge sits at
	// 200 - paddingStart(20) = 180, so its left offset is 180 - 50 = 130.
	root := flex.NewNode()
	root.SetDirection(flex.DirectionRTL)
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(200)
	root.SetHeight(50)
	root.SetPadding(flex.EdgeStart, 20)

	child := flex.NewNode()
	child.SetWidth(50)
	child.SetHeight(50)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, flex.DirectionRTL, root.LayoutDirection())
	require.Equal(t, 130.0, child.LayoutLeft())
	require.Equal(t, 180.0, child.LayoutLeft()+child.LayoutWidth())
}

func TestRTLMirrorsLTR(t *testing.T) {
	// Under identical styles, each RTL child's right offset equals the LTR
	// child's left offset.
	build := func(direction flex.Direction) (*flex.Node, []*flex.Node) {
		root := flex.NewNode()
		root.SetDirection(direction)
		root.SetFlexDirection(flex.FlexDirectionRow)
		root.SetWidth(200)
		root.SetHeight(50)
		root.SetPadding(flex.EdgeStart, 7)
		children := make([]*flex.Node, 3)
		for i := range children {
			children[i] = flex.NewNode()
			children[i].SetWidth(30)
			children[i].SetHeight(50)
			children[i].SetMargin(flex.EdgeStart, float64(i))
			root.InsertChild(children[i], i)
		}
		flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
		return root, children
	}

	ltrRoot, ltr := build(flex.DirectionLTR)
	_, rtl := build(flex.DirectionRTL)

	for i := range ltr {
		rtlRightOffset := ltrRoot.LayoutWidth() - rtl[i].LayoutLeft() - rtl[i].LayoutWidth()
		require.Equal(t, ltr[i].LayoutLeft(), rtlRightOffset, "child %d", i)
	}
}

func TestAspectRatioDerivesHeightFromWidth(t *testing.T) {
	// aspectRatio is width/height, so height = 50 / 2 = 25.
	root := flex.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetWidth(50)
	child.SetAspectRatio(2)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{0, 0, 50, 25}, frameOf(child))
}

func TestAspectRatioDerivesWidthFromHeight(t *testing.T) {
	// width = 40 * 2 = 80.
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetAlignItems(flex.AlignFlexStart)
	root.SetWidth(200)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetHeight(40)
	child.SetAspectRatio(2)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{0, 0, 80, 40}, frameOf(child))
}

func TestLayoutIsIdempotent(t *testing.T) {
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(300)
	root.SetHeight(60)
	root.SetPadding(flex.EdgeAll, 10)

	a := flex.NewNode()
	a.SetFlexGrow(1)
	b := flex.NewNode()
	b.SetWidth(80)
	root.InsertChild(a, 0)
	root.InsertChild(b, 1)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	first := []frame{frameOf(root), frameOf(a), frameOf(b)}

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	second := []frame{frameOf(root), frameOf(a), frameOf(b)}

	require.Equal(t, first, second)
}

func TestDisplayNoneExcludesChild(t *testing.T) {
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(50)

	hidden := flex.NewNode()
	hidden.SetWidth(60)
	hidden.SetDisplay(flex.DisplayNone)
	shown := flex.NewNode()
	shown.SetFlexGrow(1)
	root.InsertChild(hidden, 0)
	root.InsertChild(shown, 1)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{0, 0, 0, 0}, frameOf(hidden))
	require.Equal(t, frame{0, 0, 100, 50}, frameOf(shown))
}

func TestPaddingAndBorderFloorDimensions(t *testing.T) {
	// A node can never be smaller than its padding plus border.
	root := flex.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetWidth(1)
	child.SetHeight(1)
	child.SetPadding(flex.EdgeAll, 4)
	child.SetBorder(flex.EdgeAll, 2)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	// floor = (4+2) * 2 = 12 per axis.
	require.Equal(t, 12.0, child.LayoutWidth())
	require.Equal(t, 12.0, child.LayoutHeight())
	require.Equal(t, 4.0, child.LayoutPadding(flex.EdgeLeft))
	require.Equal(t, 2.0, child.LayoutBorder(flex.EdgeTop))
}

func TestEdgeShorthandResolution(t *testing.T) {
	// Exact edge beats Horizontal/Vertical, which beat All.
	root := flex.NewNode()
	root.SetWidth(100)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetWidth(10)
	child.SetHeight(10)
	child.SetMargin(flex.EdgeAll, 1)
	child.SetMargin(flex.EdgeHorizontal, 5)
	child.SetMargin(flex.EdgeLeft, 9)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, 9.0, child.LayoutMargin(flex.EdgeLeft))
	require.Equal(t, 5.0, child.LayoutMargin(flex.EdgeRight))
	require.Equal(t, 1.0, child.LayoutMargin(flex.EdgeTop))
	require.Equal(t, 1.0, child.LayoutMargin(flex.EdgeBottom))
}

func TestPercentDimensions(t *testing.T) {
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetAlignItems(flex.AlignFlexStart)
	root.SetWidth(200)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetWidthPercent(50)
	child.SetHeightPercent(25)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, frame{0, 0, 100, 25}, frameOf(child))
}

func TestMinMaxPinsResolvedDimension(t *testing.T) {
	// min == max pins the dimension regardless of the styled width.
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetAlignItems(flex.AlignFlexStart)
	root.SetWidth(200)
	root.SetHeight(100)

	child := flex.NewNode()
	child.SetWidth(150)
	child.SetMinWidth(60)
	child.SetMaxWidth(60)
	child.SetHeight(10)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, 60.0, child.LayoutWidth())
}
