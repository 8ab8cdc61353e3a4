package flex_test

import (
	"testing"

	"github.com/Joshua7054/FlexLayout/flex"
	"github.com/stretchr/testify/require"
)

func TestMeasureFuncSizesLeaf(t *testing.T) {
	root := flex.NewNode()
	root.SetAlignItems(flex.AlignFlexStart)

	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{Width: 42, Height: 11}
	})
	root.InsertChild(leaf, 0)

	flex.CalculateLayout(root, 100, 100, flex.DirectionLTR)

	require.Equal(t, 42.0, leaf.LayoutWidth())
	require.Equal(t, 11.0, leaf.LayoutHeight())
}

func TestMeasureFuncReceivesInnerConstraints(t *testing.T) {
	// The leaf's margin, and the parent constraint, shape what the measure
	// callback sees: inner width = 100 - margin 10*2 = 80 at most.
	var gotWidth float64
	var gotWidthMode flex.MeasureMode

	root := flex.NewNode()
	root.SetAlignItems(flex.AlignFlexStart)
	root.SetWidth(100)
	root.SetHeight(100)

	leaf := flex.NewNode()
	leaf.SetMargin(flex.EdgeHorizontal, 10)
	leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		gotWidth = w
		gotWidthMode = wm
		return flex.Size{Width: 10, Height: 10}
	})
	root.InsertChild(leaf, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, 80.0, gotWidth)
	require.Equal(t, flex.MeasureModeAtMost, gotWidthMode)
}

func TestMeasureFuncPaddingAndBorderAdded(t *testing.T) {
	root := flex.NewNode()
	root.SetAlignItems(flex.AlignFlexStart)

	leaf := flex.NewNode()
	leaf.SetPadding(flex.EdgeAll, 3)
	leaf.SetBorder(flex.EdgeAll, 1)
	leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{Width: 20, Height: 10}
	})
	root.InsertChild(leaf, 0)

	flex.CalculateLayout(root, 100, 100, flex.DirectionLTR)

	// measured + (padding+border)*2 = 20+8 / 10+8.
	require.Equal(t, 28.0, leaf.LayoutWidth())
	require.Equal(t, 18.0, leaf.LayoutHeight())
}

func TestMeasureCacheAvoidsRemeasuring(t *testing.T) {
	measureCount := 0

	root := flex.NewNode()
	root.SetAlignItems(flex.AlignFlexStart)
	root.SetWidth(100)
	root.SetHeight(100)

	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		measureCount++
		return flex.Size{Width: 40, Height: 10}
	})
	root.InsertChild(leaf, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	first := measureCount
	require.Greater(t, first, 0)

	// A second layout with identical inputs and a clean tree is served
	// entirely from cache.
	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	require.Equal(t, first, measureCount)

	// Marking the leaf dirty forces a remeasure.
	flex.MarkDirty(leaf)
	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	require.Greater(t, measureCount, first)
}

func TestMeasureCacheTighterAtMostReusesResult(t *testing.T) {
	// An at-most constraint tighter than a previous one whose result still
	// fits must be answered from cache.
	measureCount := 0

	root := flex.NewNode()
	root.SetAlignItems(flex.AlignFlexStart)
	root.SetFlexDirection(flex.FlexDirectionRow)

	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		measureCount++
		return flex.Size{Width: 30, Height: 10}
	})
	root.InsertChild(leaf, 0)

	flex.CalculateLayout(root, 200, 100, flex.DirectionLTR)
	first := measureCount

	// Shrink the available space; 30 still fits under 150, so the previous
	// measurement is reused even though the leaf is re-visited.
	root.SetWidth(150)
	flex.CalculateLayout(root, flex.Undefined, 100, flex.DirectionLTR)
	require.Equal(t, first, measureCount)
}

func TestMeasureFuncNaNIsFatal(t *testing.T) {
	root := flex.NewNode()

	leaf := flex.NewNode()
	leaf.SetMeasureFunc(func(n *flex.Node, w float64, wm flex.MeasureMode, h float64, hm flex.MeasureMode) flex.Size {
		return flex.Size{Width: flex.Undefined, Height: 10}
	})
	root.InsertChild(leaf, 0)

	require.Panics(t, func() {
		flex.CalculateLayout(root, 100, 100, flex.DirectionLTR)
	})
}

func TestDirectionChangeInvalidatesCache(t *testing.T) {
	// Flipping the parent direction must re-run layout even on a clean tree.
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(50)

	child := flex.NewNode()
	child.SetWidth(30)
	child.SetHeight(50)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	require.Equal(t, 0.0, child.LayoutLeft())

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionRTL)
	require.Equal(t, 70.0, child.LayoutLeft())
}

func TestMarkDirtyAndPropagateToDescendants(t *testing.T) {
	root := flex.NewNode()
	child := flex.NewNode()
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, 100, 100, flex.DirectionLTR)
	require.False(t, child.IsDirty())

	flex.MarkDirtyAndPropagateToDescendants(root)
	require.True(t, root.IsDirty())
	require.True(t, child.IsDirty())
}
