package flexlayout_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	flexlayout "github.com/Joshua7054/FlexLayout"
	"github.com/Joshua7054/FlexLayout/flex"
)

func TestTextLeafLayoutEndToEnd(t *testing.T) {
	// "hello world" wraps to two 35px lines under the 42px container width,
	// so the text leaf measures 42x26 (two 13px lines, width forced exact by
	// the stretch constraint).
	font := flexlayout.NewFontFromFace(basicfont.Face7x13, 13)

	root := flexlayout.NewNode()
	root.SetWidth(42)

	text := flexlayout.NewNode()
	text.SetMeasureFunc(flexlayout.TextMeasureFunc(font, "hello world"))
	text.SetBaselineFunc(flexlayout.TextBaselineFunc(font))
	root.InsertChild(text, 0)

	flexlayout.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	require.Equal(t, 42.0, text.LayoutWidth())
	require.Equal(t, 26.0, text.LayoutHeight())
	require.Equal(t, 26.0, root.LayoutHeight())
}

func TestAliasesExposeEngineSurface(t *testing.T) {
	config := flexlayout.NewConfig()
	root := flexlayout.NewNodeWithConfig(config)
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(120)
	root.SetHeight(40)

	child := flexlayout.NewNode()
	child.SetFlexGrow(1)
	clone := flexlayout.Clone(child)
	root.InsertChild(child, 0)

	flexlayout.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)
	require.Equal(t, 120.0, child.LayoutWidth())

	require.True(t, flex.ValueEqual(flexlayout.Point(10), flex.Point(10)))
	require.True(t, flex.ValueEqual(flexlayout.Percent(10), flex.Percent(10)))

	flexlayout.FreeRecursive(root)
	flexlayout.Free(clone)
}
