package flex_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Joshua7054/FlexLayout/flex"
	"github.com/stretchr/testify/require"
)

func TestConfigContextRoundTrip(t *testing.T) {
	config := flex.NewConfig()
	require.Nil(t, config.Context())

	config.SetContext("payload")
	require.Equal(t, "payload", config.Context())

	node := flex.NewNodeWithConfig(config)
	node.SetContext(42)
	require.Equal(t, 42, node.Context())
	require.Same(t, config, node.Config())
}

func TestConfigExperimentalFeatures(t *testing.T) {
	config := flex.NewConfig()
	require.False(t, config.IsExperimentalFeatureEnabled(flex.ExperimentalFeatureWebFlexBasis))

	config.SetExperimentalFeatureEnabled(flex.ExperimentalFeatureWebFlexBasis, true)
	require.True(t, config.IsExperimentalFeatureEnabled(flex.ExperimentalFeatureWebFlexBasis))
}

func TestCopyConfig(t *testing.T) {
	src := flex.NewConfig()
	src.SetUseWebDefaults(true)
	src.SetPointScaleFactor(3)

	dst := flex.NewConfig()
	flex.CopyConfig(dst, src)
	require.True(t, dst.UseWebDefaults())
}

func TestCustomLoggerReceivesMessages(t *testing.T) {
	var sb strings.Builder
	config := flex.NewConfig()
	config.SetLogger(func(c *flex.Config, n *flex.Node, level flex.LogLevel, format string, args ...interface{}) int {
		sb.WriteString(fmt.Sprintf(format, args...))
		return 0
	})

	node := flex.NewNodeWithConfig(config)
	node.SetWidth(50)
	node.SetHeight(25)
	flex.CalculateLayout(node, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	flex.NodePrint(node, flex.PrintOptionsLayout)
	require.Contains(t, sb.String(), "width: 50")
	require.Contains(t, sb.String(), "height: 25")
}

func TestNodeToString(t *testing.T) {
	root := flex.NewNode()
	root.SetFlexDirection(flex.FlexDirectionRow)
	root.SetWidth(100)
	root.SetHeight(50)
	for _, edge := range []flex.Edge{flex.EdgeLeft, flex.EdgeTop, flex.EdgeRight, flex.EdgeBottom} {
		root.SetPadding(edge, 5)
	}

	child := flex.NewNode()
	child.SetFlexGrow(1)
	root.InsertChild(child, 0)

	flex.CalculateLayout(root, flex.Undefined, flex.Undefined, flex.DirectionLTR)

	s := flex.NodeToString(root, flex.PrintOptionsLayout|flex.PrintOptionsStyle|flex.PrintOptionsChildren)
	require.Contains(t, s, "flex-direction: row;")
	require.Contains(t, s, "padding: 5px;")
	require.Contains(t, s, "width: 100px;")
	require.Contains(t, s, "layout=\"width: 100;")
	require.Contains(t, s, "flex-grow: 1;")
	// One nested div per child.
	require.Equal(t, 2, strings.Count(s, "<div "))
}
