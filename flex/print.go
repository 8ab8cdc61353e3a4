package flex

import (
	"fmt"
	"strings"

	"github.com/Joshua7054/FlexLayout/internal/core/geom"
)

// Debug serialization of a node tree into an HTML-like string. Only
// non-default style values are emitted, and uniform edge arrays collapse to
// their shorthand.

func indent(sb *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		sb.WriteString("  ")
	}
}

func areFourValuesEqual(four *[EdgeCount]Value) bool {
	return ValueEqual(four[0], four[1]) &&
		ValueEqual(four[0], four[2]) &&
		ValueEqual(four[0], four[3])
}

func appendFloatIfNotUndefined(sb *strings.Builder, key string, num float64) {
	if !FloatIsUndefined(num) {
		fmt.Fprintf(sb, "%s: %g; ", key, num)
	}
}

func appendValueIfNotUndefined(sb *strings.Builder, key string, value Value) {
	if value.Unit == UnitUndefined {
		return
	}
	if value.Unit == UnitAuto {
		sb.WriteString(key + ": auto; ")
		return
	}
	unit := "px"
	if value.Unit == UnitPercent {
		unit = "%"
	}
	fmt.Fprintf(sb, "%s: %g%s; ", key, value.Value, unit)
}

func appendValueIfNotAuto(sb *strings.Builder, key string, value Value) {
	if value.Unit != UnitAuto {
		appendValueIfNotUndefined(sb, key, value)
	}
}

func appendValueIfNotZero(sb *strings.Builder, key string, value Value) {
	if !geom.FloatsEqual(value.Value, 0) {
		appendValueIfNotUndefined(sb, key, value)
	}
}

func appendEdges(sb *strings.Builder, key string, edges *[EdgeCount]Value) {
	if areFourValuesEqual(edges) {
		appendValueIfNotZero(sb, key, edges[EdgeLeft])
		return
	}
	for edge := EdgeLeft; edge < EdgeAll; edge++ {
		appendValueIfNotZero(sb, fmt.Sprintf("%s-%s", key, edge), edges[edge])
	}
}

func appendEdgeIfNotUndefined(sb *strings.Builder, key string, edges *[EdgeCount]Value, edge Edge) {
	appendValueIfNotUndefined(sb, key, computedEdgeValue(edges, edge, ValueUndefined))
}

func nodeToString(sb *strings.Builder, node *Node, options PrintOptions, level int) {
	indent(sb, level)
	sb.WriteString("<div ")
	if node.print != nil {
		node.print(node)
	}

	if options&PrintOptionsLayout != 0 {
		sb.WriteString("layout=\"")
		fmt.Fprintf(sb, "width: %g; ", node.layout.dimensions[DimensionWidth])
		fmt.Fprintf(sb, "height: %g; ", node.layout.dimensions[DimensionHeight])
		fmt.Fprintf(sb, "top: %g; ", node.layout.position[EdgeTop])
		fmt.Fprintf(sb, "left: %g;", node.layout.position[EdgeLeft])
		sb.WriteString("\" ")
	}

	if options&PrintOptionsStyle != 0 {
		defaults := defaultStyle()
		sb.WriteString("style=\"")
		if node.style.flexDirection != defaults.flexDirection {
			fmt.Fprintf(sb, "flex-direction: %s; ", node.style.flexDirection)
		}
		if node.style.justifyContent != defaults.justifyContent {
			fmt.Fprintf(sb, "justify-content: %s; ", node.style.justifyContent)
		}
		if node.style.alignItems != defaults.alignItems {
			fmt.Fprintf(sb, "align-items: %s; ", node.style.alignItems)
		}
		if node.style.alignContent != defaults.alignContent {
			fmt.Fprintf(sb, "align-content: %s; ", node.style.alignContent)
		}
		if node.style.alignSelf != defaults.alignSelf {
			fmt.Fprintf(sb, "align-self: %s; ", node.style.alignSelf)
		}
		appendFloatIfNotUndefined(sb, "flex-grow", node.style.flexGrow)
		appendFloatIfNotUndefined(sb, "flex-shrink", node.style.flexShrink)
		appendValueIfNotAuto(sb, "flex-basis", node.style.flexBasis)
		appendFloatIfNotUndefined(sb, "flex", node.style.flex)

		if node.style.flexWrap != defaults.flexWrap {
			fmt.Fprintf(sb, "flexWrap: %s; ", node.style.flexWrap)
		}
		if node.style.overflow != defaults.overflow {
			fmt.Fprintf(sb, "overflow: %s; ", node.style.overflow)
		}
		if node.style.display != defaults.display {
			fmt.Fprintf(sb, "display: %s; ", node.style.display)
		}

		appendEdges(sb, "margin", &node.style.margin)
		appendEdges(sb, "padding", &node.style.padding)
		appendEdges(sb, "border", &node.style.border)

		appendValueIfNotAuto(sb, "width", node.style.dimensions[DimensionWidth])
		appendValueIfNotAuto(sb, "height", node.style.dimensions[DimensionHeight])
		appendValueIfNotAuto(sb, "max-width", node.style.maxDimensions[DimensionWidth])
		appendValueIfNotAuto(sb, "max-height", node.style.maxDimensions[DimensionHeight])
		appendValueIfNotAuto(sb, "min-width", node.style.minDimensions[DimensionWidth])
		appendValueIfNotAuto(sb, "min-height", node.style.minDimensions[DimensionHeight])

		if node.style.positionType != defaults.positionType {
			fmt.Fprintf(sb, "position: %s; ", node.style.positionType)
		}

		appendEdgeIfNotUndefined(sb, "left", &node.style.position, EdgeLeft)
		appendEdgeIfNotUndefined(sb, "right", &node.style.position, EdgeRight)
		appendEdgeIfNotUndefined(sb, "top", &node.style.position, EdgeTop)
		appendEdgeIfNotUndefined(sb, "bottom", &node.style.position, EdgeBottom)
		sb.WriteString("\" ")

		if node.measure != nil {
			sb.WriteString("has-custom-measure=\"true\"")
		}
	}
	sb.WriteString(">")

	if options&PrintOptionsChildren != 0 && len(node.children) > 0 {
		for _, child := range node.children {
			sb.WriteString("\n")
			nodeToString(sb, child, options, level+1)
		}
		sb.WriteString("\n")
		indent(sb, level)
	}
	sb.WriteString("</div>")
}

// NodeToString serializes node per the given options.
func NodeToString(node *Node, options PrintOptions) string {
	var sb strings.Builder
	nodeToString(&sb, node, options, 0)
	return sb.String()
}

// NodePrint emits the serialized node through the config logger at debug
// level.
func NodePrint(node *Node, options PrintOptions) {
	log(node.config, node, LogLevelDebug, "%s\n", NodeToString(node, options))
}
