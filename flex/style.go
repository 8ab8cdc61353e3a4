package flex

import "math"

// Flex factor defaults. Web defaults switch flexShrink to 1 to match
// browser behavior.
const (
	defaultFlexGrow      = 0.0
	defaultFlexShrink    = 0.0
	webDefaultFlexShrink = 1.0
)

// Style is the full set of layout inputs for one node. It is written through
// the node's setters, which compare before writing and dirty the tree on
// change; layout treats it as read-only.
type Style struct {
	direction      Direction
	flexDirection  FlexDirection
	justifyContent Justify
	alignContent   Align
	alignItems     Align
	alignSelf      Align
	positionType   PositionType
	flexWrap       Wrap
	overflow       Overflow
	display        Display

	flex        float64
	flexGrow    float64
	flexShrink  float64
	flexBasis   Value
	aspectRatio float64

	margin   [EdgeCount]Value
	position [EdgeCount]Value
	padding  [EdgeCount]Value
	border   [EdgeCount]Value

	dimensions    [2]Value
	minDimensions [2]Value
	maxDimensions [2]Value
}

var defaultEdgeValues = [EdgeCount]Value{
	ValueUndefined, ValueUndefined, ValueUndefined,
	ValueUndefined, ValueUndefined, ValueUndefined,
	ValueUndefined, ValueUndefined, ValueUndefined,
}

var defaultDimensionValuesAuto = [2]Value{ValueAuto, ValueAuto}

var defaultDimensionValues = [2]Value{ValueUndefined, ValueUndefined}

func defaultStyle() Style {
	return Style{
		direction:      DirectionInherit,
		flexDirection:  FlexDirectionColumn,
		justifyContent: JustifyFlexStart,
		alignContent:   AlignFlexStart,
		alignItems:     AlignStretch,
		alignSelf:      AlignAuto,
		positionType:   PositionTypeRelative,
		flexWrap:       WrapNoWrap,
		overflow:       OverflowVisible,
		display:        DisplayFlex,
		flex:           Undefined,
		flexGrow:       Undefined,
		flexShrink:     Undefined,
		flexBasis:      ValueAuto,
		aspectRatio:    Undefined,
		margin:         defaultEdgeValues,
		position:       defaultEdgeValues,
		padding:        defaultEdgeValues,
		border:         defaultEdgeValues,
		dimensions:     defaultDimensionValuesAuto,
		minDimensions:  defaultDimensionValues,
		maxDimensions:  defaultDimensionValues,
	}
}

func valueArrayEqual(a, b []Value) bool {
	for i := range a {
		if !ValueEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func floatFieldEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

// styleEqual reports whether two styles would produce identical layouts.
// Used by CopyStyle to avoid dirtying an unchanged tree.
func styleEqual(a, b *Style) bool {
	return a.direction == b.direction &&
		a.flexDirection == b.flexDirection &&
		a.justifyContent == b.justifyContent &&
		a.alignContent == b.alignContent &&
		a.alignItems == b.alignItems &&
		a.alignSelf == b.alignSelf &&
		a.positionType == b.positionType &&
		a.flexWrap == b.flexWrap &&
		a.overflow == b.overflow &&
		a.display == b.display &&
		ValueEqual(a.flexBasis, b.flexBasis) &&
		valueArrayEqual(a.margin[:], b.margin[:]) &&
		valueArrayEqual(a.position[:], b.position[:]) &&
		valueArrayEqual(a.padding[:], b.padding[:]) &&
		valueArrayEqual(a.border[:], b.border[:]) &&
		valueArrayEqual(a.dimensions[:], b.dimensions[:]) &&
		valueArrayEqual(a.minDimensions[:], b.minDimensions[:]) &&
		valueArrayEqual(a.maxDimensions[:], b.maxDimensions[:]) &&
		floatFieldEqual(a.flex, b.flex) &&
		floatFieldEqual(a.flexGrow, b.flexGrow) &&
		floatFieldEqual(a.flexShrink, b.flexShrink) &&
		floatFieldEqual(a.aspectRatio, b.aspectRatio)
}
