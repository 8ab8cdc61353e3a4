package flex

// Per-axis edge tables indexed by FlexDirection: the leading and trailing
// physical edges of the axis, the position edge written during layout, and
// the dimension the axis measures.
var (
	leading  = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	trailing = [4]Edge{EdgeBottom, EdgeTop, EdgeRight, EdgeLeft}
	pos      = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	dim      = [4]Dimension{DimensionHeight, DimensionHeight, DimensionWidth, DimensionWidth}
)

// computedEdgeValue resolves one edge of an edge-value array, falling back
// through the Vertical/Horizontal shorthands and then All. Start and End never
// fall through to the caller's default: absent, they are undefined so the
// physical edges can take over.
func computedEdgeValue(edges *[EdgeCount]Value, edge Edge, defaultValue Value) Value {
	if edges[edge].Unit != UnitUndefined {
		return edges[edge]
	}

	if (edge == EdgeTop || edge == EdgeBottom) &&
		edges[EdgeVertical].Unit != UnitUndefined {
		return edges[EdgeVertical]
	}

	if (edge == EdgeLeft || edge == EdgeRight || edge == EdgeStart || edge == EdgeEnd) &&
		edges[EdgeHorizontal].Unit != UnitUndefined {
		return edges[EdgeHorizontal]
	}

	if edges[EdgeAll].Unit != UnitUndefined {
		return edges[EdgeAll]
	}

	if edge == EdgeStart || edge == EdgeEnd {
		return ValueUndefined
	}

	return defaultValue
}

func flexDirectionIsRow(flexDirection FlexDirection) bool {
	return flexDirection == FlexDirectionRow || flexDirection == FlexDirectionRowReverse
}

func flexDirectionIsColumn(flexDirection FlexDirection) bool {
	return flexDirection == FlexDirectionColumn || flexDirection == FlexDirectionColumnReverse
}

// resolveFlexDirection swaps row axes under RTL so that leading/trailing
// follow the inline direction.
func resolveFlexDirection(flexDirection FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		if flexDirection == FlexDirectionRow {
			return FlexDirectionRowReverse
		}
		if flexDirection == FlexDirectionRowReverse {
			return FlexDirectionRow
		}
	}
	return flexDirection
}

// flexDirectionCross returns the axis orthogonal to flexDirection, resolved
// for the inline direction.
func flexDirectionCross(flexDirection FlexDirection, direction Direction) FlexDirection {
	if flexDirectionIsColumn(flexDirection) {
		return resolveFlexDirection(FlexDirectionRow, direction)
	}
	return FlexDirectionColumn
}
