package flex

// absoluteLayoutChild sizes and places one absolutely positioned child:
// dimensions come from style, from opposing offsets, from the aspect ratio,
// or from measurement, and the final position honors offsets, justification,
// and alignment.
func absoluteLayoutChild(node, child *Node,
	width float64, widthMode MeasureMode, height float64,
	direction Direction, config *Config) {

	mainAxis := resolveFlexDirection(node.style.flexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)
	isMainAxisRow := flexDirectionIsRow(mainAxis)

	childWidth := Undefined
	childHeight := Undefined
	childWidthMeasureMode := MeasureModeUndefined
	childHeightMeasureMode := MeasureModeUndefined

	marginRow := child.marginForAxis(FlexDirectionRow, width)
	marginColumn := child.marginForAxis(FlexDirectionColumn, width)

	if child.isStyleDimDefined(FlexDirectionRow, width) {
		childWidth = resolveValue(child.resolvedDimension(DimensionWidth), width) + marginRow
	} else {
		// If the child doesn't have a specified width, compute the width based
		// on the left/right offsets if they're defined.
		if child.isLeadingPositionDefined(FlexDirectionRow) &&
			child.isTrailingPositionDefined(FlexDirectionRow) {
			childWidth = node.layout.measuredDimensions[DimensionWidth] -
				(node.leadingBorder(FlexDirectionRow) + node.trailingBorder(FlexDirectionRow)) -
				(child.leadingPosition(FlexDirectionRow, width) +
					child.trailingPosition(FlexDirectionRow, width))
			childWidth = child.boundAxis(FlexDirectionRow, childWidth, width, width)
		}
	}

	if child.isStyleDimDefined(FlexDirectionColumn, height) {
		childHeight = resolveValue(child.resolvedDimension(DimensionHeight), height) + marginColumn
	} else {
		// If the child doesn't have a specified height, compute the height
		// based on the top/bottom offsets if they're defined.
		if child.isLeadingPositionDefined(FlexDirectionColumn) &&
			child.isTrailingPositionDefined(FlexDirectionColumn) {
			childHeight = node.layout.measuredDimensions[DimensionHeight] -
				(node.leadingBorder(FlexDirectionColumn) + node.trailingBorder(FlexDirectionColumn)) -
				(child.leadingPosition(FlexDirectionColumn, height) +
					child.trailingPosition(FlexDirectionColumn, height))
			childHeight = child.boundAxis(FlexDirectionColumn, childHeight, height, width)
		}
	}

	// Exactly one dimension needs to be defined for us to be able to do aspect
	// ratio calculation. One dimension being the anchor and the other being
	// flexible.
	if FloatIsUndefined(childWidth) != FloatIsUndefined(childHeight) {
		if !FloatIsUndefined(child.style.aspectRatio) {
			if FloatIsUndefined(childWidth) {
				childWidth = marginRow + (childHeight-marginColumn)*child.style.aspectRatio
			} else if FloatIsUndefined(childHeight) {
				childHeight = marginColumn + (childWidth-marginRow)/child.style.aspectRatio
			}
		}
	}

	// If we're still missing one or the other dimension, measure the content.
	if FloatIsUndefined(childWidth) || FloatIsUndefined(childHeight) {
		childWidthMeasureMode = MeasureModeExactly
		if FloatIsUndefined(childWidth) {
			childWidthMeasureMode = MeasureModeUndefined
		}
		childHeightMeasureMode = MeasureModeExactly
		if FloatIsUndefined(childHeight) {
			childHeightMeasureMode = MeasureModeUndefined
		}

		// If the size of the parent is defined then try to constrain the
		// absolute child to that size as well. This allows text within the
		// absolute child to wrap to the size of its parent. This is the same
		// behavior as many browsers implement.
		if !isMainAxisRow && FloatIsUndefined(childWidth) &&
			widthMode != MeasureModeUndefined && width > 0 {
			childWidth = width
			childWidthMeasureMode = MeasureModeAtMost
		}

		layoutNodeInternal(child, childWidth, childHeight, direction,
			childWidthMeasureMode, childHeightMeasureMode,
			childWidth, childHeight, false, "abs-measure", config)
		childWidth = child.layout.measuredDimensions[DimensionWidth] +
			child.marginForAxis(FlexDirectionRow, width)
		childHeight = child.layout.measuredDimensions[DimensionHeight] +
			child.marginForAxis(FlexDirectionColumn, width)
	}

	layoutNodeInternal(child, childWidth, childHeight, direction,
		MeasureModeExactly, MeasureModeExactly,
		childWidth, childHeight, true, "abs-layout", config)

	if child.isTrailingPositionDefined(mainAxis) && !child.isLeadingPositionDefined(mainAxis) {
		axisSize := height
		if isMainAxisRow {
			axisSize = width
		}
		child.layout.position[leading[mainAxis]] =
			node.layout.measuredDimensions[dim[mainAxis]] -
				child.layout.measuredDimensions[dim[mainAxis]] -
				node.trailingBorder(mainAxis) -
				child.trailingMargin(mainAxis, width) -
				child.trailingPosition(mainAxis, axisSize)
	} else if !child.isLeadingPositionDefined(mainAxis) &&
		node.style.justifyContent == JustifyCenter {
		child.layout.position[leading[mainAxis]] =
			(node.layout.measuredDimensions[dim[mainAxis]] -
				child.layout.measuredDimensions[dim[mainAxis]]) / 2
	} else if !child.isLeadingPositionDefined(mainAxis) &&
		node.style.justifyContent == JustifyFlexEnd {
		child.layout.position[leading[mainAxis]] =
			node.layout.measuredDimensions[dim[mainAxis]] -
				child.layout.measuredDimensions[dim[mainAxis]]
	}

	if child.isTrailingPositionDefined(crossAxis) && !child.isLeadingPositionDefined(crossAxis) {
		axisSize := width
		if isMainAxisRow {
			axisSize = height
		}
		child.layout.position[leading[crossAxis]] =
			node.layout.measuredDimensions[dim[crossAxis]] -
				child.layout.measuredDimensions[dim[crossAxis]] -
				node.trailingBorder(crossAxis) -
				child.trailingMargin(crossAxis, width) -
				child.trailingPosition(crossAxis, axisSize)
	} else if !child.isLeadingPositionDefined(crossAxis) &&
		alignItem(node, child) == AlignCenter {
		child.layout.position[leading[crossAxis]] =
			(node.layout.measuredDimensions[dim[crossAxis]] -
				child.layout.measuredDimensions[dim[crossAxis]]) / 2
	} else if !child.isLeadingPositionDefined(crossAxis) &&
		((alignItem(node, child) == AlignFlexEnd) != (node.style.flexWrap == WrapWrapReverse)) {
		child.layout.position[leading[crossAxis]] =
			node.layout.measuredDimensions[dim[crossAxis]] -
				child.layout.measuredDimensions[dim[crossAxis]]
	}
}
