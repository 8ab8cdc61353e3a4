package flex

import "github.com/Joshua7054/FlexLayout/internal/core/geom"

// computeFlexBasisForChild fills in child.layout.computedFlexBasis: an
// explicit basis or definite main dimension is used directly (floored at the
// child's padding and border); otherwise the child is measured.
func computeFlexBasisForChild(node, child *Node,
	width float64, widthMode MeasureMode,
	height, parentWidth, parentHeight float64, heightMode MeasureMode,
	direction Direction, config *Config) {

	mainAxis := resolveFlexDirection(node.style.flexDirection, direction)
	isMainAxisRow := flexDirectionIsRow(mainAxis)
	mainAxisSize := height
	mainAxisParentSize := parentHeight
	if isMainAxisRow {
		mainAxisSize = width
		mainAxisParentSize = parentWidth
	}

	resolvedFlexBasis := resolveValue(child.resolveFlexBasis(), mainAxisParentSize)
	isRowStyleDimDefined := child.isStyleDimDefined(FlexDirectionRow, parentWidth)
	isColumnStyleDimDefined := child.isStyleDimDefined(FlexDirectionColumn, parentHeight)

	switch {
	case !FloatIsUndefined(resolvedFlexBasis) && !FloatIsUndefined(mainAxisSize):
		if FloatIsUndefined(child.layout.computedFlexBasis) ||
			(child.config.IsExperimentalFeatureEnabled(ExperimentalFeatureWebFlexBasis) &&
				child.layout.computedFlexBasisGeneration != config.generationCount) {
			child.layout.computedFlexBasis = geom.MaxF64(
				resolvedFlexBasis, child.paddingAndBorderForAxis(mainAxis, parentWidth))
		}

	case isMainAxisRow && isRowStyleDimDefined:
		// The width is definite, so use that as the flex basis.
		child.layout.computedFlexBasis = geom.MaxF64(
			resolveValue(child.resolvedDimension(DimensionWidth), parentWidth),
			child.paddingAndBorderForAxis(FlexDirectionRow, parentWidth))

	case !isMainAxisRow && isColumnStyleDimDefined:
		// The height is definite, so use that as the flex basis.
		child.layout.computedFlexBasis = geom.MaxF64(
			resolveValue(child.resolvedDimension(DimensionHeight), parentHeight),
			child.paddingAndBorderForAxis(FlexDirectionColumn, parentWidth))

	default:
		// Compute the flex basis and hypothetical main size (i.e. the clamped
		// flex basis).
		childWidth := Undefined
		childHeight := Undefined
		childWidthMeasureMode := MeasureModeUndefined
		childHeightMeasureMode := MeasureModeUndefined

		marginRow := child.marginForAxis(FlexDirectionRow, parentWidth)
		marginColumn := child.marginForAxis(FlexDirectionColumn, parentWidth)

		if isRowStyleDimDefined {
			childWidth = resolveValue(child.resolvedDimension(DimensionWidth), parentWidth) + marginRow
			childWidthMeasureMode = MeasureModeExactly
		}
		if isColumnStyleDimDefined {
			childHeight = resolveValue(child.resolvedDimension(DimensionHeight), parentHeight) + marginColumn
			childHeightMeasureMode = MeasureModeExactly
		}

		// The W3C spec doesn't say anything about the 'overflow' property, but
		// all major browsers appear to implement the following logic.
		if (!isMainAxisRow && node.style.overflow == OverflowScroll) ||
			node.style.overflow != OverflowScroll {
			if FloatIsUndefined(childWidth) && !FloatIsUndefined(width) {
				childWidth = width
				childWidthMeasureMode = MeasureModeAtMost
			}
		}

		if (isMainAxisRow && node.style.overflow == OverflowScroll) ||
			node.style.overflow != OverflowScroll {
			if FloatIsUndefined(childHeight) && !FloatIsUndefined(height) {
				childHeight = height
				childHeightMeasureMode = MeasureModeAtMost
			}
		}

		if !FloatIsUndefined(child.style.aspectRatio) {
			if !isMainAxisRow && childWidthMeasureMode == MeasureModeExactly {
				childHeight = marginColumn + (childWidth-marginRow)/child.style.aspectRatio
				childHeightMeasureMode = MeasureModeExactly
			} else if isMainAxisRow && childHeightMeasureMode == MeasureModeExactly {
				childWidth = marginRow + (childHeight-marginColumn)*child.style.aspectRatio
				childWidthMeasureMode = MeasureModeExactly
			}
		}

		// If the child has no defined size in the cross axis and is set to
		// stretch, measure the cross axis exactly with the available inner size.
		hasExactWidth := !FloatIsUndefined(width) && widthMode == MeasureModeExactly
		childWidthStretch := alignItem(node, child) == AlignStretch &&
			childWidthMeasureMode != MeasureModeExactly
		if !isMainAxisRow && !isRowStyleDimDefined && hasExactWidth && childWidthStretch {
			childWidth = width
			childWidthMeasureMode = MeasureModeExactly
			if !FloatIsUndefined(child.style.aspectRatio) {
				childHeight = (childWidth - marginRow) / child.style.aspectRatio
				childHeightMeasureMode = MeasureModeExactly
			}
		}

		hasExactHeight := !FloatIsUndefined(height) && heightMode == MeasureModeExactly
		childHeightStretch := alignItem(node, child) == AlignStretch &&
			childHeightMeasureMode != MeasureModeExactly
		if isMainAxisRow && !isColumnStyleDimDefined && hasExactHeight && childHeightStretch {
			childHeight = height
			childHeightMeasureMode = MeasureModeExactly
			if !FloatIsUndefined(child.style.aspectRatio) {
				childWidth = (childHeight - marginColumn) * child.style.aspectRatio
				childWidthMeasureMode = MeasureModeExactly
			}
		}

		child.constrainMaxSizeForMode(
			FlexDirectionRow, parentWidth, parentWidth, &childWidthMeasureMode, &childWidth)
		child.constrainMaxSizeForMode(
			FlexDirectionColumn, parentHeight, parentWidth, &childHeightMeasureMode, &childHeight)

		// Measure the child.
		layoutNodeInternal(child, childWidth, childHeight, direction,
			childWidthMeasureMode, childHeightMeasureMode,
			parentWidth, parentHeight, false, "measure", config)

		child.layout.computedFlexBasis = geom.MaxF64(
			child.layout.measuredDimensions[dim[mainAxis]],
			child.paddingAndBorderForAxis(mainAxis, parentWidth))
	}
	child.layout.computedFlexBasisGeneration = config.generationCount
}

// computeFlexBasisForChildren resolves every child's flex basis and
// accumulates the total outer basis used for overflow detection. A lone
// grow-and-shrink child under an exact main constraint skips measurement:
// its basis is zero because flexing will size it anyway.
func computeFlexBasisForChildren(node *Node,
	availableInnerWidth, availableInnerHeight float64,
	widthMeasureMode, heightMeasureMode MeasureMode,
	direction Direction, mainAxis FlexDirection,
	config *Config, performLayout bool, totalOuterFlexBasis *float64) {

	var singleFlexChild *Node
	measureModeMainDim := heightMeasureMode
	if flexDirectionIsRow(mainAxis) {
		measureModeMainDim = widthMeasureMode
	}
	if measureModeMainDim == MeasureModeExactly {
		for _, child := range node.children {
			if singleFlexChild != nil {
				if child.isNodeFlexible() {
					// There is already a flexible child, abort.
					singleFlexChild = nil
					break
				}
			} else if child.resolveFlexGrow() > 0 && child.resolveFlexShrink() > 0 {
				singleFlexChild = child
			}
		}
	}

	for _, child := range node.children {
		child.resolveDimension()
		if child.style.display == DisplayNone {
			zeroOutLayoutRecursively(child)
			child.hasNewLayout = true
			child.setDirty(false)
			continue
		}
		if performLayout {
			// Set the initial position (relative to the parent).
			childDirection := child.resolveDirection(direction)
			mainDim := availableInnerHeight
			crossDim := availableInnerWidth
			if flexDirectionIsRow(mainAxis) {
				mainDim = availableInnerWidth
				crossDim = availableInnerHeight
			}
			child.setPosition(childDirection, mainDim, crossDim, availableInnerWidth)
		}

		if child.style.positionType == PositionTypeAbsolute {
			continue
		}
		if child == singleFlexChild {
			child.layout.computedFlexBasisGeneration = config.generationCount
			child.layout.computedFlexBasis = 0
		} else {
			computeFlexBasisForChild(node, child,
				availableInnerWidth, widthMeasureMode,
				availableInnerHeight, availableInnerWidth, availableInnerHeight,
				heightMeasureMode, direction, config)
		}

		*totalOuterFlexBasis += child.layout.computedFlexBasis +
			child.marginForAxis(mainAxis, availableInnerWidth)
	}
}

// measureFuncSetMeasuredDimensions sizes a measure-function leaf: exact
// constraints bypass the callback, everything else measures the content and
// pads the result back out.
func measureFuncSetMeasuredDimensions(node *Node,
	availableWidth, availableHeight float64,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64) {

	assertWithNode(node, node.measure != nil, "Expected node to have custom measure function")

	paddingAndBorderAxisRow := node.paddingAndBorderForAxis(FlexDirectionRow, availableWidth)
	paddingAndBorderAxisColumn := node.paddingAndBorderForAxis(FlexDirectionColumn, availableWidth)
	marginAxisRow := node.marginForAxis(FlexDirectionRow, availableWidth)
	marginAxisColumn := node.marginForAxis(FlexDirectionColumn, availableWidth)

	// We want to make sure we don't call measure with negative size.
	innerWidth := availableWidth
	if !FloatIsUndefined(availableWidth) {
		innerWidth = geom.MaxF64(0, availableWidth-marginAxisRow-paddingAndBorderAxisRow)
	}
	innerHeight := availableHeight
	if !FloatIsUndefined(availableHeight) {
		innerHeight = geom.MaxF64(0, availableHeight-marginAxisColumn-paddingAndBorderAxisColumn)
	}

	if widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
		// Don't bother sizing the text if both dimensions are already defined.
		node.layout.measuredDimensions[DimensionWidth] = node.boundAxis(
			FlexDirectionRow, availableWidth-marginAxisRow, parentWidth, parentWidth)
		node.layout.measuredDimensions[DimensionHeight] = node.boundAxis(
			FlexDirectionColumn, availableHeight-marginAxisColumn, parentHeight, parentWidth)
		return
	}

	// Measure the text under the current constraints.
	measuredSize := node.measure(node, innerWidth, widthMeasureMode, innerHeight, heightMeasureMode)
	assertWithNode(node,
		!FloatIsUndefined(measuredSize.Width) && !FloatIsUndefined(measuredSize.Height),
		"Expected custom measure function to return valid dimensions")

	width := availableWidth - marginAxisRow
	if widthMeasureMode == MeasureModeUndefined || widthMeasureMode == MeasureModeAtMost {
		width = measuredSize.Width + paddingAndBorderAxisRow
	}
	node.layout.measuredDimensions[DimensionWidth] = node.boundAxis(
		FlexDirectionRow, width, parentWidth, parentWidth)

	height := availableHeight - marginAxisColumn
	if heightMeasureMode == MeasureModeUndefined || heightMeasureMode == MeasureModeAtMost {
		height = measuredSize.Height + paddingAndBorderAxisColumn
	}
	node.layout.measuredDimensions[DimensionHeight] = node.boundAxis(
		FlexDirectionColumn, height, parentHeight, parentWidth)
}

// emptyContainerSetMeasuredDimensions sizes a childless node from the
// available values, or from padding and border when unconstrained.
func emptyContainerSetMeasuredDimensions(node *Node,
	availableWidth, availableHeight float64,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64) {

	paddingAndBorderAxisRow := node.paddingAndBorderForAxis(FlexDirectionRow, parentWidth)
	paddingAndBorderAxisColumn := node.paddingAndBorderForAxis(FlexDirectionColumn, parentWidth)
	marginAxisRow := node.marginForAxis(FlexDirectionRow, parentWidth)
	marginAxisColumn := node.marginForAxis(FlexDirectionColumn, parentWidth)

	width := availableWidth - marginAxisRow
	if widthMeasureMode == MeasureModeUndefined || widthMeasureMode == MeasureModeAtMost {
		width = paddingAndBorderAxisRow
	}
	node.layout.measuredDimensions[DimensionWidth] = node.boundAxis(
		FlexDirectionRow, width, parentWidth, parentWidth)

	height := availableHeight - marginAxisColumn
	if heightMeasureMode == MeasureModeUndefined || heightMeasureMode == MeasureModeAtMost {
		height = paddingAndBorderAxisColumn
	}
	node.layout.measuredDimensions[DimensionHeight] = node.boundAxis(
		FlexDirectionColumn, height, parentHeight, parentWidth)
}

// fixedSizeSetMeasuredDimensions short-circuits a measurement-only pass when
// both axes are exactly constrained, or an at-most axis has no room at all.
func fixedSizeSetMeasuredDimensions(node *Node,
	availableWidth, availableHeight float64,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64) bool {

	if (widthMeasureMode == MeasureModeAtMost && availableWidth <= 0) ||
		(heightMeasureMode == MeasureModeAtMost && availableHeight <= 0) ||
		(widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly) {
		marginAxisColumn := node.marginForAxis(FlexDirectionColumn, parentWidth)
		marginAxisRow := node.marginForAxis(FlexDirectionRow, parentWidth)

		width := availableWidth - marginAxisRow
		if FloatIsUndefined(availableWidth) ||
			(widthMeasureMode == MeasureModeAtMost && availableWidth < 0) {
			width = 0
		}
		node.layout.measuredDimensions[DimensionWidth] = node.boundAxis(
			FlexDirectionRow, width, parentWidth, parentWidth)

		height := availableHeight - marginAxisColumn
		if FloatIsUndefined(availableHeight) ||
			(heightMeasureMode == MeasureModeAtMost && availableHeight < 0) {
			height = 0
		}
		node.layout.measuredDimensions[DimensionHeight] = node.boundAxis(
			FlexDirectionColumn, height, parentHeight, parentWidth)
		return true
	}

	return false
}
