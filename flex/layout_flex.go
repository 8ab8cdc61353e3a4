package flex

// flexLine is the working state for one flex line: the items collected onto
// it, their accumulated basis, and the flex factors used to distribute free
// space.
type flexLine struct {
	// itemsOnLine counts the items that fit considering the available inner
	// dimension, their computed flex basis, and their margins. Absolute and
	// display-none children are skipped entirely.
	itemsOnLine int

	// sizeConsumedOnCurrentLine accumulates the basis and margin of every
	// item on the line.
	sizeConsumedOnCurrentLine float64

	totalFlexGrowFactors         float64
	totalFlexShrinkScaledFactors float64

	// endOfLineIndex is the child index after the last item examined for this
	// line.
	endOfLineIndex int

	relativeChildren []*Node

	remainingFreeSpace float64

	// mainDim is the line length along the main axis after justification,
	// including the container's leading and trailing padding and border.
	mainDim float64

	// crossDim is the tallest item on the line including its margins.
	crossDim float64
}

// collectFlexItemsIntoLine greedily packs children starting at
// startOfLineIndex into one line, accumulating flex factors as it goes.
func collectFlexItemsIntoLine(node *Node, parentDirection Direction,
	mainAxisParentSize, availableInnerWidth, availableInnerMainDim float64,
	startOfLineIndex, lineCount int) flexLine {

	line := flexLine{
		relativeChildren: make([]*Node, 0, len(node.children)),
	}

	sizeConsumedIncludingMinConstraint := 0.0
	mainAxis := resolveFlexDirection(
		node.style.flexDirection, node.resolveDirection(parentDirection))
	isNodeFlexWrap := node.style.flexWrap != WrapNoWrap

	// Add items to the current line until it's full or we run out of items.
	endOfLineIndex := startOfLineIndex
	for ; endOfLineIndex < len(node.children); endOfLineIndex++ {
		child := node.children[endOfLineIndex]
		if child.style.display == DisplayNone ||
			child.style.positionType == PositionTypeAbsolute {
			continue
		}
		child.lineIndex = lineCount
		childMarginMainAxis := child.marginForAxis(mainAxis, availableInnerWidth)
		flexBasisWithMinAndMaxConstraints := child.boundAxisWithinMinAndMax(
			mainAxis, child.layout.computedFlexBasis, mainAxisParentSize)

		// If this is a multi-line flow and this item pushes us over the
		// available size, the current line is done.
		if sizeConsumedIncludingMinConstraint+flexBasisWithMinAndMaxConstraints+
			childMarginMainAxis > availableInnerMainDim &&
			isNodeFlexWrap && line.itemsOnLine > 0 {
			break
		}

		sizeConsumedIncludingMinConstraint += flexBasisWithMinAndMaxConstraints + childMarginMainAxis
		line.sizeConsumedOnCurrentLine += flexBasisWithMinAndMaxConstraints + childMarginMainAxis
		line.itemsOnLine++

		if child.isNodeFlexible() {
			line.totalFlexGrowFactors += child.resolveFlexGrow()

			// Unlike the grow factor, the shrink factor is scaled relative to
			// the child dimension.
			line.totalFlexShrinkScaledFactors +=
				-child.resolveFlexShrink() * child.layout.computedFlexBasis
		}

		line.relativeChildren = append(line.relativeChildren, child)
	}

	// The total flex factor needs to be floored to 1.
	if line.totalFlexGrowFactors > 0 && line.totalFlexGrowFactors < 1 {
		line.totalFlexGrowFactors = 1
	}

	// The total flex shrink factor needs to be floored to 1.
	if line.totalFlexShrinkScaledFactors > 0 && line.totalFlexShrinkScaledFactors < 1 {
		line.totalFlexShrinkScaledFactors = 1
	}
	line.endOfLineIndex = endOfLineIndex
	return line
}

// distributeFreeSpaceFirstPass finds the items whose min/max constraints
// trigger, freezes them at the clamped size, and removes their share from the
// remaining free space so the second pass distributes only what is left.
func distributeFreeSpaceFirstPass(line *flexLine, mainAxis FlexDirection,
	mainAxisParentSize, availableInnerMainDim, availableInnerWidth float64) {

	deltaFreeSpace := 0.0

	for _, child := range line.relativeChildren {
		childFlexBasis := child.boundAxisWithinMinAndMax(
			mainAxis, child.layout.computedFlexBasis, mainAxisParentSize)

		if line.remainingFreeSpace < 0 {
			flexShrinkScaledFactor := -child.resolveFlexShrink() * childFlexBasis

			// Is this child able to shrink?
			if flexShrinkScaledFactor != 0 {
				baseMainSize := childFlexBasis +
					line.remainingFreeSpace/line.totalFlexShrinkScaledFactors*flexShrinkScaledFactor
				boundMainSize := child.boundAxis(
					mainAxis, baseMainSize, availableInnerMainDim, availableInnerWidth)
				if baseMainSize != boundMainSize {
					// Excluding this item's size and flex factor from
					// remaining means its constraints also trigger in the
					// second pass, keeping the two passes consistent.
					deltaFreeSpace += boundMainSize - childFlexBasis
					line.totalFlexShrinkScaledFactors -= flexShrinkScaledFactor
				}
			}
		} else if line.remainingFreeSpace > 0 {
			flexGrowFactor := child.resolveFlexGrow()

			// Is this child able to grow?
			if flexGrowFactor != 0 {
				baseMainSize := childFlexBasis +
					line.remainingFreeSpace/line.totalFlexGrowFactors*flexGrowFactor
				boundMainSize := child.boundAxis(
					mainAxis, baseMainSize, availableInnerMainDim, availableInnerWidth)

				if baseMainSize != boundMainSize {
					deltaFreeSpace += boundMainSize - childFlexBasis
					line.totalFlexGrowFactors -= flexGrowFactor
				}
			}
		}
	}
	line.remainingFreeSpace -= deltaFreeSpace
}

// distributeFreeSpaceSecondPass hands every item its final main size and
// recursively lays it out (or just measures, when a stretch pass will follow).
// Returns the total distributed space.
func distributeFreeSpaceSecondPass(line *flexLine, node *Node,
	mainAxis, crossAxis FlexDirection,
	mainAxisParentSize, availableInnerMainDim, availableInnerCrossDim,
	availableInnerWidth, availableInnerHeight float64,
	flexBasisOverflows bool, measureModeCrossDim MeasureMode,
	performLayout bool, config *Config) float64 {

	deltaFreeSpace := 0.0
	isMainAxisRow := flexDirectionIsRow(mainAxis)
	isNodeFlexWrap := node.style.flexWrap != WrapNoWrap

	for _, child := range line.relativeChildren {
		childFlexBasis := child.boundAxisWithinMinAndMax(
			mainAxis, child.layout.computedFlexBasis, mainAxisParentSize)
		updatedMainSize := childFlexBasis

		if line.remainingFreeSpace < 0 {
			flexShrinkScaledFactor := -child.resolveFlexShrink() * childFlexBasis
			// Is this child able to shrink?
			if flexShrinkScaledFactor != 0 {
				var childSize float64
				if line.totalFlexShrinkScaledFactors == 0 {
					childSize = childFlexBasis + flexShrinkScaledFactor
				} else {
					childSize = childFlexBasis +
						line.remainingFreeSpace/line.totalFlexShrinkScaledFactors*flexShrinkScaledFactor
				}
				updatedMainSize = child.boundAxis(
					mainAxis, childSize, availableInnerMainDim, availableInnerWidth)
			}
		} else if line.remainingFreeSpace > 0 {
			flexGrowFactor := child.resolveFlexGrow()

			// Is this child able to grow?
			if flexGrowFactor != 0 {
				updatedMainSize = child.boundAxis(
					mainAxis,
					childFlexBasis+line.remainingFreeSpace/line.totalFlexGrowFactors*flexGrowFactor,
					availableInnerMainDim, availableInnerWidth)
			}
		}

		deltaFreeSpace += updatedMainSize - childFlexBasis

		marginMain := child.marginForAxis(mainAxis, availableInnerWidth)
		marginCross := child.marginForAxis(crossAxis, availableInnerWidth)

		var childCrossSize float64
		childMainSize := updatedMainSize + marginMain
		var childCrossMeasureMode MeasureMode
		childMainMeasureMode := MeasureModeExactly

		switch {
		case !FloatIsUndefined(child.style.aspectRatio):
			if isMainAxisRow {
				childCrossSize = (childMainSize - marginMain) / child.style.aspectRatio
			} else {
				childCrossSize = (childMainSize - marginMain) * child.style.aspectRatio
			}
			childCrossMeasureMode = MeasureModeExactly
			childCrossSize += marginCross

		case !FloatIsUndefined(availableInnerCrossDim) &&
			!child.isStyleDimDefined(crossAxis, availableInnerCrossDim) &&
			measureModeCrossDim == MeasureModeExactly &&
			!(isNodeFlexWrap && flexBasisOverflows) &&
			alignItem(node, child) == AlignStretch &&
			child.marginLeadingValue(crossAxis).Unit != UnitAuto &&
			child.marginTrailingValue(crossAxis).Unit != UnitAuto:
			childCrossSize = availableInnerCrossDim
			childCrossMeasureMode = MeasureModeExactly

		case !child.isStyleDimDefined(crossAxis, availableInnerCrossDim):
			childCrossSize = availableInnerCrossDim
			childCrossMeasureMode = MeasureModeAtMost
			if FloatIsUndefined(childCrossSize) {
				childCrossMeasureMode = MeasureModeUndefined
			}

		default:
			childCrossSize = resolveValue(
				child.resolvedDimension(dim[crossAxis]), availableInnerCrossDim) + marginCross
			isLoosePercentageMeasurement :=
				child.resolvedDimension(dim[crossAxis]).Unit == UnitPercent &&
					measureModeCrossDim != MeasureModeExactly
			childCrossMeasureMode = MeasureModeExactly
			if FloatIsUndefined(childCrossSize) || isLoosePercentageMeasurement {
				childCrossMeasureMode = MeasureModeUndefined
			}
		}

		child.constrainMaxSizeForMode(
			mainAxis, availableInnerMainDim, availableInnerWidth,
			&childMainMeasureMode, &childMainSize)
		child.constrainMaxSizeForMode(
			crossAxis, availableInnerCrossDim, availableInnerWidth,
			&childCrossMeasureMode, &childCrossSize)

		requiresStretchLayout := !child.isStyleDimDefined(crossAxis, availableInnerCrossDim) &&
			alignItem(node, child) == AlignStretch &&
			child.marginLeadingValue(crossAxis).Unit != UnitAuto &&
			child.marginTrailingValue(crossAxis).Unit != UnitAuto

		childWidth := childCrossSize
		childHeight := childMainSize
		childWidthMeasureMode := childCrossMeasureMode
		childHeightMeasureMode := childMainMeasureMode
		if isMainAxisRow {
			childWidth = childMainSize
			childHeight = childCrossSize
			childWidthMeasureMode = childMainMeasureMode
			childHeightMeasureMode = childCrossMeasureMode
		}

		// Recursively lay out the child with the updated main size.
		layoutNodeInternal(child, childWidth, childHeight, node.layout.direction,
			childWidthMeasureMode, childHeightMeasureMode,
			availableInnerWidth, availableInnerHeight,
			performLayout && !requiresStretchLayout, "flex", config)
		node.layout.hadOverflow = node.layout.hadOverflow || child.layout.hadOverflow
	}
	return deltaFreeSpace
}

// resolveFlexibleLength runs the two-pass free-space distribution. The first
// pass freezes items whose min/max constraints trigger; the second sizes the
// rest. The two-pass approach deviates from the iterative process in the
// flexbox specification but runs in a fixed number of passes.
func resolveFlexibleLength(node *Node, line *flexLine,
	mainAxis, crossAxis FlexDirection,
	mainAxisParentSize, availableInnerMainDim, availableInnerCrossDim,
	availableInnerWidth, availableInnerHeight float64,
	flexBasisOverflows bool, measureModeCrossDim MeasureMode,
	performLayout bool, config *Config) {

	originalFreeSpace := line.remainingFreeSpace
	// First pass: detect the flex items whose min/max constraints trigger.
	distributeFreeSpaceFirstPass(line, mainAxis,
		mainAxisParentSize, availableInnerMainDim, availableInnerWidth)

	// Second pass: resolve the sizes of the flexible items.
	distributedFreeSpace := distributeFreeSpaceSecondPass(line, node,
		mainAxis, crossAxis, mainAxisParentSize,
		availableInnerMainDim, availableInnerCrossDim,
		availableInnerWidth, availableInnerHeight,
		flexBasisOverflows, measureModeCrossDim, performLayout, config)

	line.remainingFreeSpace = originalFreeSpace - distributedFreeSpace
}
