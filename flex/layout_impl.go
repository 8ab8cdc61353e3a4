package flex

import "github.com/Joshua7054/FlexLayout/internal/core/geom"

// justifyMainAxis walks one line writing main-axis positions, distributing
// free space per justifyContent or per auto margins when any are present.
func justifyMainAxis(node *Node, line *flexLine, startOfLineIndex int,
	mainAxis, crossAxis FlexDirection,
	measureModeMainDim, measureModeCrossDim MeasureMode,
	mainAxisParentSize, parentWidth,
	availableInnerMainDim, availableInnerCrossDim, availableInnerWidth float64,
	performLayout bool) {

	style := &node.style

	// Under "at most" rules on the main axis, the remaining space is bounded
	// by the minimum size defined for that axis.
	if measureModeMainDim == MeasureModeAtMost && line.remainingFreeSpace > 0 {
		minMain := resolveValue(style.minDimensions[dim[mainAxis]], mainAxisParentSize)
		if style.minDimensions[dim[mainAxis]].Unit != UnitUndefined && minMain >= 0 {
			line.remainingFreeSpace = geom.MaxF64(
				0, minMain-(availableInnerMainDim-line.remainingFreeSpace))
		} else {
			line.remainingFreeSpace = 0
		}
	}

	numberOfAutoMarginsOnCurrentLine := 0
	for i := startOfLineIndex; i < line.endOfLineIndex; i++ {
		child := node.children[i]
		if child.style.positionType == PositionTypeRelative {
			if child.marginLeadingValue(mainAxis).Unit == UnitAuto {
				numberOfAutoMarginsOnCurrentLine++
			}
			if child.marginTrailingValue(mainAxis).Unit == UnitAuto {
				numberOfAutoMarginsOnCurrentLine++
			}
		}
	}

	// Positioning along the main axis has two controls: the space before the
	// first element and the space between elements.
	leadingMainDim := 0.0
	betweenMainDim := 0.0

	if numberOfAutoMarginsOnCurrentLine == 0 {
		switch style.justifyContent {
		case JustifyCenter:
			leadingMainDim = line.remainingFreeSpace / 2
		case JustifyFlexEnd:
			leadingMainDim = line.remainingFreeSpace
		case JustifySpaceBetween:
			if line.itemsOnLine > 1 {
				betweenMainDim = geom.MaxF64(line.remainingFreeSpace, 0) /
					float64(line.itemsOnLine-1)
			}
		case JustifySpaceEvenly:
			// Space is distributed evenly across all elements.
			betweenMainDim = line.remainingFreeSpace / float64(line.itemsOnLine+1)
			leadingMainDim = betweenMainDim
		case JustifySpaceAround:
			// Space on the edges is half of the space between elements.
			betweenMainDim = line.remainingFreeSpace / float64(line.itemsOnLine)
			leadingMainDim = betweenMainDim / 2
		case JustifyFlexStart:
		}
	}

	leadingPaddingAndBorderMain := node.leadingPaddingAndBorder(mainAxis, parentWidth)
	line.mainDim = leadingPaddingAndBorderMain + leadingMainDim
	line.crossDim = 0

	for i := startOfLineIndex; i < line.endOfLineIndex; i++ {
		child := node.children[i]
		if child.style.display == DisplayNone {
			continue
		}
		if child.style.positionType == PositionTypeAbsolute &&
			child.isLeadingPositionDefined(mainAxis) {
			if performLayout {
				// An absolute child with a defined leading position gets it
				// applied directly (plus border and margin).
				child.layout.position[pos[mainAxis]] =
					child.leadingPosition(mainAxis, availableInnerMainDim) +
						node.leadingBorder(mainAxis) +
						child.leadingMargin(mainAxis, availableInnerWidth)
			}
			continue
		}

		// Only relative elements take part in the spacing bookkeeping.
		if child.style.positionType == PositionTypeRelative {
			if child.marginLeadingValue(mainAxis).Unit == UnitAuto {
				line.mainDim += line.remainingFreeSpace / float64(numberOfAutoMarginsOnCurrentLine)
			}

			if performLayout {
				child.layout.position[pos[mainAxis]] += line.mainDim
			}

			if child.marginTrailingValue(mainAxis).Unit == UnitAuto {
				line.mainDim += line.remainingFreeSpace / float64(numberOfAutoMarginsOnCurrentLine)
			}
			canSkipFlex := !performLayout && measureModeCrossDim == MeasureModeExactly
			if canSkipFlex {
				// The flex step was skipped, so the measured dimensions are
				// stale; size from the computed basis instead.
				line.mainDim += betweenMainDim +
					child.marginForAxis(mainAxis, availableInnerWidth) +
					child.layout.computedFlexBasis
				line.crossDim = availableInnerCrossDim
			} else {
				// The main dimension is the sum of all the elements'
				// dimensions plus the spacing.
				line.mainDim += betweenMainDim +
					child.dimWithMargin(mainAxis, availableInnerWidth)

				// The cross dimension is the max of the elements' dimensions
				// since there can only be one element per cross position.
				line.crossDim = geom.MaxF64(
					line.crossDim, child.dimWithMargin(crossAxis, availableInnerWidth))
			}
		} else if performLayout {
			child.layout.position[pos[mainAxis]] +=
				node.leadingBorder(mainAxis) + leadingMainDim
		}
	}
	line.mainDim += node.trailingPaddingAndBorder(mainAxis, parentWidth)
}

// layoutImpl is the recursive flexbox solver. It implements a subset of the
// W3C algorithm; stacking, 'order', 'visibility: collapse', forced breaks,
// and vertical inline directions are not supported, and the default minimum
// main size of flex items is taken as zero.
//
// availableWidth and availableHeight are interpreted through the measure
// modes: Undefined means max content, Exactly fill available, AtMost fit
// content. An undefined available dimension must come with an Undefined mode.
//
// The routine fills in layout.direction and layout.measuredDimensions of node
// and the position and lineIndex fields of its children. Measured dimensions
// include border and padding but never margins.
func layoutImpl(node *Node, availableWidth, availableHeight float64,
	parentDirection Direction,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64,
	performLayout bool, config *Config) {

	assertWithNode(node,
		!FloatIsUndefined(availableWidth) || widthMeasureMode == MeasureModeUndefined,
		"availableWidth is indefinite so widthMeasureMode must be MeasureModeUndefined")
	assertWithNode(node,
		!FloatIsUndefined(availableHeight) || heightMeasureMode == MeasureModeUndefined,
		"availableHeight is indefinite so heightMeasureMode must be MeasureModeUndefined")

	// Set the resolved direction in the node's layout.
	direction := node.resolveDirection(parentDirection)
	node.layout.direction = direction

	flexRowDirection := resolveFlexDirection(FlexDirectionRow, direction)
	flexColumnDirection := resolveFlexDirection(FlexDirectionColumn, direction)

	node.layout.margin[EdgeStart] = node.leadingMargin(flexRowDirection, parentWidth)
	node.layout.margin[EdgeEnd] = node.trailingMargin(flexRowDirection, parentWidth)
	node.layout.margin[EdgeTop] = node.leadingMargin(flexColumnDirection, parentWidth)
	node.layout.margin[EdgeBottom] = node.trailingMargin(flexColumnDirection, parentWidth)

	node.layout.border[EdgeStart] = node.leadingBorder(flexRowDirection)
	node.layout.border[EdgeEnd] = node.trailingBorder(flexRowDirection)
	node.layout.border[EdgeTop] = node.leadingBorder(flexColumnDirection)
	node.layout.border[EdgeBottom] = node.trailingBorder(flexColumnDirection)

	node.layout.padding[EdgeStart] = node.leadingPadding(flexRowDirection, parentWidth)
	node.layout.padding[EdgeEnd] = node.trailingPadding(flexRowDirection, parentWidth)
	node.layout.padding[EdgeTop] = node.leadingPadding(flexColumnDirection, parentWidth)
	node.layout.padding[EdgeBottom] = node.trailingPadding(flexColumnDirection, parentWidth)

	if node.measure != nil {
		measureFuncSetMeasuredDimensions(node, availableWidth, availableHeight,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return
	}

	childCount := len(node.children)
	if childCount == 0 {
		emptyContainerSetMeasuredDimensions(node, availableWidth, availableHeight,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return
	}

	// If we're not being asked to perform a full layout we can skip the
	// algorithm if we already know the size.
	if !performLayout && fixedSizeSetMeasuredDimensions(node,
		availableWidth, availableHeight,
		widthMeasureMode, heightMeasureMode, parentWidth, parentHeight) {
		return
	}

	// At this point we know we're going to perform work. Ensure that each
	// child has a mutable copy.
	node.cloneChildrenIfNeeded()
	// Reset layout flags, as they could have changed.
	node.layout.hadOverflow = false

	// STEP 1: CALCULATE VALUES FOR REMAINDER OF ALGORITHM
	mainAxis := resolveFlexDirection(node.style.flexDirection, direction)
	crossAxis := flexDirectionCross(mainAxis, direction)
	isMainAxisRow := flexDirectionIsRow(mainAxis)
	isNodeFlexWrap := node.style.flexWrap != WrapNoWrap

	mainAxisParentSize := parentHeight
	crossAxisParentSize := parentWidth
	if isMainAxisRow {
		mainAxisParentSize = parentWidth
		crossAxisParentSize = parentHeight
	}

	leadingPaddingAndBorderCross := node.leadingPaddingAndBorder(crossAxis, parentWidth)
	paddingAndBorderAxisMain := node.paddingAndBorderForAxis(mainAxis, parentWidth)
	paddingAndBorderAxisCross := node.paddingAndBorderForAxis(crossAxis, parentWidth)

	measureModeMainDim := heightMeasureMode
	measureModeCrossDim := widthMeasureMode
	if isMainAxisRow {
		measureModeMainDim = widthMeasureMode
		measureModeCrossDim = heightMeasureMode
	}

	paddingAndBorderAxisRow := paddingAndBorderAxisCross
	paddingAndBorderAxisColumn := paddingAndBorderAxisMain
	if isMainAxisRow {
		paddingAndBorderAxisRow = paddingAndBorderAxisMain
		paddingAndBorderAxisColumn = paddingAndBorderAxisCross
	}

	marginAxisRow := node.marginForAxis(FlexDirectionRow, parentWidth)
	marginAxisColumn := node.marginForAxis(FlexDirectionColumn, parentWidth)

	minInnerWidth := resolveValue(node.style.minDimensions[DimensionWidth], parentWidth) -
		paddingAndBorderAxisRow
	maxInnerWidth := resolveValue(node.style.maxDimensions[DimensionWidth], parentWidth) -
		paddingAndBorderAxisRow
	minInnerHeight := resolveValue(node.style.minDimensions[DimensionHeight], parentHeight) -
		paddingAndBorderAxisColumn
	maxInnerHeight := resolveValue(node.style.maxDimensions[DimensionHeight], parentHeight) -
		paddingAndBorderAxisColumn

	minInnerMainDim := minInnerHeight
	maxInnerMainDim := maxInnerHeight
	if isMainAxisRow {
		minInnerMainDim = minInnerWidth
		maxInnerMainDim = maxInnerWidth
	}

	// STEP 2: DETERMINE AVAILABLE SIZE IN MAIN AND CROSS DIRECTIONS
	availableInnerWidth := node.calculateAvailableInnerDim(
		FlexDirectionRow, availableWidth, parentWidth)
	availableInnerHeight := node.calculateAvailableInnerDim(
		FlexDirectionColumn, availableHeight, parentHeight)

	availableInnerMainDim := availableInnerHeight
	availableInnerCrossDim := availableInnerWidth
	if isMainAxisRow {
		availableInnerMainDim = availableInnerWidth
		availableInnerCrossDim = availableInnerHeight
	}

	totalOuterFlexBasis := 0.0

	// STEP 3: DETERMINE FLEX BASIS FOR EACH ITEM
	computeFlexBasisForChildren(node, availableInnerWidth, availableInnerHeight,
		widthMeasureMode, heightMeasureMode, direction, mainAxis, config,
		performLayout, &totalOuterFlexBasis)

	flexBasisOverflows := measureModeMainDim != MeasureModeUndefined &&
		totalOuterFlexBasis > availableInnerMainDim
	if isNodeFlexWrap && flexBasisOverflows && measureModeMainDim == MeasureModeAtMost {
		measureModeMainDim = MeasureModeExactly
	}

	// STEP 4: COLLECT FLEX ITEMS INTO FLEX LINES

	// Indexes of children that represent the first and last items in the line.
	startOfLineIndex := 0
	endOfLineIndex := 0

	// Number of lines.
	lineCount := 0

	// Accumulated cross dimensions of all lines so far.
	totalLineCrossDim := 0.0

	// Max main dimension of all the lines.
	maxLineMainDim := 0.0
	var line flexLine
	for ; endOfLineIndex < childCount; lineCount++ {
		line = collectFlexItemsIntoLine(node, parentDirection,
			mainAxisParentSize, availableInnerWidth, availableInnerMainDim,
			startOfLineIndex, lineCount)
		endOfLineIndex = line.endOfLineIndex

		// If we don't need to measure the cross axis, we can skip the entire
		// flex step.
		canSkipFlex := !performLayout && measureModeCrossDim == MeasureModeExactly

		// STEP 5: RESOLVING FLEXIBLE LENGTHS ON MAIN AXIS
		// Calculate the remaining available space that needs to be allocated.
		// If the main dimension size isn't known, it is computed based on the
		// line length, so there's no more space left to distribute.

		sizeBasedOnContent := false
		// If we don't measure with exact main dimension we want to ensure we
		// don't violate min and max.
		if measureModeMainDim != MeasureModeExactly {
			if !FloatIsUndefined(minInnerMainDim) &&
				line.sizeConsumedOnCurrentLine < minInnerMainDim {
				availableInnerMainDim = minInnerMainDim
			} else if !FloatIsUndefined(maxInnerMainDim) &&
				line.sizeConsumedOnCurrentLine > maxInnerMainDim {
				availableInnerMainDim = maxInnerMainDim
			} else {
				if !node.config.useLegacyStretchBehaviour &&
					(line.totalFlexGrowFactors == 0 || node.resolveFlexGrow() == 0) {
					// If we don't have any children to flex or we can't flex
					// the node itself, the space we've used is all the space
					// we need. The root node is also shrunk to minimum.
					availableInnerMainDim = line.sizeConsumedOnCurrentLine
				}

				if node.config.useLegacyStretchBehaviour {
					node.layout.didUseLegacyFlag = true
				}
				sizeBasedOnContent = !node.config.useLegacyStretchBehaviour
			}
		}

		if !sizeBasedOnContent && !FloatIsUndefined(availableInnerMainDim) {
			line.remainingFreeSpace = availableInnerMainDim - line.sizeConsumedOnCurrentLine
		} else if line.sizeConsumedOnCurrentLine < 0 {
			// availableInnerMainDim is indefinite which means the node is
			// being sized based on its content. sizeConsumedOnCurrentLine is
			// negative which means the node will allocate 0 points for its
			// content.
			line.remainingFreeSpace = -line.sizeConsumedOnCurrentLine
		}

		if !canSkipFlex {
			resolveFlexibleLength(node, &line, mainAxis, crossAxis,
				mainAxisParentSize, availableInnerMainDim, availableInnerCrossDim,
				availableInnerWidth, availableInnerHeight,
				flexBasisOverflows, measureModeCrossDim, performLayout, config)
		}

		node.layout.hadOverflow = node.layout.hadOverflow || line.remainingFreeSpace < 0

		// STEP 6: MAIN-AXIS JUSTIFICATION & CROSS-AXIS SIZE DETERMINATION

		// At this point, all the children have their dimensions set in the
		// main axis, and in the cross axis except for stretched items.
		justifyMainAxis(node, &line, startOfLineIndex, mainAxis, crossAxis,
			measureModeMainDim, measureModeCrossDim, mainAxisParentSize,
			parentWidth, availableInnerMainDim, availableInnerCrossDim,
			availableInnerWidth, performLayout)

		containerCrossAxis := availableInnerCrossDim
		if measureModeCrossDim == MeasureModeUndefined ||
			measureModeCrossDim == MeasureModeAtMost {
			// Compute the cross axis from the max cross dimension of the children.
			containerCrossAxis = node.boundAxis(crossAxis,
				line.crossDim+paddingAndBorderAxisCross,
				crossAxisParentSize, parentWidth) - paddingAndBorderAxisCross
		}

		// If there's no flex wrap, the cross dimension is defined by the container.
		if !isNodeFlexWrap && measureModeCrossDim == MeasureModeExactly {
			line.crossDim = availableInnerCrossDim
		}

		// Clamp to the min/max size specified on the container.
		line.crossDim = node.boundAxis(crossAxis,
			line.crossDim+paddingAndBorderAxisCross,
			crossAxisParentSize, parentWidth) - paddingAndBorderAxisCross

		// STEP 7: CROSS-AXIS ALIGNMENT
		// We can skip child alignment if we're just measuring the container.
		if performLayout {
			for i := startOfLineIndex; i < endOfLineIndex; i++ {
				child := node.children[i]
				if child.style.display == DisplayNone {
					continue
				}
				if child.style.positionType == PositionTypeAbsolute {
					// An absolutely positioned child with a defined cross
					// offset overrides whatever position was computed so far.
					isChildLeadingPosDefined := child.isLeadingPositionDefined(crossAxis)
					if isChildLeadingPosDefined {
						child.layout.position[pos[crossAxis]] =
							child.leadingPosition(crossAxis, availableInnerCrossDim) +
								node.leadingBorder(crossAxis) +
								child.leadingMargin(crossAxis, availableInnerWidth)
					}
					// If leading position is not defined or calculations
					// result in NaN, default to border + margin.
					if !isChildLeadingPosDefined ||
						FloatIsUndefined(child.layout.position[pos[crossAxis]]) {
						child.layout.position[pos[crossAxis]] =
							node.leadingBorder(crossAxis) +
								child.leadingMargin(crossAxis, availableInnerWidth)
					}
					continue
				}

				leadingCrossDim := leadingPaddingAndBorderCross

				// For relative children, alignItems (parent) or alignSelf
				// (child) determines the position in the cross axis.
				align := alignItem(node, child)

				// A stretch child without a definite cross size is laid out
				// one more time, this time forcing the cross size to the
				// line's cross dimension.
				if align == AlignStretch &&
					child.marginLeadingValue(crossAxis).Unit != UnitAuto &&
					child.marginTrailingValue(crossAxis).Unit != UnitAuto {
					if !child.isStyleDimDefined(crossAxis, availableInnerCrossDim) {
						childMainSize := child.layout.measuredDimensions[dim[mainAxis]]
						childCrossSize := line.crossDim
						if !FloatIsUndefined(child.style.aspectRatio) {
							crossFromRatio := childMainSize * child.style.aspectRatio
							if isMainAxisRow {
								crossFromRatio = childMainSize / child.style.aspectRatio
							}
							childCrossSize = child.marginForAxis(crossAxis, availableInnerWidth) +
								crossFromRatio
						}

						childMainSize += child.marginForAxis(mainAxis, availableInnerWidth)

						childMainMeasureMode := MeasureModeExactly
						childCrossMeasureMode := MeasureModeExactly
						child.constrainMaxSizeForMode(mainAxis, availableInnerMainDim,
							availableInnerWidth, &childMainMeasureMode, &childMainSize)
						child.constrainMaxSizeForMode(crossAxis, availableInnerCrossDim,
							availableInnerWidth, &childCrossMeasureMode, &childCrossSize)

						childWidth := childCrossSize
						childHeight := childMainSize
						if isMainAxisRow {
							childWidth = childMainSize
							childHeight = childCrossSize
						}

						childWidthMeasureMode := MeasureModeExactly
						if FloatIsUndefined(childWidth) {
							childWidthMeasureMode = MeasureModeUndefined
						}
						childHeightMeasureMode := MeasureModeExactly
						if FloatIsUndefined(childHeight) {
							childHeightMeasureMode = MeasureModeUndefined
						}

						layoutNodeInternal(child, childWidth, childHeight, direction,
							childWidthMeasureMode, childHeightMeasureMode,
							availableInnerWidth, availableInnerHeight,
							true, "stretch", config)
					}
				} else {
					remainingCrossDim := containerCrossAxis -
						child.dimWithMargin(crossAxis, availableInnerWidth)

					if child.marginLeadingValue(crossAxis).Unit == UnitAuto &&
						child.marginTrailingValue(crossAxis).Unit == UnitAuto {
						leadingCrossDim += geom.MaxF64(0, remainingCrossDim/2)
					} else if child.marginTrailingValue(crossAxis).Unit == UnitAuto {
						// No-op: the trailing auto margin absorbs the space.
					} else if child.marginLeadingValue(crossAxis).Unit == UnitAuto {
						leadingCrossDim += geom.MaxF64(0, remainingCrossDim)
					} else if align == AlignFlexStart {
						// No-op.
					} else if align == AlignCenter {
						leadingCrossDim += remainingCrossDim / 2
					} else {
						leadingCrossDim += remainingCrossDim
					}
				}
				// And we apply the position.
				child.layout.position[pos[crossAxis]] += totalLineCrossDim + leadingCrossDim
			}
		}

		totalLineCrossDim += line.crossDim
		maxLineMainDim = geom.MaxF64(maxLineMainDim, line.mainDim)
		startOfLineIndex = endOfLineIndex
	}

	// STEP 8: MULTI-LINE CONTENT ALIGNMENT
	if performLayout && (lineCount > 1 || isBaselineLayout(node)) &&
		!FloatIsUndefined(availableInnerCrossDim) {
		remainingAlignContentDim := availableInnerCrossDim - totalLineCrossDim

		crossDimLead := 0.0
		currentLead := leadingPaddingAndBorderCross

		switch node.style.alignContent {
		case AlignFlexEnd:
			currentLead += remainingAlignContentDim
		case AlignCenter:
			currentLead += remainingAlignContentDim / 2
		case AlignStretch:
			if availableInnerCrossDim > totalLineCrossDim {
				crossDimLead = remainingAlignContentDim / float64(lineCount)
			}
		case AlignSpaceAround:
			if availableInnerCrossDim > totalLineCrossDim {
				currentLead += remainingAlignContentDim / float64(2*lineCount)
				if lineCount > 1 {
					crossDimLead = remainingAlignContentDim / float64(lineCount)
				}
			} else {
				currentLead += remainingAlignContentDim / 2
			}
		case AlignSpaceBetween:
			if availableInnerCrossDim > totalLineCrossDim && lineCount > 1 {
				crossDimLead = remainingAlignContentDim / float64(lineCount-1)
			}
		case AlignAuto, AlignFlexStart, AlignBaseline:
		}

		endIndex := 0
		for i := 0; i < lineCount; i++ {
			startIndex := endIndex
			var ii int

			// Compute the line's height and find the endIndex.
			lineHeight := 0.0
			maxAscentForCurrentLine := 0.0
			maxDescentForCurrentLine := 0.0
			for ii = startIndex; ii < childCount; ii++ {
				child := node.children[ii]
				if child.style.display == DisplayNone {
					continue
				}
				if child.style.positionType == PositionTypeRelative {
					if child.lineIndex != i {
						break
					}
					if child.isLayoutDimDefined(crossAxis) {
						lineHeight = geom.MaxF64(lineHeight,
							child.layout.measuredDimensions[dim[crossAxis]]+
								child.marginForAxis(crossAxis, availableInnerWidth))
					}
					if alignItem(node, child) == AlignBaseline {
						ascent := baseline(child) +
							child.leadingMargin(FlexDirectionColumn, availableInnerWidth)
						descent := child.layout.measuredDimensions[DimensionHeight] +
							child.marginForAxis(FlexDirectionColumn, availableInnerWidth) -
							ascent
						maxAscentForCurrentLine = geom.MaxF64(maxAscentForCurrentLine, ascent)
						maxDescentForCurrentLine = geom.MaxF64(maxDescentForCurrentLine, descent)
						lineHeight = geom.MaxF64(lineHeight,
							maxAscentForCurrentLine+maxDescentForCurrentLine)
					}
				}
			}
			endIndex = ii
			lineHeight += crossDimLead

			for ii = startIndex; ii < endIndex; ii++ {
				child := node.children[ii]
				if child.style.display == DisplayNone ||
					child.style.positionType != PositionTypeRelative {
					continue
				}
				switch alignItem(node, child) {
				case AlignFlexStart:
					child.layout.position[pos[crossAxis]] = currentLead +
						child.leadingMargin(crossAxis, availableInnerWidth)
				case AlignFlexEnd:
					child.layout.position[pos[crossAxis]] = currentLead + lineHeight -
						child.trailingMargin(crossAxis, availableInnerWidth) -
						child.layout.measuredDimensions[dim[crossAxis]]
				case AlignCenter:
					childHeight := child.layout.measuredDimensions[dim[crossAxis]]
					child.layout.position[pos[crossAxis]] =
						currentLead + (lineHeight-childHeight)/2
				case AlignStretch:
					child.layout.position[pos[crossAxis]] = currentLead +
						child.leadingMargin(crossAxis, availableInnerWidth)

					// Remeasure the child with the line height; so far it was
					// only measured with the parent's height.
					if !child.isStyleDimDefined(crossAxis, availableInnerCrossDim) {
						childWidth := lineHeight
						childHeight := lineHeight
						if isMainAxisRow {
							childWidth = child.layout.measuredDimensions[DimensionWidth] +
								child.marginForAxis(mainAxis, availableInnerWidth)
						} else {
							childHeight = child.layout.measuredDimensions[DimensionHeight] +
								child.marginForAxis(crossAxis, availableInnerWidth)
						}

						if !(geom.FloatsEqual(childWidth,
							child.layout.measuredDimensions[DimensionWidth]) &&
							geom.FloatsEqual(childHeight,
								child.layout.measuredDimensions[DimensionHeight])) {
							layoutNodeInternal(child, childWidth, childHeight, direction,
								MeasureModeExactly, MeasureModeExactly,
								availableInnerWidth, availableInnerHeight,
								true, "multiline-stretch", config)
						}
					}
				case AlignBaseline:
					child.layout.position[EdgeTop] = currentLead +
						maxAscentForCurrentLine - baseline(child) +
						child.leadingPosition(FlexDirectionColumn, availableInnerCrossDim)
				case AlignAuto, AlignSpaceBetween, AlignSpaceAround:
				}
			}

			currentLead += lineHeight
		}
	}

	// STEP 9: COMPUTING FINAL DIMENSIONS
	node.layout.measuredDimensions[DimensionWidth] = node.boundAxis(
		FlexDirectionRow, availableWidth-marginAxisRow, parentWidth, parentWidth)
	node.layout.measuredDimensions[DimensionHeight] = node.boundAxis(
		FlexDirectionColumn, availableHeight-marginAxisColumn, parentHeight, parentWidth)

	// If the user didn't specify a width or height for the node, set the
	// dimensions based on the children.
	if measureModeMainDim == MeasureModeUndefined ||
		(node.style.overflow != OverflowScroll && measureModeMainDim == MeasureModeAtMost) {
		// Clamp the size to the min/max size, if specified, and make sure it
		// doesn't go below the padding and border amount.
		node.layout.measuredDimensions[dim[mainAxis]] = node.boundAxis(
			mainAxis, maxLineMainDim, mainAxisParentSize, parentWidth)
	} else if measureModeMainDim == MeasureModeAtMost &&
		node.style.overflow == OverflowScroll {
		node.layout.measuredDimensions[dim[mainAxis]] = geom.MaxF64(
			geom.MinF64(availableInnerMainDim+paddingAndBorderAxisMain,
				node.boundAxisWithinMinAndMax(mainAxis, maxLineMainDim, mainAxisParentSize)),
			paddingAndBorderAxisMain)
	}

	if measureModeCrossDim == MeasureModeUndefined ||
		(node.style.overflow != OverflowScroll && measureModeCrossDim == MeasureModeAtMost) {
		node.layout.measuredDimensions[dim[crossAxis]] = node.boundAxis(
			crossAxis, totalLineCrossDim+paddingAndBorderAxisCross,
			crossAxisParentSize, parentWidth)
	} else if measureModeCrossDim == MeasureModeAtMost &&
		node.style.overflow == OverflowScroll {
		node.layout.measuredDimensions[dim[crossAxis]] = geom.MaxF64(
			geom.MinF64(availableInnerCrossDim+paddingAndBorderAxisCross,
				node.boundAxisWithinMinAndMax(crossAxis,
					totalLineCrossDim+paddingAndBorderAxisCross, crossAxisParentSize)),
			paddingAndBorderAxisCross)
	}

	// As we only wrapped in normal direction yet, we need to reverse the
	// positions on wrap-reverse.
	if performLayout && node.style.flexWrap == WrapWrapReverse {
		for _, child := range node.children {
			if child.style.positionType == PositionTypeRelative {
				child.layout.position[pos[crossAxis]] =
					node.layout.measuredDimensions[dim[crossAxis]] -
						child.layout.position[pos[crossAxis]] -
						child.layout.measuredDimensions[dim[crossAxis]]
			}
		}
	}

	if performLayout {
		// STEP 10: SIZING AND POSITIONING ABSOLUTE CHILDREN
		for _, child := range node.children {
			if child.style.positionType != PositionTypeAbsolute {
				continue
			}
			absWidthMode := measureModeCrossDim
			if isMainAxisRow {
				absWidthMode = measureModeMainDim
			}
			absoluteLayoutChild(node, child, availableInnerWidth, absWidthMode,
				availableInnerHeight, direction, config)
		}

		// STEP 11: SETTING TRAILING POSITIONS FOR CHILDREN
		needsMainTrailingPos := mainAxis == FlexDirectionRowReverse ||
			mainAxis == FlexDirectionColumnReverse
		needsCrossTrailingPos := crossAxis == FlexDirectionRowReverse ||
			crossAxis == FlexDirectionColumnReverse

		if needsMainTrailingPos || needsCrossTrailingPos {
			for _, child := range node.children {
				if child.style.display == DisplayNone {
					continue
				}
				if needsMainTrailingPos {
					setChildTrailingPosition(node, child, mainAxis)
				}
				if needsCrossTrailingPos {
					setChildTrailingPosition(node, child, crossAxis)
				}
			}
		}
	}
}
