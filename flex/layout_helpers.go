package flex

import "github.com/Joshua7054/FlexLayout/internal/core/geom"

func (n *Node) paddingAndBorderForAxis(axis FlexDirection, widthSize float64) float64 {
	return n.leadingPaddingAndBorder(axis, widthSize) +
		n.trailingPaddingAndBorder(axis, widthSize)
}

// alignItem resolves a child's effective cross alignment: alignSelf wins over
// the parent's alignItems, and baseline demotes to flex-start on column axes.
func alignItem(node, child *Node) Align {
	align := child.style.alignSelf
	if align == AlignAuto {
		align = node.style.alignItems
	}
	if align == AlignBaseline && flexDirectionIsColumn(node.style.flexDirection) {
		return AlignFlexStart
	}
	return align
}

// baseline returns the distance from the top of node to its baseline: the
// callback if present, else the first baseline-participating child.
func baseline(node *Node) float64 {
	if node.baseline != nil {
		b := node.baseline(
			node,
			node.layout.measuredDimensions[DimensionWidth],
			node.layout.measuredDimensions[DimensionHeight])
		assertWithNode(node, !FloatIsUndefined(b),
			"Expect custom baseline function to not return NaN")
		return b
	}

	var baselineChild *Node
	for _, child := range node.children {
		if child.lineIndex > 0 {
			break
		}
		if child.style.positionType == PositionTypeAbsolute {
			continue
		}
		if alignItem(node, child) == AlignBaseline {
			baselineChild = child
			break
		}
		if baselineChild == nil {
			baselineChild = child
		}
	}

	if baselineChild == nil {
		return node.layout.measuredDimensions[DimensionHeight]
	}

	return baseline(baselineChild) + baselineChild.layout.position[EdgeTop]
}

func isBaselineLayout(node *Node) bool {
	if flexDirectionIsColumn(node.style.flexDirection) {
		return false
	}
	if node.style.alignItems == AlignBaseline {
		return true
	}
	for _, child := range node.children {
		if child.style.positionType == PositionTypeRelative &&
			child.style.alignSelf == AlignBaseline {
			return true
		}
	}
	return false
}

func (n *Node) dimWithMargin(axis FlexDirection, widthSize float64) float64 {
	return n.layout.measuredDimensions[dim[axis]] +
		n.leadingMargin(axis, widthSize) +
		n.trailingMargin(axis, widthSize)
}

// isStyleDimDefined reports whether the resolved styled dimension along axis
// yields a usable definite size.
func (n *Node) isStyleDimDefined(axis FlexDirection, parentSize float64) bool {
	resolved := n.resolvedDimension(dim[axis])
	return !(resolved.Unit == UnitAuto ||
		resolved.Unit == UnitUndefined ||
		(resolved.Unit == UnitPoint && resolved.Value < 0) ||
		(resolved.Unit == UnitPercent && (resolved.Value < 0 || FloatIsUndefined(parentSize))))
}

func (n *Node) isLayoutDimDefined(axis FlexDirection) bool {
	value := n.layout.measuredDimensions[dim[axis]]
	return !FloatIsUndefined(value) && value >= 0
}

// boundAxisWithinMinAndMax clamps value between the node's resolved min and
// max along axis, short-circuiting undefined bounds.
func (n *Node) boundAxisWithinMinAndMax(axis FlexDirection, value, axisSize float64) float64 {
	min := Undefined
	max := Undefined

	if flexDirectionIsColumn(axis) {
		min = resolveValue(n.style.minDimensions[DimensionHeight], axisSize)
		max = resolveValue(n.style.maxDimensions[DimensionHeight], axisSize)
	} else if flexDirectionIsRow(axis) {
		min = resolveValue(n.style.minDimensions[DimensionWidth], axisSize)
		max = resolveValue(n.style.maxDimensions[DimensionWidth], axisSize)
	}

	bound := value
	if !FloatIsUndefined(max) && max >= 0 && bound > max {
		bound = max
	}
	if !FloatIsUndefined(min) && min >= 0 && bound < min {
		bound = min
	}
	return bound
}

// boundAxis is boundAxisWithinMinAndMax with a floor at the node's padding
// plus border along the axis.
func (n *Node) boundAxis(axis FlexDirection, value, axisSize, widthSize float64) float64 {
	return geom.MaxF64(
		n.boundAxisWithinMinAndMax(axis, value, axisSize),
		n.paddingAndBorderForAxis(axis, widthSize))
}

func setChildTrailingPosition(node, child *Node, axis FlexDirection) {
	size := child.layout.measuredDimensions[dim[axis]]
	child.layout.position[trailing[axis]] =
		node.layout.measuredDimensions[dim[axis]] - size - child.layout.position[pos[axis]]
}

// constrainMaxSizeForMode tightens a constraint by the node's max dimension:
// exact and at-most sizes are clamped, undefined constraints become at-most.
func (n *Node) constrainMaxSizeForMode(axis FlexDirection, parentAxisSize, parentWidth float64, mode *MeasureMode, size *float64) {
	maxSize := resolveValue(n.style.maxDimensions[dim[axis]], parentAxisSize) +
		n.marginForAxis(axis, parentWidth)
	switch *mode {
	case MeasureModeExactly, MeasureModeAtMost:
		if !(FloatIsUndefined(maxSize) || *size < maxSize) {
			*size = maxSize
		}
	case MeasureModeUndefined:
		if !FloatIsUndefined(maxSize) {
			*mode = MeasureModeAtMost
			*size = maxSize
		}
	}
}

func zeroOutLayoutRecursively(node *Node) {
	node.layout = layoutResults{}
	node.layout.lastParentDirection = directionUnset
	node.layout.cachedLayout = emptyCachedMeasurement()
	for i := range node.layout.cachedMeasurements {
		node.layout.cachedMeasurements[i] = emptyCachedMeasurement()
	}
	node.hasNewLayout = true
	node.cloneChildrenIfNeeded()
	for _, child := range node.children {
		zeroOutLayoutRecursively(child)
	}
}

// calculateAvailableInnerDim strips margin, padding, and border from the
// available size and clamps the result to the node's min/max content box.
func (n *Node) calculateAvailableInnerDim(axis FlexDirection, availableDim, parentDim float64) float64 {
	direction := FlexDirectionColumn
	dimension := DimensionHeight
	if flexDirectionIsRow(axis) {
		direction = FlexDirectionRow
		dimension = DimensionWidth
	}

	margin := n.marginForAxis(direction, parentDim)
	paddingAndBorder := n.paddingAndBorderForAxis(direction, parentDim)

	availableInnerDim := availableDim - margin - paddingAndBorder
	// Max dimension overrides predefined dimension value; min dimension in
	// turn overrides both of the above.
	if !FloatIsUndefined(availableInnerDim) {
		minInnerDim := resolveValue(n.style.minDimensions[dimension], parentDim) - paddingAndBorder
		maxInnerDim := resolveValue(n.style.maxDimensions[dimension], parentDim) - paddingAndBorder
		availableInnerDim = geom.MaxF64(geom.MinF64(availableInnerDim, maxInnerDim), minInnerDim)
	}

	return availableInnerDim
}
