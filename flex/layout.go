package flex

import (
	"math"
	"sync/atomic"

	"github.com/Joshua7054/FlexLayout/internal/core/geom"
)

// The measure cache answers whether a previous result is still valid under a
// new pair of constraints. An entry is reusable when, for both axes, the
// constraint is the same, or provably produces the same answer.

func measureModeSizeIsExactAndMatchesOldMeasuredSize(
	sizeMode MeasureMode, size, lastComputedSize float64) bool {
	return sizeMode == MeasureModeExactly && geom.FloatsEqual(size, lastComputedSize)
}

func measureModeOldSizeIsUnspecifiedAndStillFits(
	sizeMode MeasureMode, size float64, lastSizeMode MeasureMode, lastComputedSize float64) bool {
	return sizeMode == MeasureModeAtMost && lastSizeMode == MeasureModeUndefined &&
		(size >= lastComputedSize || geom.FloatsEqual(size, lastComputedSize))
}

func measureModeNewMeasureSizeIsStricterAndStillValid(
	sizeMode MeasureMode, size float64, lastSizeMode MeasureMode, lastSize, lastComputedSize float64) bool {
	return lastSizeMode == MeasureModeAtMost && sizeMode == MeasureModeAtMost &&
		lastSize > size && (lastComputedSize <= size || geom.FloatsEqual(size, lastComputedSize))
}

func canUseCachedMeasurement(
	widthMode MeasureMode, width float64,
	heightMode MeasureMode, height float64,
	lastWidthMode MeasureMode, lastWidth float64,
	lastHeightMode MeasureMode, lastHeight float64,
	lastComputedWidth, lastComputedHeight float64,
	marginRow, marginColumn float64, config *Config) bool {

	if lastComputedHeight < 0 || lastComputedWidth < 0 {
		return false
	}
	useRoundedComparison := config != nil && config.pointScaleFactor != 0

	effectiveWidth := width
	effectiveHeight := height
	effectiveLastWidth := lastWidth
	effectiveLastHeight := lastHeight
	if useRoundedComparison {
		effectiveWidth = roundValueToPixelGrid(width, config.pointScaleFactor, false, false)
		effectiveHeight = roundValueToPixelGrid(height, config.pointScaleFactor, false, false)
		effectiveLastWidth = roundValueToPixelGrid(lastWidth, config.pointScaleFactor, false, false)
		effectiveLastHeight = roundValueToPixelGrid(lastHeight, config.pointScaleFactor, false, false)
	}

	hasSameWidthSpec := lastWidthMode == widthMode &&
		geom.FloatsEqual(effectiveLastWidth, effectiveWidth)
	hasSameHeightSpec := lastHeightMode == heightMode &&
		geom.FloatsEqual(effectiveLastHeight, effectiveHeight)

	widthIsCompatible := hasSameWidthSpec ||
		measureModeSizeIsExactAndMatchesOldMeasuredSize(
			widthMode, width-marginRow, lastComputedWidth) ||
		measureModeOldSizeIsUnspecifiedAndStillFits(
			widthMode, width-marginRow, lastWidthMode, lastComputedWidth) ||
		measureModeNewMeasureSizeIsStricterAndStillValid(
			widthMode, width-marginRow, lastWidthMode, lastWidth, lastComputedWidth)

	heightIsCompatible := hasSameHeightSpec ||
		measureModeSizeIsExactAndMatchesOldMeasuredSize(
			heightMode, height-marginColumn, lastComputedHeight) ||
		measureModeOldSizeIsUnspecifiedAndStillFits(
			heightMode, height-marginColumn, lastHeightMode, lastComputedHeight) ||
		measureModeNewMeasureSizeIsStricterAndStillValid(
			heightMode, height-marginColumn, lastHeightMode, lastHeight, lastComputedHeight)

	return widthIsCompatible && heightIsCompatible
}

// layoutNodeInternal wraps layoutImpl behind the per-node caches. Layout
// passes use the single cachedLayout entry; measurement passes use the ring
// of cached measurements. Returns whether the subtree was actually visited.
func layoutNodeInternal(node *Node,
	availableWidth, availableHeight float64,
	parentDirection Direction,
	widthMeasureMode, heightMeasureMode MeasureMode,
	parentWidth, parentHeight float64,
	performLayout bool, reason string, config *Config) bool {

	layout := &node.layout

	needToVisitNode := (node.isDirty && layout.generationCount != config.generationCount) ||
		layout.lastParentDirection != parentDirection

	if needToVisitNode {
		// Invalidate the cached results.
		layout.nextCachedMeasurementsIndex = 0
		layout.cachedLayout = emptyCachedMeasurement()
	}

	var cachedResults *cachedMeasurement

	// Layout operations are assumed to happen at most once per node per tree
	// layout, but multiple measurements may be required to resolve the flex
	// dimensions. Measure-function leaves are the most expensive to measure,
	// so they get the full compatibility check against both caches.
	if node.measure != nil {
		marginAxisRow := node.marginForAxis(FlexDirectionRow, parentWidth)
		marginAxisColumn := node.marginForAxis(FlexDirectionColumn, parentWidth)

		// First, try to use the layout cache.
		if canUseCachedMeasurement(widthMeasureMode, availableWidth,
			heightMeasureMode, availableHeight,
			layout.cachedLayout.widthMeasureMode, layout.cachedLayout.availableWidth,
			layout.cachedLayout.heightMeasureMode, layout.cachedLayout.availableHeight,
			layout.cachedLayout.computedWidth, layout.cachedLayout.computedHeight,
			marginAxisRow, marginAxisColumn, config) {
			cachedResults = &layout.cachedLayout
		} else {
			// Try to use the measurement cache.
			for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
				entry := &layout.cachedMeasurements[i]
				if canUseCachedMeasurement(widthMeasureMode, availableWidth,
					heightMeasureMode, availableHeight,
					entry.widthMeasureMode, entry.availableWidth,
					entry.heightMeasureMode, entry.availableHeight,
					entry.computedWidth, entry.computedHeight,
					marginAxisRow, marginAxisColumn, config) {
					cachedResults = entry
					break
				}
			}
		}
	} else if performLayout {
		if geom.FloatsEqual(layout.cachedLayout.availableWidth, availableWidth) &&
			geom.FloatsEqual(layout.cachedLayout.availableHeight, availableHeight) &&
			layout.cachedLayout.widthMeasureMode == widthMeasureMode &&
			layout.cachedLayout.heightMeasureMode == heightMeasureMode {
			cachedResults = &layout.cachedLayout
		}
	} else {
		for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
			entry := &layout.cachedMeasurements[i]
			if geom.FloatsEqual(entry.availableWidth, availableWidth) &&
				geom.FloatsEqual(entry.availableHeight, availableHeight) &&
				entry.widthMeasureMode == widthMeasureMode &&
				entry.heightMeasureMode == heightMeasureMode {
				cachedResults = entry
				break
			}
		}
	}

	if !needToVisitNode && cachedResults != nil {
		layout.measuredDimensions[DimensionWidth] = cachedResults.computedWidth
		layout.measuredDimensions[DimensionHeight] = cachedResults.computedHeight
	} else {
		layoutImpl(node, availableWidth, availableHeight, parentDirection,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight,
			performLayout, config)

		layout.lastParentDirection = parentDirection

		if cachedResults == nil {
			if layout.nextCachedMeasurementsIndex == maxCachedResultCount {
				layout.nextCachedMeasurementsIndex = 0
			}

			var newCacheEntry *cachedMeasurement
			if performLayout {
				// Use the single layout cache entry.
				newCacheEntry = &layout.cachedLayout
			} else {
				// Allocate a new measurement cache entry.
				newCacheEntry = &layout.cachedMeasurements[layout.nextCachedMeasurementsIndex]
				layout.nextCachedMeasurementsIndex++
			}

			newCacheEntry.availableWidth = availableWidth
			newCacheEntry.availableHeight = availableHeight
			newCacheEntry.widthMeasureMode = widthMeasureMode
			newCacheEntry.heightMeasureMode = heightMeasureMode
			newCacheEntry.computedWidth = layout.measuredDimensions[DimensionWidth]
			newCacheEntry.computedHeight = layout.measuredDimensions[DimensionHeight]
		}
	}

	if performLayout {
		node.layout.dimensions[DimensionWidth] = node.layout.measuredDimensions[DimensionWidth]
		node.layout.dimensions[DimensionHeight] = node.layout.measuredDimensions[DimensionHeight]

		node.hasNewLayout = true
		node.setDirty(false)
	}

	layout.generationCount = config.generationCount
	return needToVisitNode || cachedResults == nil
}

// roundValueToPixelGrid snaps a point value onto the pixel grid. forceCeil
// and forceFloor bias the rounding for text nodes so content never loses a
// pixel to truncation.
func roundValueToPixelGrid(value, pointScaleFactor float64, forceCeil, forceFloor bool) float64 {
	roundingError := math.Max(0.0001, 0.01*pointScaleFactor)
	scaledValue := value * pointScaleFactor
	fractial := math.Mod(scaledValue, 1.0)
	switch {
	case geom.FloatsEqualPrecision(fractial, 0, roundingError):
		// The value is already rounded.
		scaledValue = scaledValue - fractial
	case geom.FloatsEqualPrecision(fractial, 1, roundingError):
		scaledValue = scaledValue - fractial + 1
	case forceCeil:
		scaledValue = scaledValue - fractial + 1
	case forceFloor:
		scaledValue = scaledValue - fractial
	default:
		rounded := 0.0
		if fractial > 0.5 || geom.FloatsEqualPrecision(fractial, 0.5, roundingError) {
			rounded = 1
		}
		scaledValue = scaledValue - fractial + rounded
	}
	return scaledValue / pointScaleFactor
}

// roundToPixelGrid walks the tree carrying absolute coordinates so that
// rounding never accumulates drift across siblings.
func roundToPixelGrid(node *Node, pointScaleFactor, absoluteLeft, absoluteTop float64) {
	if pointScaleFactor == 0 {
		return
	}

	nodeLeft := node.layout.position[EdgeLeft]
	nodeTop := node.layout.position[EdgeTop]

	nodeWidth := node.layout.dimensions[DimensionWidth]
	nodeHeight := node.layout.dimensions[DimensionHeight]

	absoluteNodeLeft := absoluteLeft + nodeLeft
	absoluteNodeTop := absoluteTop + nodeTop

	absoluteNodeRight := absoluteNodeLeft + nodeWidth
	absoluteNodeBottom := absoluteNodeTop + nodeHeight

	// Text nodes never round their size down, as that could lead to
	// unwanted text truncation.
	textRounding := node.nodeType == NodeTypeText

	node.layout.position[EdgeLeft] =
		roundValueToPixelGrid(nodeLeft, pointScaleFactor, false, textRounding)
	node.layout.position[EdgeTop] =
		roundValueToPixelGrid(nodeTop, pointScaleFactor, false, textRounding)

	// The dimension has a fractional component when the scaled value sits
	// strictly between two whole numbers.
	hasFractionalWidth := !geom.FloatsEqual(math.Mod(nodeWidth*pointScaleFactor, 1.0), 0) &&
		!geom.FloatsEqual(math.Mod(nodeWidth*pointScaleFactor, 1.0), 1.0)
	hasFractionalHeight := !geom.FloatsEqual(math.Mod(nodeHeight*pointScaleFactor, 1.0), 0) &&
		!geom.FloatsEqual(math.Mod(nodeHeight*pointScaleFactor, 1.0), 1.0)

	node.layout.dimensions[DimensionWidth] =
		roundValueToPixelGrid(absoluteNodeRight, pointScaleFactor,
			textRounding && hasFractionalWidth, textRounding && !hasFractionalWidth) -
			roundValueToPixelGrid(absoluteNodeLeft, pointScaleFactor, false, textRounding)

	node.layout.dimensions[DimensionHeight] =
		roundValueToPixelGrid(absoluteNodeBottom, pointScaleFactor,
			textRounding && hasFractionalHeight, textRounding && !hasFractionalHeight) -
			roundValueToPixelGrid(absoluteNodeTop, pointScaleFactor, false, textRounding)

	for _, child := range node.children {
		roundToPixelGrid(child, pointScaleFactor, absoluteNodeLeft, absoluteNodeTop)
	}
}

// CalculateLayout computes positions and sizes for the whole tree under node.
// parentWidth and parentHeight are the outer available size (possibly
// Undefined); parentDirection seeds direction inheritance at the root.
func CalculateLayout(node *Node, parentWidth, parentHeight float64, parentDirection Direction) {
	config := node.config

	// Increment the generation count so the recursion visits every dirty node
	// at least once. Subsequent visits with unchanged inputs are skipped.
	config.generationCount++
	node.resolveDimension()

	width := Undefined
	widthMeasureMode := MeasureModeUndefined
	if node.isStyleDimDefined(FlexDirectionRow, parentWidth) {
		width = resolveValue(node.resolvedDimension(dim[FlexDirectionRow]), parentWidth) +
			node.marginForAxis(FlexDirectionRow, parentWidth)
		widthMeasureMode = MeasureModeExactly
	} else if resolveValue(node.style.maxDimensions[DimensionWidth], parentWidth) >= 0 {
		width = resolveValue(node.style.maxDimensions[DimensionWidth], parentWidth)
		widthMeasureMode = MeasureModeAtMost
	} else {
		width = parentWidth
		widthMeasureMode = MeasureModeExactly
		if FloatIsUndefined(width) {
			widthMeasureMode = MeasureModeUndefined
		}
	}

	height := Undefined
	heightMeasureMode := MeasureModeUndefined
	if node.isStyleDimDefined(FlexDirectionColumn, parentHeight) {
		height = resolveValue(node.resolvedDimension(dim[FlexDirectionColumn]), parentHeight) +
			node.marginForAxis(FlexDirectionColumn, parentWidth)
		heightMeasureMode = MeasureModeExactly
	} else if resolveValue(node.style.maxDimensions[DimensionHeight], parentHeight) >= 0 {
		height = resolveValue(node.style.maxDimensions[DimensionHeight], parentHeight)
		heightMeasureMode = MeasureModeAtMost
	} else {
		height = parentHeight
		heightMeasureMode = MeasureModeExactly
		if FloatIsUndefined(height) {
			heightMeasureMode = MeasureModeUndefined
		}
	}

	if layoutNodeInternal(node, width, height, parentDirection,
		widthMeasureMode, heightMeasureMode, parentWidth, parentHeight,
		true, "initial", config) {
		node.setPosition(node.layout.direction, parentWidth, parentHeight, parentWidth)
		roundToPixelGrid(node, config.pointScaleFactor, 0, 0)
	}

	// When requested, shadow-layout the tree without the legacy stretch
	// behavior and record whether the flag changes the result.
	if config.shouldDiffLayoutWithoutLegacyStretchBehaviour && node.didUseLegacyFlag() {
		originalNode := deepClone(node)
		originalNode.resolveDimension()
		originalNode.markDirtyAndPropagateDownwards()
		originalNode.config.generationCount++
		originalNode.setAndPropagateUseLegacyFlag(false)
		if layoutNodeInternal(originalNode, width, height, parentDirection,
			widthMeasureMode, heightMeasureMode, parentWidth, parentHeight,
			true, "initial", originalNode.config) {
			originalNode.setPosition(
				originalNode.layout.direction, parentWidth, parentHeight, parentWidth)
			roundToPixelGrid(originalNode, originalNode.config.pointScaleFactor, 0, 0)

			// Record whether the two layouts differ.
			node.layout.doesLegacyStretchFlagAffectsLayout =
				!originalNode.isLayoutTreeEqual(node)
		}
		configFreeRecursive(originalNode)
		freeRecursiveIgnoringSharing(originalNode)
	}
}

// freeRecursiveIgnoringSharing tears down a deep clone, which by construction
// owns every node it references.
func freeRecursiveIgnoringSharing(root *Node) {
	for _, child := range root.children {
		child.parent = nil
		freeRecursiveIgnoringSharing(child)
	}
	root.children = nil
	atomic.AddInt32(&nodeInstanceCount, -1)
}
