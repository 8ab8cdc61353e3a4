package flex

// Style setters. Each setter compares against the current value and only
// dirties the tree when something actually changed. Length-bearing setters
// come in point, percent, and (where the property accepts it) auto variants.
// The scalar setters (flex, grow, shrink, aspect ratio) compare with !=, so
// setting Undefined on a field that is already Undefined still dirties it.

func (n *Node) setStyleValue(dst *Value, v float64, unit Unit) {
	value := Value{Value: v, Unit: unit}
	if FloatIsUndefined(v) {
		value.Unit = UnitUndefined
	}
	if (dst.Value != value.Value && value.Unit != UnitUndefined) || dst.Unit != value.Unit {
		*dst = value
		n.markDirtyAndPropagate()
	}
}

func (n *Node) setStyleValueAuto(dst *Value) {
	if dst.Unit != UnitAuto {
		*dst = ValueAuto
		n.markDirtyAndPropagate()
	}
}

// SetDirection sets the inline direction of the subtree.
func (n *Node) SetDirection(direction Direction) {
	if n.style.direction != direction {
		n.style.direction = direction
		n.markDirtyAndPropagate()
	}
}

// SetFlexDirection sets the main axis orientation.
func (n *Node) SetFlexDirection(flexDirection FlexDirection) {
	if n.style.flexDirection != flexDirection {
		n.style.flexDirection = flexDirection
		n.markDirtyAndPropagate()
	}
}

// SetJustifyContent sets main-axis free-space distribution.
func (n *Node) SetJustifyContent(justifyContent Justify) {
	if n.style.justifyContent != justifyContent {
		n.style.justifyContent = justifyContent
		n.markDirtyAndPropagate()
	}
}

// SetAlignContent sets cross-axis packing of multiple lines.
func (n *Node) SetAlignContent(alignContent Align) {
	if n.style.alignContent != alignContent {
		n.style.alignContent = alignContent
		n.markDirtyAndPropagate()
	}
}

// SetAlignItems sets the default cross-axis alignment of children.
func (n *Node) SetAlignItems(alignItems Align) {
	if n.style.alignItems != alignItems {
		n.style.alignItems = alignItems
		n.markDirtyAndPropagate()
	}
}

// SetAlignSelf overrides the parent's alignItems for this node.
func (n *Node) SetAlignSelf(alignSelf Align) {
	if n.style.alignSelf != alignSelf {
		n.style.alignSelf = alignSelf
		n.markDirtyAndPropagate()
	}
}

// SetPositionType switches the node between relative flow and absolute
// positioning.
func (n *Node) SetPositionType(positionType PositionType) {
	if n.style.positionType != positionType {
		n.style.positionType = positionType
		n.markDirtyAndPropagate()
	}
}

// SetFlexWrap sets multi-line behavior.
func (n *Node) SetFlexWrap(flexWrap Wrap) {
	if n.style.flexWrap != flexWrap {
		n.style.flexWrap = flexWrap
		n.markDirtyAndPropagate()
	}
}

// SetOverflow sets the overflow behavior.
func (n *Node) SetOverflow(overflow Overflow) {
	if n.style.overflow != overflow {
		n.style.overflow = overflow
		n.markDirtyAndPropagate()
	}
}

// SetDisplay toggles the node in and out of layout entirely.
func (n *Node) SetDisplay(display Display) {
	if n.style.display != display {
		n.style.display = display
		n.markDirtyAndPropagate()
	}
}

// SetFlex sets the flex shorthand: positive values grow, negative shrink.
func (n *Node) SetFlex(flex float64) {
	if n.style.flex != flex {
		n.style.flex = flex
		n.markDirtyAndPropagate()
	}
}

// SetFlexGrow sets the grow factor.
func (n *Node) SetFlexGrow(flexGrow float64) {
	if n.style.flexGrow != flexGrow {
		n.style.flexGrow = flexGrow
		n.markDirtyAndPropagate()
	}
}

// SetFlexShrink sets the shrink factor.
func (n *Node) SetFlexShrink(flexShrink float64) {
	if n.style.flexShrink != flexShrink {
		n.style.flexShrink = flexShrink
		n.markDirtyAndPropagate()
	}
}

// SetFlexBasis sets the flex basis in points.
func (n *Node) SetFlexBasis(flexBasis float64) {
	n.setStyleValue(&n.style.flexBasis, flexBasis, UnitPoint)
}

// SetFlexBasisPercent sets the flex basis relative to the container's main size.
func (n *Node) SetFlexBasisPercent(flexBasis float64) {
	if n.style.flexBasis.Value != flexBasis || n.style.flexBasis.Unit != UnitPercent {
		n.style.flexBasis.Value = flexBasis
		n.style.flexBasis.Unit = UnitPercent
		if FloatIsUndefined(flexBasis) {
			n.style.flexBasis.Unit = UnitAuto
		}
		n.markDirtyAndPropagate()
	}
}

// SetFlexBasisAuto resets the flex basis to content-based sizing.
func (n *Node) SetFlexBasisAuto() {
	n.setStyleValueAuto(&n.style.flexBasis)
}

// SetPosition sets a declared offset for one edge in points.
func (n *Node) SetPosition(edge Edge, position float64) {
	n.setStyleValue(&n.style.position[edge], position, UnitPoint)
}

// SetPositionPercent sets a declared offset for one edge as a percentage.
func (n *Node) SetPositionPercent(edge Edge, position float64) {
	n.setStyleValue(&n.style.position[edge], position, UnitPercent)
}

// SetMargin sets a margin edge in points.
func (n *Node) SetMargin(edge Edge, margin float64) {
	n.setStyleValue(&n.style.margin[edge], margin, UnitPoint)
}

// SetMarginPercent sets a margin edge as a percentage of the container width.
func (n *Node) SetMarginPercent(edge Edge, margin float64) {
	n.setStyleValue(&n.style.margin[edge], margin, UnitPercent)
}

// SetMarginAuto makes a margin edge absorb free space.
func (n *Node) SetMarginAuto(edge Edge) {
	n.setStyleValueAuto(&n.style.margin[edge])
}

// SetPadding sets a padding edge in points.
func (n *Node) SetPadding(edge Edge, padding float64) {
	n.setStyleValue(&n.style.padding[edge], padding, UnitPoint)
}

// SetPaddingPercent sets a padding edge as a percentage of the container width.
func (n *Node) SetPaddingPercent(edge Edge, padding float64) {
	n.setStyleValue(&n.style.padding[edge], padding, UnitPercent)
}

// SetBorder sets a border edge width. Borders are point-only.
func (n *Node) SetBorder(edge Edge, border float64) {
	n.setStyleValue(&n.style.border[edge], border, UnitPoint)
}

// SetWidth sets the styled width in points.
func (n *Node) SetWidth(width float64) {
	n.setStyleValue(&n.style.dimensions[DimensionWidth], width, UnitPoint)
}

// SetWidthPercent sets the styled width relative to the container.
func (n *Node) SetWidthPercent(width float64) {
	if n.style.dimensions[DimensionWidth].Value != width ||
		n.style.dimensions[DimensionWidth].Unit != UnitPercent {
		n.style.dimensions[DimensionWidth].Value = width
		n.style.dimensions[DimensionWidth].Unit = UnitPercent
		if FloatIsUndefined(width) {
			n.style.dimensions[DimensionWidth].Unit = UnitAuto
		}
		n.markDirtyAndPropagate()
	}
}

// SetWidthAuto sizes the width from content.
func (n *Node) SetWidthAuto() {
	n.setStyleValueAuto(&n.style.dimensions[DimensionWidth])
}

// SetHeight sets the styled height in points.
func (n *Node) SetHeight(height float64) {
	n.setStyleValue(&n.style.dimensions[DimensionHeight], height, UnitPoint)
}

// SetHeightPercent sets the styled height relative to the container.
func (n *Node) SetHeightPercent(height float64) {
	if n.style.dimensions[DimensionHeight].Value != height ||
		n.style.dimensions[DimensionHeight].Unit != UnitPercent {
		n.style.dimensions[DimensionHeight].Value = height
		n.style.dimensions[DimensionHeight].Unit = UnitPercent
		if FloatIsUndefined(height) {
			n.style.dimensions[DimensionHeight].Unit = UnitAuto
		}
		n.markDirtyAndPropagate()
	}
}

// SetHeightAuto sizes the height from content.
func (n *Node) SetHeightAuto() {
	n.setStyleValueAuto(&n.style.dimensions[DimensionHeight])
}

// SetMinWidth sets the minimum width in points.
func (n *Node) SetMinWidth(minWidth float64) {
	n.setStyleValue(&n.style.minDimensions[DimensionWidth], minWidth, UnitPoint)
}

// SetMinWidthPercent sets the minimum width relative to the container.
func (n *Node) SetMinWidthPercent(minWidth float64) {
	n.setStyleValue(&n.style.minDimensions[DimensionWidth], minWidth, UnitPercent)
}

// SetMinHeight sets the minimum height in points.
func (n *Node) SetMinHeight(minHeight float64) {
	n.setStyleValue(&n.style.minDimensions[DimensionHeight], minHeight, UnitPoint)
}

// SetMinHeightPercent sets the minimum height relative to the container.
func (n *Node) SetMinHeightPercent(minHeight float64) {
	n.setStyleValue(&n.style.minDimensions[DimensionHeight], minHeight, UnitPercent)
}

// SetMaxWidth sets the maximum width in points.
func (n *Node) SetMaxWidth(maxWidth float64) {
	n.setStyleValue(&n.style.maxDimensions[DimensionWidth], maxWidth, UnitPoint)
}

// SetMaxWidthPercent sets the maximum width relative to the container.
func (n *Node) SetMaxWidthPercent(maxWidth float64) {
	n.setStyleValue(&n.style.maxDimensions[DimensionWidth], maxWidth, UnitPercent)
}

// SetMaxHeight sets the maximum height in points.
func (n *Node) SetMaxHeight(maxHeight float64) {
	n.setStyleValue(&n.style.maxDimensions[DimensionHeight], maxHeight, UnitPoint)
}

// SetMaxHeightPercent sets the maximum height relative to the container.
func (n *Node) SetMaxHeightPercent(maxHeight float64) {
	n.setStyleValue(&n.style.maxDimensions[DimensionHeight], maxHeight, UnitPercent)
}

// SetAspectRatio constrains the node to width = height * aspectRatio.
func (n *Node) SetAspectRatio(aspectRatio float64) {
	if n.style.aspectRatio != aspectRatio {
		n.style.aspectRatio = aspectRatio
		n.markDirtyAndPropagate()
	}
}
