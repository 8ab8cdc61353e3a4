package flexlayout

import (
	"github.com/Joshua7054/FlexLayout/flex"
	"github.com/Joshua7054/FlexLayout/internal/render"
)

// Type aliases for public API.
//
// These aliases re-export types from the engine and the text measurement
// subsystem to present a unified interface under the `flexlayout` namespace.
type (
	Node   = flex.Node   // One box in the layout tree
	Config = flex.Config // Caller-scoped engine configuration
	Value  = flex.Value  // A number paired with its unit
	Size   = flex.Size   // Result of a measure callback
	Font   = render.Font // Font resource for text measurement
)

// Node lifecycle and tree layout.
var (
	// NewNode creates a node with a fresh default config.
	NewNode = flex.NewNode

	// NewNodeWithConfig creates a node bound to an existing config.
	NewNodeWithConfig = flex.NewNodeWithConfig

	// NewConfig creates an engine configuration.
	NewConfig = flex.NewConfig

	// CalculateLayout computes positions and sizes for a whole tree.
	CalculateLayout = flex.CalculateLayout

	// Clone makes a shallow copy of a node sharing its child list.
	Clone = flex.Clone

	// Free releases a single node; FreeRecursive releases an owned subtree.
	Free          = flex.Free
	FreeRecursive = flex.FreeRecursive
)

// Value constructors.
var (
	// Point builds an absolute length value.
	Point = flex.Point

	// Percent builds a length relative to the containing size.
	Percent = flex.Percent
)

// Font loading and text measurement.
//
// These functions provide font-backed measure and baseline callbacks for
// text leaves through the internal render subsystem.
var (
	// LoadFont loads a font from a file path.
	LoadFont = render.LoadFont

	// LoadFontFromBytes loads a font directly from an in-memory byte slice.
	LoadFontFromBytes = render.LoadFontFromBytes

	// MustLoadFont loads a font and panics on failure.
	MustLoadFont = render.MustLoadFont

	// NewFontFromFace wraps an existing font.Face for measurement.
	NewFontFromFace = render.NewFontFromFace

	// TextMeasureFunc builds a measure callback for a text leaf.
	TextMeasureFunc = render.TextMeasureFunc

	// TextBaselineFunc builds a baseline callback for a text leaf.
	TextBaselineFunc = render.TextBaselineFunc

	// SetFaceCacheCapacity limits the number of cached font faces.
	SetFaceCacheCapacity = render.SetFaceCacheCapacity

	// ClearFaceCache clears all cached font faces.
	ClearFaceCache = render.ClearFaceCache
)
