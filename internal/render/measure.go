package render

import (
	"math"

	"github.com/Joshua7054/FlexLayout/flex"
)

// Adapters turning a Font into the engine's leaf callbacks. The measure
// function wraps under the width constraint and reports the block size; the
// baseline function returns the first line's baseline.

// TextMeasureFunc builds a flex.MeasureFunc measuring text with f.
func TextMeasureFunc(f *Font, text string) flex.MeasureFunc {
	return func(node *flex.Node, width float64, widthMode flex.MeasureMode, height float64, heightMode flex.MeasureMode) flex.Size {
		wrapWidth := 0.0
		if widthMode != flex.MeasureModeUndefined && !flex.FloatIsUndefined(width) {
			wrapWidth = width
		}
		w, h := MeasureWrapped(f, text, wrapWidth)

		switch widthMode {
		case flex.MeasureModeExactly:
			w = width
		case flex.MeasureModeAtMost:
			w = math.Min(w, width)
		}
		switch heightMode {
		case flex.MeasureModeExactly:
			h = height
		case flex.MeasureModeAtMost:
			h = math.Min(h, height)
		}
		return flex.Size{Width: w, Height: h}
	}
}

// TextBaselineFunc builds a flex.BaselineFunc anchored to f's first line.
func TextBaselineFunc(f *Font) flex.BaselineFunc {
	return func(node *flex.Node, width, height float64) float64 {
		return f.BaselineForTopY(0)
	}
}
