package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/Joshua7054/FlexLayout/internal/core/geom"
)

const defaultDPI = 72

// Font wraps a font face with pixel-accurate measurement helpers for layout.
// It carries no rasterization state; the engine only ever asks it for widths,
// heights, and baselines.
type Font struct {
	tt     *truetype.Font // underlying TrueType font, nil for external faces
	face   font.Face      // explicit face when not TrueType-backed
	sizePt float64        // logical font size in points
	dpi    float64        // dots per inch scaling
}

// Loading

// LoadFont loads a .ttf file from disk and returns a Font at the given point
// size. 1pt = 1/72 inch; the default 72 DPI makes 1pt = 1px.
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory. Useful for embedded
// fonts.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	f := &Font{tt: ttf, dpi: defaultDPI}
	return f.SetFontSizePt(sizePt), nil
}

// MustLoadFont loads a .ttf font from disk and panics on error. Intended for
// static initialization at package level.
func MustLoadFont(path string, sizePt float64) *Font {
	f, err := LoadFont(path, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFontFromFace wraps an existing font.Face (e.g. a bitmap face) so it can
// drive measurement without a TrueType source.
func NewFontFromFace(face font.Face, sizePt float64) *Font {
	f := &Font{face: face, dpi: defaultDPI}
	return f.SetFontSizePt(sizePt)
}

// Configuration

// SetDPI sets the font's DPI scaling. Defaults to 72 if <= 0.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	return f
}

// SetFontSizePt sets the font size in points, enforcing a positive minimum.
func (f *Font) SetFontSizePt(pt float64) *Font {
	if pt <= 0 {
		pt = 0.01
	}
	f.sizePt = pt
	return f
}

// Accessors

// HeightPt returns the font size in points.
func (f *Font) HeightPt() float64 { return f.sizePt }

// HeightPx returns the font size converted to pixels for the current DPI.
func (f *Font) HeightPx() float64 { return f.sizePt * f.dpi / 72.0 }

// DPI returns the current DPI value.
func (f *Font) DPI() float64 { return f.dpi }

// Face returns a font.Face configured with the current size and DPI. TrueType
// faces are cached per (font, size, DPI) to prevent redundant allocations.
func (f *Font) Face() font.Face {
	if f.face != nil {
		return f.face
	}
	return faces.lookup(faceKey{source: f.tt, sizePt: f.sizePt, dpi: f.dpi}, func() font.Face {
		return truetype.NewFace(f.tt, &truetype.Options{
			Size:    f.sizePt,
			DPI:     f.dpi,
			Hinting: font.HintingNone,
		})
	})
}

// Metrics

// AscentPx returns the ascent (distance from baseline to top) in pixels.
func (f *Font) AscentPx() float64 {
	m := f.Face().Metrics()
	return geom.Unfix(m.Ascent)
}

// DescentPx returns the descent (distance from baseline to bottom) in pixels.
func (f *Font) DescentPx() float64 {
	m := f.Face().Metrics()
	return geom.Unfix(m.Descent)
}

// LineHeightPx returns the total line height (ascent + descent + leading).
func (f *Font) LineHeightPx() float64 {
	m := f.Face().Metrics()
	return geom.Unfix(m.Height)
}

// BaselineForTopY returns the baseline y for a line whose top sits at topY,
// matching the CSS line box model: baseline = top + ascent + leading/2.
func (f *Font) BaselineForTopY(topY float64) float64 {
	leading := f.LineHeightPx() - (f.AscentPx() + f.DescentPx())
	return topY + f.AscentPx() + leading/2
}

// Measurement

// MeasureString measures the pixel width and height of a single-line string.
// Width is the sum of glyph advances; height equals the line height.
func (f *Font) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	adv := font.MeasureString(f.Face(), s)
	return geom.Unfix(adv), f.LineHeightPx()
}
