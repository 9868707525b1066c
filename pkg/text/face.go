package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceMeasurer adapts a font.Face to the Measurer interface.
type FaceMeasurer struct {
	face    font.Face
	height  float64
	missing float64
}

// NewFaceMeasurer wraps a font.Face. The face must remain valid for the
// lifetime of the measurer.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	metrics := face.Metrics()
	missing, _ := face.GlyphAdvance('?')
	return &FaceMeasurer{
		face:    face,
		height:  fixedToFloat(metrics.Height),
		missing: fixedToFloat(missing),
	}
}

// StringWidth returns the advance width of s including kerning.
func (m *FaceMeasurer) StringWidth(s string) float64 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

// LineHeight returns the face's line height.
func (m *FaceMeasurer) LineHeight() float64 {
	return m.height
}

// RuneWidths returns the advance of each rune in s. Runes without a
// glyph measure as the replacement advance so caret math stays aligned
// with what the renderer will draw.
func (m *FaceMeasurer) RuneWidths(s string) []float64 {
	var widths []float64
	prev := rune(-1)
	for _, r := range s {
		advance, ok := m.face.GlyphAdvance(r)
		w := fixedToFloat(advance)
		if !ok {
			w = m.missing
		}
		if prev >= 0 {
			w += fixedToFloat(m.face.Kern(prev, r))
		}
		widths = append(widths, w)
		prev = r
	}
	return widths
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
