// Package text defines the text-measurement boundary of the Ember
// runtime. Widgets never shape or rasterize text themselves; they ask a
// Measurer for string widths and per-rune advances, and hand drawing to
// the renderer.
package text

// Measurer measures text in logical pixels.
type Measurer interface {
	// StringWidth returns the advance width of s.
	StringWidth(s string) float64
	// LineHeight returns the height of one line of text.
	LineHeight() float64
	// RuneWidths returns the advance of each rune in s, in order.
	// Widgets use the per-rune breakdown for caret placement and for
	// sliding the visible window of a text input.
	RuneWidths(s string) []float64
}

// Fixed is a Measurer with a constant advance per rune. It backs
// headless tests and monospace fallbacks.
type Fixed struct {
	// Advance is the width of every rune.
	Advance float64
	// Height is the line height.
	Height float64
}

// StringWidth returns len(runes) * Advance.
func (f Fixed) StringWidth(s string) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n) * f.Advance
}

// LineHeight returns the fixed line height.
func (f Fixed) LineHeight() float64 {
	return f.Height
}

// RuneWidths returns a constant advance for each rune in s.
func (f Fixed) RuneWidths(s string) []float64 {
	var widths []float64
	for range s {
		widths = append(widths, f.Advance)
	}
	return widths
}
