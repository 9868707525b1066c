// Package render defines the drawing boundary of the Ember runtime.
// The core emits primitive draw calls against the Canvas interface; a
// platform backend (GPU, raster, terminal) implements it.
package render

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/style"
)

// Canvas receives the primitive drawing operations the runtime emits
// while widgets run. Implementations are not required to be safe for
// concurrent use; the runtime calls them from the single frame thread.
type Canvas interface {
	// FillRect fills a rectangle, rounding corners by radius when
	// radius > 0.
	FillRect(r geometry.Rect, fill style.Color, radius float64)
	// StrokeRect outlines a rectangle with the given stroke width,
	// rounding corners by radius when radius > 0.
	StrokeRect(r geometry.Rect, border style.Color, width, radius float64)
	// Line draws a straight line segment.
	Line(from, to geometry.Offset, color style.Color, width float64)
	// DrawText draws a single line of text with its baseline box
	// anchored at the top-left of bounds.
	DrawText(s string, bounds geometry.Rect, color style.Color)
	// PushClip intersects the backend clip with r until the matching
	// PopClip.
	PushClip(r geometry.Rect)
	// PopClip restores the clip active before the matching PushClip.
	PopClip()
}
