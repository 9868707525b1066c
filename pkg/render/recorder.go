package render

import (
	"fmt"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/style"
)

// Op is one recorded canvas operation.
type Op struct {
	// Name is the operation name ("fillRect", "line", "text", ...).
	Name string
	// Bounds is the affected rectangle, when the op has one.
	Bounds geometry.Rect
	// Color is the op's color, when it has one.
	Color style.Color
	// Text is the drawn string for text ops.
	Text string
	// Value carries the op's scalar parameter (stroke width, radius).
	Value float64
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%v, %#x, %q)", o.Name, o.Bounds, o.Color, o.Text)
}

// Recorder is a Canvas that records operations instead of drawing.
// Tests and headless hosts use it to assert what widgets emitted.
type Recorder struct {
	ops       []Op
	clipDepth int
}

// FillRect records a fill.
func (r *Recorder) FillRect(rect geometry.Rect, fill style.Color, radius float64) {
	r.ops = append(r.ops, Op{Name: "fillRect", Bounds: rect, Color: fill, Value: radius})
}

// StrokeRect records an outline.
func (r *Recorder) StrokeRect(rect geometry.Rect, border style.Color, width, radius float64) {
	r.ops = append(r.ops, Op{Name: "strokeRect", Bounds: rect, Color: border, Value: width})
}

// Line records a line segment.
func (r *Recorder) Line(from, to geometry.Offset, color style.Color, width float64) {
	r.ops = append(r.ops, Op{
		Name:   "line",
		Bounds: geometry.Rect{Left: from.X, Top: from.Y, Right: to.X, Bottom: to.Y},
		Color:  color,
		Value:  width,
	})
}

// DrawText records a text draw.
func (r *Recorder) DrawText(s string, bounds geometry.Rect, color style.Color) {
	r.ops = append(r.ops, Op{Name: "text", Bounds: bounds, Color: color, Text: s})
}

// PushClip records a clip push.
func (r *Recorder) PushClip(rect geometry.Rect) {
	r.clipDepth++
	r.ops = append(r.ops, Op{Name: "pushClip", Bounds: rect})
}

// PopClip records a clip pop.
func (r *Recorder) PopClip() {
	r.clipDepth--
	r.ops = append(r.ops, Op{Name: "popClip"})
}

// Ops returns the recorded operations in emission order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.clipDepth = 0
}

// ClipDepth returns the current push/pop clip balance. A frame that
// drew correctly ends at zero.
func (r *Recorder) ClipDepth() int {
	return r.clipDepth
}

// TextOps returns only the recorded text draws.
func (r *Recorder) TextOps() []Op {
	var texts []Op
	for _, op := range r.ops {
		if op.Name == "text" {
			texts = append(texts, op)
		}
	}
	return texts
}
