package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/style"
)

const (
	wheelStep      = 24.0
	scrollbarWidth = 6.0
)

// scrollState persists between frames of one scroll region.
type scrollState struct {
	offset float64
}

// ScrollOptions configures a BeginScroll call.
type ScrollOptions struct {
	// Gap is the spacing between the region's children.
	Gap float64
	// At positions the region when it is not inside a container.
	At geometry.Offset
}

// BeginScroll opens a vertically scrolling region with a fixed
// viewport. Children lay out as a column offset by the persisted
// scroll position; content outside the viewport is clipped and loses
// interactivity. Wheel input over the viewport scrolls it. Must be
// closed with EndScroll.
func (c *Context) BeginScroll(key string, viewport geometry.Size, opts ScrollOptions) {
	id := c.WidgetID(key)
	pos := c.ApplyLayout(opts.At)
	view := geometry.RectFromOffsetSize(pos, viewport)

	st, err := widgetState(c, id, "scroll", func() *scrollState { return &scrollState{} })
	if err != nil {
		c.report("ui.BeginScroll", kindState, err)
		st = &scrollState{}
	}

	if c.in != nil && view.Intersect(c.CurrentClip()).Contains(c.in.Pointer) {
		st.offset -= c.in.Wheel.Y * wheelStep
	}
	if st.offset < 0 {
		st.offset = 0
	}

	c.PushClipRect(view)
	start := geometry.Offset{X: pos.X, Y: pos.Y - st.offset}
	f := c.beginAt(containerScroll, id, start, ContainerOptions{Gap: opts.Gap})
	f.viewport = viewport
}

// EndScroll closes the innermost scroll region: it clamps the scroll
// position against the content measured this frame, draws the
// scrollbar, and folds the viewport (not the content) into the parent.
func (c *Context) EndScroll() {
	f, ok := c.end("ui.EndScroll", containerScroll)
	if !ok {
		return
	}
	c.PopClipRect()

	maxScroll := f.content.Height - f.viewport.Height
	if maxScroll < 0 {
		maxScroll = 0
	}
	st, err := widgetState(c, f.id, "scroll", func() *scrollState { return &scrollState{} })
	if err == nil && st.offset > maxScroll {
		st.offset = maxScroll
	}

	view := geometry.Rect{
		Left:   f.start.X,
		Top:    f.start.Y + st.offset,
		Right:  f.start.X + f.viewport.Width,
		Bottom: f.start.Y + st.offset + f.viewport.Height,
	}
	if maxScroll > 0 {
		frac := f.viewport.Height / f.content.Height
		thumbH := frac * f.viewport.Height
		thumbY := view.Top + (st.offset/maxScroll)*(f.viewport.Height-thumbH)
		bar := c.visual(PackScrollbar, style.State{})
		thumb := geometry.RectFromLTWH(view.Right-scrollbarWidth, thumbY, scrollbarWidth, thumbH)
		c.fillRect(thumb, bar.Fill, bar.Rounding)
	}

	c.Advance(f.viewport)
}
