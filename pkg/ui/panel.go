package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

const panelHandleSize = 5.0

// panelState persists between frames of one resizable panel.
type panelState struct {
	extent float64
	// drag anchors, valid while the handle holds the press.
	dragOrigin float64
	dragExtent float64
}

// PanelOptions configures a BeginPanel call.
type PanelOptions struct {
	// Axis is the direction the panel can be resized along:
	// AxisHorizontal gives an adjustable width with the handle on the
	// right edge, AxisVertical an adjustable height with the handle on
	// the bottom edge. Content stacks as a column either way.
	Axis Axis
	// Default is the initial extent on first use.
	Default float64
	// Min and Max bound the extent. Max of 0 means unbounded.
	Min, Max float64
	// Available caps the extent so the panel plus Reserved never
	// exceed it; 0 disables the cap.
	Available float64
	// Reserved is space along the axis already committed to siblings.
	Reserved float64
	// Cross is the panel size across the axis.
	Cross float64
	// Gap is the spacing between the panel's children.
	Gap float64
	// At positions the panel when it is not inside a container.
	At geometry.Offset
}

// BeginPanel opens a resizable panel and returns its current extent.
// A drag handle sits on the trailing edge; dragging it adjusts the
// extent within [Min, Max], further capped so the panel leaves
// Reserved space inside Available. Content is clipped to the panel and
// laid out as a column. Must be closed with EndPanel.
func (c *Context) BeginPanel(key string, opts PanelOptions) float64 {
	id := c.WidgetID(key)
	handleID := c.WidgetID(key + "/handle")

	st, err := widgetState(c, id, "panel", func() *panelState {
		return &panelState{extent: opts.Default}
	})
	if err != nil {
		c.report("ui.BeginPanel", kindState, err)
		st = &panelState{extent: opts.Default}
	}

	lo := opts.Min
	hi := opts.Max
	if hi <= 0 {
		hi = geometry.Unbounded().Right
	}
	if opts.Available > 0 {
		if limit := opts.Available - opts.Reserved - panelHandleSize; limit < hi {
			hi = limit
		}
	}
	if hi < lo {
		hi = lo
	}
	st.extent = geometry.Clamp(st.extent, lo, hi)

	pos := c.ApplyLayout(opts.At)

	var body, handle geometry.Rect
	var size geometry.Size
	if opts.Axis == AxisHorizontal {
		body = geometry.RectFromLTWH(pos.X, pos.Y, st.extent, opts.Cross)
		handle = geometry.RectFromLTWH(body.Right, pos.Y, panelHandleSize, opts.Cross)
		size = geometry.Size{Width: st.extent + panelHandleSize, Height: opts.Cross}
	} else {
		body = geometry.RectFromLTWH(pos.X, pos.Y, opts.Cross, st.extent)
		handle = geometry.RectFromLTWH(pos.X, body.Bottom, opts.Cross, panelHandleSize)
		size = geometry.Size{Width: opts.Cross, Height: st.extent + panelHandleSize}
	}

	pointerAxis := c.pointer().X
	if opts.Axis == AxisVertical {
		pointerAxis = c.pointer().Y
	}

	handleHovered := c.hover(handleID, handle)
	if handleHovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(handleID) {
		c.capture.captureImmediately(handleID, input.ButtonPrimary, c.popupScope)
		st.dragOrigin = pointerAxis
		st.dragExtent = st.extent
	}
	dragging := c.capture.active == handleID
	if dragging {
		st.extent = geometry.Clamp(st.dragExtent+(pointerAxis-st.dragOrigin), lo, hi)
		if c.in.ButtonReleased(input.ButtonPrimary) {
			c.capture.release()
			dragging = false
		}
	}

	pv := c.visual(PackPanel, style.State{})
	c.fillRect(body, pv.Fill, pv.Rounding)
	c.strokeRect(body, pv.Border, pv.BorderWidth, pv.Rounding)
	hv := c.visual(PackPanelHandle, style.State{Hovered: handleHovered, Pressed: dragging})
	c.fillRect(handle, hv.Fill, hv.Rounding)

	c.PushClipRect(body)
	f := c.beginAt(containerPanel, id, geometry.Offset{X: body.Left + padX, Y: body.Top + padY}, ContainerOptions{Gap: opts.Gap})
	f.extent = size.Width
	f.cross = size.Height

	return st.extent
}

// EndPanel closes the innermost panel and folds its reserved footprint
// (extent plus handle, not the content) into the parent.
func (c *Context) EndPanel() {
	f, ok := c.end("ui.EndPanel", containerPanel)
	if !ok {
		return
	}
	c.PopClipRect()
	c.Advance(geometry.Size{Width: f.extent, Height: f.cross})
}
