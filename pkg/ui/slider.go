package ui

import (
	"math"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

const (
	sliderLength    = 160.0
	sliderThickness = 20.0
	grabberLength   = 12.0
)

// SliderOptions configures a SliderH or SliderV call.
type SliderOptions struct {
	// At positions the slider when it is not inside a container.
	At geometry.Offset
	// Length is the track extent along the slider axis. Defaults to 160.
	Length float64
	// Thickness is the extent across the axis. Defaults to 20.
	Thickness float64
	// Disabled suppresses interaction.
	Disabled bool
}

// sliderState persists between frames of one slider.
type sliderState struct {
	// grabOffset keeps the grabber from snapping to the pointer center
	// when a drag starts on the grabber body.
	grabOffset float64
	// pending is set while a track click awaits press confirmation.
	pending bool
}

// quantizeSlider snaps raw onto the step grid anchored at min, then
// clamps into [min, max]. When the whole range is narrower than one
// step the value snaps to the nearer bound.
func quantizeSlider(raw, min, max, step float64) float64 {
	if step > 0 {
		if max-min < step {
			if raw-min < max-raw {
				return min
			}
			return max
		}
		raw = min + math.Round((raw-min)/step)*step
	}
	return geometry.Clamp(raw, min, max)
}

// SliderH draws a horizontal slider over [min, max] with the given
// step (0 for continuous) and reports whether *value changed this
// frame. Dragging the grabber updates continuously; clicking the track
// jumps, one frame later, once arbitration has confirmed the click was
// not claimed by a widget drawn over the track.
func (c *Context) SliderH(key string, value *float64, min, max, step float64, opts SliderOptions) bool {
	return c.slider(key, value, min, max, step, AxisHorizontal, opts)
}

// SliderV is the vertical counterpart of SliderH.
func (c *Context) SliderV(key string, value *float64, min, max, step float64, opts SliderOptions) bool {
	return c.slider(key, value, min, max, step, AxisVertical, opts)
}

func (c *Context) slider(key string, value *float64, min, max, step float64, axis Axis, opts SliderOptions) bool {
	id := c.WidgetID(key)
	length := opts.Length
	if length <= 0 {
		length = sliderLength
	}
	thickness := opts.Thickness
	if thickness <= 0 {
		thickness = sliderThickness
	}
	var size geometry.Size
	if axis == AxisHorizontal {
		size = geometry.Size{Width: length, Height: thickness}
	} else {
		size = geometry.Size{Width: thickness, Height: length}
	}
	pos := c.ApplyLayout(opts.At)
	bounds := geometry.RectFromOffsetSize(pos, size)
	defer c.Advance(size)

	st, err := widgetState(c, id, "slider", func() *sliderState { return &sliderState{} })
	if err != nil {
		c.report("ui.Slider", kindState, err)
		return false
	}
	if value == nil {
		return false
	}

	// Track geometry along the axis.
	axisStart := pos.X
	pointerAxis := c.pointer().X
	if axis == AxisVertical {
		axisStart = pos.Y
		pointerAxis = c.pointer().Y
	}
	travel := length - grabberLength
	span := max - min
	t := 0.0
	if span > 0 {
		t = geometry.Clamp((*value-min)/span, 0, 1)
	}
	grabberStart := axisStart + t*travel

	var grabber geometry.Rect
	if axis == AxisHorizontal {
		grabber = geometry.RectFromLTWH(grabberStart, pos.Y, grabberLength, thickness)
	} else {
		grabber = geometry.RectFromLTWH(pos.X, grabberStart, thickness, grabberLength)
	}

	// raw value at a pointer coordinate, before quantization.
	valueAt := func(coord float64) float64 {
		if travel <= 0 {
			return min
		}
		f := geometry.Clamp((coord-axisStart-grabberLength/2)/travel, 0, 1)
		return min + f*span
	}

	hovered := !opts.Disabled && c.hover(id, bounds)
	onGrabber := hovered && grabber.Contains(c.pointer())

	if hovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(id) {
		c.capture.captureImmediately(id, input.ButtonPrimary, c.popupScope)
		if onGrabber {
			st.grabOffset = pointerAxis - (grabberStart + grabberLength/2)
			st.pending = false
		} else {
			// Track click: the jump waits one frame for confirmation
			// that nothing drawn later claimed the press.
			st.grabOffset = 0
			st.pending = true
			c.capture.deferJump(id, quantizeSlider(valueAt(pointerAxis), min, max, step))
		}
	}

	changed := false
	if v, ok := c.capture.takeJump(id); ok {
		st.pending = false
		if v != *value {
			*value = v
			changed = true
		}
	}
	held := c.capture.active == id
	if !held {
		st.pending = false
	}
	if held && !st.pending && !opts.Disabled {
		v := quantizeSlider(valueAt(pointerAxis-st.grabOffset), min, max, step)
		if v != *value {
			*value = v
			changed = true
		}
	}
	if held && c.in.ButtonReleased(input.ButtonPrimary) {
		c.capture.release()
		held = false
	}

	track := c.visual(PackSliderTrack, style.State{Disabled: opts.Disabled})
	c.fillRect(bounds, track.Fill, track.Rounding)
	// Filled portion up to the grabber center.
	filled := c.visual(PackSliderTrack, style.State{Disabled: opts.Disabled, Active: true})
	mid := grabberStart + grabberLength/2
	if axis == AxisHorizontal {
		c.fillRect(geometry.Rect{Left: bounds.Left, Top: bounds.Top, Right: mid, Bottom: bounds.Bottom}, filled.Fill, track.Rounding)
	} else {
		c.fillRect(geometry.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Right, Bottom: mid}, filled.Fill, track.Rounding)
	}
	c.strokeRect(bounds, track.Border, track.BorderWidth, track.Rounding)
	grab := c.visual(PackSlider, style.State{
		Disabled: opts.Disabled,
		Pressed:  held,
		Hovered:  onGrabber,
		Focused:  c.focused == id,
	})
	c.fillRect(grabber, grab.Fill, grab.Rounding)
	c.strokeRect(grabber, grab.Border, grab.BorderWidth, grab.Rounding)

	return changed
}

// pointer returns the frame's pointer position, zero when no snapshot
// was supplied.
func (c *Context) pointer() geometry.Offset {
	if c.in == nil {
		return geometry.Offset{}
	}
	return c.in.Pointer
}
