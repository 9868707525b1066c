package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

const checkboxBox = 16.0

// CheckboxOptions configures a Checkbox call.
type CheckboxOptions struct {
	// At positions the checkbox when it is not inside a container.
	At geometry.Offset
	// Disabled suppresses interaction.
	Disabled bool
	// Layer overrides the capture layer; 0 means the ambient layer.
	Layer int
}

// Checkbox draws a toggle box with a trailing label. It flips *checked
// on click (release over the widget) and reports whether it changed
// this frame. The checked state lives in the caller's data, not the
// widget store.
func (c *Context) Checkbox(key, label string, checked *bool, opts CheckboxOptions) bool {
	id := c.WidgetID(key)
	ts := c.textSize(label)
	h := checkboxBox
	if ts.Height > h {
		h = ts.Height
	}
	size := geometry.Size{Width: checkboxBox + padX + ts.Width, Height: h}
	pos := c.ApplyLayout(opts.At)
	bounds := geometry.RectFromOffsetSize(pos, size)
	defer c.Advance(size)

	hovered := !opts.Disabled && c.hover(id, bounds)
	if hovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(id) {
		c.capture.request(id, c.effectiveLayer(opts.Layer), input.ButtonPrimary, c.popupScope)
	}

	changed := false
	held := c.capture.active == id
	if held && c.in.ButtonReleased(input.ButtonPrimary) {
		if hovered && !opts.Disabled && checked != nil {
			*checked = !*checked
			changed = true
		}
		c.capture.release()
		held = false
	}

	active := checked != nil && *checked
	v := c.visual(PackCheckbox, style.State{
		Disabled: opts.Disabled,
		Pressed:  held && hovered,
		Hovered:  hovered,
		Focused:  c.focused == id,
		Active:   active,
	})
	boxTop := pos.Y + (h-checkboxBox)/2
	box := geometry.RectFromLTWH(pos.X, boxTop, checkboxBox, checkboxBox)
	c.fillRect(box, v.Fill, v.Rounding)
	c.strokeRect(box, v.Border, v.BorderWidth, v.Rounding)
	if active {
		c.fillRect(box.Inset(4), v.Text, 1)
	}
	labelArea := geometry.RectFromLTWH(pos.X+checkboxBox+padX, pos.Y+(h-ts.Height)/2, ts.Width, ts.Height)
	c.drawText(label, labelArea, v.Text)

	return changed
}
