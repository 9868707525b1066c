package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/style"
)

// TriggerMode selects when a button reports its click.
type TriggerMode int

const (
	// TriggerOnRelease fires when the press is released over the
	// widget. This is the default.
	TriggerOnRelease TriggerMode = iota
	// TriggerOnPress fires on the frame after the press lands,
	// once the press resolution has confirmed the widget as the
	// topmost claimant.
	TriggerOnPress
)

// ClickButtons selects which pointer buttons a widget responds to.
type ClickButtons int

const (
	// ClickLeft responds to the primary button only. The default.
	ClickLeft ClickButtons = iota
	// ClickRight responds to the secondary button only.
	ClickRight
	// ClickLeftRight responds to either.
	ClickLeftRight
)

func (b ClickButtons) left() bool  { return b == ClickLeft || b == ClickLeftRight }
func (b ClickButtons) right() bool { return b == ClickRight || b == ClickLeftRight }

// ButtonOptions configures a Button call. The zero value is a
// left-click, release-triggered button sized to its label.
type ButtonOptions struct {
	// At positions the button when it is not inside a container.
	At geometry.Offset
	// Size overrides the label-derived size when non-zero.
	Size geometry.Size
	// Disabled suppresses interaction and selects the disabled visual.
	Disabled bool
	// ForceActive renders the active variants, for toggle groups whose
	// on/off state lives in application data.
	ForceActive bool
	// Trigger selects press or release clicks.
	Trigger TriggerMode
	// Buttons selects the pointer buttons that count as clicks.
	Buttons ClickButtons
	// Layer overrides the capture layer; 0 means the ambient layer.
	Layer int
	// Pack overrides the style pack name.
	Pack string
}

// Button draws a push button and reports whether it was clicked this
// frame. In release mode the click fires when the held press is
// released over the button; in press mode it fires one frame after the
// press, once arbitration has confirmed no later-drawn or higher-layer
// widget covered it.
func (c *Context) Button(key, label string, opts ButtonOptions) bool {
	id := c.WidgetID(key)
	size := opts.Size
	if size.Width == 0 && size.Height == 0 {
		ts := c.textSize(label)
		size = geometry.Size{Width: ts.Width + 2*padX, Height: ts.Height + 2*padY}
	}
	pos := c.ApplyLayout(opts.At)
	bounds := geometry.RectFromOffsetSize(pos, size)
	defer c.Advance(size)

	hovered := !opts.Disabled && c.hover(id, bounds)
	clicked := false

	if hovered && c.capture.canAttemptCapture(id) {
		if btn, ok := c.pressedClickButton(opts.Buttons); ok {
			c.capture.request(id, c.effectiveLayer(opts.Layer), btn, c.popupScope)
		}
	}

	held := c.capture.active == id
	if held && c.in.ButtonReleased(c.capture.activeButton) {
		if opts.Trigger == TriggerOnRelease {
			clicked = hovered
		}
		c.capture.release()
		held = false
	}
	if opts.Trigger == TriggerOnPress && c.capture.takePressWinner(id) {
		clicked = true
	}
	if opts.Disabled {
		clicked = false
	}

	pack := opts.Pack
	if pack == "" {
		pack = PackButton
	}
	v := c.visual(pack, style.State{
		Disabled: opts.Disabled,
		Pressed:  held && hovered,
		Hovered:  hovered,
		Focused:  c.focused == id,
		Active:   opts.ForceActive,
	})
	c.fillRect(bounds, v.Fill, v.Rounding)
	c.strokeRect(bounds, v.Border, v.BorderWidth, v.Rounding)
	labelArea := geometry.RectFromLTWH(pos.X+padX, pos.Y+padY, size.Width-2*padX, size.Height-2*padY)
	c.drawText(label, labelArea, v.Text)

	return clicked
}
