package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
)

// Default metrics used when a widget is not given an explicit size.
const (
	padX          = 8.0
	padY          = 4.0
	fallbackRuneW = 8.0
	fallbackLineH = 16.0
)

// effectiveLayer maps a widget's requested layer to the one its
// capture requests run at. An explicit layer wins; otherwise widgets
// issued inside an open popup inherit the popup layer.
func (c *Context) effectiveLayer(layer int) int {
	if layer != 0 {
		return layer
	}
	if c.popupScope != idNone {
		return LayerPopup
	}
	return LayerBase
}

// textSize measures s with the context's measurer, with a coarse
// monospace estimate when none is configured.
func (c *Context) textSize(s string) geometry.Size {
	if c.measurer != nil {
		return geometry.Size{Width: c.measurer.StringWidth(s), Height: c.measurer.LineHeight()}
	}
	n := 0
	for range s {
		n++
	}
	return geometry.Size{Width: float64(n) * fallbackRuneW, Height: fallbackLineH}
}

// lineHeight returns the measurer's line height or the fallback.
func (c *Context) lineHeight() float64 {
	if c.measurer != nil {
		return c.measurer.LineHeight()
	}
	return fallbackLineH
}

// pressedClickButton returns the first allowed button pressed this
// frame, if any.
func (c *Context) pressedClickButton(buttons ClickButtons) (input.PointerButton, bool) {
	if buttons.left() && c.in.ButtonPressed(input.ButtonPrimary) {
		return input.ButtonPrimary, true
	}
	if buttons.right() && c.in.ButtonPressed(input.ButtonSecondary) {
		return input.ButtonSecondary, true
	}
	return 0, false
}
