package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

// popupState persists between frames of one popup.
type popupState struct {
	open bool
	// seenSerial is the last press audit serial this popup observed;
	// any newer press not claimed inside the popup dismisses it.
	seenSerial uint64
}

// PopupOptions configures a BeginPopup call.
type PopupOptions struct {
	// At is the popup's top-left corner.
	At geometry.Offset
	// Size is the popup body size.
	Size geometry.Size
	// Gap is the spacing between the popup's children.
	Gap float64
}

// popupID hashes a popup key at the root id scope. OpenPopup and
// ClosePopup are routinely called from inside other scopes, most of
// all a popup's own children closing their menu, and must still
// address the popup that BeginPopup named.
func popupID(key string) ID {
	h := hashString(fnvOffset, key)
	if h == 0 {
		h = fnvPrime
	}
	return ID(h)
}

// OpenPopup marks the popup identified by key as open. Typically
// called from a button's click.
func (c *Context) OpenPopup(key string) {
	id := popupID(key)
	st, err := widgetState(c, id, "popup", func() *popupState { return &popupState{} })
	if err != nil {
		c.report("ui.OpenPopup", kindState, err)
		return
	}
	st.open = true
	st.seenSerial = c.capture.pressSerial
}

// ClosePopup closes the popup identified by key.
func (c *Context) ClosePopup(key string) {
	id := popupID(key)
	st, err := widgetState(c, id, "popup", func() *popupState { return &popupState{} })
	if err != nil {
		c.report("ui.ClosePopup", kindState, err)
		return
	}
	st.open = false
}

// BeginPopup draws an open popup's body and reports whether it is
// open; when it returns true the caller emits the popup's children and
// must close with EndPopup. Children run at the popup layer, so their
// presses beat base-layer widgets under the popup. A popup dismisses
// itself when a press lands anywhere outside it, including on empty
// space; presses on the popup body or its children keep it open.
func (c *Context) BeginPopup(key string, opts PopupOptions) bool {
	id := popupID(key)
	st, err := widgetState(c, id, "popup", func() *popupState { return &popupState{} })
	if err != nil {
		c.report("ui.BeginPopup", kindState, err)
		return false
	}
	if !st.open {
		return false
	}

	// Press audit: a press resolved since we last looked. If it was
	// not claimed by this popup's scope, the user clicked elsewhere.
	if c.capture.pressSerial != st.seenSerial {
		st.seenSerial = c.capture.pressSerial
		if c.capture.pressPopup != id {
			st.open = false
			return false
		}
	}
	if c.in.KeyPressed(input.KeyEscape) {
		st.open = false
		return false
	}

	bounds := geometry.RectFromOffsetSize(opts.At, opts.Size)
	v := c.visual(PackPopup, style.State{})
	c.fillRect(bounds, v.Fill, v.Rounding)
	c.strokeRect(bounds, v.Border, v.BorderWidth, v.Rounding)

	// The body itself claims presses at the popup layer, so a click on
	// popup padding neither falls through nor dismisses.
	c.prevScopes = append(c.prevScopes, c.popupScope)
	c.popupScope = id
	if c.hover(id, bounds) {
		if btn, ok := c.pressedClickButton(ClickLeftRight); ok && c.capture.canAttemptCapture(id) {
			c.capture.request(id, LayerPopup, btn, id)
		}
	}
	if c.capture.active == id && c.in.ButtonReleased(c.capture.activeButton) {
		c.capture.release()
	}

	c.PushID(key)
	c.beginAt(containerPopup, id, geometry.Offset{X: bounds.Left + padX, Y: bounds.Top + padY}, ContainerOptions{Gap: opts.Gap})
	return true
}

// EndPopup closes an open popup's child scope. Popups overlay the page
// rather than occupy layout space, so nothing folds into the parent.
func (c *Context) EndPopup() {
	c.end("ui.EndPopup", containerPopup)
	c.PopID()
	if n := len(c.prevScopes); n > 0 {
		c.popupScope = c.prevScopes[n-1]
		c.prevScopes = c.prevScopes[:n-1]
	} else {
		c.popupScope = idNone
	}
}
