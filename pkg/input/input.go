// Package input defines the per-frame input snapshot consumed by the
// Ember runtime and the collector that produces it from raw platform
// events.
package input

import "github.com/go-ember/ember/pkg/geometry"

// PointerButton identifies a pointer (mouse) button.
type PointerButton int

const (
	// ButtonPrimary is the left mouse button or primary touch.
	ButtonPrimary PointerButton = iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonMiddle is the middle mouse button or wheel press.
	ButtonMiddle

	buttonCount
)

// Key identifies a non-printable key relevant to widget editing and
// navigation. Printable input arrives as typed runes instead.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab

	// Letter keys are reported only for modifier shortcuts (undo,
	// redo, clipboard). Plain letter presses arrive as runes.
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	// ModControl is held for word-wise editing and shortcuts.
	ModControl Modifiers = 1 << iota
	// ModShift extends selections.
	ModShift
	// ModAlt is the platform alternate modifier.
	ModAlt
)

// Control reports whether the control modifier is held.
func (m Modifiers) Control() bool { return m&ModControl != 0 }

// Shift reports whether the shift modifier is held.
func (m Modifiers) Shift() bool { return m&ModShift != 0 }

// Alt reports whether the alt modifier is held.
func (m Modifiers) Alt() bool { return m&ModAlt != 0 }

// Snapshot is the immutable input record for one frame. It is produced
// by a Collector before BeginFrame, read-only during the frame, and
// stale after EndFrame.
type Snapshot struct {
	// Pointer is the pointer position in logical pixels.
	Pointer geometry.Offset
	// Wheel is the scroll delta accumulated since the last snapshot.
	Wheel geometry.Offset
	// Mods are the modifier keys held when the snapshot was taken.
	Mods Modifiers

	down     [buttonCount]bool
	pressed  [buttonCount]bool
	released [buttonCount]bool

	keysPressed  map[Key]bool
	keysReleased map[Key]bool

	runes []rune
}

// ButtonDown reports whether the button is currently held.
func (s *Snapshot) ButtonDown(b PointerButton) bool {
	if s == nil || b < 0 || b >= buttonCount {
		return false
	}
	return s.down[b]
}

// ButtonPressed reports whether the button transitioned down this frame.
func (s *Snapshot) ButtonPressed(b PointerButton) bool {
	if s == nil || b < 0 || b >= buttonCount {
		return false
	}
	return s.pressed[b]
}

// ButtonReleased reports whether the button transitioned up this frame.
func (s *Snapshot) ButtonReleased(b PointerButton) bool {
	if s == nil || b < 0 || b >= buttonCount {
		return false
	}
	return s.released[b]
}

// KeyPressed reports whether the key went down this frame.
func (s *Snapshot) KeyPressed(k Key) bool {
	if s == nil {
		return false
	}
	return s.keysPressed[k]
}

// KeyReleased reports whether the key went up this frame.
func (s *Snapshot) KeyReleased(k Key) bool {
	if s == nil {
		return false
	}
	return s.keysReleased[k]
}

// Runes returns the printable characters typed since the last snapshot,
// in arrival order. The returned slice must not be modified.
func (s *Snapshot) Runes() []rune {
	if s == nil {
		return nil
	}
	return s.runes
}
