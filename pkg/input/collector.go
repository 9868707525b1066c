package input

import "github.com/go-ember/ember/pkg/geometry"

// Collector accumulates raw platform events between frames and emits
// one Snapshot per visual update. It is the only writer of input state;
// the Snapshot it hands out is never mutated afterwards.
//
// A host loop feeds events from its message pump, then calls Snapshot
// immediately before BeginFrame:
//
//	collector.PointerMoved(x, y)
//	collector.ButtonDown(input.ButtonPrimary)
//	snap := collector.Snapshot()
//	ctx.BeginFrame(snap)
type Collector struct {
	pointer geometry.Offset
	wheel   geometry.Offset
	mods    Modifiers

	down     [buttonCount]bool
	prevDown [buttonCount]bool

	keysPressed  map[Key]bool
	keysReleased map[Key]bool

	runes []rune
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		keysPressed:  make(map[Key]bool),
		keysReleased: make(map[Key]bool),
	}
}

// PointerMoved records the latest pointer position.
func (c *Collector) PointerMoved(x, y float64) {
	c.pointer = geometry.Offset{X: x, Y: y}
}

// ButtonDown records a button press.
func (c *Collector) ButtonDown(b PointerButton) {
	if b >= 0 && b < buttonCount {
		c.down[b] = true
	}
}

// ButtonUp records a button release.
func (c *Collector) ButtonUp(b PointerButton) {
	if b >= 0 && b < buttonCount {
		c.down[b] = false
	}
}

// Wheel accumulates scroll delta.
func (c *Collector) Wheel(dx, dy float64) {
	c.wheel.X += dx
	c.wheel.Y += dy
}

// KeyDown records a key press.
func (c *Collector) KeyDown(k Key) {
	c.keysPressed[k] = true
}

// KeyUp records a key release.
func (c *Collector) KeyUp(k Key) {
	c.keysReleased[k] = true
}

// Rune queues a typed printable character.
func (c *Collector) Rune(r rune) {
	c.runes = append(c.runes, r)
}

// SetModifiers records the currently held modifier keys.
func (c *Collector) SetModifiers(m Modifiers) {
	c.mods = m
}

// Snapshot freezes the accumulated events into an immutable Snapshot
// and clears the per-frame accumulations. Button hold state carries
// over so the next snapshot can derive pressed/released transitions.
func (c *Collector) Snapshot() *Snapshot {
	s := &Snapshot{
		Pointer:      c.pointer,
		Wheel:        c.wheel,
		Mods:         c.mods,
		down:         c.down,
		keysPressed:  c.keysPressed,
		keysReleased: c.keysReleased,
		runes:        c.runes,
	}
	for b := PointerButton(0); b < buttonCount; b++ {
		s.pressed[b] = c.down[b] && !c.prevDown[b]
		s.released[b] = !c.down[b] && c.prevDown[b]
	}

	c.prevDown = c.down
	c.wheel = geometry.Offset{}
	c.keysPressed = make(map[Key]bool)
	c.keysReleased = make(map[Key]bool)
	c.runes = nil
	return s
}
