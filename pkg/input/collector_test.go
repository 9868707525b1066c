package input

import "testing"

func TestButtonTransitions(t *testing.T) {
	c := NewCollector()

	c.ButtonDown(ButtonPrimary)
	s1 := c.Snapshot()
	if !s1.ButtonDown(ButtonPrimary) || !s1.ButtonPressed(ButtonPrimary) {
		t.Fatal("first snapshot should report down and pressed")
	}
	if s1.ButtonReleased(ButtonPrimary) {
		t.Fatal("first snapshot should not report released")
	}

	// Held across the next frame: down but no longer pressed.
	s2 := c.Snapshot()
	if !s2.ButtonDown(ButtonPrimary) {
		t.Fatal("second snapshot should report down")
	}
	if s2.ButtonPressed(ButtonPrimary) {
		t.Fatal("held button must not report pressed again")
	}

	c.ButtonUp(ButtonPrimary)
	s3 := c.Snapshot()
	if s3.ButtonDown(ButtonPrimary) {
		t.Fatal("third snapshot should not report down")
	}
	if !s3.ButtonReleased(ButtonPrimary) {
		t.Fatal("third snapshot should report released")
	}
}

func TestWheelAccumulatesAndResets(t *testing.T) {
	c := NewCollector()
	c.Wheel(0, -3)
	c.Wheel(0, -2)

	s := c.Snapshot()
	if s.Wheel.Y != -5 {
		t.Fatalf("wheel Y = %v, want -5", s.Wheel.Y)
	}
	if s2 := c.Snapshot(); s2.Wheel.Y != 0 {
		t.Fatalf("wheel should reset between snapshots, got %v", s2.Wheel.Y)
	}
}

func TestKeysAndRunesClearPerFrame(t *testing.T) {
	c := NewCollector()
	c.KeyDown(KeyBackspace)
	c.Rune('a')
	c.Rune('b')

	s := c.Snapshot()
	if !s.KeyPressed(KeyBackspace) {
		t.Fatal("expected backspace pressed")
	}
	if got := string(s.Runes()); got != "ab" {
		t.Fatalf("runes = %q, want %q", got, "ab")
	}

	s2 := c.Snapshot()
	if s2.KeyPressed(KeyBackspace) || len(s2.Runes()) != 0 {
		t.Fatal("key presses and runes must not leak into the next frame")
	}
}

func TestSnapshotImmutableAfterMoreEvents(t *testing.T) {
	c := NewCollector()
	c.PointerMoved(10, 20)
	s := c.Snapshot()

	c.PointerMoved(99, 99)
	c.Rune('x')

	if s.Pointer.X != 10 || s.Pointer.Y != 20 {
		t.Fatalf("snapshot pointer mutated: %+v", s.Pointer)
	}
	if len(s.Runes()) != 0 {
		t.Fatal("snapshot runes mutated by later events")
	}
}

func TestModifiers(t *testing.T) {
	c := NewCollector()
	c.SetModifiers(ModControl | ModShift)
	s := c.Snapshot()
	if !s.Mods.Control() || !s.Mods.Shift() || s.Mods.Alt() {
		t.Fatalf("mods = %b", s.Mods)
	}
}
