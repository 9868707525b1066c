package style

import "testing"

func testPack() *Pack {
	p := NewPack(Visual{Fill: RGB(10, 10, 10), Text: RGB(200, 200, 200)})
	p.Set(VariantHover, Visual{Fill: RGB(20, 20, 20)})
	p.Set(VariantPressed, Visual{Fill: RGB(30, 30, 30)})
	p.Set(VariantDisabled, Visual{Fill: RGB(40, 40, 40)})
	p.Set(VariantFocused, Visual{Fill: RGB(50, 50, 50)})
	p.Set(VariantActive, Visual{Fill: RGB(60, 60, 60)})
	p.Set(VariantActiveHover, Visual{Fill: RGB(70, 70, 70)})
	return p
}

func TestResolvePrecedence(t *testing.T) {
	p := testPack()

	cases := []struct {
		name string
		st   State
		want Color
	}{
		{"normal", State{}, RGB(10, 10, 10)},
		{"hover", State{Hovered: true}, RGB(20, 20, 20)},
		{"pressed beats hover", State{Pressed: true, Hovered: true}, RGB(30, 30, 30)},
		{"disabled beats everything", State{Disabled: true, Pressed: true, Hovered: true, Active: true}, RGB(40, 40, 40)},
		{"focused", State{Focused: true}, RGB(50, 50, 50)},
		{"active suppresses hover variant", State{Active: true, Hovered: true}, RGB(70, 70, 70)},
		{"active suppresses focus variant", State{Active: true, Focused: true}, RGB(60, 60, 60)},
		{"pressed beats active", State{Pressed: true, Active: true}, RGB(30, 30, 30)},
	}
	for _, c := range cases {
		if got := p.Resolve(c.st).Fill; got != c.want {
			t.Errorf("%s: fill = %#x, want %#x", c.name, got, c.want)
		}
	}
}

func TestUndefinedVariantFallsBackToNormal(t *testing.T) {
	p := NewPack(Visual{Fill: RGB(1, 2, 3)})
	if got := p.Resolve(State{Hovered: true}).Fill; got != RGB(1, 2, 3) {
		t.Errorf("undefined hover should resolve to normal, got %#x", got)
	}
}

func TestStackNearestOverrideWins(t *testing.T) {
	var s Stack
	base := Visual{Fill: RGB(1, 1, 1), Rounding: 2}

	s.PushColor(TokenFill, RGB(9, 9, 9))
	s.PushColor(TokenFill, RGB(5, 5, 5))
	s.PushValue(TokenRounding, 8)

	got := s.Apply(base)
	if got.Fill != RGB(5, 5, 5) {
		t.Errorf("fill = %#x, want nearest override %#x", got.Fill, RGB(5, 5, 5))
	}
	if got.Rounding != 8 {
		t.Errorf("rounding = %v, want 8", got.Rounding)
	}
	// Untouched tokens pass through.
	if got.Text != base.Text || got.Border != base.Border {
		t.Error("unrelated tokens must pass through unchanged")
	}
}

func TestStackPopRestoresExactly(t *testing.T) {
	var s Stack
	base := Visual{Fill: RGB(1, 1, 1)}

	s.PushColor(TokenFill, RGB(9, 9, 9))
	s.PushColor(TokenFill, RGB(5, 5, 5))
	s.Pop()
	if got := s.Apply(base).Fill; got != RGB(9, 9, 9) {
		t.Errorf("after pop, fill = %#x, want %#x", got, RGB(9, 9, 9))
	}
	s.Pop()
	if got := s.Apply(base); got != base {
		t.Errorf("after final pop, visual = %+v, want base %+v", got, base)
	}
	if s.Pop() {
		t.Error("pop of empty stack should report false")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#FFF", RGB(255, 255, 255), true},
		{"#102030", RGB(16, 32, 48), true},
		{"#80102030", RGBA8(16, 32, 48, 128), true},
		{"102030", 0, false},
		{"#12345", 0, false},
		{"#GGGGGG", 0, false},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if c.ok != (err == nil) {
			t.Errorf("ParseColor(%q) err = %v, want ok=%v", c.in, err, c.ok)
			continue
		}
		if c.ok && got != c.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", c.in, got, c.want)
		}
	}
}
