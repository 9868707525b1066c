package style

// Token identifies one overridable visual token.
type Token int

const (
	// TokenFill overrides Visual.Fill.
	TokenFill Token = iota
	// TokenBorder overrides Visual.Border.
	TokenBorder
	// TokenText overrides Visual.Text.
	TokenText
	// TokenRounding overrides Visual.Rounding.
	TokenRounding
	// TokenBorderWidth overrides Visual.BorderWidth.
	TokenBorderWidth
)

type override struct {
	token Token
	color Color
	value float64
}

// Stack holds ordered token overrides. Call sites push overrides before
// a widget call and pop them after; resolution uses the nearest
// enclosing override for each token, so pops restore prior values
// exactly.
type Stack struct {
	overrides []override
}

// PushColor overrides a color token (fill, border or text).
func (s *Stack) PushColor(t Token, c Color) {
	s.overrides = append(s.overrides, override{token: t, color: c})
}

// PushValue overrides a scalar token (rounding or border width).
func (s *Stack) PushValue(t Token, v float64) {
	s.overrides = append(s.overrides, override{token: t, value: v})
}

// Pop removes the most recent override. Popping an empty stack is a
// no-op; the caller's frame context reports the mismatch.
func (s *Stack) Pop() bool {
	if len(s.overrides) == 0 {
		return false
	}
	s.overrides = s.overrides[:len(s.overrides)-1]
	return true
}

// Len returns the number of overrides currently pushed.
func (s *Stack) Len() int {
	return len(s.overrides)
}

// Clear drops every override.
func (s *Stack) Clear() {
	s.overrides = s.overrides[:0]
}

// Apply returns v with each token replaced by its nearest enclosing
// override, if any.
func (s *Stack) Apply(v Visual) Visual {
	seen := [5]bool{}
	for i := len(s.overrides) - 1; i >= 0; i-- {
		o := s.overrides[i]
		if seen[o.token] {
			continue
		}
		seen[o.token] = true
		switch o.token {
		case TokenFill:
			v.Fill = o.color
		case TokenBorder:
			v.Border = o.color
		case TokenText:
			v.Text = o.color
		case TokenRounding:
			v.Rounding = o.value
		case TokenBorderWidth:
			v.BorderWidth = o.value
		}
	}
	return v
}
