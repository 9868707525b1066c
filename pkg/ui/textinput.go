package ui

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

const (
	inputDefaultWidth = 200.0
	undoCapacity      = 50
	caretBlinkPeriod  = 1.0
)

// editRecord is one undo/redo step: the full text plus the caret and
// scroll positions it was taken with, so undo restores the exact view.
type editRecord struct {
	text  string
	caret int
	first int
}

// inputState persists between frames of one text input.
type inputState struct {
	caret int // rune index
	first int // rune index of the first visible rune
	blink float64

	undo []editRecord
	redo []editRecord
}

// TextInputOptions configures a TextInput call.
type TextInputOptions struct {
	// At positions the field when it is not inside a container.
	At geometry.Offset
	// Size overrides the default field size when non-zero.
	Size geometry.Size
	// Disabled suppresses interaction and editing.
	Disabled bool
	// Layer overrides the capture layer; 0 means the ambient layer.
	Layer int
}

// TextInput draws a single-line editable text field. It returns the
// possibly edited text and whether Enter confirmed it this frame.
// Editing applies only while the field holds keyboard focus; clicking
// the field focuses it and places the caret under the pointer. The
// caret always stays visible: the field keeps a window of the text
// that slides minimally as the caret moves and pulls the tail fully
// into view when there is slack.
func (c *Context) TextInput(key, value string, opts TextInputOptions) (string, bool) {
	id := c.WidgetID(key)
	size := opts.Size
	if size.Width == 0 && size.Height == 0 {
		size = geometry.Size{Width: inputDefaultWidth, Height: c.lineHeight() + 2*padY}
	}
	pos := c.ApplyLayout(opts.At)
	bounds := geometry.RectFromOffsetSize(pos, size)
	defer c.Advance(size)

	st, err := widgetState(c, id, "textInput", func() *inputState { return &inputState{} })
	if err != nil {
		c.report("ui.TextInput", kindState, err)
		return value, false
	}

	runes := []rune(value)
	if st.caret > len(runes) {
		st.caret = len(runes)
	}
	if st.first > len(runes) {
		st.first = len(runes)
	}

	hovered := !opts.Disabled && c.hover(id, bounds)
	innerX := pos.X + padX
	innerWidth := size.Width - 2*padX

	if hovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(id) {
		c.capture.request(id, c.effectiveLayer(opts.Layer), input.ButtonPrimary, c.popupScope)
		st.caret = st.first + c.caretFromX(runes[st.first:], c.pointer().X-innerX)
		st.blink = 0
	}
	if c.capture.active == id && c.in.ButtonReleased(input.ButtonPrimary) {
		c.capture.release()
	}

	confirmed := false
	focused := c.focused == id
	if focused && !opts.Disabled {
		runes, confirmed = c.editText(st, runes)
	}

	// Slide the visible window so the caret stays inside it.
	widths := c.runeWidths(runes)
	if st.caret < st.first {
		st.first = st.caret
	}
	for st.first < st.caret && sum(widths[st.first:st.caret]) > innerWidth {
		st.first++
	}
	for st.first > 0 && sum(widths[st.first-1:]) <= innerWidth {
		st.first--
	}

	st.blink += c.delta

	v := c.visual(PackTextInput, style.State{
		Disabled: opts.Disabled,
		Hovered:  hovered,
		Focused:  focused,
	})
	c.fillRect(bounds, v.Fill, v.Rounding)
	c.strokeRect(bounds, v.Border, v.BorderWidth, v.Rounding)

	visibleEnd := st.first
	w := 0.0
	for visibleEnd < len(runes) && w+widths[visibleEnd] <= innerWidth {
		w += widths[visibleEnd]
		visibleEnd++
	}
	inner := geometry.RectFromLTWH(innerX, pos.Y+padY, innerWidth, size.Height-2*padY)
	c.drawText(string(runes[st.first:visibleEnd]), inner, v.Text)

	if focused && !opts.Disabled && math.Mod(st.blink, caretBlinkPeriod) < caretBlinkPeriod/2 {
		caretX := innerX + sum(widths[st.first:st.caret])
		c.line(
			geometry.Offset{X: caretX, Y: pos.Y + padY},
			geometry.Offset{X: caretX, Y: pos.Y + size.Height - padY},
			v.Text, 1,
		)
	}

	return string(runes), confirmed
}

// editText applies one frame of keyboard input to the field's text.
func (c *Context) editText(st *inputState, runes []rune) ([]rune, bool) {
	confirmed := false
	if c.in == nil {
		return runes, false
	}
	ctrl := c.in.Mods.Control()

	if ctrl {
		switch {
		case c.in.KeyPressed(input.KeyZ) && c.in.Mods.Shift():
			runes = st.redoEdit(runes)
		case c.in.KeyPressed(input.KeyZ):
			runes = st.undoEdit(runes)
		case c.in.KeyPressed(input.KeyY):
			runes = st.redoEdit(runes)
		case c.in.KeyPressed(input.KeyC):
			if c.clipboard != nil {
				c.clipboard.SetText(string(runes))
			}
		case c.in.KeyPressed(input.KeyV):
			if c.clipboard != nil {
				pasted := strings.Map(func(r rune) rune {
					if r == '\n' || r == '\r' {
						return ' '
					}
					return r
				}, c.clipboard.Text())
				if pasted != "" {
					st.beginEdit(runes)
					ins := []rune(pasted)
					runes = insertRunes(runes, st.caret, ins)
					st.caret += len(ins)
					st.blink = 0
				}
			}
		case c.in.KeyPressed(input.KeyBackspace):
			if st.caret > 0 {
				st.beginEdit(runes)
				from := wordStart(runes, st.caret)
				runes = append(runes[:from], runes[st.caret:]...)
				st.caret = from
				st.blink = 0
			}
		}
	}

	if !ctrl {
		for _, r := range c.in.Runes() {
			st.beginEdit(runes)
			runes = insertRunes(runes, st.caret, []rune{r})
			st.caret++
			st.blink = 0
		}
		if c.in.KeyPressed(input.KeyBackspace) && st.caret > 0 {
			st.beginEdit(runes)
			runes = append(runes[:st.caret-1], runes[st.caret:]...)
			st.caret--
			st.blink = 0
		}
		if c.in.KeyPressed(input.KeyDelete) && st.caret < len(runes) {
			st.beginEdit(runes)
			runes = append(runes[:st.caret], runes[st.caret+1:]...)
			st.blink = 0
		}
	}

	moveCaret := func(to int) {
		if to < 0 {
			to = 0
		}
		if to > len(runes) {
			to = len(runes)
		}
		if to != st.caret {
			st.caret = to
			st.blink = 0
		}
	}
	switch {
	case c.in.KeyPressed(input.KeyLeft):
		moveCaret(st.caret - 1)
	case c.in.KeyPressed(input.KeyRight):
		moveCaret(st.caret + 1)
	case c.in.KeyPressed(input.KeyHome):
		moveCaret(0)
	case c.in.KeyPressed(input.KeyEnd):
		moveCaret(len(runes))
	}

	if c.in.KeyPressed(input.KeyEnter) {
		confirmed = true
	}
	if c.in.KeyPressed(input.KeyEscape) {
		c.ClearFocus()
	}

	return runes, confirmed
}

// beginEdit pushes the pre-mutation state before a mutating edit and
// clears the redo history. An entry identical to the stack top is not
// pushed twice.
func (st *inputState) beginEdit(runes []rune) {
	rec := editRecord{text: string(runes), caret: st.caret, first: st.first}
	if n := len(st.undo); n == 0 || st.undo[n-1] != rec {
		st.pushUndo(rec)
	}
	st.redo = st.redo[:0]
}

func (st *inputState) pushUndo(rec editRecord) {
	if len(st.undo) == undoCapacity {
		copy(st.undo, st.undo[1:])
		st.undo = st.undo[:undoCapacity-1]
	}
	st.undo = append(st.undo, rec)
}

func (st *inputState) undoEdit(runes []rune) []rune {
	n := len(st.undo)
	if n == 0 {
		return runes
	}
	rec := st.undo[n-1]
	st.undo = st.undo[:n-1]
	st.redo = append(st.redo, editRecord{text: string(runes), caret: st.caret, first: st.first})
	st.caret, st.first = rec.caret, rec.first
	st.blink = 0
	return []rune(rec.text)
}

func (st *inputState) redoEdit(runes []rune) []rune {
	n := len(st.redo)
	if n == 0 {
		return runes
	}
	rec := st.redo[n-1]
	st.redo = st.redo[:n-1]
	st.undo = append(st.undo, editRecord{text: string(runes), caret: st.caret, first: st.first})
	st.caret, st.first = rec.caret, rec.first
	st.blink = 0
	return []rune(rec.text)
}

func insertRunes(runes []rune, at int, ins []rune) []rune {
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:at]...)
	out = append(out, ins...)
	out = append(out, runes[at:]...)
	return out
}

// wordStart returns the index of the start of the word ending at
// caret: trailing whitespace is skipped first, then the word itself.
func wordStart(runes []rune, caret int) int {
	i := caret
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// runeWidths measures each rune of runes, with the monospace fallback
// when no measurer is configured.
func (c *Context) runeWidths(runes []rune) []float64 {
	if c.measurer != nil {
		return c.measurer.RuneWidths(string(runes))
	}
	ws := make([]float64, len(runes))
	for i := range ws {
		ws[i] = fallbackRuneW
	}
	return ws
}

// caretFromX maps a click offset within the visible text to the
// nearest rune boundary.
func (c *Context) caretFromX(visible []rune, x float64) int {
	widths := c.runeWidths(visible)
	acc := 0.0
	for i, w := range widths {
		if x < acc+w/2 {
			return i
		}
		acc += w
	}
	return len(visible)
}

func sum(ws []float64) float64 {
	t := 0.0
	for _, w := range ws {
		t += w
	}
	return t
}
