package ui

import (
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/style"
	"github.com/go-ember/ember/pkg/text"
)

const (
	kindLayout = errors.KindLayout
	kindState  = errors.KindState
	kindStyle  = errors.KindStyle
	kindInput  = errors.KindInput
)

// Clipboard is the optional clipboard collaborator used by text inputs.
type Clipboard interface {
	// Text returns the current clipboard contents.
	Text() string
	// SetText replaces the clipboard contents.
	SetText(s string)
}

// Options configures a Context. Canvas, Measurer and Clipboard may be
// nil; widget calls then skip drawing (or text editing) and return
// their inputs unchanged rather than fail the frame.
type Options struct {
	// Canvas receives the frame's draw calls.
	Canvas render.Canvas
	// Measurer provides text measurement.
	Measurer text.Measurer
	// Theme supplies named style packs. Defaults to DefaultTheme().
	Theme *style.Theme
	// Errors receives usage errors. Defaults to a slog LogHandler.
	Errors errors.Handler
	// Clipboard backs cut/copy/paste in text inputs.
	Clipboard Clipboard
}

// Context owns all state of one UI surface: the widget state store,
// the container and clip stacks, the style stack, and the per-frame
// capture bookkeeping. Create one Context per independent surface
// (main window, modal overlay, secondary window); contexts share
// nothing and must each be driven from a single goroutine.
type Context struct {
	canvas    render.Canvas
	measurer  text.Measurer
	theme     *style.Theme
	handler   errors.Handler
	clipboard Clipboard

	// Styles is the token override stack consulted by every widget
	// draw. Push overrides before a widget call and pop after.
	Styles style.Stack

	in    *input.Snapshot
	delta float64

	store   *stateStore
	layouts []container
	clips   []geometry.Rect
	idStack []uint64

	capture captureState
	focused ID

	popupScope ID
	prevScopes []ID
	activeGrid *gridPass

	frame   uint64
	inFrame bool
}

// New creates a Context.
func New(opts Options) *Context {
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	handler := opts.Errors
	if handler == nil {
		handler = &errors.LogHandler{}
	}
	return &Context{
		canvas:    opts.Canvas,
		measurer:  opts.Measurer,
		theme:     theme,
		handler:   handler,
		clipboard: opts.Clipboard,
		store:     newStateStore(),
	}
}

// BeginFrame starts a frame with a freshly captured input snapshot.
// delta is the time in seconds since the previous frame; it drives
// caret blinking. All per-frame transient state is reset here.
func (c *Context) BeginFrame(snap *input.Snapshot, delta float64) {
	if c.inFrame {
		c.reportf("ui.BeginFrame", kindLayout, "BeginFrame while a frame is already open")
	}
	if len(c.layouts) != 0 {
		c.reportf("ui.BeginFrame", kindLayout, "container stack not empty at frame start (%d left)", len(c.layouts))
		c.layouts = c.layouts[:0]
	}
	c.clips = c.clips[:0]
	c.idStack = c.idStack[:0]
	c.popupScope = idNone
	c.prevScopes = c.prevScopes[:0]
	c.activeGrid = nil
	c.in = snap
	c.delta = delta
	c.frame++
	c.inFrame = true
	c.capture.beginFrame(snap)
}

// EndFrame closes the frame: it verifies the container and clip stacks
// returned to empty (force-clearing them if not, so one frame's
// authoring bug degrades only that frame), then resolves this frame's
// press to a single winner.
func (c *Context) EndFrame() {
	if !c.inFrame {
		c.reportf("ui.EndFrame", kindLayout, "EndFrame without BeginFrame")
		return
	}
	if n := len(c.layouts); n != 0 {
		c.reportf("ui.EndFrame", kindLayout, "%d container(s) left open at frame end", n)
		c.layouts = c.layouts[:0]
	}
	if n := len(c.clips); n != 0 {
		c.reportf("ui.EndFrame", kindLayout, "%d clip rect(s) left pushed at frame end", n)
		for i := 0; i < n; i++ {
			if c.canvas != nil {
				c.canvas.PopClip()
			}
		}
		c.clips = c.clips[:0]
	}
	if len(c.idStack) != 0 {
		c.reportf("ui.EndFrame", kindState, "%d id scope(s) left pushed at frame end", len(c.idStack))
		c.idStack = c.idStack[:0]
	}
	before := c.capture.pressSerial
	c.capture.resolve(c.in)
	if c.capture.pressSerial != before {
		// Focus follows the press: a claimed press focuses its winner,
		// a press on empty space blurs.
		switch {
		case c.capture.pressWinner != idNone:
			c.focused = c.capture.pressWinner
		case c.capture.pressed && c.capture.active != idNone:
			c.focused = c.capture.active
		default:
			c.focused = idNone
		}
	}
	c.inFrame = false
}

// Frame returns the current frame number.
func (c *Context) Frame() uint64 {
	return c.frame
}

// Input returns the frame's input snapshot.
func (c *Context) Input() *input.Snapshot {
	return c.in
}

// ActiveWidget returns the widget holding the current press, if any.
func (c *Context) ActiveWidget() ID {
	return c.capture.active
}

// FocusedWidget returns the widget with keyboard focus, if any.
func (c *Context) FocusedWidget() ID {
	return c.focused
}

// SetFocus moves keyboard focus to the given widget.
func (c *Context) SetFocus(id ID) {
	c.focused = id
}

// ClearFocus removes keyboard focus.
func (c *Context) ClearFocus() {
	c.focused = idNone
}

// PushClipRect intersects the clip region with r until the matching
// PopClipRect. The effective clip is the intersection of every pushed
// rect; widgets are culled and lose interactivity outside it.
func (c *Context) PushClipRect(r geometry.Rect) {
	effective := r.Intersect(c.CurrentClip())
	c.clips = append(c.clips, effective)
	if c.canvas != nil {
		c.canvas.PushClip(effective)
	}
}

// PopClipRect restores the clip active before the matching push.
func (c *Context) PopClipRect() {
	if len(c.clips) == 0 {
		c.reportf("ui.PopClipRect", kindLayout, "PopClipRect without matching PushClipRect")
		return
	}
	c.clips = c.clips[:len(c.clips)-1]
	if c.canvas != nil {
		c.canvas.PopClip()
	}
}

// CurrentClip returns the effective clip rect, or an unbounded rect
// when nothing is pushed.
func (c *Context) CurrentClip() geometry.Rect {
	if n := len(c.clips); n > 0 {
		return c.clips[n-1]
	}
	return geometry.Unbounded()
}

// IsVisible reports whether any part of bounds lies inside the current
// clip. Invisible elements still advance the layout cursor but skip
// drawing and interaction.
func (c *Context) IsVisible(bounds geometry.Rect) bool {
	return bounds.Overlaps(c.CurrentClip())
}

// hover runs the hover step of the widget protocol: containment of the
// pointer within bounds intersected with the current clip. A hovered
// widget becomes the frame's potential target, last writer winning.
func (c *Context) hover(id ID, bounds geometry.Rect) bool {
	if c.in == nil {
		return false
	}
	if !bounds.Intersect(c.CurrentClip()).Contains(c.in.Pointer) {
		return false
	}
	c.capture.setPotentialTarget(id)
	return true
}

// visual resolves the named style pack for the given interaction state
// and applies the style stack's token overrides.
func (c *Context) visual(pack string, st style.State) style.Visual {
	p, ok := c.theme.Pack(pack)
	if !ok {
		c.reportf("ui.visual", kindStyle, "style pack %q not in theme", pack)
		return c.Styles.Apply(style.Visual{})
	}
	return c.Styles.Apply(p.Resolve(st))
}

// Drawing helpers: all draws funnel through these so a missing canvas
// degrades to a layout-only frame.

func (c *Context) fillRect(r geometry.Rect, fill style.Color, radius float64) {
	if c.canvas != nil && c.IsVisible(r) {
		c.canvas.FillRect(r, fill, radius)
	}
}

func (c *Context) strokeRect(r geometry.Rect, border style.Color, width, radius float64) {
	if c.canvas != nil && width > 0 && c.IsVisible(r) {
		c.canvas.StrokeRect(r, border, width, radius)
	}
}

func (c *Context) line(from, to geometry.Offset, color style.Color, width float64) {
	if c.canvas != nil {
		c.canvas.Line(from, to, color, width)
	}
}

func (c *Context) drawText(s string, bounds geometry.Rect, color style.Color) {
	if c.canvas != nil && s != "" && c.IsVisible(bounds) {
		c.canvas.DrawText(s, bounds, color)
	}
}

func (c *Context) reportf(op string, kind errors.ErrorKind, format string, args ...any) {
	if c.handler != nil {
		c.handler.HandleError(errors.Newf(op, kind, format, args...))
	}
}

func (c *Context) report(op string, kind errors.ErrorKind, err error) {
	if c.handler != nil {
		c.handler.HandleError(errors.New(op, kind, err))
	}
}
