package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/style"
)

// LabelOptions configures a Label call.
type LabelOptions struct {
	// At positions the label when it is not inside a container.
	At geometry.Offset
	// Disabled renders the dimmed variant.
	Disabled bool
	// Pack overrides the style pack name.
	Pack string
}

// Label draws static text. Labels never interact; they only occupy
// layout space and draw.
func (c *Context) Label(text string, opts LabelOptions) {
	size := c.textSize(text)
	pos := c.ApplyLayout(opts.At)
	bounds := geometry.RectFromOffsetSize(pos, size)
	defer c.Advance(size)

	pack := opts.Pack
	if pack == "" {
		pack = PackLabel
	}
	v := c.visual(pack, style.State{Disabled: opts.Disabled})
	c.drawText(text, bounds, v.Text)
}

// Spacer occupies size in the current container without drawing.
func (c *Context) Spacer(size geometry.Size) {
	c.ApplyLayout(geometry.Offset{})
	c.Advance(size)
}
