package ui

import (
	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

const (
	treeIndent = 16.0
	treeArrowW = 14.0
)

// treeState persists between frames of one tree node.
type treeState struct {
	expanded bool
}

// TreeOptions configures a TreeNode call.
type TreeOptions struct {
	// At positions the node when it is not inside a container.
	At geometry.Offset
	// DefaultOpen expands the node on first use.
	DefaultOpen bool
	// Selected renders the active variants, for selection state kept
	// in application data.
	Selected bool
	// Layer overrides the capture layer; 0 means the ambient layer.
	Layer int
}

// TreeNode draws one collapsible tree row and reports whether it is
// expanded. When it returns true the caller emits the children and
// must close with TreePop; children indent and their ids are scoped by
// the node's key, so sibling subtrees can reuse child keys:
//
//	if ctx.TreeNode("fs", "filesystem", ui.TreeOptions{}) {
//	    ctx.Label("etc", ui.LabelOptions{})
//	    ctx.TreePop()
//	}
func (c *Context) TreeNode(key, label string, opts TreeOptions) bool {
	id := c.WidgetID(key)
	ts := c.textSize(label)
	size := geometry.Size{Width: treeArrowW + ts.Width, Height: ts.Height + 2}
	pos := c.ApplyLayout(opts.At)
	bounds := geometry.RectFromOffsetSize(pos, size)
	c.Advance(size)

	st, err := widgetState(c, id, "tree", func() *treeState {
		return &treeState{expanded: opts.DefaultOpen}
	})
	if err != nil {
		c.report("ui.TreeNode", kindState, err)
		return false
	}

	hovered := c.hover(id, bounds)
	if hovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(id) {
		c.capture.request(id, c.effectiveLayer(opts.Layer), input.ButtonPrimary, c.popupScope)
	}
	held := c.capture.active == id
	if held && c.in.ButtonReleased(input.ButtonPrimary) {
		if hovered {
			st.expanded = !st.expanded
		}
		c.capture.release()
		held = false
	}

	v := c.visual(PackTree, style.State{
		Pressed: held && hovered,
		Hovered: hovered,
		Active:  opts.Selected,
	})
	if v.Fill.Alpha() != 0 {
		c.fillRect(bounds, v.Fill, v.Rounding)
	}
	arrow := "▸"
	if st.expanded {
		arrow = "▾"
	}
	c.drawText(arrow, geometry.RectFromLTWH(pos.X, pos.Y+1, treeArrowW, ts.Height), v.Text)
	c.drawText(label, geometry.RectFromLTWH(pos.X+treeArrowW, pos.Y+1, ts.Width, ts.Height), v.Text)

	if st.expanded {
		c.PushID(key)
		cursor := c.ApplyLayout(geometry.Offset{X: pos.X, Y: bounds.Bottom})
		c.beginAt(containerColumn, idNone, geometry.Offset{X: cursor.X + treeIndent, Y: cursor.Y}, ContainerOptions{Gap: 2})
	}
	return st.expanded
}

// TreePop closes an expanded TreeNode's child scope.
func (c *Context) TreePop() {
	f, ok := c.end("ui.TreePop", containerColumn)
	if ok {
		c.Advance(geometry.Size{Width: f.content.Width + treeIndent, Height: f.content.Height})
	}
	c.PopID()
}
