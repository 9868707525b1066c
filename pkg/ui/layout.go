package ui

import "github.com/go-ember/ember/pkg/geometry"

// Axis names a layout direction.
type Axis int

const (
	// AxisHorizontal lays children out left to right.
	AxisHorizontal Axis = iota
	// AxisVertical lays children out top to bottom.
	AxisVertical
)

type containerKind int

const (
	containerRow containerKind = iota
	containerColumn
	containerGrid
	containerScroll
	containerPanel
	containerPopup
)

func (k containerKind) String() string {
	switch k {
	case containerRow:
		return "row"
	case containerColumn:
		return "column"
	case containerGrid:
		return "grid"
	case containerScroll:
		return "scroll"
	case containerPanel:
		return "panel"
	case containerPopup:
		return "popup"
	default:
		return "unknown"
	}
}

// container is one frame of the container stack. It accumulates the
// extents of its direct children and produces their draw positions; at
// End its total occupied size folds into the parent as if the whole
// container were a single widget.
type container struct {
	kind     containerKind
	id       ID
	start    geometry.Offset
	cursor   geometry.Offset
	gap      float64
	content  geometry.Size
	children int

	// grid
	cols      int
	col       int
	rowHeight float64

	// scroll / panel
	viewport geometry.Size
	extent   float64
	cross    float64
	axis     Axis
}

// ContainerOptions configures a Begin* call.
type ContainerOptions struct {
	// Gap is the spacing between consecutive children. No gap is
	// applied before the first child.
	Gap float64
	// At positions the container when it is not nested inside another
	// container; nested containers take their position from the
	// parent's cursor instead.
	At geometry.Offset
	// Columns is the fixed column count of a grid.
	Columns int
}

// ApplyLayout returns the position for the next element: the active
// container's cursor (advanced past any pending gap or grid wrap) when
// nested, else the caller-supplied default. Widgets call it once,
// before drawing, and pair it with Advance.
func (c *Context) ApplyLayout(defaultPos geometry.Offset) geometry.Offset {
	n := len(c.layouts)
	if n == 0 {
		return defaultPos
	}
	top := &c.layouts[n-1]
	top.prepareChild()
	return top.cursor
}

// Advance folds an element's footprint into the active container and
// moves its cursor. Outside any container it is a no-op.
func (c *Context) Advance(size geometry.Size) {
	n := len(c.layouts)
	if n == 0 {
		return
	}
	c.layouts[n-1].advance(size)
}

// prepareChild moves the cursor into position for the next child:
// inter-child gap for rows and columns, gap or row wrap for grids.
func (f *container) prepareChild() {
	switch f.kind {
	case containerRow:
		if f.children > 0 {
			f.cursor.X += f.gap
		}
	case containerColumn, containerScroll, containerPanel, containerPopup:
		if f.children > 0 {
			f.cursor.Y += f.gap
		}
	case containerGrid:
		if f.col == f.cols {
			f.cursor.X = f.start.X
			f.cursor.Y += f.rowHeight + f.gap
			f.col = 0
			f.rowHeight = 0
		} else if f.col > 0 {
			f.cursor.X += f.gap
		}
	}
}

// advance folds one child's size. The running content size is kept
// consistent after every child, so a grid's final (possibly partial)
// row is accounted for as soon as its tallest cell is known.
func (f *container) advance(size geometry.Size) {
	switch f.kind {
	case containerRow:
		f.cursor.X += size.Width
		f.content.Width = f.cursor.X - f.start.X
		if size.Height > f.content.Height {
			f.content.Height = size.Height
		}
	case containerColumn, containerScroll, containerPanel, containerPopup:
		f.cursor.Y += size.Height
		f.content.Height = f.cursor.Y - f.start.Y
		if size.Width > f.content.Width {
			f.content.Width = size.Width
		}
	case containerGrid:
		if size.Height > f.rowHeight {
			f.rowHeight = size.Height
		}
		f.cursor.X += size.Width
		if w := f.cursor.X - f.start.X; w > f.content.Width {
			f.content.Width = w
		}
		f.content.Height = f.cursor.Y - f.start.Y + f.rowHeight
		f.col++
	}
	f.children++
}

func (c *Context) begin(kind containerKind, id ID, opts ContainerOptions) *container {
	return c.beginAt(kind, id, c.ApplyLayout(opts.At), opts)
}

// beginAt opens a container at an already-resolved position, for
// wrappers that consumed the parent cursor themselves.
func (c *Context) beginAt(kind containerKind, id ID, start geometry.Offset, opts ContainerOptions) *container {
	c.layouts = append(c.layouts, container{
		kind:   kind,
		id:     id,
		start:  start,
		cursor: start,
		gap:    opts.Gap,
		cols:   opts.Columns,
	})
	return &c.layouts[len(c.layouts)-1]
}

// end pops the container of the expected kind and folds its extents
// into the new stack top. A mismatch is a reported no-op; EndFrame
// force-clears whatever remains.
func (c *Context) end(op string, kind containerKind) (container, bool) {
	n := len(c.layouts)
	if n == 0 {
		c.reportf(op, kindLayout, "%s without matching Begin", op)
		return container{}, false
	}
	top := c.layouts[n-1]
	if top.kind != kind {
		c.reportf(op, kindLayout, "%s closes a %s container", op, top.kind)
		return container{}, false
	}
	c.layouts = c.layouts[:n-1]
	return top, true
}

// BeginRow opens a horizontal container: children advance by their
// width plus the gap, and the row's own height is its tallest child.
func (c *Context) BeginRow(opts ContainerOptions) {
	c.begin(containerRow, idNone, opts)
}

// EndRow closes the innermost row.
func (c *Context) EndRow() {
	if f, ok := c.end("ui.EndRow", containerRow); ok {
		c.Advance(f.content)
	}
}

// BeginColumn opens a vertical container, symmetric to BeginRow.
func (c *Context) BeginColumn(opts ContainerOptions) {
	c.begin(containerColumn, idNone, opts)
}

// EndColumn closes the innermost column.
func (c *Context) EndColumn() {
	if f, ok := c.end("ui.EndColumn", containerColumn); ok {
		c.Advance(f.content)
	}
}

// BeginGrid opens a grid that wraps to a new row after opts.Columns
// children. Each row is as tall as its tallest cell; the final row may
// be partial.
func (c *Context) BeginGrid(opts ContainerOptions) {
	if opts.Columns < 1 {
		c.reportf("ui.BeginGrid", kindLayout, "grid needs at least 1 column, got %d", opts.Columns)
		opts.Columns = 1
	}
	c.begin(containerGrid, idNone, opts)
}

// EndGrid closes the innermost grid.
func (c *Context) EndGrid() {
	if f, ok := c.end("ui.EndGrid", containerGrid); ok {
		c.Advance(f.content)
	}
}
