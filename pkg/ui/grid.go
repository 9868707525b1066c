package ui

import (
	"strconv"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/style"
)

const (
	gridDividerW    = 5.0
	gridMinColWidth = 24.0
)

// DataGridColumn describes one column of a data grid. Width is the
// initial width; the persisted, user-adjusted width takes over after
// the first frame.
type DataGridColumn struct {
	Title string
	Width float64
}

// DataGridOptions configures a BeginDataGrid call.
type DataGridOptions struct {
	// At positions the grid when it is not inside a container.
	At geometry.Offset
	// BodyHeight is the scrolling body viewport height.
	BodyHeight float64
	// RowHeight overrides the default row height when non-zero.
	RowHeight float64
	// MinColWidth overrides the minimum draggable column width.
	MinColWidth float64
}

// dataGridState persists between frames of one data grid.
type dataGridState struct {
	widths []float64
	// divider drag anchors, valid while a divider holds the press.
	dragOrigin float64
	dragWidth  float64
}

// gridPass is the within-frame cursor of the open data grid.
type gridPass struct {
	key       string
	state     *dataGridState
	rowHeight float64
	row       int
}

// BeginDataGrid opens a table with a fixed header row and a scrolling
// body. It draws the header, including draggable column dividers whose
// widths persist per grid, and reports whether the body is open; when
// it returns true the caller emits rows with DataGridRow and must
// close with EndDataGrid.
func (c *Context) BeginDataGrid(key string, cols []DataGridColumn, opts DataGridOptions) bool {
	if c.activeGrid != nil {
		c.reportf("ui.BeginDataGrid", kindLayout, "data grids do not nest")
		return false
	}
	id := c.WidgetID(key)
	st, err := widgetState(c, id, "dataGrid", func() *dataGridState {
		ws := make([]float64, len(cols))
		for i, col := range cols {
			ws[i] = col.Width
		}
		return &dataGridState{widths: ws}
	})
	if err != nil {
		c.report("ui.BeginDataGrid", kindState, err)
		return false
	}
	// Columns added since the widths were first persisted get their
	// declared width.
	for len(st.widths) < len(cols) {
		st.widths = append(st.widths, cols[len(st.widths)].Width)
	}

	minW := opts.MinColWidth
	if minW <= 0 {
		minW = gridMinColWidth
	}
	rowH := opts.RowHeight
	if rowH <= 0 {
		rowH = c.lineHeight() + 2*padY
	}

	pos := c.ApplyLayout(opts.At)
	headerH := rowH
	totalW := gridTotalWidth(st.widths, len(cols))

	hv := c.visual(PackGridHeader, style.State{})
	x := pos.X
	for i := 0; i < len(cols); i++ {
		cell := geometry.RectFromLTWH(x, pos.Y, st.widths[i], headerH)
		c.fillRect(cell, hv.Fill, 0)
		c.strokeRect(cell, hv.Border, hv.BorderWidth, 0)
		c.drawText(cols[i].Title, geometry.RectFromLTWH(x+padX, pos.Y+padY, st.widths[i]-2*padX, headerH-2*padY), hv.Text)
		x += st.widths[i]

		if i == len(cols)-1 {
			break
		}
		divID := c.WidgetID(key + "/div/" + strconv.Itoa(i))
		div := geometry.RectFromLTWH(x-gridDividerW/2, pos.Y, gridDividerW, headerH)
		divHovered := c.hover(divID, div)
		if divHovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(divID) {
			c.capture.captureImmediately(divID, input.ButtonPrimary, c.popupScope)
			st.dragOrigin = c.pointer().X
			st.dragWidth = st.widths[i]
		}
		if c.capture.active == divID {
			w := st.dragWidth + (c.pointer().X - st.dragOrigin)
			if w < minW {
				w = minW
			}
			st.widths[i] = w
			if c.in.ButtonReleased(input.ButtonPrimary) {
				c.capture.release()
			}
		}
		dv := c.visual(PackPanelHandle, style.State{Hovered: divHovered, Pressed: c.capture.active == divID})
		c.fillRect(div, dv.Fill, dv.Rounding)
	}

	c.Advance(geometry.Size{Width: totalW, Height: headerH})

	c.PushID(key)
	c.BeginScroll(key+"/body", geometry.Size{Width: totalW, Height: opts.BodyHeight},
		ScrollOptions{At: geometry.Offset{X: pos.X, Y: pos.Y + headerH}})
	c.activeGrid = &gridPass{key: key, state: st, rowHeight: rowH}
	return true
}

// DataGridRow draws one body row, one cell text per column, and
// reports whether the row was clicked this frame. Selected rows render
// the active variants.
func (c *Context) DataGridRow(cells []string, selected bool) bool {
	g := c.activeGrid
	if g == nil {
		c.reportf("ui.DataGridRow", kindLayout, "DataGridRow outside BeginDataGrid")
		return false
	}
	id := c.WidgetID("row/" + strconv.Itoa(g.row))
	g.row++

	widths := g.state.widths
	totalW := gridTotalWidth(widths, len(widths))
	size := geometry.Size{Width: totalW, Height: g.rowHeight}
	pos := c.ApplyLayout(geometry.Offset{})
	bounds := geometry.RectFromOffsetSize(pos, size)
	defer c.Advance(size)

	hovered := c.hover(id, bounds)
	if hovered && c.in.ButtonPressed(input.ButtonPrimary) && c.capture.canAttemptCapture(id) {
		c.capture.request(id, c.effectiveLayer(0), input.ButtonPrimary, c.popupScope)
	}
	clicked := false
	if c.capture.active == id && c.in.ButtonReleased(input.ButtonPrimary) {
		clicked = hovered
		c.capture.release()
	}

	v := c.visual(PackGridCell, style.State{Hovered: hovered, Active: selected})
	c.fillRect(bounds, v.Fill, 0)
	x := pos.X
	for i := 0; i < len(widths); i++ {
		cell := geometry.RectFromLTWH(x, pos.Y, widths[i], g.rowHeight)
		c.strokeRect(cell, v.Border, v.BorderWidth, 0)
		if i < len(cells) {
			c.drawText(cells[i], geometry.RectFromLTWH(x+padX, pos.Y+padY, widths[i]-2*padX, g.rowHeight-2*padY), v.Text)
		}
		x += widths[i]
	}
	return clicked
}

// EndDataGrid closes the grid body.
func (c *Context) EndDataGrid() {
	if c.activeGrid == nil {
		c.reportf("ui.EndDataGrid", kindLayout, "EndDataGrid outside BeginDataGrid")
		return
	}
	c.activeGrid = nil
	c.EndScroll()
	c.PopID()
}

func gridTotalWidth(widths []float64, n int) float64 {
	t := 0.0
	for i := 0; i < n && i < len(widths); i++ {
		t += widths[i]
	}
	return t
}
