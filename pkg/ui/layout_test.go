package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-ember/ember/pkg/geometry"
)

func TestRowAccumulatesWidthAndMaxHeight(t *testing.T) {
	f := newFixture(t)
	var got geometry.Size
	f.frame(func() {
		f.ctx.BeginColumn(ContainerOptions{})
		f.ctx.BeginRow(ContainerOptions{Gap: 4})
		f.ctx.Spacer(geometry.Size{Width: 30, Height: 10})
		f.ctx.Spacer(geometry.Size{Width: 20, Height: 25})
		f.ctx.Spacer(geometry.Size{Width: 10, Height: 5})
		f.ctx.EndRow()
		got = f.ctx.layouts[0].content
		f.ctx.EndColumn()
	})
	f.noErrors()

	// 30 + 4 + 20 + 4 + 10 wide, tallest child high.
	want := geometry.Size{Width: 68, Height: 25}
	if got != want {
		t.Fatalf("row folded %v into parent, want %v", got, want)
	}
}

func TestNoGapBeforeFirstChild(t *testing.T) {
	f := newFixture(t)
	var first, second geometry.Offset
	f.frame(func() {
		f.ctx.BeginColumn(ContainerOptions{Gap: 8, At: geometry.Offset{X: 5, Y: 5}})
		first = f.ctx.ApplyLayout(geometry.Offset{})
		f.ctx.Advance(geometry.Size{Width: 10, Height: 20})
		second = f.ctx.ApplyLayout(geometry.Offset{})
		f.ctx.Advance(geometry.Size{Width: 10, Height: 20})
		f.ctx.EndColumn()
	})
	f.noErrors()

	if first != (geometry.Offset{X: 5, Y: 5}) {
		t.Errorf("first child at %v, want 5,5", first)
	}
	if second != (geometry.Offset{X: 5, Y: 33}) {
		t.Errorf("second child at %v, want 5,33", second)
	}
}

func TestNestedContainerFoldsAsOneChild(t *testing.T) {
	f := newFixture(t)
	var got geometry.Size
	f.frame(func() {
		f.ctx.BeginRow(ContainerOptions{Gap: 10})
		f.ctx.Spacer(geometry.Size{Width: 40, Height: 10})
		f.ctx.BeginColumn(ContainerOptions{Gap: 2})
		f.ctx.Spacer(geometry.Size{Width: 15, Height: 10})
		f.ctx.Spacer(geometry.Size{Width: 25, Height: 10})
		f.ctx.EndColumn()
		got = f.ctx.layouts[0].content
		f.ctx.EndRow()
	})
	f.noErrors()

	// The column folds once: 40 + gap + 25 wide. Its grandchildren
	// must not be re-counted by the row.
	want := geometry.Size{Width: 75, Height: 22}
	if got != want {
		t.Fatalf("row content %v, want %v", got, want)
	}
}

func TestGridWrapsWithPerRowHeights(t *testing.T) {
	f := newFixture(t)
	heights := []float64{10, 30, 20, 15, 15, 40, 25}
	var positions []geometry.Offset
	var got geometry.Size
	f.frame(func() {
		f.ctx.BeginColumn(ContainerOptions{})
		f.ctx.BeginGrid(ContainerOptions{Gap: 5, Columns: 3})
		for _, h := range heights {
			positions = append(positions, f.ctx.ApplyLayout(geometry.Offset{}))
			f.ctx.Advance(geometry.Size{Width: 50, Height: h})
		}
		f.ctx.EndGrid()
		got = f.ctx.layouts[0].content
		f.ctx.EndColumn()
	})
	f.noErrors()

	// 7 children in 3 columns: rows of 3, 3, 1, each row as tall as
	// its tallest cell (30, 40, 25).
	want := []geometry.Offset{
		{X: 0, Y: 0}, {X: 55, Y: 0}, {X: 110, Y: 0},
		{X: 0, Y: 35}, {X: 55, Y: 35}, {X: 110, Y: 35},
		{X: 0, Y: 80},
	}
	if diff := cmp.Diff(want, positions); diff != "" {
		t.Errorf("cell positions mismatch (-want +got):\n%s", diff)
	}
	// Width: full rows span 3*50 + 2*5. Height: 30 + 5 + 40 + 5 + 25.
	wantSize := geometry.Size{Width: 160, Height: 105}
	if got != wantSize {
		t.Fatalf("grid content %v, want %v", got, wantSize)
	}
}

func TestGridLastRowHeightReflectsLateTallCell(t *testing.T) {
	f := newFixture(t)
	var got geometry.Size
	f.frame(func() {
		f.ctx.BeginColumn(ContainerOptions{})
		f.ctx.BeginGrid(ContainerOptions{Columns: 2})
		f.ctx.Spacer(geometry.Size{Width: 10, Height: 5})
		f.ctx.Spacer(geometry.Size{Width: 10, Height: 50})
		f.ctx.EndGrid()
		got = f.ctx.layouts[0].content
		f.ctx.EndColumn()
	})
	f.noErrors()
	if got.Height != 50 {
		t.Fatalf("row height %g, want 50 after taller second cell", got.Height)
	}
}

func TestMismatchedEndIsReportedNoOp(t *testing.T) {
	f := newFixture(t)
	f.frame(func() {
		f.ctx.BeginRow(ContainerOptions{})
		f.ctx.EndColumn()
		if len(f.ctx.layouts) != 1 {
			t.Fatalf("mismatched EndColumn changed the stack: %d frames", len(f.ctx.layouts))
		}
		f.ctx.EndRow()
	})
	if len(f.log.errs) == 0 {
		t.Fatal("mismatched EndColumn was not reported")
	}
}

func TestUnclosedContainerRecoversAtEndFrame(t *testing.T) {
	f := newFixture(t)
	f.frame(func() {
		f.ctx.BeginRow(ContainerOptions{})
	})
	if len(f.log.errs) == 0 {
		t.Fatal("leaked container was not reported")
	}
	if len(f.ctx.layouts) != 0 {
		t.Fatalf("container stack not cleared: %d left", len(f.ctx.layouts))
	}
	// The next frame must start clean.
	f.log.errs = nil
	f.frame(func() {
		f.ctx.BeginRow(ContainerOptions{})
		f.ctx.EndRow()
	})
	f.noErrors()
}
