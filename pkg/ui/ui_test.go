package ui

import (
	"testing"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/render"
	"github.com/go-ember/ember/pkg/text"
)

// errorLog records every reported usage error for assertions.
type errorLog struct {
	errs []*errors.Error
}

func (l *errorLog) HandleError(e *errors.Error) {
	l.errs = append(l.errs, e)
}

// fixture drives a Context frame by frame from a synthetic event
// stream, the way a host loop would.
type fixture struct {
	t   *testing.T
	ctx *Context
	col *input.Collector
	rec *render.Recorder
	log *errorLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := &render.Recorder{}
	log := &errorLog{}
	ctx := New(Options{
		Canvas:   rec,
		Measurer: text.Fixed{Advance: 10, Height: 16},
		Errors:   log,
	})
	return &fixture{t: t, ctx: ctx, col: input.NewCollector(), rec: rec, log: log}
}

// frame runs one full frame: snapshot, BeginFrame, body, EndFrame.
func (f *fixture) frame(body func()) {
	f.t.Helper()
	f.rec.Reset()
	f.ctx.BeginFrame(f.col.Snapshot(), 1.0/60)
	body()
	f.ctx.EndFrame()
}

// click presses and releases the primary button at (x, y) across two
// frames, running body for every frame involved.
func (f *fixture) click(x, y float64, body func()) {
	f.t.Helper()
	f.col.PointerMoved(x, y)
	f.col.ButtonDown(input.ButtonPrimary)
	f.frame(body)
	f.col.ButtonUp(input.ButtonPrimary)
	f.frame(body)
}

func (f *fixture) noErrors() {
	f.t.Helper()
	for _, e := range f.log.errs {
		f.t.Errorf("unexpected error: %v", e)
	}
}
