package ui

import (
	stderrors "errors"
	"testing"

	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/geometry"
)

func TestWidgetStatePersistsAcrossFrames(t *testing.T) {
	f := newFixture(t)
	id := f.ctx.WidgetID("counter")
	type counter struct{ n int }

	for i := 1; i <= 3; i++ {
		f.frame(func() {
			st, err := widgetState(f.ctx, id, "counter", func() *counter { return &counter{} })
			if err != nil {
				t.Fatal(err)
			}
			st.n++
			if st.n != i {
				t.Fatalf("frame %d sees count %d", i, st.n)
			}
		})
	}
	if f.ctx.store.Len() != 1 {
		t.Fatalf("store holds %d entries, want 1", f.ctx.store.Len())
	}
}

func TestWidgetStateKindConflictIsHardError(t *testing.T) {
	f := newFixture(t)
	id := f.ctx.WidgetID("shared")
	f.frame(func() {
		if _, err := widgetState(f.ctx, id, "slider", func() *sliderState { return &sliderState{} }); err != nil {
			t.Fatal(err)
		}
		_, err := widgetState(f.ctx, id, "textInput", func() *inputState { return &inputState{} })
		var conflict *errors.StateConflictError
		if !stderrors.As(err, &conflict) {
			t.Fatalf("kind mismatch returned %v, want StateConflictError", err)
		}
		if conflict.Registered != "slider" || conflict.Requested != "textInput" {
			t.Fatalf("conflict reports %q vs %q", conflict.Registered, conflict.Requested)
		}
	})
}

func TestWidgetKindConflictDoesNotRebind(t *testing.T) {
	f := newFixture(t)
	// A slider and a text input accidentally sharing one key: the
	// second widget must refuse, report, and leave the slider's state
	// untouched.
	value := 5.0
	f.frame(func() {
		f.ctx.SliderH("shared", &value, 0, 10, 0, sliderOpts())
		got, _ := f.ctx.TextInput("shared", "text", TextInputOptions{At: geometry.Offset{X: 0, Y: 40}})
		if got != "text" {
			t.Fatalf("conflicted text input edited its value: %q", got)
		}
	})
	if len(f.log.errs) == 0 {
		t.Fatal("kind conflict was not reported")
	}
	if f.log.errs[0].Kind != errors.KindState {
		t.Fatalf("conflict reported as %v, want state kind", f.log.errs[0].Kind)
	}
}

func TestPushIDScopesWidgetIDs(t *testing.T) {
	f := newFixture(t)
	var plain, scoped ID
	f.frame(func() {
		plain = f.ctx.WidgetID("item")
		f.ctx.PushID("row0")
		scoped = f.ctx.WidgetID("item")
		f.ctx.PopID()
	})
	if plain == scoped {
		t.Fatal("PushID did not change the derived id")
	}
	// The same scope yields the same id next frame.
	var again ID
	f.frame(func() {
		f.ctx.PushID("row0")
		again = f.ctx.WidgetID("item")
		f.ctx.PopID()
	})
	if again != scoped {
		t.Fatal("scoped id not stable across frames")
	}
	f.noErrors()
}

func TestPopIDWithoutPushReports(t *testing.T) {
	f := newFixture(t)
	f.frame(func() {
		f.ctx.PopID()
	})
	if len(f.log.errs) == 0 {
		t.Fatal("unbalanced PopID was not reported")
	}
}
