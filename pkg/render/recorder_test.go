package render

import (
	"testing"

	"github.com/go-ember/ember/pkg/geometry"
	"github.com/go-ember/ember/pkg/style"
)

func TestRecorderRecordsInOrder(t *testing.T) {
	var rec Recorder

	rect := geometry.RectFromLTWH(0, 0, 100, 40)
	rec.FillRect(rect, style.RGB(30, 30, 30), 4)
	rec.StrokeRect(rect, style.RGB(80, 80, 80), 1, 4)
	rec.DrawText("OK", rect, style.RGB(240, 240, 240))

	ops := rec.Ops()
	if len(ops) != 3 {
		t.Fatalf("got %d ops, want 3", len(ops))
	}
	wantNames := []string{"fillRect", "strokeRect", "text"}
	for i, name := range wantNames {
		if ops[i].Name != name {
			t.Errorf("ops[%d].Name = %q, want %q", i, ops[i].Name, name)
		}
	}
	if ops[2].Text != "OK" {
		t.Errorf("text op carries %q, want %q", ops[2].Text, "OK")
	}
}

func TestRecorderClipDepth(t *testing.T) {
	var rec Recorder

	rec.PushClip(geometry.RectFromLTWH(0, 0, 10, 10))
	rec.PushClip(geometry.RectFromLTWH(2, 2, 4, 4))
	if rec.ClipDepth() != 2 {
		t.Fatalf("depth = %d, want 2", rec.ClipDepth())
	}
	rec.PopClip()
	rec.PopClip()
	if rec.ClipDepth() != 0 {
		t.Fatalf("depth = %d, want 0", rec.ClipDepth())
	}
}

func TestRecorderReset(t *testing.T) {
	var rec Recorder
	rec.FillRect(geometry.RectFromLTWH(0, 0, 1, 1), 0, 0)
	rec.PushClip(geometry.RectFromLTWH(0, 0, 1, 1))
	rec.Reset()
	if len(rec.Ops()) != 0 || rec.ClipDepth() != 0 {
		t.Fatal("reset should drop ops and clip depth")
	}
}

func TestTextOpsFilter(t *testing.T) {
	var rec Recorder
	r := geometry.RectFromLTWH(0, 0, 10, 10)
	rec.FillRect(r, 0, 0)
	rec.DrawText("a", r, 0)
	rec.DrawText("b", r, 0)

	texts := rec.TextOps()
	if len(texts) != 2 || texts[0].Text != "a" || texts[1].Text != "b" {
		t.Fatalf("TextOps = %v", texts)
	}
}
