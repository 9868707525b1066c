package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	underlying := stderrors.New("stack not empty")
	err := New("ui.EndFrame", KindLayout, underlying)

	msg := err.Error()
	if !strings.Contains(msg, "ui.EndFrame") {
		t.Errorf("message should contain op, got %q", msg)
	}
	if !strings.Contains(msg, "[layout]") {
		t.Errorf("message should contain kind, got %q", msg)
	}
	if !stderrors.Is(err, underlying) {
		t.Error("expected errors.Is to find the underlying error")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("ui.EndRow", KindLayout, "want kind %s, have %s", "row", "column")
	if !strings.Contains(err.Error(), `want kind row, have column`) {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Kind != KindLayout {
		t.Errorf("kind = %v, want KindLayout", err.Kind)
	}
	if err.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown: "unknown",
		KindLayout:  "layout",
		KindState:   "state",
		KindStyle:   "style",
		KindInput:   "input",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestStateConflictError(t *testing.T) {
	err := &StateConflictError{ID: 0xbeef, Registered: "button", Requested: "slider"}
	msg := err.Error()
	for _, want := range []string{"0xbeef", `"button"`, `"slider"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %s", msg, want)
		}
	}

	var conflict *StateConflictError
	wrapped := New("ui.Slider", KindState, err)
	if !stderrors.As(wrapped, &conflict) {
		t.Error("expected errors.As to unwrap StateConflictError")
	}
}
