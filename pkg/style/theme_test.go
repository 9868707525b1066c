package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const themeDoc = `
packs:
  button:
    normal:
      fill: "#333333"
      text: "#EEEEEE"
      rounding: 4
      borderWidth: 1
    hover:
      fill: "#3A3A3A"
      text: "#EEEEEE"
    disabled:
      fill: "#202020"
      text: "#555555"
  slider:
    normal:
      fill: "#444444"
`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(themeDoc))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	button, ok := theme.Pack("button")
	if !ok {
		t.Fatal("button pack missing")
	}

	want := Visual{Fill: 0xFF333333, Text: 0xFFEEEEEE, Rounding: 4, BorderWidth: 1}
	if diff := cmp.Diff(want, button.Variant(VariantNormal)); diff != "" {
		t.Errorf("normal visual mismatch (-want +got):\n%s", diff)
	}

	if got := button.Variant(VariantHover).Fill; got != 0xFF3A3A3A {
		t.Errorf("hover fill = %#x", got)
	}
	// Pressed was not defined; it should fall back to normal.
	if got := button.Resolve(State{Pressed: true}).Fill; got != 0xFF333333 {
		t.Errorf("pressed fallback fill = %#x, want normal", got)
	}

	if _, ok := theme.Pack("slider"); !ok {
		t.Error("slider pack missing")
	}
}

func TestParseThemeRejectsUnknownVariant(t *testing.T) {
	_, err := ParseTheme([]byte("packs:\n  button:\n    shiny:\n      fill: \"#000000\"\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Fatalf("expected unknown variant error, got %v", err)
	}
}

func TestParseThemeRejectsBadColor(t *testing.T) {
	_, err := ParseTheme([]byte("packs:\n  button:\n    normal:\n      fill: \"333\"\n"))
	if err == nil {
		t.Fatal("expected color parse error")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(themeDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if _, ok := theme.Pack("button"); !ok {
		t.Error("button pack missing after load")
	}

	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
