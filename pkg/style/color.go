// Package style provides visual tokens, style packs with per-state
// variants, and the override stack that lets call sites retheme a
// widget locally.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit ARGB color.
type Color uint32

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 creates a color from 8-bit channels including alpha.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha returns the color with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// ParseColor parses "#RGB", "#RRGGBB" or "#AARRGGBB" hex notation.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q: missing # prefix", s)
	}
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, ch := range hex {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		hex = expanded.String()
		fallthrough
	case 6:
		hex = "FF" + hex
		fallthrough
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", s)
	}
}
