package ui

import "github.com/go-ember/ember/pkg/style"

// Pack names looked up by the built-in widgets. A custom theme needs
// to define these to restyle the built-ins; additional packs are free
// for application widgets.
const (
	PackButton      = "button"
	PackCheckbox    = "checkbox"
	PackSlider      = "slider"
	PackSliderTrack = "sliderTrack"
	PackTextInput   = "textInput"
	PackLabel       = "label"
	PackTree        = "tree"
	PackGridHeader  = "gridHeader"
	PackGridCell    = "gridCell"
	PackPanel       = "panel"
	PackPanelHandle = "panelHandle"
	PackPopup       = "popup"
	PackScrollbar   = "scrollbar"
)

// DefaultTheme returns the built-in dark theme covering every pack the
// built-in widgets look up.
func DefaultTheme() *style.Theme {
	var (
		bg       = style.RGB(0x2b, 0x2b, 0x31)
		bgHover  = style.RGB(0x3a, 0x3a, 0x44)
		bgPress  = style.RGB(0x1f, 0x1f, 0x26)
		accent   = style.RGB(0x4f, 0x8c, 0xff)
		accentHi = style.RGB(0x6f, 0xa2, 0xff)
		border   = style.RGB(0x4a, 0x4a, 0x55)
		fg       = style.RGB(0xe6, 0xe6, 0xea)
		fgDim    = style.RGB(0x8a, 0x8a, 0x94)
		well     = style.RGB(0x1a, 0x1a, 0x1f)
	)

	t := style.NewTheme()

	t.Add(PackButton, style.NewPack(style.Visual{Fill: bg, Border: border, Text: fg, Rounding: 4, BorderWidth: 1}).
		Set(style.VariantHover, style.Visual{Fill: bgHover, Border: border, Text: fg, Rounding: 4, BorderWidth: 1}).
		Set(style.VariantPressed, style.Visual{Fill: bgPress, Border: accent, Text: fg, Rounding: 4, BorderWidth: 1}).
		Set(style.VariantDisabled, style.Visual{Fill: bg, Border: border, Text: fgDim, Rounding: 4, BorderWidth: 1}).
		Set(style.VariantFocused, style.Visual{Fill: bg, Border: accent, Text: fg, Rounding: 4, BorderWidth: 1}).
		Set(style.VariantActive, style.Visual{Fill: accent, Border: accent, Text: fg, Rounding: 4, BorderWidth: 1}).
		Set(style.VariantActiveHover, style.Visual{Fill: accentHi, Border: accentHi, Text: fg, Rounding: 4, BorderWidth: 1}))

	t.Add(PackCheckbox, style.NewPack(style.Visual{Fill: well, Border: border, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantHover, style.Visual{Fill: bgHover, Border: border, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantPressed, style.Visual{Fill: bgPress, Border: accent, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantDisabled, style.Visual{Fill: well, Border: border, Text: fgDim, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantActive, style.Visual{Fill: accent, Border: accent, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantActiveHover, style.Visual{Fill: accentHi, Border: accentHi, Text: fg, Rounding: 3, BorderWidth: 1}))

	t.Add(PackSlider, style.NewPack(style.Visual{Fill: fg, Border: border, Rounding: 6, BorderWidth: 1}).
		Set(style.VariantHover, style.Visual{Fill: accentHi, Border: border, Rounding: 6, BorderWidth: 1}).
		Set(style.VariantPressed, style.Visual{Fill: accent, Border: accent, Rounding: 6, BorderWidth: 1}).
		Set(style.VariantDisabled, style.Visual{Fill: fgDim, Border: border, Rounding: 6, BorderWidth: 1}))

	t.Add(PackSliderTrack, style.NewPack(style.Visual{Fill: well, Border: border, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantActive, style.Visual{Fill: accent, Border: border, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantDisabled, style.Visual{Fill: well, Border: border, Rounding: 3, BorderWidth: 1}))

	t.Add(PackTextInput, style.NewPack(style.Visual{Fill: well, Border: border, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantHover, style.Visual{Fill: well, Border: fgDim, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantFocused, style.Visual{Fill: well, Border: accent, Text: fg, Rounding: 3, BorderWidth: 1}).
		Set(style.VariantDisabled, style.Visual{Fill: bg, Border: border, Text: fgDim, Rounding: 3, BorderWidth: 1}))

	t.Add(PackLabel, style.NewPack(style.Visual{Text: fg}).
		Set(style.VariantDisabled, style.Visual{Text: fgDim}))

	t.Add(PackTree, style.NewPack(style.Visual{Text: fg, Rounding: 3}).
		Set(style.VariantHover, style.Visual{Fill: bgHover, Text: fg, Rounding: 3}).
		Set(style.VariantPressed, style.Visual{Fill: bgPress, Text: fg, Rounding: 3}).
		Set(style.VariantActive, style.Visual{Fill: bg, Text: fg, Rounding: 3}).
		Set(style.VariantActiveHover, style.Visual{Fill: bgHover, Text: fg, Rounding: 3}))

	t.Add(PackGridHeader, style.NewPack(style.Visual{Fill: bg, Border: border, Text: fg, BorderWidth: 1}).
		Set(style.VariantHover, style.Visual{Fill: bgHover, Border: border, Text: fg, BorderWidth: 1}))

	t.Add(PackGridCell, style.NewPack(style.Visual{Fill: well, Border: border, Text: fg, BorderWidth: 1}).
		Set(style.VariantHover, style.Visual{Fill: bg, Border: border, Text: fg, BorderWidth: 1}).
		Set(style.VariantActive, style.Visual{Fill: accent, Border: border, Text: fg, BorderWidth: 1}).
		Set(style.VariantActiveHover, style.Visual{Fill: accentHi, Border: border, Text: fg, BorderWidth: 1}))

	t.Add(PackPanel, style.NewPack(style.Visual{Fill: style.RGB(0x24, 0x24, 0x29), Border: border, BorderWidth: 1}))

	t.Add(PackPanelHandle, style.NewPack(style.Visual{Fill: border}).
		Set(style.VariantHover, style.Visual{Fill: fgDim}).
		Set(style.VariantPressed, style.Visual{Fill: accent}))

	t.Add(PackPopup, style.NewPack(style.Visual{Fill: style.RGB(0x30, 0x30, 0x38), Border: border, Text: fg, Rounding: 4, BorderWidth: 1}))

	t.Add(PackScrollbar, style.NewPack(style.Visual{Fill: border, Rounding: 2}).
		Set(style.VariantHover, style.Visual{Fill: fgDim, Rounding: 2}))

	return t
}
