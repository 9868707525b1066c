package style

// Variant identifies one visual state of a style pack.
type Variant int

const (
	// VariantNormal is the resting appearance.
	VariantNormal Variant = iota
	// VariantHover is shown while the pointer is over the widget.
	VariantHover
	// VariantPressed is shown while the widget holds a press.
	VariantPressed
	// VariantDisabled is shown while interaction is suppressed.
	VariantDisabled
	// VariantFocused is shown while the widget has keyboard focus.
	VariantFocused
	// VariantActive is shown for toggled/selected widgets.
	VariantActive
	// VariantActiveHover is shown for toggled widgets under the pointer.
	VariantActiveHover

	variantCount
)

func (v Variant) String() string {
	switch v {
	case VariantNormal:
		return "normal"
	case VariantHover:
		return "hover"
	case VariantPressed:
		return "pressed"
	case VariantDisabled:
		return "disabled"
	case VariantFocused:
		return "focused"
	case VariantActive:
		return "active"
	case VariantActiveHover:
		return "activeHover"
	default:
		return "unknown"
	}
}

// Visual holds the drawable tokens of one variant.
type Visual struct {
	// Fill is the background color.
	Fill Color
	// Border is the outline color.
	Border Color
	// Text is the label/content color.
	Text Color
	// Rounding is the corner radius in pixels.
	Rounding float64
	// BorderWidth is the outline stroke width in pixels.
	BorderWidth float64
}

// Pack defines the full variant set of one widget appearance.
type Pack struct {
	variants [variantCount]Visual
	defined  [variantCount]bool
}

// NewPack creates a pack whose undefined variants fall back to normal.
func NewPack(normal Visual) *Pack {
	p := &Pack{}
	p.Set(VariantNormal, normal)
	return p
}

// Set defines the visual for a variant.
func (p *Pack) Set(v Variant, visual Visual) *Pack {
	if v >= 0 && v < variantCount {
		p.variants[v] = visual
		p.defined[v] = true
	}
	return p
}

// Variant returns the visual for v, falling back to the normal variant
// when v was never defined.
func (p *Pack) Variant(v Variant) Visual {
	if v >= 0 && v < variantCount && p.defined[v] {
		return p.variants[v]
	}
	return p.variants[VariantNormal]
}

// State captures the interaction flags that drive variant resolution.
type State struct {
	Disabled bool
	Pressed  bool
	Hovered  bool
	Focused  bool
	Active   bool
}

// Resolve picks the variant for the given state. Precedence: disabled
// beats pressed beats hover beats focus, except that hover and focus
// yield to the active variants when the widget is active.
func (p *Pack) Resolve(st State) Visual {
	switch {
	case st.Disabled:
		return p.Variant(VariantDisabled)
	case st.Pressed:
		return p.Variant(VariantPressed)
	case st.Hovered && !st.Active:
		return p.Variant(VariantHover)
	case st.Focused && !st.Active:
		return p.Variant(VariantFocused)
	case st.Active && st.Hovered:
		return p.Variant(VariantActiveHover)
	case st.Active:
		return p.Variant(VariantActive)
	default:
		return p.Variant(VariantNormal)
	}
}
