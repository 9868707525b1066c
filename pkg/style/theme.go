package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is a named collection of style packs.
type Theme struct {
	packs map[string]*Pack
}

// NewTheme creates an empty theme.
func NewTheme() *Theme {
	return &Theme{packs: make(map[string]*Pack)}
}

// Add registers a pack under a name, replacing any previous pack.
func (t *Theme) Add(name string, p *Pack) {
	t.packs[name] = p
}

// Pack returns the pack registered under name.
func (t *Theme) Pack(name string) (*Pack, bool) {
	p, ok := t.packs[name]
	return p, ok
}

// Len returns the number of registered packs.
func (t *Theme) Len() int {
	return len(t.packs)
}

type visualYAML struct {
	Fill        string  `yaml:"fill,omitempty"`
	Border      string  `yaml:"border,omitempty"`
	Text        string  `yaml:"text,omitempty"`
	Rounding    float64 `yaml:"rounding,omitempty"`
	BorderWidth float64 `yaml:"borderWidth,omitempty"`
}

type themeYAML struct {
	Packs map[string]map[string]visualYAML `yaml:"packs"`
}

var variantNames = map[string]Variant{
	"normal":      VariantNormal,
	"hover":       VariantHover,
	"pressed":     VariantPressed,
	"disabled":    VariantDisabled,
	"focused":     VariantFocused,
	"active":      VariantActive,
	"activeHover": VariantActiveHover,
}

// ParseTheme parses a YAML theme document. Each pack names its variants
// by the lowercase variant name; variants left out fall back to the
// pack's normal visual at resolution time.
func ParseTheme(data []byte) (*Theme, error) {
	var doc themeYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	theme := NewTheme()
	for name, variants := range doc.Packs {
		pack := &Pack{}
		for variantName, vy := range variants {
			variant, ok := variantNames[variantName]
			if !ok {
				return nil, fmt.Errorf("theme pack %q: unknown variant %q", name, variantName)
			}
			visual, err := vy.toVisual()
			if err != nil {
				return nil, fmt.Errorf("theme pack %q variant %q: %w", name, variantName, err)
			}
			pack.Set(variant, visual)
		}
		theme.Add(name, pack)
	}
	return theme, nil
}

// LoadTheme reads and parses a YAML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return ParseTheme(data)
}

func (vy visualYAML) toVisual() (Visual, error) {
	var v Visual
	var err error
	if vy.Fill != "" {
		if v.Fill, err = ParseColor(vy.Fill); err != nil {
			return v, err
		}
	}
	if vy.Border != "" {
		if v.Border, err = ParseColor(vy.Border); err != nil {
			return v, err
		}
	}
	if vy.Text != "" {
		if v.Text, err = ParseColor(vy.Text); err != nil {
			return v, err
		}
	}
	v.Rounding = vy.Rounding
	v.BorderWidth = vy.BorderWidth
	return v, nil
}
