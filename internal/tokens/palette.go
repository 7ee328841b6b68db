// Package tokens injects the Nocta design-token palette into a project's
// Tailwind setup: CSS custom properties for Tailwind v4, a theme extension in
// tailwind.config.js for earlier majors.
package tokens

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed palette.yaml
var paletteYAML []byte

// Shade is one step of a color scale.
type Shade struct {
	Key   string `yaml:"key"`   // Scale step, e.g. "500"
	Value string `yaml:"value"` // CSS color value
}

// Palette is a named, ordered color scale.
type Palette struct {
	Name   string  `yaml:"name"`
	Shades []Shade `yaml:"shades"`
}

// Default is the palette shipped with the component library.
var Default = mustLoadPalette(paletteYAML)

func mustLoadPalette(data []byte) Palette {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		panic("Failed to unmarshal palette.yaml: " + err.Error())
	}
	if p.Name == "" || len(p.Shades) == 0 {
		panic("palette.yaml defines no shades")
	}
	return p
}

// Range describes the palette for summaries, e.g. "nocta-50 to nocta-950".
func (p Palette) Range() string {
	first, last := p.Shades[0], p.Shades[len(p.Shades)-1]
	return fmt.Sprintf("%s-%s to %s-%s", p.Name, first.Key, p.Name, last.Key)
}

// cssMarker is present in any stylesheet the palette was injected into.
func (p Palette) cssMarker() string {
	return "--color-" + p.Name + "-"
}

// cssDeclarations renders one custom property per shade at the given indent.
func (p Palette) cssDeclarations(indent string) string {
	var b strings.Builder
	for _, s := range p.Shades {
		fmt.Fprintf(&b, "%s%s%s: %s;\n", indent, p.cssMarker(), s.Key, s.Value)
	}
	return b.String()
}

// jsEntries renders the palette as an object literal body at the given indent.
func (p Palette) jsEntries(indent string) string {
	var b strings.Builder
	for _, s := range p.Shades {
		fmt.Fprintf(&b, "%s'%s': '%s',\n", indent, s.Key, s.Value)
	}
	return b.String()
}
