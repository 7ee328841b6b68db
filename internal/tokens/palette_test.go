package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPalette keeps expected outputs short.
var testPalette = Palette{
	Name: "brand",
	Shades: []Shade{
		{Key: "50", Value: "#fff"},
		{Key: "900", Value: "#000"},
	},
}

func TestDefaultPalette(t *testing.T) {
	require.Len(t, Default.Shades, 11)
	assert.Equal(t, "nocta", Default.Name)
	assert.Equal(t, "nocta-50 to nocta-950", Default.Range())

	keys := make([]string, 0, len(Default.Shades))
	for _, s := range Default.Shades {
		keys = append(keys, s.Key)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Value)
	}
	assert.Equal(t, []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}, keys)
}

func TestRenderings(t *testing.T) {
	assert.Equal(t, "  --color-brand-50: #fff;\n  --color-brand-900: #000;\n", testPalette.cssDeclarations("  "))
	assert.Equal(t, "  '50': '#fff',\n  '900': '#000',\n", testPalette.jsEntries("  "))
}
