package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectCSSIntoThemeBlock(t *testing.T) {
	src := `@import "tailwindcss";

@theme {
  --font-sans: "Inter", sans-serif;
}

body {
  color: black;
}
`
	want := `@import "tailwindcss";

@theme {
  --color-brand-50: #fff;
  --color-brand-900: #000;
  --font-sans: "Inter", sans-serif;
}

body {
  color: black;
}
`
	out, added := InjectCSS(src, testPalette)
	assert.True(t, added)
	assert.Equal(t, want, out)
}

func TestInjectCSSInlineAndEmptyTheme(t *testing.T) {
	out, added := InjectCSS("@theme inline {}\n", testPalette)
	assert.True(t, added)
	assert.Equal(t, "@theme inline {\n  --color-brand-50: #fff;\n  --color-brand-900: #000;\n}\n", out)
}

func TestInjectCSSNestedIndent(t *testing.T) {
	src := "@layer base {\n  @theme {\n    --radius: 4px;\n  }\n}\n"
	out, added := InjectCSS(src, testPalette)
	assert.True(t, added)
	assert.Contains(t, out, "  @theme {\n    --color-brand-50: #fff;\n    --color-brand-900: #000;\n    --radius: 4px;\n")
}

func TestInjectCSSAfterImport(t *testing.T) {
	src := "@import 'tailwindcss';\n\n:root {\n  --background: #fff;\n}\n"
	want := "@import 'tailwindcss';\n\n@theme {\n  --color-brand-50: #fff;\n  --color-brand-900: #000;\n}\n\n:root {\n  --background: #fff;\n}\n"

	out, added := InjectCSS(src, testPalette)
	assert.True(t, added)
	assert.Equal(t, want, out)
}

func TestInjectCSSWithoutImport(t *testing.T) {
	src := "body { margin: 0; }\n"
	out, added := InjectCSS(src, testPalette)
	assert.True(t, added)
	assert.True(t, strings.HasPrefix(out, "@import \"tailwindcss\";\n\n@theme {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n\n"+src))
}

func TestInjectCSSIdempotent(t *testing.T) {
	src := "@import \"tailwindcss\";\n"
	first, added := InjectCSS(src, testPalette)
	assert.True(t, added)

	second, added := InjectCSS(first, testPalette)
	assert.False(t, added)
	assert.Equal(t, first, second)
}

func TestInjectCSSPreservesSurroundings(t *testing.T) {
	src := "/* keep */\n@import \"tailwindcss\";\n@theme {\n\t--spacing: 0.25rem;\n}\n.btn { @apply px-4; }\n"
	anchor := strings.Index(src, "@theme {") + len("@theme {")

	out, _ := InjectCSS(src, testPalette)
	assert.True(t, strings.HasPrefix(out, src[:anchor]))
	assert.True(t, strings.HasSuffix(out, src[anchor:]))
}

func TestInjectCSSImportWithOptions(t *testing.T) {
	cases := []struct {
		name string
		imp  string
	}{
		{"source", `@import "tailwindcss" source("../src");`},
		{"prefix", `@import "tailwindcss" prefix(tw);`},
		{"important", `@import 'tailwindcss' important;`},
		{"layer without semicolon", `@import "tailwindcss" layer(base)`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := tc.imp + "\n\nbody {}\n"
			out, added := InjectCSS(src, testPalette)
			assert.True(t, added)
			assert.Equal(t, tc.imp+"\n\n@theme {\n  --color-brand-50: #fff;\n  --color-brand-900: #000;\n}\n\nbody {}\n", out)
		})
	}
}

func TestInjectCSSSkipsComments(t *testing.T) {
	src := "/* @theme { } */\n@import \"tailwindcss\";\n"
	want := "/* @theme { } */\n@import \"tailwindcss\";\n\n@theme {\n  --color-brand-50: #fff;\n  --color-brand-900: #000;\n}\n"

	out, added := InjectCSS(src, testPalette)
	assert.True(t, added)
	assert.Equal(t, want, out)

	// A palette mentioned only in a comment does not count as present.
	commented := "/* --color-brand-50: #fff; */\n@theme {\n}\n"
	out, added = InjectCSS(commented, testPalette)
	assert.True(t, added)
	assert.Contains(t, out, "@theme {\n  --color-brand-50: #fff;\n")
}

func TestInjectCSSKeepsCRLF(t *testing.T) {
	src := "@import \"tailwindcss\";\r\n\r\n@theme {\r\n  --radius: 4px;\r\n}\r\n"
	want := "@import \"tailwindcss\";\r\n\r\n@theme {\r\n  --color-brand-50: #fff;\r\n  --color-brand-900: #000;\r\n  --radius: 4px;\r\n}\r\n"

	out, added := InjectCSS(src, testPalette)
	assert.True(t, added)
	assert.Equal(t, want, out)

	out, added = InjectCSS("@import \"tailwindcss\";\r\nbody {}\r\n", testPalette)
	assert.True(t, added)
	assert.NotRegexp(t, `[^\r]\n`, out)
}
