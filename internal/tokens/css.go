package tokens

import (
	"regexp"
	"strings"
)

var (
	themeBlockRe = regexp.MustCompile(`@theme(?:\s+inline)?\s*\{`)
	// The import may carry options such as source(...) or prefix(...) before its ';'.
	tailwindImportRe = regexp.MustCompile(`@import\s+["']tailwindcss["'][^;\r\n]*;?`)
	cssCommentRe     = regexp.MustCompile(`(?s)/\*.*?(?:\*/|$)`)
)

// InjectCSS adds the palette to a Tailwind v4 stylesheet and reports whether
// src changed. Declarations go at the top of the first @theme block; without
// one, a new block follows the tailwindcss import, and without that import
// both are prepended. Comments are never used as anchors. Bytes outside the
// inserted span are left untouched.
func InjectCSS(src string, p Palette) (string, bool) {
	comments := cssCommentRe.FindAllStringIndex(src, -1)
	if strings.Contains(cssCommentRe.ReplaceAllString(src, ""), p.cssMarker()) {
		return src, false
	}

	if loc := firstOutside(themeBlockRe, src, comments); loc != nil {
		base := lineIndent(src, loc[0])
		decls := strings.TrimSuffix(p.cssDeclarations(base+indentUnit), "\n")
		block := "\n" + decls + closingGap(src, loc[1], base)
		return splice(src, loc[1], withLineEnding(block, lineEnding(src, loc[0]))), true
	}

	theme := "@theme {\n" + p.cssDeclarations(indentUnit) + "}"
	if loc := firstOutside(tailwindImportRe, src, comments); loc != nil {
		return splice(src, loc[1], withLineEnding("\n\n"+theme, lineEnding(src, loc[0]))), true
	}
	head := `@import "tailwindcss";` + "\n\n" + theme + "\n\n"
	return withLineEnding(head, lineEnding(src, 0)) + src, true
}

// firstOutside returns the first match of re in src that does not start
// inside one of the given spans.
func firstOutside(re *regexp.Regexp, src string, spans [][]int) []int {
	for _, loc := range re.FindAllStringIndex(src, -1) {
		inside := false
		for _, s := range spans {
			if loc[0] >= s[0] && loc[0] < s[1] {
				inside = true
				break
			}
		}
		if !inside {
			return loc
		}
	}
	return nil
}
