package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrAnchorNotFound means the artifact exists but has no place to put the palette.
	ErrAnchorNotFound = errors.New("no insertion point found")

	// ErrUnbalanced means an object literal in the config never closes.
	ErrUnbalanced = errors.New("unbalanced braces")
)

// InjectTailwindConfig adds the palette under theme.extend.colors of a
// tailwind.config source and reports whether src changed. Missing extend or
// colors objects are created; existing ones are extended in place so no key
// is shadowed. The config is scanned, not evaluated: only bytes at the
// insertion point change.
func InjectTailwindConfig(src string, p Palette) (string, bool, error) {
	if paletteKeyRe(p).MatchString(src) {
		return src, false, nil
	}

	open := findShallowestKey(src, "theme")
	if open < 0 {
		return src, false, fmt.Errorf("%w: no theme object in config", ErrAnchorNotFound)
	}
	end := matchBrace(src, open)
	if end < 0 {
		return src, false, fmt.Errorf("%w: theme object never closes", ErrUnbalanced)
	}

	// Descend as far as the existing theme.extend.colors chain goes.
	missing := []string{"extend", "colors"}
	for len(missing) > 0 {
		next := findKey(src, open+1, end, missing[0])
		if next < 0 {
			break
		}
		open = next
		if end = matchBrace(src, open); end < 0 {
			return src, false, fmt.Errorf("%w: %s object never closes", ErrUnbalanced, missing[0])
		}
		missing = missing[1:]
	}

	base := lineIndent(src, open)
	block := "\n" + renderJSBlock(p, base+indentUnit, missing) + closingGap(src, open+1, base)
	return splice(src, open+1, withLineEnding(block, lineEnding(src, open))), true, nil
}

func paletteKeyRe(p Palette) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\w$-])['"]?` + regexp.QuoteMeta(p.Name) + `['"]?\s*:`)
}

func keyRe(key string) *regexp.Regexp {
	k := regexp.QuoteMeta(key)
	return regexp.MustCompile(`^(?:` + k + `|'` + k + `'|"` + k + `")\s*:\s*\{`)
}

// findKey returns the index of the opening brace of `key: {` directly inside
// src[from:to], ignoring nested objects, or -1.
func findKey(src string, from, to int, key string) int {
	re := keyRe(key)
	at := -1
	walkCode(src, from, to, func(i, depth int) bool {
		if depth != 0 || (i > 0 && isIdent(src[i-1])) {
			return false
		}
		if loc := re.FindStringIndex(src[i:to]); loc != nil {
			at = i + loc[1] - 1
			return true
		}
		return false
	})
	return at
}

// findShallowestKey returns the brace of the least nested `key: {` in src, or -1.
func findShallowestKey(src, key string) int {
	re := keyRe(key)
	at, best := -1, -1
	walkCode(src, 0, len(src), func(i, depth int) bool {
		if (best >= 0 && depth >= best) || (i > 0 && isIdent(src[i-1])) {
			return false
		}
		if loc := re.FindStringIndex(src[i:]); loc != nil {
			at, best = i+loc[1]-1, depth
		}
		return false
	})
	return at
}

// renderJSBlock renders the palette nested under wrappers, e.g.
// colors: { nocta: { '50': '#f8f8f8', ... }, },
func renderJSBlock(p Palette, indent string, wrappers []string) string {
	keys := make([]string, 0, len(wrappers)+1)
	keys = append(keys, wrappers...)
	keys = append(keys, p.Name)

	var b strings.Builder
	ind := indent
	for _, k := range keys {
		b.WriteString(ind + k + ": {\n")
		ind += indentUnit
	}
	b.WriteString(p.jsEntries(ind))
	for range keys {
		ind = ind[:len(ind)-len(indentUnit)]
		b.WriteString(ind + "},\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
