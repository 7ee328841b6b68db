package tokens

import "strings"

const indentUnit = "  "

// splice inserts s into src at offset at.
func splice(src string, at int, s string) string {
	return src[:at] + s + src[at:]
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(src string, pos int) string {
	start := strings.LastIndexByte(src[:pos], '\n') + 1
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return src[start:end]
}

// lineEnding returns the line terminator used by the line containing pos,
// "\r\n" or "\n". A file without a newline after pos counts as "\n".
func lineEnding(src string, pos int) string {
	idx := strings.IndexByte(src[pos:], '\n')
	if idx < 0 {
		return "\n"
	}
	if j := pos + idx; j > 0 && src[j-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// withLineEnding rewrites the "\n" terminators of a rendered block to nl.
func withLineEnding(s, nl string) string {
	if nl == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", nl)
}

// closingGap keeps a closing brace on its own line when the block opened at
// pos was empty.
func closingGap(src string, pos int, base string) string {
	if strings.HasPrefix(strings.TrimLeft(src[pos:], " \t"), "}") {
		return "\n" + base
	}
	return ""
}

func isIdent(c byte) bool {
	return c == '_' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// walkCode calls visit for every byte of src[from:to] that is code rather than
// comment or string body, with the brace depth relative to from. A string is
// visited once at its opening quote. Returning true stops the walk.
func walkCode(src string, from, to int, visit func(i, depth int) bool) {
	depth := 0
	for i := from; i < to; i++ {
		c := src[i]
		switch {
		case c == '/' && i+1 < to && src[i+1] == '/':
			for i < to && src[i] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < to && src[i+1] == '*':
			end := strings.Index(src[i+2:to], "*/")
			if end < 0 {
				return
			}
			i += 2 + end + 1
			continue
		case c == '\'' || c == '"' || c == '`':
			if visit(i, depth) {
				return
			}
			i = skipString(src, i, to)
			continue
		}

		if visit(i, depth) {
			return
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
}

// skipString returns the index of the quote closing the string opened at i.
func skipString(src string, i, to int) int {
	quote := src[i]
	for j := i + 1; j < to; j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j
		}
	}
	return to
}

// matchBrace returns the index of the brace closing the one at open, or -1.
func matchBrace(src string, open int) int {
	match := -1
	walkCode(src, open, len(src), func(i, depth int) bool {
		if src[i] == '}' && depth == 1 {
			match = i
			return true
		}
		return false
	})
	return match
}
