package snippet

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// GroupStyle renders capturing groups as named groups. Each group opener
// "(" becomes "(" + Start + n + End with n counting from 1.
type GroupStyle struct {
	Start string
	End   string
}

func (s *GroupStyle) name(expr string, n int) string {
	i := captureOpen(expr)
	if i < 0 {
		return expr
	}
	return expr[:i+1] + s.Start + strconv.Itoa(n) + s.End + expr[i+1:]
}

// BuildPattern rewrites text into an anchored regular expression with one
// capturing group per argument. Literal text is quoted.
func BuildPattern(text string, patterns []ArgumentPattern, style *GroupStyle) string {
	return buildPattern(text, segment(text, patterns, nil), patterns, style)
}

func buildPattern(text string, matches []match, patterns []ArgumentPattern, style *GroupStyle) string {
	var b strings.Builder
	b.WriteString("^")
	last := 0
	for i, m := range matches {
		b.WriteString(quoteLiteral(text[last:m.start]))
		expr := patterns[m.pattern].String()
		if style != nil {
			expr = style.name(expr, i+1)
		}
		b.WriteString(expr)
		last = m.end
	}
	b.WriteString(quoteLiteral(text[last:]))
	b.WriteString("$")
	return b.String()
}

// quoteLiteral quotes text for a pattern. Each invalid UTF-8 byte becomes
// U+FFFD, which is what the regexp engine reads for such a byte, so the
// pattern stays compilable and still matches the original text.
func quoteLiteral(text string) string {
	if utf8.ValidString(text) {
		return regexp.QuoteMeta(text)
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return regexp.QuoteMeta(b.String())
}

// FunctionName derives an identifier from text after replacing every
// argument with a single space.
func FunctionName(text string, patterns []ArgumentPattern) string {
	return functionName(text, segment(text, patterns, nil))
}

func functionName(text string, matches []match) string {
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.start])
		b.WriteString(" ")
		last = m.end
	}
	b.WriteString(text[last:])
	return Sanitize(b.String())
}
