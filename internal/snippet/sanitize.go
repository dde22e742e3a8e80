package snippet

import "strings"

// Placeholder stands in for every run of characters that cannot appear in
// an identifier.
const Placeholder = '_'

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9')
}

// Sanitize turns text into an ASCII identifier. Runs of illegal characters
// collapse into one Placeholder, trailing placeholders are dropped and the
// result is never empty.
func Sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	var prev rune
	for i, r := range text {
		ok := isIdentPart(r)
		if i == 0 {
			ok = isIdentStart(r)
		}
		if !ok {
			r = Placeholder
		}
		if r == Placeholder && prev == Placeholder {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	out := strings.TrimRight(b.String(), string(Placeholder))
	if out == "" {
		return string(Placeholder)
	}
	return out
}
