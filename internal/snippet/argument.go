package snippet

import (
	"fmt"
	"regexp"
	"strings"
)

// Type is the semantic type inferred for a step argument.
type Type string

const (
	String Type = "String"
	Int    Type = "Int"
	Float  Type = "Float"
)

// ArgumentPattern recognises one shape of variable data inside step text.
// The expression holds exactly one plain capturing group around the part
// that varies; everything outside the group stays literal in the built pattern.
type ArgumentPattern struct {
	re       *regexp.Regexp
	anchored *regexp.Regexp
	typ      Type
}

func NewArgumentPattern(expr string, typ Type) (ArgumentPattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return ArgumentPattern{}, fmt.Errorf("compiling argument pattern %q: %w", expr, err)
	}
	if re.NumSubexp() != 1 || captureOpen(expr) < 0 {
		return ArgumentPattern{}, fmt.Errorf("argument pattern %q must have exactly one capturing group", expr)
	}
	if re.MatchString("") || matchesZeroWidth(re) {
		return ArgumentPattern{}, fmt.Errorf("argument pattern %q matches the empty string", expr)
	}
	return ArgumentPattern{
		re:       re,
		anchored: regexp.MustCompile(`^(?:` + expr + `)`),
		typ:      typ,
	}, nil
}

// zeroWidthProbes are texts on which assertions such as \b, ^ or $ can
// hold without consuming input.
var zeroWidthProbes = []string{"a", "0", " ", "a b", "x 1", `"q"`, "-.", "a\nb"}

// matchesZeroWidth reports whether re finds an empty match in one of the
// probe texts. Such a pattern would never yield an argument.
func matchesZeroWidth(re *regexp.Regexp) bool {
	for _, text := range zeroWidthProbes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if loc[0] == loc[1] {
				return true
			}
		}
	}
	return false
}

// MustArgumentPattern is like NewArgumentPattern but panics on error.
func MustArgumentPattern(expr string, typ Type) ArgumentPattern {
	ap, err := NewArgumentPattern(expr, typ)
	if err != nil {
		panic(err)
	}
	return ap
}

func (ap ArgumentPattern) Type() Type { return ap.typ }

// String returns the expression source, which is also what replaces each
// match when a step pattern is built.
func (ap ArgumentPattern) String() string {
	if ap.re == nil {
		return ""
	}
	return ap.re.String()
}

// lookingAt returns the length of the match starting exactly at the
// beginning of s, or 0 when the pattern does not fire there.
func (ap ArgumentPattern) lookingAt(s string) int {
	loc := ap.anchored.FindStringIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}

var (
	QuotedString = MustArgumentPattern(`"([^"]*)"`, String)
	Integer      = MustArgumentPattern(`(\d+)`, Int)
	Decimal      = MustArgumentPattern(`(\d+\.\d+)`, Float)
)

// DefaultPatterns returns the default argument patterns in priority order.
func DefaultPatterns() []ArgumentPattern {
	return []ArgumentPattern{QuotedString, Integer}
}

// captureOpen returns the index of the first capturing group opener in
// expr, skipping escapes, character classes and (?...) groups.
func captureOpen(expr string) int {
	inClass := false
	for i := 0; i < len(expr); i++ {
		switch c := expr[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(' && !strings.HasPrefix(expr[i+1:], "?"):
			return i
		}
	}
	return -1
}
