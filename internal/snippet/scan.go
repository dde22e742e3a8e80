package snippet

import "unicode/utf8"

// Hit is one argument found in step text.
type Hit struct {
	Pos  int // byte offset of the match in the step text
	Type Type
}

type match struct {
	start, end int
	pattern    int
}

// ambiguityFunc is told about patterns that also fired at an offset
// already claimed by a higher priority pattern.
type ambiguityFunc func(pos int, chosen, ignored Type)

// segment walks every rune offset of text, end of string included, and
// claims the first pattern in priority order that matches there. Scanning
// resumes after the claimed match so matches never overlap.
func segment(text string, patterns []ArgumentPattern, ambiguous ambiguityFunc) []match {
	var matches []match
	p := 0
	for p <= len(text) {
		claimed := -1
		end := 0
		for i, ap := range patterns {
			n := ap.lookingAt(text[p:])
			if n == 0 {
				continue
			}
			if claimed < 0 {
				claimed, end = i, p+n
				continue
			}
			if ambiguous != nil {
				ambiguous(p, patterns[claimed].typ, ap.typ)
			}
		}
		if claimed >= 0 {
			matches = append(matches, match{start: p, end: end, pattern: claimed})
			p = end
			continue
		}
		if p == len(text) {
			break
		}
		_, size := utf8.DecodeRuneInString(text[p:])
		p += size
	}
	return matches
}

func hitsOf(matches []match, patterns []ArgumentPattern) []Hit {
	if len(matches) == 0 {
		return nil
	}
	hits := make([]Hit, 0, len(matches))
	for _, m := range matches {
		hits = append(hits, Hit{Pos: m.start, Type: patterns[m.pattern].typ})
	}
	return hits
}

// Scan returns the arguments found in text, left to right.
func Scan(text string, patterns []ArgumentPattern) []Hit {
	return hitsOf(segment(text, patterns, nil), patterns)
}

// Types returns the semantic types of the hits in order.
func Types(hits []Hit) []Type {
	if len(hits) == 0 {
		return nil
	}
	types := make([]Type, len(hits))
	for i, h := range hits {
		types[i] = h.Type
	}
	return types
}
