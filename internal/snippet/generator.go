package snippet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid snippet configuration")

// ConfigError reports a variant that cannot produce snippets.
type ConfigError struct {
	Variant string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("snippet variant %q: %s", e.Variant, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Step is a step line as read from a feature file.
type Step struct {
	Keyword string
	Name    string
}

// KeywordFunc maps a feature-file keyword to the keyword used in code.
type KeywordFunc func(keyword string) string

// Variant configures snippets for one target language.
type Variant struct {
	Name      string
	Template  Template
	Patterns  []ArgumentPattern
	Arguments ArgumentRenderer
	// NamedGroups, when set, turns capturing groups into named groups.
	NamedGroups *GroupStyle
	// QuotePattern escapes the built pattern for the target's literal syntax.
	QuotePattern func(string) string
	// UnnamedFunction replaces a function name that sanitizes to the bare
	// Placeholder, for targets where "_" is not a usable identifier.
	UnnamedFunction string
}

// Generator renders snippets for a single variant. It is immutable once
// built and safe for concurrent use.
type Generator struct {
	variant  Variant
	patterns []ArgumentPattern
	keyword  KeywordFunc
	logger   *slog.Logger
}

type Option func(*Generator)

// WithLogger reports ambiguous argument matches at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

func New(v Variant, keyword KeywordFunc, opts ...Option) (*Generator, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	if keyword == nil {
		return nil, &ConfigError{Variant: v.Name, Reason: "no keyword function"}
	}
	g := &Generator{
		variant:  v,
		patterns: append([]ArgumentPattern(nil), v.Patterns...),
		keyword:  keyword,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (v Variant) validate() error {
	if missing := v.Template.Missing(); len(missing) > 0 {
		return &ConfigError{Variant: v.Name, Reason: "template missing " + strings.Join(missing, ", ")}
	}
	if len(v.Patterns) == 0 {
		return &ConfigError{Variant: v.Name, Reason: "no argument patterns"}
	}
	for i, ap := range v.Patterns {
		if ap.re == nil {
			return &ConfigError{Variant: v.Name, Reason: fmt.Sprintf("argument pattern %d is not compiled", i+1)}
		}
	}
	if v.Arguments == nil {
		return &ConfigError{Variant: v.Name, Reason: "no argument renderer"}
	}
	if v.UnnamedFunction != "" && Sanitize(v.UnnamedFunction) != v.UnnamedFunction {
		return &ConfigError{Variant: v.Name, Reason: fmt.Sprintf("unnamed function %q is not an identifier", v.UnnamedFunction)}
	}
	if v.NamedGroups != nil && v.NamedGroups.Start == "" {
		return &ConfigError{Variant: v.Name, Reason: "named group style has no start marker"}
	}
	return nil
}

// Variant returns the name of the variant the generator renders.
func (g *Generator) Variant() string { return g.variant.Name }

// Snippet renders the step definition stub for step. A blank step name
// renders the pattern ^$ with no arguments.
func (g *Generator) Snippet(step Step) string {
	name := step.Name
	if strings.TrimSpace(name) == "" {
		name = ""
	}
	matches := segment(name, g.patterns, func(pos int, chosen, ignored Type) {
		g.logger.Debug("ambiguous argument match",
			"step", name, "pos", pos, "chosen", chosen, "ignored", ignored)
	})

	return g.variant.Template.Render(Fields{
		Keyword:      g.keyword(step.Keyword),
		Pattern:      g.quote(buildPattern(name, matches, g.patterns, g.variant.NamedGroups)),
		FunctionName: g.functionName(name, matches),
		Arguments:    g.variant.Arguments(Types(hitsOf(matches, g.patterns))),
		Hint:         Hint,
	})
}

// Pattern returns the unquoted pattern Snippet would embed for name.
// Steps sharing a pattern share a step definition.
func (g *Generator) Pattern(name string) string {
	if strings.TrimSpace(name) == "" {
		name = ""
	}
	return BuildPattern(name, g.patterns, g.variant.NamedGroups)
}

func (g *Generator) functionName(name string, matches []match) string {
	fn := functionName(name, matches)
	if fn == string(Placeholder) && g.variant.UnnamedFunction != "" {
		return g.variant.UnnamedFunction
	}
	return fn
}

func (g *Generator) quote(pattern string) string {
	if g.variant.QuotePattern == nil {
		return pattern
	}
	return g.variant.QuotePattern(pattern)
}
