package cmd

import (
	"fmt"

	"github.com/chriserin/ftsnip/internal/i18n"
	"github.com/chriserin/ftsnip/internal/snippet"
)

// generators builds one snippet generator per feature-file language, each
// bound to that language's dialect.
type generators struct {
	variant snippet.Variant
	byLang  map[string]*snippet.Generator
}

func newGenerators(lang string) (*generators, error) {
	v, err := snippet.Lookup(lang)
	if err != nil {
		return nil, err
	}
	return &generators{variant: v, byLang: map[string]*snippet.Generator{}}, nil
}

func (g *generators) forLocale(locale string) (*snippet.Generator, i18n.Dialect, error) {
	d, err := i18n.Match(locale)
	if err != nil {
		return nil, i18n.Dialect{}, err
	}
	key := d.Tag.String()
	if gen, ok := g.byLang[key]; ok {
		return gen, d, nil
	}
	gen, err := snippet.New(g.variant, d.KeywordFunc(), snippet.WithLogger(logger))
	if err != nil {
		return nil, i18n.Dialect{}, fmt.Errorf("building %s generator: %w", g.variant.Name, err)
	}
	g.byLang[key] = gen
	return gen, d, nil
}
