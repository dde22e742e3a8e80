// Package i18n knows the step keywords of the supported feature-file
// languages and how they are written in code.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/language"
)

var ErrUnknownLocale = errors.New("unknown locale")

// Kind classifies a step keyword.
type Kind int

const (
	KindUnknown Kind = iota
	KindGiven
	KindWhen
	KindThen
	KindAnd
	KindBut
)

// Dialect holds the keywords of one language. Step keywords are written the
// way they appear in feature files, trailing space included; block keywords
// are written without their colon.
type Dialect struct {
	Tag language.Tag

	Feature    []string
	Background []string
	Scenario   []string
	Outline    []string
	Rule       []string
	Examples   []string

	Given []string
	When  []string
	Then  []string
	And   []string
	But   []string
}

var dialects = []Dialect{
	{
		Tag:        language.English,
		Feature:    []string{"Feature"},
		Background: []string{"Background"},
		Scenario:   []string{"Scenario", "Example"},
		Outline:    []string{"Scenario Outline", "Scenario Template"},
		Rule:       []string{"Rule"},
		Examples:   []string{"Examples", "Scenarios"},
		Given:      []string{"Given "},
		When:       []string{"When "},
		Then:       []string{"Then "},
		And:        []string{"And "},
		But:        []string{"But "},
	},
	{
		Tag:        language.French,
		Feature:    []string{"Fonctionnalité"},
		Background: []string{"Contexte"},
		Scenario:   []string{"Scénario", "Exemple"},
		Outline:    []string{"Plan du scénario", "Plan du Scénario"},
		Rule:       []string{"Règle"},
		Examples:   []string{"Exemples"},
		Given:      []string{"Soit ", "Etant donné ", "Étant donné ", "Étant donnée ", "Étant donnés ", "Étant données "},
		When:       []string{"Quand ", "Lorsque ", "Lorsqu'"},
		Then:       []string{"Alors "},
		And:        []string{"Et "},
		But:        []string{"Mais "},
	},
	{
		Tag:        language.German,
		Feature:    []string{"Funktionalität", "Funktion"},
		Background: []string{"Grundlage", "Hintergrund"},
		Scenario:   []string{"Szenario", "Beispiel"},
		Outline:    []string{"Szenariogrundriss", "Szenarien"},
		Rule:       []string{"Regel"},
		Examples:   []string{"Beispiele"},
		Given:      []string{"Angenommen ", "Gegeben sei "},
		When:       []string{"Wenn "},
		Then:       []string{"Dann "},
		And:        []string{"Und "},
		But:        []string{"Aber "},
	},
	{
		Tag:        language.Spanish,
		Feature:    []string{"Característica", "Necesidad del negocio"},
		Background: []string{"Antecedentes"},
		Scenario:   []string{"Escenario", "Ejemplo"},
		Outline:    []string{"Esquema del escenario"},
		Rule:       []string{"Regla"},
		Examples:   []string{"Ejemplos"},
		Given:      []string{"Dado ", "Dada ", "Dados ", "Dadas "},
		When:       []string{"Cuando "},
		Then:       []string{"Entonces "},
		And:        []string{"Y ", "E "},
		But:        []string{"Pero "},
	},
	{
		Tag:        language.Dutch,
		Feature:    []string{"Functionaliteit"},
		Background: []string{"Achtergrond"},
		Scenario:   []string{"Scenario", "Voorbeeld"},
		Outline:    []string{"Abstract Scenario"},
		Rule:       []string{"Regel"},
		Examples:   []string{"Voorbeelden"},
		Given:      []string{"Gegeven ", "Stel "},
		When:       []string{"Als ", "Wanneer "},
		Then:       []string{"Dan "},
		And:        []string{"En "},
		But:        []string{"Maar "},
	},
	{
		Tag:        language.Portuguese,
		Feature:    []string{"Funcionalidade", "Característica"},
		Background: []string{"Contexto", "Cenário de Fundo"},
		Scenario:   []string{"Cenário", "Exemplo"},
		Outline:    []string{"Esquema do Cenário"},
		Rule:       []string{"Regra"},
		Examples:   []string{"Exemplos"},
		Given:      []string{"Dado ", "Dada ", "Dados ", "Dadas "},
		When:       []string{"Quando "},
		Then:       []string{"Então ", "Entao "},
		And:        []string{"E "},
		But:        []string{"Mas "},
	},
}

// Star is accepted in every dialect in place of any keyword.
const Star = "* "

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	t := make([]language.Tag, len(dialects))
	for i, d := range dialects {
		t[i] = d.Tag
	}
	return t
}

// English is the default dialect.
func English() Dialect { return dialects[0] }

// Match returns the dialect closest to locale, e.g. "fr-CA" gives French.
func Match(locale string) (Dialect, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return Dialect{}, fmt.Errorf("%w %q: %v", ErrUnknownLocale, locale, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Dialect{}, fmt.Errorf("%w %q", ErrUnknownLocale, locale)
	}
	return dialects[idx], nil
}

// Locales lists the supported locale tags.
func Locales() []string {
	out := make([]string, len(dialects))
	for i, d := range dialects {
		out[i] = d.Tag.String()
	}
	return out
}

// Keywords returns every step keyword of the dialect, longest first so a
// prefix test picks "Étant données " over "Étant donné ".
func (d Dialect) Keywords() []string {
	var all []string
	for _, group := range [][]string{d.Given, d.When, d.Then, d.And, d.But} {
		all = append(all, group...)
	}
	all = append(all, Star)
	sort.SliceStable(all, func(i, j int) bool { return len(all[i]) > len(all[j]) })
	return all
}

func (d Dialect) Kind(keyword string) Kind {
	groups := []struct {
		kind     Kind
		keywords []string
	}{
		{KindGiven, d.Given},
		{KindWhen, d.When},
		{KindThen, d.Then},
		{KindAnd, append(append([]string(nil), d.And...), Star)},
		{KindBut, d.But},
	}
	for _, g := range groups {
		for _, kw := range g.keywords {
			if kw == keyword || strings.TrimSpace(kw) == strings.TrimSpace(keyword) {
				return g.kind
			}
		}
	}
	return KindUnknown
}

// BlockKeyword reports whether trimmed starts with one of keywords followed
// by a colon, and returns the text after the colon.
func BlockKeyword(trimmed string, keywords []string) (rest string, ok bool) {
	for _, kw := range keywords {
		if strings.HasPrefix(trimmed, kw+":") {
			return strings.TrimSpace(trimmed[len(kw)+1:]), true
		}
	}
	return "", false
}

// IsBlock reports whether trimmed opens any block of the dialect.
func (d Dialect) IsBlock(trimmed string) bool {
	for _, group := range [][]string{d.Feature, d.Background, d.Scenario, d.Outline, d.Rule, d.Examples} {
		if _, ok := BlockKeyword(trimmed, group); ok {
			return true
		}
	}
	return false
}

// SplitStep splits a step line into its keyword and text. ok is false when
// the line does not start with a keyword of the dialect.
func (d Dialect) SplitStep(line string) (keyword, text string, ok bool) {
	trimmed := strings.TrimSpace(line)
	for _, kw := range d.Keywords() {
		if strings.HasPrefix(trimmed, kw) {
			return kw, strings.TrimSpace(trimmed[len(kw):]), true
		}
		if trimmed == strings.TrimSpace(kw) {
			return kw, "", true
		}
	}
	return "", "", false
}

// Suggest returns the keyword closest to word, or "" when none is close.
func (d Dialect) Suggest(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	var targets []string
	for _, kw := range d.Keywords() {
		if kw != Star {
			targets = append(targets, strings.TrimSpace(kw))
		}
	}
	ranks := fuzzy.RankFindFold(word, targets)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// CodeKeywordFor turns a feature-file keyword into the identifier used in
// code by dropping whitespace, apostrophes, commas and exclamation marks:
// "Gegeben sei " becomes "Gegebensei", the name cucumber annotations use.
func CodeKeywordFor(keyword string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\'' || r == ',' || r == '!' {
			return -1
		}
		return r
	}, keyword)
}

// KeywordFunc returns CodeKeywordFor; the code keyword of a step depends
// only on how the dialect spells it.
func (d Dialect) KeywordFunc() func(string) string {
	return CodeKeywordFor
}
