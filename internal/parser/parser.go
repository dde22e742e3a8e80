package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chriserin/ftsnip/internal/i18n"
)

var (
	tagPattern      = regexp.MustCompile(`@[^@\s]+`)
	languagePattern = regexp.MustCompile(`^#\s*language\s*:\s*(\S+)\s*$`)
)

type parser struct {
	lines   []string
	dialect i18n.Dialect
	errors  []ParseError
}

// Parse parses a .ft file and returns a Document AST and any parse errors.
// Keywords are read in the language named by a leading "# language:"
// comment, English otherwise.
func Parse(filename string, content []byte) (*Document, []ParseError) {
	p := &parser{
		lines:   strings.Split(string(content), "\n"),
		dialect: i18n.English(),
	}

	doc := &Document{Language: p.dialect.Tag.String()}
	feature := &Feature{}
	doc.Feature = feature

	i := 0

	// Skip leading blanks and comments, honouring a language header
	for i < len(p.lines) {
		trimmed := strings.TrimSpace(p.lines[i])
		if m := languagePattern.FindStringSubmatch(trimmed); m != nil {
			d, err := i18n.Match(m[1])
			if err != nil {
				p.errors = append(p.errors, ParseError{Line: i + 1, Message: fmt.Sprintf("unknown language %q", m[1])})
			} else {
				p.dialect = d
				doc.Language = d.Tag.String()
			}
			i++
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}
		break
	}

	// Collect feature-level tags
	var featureTags []Tag
	for i < len(p.lines) {
		trimmed := strings.TrimSpace(p.lines[i])
		if isTagLine(trimmed) {
			featureTags = append(featureTags, parseTags(trimmed)...)
			i++
			continue
		}
		break
	}
	feature.Header.Tags = featureTags
	feature.Header.Name = filenameWithoutExt(filename)

	// Look for Feature: line
	if i < len(p.lines) {
		if name, ok := i18n.BlockKeyword(strings.TrimSpace(p.lines[i]), p.dialect.Feature); ok {
			feature.Header.Name = name
			i++

			// Scan description lines until keyword or tag
			var descLines []string
			for i < len(p.lines) {
				trimmed := strings.TrimSpace(p.lines[i])
				if p.dialect.IsBlock(trimmed) || isTagLine(trimmed) {
					break
				}
				descLines = append(descLines, p.lines[i])
				i++
			}
			if len(descLines) > 0 {
				feature.Header.Description = strings.Join(descLines, "\n")
			}
		}
	}

	// Body loop
	var pendingTags []Tag
	for i < len(p.lines) {
		trimmed := strings.TrimSpace(p.lines[i])

		// Skip doc strings
		if isDocStringDelimiter(trimmed) {
			i, _ = p.readDocString(i)
			continue
		}

		// Skip blank lines and comments in body
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			i++
			continue
		}

		// Tag line
		if isTagLine(trimmed) {
			pendingTags = append(pendingTags, parseTags(trimmed)...)
			i++
			continue
		}

		if _, ok := i18n.BlockKeyword(trimmed, p.dialect.Background); ok {
			pendingTags = nil // Background doesn't get tags
			bg := &Background{Line: i + 1}
			bg.StepGroups, i = p.readSteps(i + 1)
			feature.Background = bg
			continue
		}

		if name, ok := i18n.BlockKeyword(trimmed, p.dialect.Scenario); ok {
			sd := ScenarioDefinition{
				Tags:     pendingTags,
				Scenario: Scenario{Name: name},
				Line:     i + 1,
			}
			pendingTags = nil
			sd.Scenario.StepGroups, i = p.readSteps(i + 1)
			feature.Scenarios = append(feature.Scenarios, sd)
			continue
		}

		// Unsupported keywords
		unsupported := []struct {
			keywords []string
			message  string
		}{
			{p.dialect.Outline, "Scenario Outline is not supported"},
			{p.dialect.Rule, "Rule is not supported"},
			{p.dialect.Examples, "Examples is not supported"},
		}
		handled := false
		for _, u := range unsupported {
			if _, ok := i18n.BlockKeyword(trimmed, u.keywords); ok {
				p.errors = append(p.errors, ParseError{Line: i + 1, Message: u.message})
				pendingTags = nil
				i = p.consumeBlock(i + 1)
				handled = true
				break
			}
		}
		if handled {
			continue
		}

		// Otherwise a content line of the current block, skip
		i++
	}

	return doc, p.errors
}

// readSteps collects the steps of a Background or Scenario starting at
// line i, stopping at the next block keyword, at a tag line that precedes
// one, or at EOF. Doc strings and tables attach to the preceding step.
func (p *parser) readSteps(i int) ([]StepGroup, int) {
	var groups []StepGroup
	var last *Step

	for i < len(p.lines) {
		t := strings.TrimSpace(p.lines[i])

		if isDocStringDelimiter(t) {
			var ds *DocString
			i, ds = p.readDocString(i)
			if last != nil {
				argumentOf(last).DocString = ds
			}
			continue
		}
		if p.dialect.IsBlock(t) {
			break
		}
		if isTagLine(t) && p.tagPrecedesKeyword(i) {
			break
		}
		if strings.HasPrefix(t, "|") {
			if last != nil {
				addTableRow(argumentOf(last), t)
			}
			i++
			continue
		}

		if keyword, text, ok := p.dialect.SplitStep(t); ok {
			step := Step{Keyword: keyword, Text: text, Line: i + 1}
			kind := p.dialect.Kind(keyword)
			if (kind == i18n.KindAnd || kind == i18n.KindBut) && len(groups) > 0 {
				g := &groups[len(groups)-1]
				g.AltSteps = append(g.AltSteps, step)
				last = &g.AltSteps[len(g.AltSteps)-1]
			} else {
				groups = append(groups, StepGroup{Step: step})
				last = &groups[len(groups)-1].Step
			}
		}
		i++
	}
	return groups, i
}

func argumentOf(s *Step) *StepArgument {
	if s.Argument == nil {
		s.Argument = &StepArgument{}
	}
	return s.Argument
}

func addTableRow(arg *StepArgument, line string) {
	cells := strings.Split(strings.Trim(line, "|"), "|")
	for j := range cells {
		cells[j] = strings.TrimSpace(cells[j])
	}
	if arg.DataTable == nil {
		arg.DataTable = &DataTable{HeaderRow: cells}
		return
	}
	arg.DataTable.Rows = append(arg.DataTable.Rows, cells)
}

func parseTags(line string) []Tag {
	matches := tagPattern.FindAllString(line, -1)
	var tags []Tag
	for _, m := range matches {
		tags = append(tags, Tag{Name: m})
	}
	return tags
}

func isTagLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "@")
}

func isDocStringDelimiter(trimmed string) bool {
	return strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "```")
}

// readDocString reads a doc string block. i points at the opening delimiter.
// Returns the index of the line after the closing delimiter.
func (p *parser) readDocString(i int) (int, *DocString) {
	opener := strings.TrimSpace(p.lines[i])
	delimiter := `"""`
	if strings.HasPrefix(opener, "```") {
		delimiter = "```"
	}
	ds := &DocString{MediaType: strings.TrimSpace(strings.TrimPrefix(opener, delimiter))}
	indent := len(p.lines[i]) - len(strings.TrimLeft(p.lines[i], " \t"))

	var content []string
	i++ // move past opening delimiter
	for i < len(p.lines) {
		if strings.TrimSpace(p.lines[i]) == delimiter {
			ds.Content = strings.Join(content, "\n")
			return i + 1, ds // past the closing delimiter
		}
		content = append(content, dedent(p.lines[i], indent))
		i++
	}
	ds.Content = strings.Join(content, "\n")
	return i, ds // EOF without closing delimiter
}

// dedent strips up to n leading blanks from line.
func dedent(line string, n int) string {
	j := 0
	for j < n && j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	return line[j:]
}

// consumeBlock advances past content lines, skipping over doc strings,
// until the next keyword, tag line, or EOF.
func (p *parser) consumeBlock(i int) int {
	for i < len(p.lines) {
		t := strings.TrimSpace(p.lines[i])
		if isDocStringDelimiter(t) {
			i, _ = p.readDocString(i)
			continue
		}
		if p.dialect.IsBlock(t) || isTagLine(t) {
			break
		}
		i++
	}
	return i
}

// tagPrecedesKeyword checks if a tag line at index i is followed by a block keyword line.
func (p *parser) tagPrecedesKeyword(i int) bool {
	for j := i + 1; j < len(p.lines); j++ {
		t := strings.TrimSpace(p.lines[j])
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		if isTagLine(t) {
			continue
		}
		return p.dialect.IsBlock(t)
	}
	return false
}
