package parser

import (
	"strings"
)

// ParsedFile is the Layer 2 application model extracted from the AST.
type ParsedFile struct {
	Name      string
	Language  string
	Scenarios []ParsedScenario
	Steps     []ParsedStep
	Errors    []ParseError
}

// ParsedScenario represents a single scenario extracted from a .ft file.
type ParsedScenario struct {
	Name      string   // from Scenario: line
	FtTag     string   // just the ID portion, e.g. "1"
	OtherTags []string // non-@ft tags
	Content   string   // raw text from Scenario: line to end of scenario
	Line      int      // 1-based line number of Scenario: line
}

// ParsedStep is one step line, in file order. Background steps have an
// empty Scenario.
type ParsedStep struct {
	Keyword  string
	Text     string
	Line     int
	Scenario string
}

// Transform converts a Layer 1 Document into a Layer 2 ParsedFile.
func Transform(doc *Document, filename string, content []byte, errors []ParseError) *ParsedFile {
	pf := &ParsedFile{
		Language: doc.Language,
		Errors:   errors,
	}

	if doc.Feature != nil {
		pf.Name = doc.Feature.Header.Name
	} else {
		pf.Name = filenameWithoutExt(filename)
	}

	if doc.Feature == nil {
		return pf
	}

	if bg := doc.Feature.Background; bg != nil {
		pf.Steps = append(pf.Steps, flattenSteps(bg.StepGroups, "")...)
	}

	lines := strings.Split(string(content), "\n")

	for _, sd := range doc.Feature.Scenarios {
		ps := ParsedScenario{
			Name: sd.Scenario.Name,
			Line: sd.Line,
		}

		// Partition tags into FtTag vs OtherTags
		for _, tag := range sd.Tags {
			if strings.HasPrefix(tag.Name, "@ft:") {
				ps.FtTag = strings.TrimPrefix(tag.Name, "@ft:")
			} else {
				ps.OtherTags = append(ps.OtherTags, tag.Name)
			}
		}

		// Extract content: from Scenario: line to end of scenario
		startLine := sd.Line - 1 // 0-based
		endLine := len(lines)

		// The scenario ends before the next block that follows it
		nextStarts := make([]int, 0, len(doc.Feature.Scenarios)+1)
		for _, other := range doc.Feature.Scenarios {
			nextStarts = append(nextStarts, other.Line)
		}
		if doc.Feature.Background != nil {
			nextStarts = append(nextStarts, doc.Feature.Background.Line)
		}
		for _, next := range nextStarts {
			if next > sd.Line && next-1 < endLine {
				candidateEnd := next - 1 // 0-based index of next block line
				// Walk back to exclude tag lines and blank lines before the next block
				for candidateEnd > startLine {
					t := strings.TrimSpace(lines[candidateEnd-1])
					if t == "" || strings.HasPrefix(t, "@") || strings.HasPrefix(t, "#") {
						candidateEnd--
					} else {
						break
					}
				}
				if candidateEnd < endLine {
					endLine = candidateEnd
				}
			}
		}

		// Trim trailing blank lines
		for endLine > startLine && strings.TrimSpace(lines[endLine-1]) == "" {
			endLine--
		}

		if startLine < len(lines) {
			contentLines := lines[startLine:endLine]
			ps.Content = strings.Join(contentLines, "\n")
		}

		pf.Scenarios = append(pf.Scenarios, ps)
		pf.Steps = append(pf.Steps, flattenSteps(sd.Scenario.StepGroups, sd.Scenario.Name)...)
	}

	return pf
}

func flattenSteps(groups []StepGroup, scenario string) []ParsedStep {
	var steps []ParsedStep
	for _, g := range groups {
		for _, s := range append([]Step{g.Step}, g.AltSteps...) {
			steps = append(steps, ParsedStep{
				Keyword:  s.Keyword,
				Text:     s.Text,
				Line:     s.Line,
				Scenario: scenario,
			})
		}
	}
	return steps
}

func filenameWithoutExt(filename string) string {
	name := filename
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	return name
}
