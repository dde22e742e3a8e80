package parser

// Layer 1: Tree-sitter-compatible AST types

type Document struct {
	Language string // from a "# language:" header, "en" by default
	Feature  *Feature
}

type Feature struct {
	Header     FeatureHeader
	Background *Background
	Scenarios  []ScenarioDefinition
}

type FeatureHeader struct {
	Tags        []Tag
	Name        string
	Description string
}

type Background struct {
	Description string
	StepGroups  []StepGroup
	Line        int // 1-based line number of Background: line
}

type ScenarioDefinition struct {
	Tags     []Tag
	Scenario Scenario
	Line     int // 1-based line number of Scenario: line
}

type Scenario struct {
	Name        string
	Description string
	StepGroups  []StepGroup
}

type Tag struct {
	Name string // e.g. "@smoke", "@ft:42"
}

type StepGroup struct {
	Step     Step
	AltSteps []Step // And, But, *
}

type Step struct {
	Keyword  string // as written, trailing space included: "Given ", "Soit ", "* "
	Text     string
	Line     int
	Argument *StepArgument
}

type StepArgument struct {
	DocString *DocString
	DataTable *DataTable
}

type DocString struct {
	MediaType string
	Content   string
}

type DataTable struct {
	HeaderRow []string
	Rows      [][]string
}

type ParseError struct {
	Line    int
	Message string
}
