package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleScenario(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Given a user
    When  they log in
    Then  they see the dashboard
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	assert.Equal(t, "Login", doc.Feature.Header.Name)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "User logs in", doc.Feature.Scenarios[0].Scenario.Name)
	assert.Equal(t, 2, doc.Feature.Scenarios[0].Line)
}

func TestParse_MultipleScenarios(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Given a user

  Scenario: User fails login
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 2)
	assert.Equal(t, "User logs in", doc.Feature.Scenarios[0].Scenario.Name)
	assert.Equal(t, "User fails login", doc.Feature.Scenarios[1].Scenario.Name)
}

func TestParse_Background(t *testing.T) {
	content := []byte(`Feature: Login
  Background:
    Given a registered user

  Scenario: User logs in
    When  they log in
    Then  they see the dashboard
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	assert.NotNil(t, doc.Feature.Background)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "User logs in", doc.Feature.Scenarios[0].Scenario.Name)
}

func TestParse_ExistingFtTags(t *testing.T) {
	content := []byte(`Feature: Login
  @ft:1
  Scenario: User logs in
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 1)
	require.Len(t, doc.Feature.Scenarios[0].Tags, 1)
	assert.Equal(t, "@ft:1", doc.Feature.Scenarios[0].Tags[0].Name)
}

func TestParse_ScenarioOutlineError(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario Outline: User logs in
    Given a user
`)
	_, errors := Parse("login.ft", content)
	require.Len(t, errors, 1)
	assert.Equal(t, "Scenario Outline is not supported", errors[0].Message)
	assert.Equal(t, 2, errors[0].Line)
}

func TestParse_RuleError(t *testing.T) {
	content := []byte(`Feature: Login
  Rule: Business rule
    Scenario: Test
`)
	_, errors := Parse("login.ft", content)
	require.Len(t, errors, 1)
	assert.Equal(t, "Rule is not supported", errors[0].Message)
}

func TestParse_ExamplesError(t *testing.T) {
	content := []byte(`Feature: Login
  Examples: Table
    | a |
`)
	_, errors := Parse("login.ft", content)
	require.Len(t, errors, 1)
	assert.Equal(t, "Examples is not supported", errors[0].Message)
}

func TestParse_NoFeatureLine(t *testing.T) {
	content := []byte(`  Scenario: User logs in
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	assert.Equal(t, "login", doc.Feature.Header.Name)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "User logs in", doc.Feature.Scenarios[0].Scenario.Name)
}

func TestParse_BlankLinesWithinScenario(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Given a user

    When  they log in

    Then  they see the dashboard
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "User logs in", doc.Feature.Scenarios[0].Scenario.Name)
}

func TestParse_Comments(t *testing.T) {
	content := []byte(`# This is a comment
Feature: Login
  # Another comment
  Scenario: User logs in
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	assert.Equal(t, "Login", doc.Feature.Header.Name)
	require.Len(t, doc.Feature.Scenarios, 1)
}

func TestParse_MultipleTags(t *testing.T) {
	content := []byte(`Feature: Login
  @smoke @ft:5 @regression
  Scenario: User logs in
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 1)
	tags := doc.Feature.Scenarios[0].Tags
	require.Len(t, tags, 3)
	assert.Equal(t, "@smoke", tags[0].Name)
	assert.Equal(t, "@ft:5", tags[1].Name)
	assert.Equal(t, "@regression", tags[2].Name)
}

func TestParse_EmptyFile(t *testing.T) {
	content := []byte("")
	doc, errors := Parse("empty.ft", content)
	require.Empty(t, errors)
	assert.Equal(t, "empty", doc.Feature.Header.Name)
}

func TestParse_TagsBeforeMultipleScenarios(t *testing.T) {
	content := []byte(`Feature: Login
  @tag1
  Scenario: First
    Given a

  @tag2
  Scenario: Second
    Given b
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 2)
	require.Len(t, doc.Feature.Scenarios[0].Tags, 1)
	assert.Equal(t, "@tag1", doc.Feature.Scenarios[0].Tags[0].Name)
	require.Len(t, doc.Feature.Scenarios[1].Tags, 1)
	assert.Equal(t, "@tag2", doc.Feature.Scenarios[1].Tags[0].Name)
}

func TestParse_DocStringContentIsOpaque(t *testing.T) {
	content := []byte(`Feature: Parse Scenarios
  Scenario: Already-tagged scenario is skipped
    Given the file fts/login.ft contains:
      """
      Feature: Login
        @ft:1
        Scenario: User logs in
          Given a user
      """
    When the user runs sync
    Then no new scenarios record is created
`)
	doc, errors := Parse("test.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "Already-tagged scenario is skipped", doc.Feature.Scenarios[0].Scenario.Name)
}

func TestParse_DocStringWithBackticks(t *testing.T) {
	content := []byte("Feature: Test\n  Scenario: Has code block\n    Given content:\n      ```\n      Scenario: Not real\n      @ft:99\n      ```\n    Then it works\n")
	doc, errors := Parse("test.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "Has code block", doc.Feature.Scenarios[0].Scenario.Name)
}

func TestParse_MultipleScenarios_WithDocStrings(t *testing.T) {
	content := []byte(`Feature: Phase 3
  Scenario: First
    Given file contains:
      """
      Feature: Login
        Scenario: Inner
      """
    Then it works

  Scenario: Second
    Given something
`)
	doc, errors := Parse("test.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 2)
	assert.Equal(t, "First", doc.Feature.Scenarios[0].Scenario.Name)
	assert.Equal(t, "Second", doc.Feature.Scenarios[1].Scenario.Name)
}

func TestParse_ScenarioSteps(t *testing.T) {
	content := []byte(`Feature: Cukes
  Scenario: Eating
    Given I have 5 cukes in my "belly"
    And I am hungry
    When I eat 2 cukes
    Then I have 3 cukes
    But I am not full
`)
	doc, errors := Parse("cukes.ft", content)
	require.Empty(t, errors)
	require.Len(t, doc.Feature.Scenarios, 1)

	groups := doc.Feature.Scenarios[0].Scenario.StepGroups
	require.Len(t, groups, 3)
	assert.Equal(t, Step{Keyword: "Given ", Text: `I have 5 cukes in my "belly"`, Line: 3}, groups[0].Step)
	require.Len(t, groups[0].AltSteps, 1)
	assert.Equal(t, "I am hungry", groups[0].AltSteps[0].Text)
	assert.Equal(t, "When ", groups[1].Step.Keyword)
	require.Len(t, groups[2].AltSteps, 1)
	assert.Equal(t, "But ", groups[2].AltSteps[0].Keyword)
	assert.Equal(t, 7, groups[2].AltSteps[0].Line)
}

func TestParse_BackgroundSteps(t *testing.T) {
	content := []byte(`Feature: Login
  Background:
    Given a registered user
    * a clean database

  Scenario: User logs in
    When they log in
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	require.NotNil(t, doc.Feature.Background)
	assert.Equal(t, 2, doc.Feature.Background.Line)

	groups := doc.Feature.Background.StepGroups
	require.Len(t, groups, 1)
	assert.Equal(t, "a registered user", groups[0].Step.Text)
	require.Len(t, groups[0].AltSteps, 1)
	assert.Equal(t, "* ", groups[0].AltSteps[0].Keyword)
}

func TestParse_DocStringAttachesToStep(t *testing.T) {
	content := []byte(`Feature: Docs
  Scenario: With doc string
    Given the file contains:
      """json
      {"a": 1}
        nested
      """
    Then it is read
`)
	doc, errors := Parse("docs.ft", content)
	require.Empty(t, errors)

	groups := doc.Feature.Scenarios[0].Scenario.StepGroups
	require.Len(t, groups, 2)
	require.NotNil(t, groups[0].Step.Argument)
	require.NotNil(t, groups[0].Step.Argument.DocString)
	assert.Equal(t, "json", groups[0].Step.Argument.DocString.MediaType)
	assert.Equal(t, "{\"a\": 1}\n  nested", groups[0].Step.Argument.DocString.Content)
	assert.Equal(t, "it is read", groups[1].Step.Text)
}

func TestParse_DataTableAttachesToStep(t *testing.T) {
	content := []byte(`Feature: Tables
  Scenario: Users
    Given these users:
      | name | age |
      | Sid  | 21  |
      | Nan  | 30  |
    Then there are 2 users
`)
	doc, errors := Parse("tables.ft", content)
	require.Empty(t, errors)

	groups := doc.Feature.Scenarios[0].Scenario.StepGroups
	require.Len(t, groups, 2)
	table := groups[0].Step.Argument.DataTable
	require.NotNil(t, table)
	assert.Equal(t, []string{"name", "age"}, table.HeaderRow)
	assert.Equal(t, [][]string{{"Sid", "21"}, {"Nan", "30"}}, table.Rows)
}

func TestParse_LanguageHeader(t *testing.T) {
	content := []byte(`# language: fr
Fonctionnalité: Concombres
  Scénario: Manger
    Soit j'ai 5 concombres
    Quand je mange 2 concombres
    Alors j'ai 3 concombres
`)
	doc, errors := Parse("concombres.ft", content)
	require.Empty(t, errors)
	assert.Equal(t, "fr", doc.Language)
	assert.Equal(t, "Concombres", doc.Feature.Header.Name)
	require.Len(t, doc.Feature.Scenarios, 1)
	assert.Equal(t, "Manger", doc.Feature.Scenarios[0].Scenario.Name)

	groups := doc.Feature.Scenarios[0].Scenario.StepGroups
	require.Len(t, groups, 3)
	assert.Equal(t, "Soit ", groups[0].Step.Keyword)
	assert.Equal(t, "j'ai 5 concombres", groups[0].Step.Text)
}

func TestParse_UnknownLanguage(t *testing.T) {
	content := []byte(`# language: xx-unknown
Feature: Login
  Scenario: User logs in
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Len(t, errors, 1)
	assert.Equal(t, 1, errors[0].Line)
	assert.Contains(t, errors[0].Message, "unknown language")
	assert.Equal(t, "en", doc.Language)
	require.Len(t, doc.Feature.Scenarios, 1)
}

func TestParse_DescriptionLinesAreNotSteps(t *testing.T) {
	content := []byte(`Feature: Login
  Scenario: User logs in
    Some free description
    Given a user
`)
	doc, errors := Parse("login.ft", content)
	require.Empty(t, errors)
	groups := doc.Feature.Scenarios[0].Scenario.StepGroups
	require.Len(t, groups, 1)
	assert.Equal(t, "a user", groups[0].Step.Text)
}
