package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepRow_PadsColumns(t *testing.T) {
	var buf bytes.Buffer
	StepRow(&buf, 7, "a.ft:3", "Given a", 3, 8)
	StepRow(&buf, 12, "abc.ft:10", "When b", 3, 8)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	assert.Equal(t, "#7   a.ft:3    Given a", lines[0])
	assert.Equal(t, "#12  abc.ft:10  When b", lines[1])
}

func TestWarnLine(t *testing.T) {
	var buf bytes.Buffer
	WarnLine(&buf, "fts/a.ft", 4, "Rule is not supported")

	assert.Equal(t, "wrn  fts/a.ft:4: Rule is not supported\n", buf.String())
}

func TestSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	SummaryLine(&buf, 2, 9)

	assert.Equal(t, "synced 2 files, 9 steps\n", buf.String())
}
