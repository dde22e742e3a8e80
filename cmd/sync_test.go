package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/ftsnip/internal/db"
)

func runSync(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunSync(&buf))
	return buf.String()
}

func countSteps(t *testing.T) int {
	t.Helper()
	sqlDB, err := db.Open("fts/ft.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM steps`).Scan(&count))
	return count
}

const cukesFeature = `Feature: Cukes
  Background:
    Given I have 5 cukes in my "belly"

  Scenario: Eating
    When I eat 2 cukes
    Then I have 3 cukes in my "belly"
    And I am happy
`

func TestSync_RegisterNewFile(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/login.ft", []byte(""), 0o644))

	out := runSync(t)

	sqlDB, err := db.Open("fts/ft.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var filePath string
	require.NoError(t, sqlDB.QueryRow(`SELECT file_path FROM files WHERE file_path = ?`, "fts/login.ft").Scan(&filePath))
	assert.Equal(t, "fts/login.ft", filePath)
	assert.Contains(t, out, "new  fts/login.ft")
}

func TestSync_RegisterMultipleFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/login.ft", []byte(""), 0o644))
	require.NoError(t, os.WriteFile("fts/checkout.ft", []byte(""), 0o644))

	out := runSync(t)

	assert.Contains(t, out, "new  fts/login.ft")
	assert.Contains(t, out, "new  fts/checkout.ft")
	assert.Contains(t, out, "synced 2 files")
}

func TestSync_ShowAlreadyTrackedFile(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/login.ft", []byte(""), 0o644))

	runSync(t) // first sync registers

	out := runSync(t) // second sync shows tracked

	assert.Contains(t, out, "trk  fts/login.ft")
}

func TestSync_NoFtFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runSync(t)

	assert.Contains(t, out, "synced 0 files, 0 steps")
}

func TestSync_NonFtFilesIgnored(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/notes.txt", []byte("Given not a step"), 0o644))
	require.NoError(t, os.WriteFile("fts/login.ft", []byte(""), 0o644))

	out := runSync(t)

	assert.NotContains(t, out, "notes.txt")
	assert.Contains(t, out, "synced 1 files")
}

func TestSync_WithoutInit(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	err := RunSync(&buf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run `ft init` first")
}

func TestSync_TracksSteps(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/cukes.ft", []byte(cukesFeature), 0o644))

	out := runSync(t)

	assert.Contains(t, out, "synced 1 files, 4 steps")

	sqlDB, err := db.Open("fts/ft.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var keyword, text, scenario string
	require.NoError(t, sqlDB.QueryRow(`SELECT keyword, text, scenario FROM steps WHERE line = 6`).Scan(&keyword, &text, &scenario))
	assert.Equal(t, "When ", keyword)
	assert.Equal(t, "I eat 2 cukes", text)
	assert.Equal(t, "Eating", scenario)
}

func TestSync_IsIdempotent(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/cukes.ft", []byte(cukesFeature), 0o644))

	runSync(t)
	runSync(t)

	assert.Equal(t, 4, countSteps(t))
}

func TestSync_ReplacesEditedSteps(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/cukes.ft", []byte(cukesFeature), 0o644))
	runSync(t)

	require.NoError(t, os.WriteFile("fts/cukes.ft", []byte(`Feature: Cukes
  Scenario: Eating
    When I eat 2 cukes
`), 0o644))
	out := runSync(t)

	assert.Contains(t, out, "synced 1 files, 1 steps")
	assert.Equal(t, 1, countSteps(t))
}

func TestSync_RemovesDeletedFiles(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/cukes.ft", []byte(cukesFeature), 0o644))
	runSync(t)

	require.NoError(t, os.Remove("fts/cukes.ft"))
	out := runSync(t)

	assert.Contains(t, out, "del  fts/cukes.ft")
	assert.Equal(t, 0, countSteps(t))
}

func TestSync_ReportsParseErrors(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/login.ft", []byte(`Feature: Login
  Scenario Outline: User logs in
    Given a user
`), 0o644))

	out := runSync(t)

	assert.Contains(t, out, "wrn  fts/login.ft:2: Scenario Outline is not supported")
}

func TestSync_StoresFileLanguage(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("fts/concombres.ft", []byte(`# language: fr
Fonctionnalité: Concombres
  Scénario: Manger
    Soit j'ai 5 concombres
`), 0o644))

	runSync(t)

	sqlDB, err := db.Open("fts/ft.db")
	require.NoError(t, err)
	defer sqlDB.Close()

	var language string
	require.NoError(t, sqlDB.QueryRow(`SELECT language FROM files WHERE file_path = ?`, "fts/concombres.ft").Scan(&language))
	assert.Equal(t, "fr", language)
}
