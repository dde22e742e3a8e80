package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/chriserin/ftsnip/internal/db"
	"github.com/chriserin/ftsnip/internal/parser"
	"github.com/chriserin/ftsnip/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan fts/ for .ft files and track their steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer) error {
	if _, err := os.Stat("fts"); os.IsNotExist(err) {
		return fmt.Errorf("run `ft init` first")
	}

	sqlDB, err := db.Open("fts/ft.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	matches, err := filepath.Glob("fts/*.ft")
	if err != nil {
		return fmt.Errorf("scanning fts/: %w", err)
	}
	sort.Strings(matches)

	count, steps := 0, 0
	for _, path := range matches {
		var id int64
		err := sqlDB.QueryRow(`SELECT id FROM files WHERE file_path = ?`, path).Scan(&id)
		if err == sql.ErrNoRows {
			res, err := sqlDB.Exec(`INSERT INTO files (file_path) VALUES (?)`, path)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			if id, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			ui.NewLine(w, path)
		} else if err != nil {
			return fmt.Errorf("querying %s: %w", path, err)
		} else {
			ui.TrkLine(w, path)
		}

		n, err := syncSteps(w, sqlDB, id, path)
		if err != nil {
			return err
		}
		steps += n
		count++
	}

	if err := removeMissing(w, sqlDB, matches); err != nil {
		return err
	}

	ui.SummaryLine(w, count, steps)
	return nil
}

// syncSteps replaces the tracked steps of one file with its current steps.
func syncSteps(w io.Writer, sqlDB *sql.DB, fileID int64, path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, parseErrors := parser.Parse(path, content)
	pf := parser.Transform(doc, path, content, parseErrors)
	for _, pe := range pf.Errors {
		ui.WarnLine(w, path, pe.Line, pe.Message)
	}

	tx, err := sqlDB.Begin()
	if err != nil {
		return 0, fmt.Errorf("syncing %s: %w", path, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM steps WHERE file_id = ?`, fileID); err != nil {
		return 0, fmt.Errorf("clearing steps of %s: %w", path, err)
	}
	for _, s := range pf.Steps {
		_, err := tx.Exec(`INSERT INTO steps (file_id, line, keyword, text, scenario) VALUES (?, ?, ?, ?, ?)`,
			fileID, s.Line, s.Keyword, s.Text, s.Scenario)
		if err != nil {
			return 0, fmt.Errorf("inserting step %s:%d: %w", path, s.Line, err)
		}
	}
	_, err = tx.Exec(`UPDATE files SET language = ?, updated_at = datetime('now') WHERE id = ?`, pf.Language, fileID)
	if err != nil {
		return 0, fmt.Errorf("updating %s: %w", path, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing %s: %w", path, err)
	}

	logger.Debug("synced file", "path", path, "language", pf.Language, "steps", len(pf.Steps), "errors", len(pf.Errors))
	return len(pf.Steps), nil
}

// removeMissing forgets files that are no longer on disk.
func removeMissing(w io.Writer, sqlDB *sql.DB, present []string) error {
	onDisk := make(map[string]bool, len(present))
	for _, p := range present {
		onDisk[p] = true
	}

	rows, err := sqlDB.Query(`SELECT id, file_path FROM files ORDER BY file_path`)
	if err != nil {
		return fmt.Errorf("querying files: %w", err)
	}
	var gone []int64
	var gonePaths []string
	for rows.Next() {
		var id int64
		var path string
		if err := rows.Scan(&id, &path); err != nil {
			rows.Close()
			return fmt.Errorf("scanning file row: %w", err)
		}
		if !onDisk[path] {
			gone = append(gone, id)
			gonePaths = append(gonePaths, path)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating files: %w", err)
	}

	for i, id := range gone {
		if _, err := sqlDB.Exec(`DELETE FROM files WHERE id = ?`, id); err != nil {
			return fmt.Errorf("removing %s: %w", gonePaths[i], err)
		}
		ui.DelLine(w, gonePaths[i])
	}
	return nil
}
