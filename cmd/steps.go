package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriserin/ftsnip/internal/db"
	"github.com/chriserin/ftsnip/internal/ui"
	"github.com/spf13/cobra"
)

var fileFlag string

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List all tracked steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSteps(cmd.OutOrStdout(), fileFlag)
	},
}

func init() {
	stepsCmd.Flags().StringVar(&fileFlag, "file", "", "Only list steps of this file (name or path)")
	rootCmd.AddCommand(stepsCmd)
}

type stepRow struct {
	id       int64
	filePath string
	line     int
	keyword  string
	text     string
	language string
}

func (r stepRow) location() string {
	return fmt.Sprintf("%s:%d", filepath.Base(r.filePath), r.line)
}

func (r stepRow) step() string {
	return r.keyword + r.text
}

// matchesFile reports whether filter names the row's file by path, base
// name, or base name without extension.
func (r stepRow) matchesFile(filter string) bool {
	if filter == "" {
		return true
	}
	base := filepath.Base(r.filePath)
	return filter == r.filePath || filter == base || filter == strings.TrimSuffix(base, filepath.Ext(base))
}

func RunSteps(w io.Writer, fileFilter string) error {
	if _, err := os.Stat("fts"); os.IsNotExist(err) {
		return fmt.Errorf("run `ft init` first")
	}

	sqlDB, err := db.Open("fts/ft.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	all, err := queryStepRows(sqlDB)
	if err != nil {
		return err
	}

	var results []stepRow
	for _, r := range all {
		if r.matchesFile(fileFilter) {
			results = append(results, r)
		}
	}

	if len(results) == 0 {
		return nil
	}

	// Compute column widths
	idWidth, locWidth := 0, 0
	for _, r := range results {
		if n := len(fmt.Sprintf("#%d", r.id)); n > idWidth {
			idWidth = n
		}
		if n := len(r.location()); n > locWidth {
			locWidth = n
		}
	}

	for _, r := range results {
		ui.StepRow(w, r.id, r.location(), r.step(), idWidth, locWidth)
	}

	return nil
}
