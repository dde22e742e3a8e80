package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chriserin/ftsnip/internal/db"
	"github.com/chriserin/ftsnip/internal/snippet"
	"github.com/chriserin/ftsnip/internal/ui"
	"github.com/spf13/cobra"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Print one snippet per distinct step pattern across all tracked steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSnippets(cmd.OutOrStdout(), langFlag)
	},
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
}

// RunSnippets prints snippets in file then line order. Steps whose pattern
// was already printed share that step definition and are skipped.
func RunSnippets(w io.Writer, lang string) error {
	if _, err := os.Stat("fts"); os.IsNotExist(err) {
		return fmt.Errorf("run `ft init` first")
	}

	gens, err := newGenerators(lang)
	if err != nil {
		return err
	}

	sqlDB, err := db.Open("fts/ft.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := queryStepRows(sqlDB)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	printed := 0
	for _, r := range rows {
		gen, _, err := gens.forLocale(r.language)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", r.filePath, r.line, err)
		}
		pattern := gen.Pattern(r.text)
		if seen[pattern] {
			logger.Debug("step shares a pattern", "path", r.filePath, "line", r.line, "pattern", pattern)
			continue
		}
		seen[pattern] = true

		if printed > 0 {
			fmt.Fprintln(w)
		}
		ui.SnippetHeader(w, fmt.Sprintf("%s:%d", r.filePath, r.line), r.step())
		ui.Snippet(w, gen.Snippet(snippet.Step{Keyword: r.keyword, Name: r.text}))
		printed++
	}

	if printed == 0 {
		fmt.Fprintln(w, "no tracked steps")
	}
	return nil
}
