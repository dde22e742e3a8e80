package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chriserin/ftsnip/internal/db"
	"github.com/chriserin/ftsnip/internal/i18n"
	"github.com/chriserin/ftsnip/internal/snippet"
	"github.com/chriserin/ftsnip/internal/ui"
	"github.com/spf13/cobra"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet <id | step>",
	Short: "Print the snippet for a tracked step or for a step line",
	Example: `  ft snippet 12
  ft snippet 'Given I have 5 cukes in my "belly"'
  ft snippet --lang ruby --locale fr "Soit j'ai 5 concombres"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSnippet(cmd.OutOrStdout(), strings.Join(args, " "), langFlag, localeFlag)
	},
}

func init() {
	rootCmd.AddCommand(snippetCmd)
}

func RunSnippet(w io.Writer, arg, lang, locale string) error {
	gens, err := newGenerators(lang)
	if err != nil {
		return err
	}

	if id, ok := parseStepID(arg); ok {
		return snippetForID(w, gens, id)
	}

	gen, d, err := gens.forLocale(locale)
	if err != nil {
		return err
	}
	keyword, text, ok := d.SplitStep(arg)
	if !ok {
		return unknownKeyword(d, arg)
	}
	ui.Snippet(w, gen.Snippet(snippet.Step{Keyword: keyword, Name: text}))
	return nil
}

func snippetForID(w io.Writer, gens *generators, id int64) error {
	if _, err := os.Stat("fts"); os.IsNotExist(err) {
		return fmt.Errorf("run `ft init` first")
	}

	sqlDB, err := db.Open("fts/ft.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	r, err := queryStepRow(sqlDB, id)
	if err != nil {
		return err
	}
	gen, _, err := gens.forLocale(r.language)
	if err != nil {
		return fmt.Errorf("step #%d: %w", id, err)
	}

	ui.SnippetHeader(w, fmt.Sprintf("%s:%d", r.filePath, r.line), r.step())
	ui.Snippet(w, gen.Snippet(snippet.Step{Keyword: r.keyword, Name: r.text}))
	return nil
}

// parseStepID accepts "12" and "#12".
func parseStepID(raw string) (int64, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

func unknownKeyword(d i18n.Dialect, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("empty step: expected a keyword such as %q", strings.TrimSpace(d.Given[0]))
	}
	if suggestion := d.Suggest(fields[0]); suggestion != "" {
		return fmt.Errorf("unknown step keyword %q (did you mean %q?)", fields[0], suggestion)
	}
	return fmt.Errorf("unknown step keyword %q for locale %s", fields[0], d.Tag)
}
