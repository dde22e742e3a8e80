package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/chriserin/ftsnip/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ft in the current directory",
	Long: `Initialize ft in the current directory: create fts/ and its step database,
ignore the database in git, and record the snippet language and keyword locale
in .env so later commands pick them up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout(), langFlag, localeFlag)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer, lang, locale string) error {
	// fts/ directory
	_, err := os.Stat("fts")
	ftsExists := err == nil
	if err := os.MkdirAll("fts", 0o755); err != nil {
		return fmt.Errorf("creating fts directory: %w", err)
	}
	if ftsExists {
		fmt.Fprintln(w, "fts/ already exists")
	} else {
		fmt.Fprintln(w, "fts/ created")
	}

	// database
	_, err = os.Stat("fts/ft.db")
	dbExists := err == nil
	sqlDB, err := db.Open("fts/ft.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintln(w, "fts/ft.db already exists")
	} else {
		fmt.Fprintln(w, "fts/ft.db created")
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	// .env
	msg, err := ensureEnvFile(lang, locale)
	if err != nil {
		return fmt.Errorf("writing .env: %w", err)
	}
	fmt.Fprintln(w, msg)

	return nil
}

// ensureEnvFile records the snippet defaults in a new .env. An existing file
// is left alone since godotenv.Write would drop its comments.
func ensureEnvFile(lang, locale string) (string, error) {
	if _, err := os.Stat(".env"); err == nil {
		return ".env already exists", nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	env := map[string]string{}
	if lang != "" {
		env["FT_LANG"] = lang
	}
	if locale != "" {
		env["FT_LOCALE"] = locale
	}
	if len(env) == 0 {
		return ".env skipped", nil
	}
	if err := godotenv.Write(env, ".env"); err != nil {
		return "", err
	}
	return ".env created", nil
}

func ensureGitignore() ([]string, error) {
	const entry = "fts/ft.db"

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", "fts/ft.db added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{"fts/ft.db already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{"fts/ft.db added to .gitignore"}, nil
}
