package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chriserin/ftsnip/internal/i18n"
	"github.com/chriserin/ftsnip/internal/snippet"
	"github.com/spf13/cobra"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List snippet languages and keyword locales",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLangs(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)
}

func RunLangs(w io.Writer) error {
	for _, name := range snippet.Names() {
		fmt.Fprintln(w, name)
	}
	fmt.Fprintf(w, "locales: %s\n", strings.Join(i18n.Locales(), ", "))
	return nil
}
