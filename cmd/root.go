package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/ftsnip/internal/config"
	"github.com/chriserin/ftsnip/internal/logging"
)

var (
	langFlag     string
	localeFlag   string
	logLevelFlag string

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:          "ft",
	Short:        "ft — step definition snippets for .ft feature files",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configure(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "snippet language (default $FT_LANG or java)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "keyword locale for steps given as arguments (default $FT_LOCALE or en)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error (default $FT_LOG_LEVEL or warn)")
}

// configure resolves flags over environment defaults and sets up logging.
func configure(cmd *cobra.Command) error {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang = langFlag
	}
	if flags.Changed("locale") {
		cfg.Locale = localeFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = l
	langFlag, localeFlag, logLevelFlag = cfg.Lang, cfg.Locale, cfg.LogLevel
	logger.Debug("configured", "command", cmd.Name(), "lang", cfg.Lang, "locale", cfg.Locale)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
