package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/chriserin/ftsnip/internal/i18n"
	"github.com/chriserin/ftsnip/internal/logging"
	"github.com/chriserin/ftsnip/internal/snippet"
)

const (
	DefaultLang     = "java"
	DefaultLocale   = "en"
	DefaultLogLevel = "warn"
)

type Config struct {
	Lang     string // snippet variant
	Locale   string // keyword locale for steps given on the command line
	LogLevel string
}

// Load reads FT_LANG, FT_LOCALE and FT_LOG_LEVEL, from a .env file in the
// working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Lang:     firstNonEmpty(strings.TrimSpace(os.Getenv("FT_LANG")), DefaultLang),
		Locale:   firstNonEmpty(strings.TrimSpace(os.Getenv("FT_LOCALE")), DefaultLocale),
		LogLevel: firstNonEmpty(strings.TrimSpace(os.Getenv("FT_LOG_LEVEL")), DefaultLogLevel),
	}
}

func (c *Config) Validate() error {
	if _, err := snippet.Lookup(c.Lang); err != nil {
		return err
	}
	if _, err := i18n.Match(c.Locale); err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(i18n.Locales(), ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
