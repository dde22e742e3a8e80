package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Setup returns a text logger writing to w at the named level
// (debug, info, warn, error).
func Setup(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}

func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: use debug, info, warn or error", level)
	}
	return lvl, nil
}
