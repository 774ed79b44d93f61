// Package logging installs the process-wide slog logger.
//
// Output is colored with tint when writing to a terminal-like sink; pass
// NoColor for log files and tests. The level comes from LOG_LEVEL
// (debug, info, warn, error; default info).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options tunes the handler built by New.
type Options struct {
	Level   slog.Level
	NoColor bool
	Source  bool
}

// Setup installs a tint logger on stderr at the LOG_LEVEL level.
// An unrecognized LOG_LEVEL falls back to info and is reported once.
func Setup() {
	level, err := ParseLevel(os.Getenv("LOG_LEVEL"))
	slog.SetDefault(New(os.Stderr, Options{Level: level, Source: true}))
	if err != nil {
		slog.Warn("Ignoring LOG_LEVEL", "error", err)
	}
}

// New builds a tint-backed logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  opts.Source,
		NoColor:    opts.NoColor,
	}))
}

// ParseLevel maps a LOG_LEVEL value onto a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
