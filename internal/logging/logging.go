// Package logging builds the charmbracelet/log logger. The terminal belongs
// to the UI, so output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

type Options struct {
	Path   string
	Level  string
	Prefix string
}

// ParseLevel maps a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger and a close func for the underlying file. With an
// empty Path the logger discards everything.
func New(opts Options) (*log.Logger, func() error, error) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "todod"
	}
	if strings.TrimSpace(opts.Path) == "" {
		return NewWithWriter(io.Discard, opts.Level, prefix), func() error { return nil }, nil
	}

	if dir := filepath.Dir(opts.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, opts.Level, prefix), f.Close, nil
}

func NewWithWriter(w io.Writer, level, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// Discard is a logger for callers that were not handed one.
func Discard() *log.Logger {
	return NewWithWriter(io.Discard, "error", "")
}
