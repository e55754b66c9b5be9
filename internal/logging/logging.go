// Package logging builds the charmbracelet loggers used by the commands,
// the SSH server and the per-run trace file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// LevelEnv is the environment variable that selects the log level.
const LevelEnv = "LOG_LEVEL"

// New creates a timestamped logger writing to w. The level comes from
// LOG_LEVEL (debug, info, warn, error) and defaults to info.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           LevelFromEnv(log.InfoLevel),
	})
}

// LevelFromEnv parses LOG_LEVEL, falling back to def when unset or invalid.
func LevelFromEnv(def log.Level) log.Level {
	v := strings.TrimSpace(os.Getenv(LevelEnv))
	if v == "" {
		return def
	}
	level, err := log.ParseLevel(strings.ToLower(v))
	if err != nil {
		return def
	}
	return level
}

// OpenTrace opens (truncating) a trace file and returns a debug-level logger
// writing to it. The caller must close the returned file.
func OpenTrace(path, prefix string) (*log.Logger, *os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open trace %s: %w", path, err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          prefix,
		Level:           log.DebugLevel,
		Formatter:       log.LogfmtFormatter,
	})
	return l, f, nil
}
