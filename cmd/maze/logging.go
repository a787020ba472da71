package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger builds the process logger. The level comes from --log-level,
// then MAZE_LOG_LEVEL, then defaults to info; MAZE_LOG_FORMAT=json switches
// to JSON lines.
func newLogger(w io.Writer) *log.Logger {
	levelName := flagLogLevel
	if levelName == "" {
		levelName = os.Getenv("MAZE_LOG_LEVEL")
	}
	level, err := log.ParseLevel(strings.ToLower(levelName))
	if err != nil || levelName == "" {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           level,
	})
	if strings.EqualFold(os.Getenv("MAZE_LOG_FORMAT"), "json") {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

// openLogFile opens ~/.maze/maze.log for appending. The TUI owns the
// terminal, so interactive sessions log there instead of to stderr.
// Returns io.Discard when the file cannot be opened.
func openLogFile() (io.Writer, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return io.Discard, func() {}
	}
	dir := filepath.Join(home, ".maze")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "maze.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
