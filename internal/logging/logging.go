// Package logging owns the process-wide diagnostic logger. Records go to an
// append-only file that is opened once at startup and never closed
// mid-session; the interactive console stays reserved for the game protocol.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// DefaultFile is the log destination when no configuration overrides it.
const DefaultFile = "yahtzee_game.log"

var (
	once    sync.Once
	global  *slog.Logger
	initErr error
)

// Init opens the log file for appending and installs the global logger.
// Only the first call takes effect; later calls return the first result.
func Init(path, level string) error {
	once.Do(func() {
		lvl, err := parseLevel(level)
		if err != nil {
			initErr = err
			return
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			initErr = fmt.Errorf("failed to open log file: %w", err)
			return
		}
		global = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	})
	return initErr
}

// L returns the global logger. Before Init it returns a discard logger so
// library code and tests can log unconditionally.
func L() *slog.Logger {
	if global == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return global
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
