package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/pong/parameter"
)

// SetupLogging routes slog and the standard logger to dir/parameter.LogFileName when debug is set
// The screen owns stdout, so without debug all log output is discarded
// A log file past parameter.MaxLogSize is rotated to a timestamped name first
// Returns the open log file for the caller to close, nil when logging is disabled or the file can't be opened
func SetupLogging(dir string, debug bool, level string) *os.File {
	if !debug {
		installLogger(io.Discard, level)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		installLogger(io.Discard, level)
		return nil
	}

	path := filepath.Join(dir, parameter.LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > parameter.MaxLogSize {
		rotated := filepath.Join(dir, rotatedLogName(time.Now()))
		if err := os.Rename(path, rotated); err != nil {
			// Start over rather than grow without bound
			os.Remove(path)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		installLogger(io.Discard, level)
		return nil
	}
	installLogger(f, level)
	return f
}

func rotatedLogName(now time.Time) string {
	base := strings.TrimSuffix(parameter.LogFileName, filepath.Ext(parameter.LogFileName))
	return fmt.Sprintf("%s-%s.log", base, now.Format("20060102-150405"))
}

func installLogger(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	// Also redirects the standard log package
	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps a level name to slog.Level, unknown names select info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
