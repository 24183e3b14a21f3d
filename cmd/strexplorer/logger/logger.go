// Package logger provides file-backed slog logging for the explorer.
// Terminal output would corrupt the TUI, so log records go to a file
// under the user's home directory and are discarded unless enabled.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// L is the process-wide logger. It discards everything until Init is
// called with enabled = true.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.strexplorer/logs
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// Init configures logging. Call from main() before the program starts.
func Init(opts Options) error {
	if !opts.Enabled {
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".strexplorer", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, "strexplorer-"+time.Now().Format("2006-01-02")+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Info logs at info level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Debug logs at debug level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
