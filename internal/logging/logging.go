package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogFileName is created inside the config directory.
const LogFileName = "calsheet.log"

// Setup points the default slog logger at a JSON log file in dir. The
// terminal belongs to the TUI, so nothing is written to stdout or stderr.
// The returned closer flushes the file; it is nil when logging is discarded.
func Setup(dir string, debug bool) (io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, opts)))
		return nil, err
	}

	// O_TRUNC keeps the log to a single session
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, opts)))
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(f, opts)))
	return f, nil
}
