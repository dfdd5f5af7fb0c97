package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "popit.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate at startup above 10MB
)

// resolveLogPath picks the log file, empty means logging is disabled
func resolveLogPath(debug bool, configured string) string {
	switch {
	case configured != "":
		return configured
	case debug:
		return filepath.Join(logDir, logFileName)
	default:
		return ""
	}
}

// setupLogging opens the log file and builds the logger
// The terminal owns stdout, so with no path every log line is discarded
func setupLogging(path string, level zerolog.Level) (zerolog.Logger, *os.File, error) {
	if path == "" {
		stdlog.SetOutput(io.Discard)
		return zerolog.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("rotate log file: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()

	// Route stray standard library logging into the same file
	stdlog.SetFlags(0)
	stdlog.SetOutput(logger)

	return logger, f, nil
}
