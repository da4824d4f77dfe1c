package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before the first GetLogger.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		// Running inside a host process we do not own, so stdout stays
		// untouched: file sink when configured, stderr otherwise.
		logWriter = os.Stderr

		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		logWriter = f
	})
}

// GetLogger returns the shared structured logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(slog.LevelWarn)

		setup()

		handler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLogLevel sets the minimum log level.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetRawLogLevel parses and sets the log level from a string.
// Unknown values fall back to warn.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	SetLogLevel(level)
}

// CloseLogger releases the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
