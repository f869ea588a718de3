package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileMaxSizeMB  = 5
	fileMaxBackups = 3
	fileMaxAgeDays = 28
)

// Log is the shared logger. Commands set its level from --loglevel.
var Log = logrus.New()

var file *lumberjack.Logger

// ParseLevel maps the supported level names to logrus levels.
// Trace and panic are not exposed.
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	case "fatal":
		return logrus.FatalLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("bad log level %q (expected debug|info|warn|error|fatal)", level)
	}
}

// SetLogLevel applies level to Log.
func SetLogLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// SetOutput redirects Log, e.g. to a command's stderr.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// OrDefault returns logger, or Log when logger is nil.
func OrDefault(logger logrus.FieldLogger) logrus.FieldLogger {
	if logger == nil {
		return Log
	}
	return logger
}

// SetFile sends Log to a size-rotated file instead of stderr. An empty path
// leaves the output alone.
func SetFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand log file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create log folder: %w", err)
	}

	if err := Close(); err != nil {
		return err
	}
	file = &lumberjack.Logger{
		Filename:   expanded,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
		LocalTime:  true,
	}
	Log.SetOutput(file)
	return nil
}

// Close releases the file opened by SetFile and points Log back at stderr.
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	Log.SetOutput(os.Stderr)
	return err
}
