package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
	}
	for input, want := range tests {
		got, err := ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSetLogLevelRejectsUnknown(t *testing.T) {
	before := Log.GetLevel()
	if err := SetLogLevel("loud"); err == nil {
		t.Fatalf("SetLogLevel expected error")
	}
	if Log.GetLevel() != before {
		t.Fatalf("level changed to %v after bad input", Log.GetLevel())
	}
}

func TestOrDefault(t *testing.T) {
	if OrDefault(nil) != Log {
		t.Fatalf("OrDefault(nil) did not return Log")
	}
	custom := logrus.New()
	if OrDefault(custom) != custom {
		t.Fatalf("OrDefault(custom) did not return custom")
	}
}

func TestSetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "alloy.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	Log.SetLevel(logrus.InfoLevel)
	Log.WithField("note", "2024-06-24").Info("dreams copied")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "dreams copied") || !strings.Contains(string(data), "note=2024-06-24") {
		t.Fatalf("log file = %q", data)
	}
}

func TestSetFileEmptyPathIsNoop(t *testing.T) {
	if err := SetFile("  "); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	if file != nil {
		t.Fatalf("file opened for empty path")
	}
}
