package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := SetupLogging(false, "panels")
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	logFile := SetupLogging(true, "panels")
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, "panels.log")
	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Log output must not share the terminal")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())
	defer log.SetOutput(io.Discard)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, "message.log")
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	logFile := SetupLogging(true, "message")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected current and rotated log, got %d entries", len(entries))
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
