package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir     = "logs"
	maxLogSize = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to logs/<name>.log when debug is set
// and discards it otherwise. The log is rotated once it exceeds maxLogSize.
// The returned file is nil when logging is disabled or could not be opened.
func SetupLogging(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, name+".log")
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== %s started (pid %d) ===", name, os.Getpid())
	return f
}
