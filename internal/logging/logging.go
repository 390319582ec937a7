// internal/logging/logging.go
// Package logging routes application logs away from stdout, which carries
// the rendered diff.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/k0kubun/pp"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stderr, plus an append-mode log file
// when logPath is non-empty. Stdout is reserved for rendered diff output.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	log.Printf(format, args...)
}

// DumpValue pretty-prints an arbitrary value through the logger, used for
// debug dumps of offending records.
func DumpValue(label string, value any) {
	log.Printf("%s: %s", label, pp.Sprint(value))
}
