// internal/logging/logging.go
// Package logging configures the shared application log sink and provides
// helpers for recording dashboard events and warehouse round-trips.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init routes the standard logger to stdout and, when logPath is non-empty,
// additionally to an append-only log file, creating parent directories as
// needed. Calling Init again closes any previously opened file.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

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

// Close detaches and closes the log file, restoring stderr output.
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

// LogEvent records a formatted application event.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogQuery records one warehouse query round-trip: the query label, how long
// it ran, how many rows came back, and the error if it failed.
func LogQuery(query string, elapsed time.Duration, rows int, err error) {
	log.Println(buildQueryMessage(query, elapsed, rows, err))
}

func buildQueryMessage(query string, elapsed time.Duration, rows int, err error) string {
	label := strings.TrimSpace(query)
	if label == "" {
		label = "unknown"
	}
	parts := []string{"[QUERY]"}
	parts = append(parts, fmt.Sprintf("query=%s", label))
	parts = append(parts, fmt.Sprintf("elapsed=%s", elapsed.Round(time.Millisecond)))
	if err != nil {
		parts = append(parts, fmt.Sprintf("error=%q", err.Error()))
	} else {
		parts = append(parts, fmt.Sprintf("rows=%d", rows))
	}
	return strings.Join(parts, " ")
}
