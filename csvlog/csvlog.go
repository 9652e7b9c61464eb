// Package csvlog appends finished sessions to a small CSV file.
package csvlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"focustimer"
)

const (
	header     = "timestamp,focus_minutes,cycles_completed,reason\n"
	timeLayout = "2006-01-02 15:04:05"
)

// Logger implements focustimer.SessionLogger on top of an append-only CSV
// file. Appends within one process are serialized.
type Logger struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Logger {
	return &Logger{path: path}
}

// Append writes one row, creating the parent directory and the header the
// first time. Failures are reported, never propagated.
func (l *Logger) Append(rec focustimer.SessionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.append(rec); err != nil {
		log.Error("could not write session log", "path", l.path, "err", err)
	}
}

func (l *Logger) append(rec focustimer.SessionRecord) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	_, statErr := os.Stat(l.path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := f.WriteString(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	// simple escaping: double up quotes
	reason := strings.ReplaceAll(rec.Reason, `"`, `""`)
	_, err = fmt.Fprintf(f, "\"%s\",%d,%d,\"%s\"\n",
		rec.StartedAt.Format(timeLayout), rec.FocusMinutes, rec.CompletedCycles, reason)
	if err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}
