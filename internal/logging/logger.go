// Package logging provides the timestamped diagnostic log used in place of a
// browser console.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger appends timestamped lines to a writer. A nil *Logger discards
// everything, so components can log unconditionally.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	c     io.Closer
	debug bool
	now   func() time.Time
}

// New creates a logger writing to w. Debugf lines are only written when
// debug is true.
func New(w io.Writer, debug bool) *Logger {
	return &Logger{w: w, debug: debug, now: time.Now}
}

// Open creates (or reuses) the log file at path, creating its directory.
func Open(path string, debug bool) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	l := New(f, debug)
	l.c = f
	return l, nil
}

// Close releases the file handle, if any.
func (l *Logger) Close() error {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.Close()
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[%s] %s\n", l.now().Format(time.RFC3339), line)
}

// Debugf is Printf gated on the debug flag.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	l.Printf("debug: "+format, args...)
}
