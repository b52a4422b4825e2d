package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestPrintf_Timestamped(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.now = fixedClock

	l.Printf("error fetching tasks: %s\n", "boom")

	want := "[2024-05-01T12:00:00Z] error fetching tasks: boom\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestDebugf_Gated(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output without debug, got %q", buf.String())
	}

	l = New(&buf, true)
	l.now = fixedClock
	l.Debugf("shown %d", 1)
	if !strings.Contains(buf.String(), "debug: shown 1") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Printf("ignored")
	l.Debugf("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "todo.log")

	for i := 0; i < 2; i++ {
		l, err := Open(path, false)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		l.Printf("line %d", i)
		if err := l.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("expected 2 lines, got %d: %q", got, data)
	}
}
