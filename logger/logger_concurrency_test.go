package logger

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mordilloSan/go-phklogger/backend"
)

// TestConcurrency_ConsoleLinesIntact verifies that concurrent writers at
// different levels never interleave console lines.
func TestConcurrency_ConsoleLinesIntact(t *testing.T) {
	buf := captureStdout(t)
	l, conn := newSyslogLogger(t, Config{Threshold: DebugLevel, Console: true})

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				_ = l.Debugf("goroutine-%d-debug-%d", id, j)
				_ = l.Infof("goroutine-%d-info-%d", id, j)
				_ = l.Warningf("goroutine-%d-warning-%d", id, j)
				_ = l.Errorf("goroutine-%d-error-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	expectedLines := numGoroutines * messagesPerGoroutine * 4
	if len(lines) != expectedLines {
		t.Fatalf("expected %d console lines, got %d", expectedLines, len(lines))
	}
	if conn.count() != expectedLines {
		t.Fatalf("expected %d backend lines, got %d", expectedLines, conn.count())
	}

	for i, line := range lines {
		if !strings.HasPrefix(line, "\x1b[") || !strings.HasSuffix(line, "\x1b[0m") {
			t.Fatalf("line %d appears garbled (broken color codes): %q", i, line)
		}
		if strings.Count(line, "goroutine-") != 1 {
			t.Fatalf("line %d appears garbled (goroutine markers): %q", i, line)
		}
	}
}

// TestConcurrency_FileLinesIntact verifies that two loggers sharing one file
// sink write whole records.
func TestConcurrency_FileLinesIntact(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "concurrent.log")
	registry := backend.NewRegistry()
	cfg := Config{Target: logPath, Name: "workers", Registry: registry, Pattern: "%(levelname)s %(message)s"}
	a := newFileLogger(t, cfg)
	b := newFileLogger(t, cfg)

	const numGoroutines = 50
	const messagesPerGoroutine = 40

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			l := a
			if id%2 == 1 {
				l = b
			}
			for j := range messagesPerGoroutine {
				_ = l.Critical(fmt.Sprintf("worker-%d-%d", id, j))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(readLog(t, logPath), "\n"), "\n")
	if len(lines) != numGoroutines*messagesPerGoroutine {
		t.Fatalf("expected %d file lines, got %d", numGoroutines*messagesPerGoroutine, len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "CRITICAL worker-") || strings.Count(line, "worker-") != 1 {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}
