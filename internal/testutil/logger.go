// Package testutil provides logging helpers for tests.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes to t.Log().
// Output only shows on failure or with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// LogCapture collects log output so tests can assert on it.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureLogger returns a debug-level logger whose output is written both
// to t.Log() and to the returned capture.
func NewCaptureLogger(t testing.TB) (*slog.Logger, *LogCapture) {
	t.Helper()
	c := &LogCapture{}
	w := io.MultiWriter(testWriter{t}, c)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})), c
}

func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// String returns everything logged so far.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
