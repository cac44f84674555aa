// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/okkero/Advent-of-Code-2023/internal/cli/output"
)

// SampleInputs holds small puzzle inputs keyed by day number.
var SampleInputs = map[int]string{
	1: "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n",
	6: "Time:      7  15   30\nDistance:  9  40  200\n",
	7: "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n",
}

// SetupInputDir creates a temporary input directory holding the given days'
// sample inputs.
func SetupInputDir(t *testing.T, days ...int) string {
	t.Helper()

	dir := t.TempDir()
	for _, d := range days {
		input, ok := SampleInputs[d]
		if !ok {
			t.Fatalf("no sample input for day %d", d)
		}
		path := filepath.Join(dir, "day"+strconv.Itoa(d))
		if err := os.WriteFile(path, []byte(input), 0o600); err != nil {
			t.Fatalf("failed to create %s: %v", path, err)
		}
	}
	return dir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererText creates a text-mode renderer without a terminal, so
// output carries no escape codes.
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, false)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
