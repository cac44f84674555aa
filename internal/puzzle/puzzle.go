// Package puzzle provides the line-oriented input helpers shared by the
// daily solvers under internal/puzzles.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single input line. Puzzle inputs are a few KiB wide at most.
const maxLineSize = 1 << 20

// Lines reads every line of r. Carriage returns are stripped and trailing
// blank lines are dropped; blank lines in the middle of the input are kept
// because some formats use them as section separators.
func Lines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Ints parses the whitespace-separated integers in s. The line number and
// text are only used to build the error.
func Ints(lineNo int, text, s string) ([]int, error) {
	fields := strings.Fields(s)
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, Wrap(lineNo, text, fmt.Sprintf("invalid number %q", f), err)
		}
		values = append(values, n)
	}
	return values, nil
}

// Atoi parses a single decimal integer, reporting failures as a ParseError.
func Atoi(lineNo int, text, s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(lineNo, text, "unable to parse "+what, err)
	}
	return n, nil
}

// Cut splits s around the first sep and fails with a ParseError naming
// what was expected when sep is absent.
func Cut(lineNo int, text, s, sep, what string) (before, after string, err error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", NewParseError(lineNo, text, "unable to read "+what)
	}
	return before, after, nil
}
