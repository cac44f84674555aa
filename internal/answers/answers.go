// Package answers loads the expected puzzle answers used by `aoc verify`.
//
// The file maps day numbers to their expected answers:
//
//	1:
//	  part1: 142
//	  part2: 281
//	6:
//	  part1: 288
//
// A part that is left out is not checked.
package answers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// ErrNotFound is returned when the answers file does not exist.
var ErrNotFound = errors.New("answers file not found")

// Answer is an expected answer. Numbers and strings are both accepted and
// compared as text.
type Answer string

// UnmarshalYAML accepts any scalar.
func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: answer must be a scalar", node.Line)
	}
	*a = Answer(node.Value)
	return nil
}

// Expected holds the expected answers of one day.
type Expected struct {
	Part1 *Answer `yaml:"part1"`
	Part2 *Answer `yaml:"part2"`
}

// Answer returns the expected answer for part, if one is set.
func (e Expected) Answer(part harness.Part) (string, bool) {
	a := e.Part1
	if part == harness.Part2 {
		a = e.Part2
	}
	if a == nil {
		return "", false
	}
	return string(*a), true
}

// Set is a parsed answers file.
type Set struct {
	days map[harness.Day]Expected
}

// Load reads and parses the answers file at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes answers YAML. Unknown days and unknown fields are errors.
func Parse(data []byte) (*Set, error) {
	raw := make(map[int]Expected)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid answers YAML: %w", err)
	}

	set := &Set{days: make(map[harness.Day]Expected, len(raw))}
	for n, exp := range raw {
		day, err := harness.Lookup(n)
		if err != nil {
			return nil, fmt.Errorf("invalid answers file: %w", err)
		}
		set.days[day] = exp
	}
	return set, nil
}

// Days returns the days with expected answers, in ascending order.
func (s *Set) Days() []harness.Day {
	days := make([]harness.Day, 0, len(s.days))
	for d := range s.days {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// For returns the expected answers of day.
func (s *Set) For(day harness.Day) (Expected, bool) {
	e, ok := s.days[day]
	return e, ok
}
