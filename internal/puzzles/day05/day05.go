// Package day05 solves "If You Give A Seed A Fertilizer".
//
// Both parts apply the same mapping rule: a value inside a range is shifted
// to the destination, anything else passes through unchanged.
package day05

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

// Category chain every almanac must describe.
const (
	firstCategory = "seed"
	lastCategory  = "location"
)

var errNoLocation = errors.New("no location found")

// Range maps [Src, Src+Len) onto [Dest, Dest+Len).
type Range struct {
	Dest, Src, Len int
}

// Map converts one category into the next.
type Map struct {
	From, To string
	Ranges   []Range
}

// Apply maps a single value. The first range containing v wins.
func (m Map) Apply(v int) int {
	for _, r := range m.Ranges {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dest + v - r.Src
		}
	}
	return v
}

// Interval is the half-open span [Start, End).
type Interval struct {
	Start, End int
}

// ApplyIntervals maps every interval through m, splitting intervals that
// straddle range boundaries. Uncovered pieces pass through unchanged.
func (m Map) ApplyIntervals(in []Interval) []Interval {
	var out []Interval
	pending := slices.Clone(in)
	for _, r := range m.Ranges {
		var next []Interval
		shift := r.Dest - r.Src
		for _, iv := range pending {
			lo, hi := max(iv.Start, r.Src), min(iv.End, r.Src+r.Len)
			if lo >= hi {
				next = append(next, iv)
				continue
			}
			out = append(out, Interval{Start: lo + shift, End: hi + shift})
			if iv.Start < lo {
				next = append(next, Interval{Start: iv.Start, End: lo})
			}
			if hi < iv.End {
				next = append(next, Interval{Start: hi, End: iv.End})
			}
		}
		pending = next
	}
	return append(out, pending...)
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []Map

	seedsLine string
}

// Location runs a seed through every map.
func (a *Almanac) Location(seed int) int {
	v := seed
	for _, m := range a.Maps {
		v = m.Apply(v)
	}
	return v
}

// SeedIntervals reads the seed list as (start, length) pairs.
func (a *Almanac) SeedIntervals() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, puzzle.Errorf(1, a.seedsLine, "seed ranges need an even count, got %d values", len(a.Seeds))
	}
	out := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] <= 0 {
			continue
		}
		out = append(out, Interval{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
	}
	return out, nil
}

// ParseAlmanac reads the seeds line followed by blank-line separated map
// sections. Sections are identified by their "a-to-b map:" header.
func ParseAlmanac(r io.Reader) (*Almanac, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, puzzle.NewParseError(0, "", "unable to read seeds line")
	}

	seedsText, ok := strings.CutPrefix(lines[0], "seeds:")
	if !ok {
		return nil, puzzle.NewParseError(1, lines[0], "unable to read seeds line")
	}
	seeds, err := puzzle.Ints(1, lines[0], seedsText)
	if err != nil {
		return nil, err
	}
	a := &Almanac{Seeds: seeds, seedsLine: lines[0]}

	var current *Map
	for i := 1; i < len(lines); i++ {
		lineNo, line := i+1, lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			current = nil
		case strings.HasSuffix(line, " map:"):
			from, to, ok := strings.Cut(strings.TrimSuffix(line, " map:"), "-to-")
			if !ok {
				return nil, puzzle.NewParseError(lineNo, line, "unable to read map header")
			}
			a.Maps = append(a.Maps, Map{From: from, To: to})
			current = &a.Maps[len(a.Maps)-1]
		case current == nil:
			return nil, puzzle.NewParseError(lineNo, line, "range outside of a map section")
		default:
			rng, err := parseRange(lineNo, line)
			if err != nil {
				return nil, err
			}
			current.Ranges = append(current.Ranges, rng)
		}
	}

	if err := a.validateChain(); err != nil {
		return nil, err
	}
	return a, nil
}

func parseRange(lineNo int, line string) (Range, error) {
	values, err := puzzle.Ints(lineNo, line, line)
	if err != nil {
		return Range{}, err
	}
	if len(values) != 3 {
		return Range{}, puzzle.Errorf(lineNo, line, "expected destination, source and length, got %d values", len(values))
	}
	return Range{Dest: values[0], Src: values[1], Len: values[2]}, nil
}

// validateChain checks the maps lead from seed to location without gaps.
func (a *Almanac) validateChain() error {
	if len(a.Maps) == 0 {
		return puzzle.NewParseError(0, "", "almanac has no maps")
	}
	want := firstCategory
	for _, m := range a.Maps {
		if m.From != want {
			return puzzle.Errorf(0, "", "%s-to-%s map does not follow %s", m.From, m.To, want)
		}
		want = m.To
	}
	if want != lastCategory {
		return puzzle.Errorf(0, "", "map chain ends at %s, not %s", want, lastCategory)
	}
	return nil
}

// Part1 finds the lowest location of any listed seed.
func Part1(r io.Reader) (string, error) {
	a, err := ParseAlmanac(r)
	if err != nil {
		return "", err
	}
	if len(a.Seeds) == 0 {
		return "", errNoLocation
	}
	lowest := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		lowest = min(lowest, a.Location(s))
	}
	return strconv.Itoa(lowest), nil
}

// Part2 finds the lowest location over the seed ranges by remapping
// whole intervals.
func Part2(r io.Reader) (string, error) {
	a, err := ParseAlmanac(r)
	if err != nil {
		return "", err
	}
	intervals, err := a.SeedIntervals()
	if err != nil {
		return "", err
	}
	for _, m := range a.Maps {
		intervals = m.ApplyIntervals(intervals)
	}
	if len(intervals) == 0 {
		return "", errNoLocation
	}
	lowest := intervals[0].Start
	for _, iv := range intervals[1:] {
		lowest = min(lowest, iv.Start)
	}
	return strconv.Itoa(lowest), nil
}
