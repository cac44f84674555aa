// Package harness selects a puzzle by day number and drives its two parts
// against a freshly opened input stream per part.
//
// The set of days is fixed at compile time. Dispatch is a switch over the
// Day enumeration rather than a runtime registry.
package harness

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day01"
	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day02"
	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day03"
	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day04"
	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day05"
	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day06"
	"github.com/okkero/Advent-of-Code-2023/internal/puzzles/day07"
)

// ErrDayNotFound is returned for day numbers with no puzzle.
var ErrDayNotFound = errors.New("day not found")

// Day identifies a registered puzzle.
type Day int

// Registered days.
const (
	Trebuchet Day = iota + 1
	CubeConundrum
	GearRatios
	Scratchcards
	Fertilizer
	WaitForIt
	CamelCards

	lastDay = CamelCards
)

// slugs name each day in lowercase, words separated by dashes.
var slugs = [...]string{
	Trebuchet:     "trebuchet",
	CubeConundrum: "cube-conundrum",
	GearRatios:    "gear-ratios",
	Scratchcards:  "scratchcards",
	Fertilizer:    "if-you-give-a-seed-a-fertilizer",
	WaitForIt:     "wait-for-it",
	CamelCards:    "camel-cards",
}

// Days returns every registered day in ascending order.
func Days() []Day {
	days := make([]Day, 0, lastDay)
	for d := Trebuchet; d <= lastDay; d++ {
		days = append(days, d)
	}
	return days
}

// Lookup returns the day registered under n.
func Lookup(n int) (Day, error) {
	if n < int(Trebuchet) || n > int(lastDay) {
		return 0, fmt.Errorf("%w: %d", ErrDayNotFound, n)
	}
	return Day(n), nil
}

// Parse resolves a day from its number ("3") or its slug ("gear-ratios").
func Parse(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Lookup(n)
	}
	for _, d := range Days() {
		if strings.EqualFold(s, d.Slug()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unable to parse %q as a day number", s)
}

// Valid reports whether d is a registered day.
func (d Day) Valid() bool {
	return d >= Trebuchet && d <= lastDay
}

// Slug returns the day's dash-separated name.
func (d Day) Slug() string {
	if !d.Valid() {
		return ""
	}
	return slugs[d]
}

// Title returns the puzzle's display name, e.g. "Gear Ratios".
func (d Day) Title() string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(d.Slug(), "-", " "))
}

func (d Day) String() string {
	return "day " + strconv.Itoa(int(d))
}

// Solve runs one part of the day's puzzle over r.
func (d Day) Solve(part Part, r io.Reader) (string, error) {
	switch part {
	case Part1:
		return d.part1(r)
	case Part2:
		return d.part2(r)
	default:
		return "", fmt.Errorf("unknown part %d", int(part))
	}
}

func (d Day) part1(r io.Reader) (string, error) {
	switch d {
	case Trebuchet:
		return day01.Part1(r)
	case CubeConundrum:
		return day02.Part1(r)
	case GearRatios:
		return day03.Part1(r)
	case Scratchcards:
		return day04.Part1(r)
	case Fertilizer:
		return day05.Part1(r)
	case WaitForIt:
		return day06.Part1(r)
	case CamelCards:
		return day07.Part1(r)
	}
	return "", fmt.Errorf("%w: %d", ErrDayNotFound, int(d))
}

func (d Day) part2(r io.Reader) (string, error) {
	switch d {
	case Trebuchet:
		return day01.Part2(r)
	case CubeConundrum:
		return day02.Part2(r)
	case GearRatios:
		return day03.Part2(r)
	case Scratchcards:
		return day04.Part2(r)
	case Fertilizer:
		return day05.Part2(r)
	case WaitForIt:
		return day06.Part2(r)
	case CamelCards:
		return day07.Part2(r)
	}
	return "", fmt.Errorf("%w: %d", ErrDayNotFound, int(d))
}

// Part selects one of a puzzle's two scoring rules.
type Part int

// The two parts, in the order they always run.
const (
	Part1 Part = 1
	Part2 Part = 2
)

// Parts returns both parts in execution order.
func Parts() []Part {
	return []Part{Part1, Part2}
}

func (p Part) String() string {
	return "part " + strconv.Itoa(int(p))
}
