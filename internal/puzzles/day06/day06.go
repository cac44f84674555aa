// Package day06 solves "Wait For It".
package day06

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

// Race is one boat race: its duration and the distance to beat.
type Race struct {
	TimeMS           int
	RecordDistanceMM int
}

// Wins reports whether holding the button for hold ms beats the record.
func (r Race) Wins(hold int) bool {
	return hold*(r.TimeMS-hold) > r.RecordDistanceMM
}

// Ways counts the hold times that beat the record.
//
// Distance as a function of hold time h is h*(T-h), a downward parabola, so
// the winning holds lie strictly between the roots of h*(T-h) = D. The
// float roots are only a starting point; the bounds are then nudged with
// exact integer checks so large inputs cannot be off by one.
func (r Race) Ways() int {
	t, d := r.TimeMS, r.RecordDistanceMM
	disc := t*t - 4*d
	if disc <= 0 {
		return 0
	}
	s := math.Sqrt(float64(disc))
	lo := max(int(math.Floor((float64(t)-s)/2))+1, 0)
	hi := min(int(math.Ceil((float64(t)+s)/2))-1, t)

	for lo > 0 && r.Wins(lo-1) {
		lo--
	}
	for lo <= hi && !r.Wins(lo) {
		lo++
	}
	for hi < t && r.Wins(hi+1) {
		hi++
	}
	for hi >= lo && !r.Wins(hi) {
		hi--
	}
	if lo > hi {
		return 0
	}
	return hi - lo + 1
}

// sheet holds the two labelled lines of the race sheet.
type sheet struct {
	timeLine, distanceLine string
	times, distances       string // text after the labels
}

const (
	timeLineNo     = 1
	distanceLineNo = 2
)

func readSheet(r io.Reader) (*sheet, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, puzzle.NewParseError(0, "", "unable to read times and distances")
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, puzzle.NewParseError(timeLineNo, lines[0], "unable to read times")
	}
	distances, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, puzzle.NewParseError(distanceLineNo, lines[1], "unable to read distances")
	}
	return &sheet{timeLine: lines[0], distanceLine: lines[1], times: times, distances: distances}, nil
}

// ParseRaces reads the sheet as one race per column.
func ParseRaces(r io.Reader) ([]Race, error) {
	sh, err := readSheet(r)
	if err != nil {
		return nil, err
	}
	times, err := puzzle.Ints(timeLineNo, sh.timeLine, sh.times)
	if err != nil {
		return nil, err
	}
	distances, err := puzzle.Ints(distanceLineNo, sh.distanceLine, sh.distances)
	if err != nil {
		return nil, err
	}
	if len(times) != len(distances) {
		return nil, puzzle.Errorf(distanceLineNo, sh.distanceLine, "%d times but %d distances", len(times), len(distances))
	}

	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{TimeMS: times[i], RecordDistanceMM: distances[i]}
	}
	return races, nil
}

// ParseSingleRace reads the sheet with the spaces between digits ignored.
func ParseSingleRace(r io.Reader) (Race, error) {
	sh, err := readSheet(r)
	if err != nil {
		return Race{}, err
	}
	t, err := puzzle.Atoi(timeLineNo, sh.timeLine, strings.Join(strings.Fields(sh.times), ""), "time")
	if err != nil {
		return Race{}, err
	}
	d, err := puzzle.Atoi(distanceLineNo, sh.distanceLine, strings.Join(strings.Fields(sh.distances), ""), "distance")
	if err != nil {
		return Race{}, err
	}
	return Race{TimeMS: t, RecordDistanceMM: d}, nil
}

// Part1 multiplies the number of winning hold times of every race.
func Part1(r io.Reader) (string, error) {
	races, err := ParseRaces(r)
	if err != nil {
		return "", err
	}
	product := 1
	for _, race := range races {
		product *= race.Ways()
	}
	return strconv.Itoa(product), nil
}

// Part2 counts the winning hold times of the single long race.
func Part2(r io.Reader) (string, error) {
	race, err := ParseSingleRace(r)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(race.Ways()), nil
}
