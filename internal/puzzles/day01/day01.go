// Package day01 solves "Trebuchet?!": recovering calibration values from
// the first and last digit on each line.
package day01

import (
	"io"
	"strconv"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

// spelled maps digit words to their values; index 0 is unused.
var spelled = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Part1 sums the calibration values formed from ASCII digits only.
func Part1(r io.Reader) (string, error) {
	return sumCalibration(r, asciiDigit)
}

// Part2 sums the calibration values where spelled-out digits also count.
func Part2(r io.Reader) (string, error) {
	return sumCalibration(r, anyDigit)
}

// digitAt reports the digit starting at s[i], if any.
type digitAt func(s string, i int) (int, bool)

func sumCalibration(r io.Reader, match digitAt) (string, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return "", err
	}

	sum := 0
	for i, line := range lines {
		first, ok := firstDigit(line, match)
		if !ok {
			return "", puzzle.NewParseError(i+1, line, "no digits in line")
		}
		last, _ := lastDigit(line, match)
		sum += first*10 + last
	}

	return strconv.Itoa(sum), nil
}

func firstDigit(s string, match digitAt) (int, bool) {
	for i := 0; i < len(s); i++ {
		if d, ok := match(s, i); ok {
			return d, true
		}
	}
	return 0, false
}

// lastDigit scans from the end so overlapping words like "eightwo" resolve
// to their rightmost digit.
func lastDigit(s string, match digitAt) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if d, ok := match(s, i); ok {
			return d, true
		}
	}
	return 0, false
}

func asciiDigit(s string, i int) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

func anyDigit(s string, i int) (int, bool) {
	if d, ok := asciiDigit(s, i); ok {
		return d, true
	}
	for d := 1; d < len(spelled); d++ {
		if strings.HasPrefix(s[i:], spelled[d]) {
			return d, true
		}
	}
	return 0, false
}
