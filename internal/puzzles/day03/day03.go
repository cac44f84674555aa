// Package day03 solves "Gear Ratios".
//
// Numbers in the schematic are stored once in a flat arena; every grid cell
// covered by a number records the arena index of that number instead of a
// copy or a shared handle.
package day03

import (
	"io"
	"strconv"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

const noNumber = -1

// Number is a horizontal run of digits in the schematic.
type Number struct {
	Value  int
	Start  int // cell offset of the first digit
	Length int
}

// Schematic is the parsed engine schematic.
type Schematic struct {
	Width, Height int
	Cells         []byte // row-major
	Numbers       []Number
	owner         []int // per cell: index into Numbers or noNumber
}

// ParseSchematic reads the grid, building the number arena as it goes.
func ParseSchematic(r io.Reader) (*Schematic, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	s := &Schematic{Height: len(lines)}
	if len(lines) == 0 {
		return s, nil
	}
	s.Width = len(lines[0])
	s.Cells = make([]byte, 0, s.Width*s.Height)
	s.owner = make([]int, 0, s.Width*s.Height)

	for y, line := range lines {
		if len(line) != s.Width {
			return nil, puzzle.Errorf(y+1, line, "row width %d does not match %d", len(line), s.Width)
		}
		current := noNumber
		for x := 0; x < len(line); x++ {
			c := line[x]
			offset := y*s.Width + x
			if !isDigit(c) {
				current = noNumber
				s.Cells = append(s.Cells, c)
				s.owner = append(s.owner, noNumber)
				continue
			}
			if current == noNumber {
				current = len(s.Numbers)
				s.Numbers = append(s.Numbers, Number{Start: offset})
			}
			n := &s.Numbers[current]
			n.Value = n.Value*10 + int(c-'0')
			n.Length++
			s.Cells = append(s.Cells, c)
			s.owner = append(s.owner, current)
		}
	}

	return s, nil
}

// IsSymbol reports whether c marks a part: anything but '.' or a digit.
func IsSymbol(c byte) bool {
	return c != '.' && !isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// neighbors returns the offsets of cells in the box around columns
// [x0, x1] of row y, clamped to the grid. The box includes the row itself.
func (s *Schematic) neighbors(y, x0, x1 int) []int {
	var out []int
	for ny := max(y-1, 0); ny <= min(y+1, s.Height-1); ny++ {
		for nx := max(x0-1, 0); nx <= min(x1+1, s.Width-1); nx++ {
			out = append(out, ny*s.Width+nx)
		}
	}
	return out
}

// IsPartNumber reports whether the number at arena index i touches a symbol.
func (s *Schematic) IsPartNumber(i int) bool {
	n := s.Numbers[i]
	y, x := n.Start/s.Width, n.Start%s.Width
	for _, off := range s.neighbors(y, x, x+n.Length-1) {
		if IsSymbol(s.Cells[off]) {
			return true
		}
	}
	return false
}

// AdjacentNumbers returns the distinct arena indices of numbers touching
// the cell at offset, in first-seen order.
func (s *Schematic) AdjacentNumbers(offset int) []int {
	y, x := offset/s.Width, offset%s.Width
	var found []int
	for _, off := range s.neighbors(y, x, x) {
		idx := s.owner[off]
		if idx == noNumber || containsInt(found, idx) {
			continue
		}
		found = append(found, idx)
	}
	return found
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Part1 sums every part number.
func Part1(r io.Reader) (string, error) {
	s, err := ParseSchematic(r)
	if err != nil {
		return "", err
	}
	sum := 0
	for i, n := range s.Numbers {
		if s.IsPartNumber(i) {
			sum += n.Value
		}
	}
	return strconv.Itoa(sum), nil
}

// Part2 sums the gear ratios: the products of the two numbers next to each
// '*' that touches exactly two numbers.
func Part2(r io.Reader) (string, error) {
	s, err := ParseSchematic(r)
	if err != nil {
		return "", err
	}
	sum := 0
	for off, c := range s.Cells {
		if c != '*' {
			continue
		}
		adj := s.AdjacentNumbers(off)
		if len(adj) != 2 {
			continue
		}
		sum += s.Numbers[adj[0]].Value * s.Numbers[adj[1]].Value
	}
	return strconv.Itoa(sum), nil
}
