// Package day04 solves "Scratchcards".
package day04

import (
	"io"
	"strconv"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Numbers []int
	Winning []int
}

// Matches counts the card's numbers that appear among its winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, w := range c.Winning {
		winning[w] = struct{}{}
	}
	n := 0
	for _, v := range c.Numbers {
		if _, ok := winning[v]; ok {
			n++
		}
	}
	return n
}

// Points is 1 for the first match, doubled for each match after it.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses "Card   1: 41 48 83 | 83 86  6". Separators may be
// padded with any number of spaces.
func ParseCard(lineNo int, line string) (Card, error) {
	idPart, data, err := puzzle.Cut(lineNo, line, line, ":", "card data")
	if err != nil {
		return Card{}, err
	}
	fields := strings.Fields(idPart)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, puzzle.NewParseError(lineNo, line, "unable to read card ID")
	}
	id, err := puzzle.Atoi(lineNo, line, fields[1], "card ID")
	if err != nil {
		return Card{}, err
	}

	numbersPart, winningPart, err := puzzle.Cut(lineNo, line, data, "|", "card winning numbers")
	if err != nil {
		return Card{}, err
	}
	numbers, err := puzzle.Ints(lineNo, line, numbersPart)
	if err != nil {
		return Card{}, err
	}
	winning, err := puzzle.Ints(lineNo, line, winningPart)
	if err != nil {
		return Card{}, err
	}

	return Card{ID: id, Numbers: numbers, Winning: winning}, nil
}

func parseCards(r io.Reader) ([]Card, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCard(i+1, line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Part1 sums the points of every card.
func Part1(r io.Reader) (string, error) {
	cards, err := parseCards(r)
	if err != nil {
		return "", err
	}
	sum := 0
	for _, c := range cards {
		sum += c.Points()
	}
	return strconv.Itoa(sum), nil
}

// Part2 counts the cards held once every won copy has been processed.
// Cards are processed in input order; wins never reach past the last card.
func Part2(r io.Reader) (string, error) {
	cards, err := parseCards(r)
	if err != nil {
		return "", err
	}

	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		m := c.Matches()
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return strconv.Itoa(total), nil
}
