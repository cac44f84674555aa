// Package day07 solves "Camel Cards".
package day07

import (
	"cmp"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/puzzle"
)

const handSize = 5

// Card is a card's strength. Jacks are worth 11 until they become jokers.
type Card int

const (
	Joker Card = 1
	Jack  Card = 11
)

// ParseCard converts a card character to its strength.
func ParseCard(c byte) (Card, bool) {
	switch c {
	case 'A':
		return 14, true
	case 'K':
		return 13, true
	case 'Q':
		return 12, true
	case 'J':
		return Jack, true
	case 'T':
		return 10, true
	}
	if c >= '2' && c <= '9' {
		return Card(c - '0'), true
	}
	return 0, false
}

// HandType orders hands before their cards are compared.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var handTypeNames = [...]string{
	HighCard:     "high card",
	OnePair:      "one pair",
	TwoPairs:     "two pairs",
	ThreeOfAKind: "three of a kind",
	FullHouse:    "full house",
	FourOfAKind:  "four of a kind",
	FiveOfAKind:  "five of a kind",
}

func (t HandType) String() string {
	if t < 0 || int(t) >= len(handTypeNames) {
		return "HandType(" + strconv.Itoa(int(t)) + ")"
	}
	return handTypeNames[t]
}

// Hand is five cards in the order they were dealt.
type Hand [handSize]Card

// Type classifies the hand. Jokers join whichever group is already largest,
// which is always the strongest use of them.
func (h Hand) Type() HandType {
	var counts [15]int
	jokers := 0
	for _, c := range h {
		if c == Joker {
			jokers++
			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, handSize)
	for _, n := range counts {
		if n > 0 {
			groups = append(groups, n)
		}
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = append(groups, 0)
	}
	groups[0] += jokers

	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}
	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && second == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && second == 2:
		return TwoPairs
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// WithJokers returns the hand with every jack replaced by a joker.
func (h Hand) WithJokers() Hand {
	for i, c := range h {
		if c == Jack {
			h[i] = Joker
		}
	}
	return h
}

// Compare orders hands by type, then card by card from the left.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Type(), b.Type()); c != 0 {
		return c
	}
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Round is a hand and the bid placed on it.
type Round struct {
	Hand Hand
	Bid  int
}

// ParseRound parses "32T3K 765".
func ParseRound(lineNo int, line string) (Round, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Round{}, puzzle.NewParseError(lineNo, line, "expected a hand and a bid")
	}
	cards := fields[0]
	if len(cards) != handSize {
		return Round{}, puzzle.Errorf(lineNo, line, "hand has %d cards, want %d", len(cards), handSize)
	}

	var round Round
	for i := 0; i < handSize; i++ {
		c, ok := ParseCard(cards[i])
		if !ok {
			return Round{}, puzzle.Errorf(lineNo, line, "invalid card %q", cards[i])
		}
		round.Hand[i] = c
	}
	bid, err := puzzle.Atoi(lineNo, line, fields[1], "bid")
	if err != nil {
		return Round{}, err
	}
	round.Bid = bid
	return round, nil
}

func parseRounds(r io.Reader) ([]Round, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	rounds := make([]Round, 0, len(lines))
	for i, line := range lines {
		round, err := ParseRound(i+1, line)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// Winnings ranks the rounds weakest first and sums rank*bid.
func Winnings(rounds []Round) int {
	ranked := slices.Clone(rounds)
	slices.SortStableFunc(ranked, func(a, b Round) int { return Compare(a.Hand, b.Hand) })
	total := 0
	for i, r := range ranked {
		total += (i + 1) * r.Bid
	}
	return total
}

// Part1 computes the total winnings with jacks.
func Part1(r io.Reader) (string, error) {
	rounds, err := parseRounds(r)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(Winnings(rounds)), nil
}

// Part2 computes the total winnings with jokers in place of jacks.
func Part2(r io.Reader) (string, error) {
	rounds, err := parseRounds(r)
	if err != nil {
		return "", err
	}
	for i := range rounds {
		rounds[i].Hand = rounds[i].Hand.WithJokers()
	}
	return strconv.Itoa(Winnings(rounds)), nil
}
