package day07

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "6440", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "5905", got)
}

func mustHand(t *testing.T, s string) Hand {
	t.Helper()
	r, err := ParseRound(1, s+" 1")
	require.NoError(t, err)
	return r.Hand
}

func TestHand_Type(t *testing.T) {
	tests := []struct {
		hand   string
		jokers bool
		want   HandType
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPairs},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"KTJJT", false, TwoPairs},
		{"KTJJT", true, FourOfAKind},
		{"QJJQ2", true, FourOfAKind},
		{"JJJJJ", true, FiveOfAKind},
		{"2345J", true, OnePair},
		{"2245J", true, ThreeOfAKind},
		{"2233J", true, FullHouse},
		{"JJ234", true, ThreeOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			h := mustHand(t, tt.hand)
			if tt.jokers {
				h = h.WithJokers()
			}
			assert.Equal(t, tt.want, h.Type(), "got %s", h.Type())
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Positive(t, Compare(mustHand(t, "33332"), mustHand(t, "2AAAA")), "first card breaks the tie")
	assert.Positive(t, Compare(mustHand(t, "77888"), mustHand(t, "77788")))
	assert.Zero(t, Compare(mustHand(t, "KK677"), mustHand(t, "KK677")))

	// A joker is the weakest card when types are equal.
	assert.Negative(t, Compare(mustHand(t, "JKKK2").WithJokers(), mustHand(t, "QQQQ2").WithJokers()))
}

func TestParseRound_Errors(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		errSubstr string
	}{
		{"missing bid", "32T3K", "expected a hand and a bid"},
		{"short hand", "32T3 765", "hand has 4 cards, want 5"},
		{"bad card", "32X3K 765", `invalid card 'X'`},
		{"bad bid", "32T3K abc", "unable to parse bid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRound(1, tt.line)
			assert.ErrorContains(t, err, tt.errSubstr)
		})
	}
}

func TestHandType_String(t *testing.T) {
	assert.Equal(t, "full house", FullHouse.String())
	assert.Equal(t, "HandType(9)", HandType(9).String())
}
