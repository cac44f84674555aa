package day04

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "13", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "30", got)
}

func TestParseCard(t *testing.T) {
	c, err := ParseCard(1, "Card   12:  1 21 |  1  9")
	require.NoError(t, err)

	assert.Equal(t, 12, c.ID)
	assert.Equal(t, []int{1, 21}, c.Numbers)
	assert.Equal(t, []int{1, 9}, c.Winning)
	assert.Equal(t, 1, c.Matches())
	assert.Equal(t, 1, c.Points())
}

func TestCard_Points(t *testing.T) {
	tests := []struct {
		matches int
		want    int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{4, 8},
	}
	for _, tt := range tests {
		c := Card{Winning: []int{1, 2, 3, 4}}
		for i := 1; i <= tt.matches; i++ {
			c.Numbers = append(c.Numbers, i)
		}
		c.Numbers = append(c.Numbers, 99)
		assert.Equal(t, tt.want, c.Points(), "matches=%d", tt.matches)
	}
}

func TestPart2_WinsStopAtLastCard(t *testing.T) {
	// Card 2 has two matches but no cards follow it.
	input := "Card 1: 1 | 1\nCard 2: 1 2 | 1 2\n"
	got, err := Part2(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestParseCard_Errors(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		errSubstr string
	}{
		{"missing colon", "Card 1 1 2 | 3", "unable to read card data"},
		{"missing divider", "Card 1: 1 2 3", "unable to read card winning numbers"},
		{"bad id", "Card x: 1 | 2", "unable to parse card ID"},
		{"bad number", "Card 1: 1 a | 2", `invalid number "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCard(1, tt.line)
			assert.ErrorContains(t, err, tt.errSubstr)
		})
	}
}
