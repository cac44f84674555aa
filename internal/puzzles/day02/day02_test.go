package day02

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "8", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "2286", got)
}

func TestParseGame(t *testing.T) {
	g, err := ParseGame(1, "Game 12: 3 blue, 4 red; 1 red, 2 green, 6 blue")
	require.NoError(t, err)

	assert.Equal(t, 12, g.ID)
	assert.Equal(t, []Pick{{Red: 4, Blue: 3}, {Red: 1, Green: 2, Blue: 6}}, g.Picks)
	assert.True(t, g.Possible())
	assert.Equal(t, 4*2*6, g.Power())
}

func TestParseGame_Errors(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		errSubstr string
	}{
		{"missing data", "Game 1", "unable to read data part"},
		{"bad prefix", "Round 1: 3 blue", "unable to read ID part"},
		{"bad id", "Game x: 3 blue", "unable to parse ID"},
		{"bad amount", "Game 1: many blue", "unable to parse amount"},
		{"missing color", "Game 1: 3", "unable to read color part"},
		{"unknown color", "Game 1: 3 purple", `invalid color "purple"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGame(1, tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
