package puzzle

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "trailing newline",
			input: "a\nb\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "crlf endings",
			input: "a\r\nb\r\n",
			want:  []string{"a", "b"},
		},
		{
			name:  "inner blank lines kept",
			input: "a\n\nb\n\n\n",
			want:  []string{"a", "", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints(1, "x", "  41 48   83 ")
	require.NoError(t, err)
	assert.Equal(t, []int{41, 48, 83}, got)

	_, err = Ints(3, "1 x 2", "1 x 2")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Line)
	assert.Contains(t, err.Error(), `invalid number "x"`)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "cause should be reachable through Unwrap")
}

func TestCut(t *testing.T) {
	before, after, err := Cut(1, "Game 1: 3 blue", "Game 1: 3 blue", ": ", "data part")
	require.NoError(t, err)
	assert.Equal(t, "Game 1", before)
	assert.Equal(t, "3 blue", after)

	_, _, err = Cut(2, "Game 1", "Game 1", ": ", "data part")
	assert.ErrorContains(t, err, "unable to read data part")
}

func TestParseError_Error(t *testing.T) {
	err := NewParseError(0, "", "no location found")
	assert.Equal(t, "parse error: no location found", err.Error())

	err = Errorf(7, "abc", "bad card %q", 'x')
	assert.Equal(t, `parse error at line 7 ("abc"): bad card 'x'`, err.Error())
}
