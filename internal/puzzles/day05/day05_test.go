package day05

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func TestPart1(t *testing.T) {
	got, err := Part1(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "35", got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "46", got)
}

func TestAlmanac_Location(t *testing.T) {
	a, err := ParseAlmanac(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, a.Maps, 7)

	tests := map[int]int{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range tests {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
}

func TestMap_Apply_PassThrough(t *testing.T) {
	m := Map{Ranges: []Range{{Dest: 50, Src: 98, Len: 2}}}

	assert.Equal(t, 50, m.Apply(98))
	assert.Equal(t, 51, m.Apply(99))
	assert.Equal(t, 100, m.Apply(100), "unmapped values pass through")
	assert.Equal(t, 10, m.Apply(10), "unmapped values pass through")
}

func TestMap_ApplyIntervals(t *testing.T) {
	m := Map{Ranges: []Range{{Dest: 100, Src: 10, Len: 5}}}

	got := m.ApplyIntervals([]Interval{{Start: 5, End: 20}})
	assert.ElementsMatch(t, []Interval{
		{Start: 100, End: 105},
		{Start: 5, End: 10},
		{Start: 15, End: 20},
	}, got)
}

func TestApplyIntervals_MatchesPointwise(t *testing.T) {
	a, err := ParseAlmanac(strings.NewReader(sample))
	require.NoError(t, err)

	intervals := []Interval{{Start: 40, End: 110}}
	for _, m := range a.Maps {
		intervals = m.ApplyIntervals(intervals)
	}

	want := a.Location(40)
	for s := 41; s < 110; s++ {
		want = min(want, a.Location(s))
	}
	got := intervals[0].Start
	for _, iv := range intervals {
		got = min(got, iv.Start)
	}
	assert.Equal(t, want, got)
}

func TestParseAlmanac_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{"empty", "", "unable to read seeds line"},
		{"no seeds prefix", "79 14\n", "unable to read seeds line"},
		{"no maps", "seeds: 1 2\n", "almanac has no maps"},
		{"stray range", "seeds: 1\n\n1 2 3\n", "range outside of a map section"},
		{"short range", "seeds: 1\n\nseed-to-location map:\n1 2\n", "expected destination, source and length"},
		{"broken chain", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n\nwater-to-location map:\n1 2 3\n", "water-to-location map does not follow soil"},
		{"wrong end", "seeds: 1\n\nseed-to-soil map:\n1 2 3\n", "map chain ends at soil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAlmanac(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.errSubstr)
		})
	}
}

func TestPart2_OddSeedCount(t *testing.T) {
	_, err := Part2(strings.NewReader("seeds: 1 2 3\n\nseed-to-location map:\n1 2 3\n"))
	assert.EqualError(t, err, `parse error at line 1 ("seeds: 1 2 3"): seed ranges need an even count, got 3 values`)
}
