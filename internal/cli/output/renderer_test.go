package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTestRenderer(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"text", ModeText},
		{"TEXT", ModeText},
		{"markdown", ModeMarkdown},
		{"json", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"yaml", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"text piped", ModeText, false, ModeText},
		{"json on tty", ModeJSON, true, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_TextWithoutTTYHasNoANSI(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText, false)
	r.Header(1, "Day 1")
	r.Success("done")
	r.Muted("quiet")
	r.Warning("careful")
	r.Error("broken")

	assert.False(t, ansiPattern.MatchString(out.String()), "stdout: %q", out.String())
	assert.False(t, ansiPattern.MatchString(errOut.String()), "stderr: %q", errOut.String())
	assert.Contains(t, out.String(), "Day 1\n")
	assert.Contains(t, out.String(), "✓ done")
	assert.Equal(t, "Warning: careful\nError: broken\n", errOut.String())
}

func TestRenderer_HeaderMarkdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Camel Cards")
	assert.Equal(t, "## Camel Cards\n", out.String())
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"Day", "Title"}
	rows := [][]string{{"1", "Trebuchet"}, {"3", "Gear Ratios"}}

	t.Run("text", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeText, false)
		r.Table(header, rows)
		s := out.String()
		assert.Contains(t, s, "┌")
		assert.Contains(t, s, "TITLE", "header row is upper-cased")
		assert.Contains(t, s, "Gear Ratios")
	})

	t.Run("markdown", func(t *testing.T) {
		r, out, _ := newTestRenderer(ModeMarkdown, false)
		r.Table(header, rows)
		want := "| Day | Title |\n| --- | --- |\n| 1 | Trebuchet |\n| 3 | Gear Ratios |\n"
		assert.Equal(t, want, out.String())
	})
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(RunOutput{RunID: "abc", Results: []DayResult{{Day: 6, Title: "Wait For It", Part1: "288"}}}))

	var got RunOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "abc", got.RunID)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "288", got.Results[0].Part1)
	assert.True(t, strings.HasPrefix(out.String(), "{\n  "), "indented output")
}

func TestFormatTable_EscapesPipes(t *testing.T) {
	got := FormatTable([]string{"a"}, [][]string{{"x|y"}})
	assert.Equal(t, "| a |\n| --- |\n| x\\|y |", got)
}

func TestFormatKeyValue(t *testing.T) {
	assert.Equal(t, "- **Part 1**: 142", FormatKeyValue("Part 1", "142"))
	assert.Equal(t, "# x", FormatHeader(0, "x"))
}
