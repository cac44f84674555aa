// Package output renders command results as styled text, markdown or JSON.
//
// Auto mode resolves to text on a terminal and markdown otherwise, so piped
// output stays free of escape codes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how results are written.
type OutputMode string

// Supported output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Modes lists every accepted mode name.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// Mode converts a configured value to an OutputMode. Unknown or empty values
// become ModeAuto.
func Mode(s string) OutputMode {
	switch OutputMode(strings.ToLower(s)) {
	case ModeText:
		return ModeText
	case ModeMarkdown:
		return ModeMarkdown
	case ModeJSON:
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Renderer writes command output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	lr := lipgloss.NewRenderer(out)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: newStyles(lr),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto against the terminal state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the text-mode styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to the output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Header writes a section header suited to the current mode.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		return
	}
	style := r.styles.Header2
	if level <= 1 {
		style = r.styles.Header1
	}
	r.Println(style.Render(text))
}

// Success writes a success line.
func (r *Renderer) Success(msg string) {
	r.Println(r.styles.StatusSuccess.String() + " " + r.styles.Success.Render(msg))
}

// Warning writes a warning to the diagnostics writer.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("Warning: "+msg))
}

// Error writes an error line to the diagnostics writer.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("Error: "+msg))
}

// Muted writes de-emphasized text.
func (r *Renderer) Muted(msg string) {
	r.Println(r.styles.Muted.Render(msg))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes rows under header as a box-drawn table in text mode and a
// pipe table otherwise.
func (r *Renderer) Table(header []string, rows [][]string) {
	if r.EffectiveMode() != ModeText {
		r.Println(FormatTable(header, rows))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}
	t.Render()
}
