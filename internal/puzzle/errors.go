package puzzle

import "fmt"

// ParseError reports a malformed input line.
type ParseError struct {
	Line int // 1-based; 0 when the failure is not tied to a single line
	Text string
	Msg  string
	Err  error // underlying cause, if any
}

// NewParseError creates a parse error for the given line.
func NewParseError(lineNo int, text, msg string) *ParseError {
	return &ParseError{Line: lineNo, Text: text, Msg: msg}
}

// Errorf creates a parse error with a formatted message.
func Errorf(lineNo int, text, format string, args ...any) *ParseError {
	return &ParseError{Line: lineNo, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a parse error that wraps an underlying cause.
func Wrap(lineNo int, text, msg string, err error) *ParseError {
	return &ParseError{Line: lineNo, Text: text, Msg: msg, Err: err}
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d (%q): %s", e.Line, e.Text, msg)
	}
	return "parse error: " + msg
}

func (e *ParseError) Unwrap() error { return e.Err }
