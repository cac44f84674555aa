package harness

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// ErrInputNotFound is returned when a day's input file does not exist.
var ErrInputNotFound = errors.New("input not found")

// Opener opens a fresh input stream for a day. Every call must return a new
// stream positioned at the start of the input.
type Opener interface {
	Open(d Day) (io.ReadCloser, error)
}

// DirOpener reads inputs from files named "day<N>" inside Dir.
type DirOpener struct {
	Dir string
}

// Path returns the input file path for d.
func (o DirOpener) Path(d Day) string {
	return filepath.Join(o.Dir, "day"+strconv.Itoa(int(d)))
}

// Open opens the day's input file.
func (o DirOpener) Open(d Day) (io.ReadCloser, error) {
	path := o.Path(d)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", path, err)
	}
	return f, nil
}

// Exists reports whether the day's input file is present.
func (o DirOpener) Exists(d Day) bool {
	info, err := os.Stat(o.Path(d))
	return err == nil && !info.IsDir()
}
