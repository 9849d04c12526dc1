package input

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNotText is returned when file content is not valid UTF-8.
var ErrNotText = errors.New("not valid UTF-8 text")

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// Reader reads the full content of a file as text.
type Reader interface {
	Read(path string) (string, error)
}

// NewReader returns the Reader for path: a StdinReader for StdinPath,
// a BufferedReader otherwise.
func NewReader(path string) Reader {
	if path == StdinPath {
		return NewStdinReader()
	}
	return NewBufferedReader()
}

// toText checks that data is valid UTF-8 and converts it to a string.
func toText(path string, data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrNotText)
	}
	return string(data), nil
}
