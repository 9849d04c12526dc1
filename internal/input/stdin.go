package input

import (
	"fmt"
	"io"
	"os"
)

// StdinReader reads all data from stdin.
type StdinReader struct {
	r io.Reader
}

// NewStdinReader creates a new StdinReader.
func NewStdinReader() *StdinReader {
	return &StdinReader{r: os.Stdin}
}

func (r *StdinReader) Read(path string) (string, error) {
	data, err := io.ReadAll(r.r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return toText(path, data)
}
