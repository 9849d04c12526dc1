package output

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes formatted output to a file descriptor, using writev for batching.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to f.
func NewWriter(f *os.File) *Writer {
	return &Writer{fd: int(f.Fd())}
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter() *Writer {
	return NewWriter(os.Stdout)
}

// Fd returns the underlying file descriptor.
func (w *Writer) Fd() uintptr {
	return uintptr(w.fd)
}

// Write writes all of data using writev, retrying on short writes.
func (w *Writer) Write(data []byte) (int, error) {
	written := 0
	for written < len(data) {
		iovs := [][]byte{data[written:]}
		n, err := unix.Writev(w.fd, iovs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}
