package input

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// BufferedReader reads files using unix.Open with O_NOATIME and unix.Pread.
// Files without a known size fall back to sequential reads until EOF.
type BufferedReader struct{}

// NewBufferedReader creates a new BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (string, error) {
	fd, err := openFile(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		return "", fmt.Errorf("read %s: %w", path, syscall.EISDIR)
	}

	var buf []byte
	if stat.Mode&unix.S_IFMT == unix.S_IFREG && stat.Size > 0 {
		buf, err = readAll(fd, stat.Size)
	} else {
		// FIFOs, procfs and other special files report no usable size.
		buf, err = readToEOF(fd)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return toText(path, buf)
}

// readAll reads a file of known size from an open fd using pread (no seek state).
// A file that shrinks while being read yields what was there.
func readAll(fd int, size int64) ([]byte, error) {
	buf := make([]byte, size)
	var totalRead int
	for totalRead < len(buf) {
		n, err := unix.Pread(fd, buf[totalRead:], int64(totalRead))
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break // EOF
		}
		totalRead += n
	}
	return buf[:totalRead], nil
}

// readToEOF reads from fd with read(2) until it returns 0.
func readToEOF(fd int) ([]byte, error) {
	buf := make([]byte, 0, 64*1024) // 64KB initial capacity
	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := unix.Read(fd, buf[len(buf):cap(buf)])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return buf, nil
		}
		buf = buf[:len(buf)+n]
	}
}

// openFile opens path read-only, skipping the atime update when permitted.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME|unix.O_CLOEXEC, 0)
	if err == unix.EPERM {
		fd, err = unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	}
	return fd, err
}
