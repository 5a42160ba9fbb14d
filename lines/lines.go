// Package lines reads line-oriented puzzle input.
//
// Every puzzle in this module consumes one token per line: a signed delta
// for frequency, a box ID for checksum and nearmatch. This package owns the
// I/O so the algorithm packages stay pure.
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNilReader is returned when a nil io.Reader is supplied.
var ErrNilReader = errors.New("lines: reader is nil")

// StdinPath is the conventional path meaning "read standard input".
const StdinPath = "-"

// Each calls fn for every line of r, with the 1-based line number.
// A trailing '\r' is stripped so CRLF files behave like LF files.
// Iteration stops at the first error returned by fn, which is returned as is.
func Each(r io.Reader, fn func(n int, line string) error) error {
	if r == nil {
		return ErrNilReader
	}
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		if err := fn(n, strings.TrimSuffix(s.Text(), "\r")); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("lines: read line %d: %w", n+1, err)
	}

	return nil
}

// Read returns every line of r.
func Read(r io.Reader) ([]string, error) {
	var out []string
	err := Each(r, func(_ int, line string) error {
		out = append(out, line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Open opens path for reading; StdinPath yields os.Stdin.
// The returned close func is always non-nil.
func Open(path string) (io.Reader, func() error, error) {
	if path == StdinPath || path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("lines: open %q: %w", path, err)
	}

	return f, f.Close, nil
}

// ReadFile returns every line of the file at path (or stdin for StdinPath).
func ReadFile(path string) (out []string, err error) {
	r, closeFn, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = fmt.Errorf("lines: close %q: %w", path, cerr)
		}
	}()

	return Read(r)
}
