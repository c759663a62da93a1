// Package source provides the character-source abstraction the
// tokenizer reads from: stdin, file, and in-memory implementations.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Source yields one byte at a time. Next returns 0 at clean
// end-of-input.
type Source interface {
	Next() byte
	Close() error
}

// String wraps an in-memory expression string — the entry point used
// by the tests of the tokenizer, reader and evaluator.
type String struct {
	buf string
	pos int
}

// NewString returns a Source over s.
func NewString(s string) *String { return &String{buf: s} }

func (s *String) Next() byte {
	if s.pos >= len(s.buf) {
		return 0
	}
	b := s.buf[s.pos]
	s.pos++
	return b
}

func (s *String) Close() error { return nil }

// Stdin wraps standard input for the REPL case of the CLI surface,
// used when no positional filename argument is given.
type Stdin struct {
	r *bufio.Reader
}

// NewStdin returns a Source reading from os.Stdin.
func NewStdin() *Stdin {
	return &Stdin{r: bufio.NewReader(os.Stdin)}
}

func (s *Stdin) Next() byte {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0
	}
	return b
}

func (s *Stdin) Close() error { return nil }

// File wraps a filesystem path, the entry point used when the CLI is
// given a positional filename argument. Files named with a ".zst"
// suffix are transparently zstd-decompressed.
//
// The underlying handle is opened at construction and released by
// Close; if construction fails after opening it, NewFile closes it
// itself before returning the error.
type File struct {
	f   *os.File
	dec *zstd.Decoder
	r   *bufio.Reader
}

// NewFile opens path for reading.
func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: opening %s: %w", path, err)
	}
	fl := &File{f: f}
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("source: zstd init for %s: %w", path, err)
		}
		fl.dec = dec
		fl.r = bufio.NewReader(dec.IOReadCloser())
	} else {
		fl.r = bufio.NewReader(f)
	}
	return fl, nil
}

func (fl *File) Next() byte {
	b, err := fl.r.ReadByte()
	if err != nil {
		return 0
	}
	return b
}

// Close releases the decompressor (if any) and the underlying file
// handle. Safe to call more than once.
func (fl *File) Close() error {
	if fl.dec != nil {
		fl.dec.Close()
		fl.dec = nil
	}
	if fl.f != nil {
		err := fl.f.Close()
		fl.f = nil
		return err
	}
	return nil
}

var _ io.Closer = (*File)(nil)
