// Package source reads program text as a stream of Unicode scalar values.
//
// Input is UTF-8 unless it starts with a UTF-16 byte order mark; a UTF-8 byte
// order mark is dropped. Malformed UTF-8 is reported as an error from Err,
// never as characters, so callers can tell an unreadable file from a readable
// but invalid program.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Reader yields the characters of a source once. After Next returns false,
// Err tells whether the input ended or failed.
type Reader struct {
	name   string
	rd     *bufio.Reader
	closer io.Closer
	offset int64
	done   bool
	err    error
}

// Open opens the file at path. The caller closes the Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(path, f)
	r.closer = f
	return r, nil
}

// NewReader decodes r. name is only used in error messages.
func NewReader(name string, r io.Reader) *Reader {
	// Without a BOM the bytes pass through untouched and are validated by
	// Next; the UTF-8 decoder would silently replace invalid sequences.
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	return &Reader{
		name: name,
		rd:   bufio.NewReader(transform.NewReader(r, dec)),
	}
}

// DecodeError reports input that is not valid UTF-8.
type DecodeError struct {
	Name   string
	Offset int64 // in decoded bytes, byte order mark excluded
}

func (self *DecodeError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 at byte %d", self.Name, self.Offset)
}

// Next returns the next character.
func (self *Reader) Next() (rune, bool) {
	if self.done {
		return 0, false
	}
	c, size, err := self.rd.ReadRune()
	if err != nil {
		self.done = true
		if err != io.EOF {
			self.err = err
		}
		return 0, false
	}
	if c == utf8.RuneError && size == 1 {
		self.done = true
		self.err = &DecodeError{Name: self.name, Offset: self.offset}
		return 0, false
	}
	self.offset += int64(size)
	return c, true
}

// Err returns the error that ended the stream, or nil when the input was read
// to its end.
func (self *Reader) Err() error {
	return self.err
}

func (self *Reader) Close() error {
	if self.closer == nil {
		return nil
	}
	return self.closer.Close()
}
