package core

// streaming.go wraps archive entry streams before they reach the CSV parser.
//
// Entries exported from spreadsheet tools often start with a UTF-8 BOM, which
// would otherwise end up glued to the first header name. Entries that are not
// valid UTF-8 are rejected rather than repaired.

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// NewSanitizingReader strips a leading BOM. Reading fails with
// encoding.ErrInvalidUTF8 at the first invalid UTF-8 sequence.
func NewSanitizingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		encoding.UTF8Validator,
		unicode.BOMOverride(transform.Nop),
	))
}

// WrapEntry counts the raw bytes read from an entry and sanitizes them.
//
// Counting wraps the raw stream so BytesRead matches the entry's uncompressed
// size once the parser reaches EOF.
func WrapEntry(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewSanitizingReader(counter), counter
}
