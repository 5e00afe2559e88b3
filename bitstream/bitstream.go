// Package bitstream provides bit-level readers and writers for the huff
// container format. All bit groups are written and read most-significant bit
// first. The package wraps github.com/icza/bitio and adds the restrictions
// and conveniences the codec needs: bit counts between 1 and 32, io.EOF as
// the end-of-stream marker and a Reset method for two-pass scans over
// in-memory data.
package bitstream

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Reader reads groups of 1 to 32 bits from an underlying stream.
type Reader struct {
	data []byte
	r    *bitio.Reader
}

// NewReader creates a Reader over the given io.Reader. A Reader created this
// way doesn't support Reset.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(bufio.NewReader(r))}
}

// NewBytesReader creates a Reader over the byte slice. The Reader supports
// Reset, which the compressor requires for its two passes over the input. A
// nil slice is treated as an empty stream.
func NewBytesReader(data []byte) *Reader {
	if data == nil {
		data = []byte{}
	}
	return &Reader{data: data, r: bitio.NewReader(bytes.NewReader(data))}
}

// ReadBits reads exactly n bits, 1 <= n <= 32, and returns them as an
// unsigned value with the first bit read in the most significant position.
// If fewer than n bits remain io.EOF is returned.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	if !(1 <= n && n <= 32) {
		return 0, fmt.Errorf("bitstream: bit count %d out of range", n)
	}
	v, err := r.r.ReadBits(uint8(n))
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return uint32(v), nil
}

// Reset repositions the read cursor at the start of the underlying data. It
// panics if the Reader has not been created with NewBytesReader.
func (r *Reader) Reset() {
	if r.data == nil {
		panic("bitstream: Reset requires a Reader over a byte slice")
	}
	r.r = bitio.NewReader(bytes.NewReader(r.data))
}

// Writer writes groups of 1 to 32 bits to an underlying io.Writer.
type Writer struct {
	w *bitio.Writer
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w)}
}

// WriteBits writes the low n bits of v, 1 <= n <= 32, most-significant bit
// first. Higher bits of v are ignored.
func (w *Writer) WriteBits(n uint, v uint32) error {
	if !(1 <= n && n <= 32) {
		return fmt.Errorf("bitstream: bit count %d out of range", n)
	}
	mask := uint64(1)<<n - 1
	return w.w.WriteBits(uint64(v)&mask, uint8(n))
}

// Close flushes a partial trailing byte padded with zero bits and finalizes
// the stream. The underlying io.Writer is not closed.
func (w *Writer) Close() error {
	return w.w.Close()
}
