package huff

import (
	"errors"
	"fmt"
	"io"

	"github.com/huffio/huff/bitstream"
)

// Constants describing the huff container format. The alphabet consists of
// the 256 byte values plus the reserved end-of-stream symbol, so a leaf value
// in the tree header needs 9 bits.
const (
	bitsPerWord = 8
	bitsPerInt  = 32

	alphabetSize = 1 << bitsPerWord
	eosSymbol    = alphabetSize

	leafValueBits = 9
)

// huffMagic identifies the container format and the tree-based header
// variant. The low bit distinguishes the variant from the base number.
const (
	huffNumber = 0xface8200
	huffMagic  = huffNumber | 1
)

// errUnexpectedEOF indicates an unexpected end of file.
var errUnexpectedEOF = errors.New("huff: unexpected end of file")

// errWriterClosed indicates that the writer has already been closed.
var errWriterClosed = errors.New("huff: writer is closed")

// errNoEOS indicates that the encoded body ended before the end-of-stream
// code has been decoded.
var errNoEOS = errors.New("huff: no end-of-stream marker in body")

// writeMagic writes the 32-bit magic number opening every huff stream.
func writeMagic(w *bitstream.Writer) error {
	return w.WriteBits(bitsPerInt, huffMagic)
}

// readMagic reads and validates the magic number. Any value other than
// huffMagic marks the stream as a foreign or corrupted container.
func readMagic(r *bitstream.Reader) error {
	v, err := r.ReadBits(bitsPerInt)
	if err != nil {
		if err == io.EOF {
			err = errUnexpectedEOF
		}
		return fmt.Errorf("huff stream header: %s", err)
	}
	if v != huffMagic {
		return fmt.Errorf(
			"huff stream header: magic mismatch 0x%08x", v)
	}
	return nil
}
