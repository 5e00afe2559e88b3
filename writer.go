package huff

import (
	"bytes"
	"io"

	"github.com/huffio/huff/bitstream"
	"github.com/huffio/huff/internal/xlog"
)

// Writer compresses data written to it into the huff format. The format
// requires two passes over the payload, one for counting symbol frequencies
// and one for encoding, so the payload is staged in memory until Close. Close
// must be called to write the stream; a Writer that is never closed produces
// no output at all.
type Writer struct {
	// DebugLog enables debug output if set. The log.Logger type
	// satisfies the interface.
	DebugLog xlog.Logger

	huff io.Writer
	buf  bytes.Buffer
	err  error
}

// NewWriter creates a new Writer compressing into huff.
func NewWriter(huff io.Writer) *Writer {
	return &Writer{huff: huff}
}

// Write stages p for compression. It never fails before Close unless the
// Writer is already closed.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

// Close compresses the staged payload and finalizes the output stream,
// flushing a zero-padded partial trailing byte. Closing a closed Writer
// returns an error.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	err := w.close()
	if err != nil {
		w.err = err
		return err
	}
	w.err = errWriterClosed
	return nil
}

func (w *Writer) close() error {
	data := w.buf.Bytes()
	in := bitstream.NewBytesReader(data)
	freq, err := countFrequencies(in)
	if err != nil {
		return err
	}
	root := buildTree(freq)
	codes := buildCodeTable(root)

	// The bit writer is closed on every exit path so that a partial
	// trailing byte is never left unflushed.
	out := bitstream.NewWriter(w.huff)
	err = writeStream(out, in, root, codes)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	xlog.Printf(w.DebugLog, "huff: compressed %d bytes", len(data))
	return nil
}

// writeStream writes the magic number, the tree header and the encoded body.
func writeStream(out *bitstream.Writer, in *bitstream.Reader, root *node, codes *codeTable) error {
	if err := writeMagic(out); err != nil {
		return err
	}
	if err := writeTree(out, root); err != nil {
		return err
	}
	in.Reset()
	return encodeBody(out, in, codes)
}

// encodeBody re-reads the payload and emits the code for each word, followed
// by the code of the end-of-stream symbol. The body is self-terminating; no
// length field is written.
func encodeBody(w *bitstream.Writer, r *bitstream.Reader, codes *codeTable) error {
	for {
		v, err := r.ReadBits(bitsPerWord)
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		c := codes[v]
		if err = w.WriteBits(c.len, c.val); err != nil {
			return err
		}
	}
	eos := codes[eosSymbol]
	return w.WriteBits(eos.len, eos.val)
}
