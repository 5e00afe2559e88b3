package huff

import (
	"errors"
	"io"

	"github.com/huffio/huff/bitstream"
)

// Reader decodes huff files. The magic number and the tree header are
// consumed when the Reader is created; Read streams the decoded payload.
type Reader struct {
	br   *bitstream.Reader
	root *node
	err  error
}

// NewReader creates a new huff reader. It fails if the stream doesn't start
// with the huff magic number or the tree header is malformed.
func NewReader(huff io.Reader) (r *Reader, err error) {
	if huff == nil {
		return nil, errors.New("huff: reader must be not nil")
	}
	br := bitstream.NewReader(huff)
	if err = readMagic(br); err != nil {
		return nil, err
	}
	root, err := readTree(br)
	if err != nil {
		return nil, err
	}
	if root.leaf() {
		return nil, errors.New("huff tree header: root is a leaf")
	}
	return &Reader{br: br, root: root}, nil
}

// Read decompresses the body of the huff stream. It returns io.EOF after the
// end-of-stream code has been decoded. A call that fills p completely returns
// a nil error even if the end-of-stream code follows immediately; the next
// call reports io.EOF. Running out of input bits before the end-of-stream
// code is an error; the format never ends quietly.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	for n < len(p) {
		sym, err := r.decodeSymbol()
		if err != nil {
			r.err = err
			return n, err
		}
		p[n] = sym
		n++
	}
	return n, nil
}

// decodeSymbol walks the tree one bit at a time until a leaf is reached. The
// end-of-stream leaf terminates the body with io.EOF; any other leaf yields
// its value as one decoded word.
func (r *Reader) decodeSymbol() (sym byte, err error) {
	cur := r.root
	for {
		bit, err := r.br.ReadBits(1)
		if err != nil {
			if err == io.EOF {
				err = errNoEOS
			}
			return 0, err
		}
		if bit == 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
		if !cur.leaf() {
			continue
		}
		if cur.value == eosSymbol {
			return 0, io.EOF
		}
		return byte(cur.value), nil
	}
}
