package huff

import (
	"fmt"
	"io"

	"github.com/huffio/huff/bitstream"
)

// writeTree serializes the tree in preorder. An internal node is written as a
// single 0 bit followed by its two subtrees; a leaf is written as a 1 bit
// followed by the symbol value in a 9-bit field. Eight bits would truncate
// the end-of-stream symbol.
func writeTree(w *bitstream.Writer, n *node) error {
	if n.leaf() {
		if err := w.WriteBits(1, 1); err != nil {
			return err
		}
		return w.WriteBits(leafValueBits, uint32(n.value))
	}
	if err := w.WriteBits(1, 0); err != nil {
		return err
	}
	if err := writeTree(w, n.left); err != nil {
		return err
	}
	return writeTree(w, n.right)
}

// maxTreeDepth is the deepest a valid tree can get. A tree over the 257
// symbols of the alphabet has at most 257 leaves and therefore a depth of at
// most 256.
const maxTreeDepth = alphabetSize

// readTree reconstructs the tree from its preorder serialization. Running out
// of bits while a structural bit or a value field is expected marks the
// header as truncated.
func readTree(r *bitstream.Reader) (*node, error) {
	return readTreeAt(r, 0)
}

func readTreeAt(r *bitstream.Reader, depth int) (*node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf(
			"huff tree header: tree deeper than %d", maxTreeDepth)
	}
	bit, err := r.ReadBits(1)
	if err != nil {
		if err == io.EOF {
			err = errUnexpectedEOF
		}
		return nil, fmt.Errorf("huff tree header: %s", err)
	}
	if bit == 0 {
		left, err := readTreeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readTreeAt(r, depth+1)
		if err != nil {
			return nil, err
		}
		return &node{left: left, right: right}, nil
	}
	v, err := r.ReadBits(leafValueBits)
	if err != nil {
		if err == io.EOF {
			err = errUnexpectedEOF
		}
		return nil, fmt.Errorf("huff tree header: %s", err)
	}
	if v > eosSymbol {
		return nil, fmt.Errorf(
			"huff tree header: symbol %d out of range", v)
	}
	return &node{value: int(v)}, nil
}
