package huff

// code represents a prefix code as its bit value and length. The code is
// written most-significant bit first, so the bit next to the root sits in the
// highest of the len positions.
type code struct {
	val uint32
	len uint
}

// codeTable maps each symbol of the alphabet to its code. Symbols that don't
// occur in the tree keep a zero-length code.
type codeTable [alphabetSize + 1]code

// buildCodeTable walks the tree depth first and records the root-to-leaf path
// for every leaf, 0 for left and 1 for right.
func buildCodeTable(root *node) *codeTable {
	t := new(codeTable)
	t.walk(root, 0, 0)
	return t
}

func (t *codeTable) walk(n *node, val uint32, nbits uint) {
	if n.leaf() {
		t[n.value] = code{val: val, len: nbits}
		return
	}
	t.walk(n.left, val<<1, nbits+1)
	t.walk(n.right, val<<1|1, nbits+1)
}
