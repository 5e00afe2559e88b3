package huff

import (
	"container/heap"
	"io"

	"github.com/huffio/huff/bitstream"
)

// node is a node of the coding tree. A node is a leaf if and only if it has
// no children; only leaves carry a symbol value. The weight and the insertion
// sequence number are only used while the tree is built.
type node struct {
	value  int
	weight int64
	seq    int

	left  *node
	right *node
}

// leaf reports whether n is a leaf. The check is structural so that byte
// value 0 remains encodable.
func (n *node) leaf() bool { return n.left == nil }

// nodeHeap is a min-heap ordered by node weight. Equal weights are ordered by
// the insertion sequence number, which keeps tree construction reproducible
// across runs on the same input.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// countFrequencies scans r word by word and returns the frequency table for
// the full alphabet. The slot of the end-of-stream symbol is always set to
// one; the symbol never occurs literally in the input but must be present in
// the tree. The reader is consumed to its end; the caller has to call Reset
// before re-reading for encoding.
func countFrequencies(r *bitstream.Reader) ([]int64, error) {
	freq := make([]int64, alphabetSize+1)
	for {
		v, err := r.ReadBits(bitsPerWord)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		freq[v]++
	}
	freq[eosSymbol] = 1
	return freq, nil
}

// buildTree builds the prefix-code tree for the given frequency table.
// Symbols with zero count are excluded. The two lowest-weight nodes are
// merged repeatedly; the first node removed becomes the left child. The
// returned root is always an internal node, so every leaf has a code of at
// least one bit.
func buildTree(freq []int64) *node {
	h := make(nodeHeap, 0, len(freq))
	for sym, n := range freq {
		if n == 0 {
			continue
		}
		h = append(h, &node{value: sym, weight: n, seq: len(h)})
	}
	heap.Init(&h)
	seq := len(h)
	if h.Len() == 1 {
		// Only the end-of-stream symbol is present. The merge loop
		// needs a second node so that the single leaf still gets a
		// one-bit code.
		heap.Push(&h, &node{seq: seq})
		seq++
	}
	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		t := &node{
			weight: left.weight + right.weight,
			seq:    seq,
			left:   left,
			right:  right,
		}
		seq++
		heap.Push(&h, t)
	}
	return heap.Pop(&h).(*node)
}
