package huff

import (
	"reflect"
	"testing"

	"github.com/huffio/huff/bitstream"
)

func TestCountFrequencies(t *testing.T) {
	r := bitstream.NewBytesReader([]byte("AAAB"))
	freq, err := countFrequencies(r)
	if err != nil {
		t.Fatalf("countFrequencies error %s", err)
	}
	if len(freq) != alphabetSize+1 {
		t.Fatalf("freq table has %d entries; want %d",
			len(freq), alphabetSize+1)
	}
	if freq['A'] != 3 {
		t.Errorf("freq['A'] is %d; want 3", freq['A'])
	}
	if freq['B'] != 1 {
		t.Errorf("freq['B'] is %d; want 1", freq['B'])
	}
	if freq[eosSymbol] != 1 {
		t.Errorf("freq[eosSymbol] is %d; want 1", freq[eosSymbol])
	}
	for sym, n := range freq[:alphabetSize] {
		if sym != 'A' && sym != 'B' && n != 0 {
			t.Errorf("freq[%d] is %d; want 0", sym, n)
		}
	}
}

func TestCountFrequenciesEmpty(t *testing.T) {
	r := bitstream.NewBytesReader(nil)
	freq, err := countFrequencies(r)
	if err != nil {
		t.Fatalf("countFrequencies error %s", err)
	}
	if freq[eosSymbol] != 1 {
		t.Fatalf("freq[eosSymbol] is %d; want 1", freq[eosSymbol])
	}
}

// TestBuildTreeAAAB checks the tree for the input AAAB. The nodes for B and
// the end-of-stream symbol share weight 1 and must be merged first, B on the
// left because it has been inserted first.
func TestBuildTreeAAAB(t *testing.T) {
	freq := make([]int64, alphabetSize+1)
	freq['A'] = 3
	freq['B'] = 1
	freq[eosSymbol] = 1

	root := buildTree(freq)
	if root.leaf() {
		t.Fatal("root must not be a leaf")
	}
	if !root.right.leaf() || root.right.value != 'A' {
		t.Fatal("root.right is not the leaf for A")
	}
	merged := root.left
	if merged.leaf() {
		t.Fatal("root.left must be an internal node")
	}
	if !merged.left.leaf() || merged.left.value != 'B' {
		t.Fatal("root.left.left is not the leaf for B")
	}
	if !merged.right.leaf() || merged.right.value != eosSymbol {
		t.Fatal("root.left.right is not the end-of-stream leaf")
	}

	codes := buildCodeTable(root)
	for _, tc := range []struct {
		sym  int
		code code
	}{
		{'A', code{val: 1, len: 1}},
		{'B', code{val: 0, len: 2}},
		{eosSymbol, code{val: 1, len: 2}},
	} {
		if codes[tc.sym] != tc.code {
			t.Errorf("codes[%d] is %+v; want %+v",
				tc.sym, codes[tc.sym], tc.code)
		}
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	freq := make([]int64, alphabetSize+1)
	for sym := 0; sym < 16; sym++ {
		freq[sym] = 1
	}
	freq[eosSymbol] = 1

	a := buildCodeTable(buildTree(freq))
	b := buildCodeTable(buildTree(freq))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated builds produce different code tables")
	}
}

// TestBuildTreeEOSOnly covers the empty input. The tree must still have
// height one so that the end-of-stream symbol gets a nonempty code.
func TestBuildTreeEOSOnly(t *testing.T) {
	freq := make([]int64, alphabetSize+1)
	freq[eosSymbol] = 1

	root := buildTree(freq)
	if root.leaf() {
		t.Fatal("root must not be a leaf")
	}
	codes := buildCodeTable(root)
	if codes[eosSymbol].len == 0 {
		t.Fatal("end-of-stream symbol has an empty code")
	}
}

// TestPrefixProperty verifies pairwise that no generated code is a prefix of
// another one.
func TestPrefixProperty(t *testing.T) {
	freq := make([]int64, alphabetSize+1)
	for sym := int64(0); sym < 32; sym++ {
		freq[sym] = sym*sym + 1
	}
	freq[eosSymbol] = 1

	codes := buildCodeTable(buildTree(freq))
	for i, c := range codes {
		if c.len == 0 {
			continue
		}
		for j, d := range codes {
			if i == j || d.len == 0 || c.len > d.len {
				continue
			}
			if c.val == d.val>>(d.len-c.len) {
				t.Errorf("code of %d (%0*b) is a prefix of"+
					" code of %d (%0*b)",
					i, int(c.len), c.val,
					j, int(d.len), d.val)
			}
		}
	}
}

// TestLeafZeroSymbol ensures that byte value 0 is treated as a regular
// symbol; leaf detection must be structural.
func TestLeafZeroSymbol(t *testing.T) {
	freq := make([]int64, alphabetSize+1)
	freq[0] = 5
	freq[1] = 2
	freq[eosSymbol] = 1

	codes := buildCodeTable(buildTree(freq))
	if codes[0].len == 0 {
		t.Fatal("symbol 0 has no code")
	}
}
