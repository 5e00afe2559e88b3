package huff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/huffio/huff/bitstream"
)

func TestMagic(t *testing.T) {
	buf := new(bytes.Buffer)
	w := bitstream.NewWriter(buf)
	if err := writeMagic(w); err != nil {
		t.Fatalf("writeMagic error %s", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("w.Close() error %s", err)
	}

	p := buf.Bytes()
	want := []byte{0xfa, 0xce, 0x82, 0x01}
	if !bytes.Equal(p, want) {
		t.Fatalf("writeMagic wrote %x; want %x", p, want)
	}

	if err := readMagic(bitstream.NewBytesReader(p)); err != nil {
		t.Fatalf("readMagic error %s", err)
	}
}

func TestMagicMismatch(t *testing.T) {
	p := []byte{0xfa, 0xce, 0x82, 0x00}
	err := readMagic(bitstream.NewBytesReader(p))
	if err == nil {
		t.Fatal("readMagic accepted a wrong magic number")
	}
	if !strings.Contains(err.Error(), "magic mismatch") {
		t.Fatalf("readMagic error %q; want magic mismatch", err)
	}
}

func TestMagicTruncated(t *testing.T) {
	p := []byte{0xfa, 0xce}
	if err := readMagic(bitstream.NewBytesReader(p)); err == nil {
		t.Fatal("readMagic accepted a truncated magic number")
	}
}
