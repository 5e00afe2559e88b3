// Package huff supports the compression and decompression of huff files.
//
// A huff file stores a single byte stream compressed with a Huffman prefix
// code. The file starts with a 32-bit magic number, followed by the coding
// tree serialized in preorder, followed by the variable-length codes for the
// payload bytes and a final code for a reserved end-of-stream symbol. The
// format is self-terminating and carries no length fields.
package huff
