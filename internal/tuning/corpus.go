// Package tuning provides helpers to measure the codec against reference
// corpora.
package tuning

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/huffio/huff"
)

// File is a named test file from a corpus.
type File struct {
	Name string
	Data []byte
}

// Files collects all files of the corpus file system.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total uncompressed size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// Compress compresses all files and returns the total compressed size.
func Compress(files []File) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w := huff.NewWriter(cw)
		_, err = io.Copy(w, bytes.NewReader(f.Data))
		if err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.n
	}
	return compressedSize, nil
}
