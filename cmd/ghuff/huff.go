package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/huffio/huff"
)

const huffSuffix = ".huff"

// packer abstracts over the compression and decompression direction of the
// file processing.
type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) (n int64, err error)
}

type huffPacker struct{}

func (p huffPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		err = errors.New("path is empty")
		return
	}
	if strings.HasSuffix(path, huffSuffix) {
		err = fmt.Errorf("path %s has suffix %s -- ignored",
			path, huffSuffix)
		return
	}
	out = path + huffSuffix
	tmp = out + ".pack"
	return
}

func (p huffPacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	bw := bufio.NewWriter(w)
	hw := huff.NewWriter(bw)
	if opts.verbose {
		hw.DebugLog = log.Default()
	}
	n, err = io.Copy(hw, r)
	if err != nil {
		return
	}
	if err = hw.Close(); err != nil {
		return
	}
	err = bw.Flush()
	return
}

type huffUnpacker struct{}

func (u huffUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, huffSuffix) {
		err = fmt.Errorf("path %s has no suffix %s",
			path, huffSuffix)
		return
	}
	base := filepath.Base(path)
	if base == huffSuffix {
		err = fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, huffSuffix)
		return
	}
	out = path[:len(path)-len(huffSuffix)]
	tmp = out + ".unpack"
	return
}

func (u huffUnpacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	// pack actually unpacks
	hr, err := huff.NewReader(bufio.NewReader(r))
	if err != nil {
		return
	}
	n, err = io.Copy(w, hr)
	return
}

// signalHandler removes the temporary file if the program is interrupted
// while it is still being written. The returned channel must be closed to
// stop the handler goroutine.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

func packFile(pck packer, path, tmpPath string, opts *options) error {
	var err error

	// open reader
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		fi, err := os.Lstat(path)
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", path)
		}
		r, err = os.Open(path)
		if err != nil {
			return err
		}
		fi, err = r.Stat()
		if err != nil {
			r.Close()
			return err
		}
		if !fi.Mode().IsRegular() {
			r.Close()
			return fmt.Errorf("%s is not a regular file", path)
		}
	}
	defer func() {
		if err != nil {
			r.Close()
		} else {
			err = r.Close()
		}
	}()

	// open writer
	var w *os.File
	if tmpPath == "-" {
		w = os.Stdout
	} else {
		if opts.force {
			os.Remove(tmpPath)
		}
		w, err = os.OpenFile(tmpPath,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				w.Close()
			} else {
				err = w.Close()
			}
		}()
		fi, err := w.Stat()
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", tmpPath)
		}
	}

	_, err = pck.pack(w, r, opts)
	return err
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError converts a path error into a generic error removing the operation
// information, which is not relevant for users of the ghuff program.
func userError(err error) error {
	pe, ok := err.(*os.PathError)
	if !ok {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func warn(opts *options, err error) {
	if opts.quiet {
		return
	}
	log.Print(userError(err))
}

func processFile(path string, opts *options) {
	var pck packer
	if opts.decompress {
		pck = huffUnpacker{}
	} else {
		pck = huffPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		warn(opts, err)
		return
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if outputPath != "-" {
		_, err = os.Lstat(outputPath)
		if err == nil && !opts.force {
			warn(opts, fmt.Errorf("file %s exists", outputPath))
			return
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = packFile(pck, path, tmpPath, opts); err != nil {
		warn(opts, err)
		return
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			warn(opts, err)
			return
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			warn(opts, err)
			return
		}
	}
}
