// Package zwrap takes a reader and, if the stream is gzipped, wraps it
// so reads come from the decompressor. Calling Close closes the
// decompressor, followed by the underlying source.
// We look at the first two bytes rather than at the file name, so it
// works on standard input, which cannot seek.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.Closer
	rdr  io.Reader // the buffered source or the decompressor
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing source.
func (fc *FpGzip) Close() error {
	var s string
	if fc.zrdr != nil {
		if e := fc.zrdr.Close(); e != nil { // Close decompressor
			s = e.Error()
		}
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		s = s + " " + e.Error()
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// Read makes sure we read from the decompressed stream if there is one.
func (fc *FpGzip) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Gzipped says if we are reading through a decompressor.
func (fc *FpGzip) Gzipped() bool { return fc.zrdr != nil }

// Wrap insists the source is gzipped and returns an error if not.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
}

// WrapMaybe peeks at the start of the stream and only puts a
// decompressor in the way if it sees the gzip magic number. An empty
// stream is not an error here. The caller will find out there is
// nothing to read.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	brdr := bufio.NewReader(fp)
	head, err := brdr.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(head) == len(gzMagic) && head[0] == gzMagic[0] && head[1] == gzMagic[1] {
		zrdr, err := gzip.NewReader(brdr)
		if err != nil {
			return nil, err
		}
		return &FpGzip{fp: fp, rdr: zrdr, zrdr: zrdr}, nil
	}
	return &FpGzip{fp: fp, rdr: brdr}, nil // Leave zrdr nil
}
