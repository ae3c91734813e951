// Package pdb is the upper level for reading and writing PDB files.
// Decide if a file is compressed or not, check it is not mmcif,
// then read the fixed column coordinate records.
// Files named on the command line are memory mapped. Standard input
// is just read.

package pdb

import (
	"bytes"
	"io"
	"log"
	"os"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
	"github.com/andrew-torda/pdbmakepatch/pdb/zwrap"
	"github.com/edsrzf/mmap-go"
)

// a fakecloser is a wrapper around a io.Writer which turns it into
// a WriteCloser.
type fakecloser struct {
	io.Writer
}

func (fakecloser) Close() error { return nil }

// comparefirst says if two words are the same, looking at
// the length of the shorter
func comparefirst(s, t string) bool {
	l := len(s)
	if len(t) < l {
		l = len(t)
	}
	return s[:l] == t[:l]
}

// lookMmcif takes the first line with something on it and guesses if
// we have been handed mmcif.
func lookMmcif(s string) bool {
	for _, w := range []string{"data_", "loop_", "_entry.id"} {
		if len(s) >= len(w) && comparefirst(s, w) {
			return true
		}
	}
	return false
}

// mmapped is a file mapped into memory. Reads come from the mapping.
// Close unmaps, then closes the file.
type mmapped struct {
	*bytes.Reader
	mm mmap.MMap
	fp *os.File
}

func (m *mmapped) Close() error {
	err := m.mm.Unmap()
	if e := m.fp.Close(); err == nil {
		err = e
	}
	return err
}

// mapFile opens and maps a file. A zero length file cannot be mapped,
// so then we hand back the file itself.
func mapFile(fname string) (io.ReadCloser, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.Size() == 0 || !fi.Mode().IsRegular() {
		return fp, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return &mmapped{Reader: bytes.NewReader(mm), mm: mm, fp: fp}, nil
}

// OpenIn gives us a reader for fname, or standard input if fname is
// empty or "-". Gzipped input is decompressed on the way.
func OpenIn(fname string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if fname == "" || fname == "-" {
		src = io.NopCloser(os.Stdin)
	} else {
		var err error
		if src, err = mapFile(fname); err != nil {
			return nil, err
		}
	}
	rdr, err := zwrap.WrapMaybe(src)
	if err != nil {
		src.Close()
		return nil, err
	}
	return rdr, nil
}

// OpenOut creates fname, or hands back standard output if fname is
// empty or "-". Closing standard output this way does nothing.
func OpenOut(fname string) (io.WriteCloser, error) {
	if fname == "" || fname == "-" {
		return fakecloser{os.Stdout}, nil
	}
	return os.Create(fname)
}

// ReadFile opens, reads and closes.
func ReadFile(fname string) ([]cmmn.Atom, error) {
	rdr, err := OpenIn(fname)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	return ReadAtoms(rdr)
}

// LogWhere decides where to send logged output.
// "" means it is thrown away, "stderr" and "stdout" are what they say.
// Anything else is a file name we append to.
func LogWhere(outinfo string) (*log.Logger, error) {
	var iowriter io.Writer
	switch outinfo { // Decide where to send the logged output
	case "":
		iowriter = io.Discard
	case "stderr":
		iowriter = os.Stderr
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	}
	prefix := ""
	return log.New(iowriter, prefix, log.Lshortfile), nil
}
