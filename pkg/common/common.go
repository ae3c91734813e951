// 12 Oct 2026

// Package common has exit codes for the commands and helpers for
// writing test input.
package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// wrtTemp makes a temporary file and hands it to wrt.
// The file is removed if anything goes wrong.
func wrtTemp(pattern string, wrt func(io.Writer) error) (string, error) {
	fp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	name := fp.Name()
	err = wrt(fp)
	if e := fp.Close(); err == nil {
		err = e
	}
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("writing temp file %v: %w", name, err)
	}
	return name, nil
}

// WrtTemp writes a string to a temporary file and returns
// the filename. The caller removes it.
func WrtTemp(s string) (string, error) {
	return wrtTemp("_del_me_testing", func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// WrtTempGz is like WrtTemp, but the file is gzipped.
func WrtTempGz(s string) (string, error) {
	return wrtTemp("_del_me_testing*.gz", func(w io.Writer) error {
		zw := gzip.NewWriter(w)
		if _, err := io.WriteString(zw, s); err != nil {
			return err
		}
		return zw.Close()
	})
}
