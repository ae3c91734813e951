// Package pdb/cmmn has common definitions for coordinates and
// the atom records read from pdb files.
package cmmn

import (
	"strconv"
	"strings"
)

// Xyz is a point or a vector. Coordinates are kept in double precision
// since the angle tests sit close to numerical noise.
type Xyz struct{ X, Y, Z float64 }

// Slice gives the coordinates as a three element slice, which is what
// the gonum routines want.
func (xyz Xyz) Slice() []float64 { return []float64{xyz.X, xyz.Y, xyz.Z} }

// ResKey identifies a residue. It is what a residue specifier parses
// to and what atoms are grouped by.
type ResKey struct {
	Chain  string // Name, like "A" or "AB"
	ResNum int    // residue number from the file, not an index
	Insert byte   // Insertion code, ' ' if there is none
}

// String writes a key the way it appears in a patch summary, A:23 or A:23B
func (k ResKey) String() string {
	s := k.Chain + ":" + strconv.Itoa(k.ResNum)
	if k.Insert != ' ' && k.Insert != 0 {
		s += string(k.Insert)
	}
	return s
}

// Atom is one ATOM or HETATM record.
// Occ and Bval are whatever sits in the occupancy and temperature
// factor columns. Programs give them their own meaning.
type Atom struct {
	Xyz
	Record   string // "ATOM  " or "HETATM"
	Serial   int
	AtNam    string // left justified, padded to four, "CA  "
	AtNamRaw string // columns 13-16 as they were in the file
	AltLoc   byte
	ResNam   string
	ResKey
	Occ    float64
	Bval   float64
	Elem   string
	Charge string
}

// PadAtNam left justifies an atom name and pads or truncates it to the
// four characters used for comparisons.
func PadAtNam(s string) string {
	s = strings.TrimLeft(s, " ")
	if len(s) >= 4 {
		return s[:4]
	}
	return s + strings.Repeat(" ", 4-len(s))
}
