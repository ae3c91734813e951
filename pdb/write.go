// 9 Oct 2026

package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

const (
	atomFmt = "%-6s%5d %-4s%c%-3s %1s%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f          %2s%-2s\n"
	terFmt  = "TER   %5d      %-3s %1s%4d%c\n"
)

// rawName gives the four columns for an atom name. If we read the atom,
// we have what was in the file. Otherwise, names of less than four
// characters start in column 14.
func rawName(a *cmmn.Atom) string {
	if len(a.AtNamRaw) == 4 {
		return a.AtNamRaw
	}
	s := strings.TrimSpace(a.AtNam)
	if len(s) < 4 {
		s = " " + s
	}
	return s
}

// blankIfZero is for single byte fields which may never have been set.
func blankIfZero(c byte) byte {
	if c == 0 {
		return ' '
	}
	return c
}

// WriteAtoms writes coordinate records in the order given.
// A TER goes after each chain and END at the very end.
func WriteAtoms(w io.Writer, atoms []cmmn.Atom) error {
	bw := bufio.NewWriter(w)
	ter := func(a *cmmn.Atom) {
		fmt.Fprintf(bw, terFmt, a.Serial+1, a.ResNam, a.Chain, a.ResNum, blankIfZero(a.Insert))
	}
	for i := range atoms {
		a := &atoms[i]
		rec := a.Record
		if rec == "" {
			rec = "ATOM"
		}
		fmt.Fprintf(bw, atomFmt, rec, a.Serial, rawName(a), blankIfZero(a.AltLoc),
			a.ResNam, a.Chain, a.ResNum, blankIfZero(a.Insert),
			a.X, a.Y, a.Z, a.Occ, a.Bval, a.Elem, a.Charge)
		if i == len(atoms)-1 || atoms[i+1].Chain != a.Chain {
			ter(a)
		}
	}
	fmt.Fprintln(bw, "END")
	return bw.Flush()
}
