// 13 Oct 2026

// Package pdbatoms keeps only the coordinate records of a pdb file.
package pdbatoms

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/pdbmakepatch/pdb"
)

// ErrNoAtoms says there was nothing to write.
var ErrNoAtoms = errors.New("No atoms read from PDB file")

// Mymain reads infile and writes the ATOM and HETATM records of the
// first model to outfile, in the order they came. Empty names mean
// standard input and output.
func Mymain(infile, outfile string) error {
	atoms, err := pdb.ReadFile(infile)
	if err != nil {
		return err
	}
	if len(atoms) == 0 {
		return ErrNoAtoms
	}
	fp, err := pdb.OpenOut(outfile)
	if err != nil {
		return fmt.Errorf("output file %v: %w", outfile, err)
	}
	if err := pdb.WriteAtoms(fp, atoms); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
