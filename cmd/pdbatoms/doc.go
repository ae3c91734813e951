// 13 Oct 2026

/*
Pdbatoms extracts the coordinate records from a PDB file, the ATOM and
HETATM records, and throws away all header and footer information.
Only the first model is kept. Record order does not change.

Usage:

	pdbatoms [in.pdb [out.pdb]]

Input and output are standard input and output if not given.
Exit status is 1 if no atoms could be read.
*/
package main
