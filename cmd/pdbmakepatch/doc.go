// 12 Oct 2026

/*
Pdbmakepatch builds a patch of surface residues around a given atom.

The input is a PDB file where the B-values have been replaced by
accessibility and the occupancies by atomic radii, as one gets from
running as2bval on the output of NACCESS. Starting from the given atom,
the patch grows over all surface atoms within the radius which touch
the central atom or atoms already in the patch. Residues whose solvent
vector (from the alpha carbon to the centre of its ten nearest alpha
carbons) is more than 120 degrees from the central residue's are on
another face of the protein and are never added. At the end, any
residue with one atom in the patch is taken completely.

On output, the B-value column is 1 for atoms in the patch and 0
otherwise. Occupancies are all set to 1.

Given no input file, it reads standard input. Given no output file, it
writes to standard output. Gzipped input is fine.

Usage:

	pdbmakepatch [flags] resspec atomname [in.pdb [out.pdb]]

The flags are:

	-r radius
		Only consider atoms closer than this to the central atom [18.0]
	-t tolerance
		Added to the sum of two atomic radii when deciding if atoms
		touch [0.2, or 1.0 with -c]
	-c
		Only take the ring of residues touching the central residue
	-m minaccess
		Atoms need more than this accessibility to be on the surface [0.0]
	-s
		Print a line with the residues in the patch to standard output
	-l dest
		Debugging output to dest, either "stderr" or a file name

A residue is given as [c[.]]num[i], like A23, L24A or AB.15.

Exit status is 1 if no atoms are read or the residue or atom cannot be
found. A broken command line prints the usage and, for compatibility
with older versions, exits with 0.
*/
package main
