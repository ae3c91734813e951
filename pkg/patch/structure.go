// 10 Oct 2026

package patch

import (
	"io"
	"log"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

const caName = "CA  "

// Atom carries what the patch code needs from one coordinate record.
// The input and output values have their own fields, although they
// come from and go back to the same two columns of the file.
type Atom struct {
	cmmn.Xyz
	cmmn.ResKey
	AtNam     string
	Access    float64 // accessibility, read from the temperature factor column
	Radius    float64 // contact radius, read from the occupancy column
	Member    float64 // set by Cleanup, 1 in the patch, 0 not
	OutRadius float64 // set by Cleanup, goes to the occupancy column
	inPatch   bool
}

// span is one residue, atoms[start:end].
type span struct{ start, end int }

// calpha is the representative atom of a residue and its solvent
// vector flag.
type calpha struct {
	ndx    int // into Structure.atoms
	solvOK bool
}

// Structure is one run's worth of atoms. It is owned by one caller
// and modified in place by each step.
type Structure struct {
	recs  []cmmn.Atom
	atoms []Atom
	res   []span
	cas   []calpha
	caOf  map[cmmn.ResKey]int // first representative with a key, index into cas
	seed  int                 // index of seed atom, -1 until FindSeed worked
	lg    *log.Logger
}

// residues finds the residue boundaries. A residue runs forward while
// chain, number and insertion code match its first atom.
func residues(atoms []Atom) []span {
	var res []span
	for start := 0; start < len(atoms); {
		end := start + 1
		for end < len(atoms) && atoms[end].ResKey == atoms[start].ResKey {
			end++
		}
		res = append(res, span{start, end})
		start = end
	}
	return res
}

// Load takes the records from a file. The records are kept so they
// can be written out again with the new column values.
// lg may be nil.
func Load(recs []cmmn.Atom, lg *log.Logger) (*Structure, error) {
	if len(recs) == 0 {
		return nil, &InputError{}
	}
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	s := &Structure{
		recs:  recs,
		atoms: make([]Atom, len(recs)),
		caOf:  make(map[cmmn.ResKey]int),
		seed:  -1,
		lg:    lg,
	}
	for i := range recs {
		r := &recs[i]
		s.atoms[i] = Atom{
			Xyz:    r.Xyz,
			ResKey: r.ResKey,
			AtNam:  r.AtNam,
			Access: r.Bval,
			Radius: r.Occ,
		}
		if r.AtNam == caName {
			if _, ok := s.caOf[r.ResKey]; !ok {
				s.caOf[r.ResKey] = len(s.cas)
			}
			s.cas = append(s.cas, calpha{ndx: i})
		}
	}
	s.res = residues(s.atoms)
	lg.Println("read", len(s.atoms), "atoms,", len(s.res), "residues,", len(s.cas), "alpha carbons")
	return s, nil
}

// Atoms gives the atoms in file order. Do not change them.
func (s *Structure) Atoms() []Atom { return s.atoms }

// Seed is the index of the seed atom or -1 if it has not been found.
func (s *Structure) Seed() int { return s.seed }

// Flagged gives the indices of atoms currently in the patch.
func (s *Structure) Flagged() []int {
	var ret []int
	for i := range s.atoms {
		if s.atoms[i].inPatch {
			ret = append(ret, i)
		}
	}
	return ret
}

// Records gives copies of the input records with the occupancy column
// holding the output radius and the temperature factor column holding
// patch membership. Call it after Cleanup.
func (s *Structure) Records() []cmmn.Atom {
	out := make([]cmmn.Atom, len(s.recs))
	copy(out, s.recs)
	for i := range out {
		out[i].Occ = s.atoms[i].OutRadius
		out[i].Bval = s.atoms[i].Member
	}
	return out
}
