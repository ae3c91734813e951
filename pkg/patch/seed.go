package patch

import (
	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

// findRes returns the residue whose first atom has key, or -1.
// The first residue in the file wins.
func (s *Structure) findRes(key cmmn.ResKey) int {
	for i, r := range s.res {
		if s.atoms[r.start].ResKey == key {
			return i
		}
	}
	return -1
}

// FindSeed looks for the named atom in the residue. Atom names are
// compared as four character, left justified tokens, so "CA" matches
// "CA  ".
func (s *Structure) FindSeed(key cmmn.ResKey, atnam string) error {
	ires := s.findRes(key)
	if ires == -1 {
		return &LookupError{Kind: NoResidue, Key: key, AtNam: atnam}
	}
	want := cmmn.PadAtNam(atnam)
	r := s.res[ires]
	for i := r.start; i < r.end; i++ {
		if s.atoms[i].AtNam == want {
			s.seed = i
			s.lg.Printf("seed atom %d, %s %s", i, key, want)
			return nil
		}
	}
	return &LookupError{Kind: NoAtom, Key: key, AtNam: atnam}
}
