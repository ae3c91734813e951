package patch

import "github.com/andrew-torda/pdbmakepatch/pdb/cmmn"

// GrowOrder grows the patch visiting atoms in the given order.
func (s *Structure) GrowOrder(prm Params, order []int) int { return s.grow(prm, order) }

func (s *Structure) SolvOK(key cmmn.ResKey) bool { return s.solvOK(key) }

// MassCentre is for the i'th alpha carbon.
func (s *Structure) MassCentre(i int) cmmn.Xyz { return s.massCentre(s.scratchTable(), i) }

func (s *Structure) NCalpha() int { return len(s.cas) }

func (s *Structure) InPatch(i int) bool { return s.atoms[i].inPatch }

const NClose = nClose
