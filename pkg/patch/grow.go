// 11 Oct 2026

package patch

import (
	"github.com/andrew-torda/pdbmakepatch/pdb/calpha/geom"
	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

// Params control how the patch grows.
type Params struct {
	Radius    float64 // atoms must be closer than this to the seed atom
	Tolerance float64 // added to the sum of two radii for the touching test
	MinAccess float64 // atoms must have more accessibility than this
	RingOnly  bool    // only residues touching the seed residue
}

// admit checks if q may join the patch because it touches p, which is
// already in it.
func (s *Structure) admit(p, q *Atom, seed *Atom, radSq float64, prm *Params) bool {
	if q.Access <= prm.MinAccess {
		return false
	}
	if geom.Dist2(q.Xyz, seed.Xyz) >= radSq {
		return false
	}
	touch := p.Radius + q.Radius + prm.Tolerance
	if geom.Dist2(p.Xyz, q.Xyz) >= touch*touch {
		return false
	}
	if prm.RingOnly && p.ResKey != q.ResKey && p.ResKey != seed.ResKey {
		return false
	}
	return s.solvOK(q.ResKey)
}

// Grow clears the patch, puts the seed atom in it and then keeps
// passing over the atoms, adding any that touch an atom already in
// the patch, until a pass adds nothing.
// FindSeed and FlagSolvVec must have been called.
// It returns the number of passes.
func (s *Structure) Grow(prm Params) int {
	order := make([]int, len(s.atoms))
	for i := range order {
		order[i] = i
	}
	return s.grow(prm, order)
}

// grow does the work, visiting atoms in the order given. Atoms only
// ever join, so the order does not change the final patch.
func (s *Structure) grow(prm Params, order []int) int {
	for i := range s.atoms {
		s.atoms[i].inPatch = false
	}
	seed := &s.atoms[s.seed]
	seed.inPatch = true
	radSq := prm.Radius * prm.Radius
	refused := make(map[cmmn.ResKey]bool)

	npass := 0
	for changed := true; changed; npass++ {
		changed = false
		for _, ip := range order {
			p := &s.atoms[ip]
			if !p.inPatch {
				continue
			}
			for _, iq := range order {
				q := &s.atoms[iq]
				if iq == ip || q.inPatch {
					continue
				}
				if s.admit(p, q, seed, radSq, &prm) {
					q.inPatch = true
					changed = true
				} else if !s.solvOK(q.ResKey) && !refused[q.ResKey] {
					refused[q.ResKey] = true
					s.lg.Printf("residue %s not allowed by solvent vector", q.ResKey)
				}
			}
		}
	}
	s.lg.Println("patch growth took", npass, "passes,", len(s.Flagged()), "atoms")
	return npass
}
