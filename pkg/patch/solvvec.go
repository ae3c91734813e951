// 11 Oct 2026
// Solvent vectors. For each alpha carbon, take the centre of its
// nearest neighbours. The vector from the atom to that point is a
// rough guess at the direction pointing into the protein, so residues
// whose vector is more than 120 degrees from the seed's vector are on
// another face and are not allowed into the patch.

package patch

import (
	"math"
	"sort"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pdbmakepatch/pdb/calpha/geom"
	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

const (
	nClose     = 10     // neighbours averaged for a mass centre
	otherChain = 999.99 // scratch distance for atoms in a different chain
	nearZero   = 0.01   // scratch distances closer to zero than this are the atom itself
	minCos     = -0.5   // cos(120 degrees)
)

// scratchTable fills a table of distances between alpha carbons.
// Row r is the scratch distance of every alpha carbon from alpha
// carbon r. Atoms in other chains get a sentinel that sorts them
// after everything in r's chain.
func (s *Structure) scratchTable() *matrix.FMatrix2d {
	n := len(s.cas)
	tab := matrix.NewFMatrix2d(n, n)
	for i := 0; i < n; i++ {
		ai := &s.atoms[s.cas[i].ndx]
		for j := i; j < n; j++ {
			aj := &s.atoms[s.cas[j].ndx]
			d := float32(otherChain)
			if ai.Chain == aj.Chain {
				d = float32(geom.Dist(ai.Xyz, aj.Xyz))
			}
			tab.Mat[i][j], tab.Mat[j][i] = d, d
		}
	}
	return tab
}

// massCentre ranks all alpha carbons by scratch distance from alpha
// carbon r and averages the first nClose which are not r itself.
// We always divide by nClose, even if there were fewer atoms to add up.
// Ties go to the atom earlier in the file.
func (s *Structure) massCentre(tab *matrix.FMatrix2d, r int) cmmn.Xyz {
	row := tab.Mat[r]
	order := make([]int, len(row))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return row[order[i]] < row[order[j]] })

	pts := make([]cmmn.Xyz, 0, nClose)
	for _, i := range order {
		if len(pts) == nClose {
			break
		}
		if d := row[i]; d > -nearZero && d < nearZero {
			continue
		}
		pts = append(pts, s.atoms[s.cas[i].ndx].Xyz)
	}
	return geom.Centroid(pts, nClose)
}

// solvVec is the vector from alpha carbon r to its mass centre.
func (s *Structure) solvVec(tab *matrix.FMatrix2d, r int) cmmn.Xyz {
	return geom.Diff(s.atoms[s.cas[r].ndx].Xyz, s.massCentre(tab, r))
}

// FlagSolvVec sets the solvent vector flag on every alpha carbon.
// It needs the seed residue to have an alpha carbon. A zero length
// vector gives a NaN cosine, so that residue is not flagged.
func (s *Structure) FlagSolvVec(seedKey cmmn.ResKey) error {
	iseed, ok := s.caOf[seedKey]
	if !ok {
		return &LookupError{Kind: NoCalpha, Key: seedKey}
	}
	tab := s.scratchTable()
	seedVec := s.solvVec(tab, iseed)
	nOK := 0
	for i := range s.cas {
		c := geom.CosAngle(seedVec, s.solvVec(tab, i))
		if s.cas[i].solvOK = c > minCos; s.cas[i].solvOK {
			nOK++
		} else {
			a, _ := geom.VecAngle(seedVec, s.solvVec(tab, i)) // NaN for a zero vector
			s.lg.Printf("%s eliminated by solvent vector, angle %.1f", s.atoms[s.cas[i].ndx].ResKey, a*180/math.Pi)
		}
	}
	s.lg.Println(nOK, "of", len(s.cas), "residues pass the solvent vector test")
	return nil
}

// solvOK says if the residue with key may join the patch. The first
// alpha carbon with the key decides. A residue without one never may.
func (s *Structure) solvOK(key cmmn.ResKey) bool {
	i, ok := s.caOf[key]
	return ok && s.cas[i].solvOK
}
