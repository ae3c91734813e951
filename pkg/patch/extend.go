package patch

// FlagWholeResidues puts every atom of a residue in the patch if any
// of its atoms is there. Doing it twice changes nothing.
func (s *Structure) FlagWholeResidues() {
	for _, r := range s.res {
		hit := false
		for i := r.start; i < r.end && !hit; i++ {
			hit = s.atoms[i].inPatch
		}
		if !hit {
			continue
		}
		for i := r.start; i < r.end; i++ {
			s.atoms[i].inPatch = true
		}
	}
}

// Cleanup sets the output columns. Every atom gets a radius of 1 and
// a membership of 1 if it is in the patch, 0 otherwise. The patch
// flags are cleared.
func (s *Structure) Cleanup() {
	for i := range s.atoms {
		a := &s.atoms[i]
		a.OutRadius = 1.0
		a.Member = 0.0
		if a.inPatch {
			a.Member = 1.0
		}
		a.inPatch = false
	}
}
