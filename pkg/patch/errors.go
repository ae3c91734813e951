package patch

import (
	"fmt"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

// InputError means we got nothing to work on.
type InputError struct {
	Src string // file name, "" for standard input
}

func (e *InputError) Error() string {
	if e.Src == "" || e.Src == "-" {
		return "No atoms read from PDB file (standard input)"
	}
	return "No atoms read from PDB file " + e.Src
}

// LookupKind says which part of finding the seed went wrong.
type LookupKind byte

const (
	NoResidue LookupKind = iota // no atom has the residue's chain, number and insertion code
	NoAtom                      // residue is there, atom name is not
	NoCalpha                    // residue is there, but has no alpha carbon
)

// LookupError is fatal. Nothing gets written.
type LookupError struct {
	Kind  LookupKind
	Key   cmmn.ResKey
	AtNam string
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case NoAtom:
		return fmt.Sprintf("Couldn't find Residue %s Atom %s", e.Key, e.AtNam)
	case NoCalpha:
		return fmt.Sprintf("Couldn't find C-alpha of Residue %s", e.Key)
	default:
		return fmt.Sprintf("Couldn't find Residue %s", e.Key)
	}
}

// ArgumentError is a problem with the command line. Msg may be empty,
// as when someone asks for help.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }
