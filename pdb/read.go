// 9 Oct 2026
// Read ATOM and HETATM records from fixed column pdb files.

package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

const (
	minCoordLine = 54 // Enough to get to the end of z
	fullLine     = 80
)

// ErrMmcif is returned when the input looks like mmcif. We only read
// the old format.
var ErrMmcif = Error("input looks like mmcif, only pdb format can be read")

type Error string

func (e Error) Error() string { return string(e) }

// atomKey is used to spot alternate locations of an atom we already have.
type atomKey struct {
	cmmn.ResKey
	atnam string
}

// field pulls out a trimmed column range.
func field(s string, from, to int) string { return strings.TrimSpace(s[from:to]) }

// parseFloat is a field that might be empty, as occupancies often are.
func parseFloat(s string, from, to int) (float64, error) {
	t := field(s, from, to)
	if t == "" {
		return 0, nil
	}
	return strconv.ParseFloat(t, 64)
}

// parseAtom does one coordinate line. s has been padded to fullLine.
func parseAtom(s string) (a cmmn.Atom, err error) {
	a.Record = s[0:6]
	if t := field(s, 6, 11); t != "" {
		if a.Serial, err = strconv.Atoi(t); err != nil {
			return a, fmt.Errorf("atom serial number: %w", err)
		}
	}
	a.AtNamRaw = s[12:16]
	a.AtNam = cmmn.PadAtNam(a.AtNamRaw)
	a.AltLoc = s[16]
	a.ResNam = field(s, 17, 20)
	a.Chain = s[21:22]
	if a.ResNum, err = strconv.Atoi(field(s, 22, 26)); err != nil {
		return a, fmt.Errorf("residue number: %w", err)
	}
	a.Insert = s[26]
	if a.X, err = strconv.ParseFloat(field(s, 30, 38), 64); err != nil {
		return a, fmt.Errorf("x coordinate: %w", err)
	}
	if a.Y, err = strconv.ParseFloat(field(s, 38, 46), 64); err != nil {
		return a, fmt.Errorf("y coordinate: %w", err)
	}
	if a.Z, err = strconv.ParseFloat(field(s, 46, 54), 64); err != nil {
		return a, fmt.Errorf("z coordinate: %w", err)
	}
	if a.Occ, err = parseFloat(s, 54, 60); err != nil {
		return a, fmt.Errorf("occupancy column: %w", err)
	}
	if a.Bval, err = parseFloat(s, 60, 66); err != nil {
		return a, fmt.Errorf("temperature factor column: %w", err)
	}
	a.Elem = field(s, 76, 78)
	a.Charge = field(s, 78, 80)
	return a, nil
}

// ReadAtoms reads coordinate records from the first model.
// Header and footer records are skipped. If an atom has alternate
// locations, the first one we see is kept.
// Getting no atoms is not an error here. The caller decides.
func ReadAtoms(rdr io.Reader) ([]cmmn.Atom, error) {
	var atoms []cmmn.Atom
	seen := make(map[atomKey]bool)
	scnnr := bufio.NewScanner(rdr)
	sniffed := false
	for lineno := 1; scnnr.Scan(); lineno++ {
		s := scnnr.Text()
		if !sniffed && strings.TrimSpace(s) != "" {
			sniffed = true
			if lookMmcif(s) {
				return nil, ErrMmcif
			}
		}
		if strings.HasPrefix(s, "ENDMDL") || strings.TrimSpace(s) == "END" {
			break
		}
		if !strings.HasPrefix(s, "ATOM") && !strings.HasPrefix(s, "HETATM") {
			continue
		}
		if len(s) < minCoordLine {
			return nil, fmt.Errorf("line %d: short coordinate record", lineno)
		}
		if len(s) < fullLine {
			s = s + strings.Repeat(" ", fullLine-len(s))
		}
		a, err := parseAtom(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		k := atomKey{a.ResKey, a.AtNam}
		if a.AltLoc != ' ' && seen[k] {
			continue
		}
		seen[k] = true
		atoms = append(atoms, a)
	}
	if err := scnnr.Err(); err != nil {
		return nil, err
	}
	return atoms, nil
}
