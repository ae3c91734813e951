package patch_test

import (
	"bytes"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/andrew-torda/pdbmakepatch/pdb"
	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
	"github.com/andrew-torda/pdbmakepatch/pkg/common"
)

// mkAtom makes a record as it would come from a file with radius in
// the occupancy column and accessibility in the B-value column.
func mkAtom(chain string, resnum int, atnam string, x, y, z, radius, access float64) cmmn.Atom {
	return cmmn.Atom{
		Xyz:    cmmn.Xyz{X: x, Y: y, Z: z},
		Record: "ATOM  ",
		AtNam:  cmmn.PadAtNam(atnam),
		ResNam: "ALA",
		ResKey: cmmn.ResKey{Chain: chain, ResNum: resnum, Insert: ' '},
		Occ:    radius,
		Bval:   access,
	}
}

// threeInLine is three residues, one alpha carbon each, along x.
// Every solvent vector points back towards the origin, so all three
// pass the angle test.
func threeInLine() []cmmn.Atom {
	return []cmmn.Atom{
		mkAtom("A", 1, "CA", 10, 0, 0, 1.5, 10),
		mkAtom("A", 2, "CA", 14, 0, 0, 1.5, 10),
		mkAtom("A", 3, "CA", 18, 0, 0, 1.5, 10),
	}
}

// globule puts nres residues on a sphere. Each has an alpha carbon
// and three side chain atoms pointing outwards. Accessibilities are
// random and about one atom in five is buried.
func globule(nres int, seed int64) []cmmn.Atom {
	const rad = 8.0
	rnd := rand.New(rand.NewSource(seed))
	access := func() float64 {
		if rnd.Float64() < 0.2 {
			return 0
		}
		return 30 * rnd.Float64()
	}
	golden := math.Pi * (3 - math.Sqrt(5))
	var atoms []cmmn.Atom
	for i := 0; i < nres; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(nres)
		r := math.Sqrt(1 - y*y)
		th := golden * float64(i)
		u := cmmn.Xyz{X: r * math.Cos(th), Y: y, Z: r * math.Sin(th)}
		at := func(name string, d, side float64) cmmn.Atom {
			return mkAtom("A", i+1, name,
				u.X*(rad+d)+side, u.Y*(rad+d), u.Z*(rad+d)-side,
				1.6+0.3*rnd.Float64(), access())
		}
		atoms = append(atoms, at("N", -0.5, 1.2), at("CA", 0, 0),
			at("CB", 1.5, 0), at("CG", 3.0, 0.4))
	}
	return atoms
}

// wrtPdb writes atoms to a temporary file and returns its name.
func wrtPdb(t *testing.T, atoms []cmmn.Atom) string {
	var b bytes.Buffer
	if err := pdb.WriteAtoms(&b, atoms); err != nil {
		t.Fatal(err)
	}
	fname, err := common.WrtTemp(b.String())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

func dist2(a, b cmmn.Xyz) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}
