package pdb_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbmakepatch/brokenio"
	. "github.com/andrew-torda/pdbmakepatch/pdb"
	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
	"github.com/andrew-torda/pdbmakepatch/pkg/common"
	"github.com/google/go-cmp/cmp"
)

const smallPdb = `HEADER    TEST STRUCTURE
REMARK   1 nothing to see
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.65 12.30           N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.87  4.50           C
ATOM      3  CA AGLY A   2      12.000   7.000  -4.000  1.87  3.00           C
ATOM      4  CA BGLY A   2      12.100   7.100  -4.100  1.87  3.00           C
HETATM    5 CA    CA B  10B      1.000   2.000   3.000  1.00  0.00          CA
TER
ENDMDL
MODEL        2
ATOM      6  N   ALA A   1      99.104   6.134  -6.504  1.65 12.30           N
END
`

func TestReadAtoms(t *testing.T) {
	atoms, err := ReadAtoms(strings.NewReader(smallPdb))
	if err != nil {
		t.Fatal(err)
	}
	if len(atoms) != 4 {
		t.Fatalf("wanted 4 atoms, got %d", len(atoms))
	}
	a := atoms[1]
	want := cmmn.Atom{
		Xyz:      cmmn.Xyz{X: 11.639, Y: 6.071, Z: -5.147},
		Record:   "ATOM  ",
		Serial:   2,
		AtNam:    "CA  ",
		AtNamRaw: " CA ",
		AltLoc:   ' ',
		ResNam:   "ALA",
		ResKey:   cmmn.ResKey{Chain: "A", ResNum: 1, Insert: ' '},
		Occ:      1.87,
		Bval:     4.5,
		Elem:     "C",
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("second atom mismatch (-want +got):\n%s", diff)
	}
	if atoms[2].AltLoc != 'A' || atoms[2].X != 12.0 {
		t.Errorf("first alternate location should be kept, got %+v", atoms[2])
	}
	het := atoms[3]
	if het.Record != "HETATM" || het.AtNam != "CA  " || het.Insert != 'B' || het.Chain != "B" {
		t.Errorf("hetatm read wrong %+v", het)
	}
}

func TestReadBroken(t *testing.T) {
	broken := []string{
		"ATOM      1  N   ALA A   1      11.104   6.134\n",
		"ATOM      1  N   ALA A   x      11.104   6.134  -6.504  1.65 12.30\n",
		"ATOM      1  N   ALA A   1      11.104   6.1x4  -6.504  1.65 12.30\n",
		"ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.x5 12.30\n",
	}
	for _, s := range broken {
		if _, err := ReadAtoms(strings.NewReader(s)); err == nil {
			t.Errorf("no error on %q", s)
		}
	}
}

func TestMmcif(t *testing.T) {
	s := "\ndata_1ABC\nloop_\n_atom_site.group_PDB\n"
	if _, err := ReadAtoms(strings.NewReader(s)); !errors.Is(err, ErrMmcif) {
		t.Errorf("wanted ErrMmcif got %v", err)
	}
}

func TestNoAtoms(t *testing.T) {
	atoms, err := ReadAtoms(strings.NewReader("HEADER    NOTHING\nEND\n"))
	if err != nil || len(atoms) != 0 {
		t.Errorf("wanted no atoms and no error, got %d, %v", len(atoms), err)
	}
}

// TestBrokenStream makes the reader fail half way through the file.
func TestBrokenStream(t *testing.T) {
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(smallPdb)))
	rdr.SetFailAfter(200)
	if _, err := ReadAtoms(rdr); !errors.Is(err, brokenio.ErrBroken) {
		t.Errorf("wanted the provoked error, got %v", err)
	}
	rdr = brokenio.NewReader(io.NopCloser(strings.NewReader(smallPdb)))
	rdr.SetProbZeroFile(1)
	if atoms, err := ReadAtoms(rdr); err != nil || len(atoms) != 0 {
		t.Errorf("zero length file gave %d atoms, %v", len(atoms), err)
	}
}

// TestWriteRead writes atoms and reads them back.
func TestWriteRead(t *testing.T) {
	atoms, err := ReadAtoms(strings.NewReader(smallPdb))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := WriteAtoms(&b, atoms); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if n := len(lines); n != 7 { // 4 atoms, 2 TER, END
		t.Fatalf("wanted 7 lines got %d\n%s", n, b.String())
	}
	if !strings.HasPrefix(lines[3], "TER") || !strings.HasPrefix(lines[5], "TER") {
		t.Errorf("TER records in wrong place\n%s", b.String())
	}
	if lines[6] != "END" {
		t.Errorf("last line %s", lines[6])
	}
	const want = "ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.87  4.50           C"
	if got := strings.TrimRight(lines[1], " "); got != want {
		t.Errorf("formatting\ngot  %q\nwant %q", got, want)
	}
	back, err := ReadAtoms(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(atoms, back); diff != "" {
		t.Errorf("read back differs (-wrote +read):\n%s", diff)
	}
}

// TestWriteMade checks atoms that never came from a file get sensible
// names and blank single character fields.
func TestWriteMade(t *testing.T) {
	atoms := []cmmn.Atom{{AtNam: "CA  ", ResNam: "GLY",
		ResKey: cmmn.ResKey{Chain: "A", ResNum: 3}, Occ: 1}}
	var b bytes.Buffer
	if err := WriteAtoms(&b, atoms); err != nil {
		t.Fatal(err)
	}
	if s := b.String(); !strings.HasPrefix(s, "ATOM      0  CA  GLY A   3    ") {
		t.Errorf("got %q", s)
	}
}

func TestOpenIn(t *testing.T) {
	fname, err := common.WrtTemp(smallPdb)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)

	gzname, err := common.WrtTempGz(smallPdb)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(gzname)

	for _, f := range []string{fname, gzname} {
		atoms, err := ReadFile(f)
		if err != nil {
			t.Fatal(f, err)
		}
		if len(atoms) != 4 {
			t.Errorf("%s: wanted 4 atoms, got %d", f, len(atoms))
		}
	}
}

func TestOpenEmptyAndMissing(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if atoms, err := ReadFile(fname); err != nil || len(atoms) != 0 {
		t.Errorf("empty file gave %d atoms, %v", len(atoms), err)
	}
	if _, err := ReadFile("/does/not/exist"); err == nil {
		t.Error("no error on missing file")
	}
}

func TestLogWhere(t *testing.T) {
	if lg, err := LogWhere(""); err != nil || lg == nil {
		t.Fatal("discarding logger", err)
	}
	fname := filepath.Join(t.TempDir(), "log")
	lg, err := LogWhere(fname)
	if err != nil {
		t.Fatal(err)
	}
	lg.Println("hello")
	if b, _ := os.ReadFile(fname); !bytes.Contains(b, []byte("hello")) {
		t.Errorf("log file has %q", b)
	}
}
