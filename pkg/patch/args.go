// 12 Oct 2026

package patch

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path"

	"github.com/andrew-torda/pdbmakepatch/pdb/resspec"
)

const (
	DfltRadius        = 18.0
	DfltTolerance     = 0.2
	DfltRingTolerance = 1.0 // tolerance with -c, unless -t was given
	DfltMinAccess     = 0.0
)

// CmdFlag has the settings from the command line.
type CmdFlag struct {
	Radius    float64
	Tolerance float64
	MinAccess float64
	RingOnly  bool   // -c, ring of residues around the seed residue
	Summary   bool   // -s, print the residues in the patch
	LogDest   string // -l, where debugging output goes
}

// Args is the whole command line, flags and positional arguments.
type Args struct {
	CmdFlag
	ResSpec string
	AtNam   string
	Infile  string // "" for standard input
	Outfile string // "" for standard output
}

// Params pulls out the values the patch growing wants.
func (f *CmdFlag) Params() Params {
	return Params{
		Radius:    f.Radius,
		Tolerance: f.Tolerance,
		MinAccess: f.MinAccess,
		RingOnly:  f.RingOnly,
	}
}

// ParseCmdLine parses everything after the program name.
// Flags come first, then resspec atomname [in [out]].
func ParseCmdLine(argv []string) (*Args, error) {
	var args Args
	if len(argv) == 0 {
		return nil, &ArgumentError{}
	}
	f := flag.NewFlagSet("pdbmakepatch", flag.ContinueOnError)
	f.SetOutput(io.Discard) // we print our own usage
	f.Float64Var(&args.Radius, "r", DfltRadius, "radius for considering atoms")
	f.Float64Var(&args.Tolerance, "t", DfltTolerance, "tolerance on radii for touching")
	f.Float64Var(&args.MinAccess, "m", DfltMinAccess, "minimum accessibility to be on the surface")
	f.BoolVar(&args.RingOnly, "c", false, "ring of residues around the central one only")
	f.BoolVar(&args.Summary, "s", false, "print a summary of residues in the patch")
	f.StringVar(&args.LogDest, "l", "", "debugging output, stderr or a file name")
	if err := f.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &ArgumentError{}
		}
		return nil, &ArgumentError{Msg: err.Error()}
	}
	userTol := false
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "t" {
			userTol = true
		}
	})
	if args.RingOnly && !userTol {
		args.Tolerance = DfltRingTolerance
	}

	if n := f.NArg(); n < 2 || n > 4 {
		return nil, &ArgumentError{Msg: fmt.Sprintf("wanted 2 to 4 arguments after the flags, got %d", n)}
	}
	args.ResSpec, args.AtNam = f.Arg(0), f.Arg(1)
	args.Infile, args.Outfile = f.Arg(2), f.Arg(3)
	return &args, nil
}

// Usage writes the help text.
func Usage(w io.Writer, prog string) {
	prog = path.Base(prog)
	fmt.Fprintf(w, "\nUsage: %s [-r radius] [-t tolerance] [-c] [-m minaccess] [-s] [-l log]\n", prog)
	fmt.Fprintf(w, "                    resspec atomname [in.pdb [out.pdb]]\n")
	fmt.Fprintf(w, "       -r  Specify radius for considering atoms [%.2f]\n", DfltRadius)
	fmt.Fprintf(w, "       -t  Specify tolerance on atom radii to consider them as\n")
	fmt.Fprintf(w, "           touching [%.2f, %.2f if used with -c]\n", DfltTolerance, DfltRingTolerance)
	fmt.Fprintf(w, "       -s  Print a summary of all residues in a patch\n")
	fmt.Fprintf(w, "       -c  Ring of contacting residues immediately around the central one only\n")
	fmt.Fprintf(w, "       -m  Specify minimum accessibility to consider a residue to be on the surface\n")
	fmt.Fprintf(w, "       -l  Write debugging output to a file, or to stderr\n")
	long := `
The input is a PDB file where the B-values have been replaced by
accessibility and the occupancy by VDW radii, as from running as2bval
on the .asa file produced by NACCESS.
Give a residue and atom on the surface as the centre of a patch. The
patch grows from that point, taking all surface atoms within the radius
that touch the central atom or, in turn, atoms already in the patch.
On output, the B-value column is 1 for atoms in the patch and 0 for
the rest. Occupancies are all set to 1.
`
	fmt.Fprintln(w, long)
	resspec.PrintHelp(w)
	fmt.Fprintln(w)
}
