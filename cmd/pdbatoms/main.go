// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbmakepatch/pkg/common"
	"github.com/andrew-torda/pdbmakepatch/pkg/pdbatoms"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[in.pdb [out.pdb]]")
	long := `Extracts only the coordinate records (ATOM and HETATM) from a PDB file,
discarding all header and footer information.
I/O is to stdin/stdout if not specified.`
	fmt.Fprintln(os.Stderr, long)
}

func main() {
	var infile, outfile string
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 2 {
		usage()
		os.Exit(ExitSuccess) // as pdbmakepatch, usage is not a failure
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := pdbatoms.Mymain(infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, "pdbatoms:", err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
