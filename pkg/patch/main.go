// 12 Oct 2026

package patch

import (
	"fmt"
	"log"
	"os"

	"github.com/andrew-torda/pdbmakepatch/pdb"
	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
	"github.com/andrew-torda/pdbmakepatch/pdb/resspec"
)

// MakePatch does everything between reading and writing. It finds
// the seed, flags alpha carbons by solvent vector, grows the patch,
// extends it to whole residues and sets the output columns.
// lg may be nil.
func MakePatch(recs []cmmn.Atom, seedKey cmmn.ResKey, atnam string, prm Params, lg *log.Logger) (*Structure, error) {
	s, err := Load(recs, lg)
	if err != nil {
		return nil, err
	}
	if err := s.FindSeed(seedKey, atnam); err != nil {
		return nil, err
	}
	if err := s.FlagSolvVec(seedKey); err != nil {
		return nil, err
	}
	s.Grow(prm)
	s.FlagWholeResidues()
	s.Cleanup()
	return s, nil
}

// Mymain reads, makes the patch and only then opens the output, so
// if anything goes wrong, nothing is written.
func Mymain(args *Args) error {
	lg, err := pdb.LogWhere(args.LogDest)
	if err != nil {
		return fmt.Errorf("log destination: %w", err)
	}
	recs, err := pdb.ReadFile(args.Infile)
	if err != nil {
		src := args.Infile
		if src == "" {
			src = "standard input"
		}
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if len(recs) == 0 {
		return &InputError{Src: args.Infile}
	}
	seedKey, err := resspec.Parse(args.ResSpec)
	if err != nil {
		return err
	}
	s, err := MakePatch(recs, seedKey, args.AtNam, args.Params(), lg)
	if err != nil {
		return fmt.Errorf("patch around %s: %w", args.ResSpec, err)
	}

	fp, err := pdb.OpenOut(args.Outfile)
	if err != nil {
		return fmt.Errorf("output file %v: %w", args.Outfile, err)
	}
	if err := pdb.WriteAtoms(fp, s.Records()); err != nil {
		fp.Close()
		return fmt.Errorf("writing %v: %w", args.Outfile, err)
	}
	if err := fp.Close(); err != nil {
		return err
	}
	if args.Summary {
		return s.WriteSummary(os.Stdout, args.ResSpec)
	}
	return nil
}
