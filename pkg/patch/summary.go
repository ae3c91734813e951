package patch

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSummary writes one line, the seed specifier followed by every
// residue in the patch, in file order. Call it after Cleanup.
func (s *Structure) WriteSummary(w io.Writer, spec string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<patch %s> ", spec)
	for _, r := range s.res {
		if a := &s.atoms[r.start]; a.Member == 1.0 {
			fmt.Fprintf(bw, "%s ", a.ResKey)
		}
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
