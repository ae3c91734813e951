// Package resspec turns residue specifiers like "A23", "L.24A" or
// "42" into residue keys.
package resspec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbmakepatch/pdb/cmmn"
)

// Error says which specifier could not be parsed.
type Error struct {
	Spec string
	msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("residue specifier \"%s\": %s", e.Spec, e.msg)
}

// isDigit includes the minus sign, since residue numbers can be negative.
func isDigit(c byte) bool { return (c >= '0' && c <= '9') || c == '-' }

// Parse takes [c[.]]num[i].
// A chain name of more than one character must be followed by a full
// stop. Without a chain, the blank chain is used, and without an
// insertion code we get a blank.
func Parse(spec string) (cmmn.ResKey, error) {
	key := cmmn.ResKey{Chain: " ", Insert: ' '}
	s := strings.TrimSpace(spec)
	if s == "" {
		return key, &Error{spec, "empty"}
	}
	if i := strings.IndexByte(s, '.'); i != -1 {
		if i == 0 {
			return key, &Error{spec, "empty chain name before ."}
		}
		key.Chain, s = s[:i], s[i+1:]
	} else if !isDigit(s[0]) {
		key.Chain, s = s[:1], s[1:]
	}

	n := 0
	for n < len(s) && isDigit(s[n]) && (s[n] != '-' || n == 0) {
		n++
	}
	if n == 0 {
		return key, &Error{spec, "no residue number"}
	}
	num, err := strconv.Atoi(s[:n])
	if err != nil {
		return key, &Error{spec, "bad residue number " + s[:n]}
	}
	key.ResNum = num
	switch rest := s[n:]; len(rest) {
	case 0:
	case 1:
		key.Insert = rest[0]
	default:
		return key, &Error{spec, "junk after residue number: " + rest}
	}
	return key, nil
}

// PrintHelp writes a short explanation of residue specifiers.
func PrintHelp(w io.Writer) {
	const help = `Residues are specified as [c[.]]num[i] where [c] is an optional chain
label, num is the residue number and [i] is an optional insertion code.
A chain label of more than one character must be followed by a full stop.
A single character chain label that is a digit also needs the full stop.
Examples: A23, L24A, AB.15, 3.101, 42 (blank chain)`
	fmt.Fprintln(w, help)
}
