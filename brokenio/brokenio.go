// brokenio is a wrapper around an io.ReadCloser. It lets us provoke
// failed read operations when testing the structure readers.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader) to wrap the old reader. Everything then
// functions as before, but with artificial errors.
// When we introduce an error, we return an error.
// When we introduce a failure on the first read, we return io.EOF without
// data. This is what one sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is what a provoked failure returns.
var ErrBroken = errors.New("brokenio: provoked read failure")

// A BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// Probabilities are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability a read fails
	failAfter    int     // Fail once this many bytes have gone through, -1 never
	nCalled      int
	nByte        int
	verbose      bool
}

const dfltSeed = 1637

// SetVerbose sets the verbosity flag to true or false
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetSeed sets the random number seed so failures are repeatable.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes every read fail once n bytes have been delivered.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:   rIn,
		rnd:       rand.New(rand.NewSource(dfltSeed)),
		failAfter: -1,
	}
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	first := r.nCalled == 0
	r.nCalled++
	if first && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		if r.nByte >= r.failAfter {
			return 0, ErrBroken
		}
		if room := r.failAfter - r.nByte; len(p) > room {
			p = p[:room]
		}
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
