// 12 Oct 2026

package main

import (
	"errors"
	"fmt"
	"os"

	. "github.com/andrew-torda/pdbmakepatch/pkg/common"
	"github.com/andrew-torda/pdbmakepatch/pkg/patch"
)

// Older versions exited with success after printing usage. Scripts
// may depend on it.
const usageExit = ExitSuccess

func mymain() int {
	args, err := patch.ParseCmdLine(os.Args[1:])
	if err != nil {
		var ae *patch.ArgumentError
		if errors.As(err, &ae) && ae.Msg != "" {
			fmt.Fprintln(os.Stderr, "pdbmakepatch:", ae.Msg)
		}
		patch.Usage(os.Stderr, os.Args[0])
		return usageExit
	}
	if err := patch.Mymain(args); err != nil {
		fmt.Fprintln(os.Stderr, "pdbmakepatch: (Error)", err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
