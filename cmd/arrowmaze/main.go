// Command arrowmaze solves a colored-arrow maze read from a text file and
// writes the move tokens of the first path found to an output file.
//
//	arrowmaze --in tiny.txt --out output.txt --grammar arrow --png path.png
//
// Exit status: 0 solved, 1 bad input or flags, 2 no solution, 3 search aborted.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitSolved = iota
	exitInput
	exitNoPath
	exitAborted
)

// exitError carries the process status out of a command's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command with args and maps its error to an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitSolved
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// flag and argument errors from cobra itself
	fmt.Fprintln(stderr, "Error:", err)

	return exitInput
}
