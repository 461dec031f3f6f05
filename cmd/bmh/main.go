// Command bmh reports which inputs contain a literal byte pattern.
//
// Usage:
//
//	bmh [flags] PATTERN [FILE...]
//
// With no FILE, or when FILE is "-", standard input is searched. The exit
// status is 0 if any input matched, 1 if none did, and 2 on error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and maps its outcome to an exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	default:
		fmt.Fprintf(stderr, "bmh: %v\n", err)
		return 2
	}
}
