// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK tells the app that --examples was given; it prints the
// quickstart and exits 0 without reading any sequences.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes "<name>: quickstart", the tool's sample command lines
// from body, and a pointer to --help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s: quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nRun with --help for every flag and its default.")
}
