// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
)

// Common holds CLI fields shared by rnafold and rnafold-bench.
type Common struct {
	// Performance
	Threads int

	// Output
	Output string
	Sort   bool
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the "no-header" bool
// that the caller can use to set Common.Header = !noHeader after parsing.
// outputs lists the accepted --output values; the first is the default.
func Register(fs *flag.FlagSet, c *Common, outputs ...string) *bool {
	def := "text"
	if len(outputs) > 0 {
		def = outputs[0]
	}

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", def, "output format ["+def+"]")
	fs.StringVar(&c.Output, "o", def, "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "order outputs by input position [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, outputs ...string) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if len(outputs) == 0 {
		return nil
	}
	for _, o := range outputs {
		if c.Output == o {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}
