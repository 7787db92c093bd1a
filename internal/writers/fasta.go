// internal/writers/fasta.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"rnafold/internal/engine"
)

// FASTAHeader renders the annotated header line for r (without '>').
func FASTAHeader(r engine.Result) string {
	h := fmt.Sprintf("%s score=%d pairs=%d len=%d gc=%.3f", r.ID, r.Score, r.Pairs(), r.Length, r.GC)
	if r.SourceFile != "" {
		h += " source_file=" + r.SourceFile
	}
	return h
}

// writeFASTA re-emits folded sequences with their score in the header.
// Results without a sequence are skipped.
func writeFASTA(out io.Writer, in <-chan engine.Result, _ Options) error {
	bw := bufio.NewWriter(out)
	for r := range in {
		if r.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", FASTAHeader(r), r.Seq); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() { RegisterFold("fasta", writeFASTA) }
