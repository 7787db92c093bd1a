// internal/writers/summary.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"rnafold/internal/jsonutil"
	"rnafold/pkg/api"
)

// WriteBench renders a bench run as human-readable text or JSON.
func WriteBench(out io.Writer, format string, b api.BenchV1) error {
	switch format {
	case "json":
		return jsonutil.EncodePretty(out, b)
	case "text":
		return writeBenchText(out, b)
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}

func writeBenchText(out io.Writer, b api.BenchV1) error {
	bw := bufio.NewWriter(out)
	sep := ""
	if s := b.Sample; s != nil {
		fmt.Fprintf(bw, "=== %d random sequences of length %d (seed %d) ===\n", s.N, s.Length, b.Seed)
		fmt.Fprintf(bw, "Average score: %.2f\n", s.Mean)
		fmt.Fprintf(bw, "Std dev: %.2f\n", s.StdDev)
		fmt.Fprintf(bw, "Min score: %d\n", s.Min)
		fmt.Fprintf(bw, "Max score: %d\n", s.Max)
		sep = "\n"
	}
	if len(b.Length) > 0 {
		fmt.Fprintf(bw, "%s=== Score vs length ===\n", sep)
		for _, s := range b.Length {
			fmt.Fprintf(bw, "Length %d: avg score = %.2f (%.4f per base)\n", s.Length, s.Mean, s.PerBase)
		}
		sep = "\n"
	}
	if len(b.GC) > 0 {
		fmt.Fprintf(bw, "%s=== Score vs GC content ===\n", sep)
		for _, s := range b.GC {
			fmt.Fprintf(bw, "GC content %.1f: avg score = %.2f\n", s.GC, s.Mean)
		}
	}
	return bw.Flush()
}
