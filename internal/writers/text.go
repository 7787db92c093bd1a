// internal/writers/text.go
package writers

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"rnafold/internal/engine"
)

// TextHeader returns the TSV header for the given column set.
func TextHeader(showSeq bool) string {
	cols := []string{"id", "length", "gc", "score", "pairs"}
	if showSeq {
		cols = append(cols, "seq")
	}
	return strings.Join(cols, "\t")
}

// FormatTextRow renders one result as a TSV row (no trailing newline).
func FormatTextRow(r engine.Result, showSeq bool) string {
	var b strings.Builder
	b.WriteString(r.ID)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.Length))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatFloat(r.GC, 'f', 3, 64))
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.Score))
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.Pairs()))
	if showSeq {
		b.WriteByte('\t')
		b.WriteString(r.Seq)
	}
	return b.String()
}

func writeText(out io.Writer, in <-chan engine.Result, o Options) error {
	bw := bufio.NewWriter(out)
	if o.Header {
		if _, err := bw.WriteString(TextHeader(o.ShowSeq) + "\n"); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := bw.WriteString(FormatTextRow(r, o.ShowSeq) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() { RegisterFold("text", writeText) }
