// Package report renders experiment summaries as tables and charts.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"rnafold/internal/stats"
)

// WriteLengthTable writes the score-vs-length table:
// Length, Average_Score, Score_per_base.
func WriteLengthTable(w io.Writer, rows []stats.Summary) {
	fmtUtil.Fprintf(w, "Length\tAverage_Score\tScore_per_base\n")
	for _, r := range rows {
		fmtUtil.Fprintf(w, "%d\t%.2f\t%.4f\n", r.Length, r.Mean, r.PerBase)
	}
}

// WriteGCTable writes the score-vs-GC table: GC_Content, Average_Score.
func WriteGCTable(w io.Writer, rows []stats.Summary) {
	fmtUtil.Fprintf(w, "GC_Content\tAverage_Score\n")
	for _, r := range rows {
		fmtUtil.Fprintf(w, "%.1f\t%.2f\n", r.GC, r.Mean)
	}
}

// SaveTable creates path and lets fill write into it. The goUtil helpers
// panic on I/O failure; SaveTable turns that back into an error.
func SaveTable(path string, fill func(io.Writer)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("write %s: %v", path, r)
		}
	}()
	fh := osUtil.Create(path)
	defer simpleUtil.DeferClose(fh)

	bw := bufio.NewWriter(fh)
	fill(bw)
	simpleUtil.CheckErr(bw.Flush())
	return nil
}
