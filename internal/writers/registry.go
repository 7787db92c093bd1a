// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"rnafold/internal/engine"
)

// Options selects and tunes a fold writer.
type Options struct {
	Format  string // text | json | jsonl
	Sort    bool   // buffer and order by input index
	Header  bool   // text only
	ShowSeq bool   // include the sequence column / field
}

// FoldWriterFunc drains in and renders it to out.
type FoldWriterFunc func(out io.Writer, in <-chan engine.Result, o Options) error

// FoldWriters maps format → handler. Registered in init() blocks of the format files.
var FoldWriters = map[string]FoldWriterFunc{}

// RegisterFold installs fn for format (last registration wins).
func RegisterFold(format string, fn FoldWriterFunc) { FoldWriters[format] = fn }

// Formats lists the registered fold formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(FoldWriters))
	for k := range FoldWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StartFoldWriter spins up a writer goroutine for engine.Result items.
// The error channel yields exactly one value once in is closed and drained.
func StartFoldWriter(out io.Writer, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, ok := FoldWriters[o.Format]
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown fold format %q (no writer registered)", o.Format)
			return
		}
		src := (<-chan engine.Result)(in)
		if o.Sort {
			src = sorted(in)
		}
		err := fn(out, src, o)
		for range src { // writer failed early: keep producers unblocked
		}
		errCh <- err
	}()

	return in, errCh
}

// sorted buffers everything from in and replays it ordered by Index.
func sorted(in <-chan engine.Result) <-chan engine.Result {
	var buf []engine.Result
	for r := range in {
		buf = append(buf, r)
	}
	SortResults(buf)
	out := make(chan engine.Result, len(buf))
	for _, r := range buf {
		out <- r
	}
	close(out)
	return out
}

// SortResults orders results by input index, then ID.
func SortResults(rs []engine.Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Index != rs[j].Index {
			return rs[i].Index < rs[j].Index
		}
		return rs[i].ID < rs[j].ID
	})
}
