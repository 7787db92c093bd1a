package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"

	"rnafold-core/rna"

	"rnafold/internal/engine"
)

func writeFA(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func collect(t *testing.T, cfg Config, src Source) ([]engine.Result, error) {
	t.Helper()
	var out []engine.Result
	err := ForEachResult(context.Background(), cfg, src, engine.New(engine.Config{KeepSeq: true}), func(r engine.Result) error {
		out = append(out, r)
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, err
}

func TestForEachResultFASTAAndInline(t *testing.T) {
	fa := writeFA(t, ">a\nGGGAAAUCC\n>b\naucg\n")
	out, err := collect(t, Config{Threads: 3}, Concat(FASTAFiles([]string{fa}), Inline("seq", "", []string{"AU", "AAAA"})))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []struct {
		id    string
		score int
		seq   string
	}{{"a", -3, "GGGAAAUCC"}, {"b", -2, "AUCG"}, {"seq1", -1, "AU"}, {"seq2", 0, "AAAA"}}
	if len(out) != len(want) {
		t.Fatalf("got %d results", len(out))
	}
	for i, w := range want {
		if out[i].ID != w.id || out[i].Score != w.score || out[i].Seq != w.seq || out[i].Index != i {
			t.Fatalf("result %d = %+v, want %+v", i, out[i], w)
		}
	}
	if out[0].SourceFile != fa || out[2].SourceFile != "" {
		t.Fatalf("source files: %q %q", out[0].SourceFile, out[2].SourceFile)
	}
}

func TestInvalidSkippedAndReported(t *testing.T) {
	var skipped []string
	cfg := Config{
		Threads:  2,
		Validate: rna.Options{Strict: true},
		MaxLen:   6,
		OnInvalid: func(r Record, err error) {
			skipped = append(skipped, r.ID)
		},
	}
	out, err := collect(t, cfg, Inline("s", "", []string{"AUGC", "AUNC", "AUAUAUAU", "GC"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out) != 2 || out[0].ID != "s1" || out[1].ID != "s4" || out[1].Index != 1 {
		t.Fatalf("kept: %+v", out)
	}
	if len(skipped) != 2 || skipped[0] != "s2" || skipped[1] != "s3" {
		t.Fatalf("skipped: %v", skipped)
	}
}

func TestFailFast(t *testing.T) {
	_, err := collect(t, Config{FailFast: true, MaxLen: 3}, Inline("s", "", []string{"AU", "AUAU"}))
	if !errors.Is(err, ErrTooLong) {
		t.Fatalf("want ErrTooLong, got %v", err)
	}
	_, err = collect(t, Config{FailFast: true}, Inline("s", "", []string{"A1"}))
	if !errors.Is(err, rna.ErrInvalidSymbol) {
		t.Fatalf("want ErrInvalidSymbol, got %v", err)
	}
}

func TestVisitErrorStops(t *testing.T) {
	boom := errors.New("boom")
	seqs := make([]string, 200)
	for i := range seqs {
		seqs[i] = "GCGCAUAU"
	}
	var calls int32
	err := ForEachResult(context.Background(), Config{Threads: 4}, Inline("s", "", seqs), engine.New(engine.Config{}),
		func(engine.Result) error {
			atomic.AddInt32(&calls, 1)
			return boom
		})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("visit called %d times after error", calls)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachResult(ctx, Config{Threads: 2}, Inline("s", "", []string{"AU", "GC"}), engine.New(engine.Config{}),
		func(engine.Result) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestMissingFASTA(t *testing.T) {
	_, err := collect(t, Config{}, FASTAFiles([]string{filepath.Join(t.TempDir(), "nope.fa")}))
	if err == nil {
		t.Fatal("expected open error")
	}
}

func TestFoldAllOrder(t *testing.T) {
	seqs := []string{"AU", "AAAA", "GCGC", "GGGAAAUCC", ""}
	var ticks []int
	out, err := FoldAll(context.Background(), Config{Threads: 4}, engine.New(engine.Config{}), seqs,
		func(done int) { ticks = append(ticks, done) })
	if err != nil {
		t.Fatalf("FoldAll: %v", err)
	}
	if len(ticks) != len(seqs) || ticks[len(ticks)-1] != len(seqs) {
		t.Fatalf("progress ticks: %v", ticks)
	}
	want := []int{-1, 0, -2, -3, 0}
	for i, w := range want {
		if out[i].Score != w || out[i].Length != len(seqs[i]) {
			t.Fatalf("result %d = %+v, want score %d", i, out[i], w)
		}
	}
}

func TestAntisenseFoldsReverseComplement(t *testing.T) {
	// GU pairs by wobble; its reverse complement AC cannot pair.
	cfg := Config{Threads: 2, Antisense: true, Validate: rna.Options{DNA: true}}
	out, err := collect(t, cfg, Inline("s", "", []string{"GU", "gggaaaTcc"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out[0].Seq != "AC" || out[0].Score != 0 {
		t.Fatalf("antisense GU: %+v", out[0])
	}
	if out[1].Seq != "GGAUUUCCC" || out[1].Score != -3 {
		t.Fatalf("antisense hairpin: %+v", out[1])
	}
	if seq, err := Check(Record{Seq: "AAU"}, Config{Antisense: true}); err != nil || seq != "AUU" {
		t.Fatalf("Check: %q %v", seq, err)
	}
}
