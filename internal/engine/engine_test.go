package engine

import "testing"

func TestFoldResult(t *testing.T) {
	e := New(Config{KeepSeq: true})
	r := e.Fold(Input{Index: 3, ID: "x", Seq: "GGGAAAUCC", SourceFile: "a.fa"})
	if r.Index != 3 || r.ID != "x" || r.SourceFile != "a.fa" {
		t.Fatalf("metadata lost: %+v", r)
	}
	if r.Length != 9 || r.Score != -3 || r.Pairs() != 3 {
		t.Fatalf("fold: %+v", r)
	}
	if r.Seq != "GGGAAAUCC" {
		t.Fatalf("KeepSeq ignored: %q", r.Seq)
	}
	if r.GC < 0.55 || r.GC > 0.56 {
		t.Fatalf("gc=%v", r.GC)
	}
}

func TestFoldDropsSeqByDefault(t *testing.T) {
	if r := New(Config{}).Fold(Input{ID: "x", Seq: "AU"}); r.Seq != "" || r.Score != -1 {
		t.Fatalf("unexpected: %+v", r)
	}
}

func TestFoldCache(t *testing.T) {
	e := New(Config{CacheSize: 4})
	a := e.Fold(Input{ID: "a", Seq: "GCGC"})
	b := e.Fold(Input{ID: "b", Seq: "GCGC"})
	if a.Score != -2 || b.Score != -2 || b.ID != "b" {
		t.Fatalf("cached fold mismatch: %+v %+v", a, b)
	}
	if e.Cached() != 1 {
		t.Fatalf("cached=%d", e.Cached())
	}
}

func TestFoldEmpty(t *testing.T) {
	if r := New(Config{}).Fold(Input{ID: "e"}); r.Score != 0 || r.Length != 0 || r.GC != 0 {
		t.Fatalf("empty: %+v", r)
	}
}

func TestFoldCountsUnpairable(t *testing.T) {
	r := New(Config{}).Fold(Input{ID: "n", Seq: "GNNAUC"})
	if r.Unpairable != 2 || r.Score != -2 {
		t.Fatalf("unexpected: %+v", r)
	}
}
