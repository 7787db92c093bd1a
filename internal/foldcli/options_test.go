package foldcli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"rnafold/internal/clibase"
)

func parse(argv ...string) (Options, error) {
	return ParseArgs(NewFlagSet("rnafold"), argv)
}

func TestParseDefaults(t *testing.T) {
	o, err := parse("GCGC")
	if err != nil {
		t.Fatal(err)
	}
	if o.Output != "text" || !o.Header || o.MaxLen != 10000 || o.CacheSize != 1024 || o.Threads != 0 {
		t.Fatalf("defaults: %+v", o)
	}
	if len(o.Seqs) != 1 || o.Seqs[0] != "GCGC" {
		t.Fatalf("seqs: %v", o.Seqs)
	}
}

func TestParseMixedInputs(t *testing.T) {
	fa := filepath.Join(t.TempDir(), "x.fa")
	_ = os.WriteFile(fa, []byte(">x\nAU\n"), 0o644)
	o, err := parse("-s", "AU", fa, "--output", "jsonl", "GG", "--no-header", "--strict")
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Seqs) != 2 || len(o.FASTA) != 1 || o.FASTA[0] != fa {
		t.Fatalf("inputs: seqs=%v fasta=%v", o.Seqs, o.FASTA)
	}
	if o.Output != "jsonl" || o.Header || !o.Strict {
		t.Fatalf("flags: %+v", o)
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"--output", "xml", "AU"},
		{"--cache", "-1", "AU"},
		{"--max-length", "-5", "AU"},
		{"--threads", "-2", "AU"},
		{"--bogus", "AU"},
	}
	for _, argv := range cases {
		if _, err := parse(argv...); err == nil {
			t.Fatalf("%v: expected error", argv)
		}
	}
}

func TestParseHelpAndExamples(t *testing.T) {
	if _, err := parse("-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if _, err := parse("--examples"); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
	if o, err := parse("--version"); err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}
