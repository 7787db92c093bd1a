package foldcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"rnafold/internal/clibase"
	"rnafold/internal/cliutil"
	"rnafold/internal/runutil"
)

// Outputs accepted by rnafold; the first is the default.
var Outputs = []string{"text", "json", "jsonl", "fasta"}

type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

type Options struct {
	clibase.Common

	// Input
	Seqs     []string
	FASTA    []string
	ListFile string

	// Boundary validation
	DNA      bool
	Strict   bool
	FailFast bool
	MaxLen   int

	// Run
	Antisense bool
	CacheSize int
	ShowSeq   bool
	Examples  bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, strings.Join(Outputs, " | "), func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] SEQ [SEQ...]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --fasta in.fa[.gz] [--fasta more.fa]\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] --list seqs.txt\n", name)
		_, _ = fmt.Fprintln(out, "  Positionals that name files (or globs) are read as FASTA; others are sequences.")

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -s, --seq string            Inline sequence (repeatable)")
		_, _ = fmt.Fprintln(out, "  -i, --fasta file            FASTA file (repeatable; '-' for STDIN; gzip ok)")
		_, _ = fmt.Fprintln(out, "      --list file             One sequence per line (ids L1, L2, ...)")

		_, _ = fmt.Fprintln(out, "\nValidation:")
		_, _ = fmt.Fprintf(out, "      --dna                   Transcribe T→U before folding [%s]\n", def("dna"))
		_, _ = fmt.Fprintf(out, "      --strict                Reject symbols other than A C G U [%s]\n", def("strict"))
		_, _ = fmt.Fprintf(out, "      --fail-fast             Stop at the first invalid sequence [%s]\n", def("fail-fast"))
		_, _ = fmt.Fprintf(out, "      --max-length int        Longest sequence folded (0=no cap) [%s]\n", def("max-length"))

		_, _ = fmt.Fprintln(out, "\nScoring:")
		_, _ = fmt.Fprintln(out, "  score = -(maximum number of non-crossing A-U, G-C, G-U pairs); pairs = -score")
		_, _ = fmt.Fprintf(out, "      --antisense             Fold the reverse complement of each input [%s]\n", def("antisense"))
		_, _ = fmt.Fprintf(out, "      --cache int             Memoize up to N distinct sequences (0=off) [%s]\n", def("cache"))
		_, _ = fmt.Fprintf(out, "      --show-seq              Include the folded sequence in outputs [%s]\n", def("show-seq"))
		_, _ = fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
	})
	return fs
}

// ParseArgs parses argv into Options. It returns flag.ErrHelp for -h and
// clibase.ErrPrintedAndExitOK for --examples.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common, Outputs...)

	seqVal := &sliceValue{dst: &o.Seqs}
	fs.Var(seqVal, "seq", "inline sequence (repeatable)")
	fs.Var(seqVal, "s", "alias of --seq")
	faVal := &sliceValue{dst: &o.FASTA}
	fs.Var(faVal, "fasta", "FASTA file (repeatable) or '-'")
	fs.Var(faVal, "i", "alias of --fasta")
	fs.StringVar(&o.ListFile, "list", "", "one sequence per line")

	fs.BoolVar(&o.DNA, "dna", false, "transcribe T to U")
	fs.BoolVar(&o.Strict, "strict", false, "reject symbols outside A C G U")
	fs.BoolVar(&o.FailFast, "fail-fast", false, "stop at first invalid sequence")
	fs.IntVar(&o.MaxLen, "max-length", runutil.DefaultMaxLength, "longest sequence folded (0=no cap)")

	fs.BoolVar(&o.Antisense, "antisense", false, "fold the reverse complement")
	fs.IntVar(&o.CacheSize, "cache", 1024, "memoize up to N distinct sequences (0=off)")
	fs.BoolVar(&o.ShowSeq, "show-seq", false, "include sequence in outputs")
	fs.BoolVar(&o.Examples, "examples", false, "print quickstart examples")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	o.Common.Header = !*noHeader
	if o.Version {
		return o, nil
	}

	files, seqs, err := cliutil.ClassifyPositionals(posArgs)
	if err != nil {
		return o, err
	}
	o.FASTA = append(o.FASTA, files...)
	o.Seqs = append(o.Seqs, seqs...)

	if len(o.Seqs) == 0 && len(o.FASTA) == 0 && o.ListFile == "" {
		return o, errors.New("provide sequences, --fasta files, or --list")
	}
	if o.CacheSize < 0 {
		return o, errors.New("--cache must be ≥ 0")
	}
	if o.MaxLen < 0 {
		return o, errors.New("--max-length must be ≥ 0")
	}
	return o, clibase.Validate(&o.Common, Outputs...)
}

// PrintExamples writes the --examples quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "  # score two inline sequences\n  %s GGGAAAUCC AUAU\n\n", name)
		_, _ = fmt.Fprintf(w, "  # fold a gzipped FASTA as JSONL, keeping input order\n  %s --sort -o jsonl transcripts.fa.gz\n\n", name)
		_, _ = fmt.Fprintf(w, "  # DNA templates from a list file, strict alphabet\n  %s --dna --strict --list oligos.txt\n", name)
	})
}
