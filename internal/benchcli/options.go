package benchcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"rnafold-core/randseq"

	"rnafold/internal/clibase"
	"rnafold/internal/cliutil"
	"rnafold/internal/report"
	"rnafold/internal/runutil"
)

// Outputs accepted for the stdout summary; the first is the default.
var Outputs = []string{"text", "json"}

// Experiments accepted by --experiment.
var Experiments = []string{"all", "sample", "length", "gc"}

// Plots accepted by --plot: the image formats, an HTML page, or none.
var Plots = append(append([]string{"none"}, report.PlotFormats...), "html")

const (
	defaultLengths = "20,40,60,80,100,120,140"
	defaultGC      = "0.1,0.2,0.3,0.4,0.5,0.6,0.7,0.8,0.9"
)

type Options struct {
	clibase.Common

	Experiment string
	Count      int
	Length     int
	Lengths    []int
	PerPoint   int
	GCValues   []float64
	Seed       int64

	OutDir string
	Plot   string
}

// Runs reports whether experiment e is selected.
func (o Options) Runs(e string) bool { return o.Experiment == "all" || o.Experiment == e }

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, strings.Join(Outputs, " | "), func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)
		_, _ = fmt.Fprintln(out, "  Folds seeded random RNA and reports score statistics.")

		_, _ = fmt.Fprintln(out, "\nExperiments:")
		_, _ = fmt.Fprintf(out, "      --experiment string     %s [%s]\n", strings.Join(Experiments, " | "), def("experiment"))
		_, _ = fmt.Fprintf(out, "      --count int             Sequences in the sample experiment [%s]\n", def("count"))
		_, _ = fmt.Fprintf(out, "      --length int            Length for sample and gc experiments [%s]\n", def("length"))
		_, _ = fmt.Fprintf(out, "      --lengths list          Lengths swept by the length experiment [%s]\n", def("lengths"))
		_, _ = fmt.Fprintf(out, "      --gc-values list        GC fractions swept by the gc experiment [%s]\n", def("gc-values"))
		_, _ = fmt.Fprintf(out, "      --per-point int         Sequences per sweep point [%s]\n", def("per-point"))
		_, _ = fmt.Fprintf(out, "      --seed int              Random seed [%s]\n", def("seed"))

		_, _ = fmt.Fprintln(out, "\nReports:")
		_, _ = fmt.Fprintf(out, "      --out-dir dir           Where length_results.tsv / gc_results.tsv go [%s]\n", def("out-dir"))
		_, _ = fmt.Fprintf(out, "      --plot string           Chart format: %s [%s]\n", strings.Join(Plots, " | "), def("plot"))
	})
	return fs
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// ParseArgs parses argv into Options. It returns flag.ErrHelp for -h.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var lengths, gcs string

	noHeader := clibase.Register(fs, &o.Common, Outputs...)
	fs.StringVar(&o.Output, "format", Outputs[0], "alias of --output")

	fs.StringVar(&o.Experiment, "experiment", "all", "experiment to run")
	fs.IntVar(&o.Count, "count", 100, "sequences in the sample experiment")
	fs.IntVar(&o.Length, "length", 100, "length for sample and gc experiments")
	fs.StringVar(&lengths, "lengths", defaultLengths, "lengths swept by the length experiment")
	fs.StringVar(&gcs, "gc-values", defaultGC, "GC fractions swept by the gc experiment")
	fs.IntVar(&o.PerPoint, "per-point", 50, "sequences per sweep point")
	fs.Int64Var(&o.Seed, "seed", randseq.DefaultSeed, "random seed")

	fs.StringVar(&o.OutDir, "out-dir", ".", "table output directory")
	fs.StringVar(&o.Plot, "plot", "none", "chart format")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	o.Common.Header = !*noHeader
	if o.Version {
		return o, nil
	}
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(posArgs, " "))
	}

	var err error
	if o.Lengths, err = cliutil.ParseIntList(lengths); err != nil {
		return o, fmt.Errorf("--lengths: %w", err)
	}
	if o.GCValues, err = cliutil.ParseFloatList(gcs); err != nil {
		return o, fmt.Errorf("--gc-values: %w", err)
	}

	switch {
	case !oneOf(o.Experiment, Experiments):
		return o, fmt.Errorf("invalid --experiment %q", o.Experiment)
	case !oneOf(o.Plot, Plots):
		return o, fmt.Errorf("invalid --plot %q", o.Plot)
	case o.Count < 1:
		return o, errors.New("--count must be ≥ 1")
	case o.PerPoint < 1:
		return o, errors.New("--per-point must be ≥ 1")
	case o.Length < 0:
		return o, errors.New("--length must be ≥ 0")
	case o.Length > runutil.DefaultMaxLength:
		return o, fmt.Errorf("--length %d exceeds %d", o.Length, runutil.DefaultMaxLength)
	}
	if o.Runs("length") && len(o.Lengths) == 0 {
		return o, errors.New("--lengths is empty")
	}
	for _, l := range o.Lengths {
		if l < 0 {
			return o, fmt.Errorf("--lengths: negative length %d", l)
		}
		if l > runutil.DefaultMaxLength {
			return o, fmt.Errorf("--lengths: %d exceeds %d", l, runutil.DefaultMaxLength)
		}
	}
	if o.Runs("gc") && len(o.GCValues) == 0 {
		return o, errors.New("--gc-values is empty")
	}
	for _, g := range o.GCValues {
		if err := randseq.Validate(o.Length, g); err != nil {
			return o, fmt.Errorf("--gc-values: %w", err)
		}
	}
	return o, clibase.Validate(&o.Common, Outputs...)
}
