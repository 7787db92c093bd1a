package benchapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"rnafold-core/randseq"
	"rnafold-core/rna"

	"rnafold/internal/benchcli"
	"rnafold/internal/cmdutil"
	"rnafold/internal/engine"
	"rnafold/internal/pipeline"
	"rnafold/internal/report"
	"rnafold/internal/runutil"
	"rnafold/internal/stats"
	"rnafold/internal/version"
	"rnafold/internal/writers"
	"rnafold/pkg/api"
)

const name = "rnafold-bench"

// ProgressEvery is how many folded sample sequences pass between progress lines.
const ProgressEvery = 10

// Result holds everything one bench run measured.
type Result struct {
	Sample *stats.Summary
	Length []stats.Summary
	GC     []stats.Summary
	Folded int
}

// API converts r to the v1 wire form.
func (r Result) API(seed int64) api.BenchV1 {
	b := api.BenchV1{Seed: seed}
	if r.Sample != nil {
		s := r.Sample.ToAPI()
		b.Sample = &s
	}
	for _, s := range r.Length {
		b.Length = append(b.Length, s.ToAPI())
	}
	for _, s := range r.GC {
		b.GC = append(b.GC, s.ToAPI())
	}
	return b
}

// Experiments runs the experiments selected in o. Sequences are drawn from a
// single generator seeded with o.Seed in the order sample, length, gc, so a
// given seed reproduces the same batches.
func Experiments(ctx context.Context, o benchcli.Options, log *slog.Logger) (Result, error) {
	var res Result
	r := randseq.New(o.Seed)
	cfg := pipeline.Config{
		Threads:  runutil.Threads(o.Threads),
		Validate: rna.Options{Strict: true},
		MaxLen:   runutil.DefaultMaxLength,
	}
	eng := engine.New(engine.Config{})

	batch := func(label string, count, length int, gc float64, progress func(int)) (stats.Summary, error) {
		seqs := randseq.Batch(r, count, length, gc)
		out, err := pipeline.FoldAll(ctx, cfg, eng, seqs, progress)
		if err != nil {
			return stats.Summary{}, err
		}
		scores := make([]int, len(out))
		for i, f := range out {
			scores[i] = f.Score
		}
		res.Folded += len(out)
		return stats.Summarize(label, length, gc, scores), nil
	}

	if o.Runs("sample") {
		log.Info("experiment", "name", "sample", "count", o.Count, "length", o.Length)
		s, err := batch("sample", o.Count, o.Length, 0.5, func(done int) {
			if done%ProgressEvery == 0 || done == o.Count {
				log.Info("progress", "experiment", "sample", "done", fmt.Sprintf("%d/%d", done, o.Count))
			}
		})
		if err != nil {
			return res, err
		}
		res.Sample = &s
	}
	if o.Runs("length") {
		for i, l := range o.Lengths {
			s, err := batch(fmt.Sprintf("length=%d", l), o.PerPoint, l, 0.5, nil)
			if err != nil {
				return res, err
			}
			res.Length = append(res.Length, s)
			log.Info("progress", "experiment", "length", "point", fmt.Sprintf("%d/%d", i+1, len(o.Lengths)), "length", l)
		}
	}
	if o.Runs("gc") {
		for i, gc := range o.GCValues {
			s, err := batch(fmt.Sprintf("gc=%.2f", gc), o.PerPoint, o.Length, gc, nil)
			if err != nil {
				return res, err
			}
			res.GC = append(res.GC, s)
			log.Info("progress", "experiment", "gc", "point", fmt.Sprintf("%d/%d", i+1, len(o.GCValues)), "gc", gc)
		}
	}
	return res, nil
}

// SaveReports writes the sweep tables, and charts unless plot is "none",
// into dir. It returns the paths written.
func SaveReports(dir, plot string, res Result) ([]string, error) {
	if len(res.Length) == 0 && len(res.GC) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var paths []string
	save := func(base string, rows []stats.Summary, table func(io.Writer, []stats.Summary), series report.Series) error {
		if len(rows) == 0 {
			return nil
		}
		p := filepath.Join(dir, base+"_results.tsv")
		if err := report.SaveTable(p, func(w io.Writer) { table(w, rows) }); err != nil {
			return err
		}
		paths = append(paths, p)
		if plot == "none" {
			return nil
		}
		p = filepath.Join(dir, base+"_results."+plot)
		if err := report.SaveChart(p, series, plot); err != nil {
			return err
		}
		paths = append(paths, p)
		return nil
	}
	if err := save("length", res.Length, report.WriteLengthTable, report.LengthSeries(res.Length)); err != nil {
		return paths, err
	}
	if err := save("gc", res.GC, report.WriteGCTable, report.GCSeries(res.GC)); err != nil {
		return paths, err
	}
	return paths, nil
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return code
	}

	fs := benchcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := benchcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)
	start := time.Now()

	res, err := Experiments(parent, opts, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	paths, err := SaveReports(opts.OutDir, opts.Plot, res)
	for _, p := range paths {
		log.Info("wrote", "path", p)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if err := writers.WriteBench(outw, opts.Output, res.API(opts.Seed)); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	log.Info("done", "sequences", res.Folded, "elapsed", time.Since(start).Round(time.Millisecond))
	return flush(0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
