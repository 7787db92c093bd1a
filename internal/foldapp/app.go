package foldapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"

	"rnafold-core/rna"

	"rnafold/internal/clibase"
	"rnafold/internal/cmdutil"
	"rnafold/internal/engine"
	"rnafold/internal/foldcli"
	"rnafold/internal/pipeline"
	"rnafold/internal/runutil"
	"rnafold/internal/version"
	"rnafold/internal/writers"
)

const name = "rnafold"

// loadList reads one sequence per line; blank lines and '#' comments are skipped.
func loadList(path string) (seqs []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", path, r)
		}
	}()
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	for _, line := range textUtil.File2Array(path) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		seqs = append(seqs, line)
	}
	return seqs, nil
}

// flushCode flushes outw and maps the outcome to an exit code.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

// exitCode classifies a run error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, rna.ErrInvalidSymbol), errors.Is(err, pipeline.ErrTooLong):
		return 2
	default:
		return 3
	}
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := foldcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := foldcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			foldcli.PrintExamples(outw, name)
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushCode(outw, stderr, 0)
	}

	maxLen, warns, err := runutil.ValidateMaxLength(opts.MaxLen)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	var listSeqs []string
	if opts.ListFile != "" {
		if listSeqs, err = loadList(opts.ListFile); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		if len(listSeqs) == 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: no sequences", opts.ListFile)
		}
	}

	src := pipeline.Concat(
		pipeline.Inline("seq", "", opts.Seqs),
		pipeline.Inline("L", opts.ListFile, listSeqs),
		pipeline.FASTAFiles(opts.FASTA),
	)

	skipped := 0
	cfg := pipeline.Config{
		Threads:  runutil.Threads(opts.Threads),
		Validate: rna.Options{Strict: opts.Strict, DNA: opts.DNA},
		MaxLen:   maxLen,
		FailFast: opts.FailFast,

		Antisense: opts.Antisense,
		OnInvalid: func(_ pipeline.Record, err error) {
			skipped++
			cmdutil.Warnf(stderr, opts.Quiet, "skipping %v", err)
		},
	}
	// fasta output re-emits the sequence, so it needs it on the result.
	keepSeq := opts.ShowSeq || opts.Output == "fasta"
	eng := engine.New(engine.Config{CacheSize: opts.CacheSize, KeepSeq: keepSeq})

	in, werrCh := writers.StartFoldWriter(outw, writers.Options{
		Format:  opts.Output,
		Sort:    opts.Sort,
		Header:  opts.Header,
		ShowSeq: opts.ShowSeq,
	}, cfg.Threads*4)

	unpairable := 0
	n, runErr := cmdutil.RunStream(parent, cfg, src, eng,
		func(r engine.Result) (bool, engine.Result, error) {
			if r.Unpairable > 0 {
				unpairable++
			}
			return true, r, nil
		},
		func(r engine.Result) error {
			in <- r
			return nil
		},
	)
	close(in)
	werr := <-werrCh

	if unpairable > 0 {
		cmdutil.Warnf(stderr, opts.Quiet,
			"%d sequence(s) contain symbols outside A C G U; those positions never pair", unpairable)
	}
	if skipped > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d invalid sequence(s) skipped", skipped)
	}

	if runErr != nil {
		if writers.IsBrokenPipe(runErr) {
			return 0
		}
		code := exitCode(runErr)
		if code != 130 {
			_, _ = fmt.Fprintln(stderr, runErr)
		}
		_ = outw.Flush()
		return code
	}
	if werr != nil {
		if writers.IsBrokenPipe(werr) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if code := flushCode(outw, stderr, 0); code != 0 {
		return code
	}
	if n == 0 {
		_, _ = fmt.Fprintln(stderr, "no sequences folded")
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
