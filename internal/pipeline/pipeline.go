// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rnafold-core/rna"

	"rnafold/internal/engine"
)

// ErrTooLong rejects sequences above Config.MaxLen.
var ErrTooLong = errors.New("sequence exceeds --max-length")

// Folder is the engine contract the pipeline needs.
type Folder interface {
	Fold(engine.Input) engine.Result
}

// Config controls the folding pipeline.
type Config struct {
	Threads   int         // number of worker goroutines (>=1)
	Validate  rna.Options // boundary validation mode
	MaxLen    int         // reject longer sequences; 0 disables the cap
	FailFast  bool        // abort on the first invalid record instead of skipping it
	Antisense bool        // fold the reverse complement of each validated sequence

	// OnInvalid is told about every skipped record when FailFast is off.
	OnInvalid func(Record, error)
}

// Check validates one record the way ForEachResult does.
func Check(rec Record, cfg Config) (string, error) {
	seq, err := rna.Validate(rec.Seq, cfg.Validate)
	if err != nil {
		return "", err
	}
	if cfg.MaxLen > 0 && len(seq) > cfg.MaxLen {
		return "", fmt.Errorf("%w (%d > %d)", ErrTooLong, len(seq), cfg.MaxLen)
	}
	if cfg.Antisense {
		seq = rna.ReverseComplement(seq)
	}
	return seq, nil
}

// ForEachResult validates records from src, folds them on cfg.Threads workers
// and calls visit for each result from a single goroutine. Results arrive in
// completion order; Result.Index carries the input order.
// It returns the first error encountered (including context cancellation).
func ForEachResult(
	parent context.Context,
	cfg Config,
	src Source,
	f Folder,
	visit func(engine.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan engine.Input, cfg.Threads*2)
	results := make(chan engine.Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case in, ok := <-jobs:
					if !ok {
						return
					}
					r := f.Fold(in)
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if err := visit(r); err != nil {
				cerr = err
				cancel()
			}
		}
	}()

	// Feed work
	next := 0
	ferr := src(ctx, func(rec Record) error {
		seq, err := Check(rec, cfg)
		if err != nil {
			err = fmt.Errorf("%s: %w", rec.ID, err)
			if cfg.FailFast {
				return err
			}
			if cfg.OnInvalid != nil {
				cfg.OnInvalid(rec, err)
			}
			return nil
		}
		in := engine.Input{Index: next, ID: rec.ID, Seq: seq, SourceFile: rec.SourceFile}
		next++
		select {
		case jobs <- in:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	switch {
	case cerr != nil:
		return cerr
	case parent.Err() != nil:
		return parent.Err()
	default:
		return ferr
	}
}

// FoldAll folds seqs and returns the results in input order. Any invalid
// sequence aborts the run. progress, when non-nil, is called from a single
// goroutine with the number of results collected so far.
func FoldAll(ctx context.Context, cfg Config, f Folder, seqs []string, progress func(done int)) ([]engine.Result, error) {
	cfg.FailFast = true
	out := make([]engine.Result, len(seqs))
	done := 0
	err := ForEachResult(ctx, cfg, Inline("s", "", seqs), f, func(r engine.Result) error {
		out[r.Index] = r
		done++
		if progress != nil {
			progress(done)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
