// internal/pipeline/source.go
package pipeline

import (
	"context"
	"fmt"

	"rnafold-core/fasta"
)

// Record is a raw, not yet validated input sequence.
type Record struct {
	ID         string
	Seq        string
	SourceFile string
}

// Source feeds records to emit in order. It must stop when emit returns an error.
type Source func(ctx context.Context, emit func(Record) error) error

// FASTAFiles streams every record of every path ("-" = stdin, gzip ok).
func FASTAFiles(paths []string) Source {
	return func(ctx context.Context, emit func(Record) error) error {
		for _, p := range paths {
			err := fasta.StreamPathCtx(ctx, p, func(r fasta.Record) error {
				return emit(Record{ID: r.ID, Seq: string(r.Seq), SourceFile: p})
			})
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}
		return nil
	}
}

// Inline emits seqs with IDs prefix1, prefix2, ...
func Inline(prefix, sourceFile string, seqs []string) Source {
	return func(ctx context.Context, emit func(Record) error) error {
		for i, s := range seqs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(Record{ID: fmt.Sprintf("%s%d", prefix, i+1), Seq: s, SourceFile: sourceFile}); err != nil {
				return err
			}
		}
		return nil
	}
}

// Concat runs sources one after another.
func Concat(srcs ...Source) Source {
	return func(ctx context.Context, emit func(Record) error) error {
		for _, s := range srcs {
			if s == nil {
				continue
			}
			if err := s(ctx, emit); err != nil {
				return err
			}
		}
		return nil
	}
}
