package engine

import (
	"rnafold-core/fold"
	"rnafold-core/rna"

	"rnafold/internal/runutil"
)

// Input is one validated sequence ready for folding.
type Input struct {
	Index      int // position in the input stream, used for --sort
	ID         string
	Seq        string // normalized; validated at the boundary
	SourceFile string
}

// Result is the folded form of one Input.
type Result struct {
	Index      int
	ID         string
	Seq        string // only set when Config.KeepSeq
	SourceFile string
	Length     int
	GC         float64
	Score      int
	Unpairable int // symbols outside A C G U (lenient input only)
}

// Pairs is the number of non-crossing base pairs in the optimal fold.
func (r Result) Pairs() int { return -r.Score }

type Config struct {
	// CacheSize bounds the memo of already folded sequences (0 disables it).
	CacheSize int
	// KeepSeq copies the input sequence onto the result.
	KeepSeq bool
}

// Engine is safe for concurrent use; every Fold call owns its own table.
type Engine struct {
	cfg   Config
	cache *runutil.LRU[string, int]
}

func New(c Config) *Engine {
	return &Engine{cfg: c, cache: runutil.NewLRU[string, int](c.CacheSize)}
}

// Fold scores in.Seq and fills the result metadata.
func (e *Engine) Fold(in Input) Result {
	score, ok := e.cache.Get(in.Seq)
	if !ok {
		score = fold.ScoreString(in.Seq)
		e.cache.Put(in.Seq, score)
	}
	r := Result{
		Index:      in.Index,
		ID:         in.ID,
		SourceFile: in.SourceFile,
		Length:     len(in.Seq),
		GC:         rna.GCFraction(in.Seq),
		Score:      score,
		Unpairable: rna.CountUnpairable(in.Seq),
	}
	if e.cfg.KeepSeq {
		r.Seq = in.Seq
	}
	return r
}

// Cached reports how many distinct sequences are memoized.
func (e *Engine) Cached() int { return e.cache.Len() }
