// Package stats reduces batches of fold scores to summary rows.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rnafold/pkg/api"
)

// Summary aggregates the scores of one experiment point.
type Summary struct {
	Label   string
	Length  int     // sequence length of the batch (0 when mixed)
	GC      float64 // requested GC fraction
	N       int
	Mean    float64
	StdDev  float64 // sample standard deviation; 0 for N < 2
	Min     int
	Max     int
	PerBase float64 // Mean / Length
}

// Summarize reduces scores. An empty batch yields N == 0 and zero statistics.
func Summarize(label string, length int, gc float64, scores []int) Summary {
	s := Summary{Label: label, Length: length, GC: gc, N: len(scores)}
	if len(scores) == 0 {
		return s
	}
	xs := make([]float64, len(scores))
	for i, v := range scores {
		xs[i] = float64(v)
	}
	s.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	s.Min = int(floats.Min(xs))
	s.Max = int(floats.Max(xs))
	if length > 0 {
		s.PerBase = s.Mean / float64(length)
	}
	return s
}

// ToAPI converts to the v1 wire form.
func (s Summary) ToAPI() api.SummaryV1 {
	return api.SummaryV1{
		Label:   s.Label,
		Length:  s.Length,
		GC:      s.GC,
		N:       s.N,
		Mean:    s.Mean,
		StdDev:  s.StdDev,
		Min:     s.Min,
		Max:     s.Max,
		PerBase: s.PerBase,
	}
}
