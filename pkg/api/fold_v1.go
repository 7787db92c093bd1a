// pkg/api/fold_v1.go
package api

// FoldV1 is the stable JSON/JSONL schema for one folded sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FoldV1 struct {
	ID         string  `json:"id"`
	Length     int     `json:"length"`
	GC         float64 `json:"gc"`
	Score      int     `json:"score"` // <= 0; minimization with -1 per pair
	Pairs      int     `json:"pairs"` // == -score
	Seq        string  `json:"seq,omitempty"`
	SourceFile string  `json:"source_file,omitempty"`
}

// SummaryV1 is the stable schema for aggregate scores of one experiment point.
type SummaryV1 struct {
	Label   string  `json:"label"`
	Length  int     `json:"length"`
	GC      float64 `json:"gc"`
	N       int     `json:"n"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stddev"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	PerBase float64 `json:"per_base"`
}

// BenchV1 groups every summary produced by one rnafold-bench run.
type BenchV1 struct {
	Seed   int64       `json:"seed"`
	Sample *SummaryV1  `json:"sample,omitempty"`
	Length []SummaryV1 `json:"length,omitempty"`
	GC     []SummaryV1 `json:"gc,omitempty"`
}
