// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"rnafold/internal/engine"
	"rnafold/internal/jsonlutil"
	"rnafold/internal/jsonutil"
	"rnafold/pkg/api"
)

// ToAPI converts a result to its v1 wire form.
func ToAPI(r engine.Result, showSeq bool) api.FoldV1 {
	v := api.FoldV1{
		ID:         r.ID,
		Length:     r.Length,
		GC:         r.GC,
		Score:      r.Score,
		Pairs:      r.Pairs(),
		SourceFile: r.SourceFile,
	}
	if showSeq {
		v.Seq = r.Seq
	}
	return v
}

func writeJSON(out io.Writer, in <-chan engine.Result, o Options) error {
	list := make([]api.FoldV1, 0, 64)
	for r := range in {
		list = append(list, ToAPI(r, o.ShowSeq))
	}
	return jsonutil.EncodePretty(out, list)
}

func writeJSONL(out io.Writer, in <-chan engine.Result, o Options) error {
	enc, done := jsonlutil.Start[engine.Result](out, 64,
		func(enc *json.Encoder, r engine.Result) error {
			return enc.Encode(ToAPI(r, o.ShowSeq))
		},
		IsBrokenPipe,
	)
	for r := range in {
		enc <- r
	}
	close(enc)
	return <-done
}

func init() {
	RegisterFold("json", writeJSON)
	RegisterFold("jsonl", writeJSONL)
}
