// Package writers turns fold results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON, JSONL, FASTA, bench summaries).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
