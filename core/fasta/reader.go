// core/fasta/reader.go
package fasta

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq []byte
}
