// Package rna holds the RNA alphabet helpers used at the folding boundary.
package rna

// Complement returns the Watson–Crick partner of b (A↔U, G↔C).
// Other symbols are returned unchanged.
func Complement(b byte) byte {
	switch b {
	case 'A':
		return 'U'
	case 'U':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	default:
		return b
	}
}

// ReverseComplement returns the reverse complement of an RNA sequence.
func ReverseComplement(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = Complement(seq[i])
	}
	return string(out)
}

// GCFraction returns the G+C share of seq in [0,1]; 0 for an empty sequence.
func GCFraction(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
