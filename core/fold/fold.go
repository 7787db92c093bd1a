// core/fold/fold.go
package fold

// PairBonus is the score a formed base pair contributes. Folding minimizes the
// total, so the optimum is the most negative value and its magnitude is the
// number of non-crossing pairs.
const PairBonus = -1

// CanPair reports whether the ordered pair (a, b) may bond:
// A-U, U-A, G-U, U-G, C-G, G-C. Everything else, including lower case and
// symbols outside the RNA alphabet, never pairs.
func CanPair(a, b byte) bool {
	switch a {
	case 'A':
		return b == 'U'
	case 'U':
		return b == 'A' || b == 'G'
	case 'G':
		return b == 'U' || b == 'C'
	case 'C':
		return b == 'G'
	default:
		return false
	}
}

// Table holds the optimal score of every sub-interval [i, j] of one sequence.
// It is owned by the Fill call that created it.
type Table struct {
	n     int
	cells []int // row-major n*n; only i <= j is written
}

// Len returns the sequence length the table was built for.
func (t *Table) Len() int { return t.n }

// At returns the optimal score of seq[i..j]. Empty intervals (i > j) score 0.
func (t *Table) At(i, j int) int {
	if i > j {
		return 0
	}
	return t.cells[i*t.n+j]
}

// Score returns the optimal score of the whole sequence, cell (0, n-1).
func (t *Table) Score() int {
	if t.n < 2 {
		return 0
	}
	return t.cells[t.n-1]
}

// Fill builds the interval table for seq by increasing interval length.
// Every cell read while computing (i, j) covers a strictly shorter interval,
// and empty side intervals are branched on rather than read.
func Fill(seq []byte) *Table {
	n := len(seq)
	t := &Table{n: n, cells: make([]int, n*n)}
	if n < 2 {
		return t
	}
	c := t.cells
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			row := i * n

			best := c[row+j-1] // j unpaired
			for k := i; k < j; k++ {
				if CanPair(seq[k], seq[j]) {
					s := PairBonus
					if k > i {
						s += c[row+k-1]
					}
					if k+1 < j {
						s += c[(k+1)*n+j-1]
					}
					if s < best {
						best = s
					}
				}
				if s := c[row+k] + c[(k+1)*n+j]; s < best {
					best = s
				}
			}
			c[row+j] = best
		}
	}
	return t
}

// Score folds seq and returns its optimal score (<= 0).
// Sequences shorter than two symbols score 0 without allocating a table.
func Score(seq []byte) int {
	if len(seq) < 2 {
		return 0
	}
	return Fill(seq).Score()
}

// ScoreString is Score for a string.
func ScoreString(s string) int { return Score([]byte(s)) }

// MaxPairs returns the maximum number of non-crossing pairs seq can form.
func MaxPairs(seq []byte) int { return -Score(seq) }
