// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"
)

// DefaultMaxLength is the longest sequence folded unless the caller raises it.
// Its score table takes about 800 MiB.
const DefaultMaxLength = 10000

// Threads resolves the worker count: <= 0 means all CPUs.
func Threads(requested int) int {
	if requested <= 0 {
		return runtime.NumCPU()
	}
	return requested
}

// TableBytes estimates the score table footprint for a sequence of length n.
func TableBytes(n int) int64 {
	return int64(n) * int64(n) * 8
}

// ValidateMaxLength returns the effective length cap and any warnings.
// Rules:
//   - maxLen < 0 is an error
//   - maxLen == 0 disables the cap (warned, since the table grows as n²)
//   - very large caps are allowed but warned with their table size
func ValidateMaxLength(maxLen int) (int, []string, error) {
	if maxLen < 0 {
		return 0, nil, fmt.Errorf("--max-length must be ≥ 0")
	}
	if maxLen == 0 {
		return 0, []string{"--max-length 0 disables the length cap; long inputs need n² memory and n³ time"}, nil
	}
	const warnAbove = 20000
	if maxLen > warnAbove {
		return maxLen, []string{fmt.Sprintf("--max-length %d allows score tables of up to %d MiB per worker",
			maxLen, TableBytes(maxLen)>>20)}, nil
	}
	return maxLen, nil, nil
}
