// Package randseq draws synthetic RNA sequences of a given length and GC share.
package randseq

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// DefaultSeed keeps experiment runs reproducible unless the caller overrides it.
const DefaultSeed = 42

// ErrGCRange is returned by Validate for GC fractions outside [0,1].
var ErrGCRange = errors.New("gc fraction out of range")

var (
	allBases = []byte("AUGC")
	gcBases  = []byte("GC")
	auBases  = []byte("AU")
)

// Validate checks generator arguments.
func Validate(length int, gc float64) error {
	if length < 0 {
		return fmt.Errorf("negative length %d", length)
	}
	if !(gc >= 0 && gc <= 1) { // also rejects NaN
		return fmt.Errorf("%w: %g", ErrGCRange, gc)
	}
	return nil
}

// New returns a generator source seeded with seed.
func New(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// Generate returns a random RNA sequence of the given length.
//
// gc == 0.5 draws every position uniformly from A U G C. Any other value
// places exactly int(length*gc) symbols from {G,C} and the rest from {A,U},
// then shuffles the positions. gc is clamped to [0,1]; NaN counts as 0.
func Generate(r *rand.Rand, length int, gc float64) string {
	if length <= 0 {
		return ""
	}
	if gc == 0.5 {
		b := make([]byte, length)
		for i := range b {
			b[i] = allBases[r.Intn(len(allBases))]
		}
		return string(b)
	}
	switch {
	case math.IsNaN(gc), gc < 0:
		gc = 0
	case gc > 1:
		gc = 1
	}

	gcCount := int(float64(length) * gc)
	b := make([]byte, length)
	for i := 0; i < gcCount; i++ {
		b[i] = gcBases[r.Intn(2)]
	}
	for i := gcCount; i < length; i++ {
		b[i] = auBases[r.Intn(2)]
	}
	r.Shuffle(length, func(i, j int) { b[i], b[j] = b[j], b[i] })
	return string(b)
}

// Batch draws count sequences of the same length and GC share.
func Batch(r *rand.Rand, count, length int, gc float64) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = Generate(r, length, gc)
	}
	return out
}
