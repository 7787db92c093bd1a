// core/rna/validate.go
package rna

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidSymbol marks a sequence that cannot be handed to the folding engine.
var ErrInvalidSymbol = errors.New("invalid symbol")

// Options controls boundary validation.
type Options struct {
	// Strict rejects anything outside A C G U (gaps included).
	Strict bool
	// DNA transcribes T to U before checking, for templates given 5'→3'.
	DNA bool
}

// Validate returns a normalized sequence or an error wrapping ErrInvalidSymbol.
//
// In lenient mode any ASCII letter is accepted (letters outside the alphabet
// simply never pair) and alignment gaps '-' / '.' are dropped. Strict mode
// accepts A C G U only. Error positions are 1-based characters of raw, so
// they still point at the symbol when raw carries spaces or quotes.
func Validate(raw string, opt Options) (string, error) {
	out := make([]byte, 0, len(raw))
	pos := 0
	for _, r := range raw {
		pos++
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		r = unicode.ToUpper(r)
		if opt.DNA && r == 'T' {
			r = 'U'
		}
		switch {
		case isBase(r):
		case opt.Strict:
			return "", fmt.Errorf("%w %q at %d; allowed: A C G U", ErrInvalidSymbol, r, pos)
		case r == '-' || r == '.':
			continue
		case r > unicode.MaxASCII || !unicode.IsLetter(r):
			return "", fmt.Errorf("%w %q at %d", ErrInvalidSymbol, r, pos)
		}
		out = append(out, byte(r))
	}
	return string(out), nil
}

// CountUnpairable returns how many symbols fall outside A C G U.
func CountUnpairable(s string) int {
	n := 0
	for _, r := range s {
		if !isBase(r) {
			n++
		}
	}
	return n
}

func isBase(r rune) bool {
	switch r {
	case 'A', 'C', 'G', 'U':
		return true
	}
	return false
}
