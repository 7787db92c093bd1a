package rna

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opt  Options
		want string
		err  bool
	}{
		{"upper", "ACGU", Options{}, "ACGU", false},
		{"lower+space", " ac gu\t", Options{}, "ACGU", false},
		{"quotes", "'GGAU'", Options{}, "GGAU", false},
		{"empty", "", Options{}, "", false},
		{"lenient N", "ACNGU", Options{}, "ACNGU", false},
		{"lenient T kept", "ACGT", Options{}, "ACGT", false},
		{"gaps dropped", "AC-G.U", Options{}, "ACGU", false},
		{"digit", "AC1GU", Options{}, "", true},
		{"non-ascii", "ACΩ", Options{}, "", true},
		{"strict N", "ACNGU", Options{Strict: true}, "", true},
		{"strict gap", "AC-GU", Options{Strict: true}, "", true},
		{"dna", "acgt", Options{DNA: true}, "ACGU", false},
		{"dna strict", "ACGTT", Options{DNA: true, Strict: true}, "ACGUU", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Validate(tc.in, tc.opt)
			if tc.err {
				if err == nil || !errors.Is(err, ErrInvalidSymbol) {
					t.Fatalf("want ErrInvalidSymbol, got %v (%q)", err, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestValidateErrorPosition(t *testing.T) {
	_, err := Validate("ACX", Options{Strict: true})
	if err == nil || err.Error() != `invalid symbol 'X' at 3; allowed: A C G U` {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateErrorPositionCountsRawInput(t *testing.T) {
	cases := []struct {
		in   string
		opt  Options
		want string
	}{
		{"AU G1", Options{}, `invalid symbol '1' at 5`},
		{"'ac gx'", Options{Strict: true}, `invalid symbol 'X' at 6; allowed: A C G U`},
		{"AC\tΩ", Options{}, `invalid symbol 'Ω' at 4`},
	}
	for _, tc := range cases {
		_, err := Validate(tc.in, tc.opt)
		if err == nil || err.Error() != tc.want {
			t.Fatalf("%q: got %v, want %s", tc.in, err, tc.want)
		}
	}
}

func TestReverseComplement(t *testing.T) {
	if got := ReverseComplement("AACGU"); got != "ACGUU" {
		t.Fatalf("got %q", got)
	}
	if got := ReverseComplement("ANG"); got != "CNU" {
		t.Fatalf("got %q", got)
	}
	if got := ReverseComplement(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestGCFraction(t *testing.T) {
	if f := GCFraction(""); f != 0 {
		t.Fatalf("empty: %v", f)
	}
	if f := GCFraction("GCAU"); f != 0.5 {
		t.Fatalf("GCAU: %v", f)
	}
	if f := GCFraction("GGGG"); f != 1 {
		t.Fatalf("GGGG: %v", f)
	}
}

func TestCountUnpairable(t *testing.T) {
	if n := CountUnpairable("ACGUNTX"); n != 3 {
		t.Fatalf("got %d", n)
	}
}
