package foldapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rnafold-core/rna"

	"rnafold/internal/pipeline"
)

func TestLoadList(t *testing.T) {
	p := filepath.Join(t.TempDir(), "l.txt")
	if err := os.WriteFile(p, []byte("GCGC\n  # note\n\n auau \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := loadList(p)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"GCGC", "auau"}) {
		t.Fatalf("got %q", got)
	}
	if _, err := loadList(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing list")
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{context.Canceled, 130},
		{fmt.Errorf("x: %w", rna.ErrInvalidSymbol), 2},
		{fmt.Errorf("x: %w", pipeline.ErrTooLong), 2},
		{errors.New("read failed"), 3},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Fatalf("%v: got %d want %d", tc.err, got, tc.want)
		}
	}
}
