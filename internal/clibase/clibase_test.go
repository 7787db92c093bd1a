package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b, "rnafold", func(w io.Writer) { _, _ = io.WriteString(w, "  rnafold AU\n") })
	want := "rnafold: quickstart\n\n  rnafold AU\n\nRun with --help for every flag and its default.\n"
	if b.String() != want {
		t.Fatalf("got %q", b.String())
	}
	PrintExamples(nil, "x", nil)
}

func TestRegisterAndValidate(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	var c Common
	noHeader := Register(fs, &c, "text", "json")
	if err := fs.Parse([]string{"-o", "json", "--no-header", "-t", "3"}); err != nil {
		t.Fatal(err)
	}
	if c.Output != "json" || !*noHeader || c.Threads != 3 {
		t.Fatalf("parsed: %+v no-header=%v", c, *noHeader)
	}
	if err := Validate(&c, "text", "json"); err != nil {
		t.Fatal(err)
	}
	c.Output = "xml"
	if err := Validate(&c, "text", "json"); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("want invalid output error, got %v", err)
	}
	c.Output, c.Threads = "text", -1
	if err := Validate(&c, "text"); err == nil {
		t.Fatal("want threads error")
	}
}
