package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the shape every tool's RunContext has.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs a tool with SIGINT/SIGTERM wired to ctx and exits with its code.
// An empty command line becomes "-h" for tools that need input.
func Main(run RunFunc) { main(run, true) }

// MainDefaults is Main for tools that are useful without arguments.
func MainDefaults(run RunFunc) { main(run, false) }

func main(run RunFunc, helpOnEmpty bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 && helpOnEmpty {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
