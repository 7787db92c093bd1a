package integration

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"rnafold/internal/foldapp"
)

func TestCtrlC_MidFold_Exit130(t *testing.T) {
	if testing.Short() {
		t.Skip("slow fold")
	}
	// Enough cubic work per record that folding is underway when we cancel.
	var fa strings.Builder
	for i := 0; i < 64; i++ {
		fa.WriteString(">r\n")
		fa.WriteString(strings.Repeat("GGAUCCAUGC", 60))
		fa.WriteString("\n")
	}
	fn := write(t, "cancel_big.fa", fa.String())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := foldapp.RunContext(ctx, []string{"-t", "1", "--cache", "0", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
