// Command goscorer is a thin, one-shot CLI over the scoring library: it
// never serves requests or holds state between invocations, matching the
// library's own single-call, deterministic contract.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "goscorer:", err)
		os.Exit(1)
	}
}
