// SPDX-License-Identifier: MIT

// Command matrixcalc runs matrix worksheets from the command line.
//
//	matrixcalc run examples/forward.yaml --solver lu --log-level debug
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
