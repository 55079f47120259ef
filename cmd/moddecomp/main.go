// SPDX-License-Identifier: MIT
// Package: moddecomp/cmd/moddecomp
//
// main.go — entrypoint. Grounded on matzehuels-stacktower's cmd/stacktower/main.go:
// a signal-aware context and a plain os.Exit(1) on failure (no panic/recover
// theatrics needed for a single-command CLI).

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
