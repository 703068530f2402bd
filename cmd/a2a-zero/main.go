// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command a2a-zero talks to an Agent Zero instance over FastA2A.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-a2a/fasta2a/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}
