// SPDX-License-Identifier: MIT
// Copyright (c) 2026 prebetafinal
// Source: github.com/prebetafinal/epitypes

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/prebetafinal/epitypes/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
